package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"github.com/yajbe-format/yajbe-go"
)

func newDecodeCmd() *cobra.Command {
	var orderedMaps bool
	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Read a YAJBE document and write its JSON rendering to stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args)
			if err != nil {
				return err
			}
			value, err := yajbe.Decode(data, yajbe.DecodeOptions{OrderedMaps: orderedMaps})
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(toJSON(value), "", "  ")
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(append(out, '\n'))
			return err
		},
	}
	cmd.Flags().BoolVar(&orderedMaps, "ordered", false, "preserve map key order (JSON rendering ignores it; affects round-trip fidelity only)")
	return cmd
}
