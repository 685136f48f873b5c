package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/yajbe-format/yajbe-go"
)

func newEncodeCmd() *cobra.Command {
	var eofTerminated bool
	cmd := &cobra.Command{
		Use:   "encode [file]",
		Short: "Read a JSON document and write its YAJBE encoding to stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args)
			if err != nil {
				return err
			}
			var parsed any
			if err := json.Unmarshal(data, &parsed); err != nil {
				return err
			}
			encoded, err := yajbe.Encode(fromJSON(parsed), yajbe.EncodeOptions{EOFTerminated: eofTerminated})
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(encoded)
			return err
		},
	}
	cmd.Flags().BoolVar(&eofTerminated, "eof-terminated", false, "encode containers in the EOF-terminated form")
	return cmd
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 1 {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(os.Stdin)
}
