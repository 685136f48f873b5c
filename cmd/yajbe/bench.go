package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yajbe-format/yajbe-go"
	"github.com/yajbe-format/yajbe-go/streamcodec"
)

func newBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench [file]",
		Short: "Report JSON vs YAJBE size, and YAJBE size under each bundled compressor",
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
			encoded, err := yajbe.Encode(fromJSON(parsed), yajbe.EncodeOptions{})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "json\t%d\n", len(data))
			fmt.Fprintf(out, "yajbe\t%d\n", len(encoded))

			for _, alg := range []streamcodec.Algorithm{streamcodec.AlgorithmZstd, streamcodec.AlgorithmS2, streamcodec.AlgorithmLZ4} {
				codec, err := streamcodec.New(alg)
				if err != nil {
					return err
				}
				compressed, err := codec.Compress(encoded)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "yajbe+%s\t%d\n", alg, len(compressed))
			}
			return nil
		},
	}
	return cmd
}
