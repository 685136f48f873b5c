// Command yajbe is a small CLI wrapping the codec for ad-hoc
// inspection: convert JSON to YAJBE and back, and report the size
// difference a document sees under each of the bundled compressors.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
