// Command homology prints the simplicial homology groups of complexes read
// from YAML/JSON files or taken from the built-in catalog.
//
//	homology compute --example rp2
//	homology compute complex.yaml --json
//	homology examples
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
