//nolint:forbidigo
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dotgraph-io/dotgraph/dot"
	"github.com/dotgraph-io/dotgraph/internal/logger"
)

// printCmd loads a DOT file and shows both renderings of the graph.
var printCmd = &cobra.Command{
	Use:   "print <file>",
	Short: "Print a graph's adjacency listing and DOT form",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		if err := doPrint(args[0]); err != nil {
			logger.Fatalf("print failed: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(printCmd)
}

func doPrint(path string) error {
	g, err := dot.ParseFile(path, dot.WithWarnFunc(logger.Warnf))
	if err != nil {
		return err
	}

	fmt.Print(g)
	fmt.Println()

	out, err := dot.Marshal(g)
	if err != nil {
		return err
	}
	fmt.Print(out)

	return nil
}
