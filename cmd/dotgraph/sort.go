//nolint:forbidigo
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dotgraph-io/dotgraph/dot"
	"github.com/dotgraph-io/dotgraph/internal/logger"
	"github.com/dotgraph-io/dotgraph/toposort"
)

// toposortCmd prints a topological order of a directed acyclic graph.
var toposortCmd = &cobra.Command{
	Use:   "toposort <file>",
	Short: "Print a topological order of a directed acyclic graph",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		if err := doToposort(args[0]); err != nil {
			logger.Fatalf("toposort failed: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(toposortCmd)
}

func doToposort(path string) error {
	g, err := dot.ParseFile(path, dot.WithWarnFunc(logger.Warnf))
	if err != nil {
		return err
	}

	order, err := toposort.Sort(g)
	if err != nil {
		return err
	}
	if len(order) == 0 {
		logger.Warnf("graph %q is not a DAG; no order to print", g.Name())
		return nil
	}

	fmt.Println(strings.Join(order, " "))

	return nil
}
