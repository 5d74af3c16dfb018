//nolint:forbidigo
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dotgraph-io/dotgraph/bfs"
	"github.com/dotgraph-io/dotgraph/core"
	"github.com/dotgraph-io/dotgraph/dfs"
	"github.com/dotgraph-io/dotgraph/dot"
	"github.com/dotgraph-io/dotgraph/internal/logger"
)

// treeFunc is the shared shape of bfs.Tree and dfs.Tree.
type treeFunc func(g *core.Graph, start string) (*core.Graph, error)

var bfsCmd = &cobra.Command{
	Use:   "bfs <file> <start>",
	Short: "Print the breadth-first spanning tree from a start node",
	Args:  cobra.ExactArgs(2),
	Run: func(_ *cobra.Command, args []string) {
		run := func(g *core.Graph, start string) (*core.Graph, error) {
			return bfs.Tree(g, start)
		}
		if err := doTree(run, args[0], args[1]); err != nil {
			logger.Fatalf("bfs failed: %v", err)
		}
	},
}

var dfsCmd = &cobra.Command{
	Use:   "dfs <file> <start>",
	Short: "Print the depth-first spanning tree from a start node",
	Args:  cobra.ExactArgs(2),
	Run: func(_ *cobra.Command, args []string) {
		run := func(g *core.Graph, start string) (*core.Graph, error) {
			return dfs.Tree(g, start)
		}
		if err := doTree(run, args[0], args[1]); err != nil {
			logger.Fatalf("dfs failed: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(bfsCmd)
	rootCmd.AddCommand(dfsCmd)
}

func doTree(extract treeFunc, path, start string) error {
	g, err := dot.ParseFile(path, dot.WithWarnFunc(logger.Warnf))
	if err != nil {
		return err
	}

	tree, err := extract(g, start)
	if err != nil {
		return err
	}
	if tree.NodeCount() == 0 {
		logger.Warnf("empty tree %q: graph is directed or start %q unknown", tree.Name(), start)
	}

	out, err := dot.Marshal(tree)
	if err != nil {
		return err
	}
	fmt.Print(out)

	return nil
}
