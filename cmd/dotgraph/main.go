package main

import (
	"github.com/spf13/cobra"

	"github.com/dotgraph-io/dotgraph/internal/logger"
)

const defaultLogLevel = "info"

var rootCmd = &cobra.Command{
	Use:   "dotgraph",
	Short: "Inspect and transform DOT-subset graph files",
	Long: `dotgraph reads graphs written in a restricted subset of the DOT
language and runs the library's operations on them: adjacency printing,
BFS/DFS spanning-tree extraction, and topological sorting.

Run dotgraph --help for the list of commands.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	cobra.OnInitialize(initLogLevel)

	rootCmd.PersistentFlags().StringP("log-level", "l", defaultLogLevel,
		`Log level. Can be any standard log-level ("info", "debug", etc...)`)
}

func initLogLevel() {
	logLevel, err := rootCmd.PersistentFlags().GetString("log-level")
	if err != nil {
		return
	}
	logger.SetLevel(&logLevel)
}
