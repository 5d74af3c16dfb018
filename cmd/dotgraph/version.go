//nolint:forbidigo
package main

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var (
	// Automatically filled by GoReleaser during build process
	// @see: https://goreleaser.com/cookbooks/using-main.version/
	version = "unreleased-dev"
	commit  = "none"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print current dotgraph version",
	Run:   versionAction,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func versionAction(*cobra.Command, []string) {
	goVersion := "unknown"
	if buildInfo, available := debug.ReadBuildInfo(); available {
		goVersion = buildInfo.GoVersion
	}

	fmt.Printf("version: v%s (commit %s)\n", version, commit)
	fmt.Printf("built for %s/%s with %s\n", runtime.GOOS, runtime.GOARCH, goVersion)
}
