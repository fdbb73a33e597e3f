package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:     "html5core",
	Short:   "Parse and query HTML documents",
	Version: version,
	Long: `html5core parses HTML the way browsers do: malformed markup is
recovered from per the WHATWG HTML5 tree-construction algorithm rather than
rejected.`,
}

// Execute runs the root command, exiting the process on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
