package main

import (
	"fmt"
	"io"
	"os"

	"github.com/kestrel-parse/html5core"
	"github.com/kestrel-parse/html5core/dom"
	"github.com/spf13/cobra"
)

type fragmentOptions struct {
	context string
	pretty  bool
	indent  int
}

var fragmentOpts fragmentOptions

var fragmentCmd = &cobra.Command{
	Use:   "fragment <file>",
	Short: "Parse an HTML fragment under a given context element",
	Long: `Fragment parses its input as if it were the innerHTML of the
--context element (e.g. "td" to parse table-cell content), the way a
browser's innerHTML setter does, rather than as a full document.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFragment(args[0], os.Stdin, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(fragmentCmd)

	flags := fragmentCmd.Flags()
	flags.StringVar(&fragmentOpts.context, "context", "div", "Context element tag name")
	flags.BoolVar(&fragmentOpts.pretty, "pretty", true, "Pretty-print HTML output")
	flags.IntVar(&fragmentOpts.indent, "indent", 2, "Indentation size for pretty-print")
}

func runFragment(path string, stdin io.Reader, stdout io.Writer) error {
	input, err := readInput(path, stdin)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	nodes, err := html5core.ParseFragment(string(input), fragmentOpts.context)
	if err != nil {
		return fmt.Errorf("parsing fragment: %w", err)
	}

	cfg := &parseOptions{pretty: fragmentOpts.pretty, indent: fragmentOpts.indent, format: outputFormatHTML}
	domNodes := make([]dom.Node, len(nodes))
	for i, n := range nodes {
		domNodes[i] = n
	}
	_, err = fmt.Fprint(stdout, formatNodes(domNodes, cfg))
	return err
}
