package main

import (
	"fmt"
	"io"
	"os"

	"github.com/kestrel-parse/html5core"
	"github.com/kestrel-parse/html5core/dom"
	// Import selector package to register selector functions via init()
	_ "github.com/kestrel-parse/html5core/selector"
	"github.com/spf13/cobra"
)

// Output format constants.
const (
	outputFormatHTML     = "html"
	outputFormatText     = "text"
	outputFormatMarkdown = "markdown"
)

type parseOptions struct {
	selector  string
	format    string
	first     bool
	separator string
	strip     bool
	pretty    bool
	indent    int
	strict    bool
}

var parseOpts parseOptions

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse an HTML document and print or query it",
	Long: `Parse reads an HTML file (or "-" for stdin), builds its DOM tree, and
prints it back out, optionally filtered by a CSS selector and reformatted
as text or Markdown.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runParse(args[0], os.Stdin, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)

	flags := parseCmd.Flags()
	flags.StringVarP(&parseOpts.selector, "selector", "s", "", "CSS selector to filter output")
	flags.StringVarP(&parseOpts.format, "format", "f", outputFormatHTML, "Output format: html, text, markdown")
	flags.BoolVar(&parseOpts.first, "first", false, "Output only first match")
	flags.StringVar(&parseOpts.separator, "separator", " ", "Separator for text output")
	flags.BoolVar(&parseOpts.strip, "strip", true, "Strip whitespace from text")
	flags.BoolVar(&parseOpts.pretty, "pretty", true, "Pretty-print HTML output")
	flags.IntVar(&parseOpts.indent, "indent", 2, "Indentation size for pretty-print")
	flags.BoolVar(&parseOpts.strict, "strict", false, "Fail on the first parse error instead of recovering")
}

func runParse(path string, stdin io.Reader, stdout io.Writer) error {
	switch parseOpts.format {
	case outputFormatHTML, outputFormatText, outputFormatMarkdown:
	default:
		return fmt.Errorf("invalid format %q: must be html, text, or markdown", parseOpts.format)
	}

	input, err := readInput(path, stdin)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	var opts []html5core.Option
	if parseOpts.strict {
		opts = append(opts, html5core.WithStrictMode())
	}
	doc, err := html5core.ParseBytes(input, opts...)
	if err != nil {
		return fmt.Errorf("parsing HTML: %w", err)
	}

	var nodes []dom.Node
	if parseOpts.selector != "" {
		elements, err := doc.Query(parseOpts.selector)
		if err != nil {
			return fmt.Errorf("invalid selector: %w", err)
		}
		if parseOpts.first && len(elements) > 0 {
			elements = elements[:1]
		}
		for _, elem := range elements {
			nodes = append(nodes, elem)
		}
	} else {
		nodes = []dom.Node{doc}
	}

	output := formatNodes(nodes, &parseOpts)
	_, err = fmt.Fprint(stdout, output)
	return err
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}
