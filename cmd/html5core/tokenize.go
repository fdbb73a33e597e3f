package main

import (
	"fmt"
	"io"
	"os"

	"github.com/kestrel-parse/html5core/tokenizer"
	"github.com/spf13/cobra"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <file>",
	Short: "Print the raw token stream for an HTML document",
	Long: `Tokenize runs only the tokenization stage (no tree construction) and
prints each token's kind, name, and data, useful for debugging the
tokenizer in isolation.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTokenize(args[0], os.Stdin, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)
}

func runTokenize(path string, stdin io.Reader, stdout io.Writer) error {
	input, err := readInput(path, stdin)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	tok := tokenizer.New(string(input))
	for {
		tt := tok.Next()
		if err := printToken(stdout, tt); err != nil {
			return err
		}
		if tt.Type == tokenizer.EOF {
			break
		}
	}
	return nil
}

func printToken(w io.Writer, tt tokenizer.Token) error {
	switch tt.Type {
	case tokenizer.Character:
		_, err := fmt.Fprintf(w, "%s %q\n", tt.Type, tt.Data)
		return err
	case tokenizer.StartTag, tokenizer.EndTag:
		_, err := fmt.Fprintf(w, "%s <%s> selfclosing=%v attrs=%v\n", tt.Type, tt.Name, tt.SelfClosing, tt.Attrs)
		return err
	case tokenizer.Comment:
		_, err := fmt.Fprintf(w, "%s %q\n", tt.Type, tt.Data)
		return err
	case tokenizer.DOCTYPE:
		_, err := fmt.Fprintf(w, "%s %q\n", tt.Type, tt.Name)
		return err
	default:
		_, err := fmt.Fprintf(w, "%s\n", tt.Type)
		return err
	}
}
