// Package driver runs a tokenizer and a tree builder to completion, the
// process-to-completion loop that used to live inline in html5core.go's
// parse/parseFragment. Pulling it out gives the ProcessResult outcomes
// surfaced by treebuilder.TreeBuilder.ProcessToken — Script, ToPlaintext,
// ToRawData — somewhere to go: a host embedding this package can observe
// them instead of the tree builder silently swallowing them.
package driver

import (
	"strings"

	"github.com/kestrel-parse/html5core/dom"
	"github.com/kestrel-parse/html5core/treebuilder"
	"github.com/kestrel-parse/html5core/tokenizer"
)

// ScriptHandler is notified when a <script> element's end tag closes it.
// Returning before resuming parsing mirrors the HTML5 spec's "prepare the
// script element" step, which runs scripts before the parser continues.
type ScriptHandler func(el *dom.Element)

// Driver pumps tokens from a Tokenizer through a TreeBuilder until EOF.
type Driver struct {
	Tok *tokenizer.Tokenizer
	TB  *treebuilder.TreeBuilder

	// OnScript, if set, is called synchronously whenever Feed/Run observes a
	// ResultScript outcome.
	OnScript ScriptHandler

	currentLine int
}

// New creates a Driver over an already-constructed tokenizer/tree-builder
// pair. Callers that only need Run's default behavior can ignore the
// returned *Driver's fields; those wanting to observe Script notifications
// set OnScript before calling Run.
func New(tok *tokenizer.Tokenizer, tb *treebuilder.TreeBuilder) *Driver {
	return &Driver{Tok: tok, TB: tb, currentLine: 1}
}

// Feed reads and dispatches a single token, reporting the ProcessResult the
// dispatch settled on and whether the token read was EOF.
func (d *Driver) Feed() (result treebuilder.ProcessResult, eof bool) {
	d.Tok.SetAllowCDATA(d.TB.AllowCDATA())
	tok := d.Tok.Next()
	if tok.Type == tokenizer.Character && strings.ContainsRune(tok.Data, '\n') {
		d.currentLine += strings.Count(tok.Data, "\n")
		d.TB.SetCurrentLine(d.currentLine)
	}
	result = d.TB.ProcessToken(tok)
	if result.Kind == treebuilder.ResultScript && d.OnScript != nil {
		d.OnScript(result.Script)
	}
	return result, tok.Type == tokenizer.EOF
}

// Run feeds tokens until EOF, returning the final ProcessResult.
func (d *Driver) Run() treebuilder.ProcessResult {
	var last treebuilder.ProcessResult
	for {
		result, eof := d.Feed()
		last = result
		if eof {
			return last
		}
	}
}
