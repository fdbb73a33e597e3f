// Package html5core provides a pure Go HTML5 parser implementing the WHATWG HTML5 specification.
//
// html5core is a complete HTML5 parser that handles malformed HTML exactly as browsers do.
// It passes all 9,000+ tests in the official html5lib-tests suite.
//
// # Basic Usage
//
//	doc, err := html5core.Parse("<html><body><p>Hello!</p></body></html>")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Query with CSS selectors
//	ps, _ := doc.Query("p")
//	for _, p := range ps {
//		fmt.Println(p.Text())
//	}
//
// # Features
//
//   - 100% HTML5 compliant (WHATWG Living Standard)
//   - Zero dependencies (Go stdlib only)
//   - CSS selector support
//   - Streaming API for memory-efficient processing
//   - Encoding detection per HTML5 spec
//   - Fragment parsing for innerHTML-style use cases
//
// For more information, see https://github.com/kestrel-parse/html5core
package html5core

import (
	"github.com/kestrel-parse/html5core/dom"
	"github.com/kestrel-parse/html5core/domsink"
	"github.com/kestrel-parse/html5core/driver"
	"github.com/kestrel-parse/html5core/encoding"
	htmlerrors "github.com/kestrel-parse/html5core/errors"
	_ "github.com/kestrel-parse/html5core/selector" // Register selector functions with dom
	"github.com/kestrel-parse/html5core/tokenizer"
	"github.com/kestrel-parse/html5core/treebuilder"
)

// Version is the current version of html5core.
const Version = "0.1.0-dev"

// Parse parses an HTML string and returns a Document.
//
// The parser handles malformed HTML according to the WHATWG HTML5 specification,
// ensuring the same behavior as web browsers.
//
// Example:
//
//	doc, err := html5core.Parse("<html><body><p>Hello!</p></body></html>")
//	if err != nil {
//		// err contains parse errors if WithCollectErrors() was used
//	}
func Parse(html string, opts ...Option) (*dom.Document, error) {
	cfg := newConfig(opts...)
	return parse(html, cfg)
}

// ParseBytes parses HTML from a byte slice with automatic encoding detection.
//
// The encoding is chosen in this order:
//  1. The label given via WithEncoding, if it names a known encoding
//     (a leading BOM is stripped but does not override it)
//  2. BOM (Byte Order Mark)
//  3. <meta charset> or <meta http-equiv="Content-Type">
//  4. Fallback to windows-1252
//
// Example:
//
//	data, _ := os.ReadFile("page.html")
//	doc, err := html5core.ParseBytes(data)
func ParseBytes(html []byte, opts ...Option) (*dom.Document, error) {
	cfg := newConfig(opts...)

	// Detect and decode encoding
	decoded, enc, err := encoding.Decode(html, cfg.encoding)
	if err != nil {
		return nil, err
	}
	_ = enc // TODO: store detected encoding in document

	return parse(decoded, cfg)
}

// ParseFragment parses an HTML fragment in a specific context element.
//
// This is equivalent to setting element.innerHTML in browsers. The context
// determines how the fragment is parsed (e.g., parsing "<td>" in a "tr" context
// vs. in a "div" context produces different results).
//
// Example:
//
//	nodes, err := html5core.ParseFragment("<td>Cell</td>", "tr")
func ParseFragment(html string, context string, opts ...Option) ([]*dom.Element, error) {
	cfg := newConfig(opts...)
	cfg.fragmentContext = &treebuilder.FragmentContext{
		TagName:   context,
		Namespace: "html",
	}
	return parseFragment(html, cfg)
}

// parse is the internal parsing implementation.
func parse(html string, cfg *config) (*dom.Document, error) {
	tok := tokenizer.New(html)
	if cfg.xmlCoercion {
		tok.SetXMLCoercion(true)
	}
	tb := treebuilder.New(tok)
	if cfg.iframeSrcdoc {
		tb.SetIframeSrcdoc(true)
	}
	errSink := attachErrorSink(tb, cfg)
	d := driver.New(tok, tb)
	d.OnScript = cfg.onScript
	d.Run()

	if cfg.strict || cfg.collectErrors {
		parseErrs := gatherParseErrors(tok, errSink)
		if len(parseErrs) > 0 && cfg.strict {
			return nil, parseErrs[0]
		}
		if len(parseErrs) > 0 && cfg.collectErrors {
			return tb.Document(), htmlerrors.ParseErrors(parseErrs)
		}
	}

	return tb.Document(), nil
}

// attachErrorSink wires a domsink.Sink to tb purely to catch tree-construction
// parse errors (e.g. foster-parented characters); the sink's own Document is
// otherwise unused, since the tree builder constructs nodes directly against
// dom rather than through the TreeSink contract.
func attachErrorSink(tb *treebuilder.TreeBuilder, cfg *config) *domsink.Sink {
	if !cfg.strict && !cfg.collectErrors {
		return nil
	}
	s := domsink.New()
	s.CollectErrors = true
	s.ExactErrors = cfg.exactErrors
	tb.SetSink(s)
	return s
}

// gatherParseErrors merges tokenizer-level errors with any tree-construction
// errors collected via errSink, in the order they occurred.
func gatherParseErrors(tok *tokenizer.Tokenizer, errSink *domsink.Sink) []*htmlerrors.ParseError {
	parseErrs := convertTokenizerErrors(tok.Errors())
	if errSink != nil {
		parseErrs = append(parseErrs, errSink.Errors...)
	}
	return parseErrs
}

// parseFragment is the internal fragment parsing implementation.
func parseFragment(html string, cfg *config) ([]*dom.Element, error) {
	tok := tokenizer.New(html)
	if cfg.xmlCoercion {
		tok.SetXMLCoercion(true)
	}
	tb := treebuilder.NewFragment(tok, cfg.fragmentContext)
	if cfg.iframeSrcdoc {
		tb.SetIframeSrcdoc(true)
	}
	errSink := attachErrorSink(tb, cfg)
	d := driver.New(tok, tb)
	d.OnScript = cfg.onScript
	d.Run()

	if cfg.strict || cfg.collectErrors {
		parseErrs := gatherParseErrors(tok, errSink)
		if len(parseErrs) > 0 && cfg.strict {
			return nil, parseErrs[0]
		}
		if len(parseErrs) > 0 && cfg.collectErrors {
			return tb.FragmentNodes(), htmlerrors.ParseErrors(parseErrs)
		}
	}

	return tb.FragmentNodes(), nil
}

func convertTokenizerErrors(errs []tokenizer.ParseError) []*htmlerrors.ParseError {
	if len(errs) == 0 {
		return nil
	}
	out := make([]*htmlerrors.ParseError, 0, len(errs))
	for _, e := range errs {
		out = append(out, &htmlerrors.ParseError{
			Code:    e.Code,
			Message: htmlerrors.Message(e.Code),
			Line:    e.Line,
			Column:  e.Column,
		})
	}
	return out
}
