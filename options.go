package html5core

import (
	"github.com/kestrel-parse/html5core/dom"
	"github.com/kestrel-parse/html5core/treebuilder"
)

// config holds parser configuration.
type config struct {
	encoding        string
	fragmentContext *treebuilder.FragmentContext
	iframeSrcdoc    bool
	strict          bool
	collectErrors   bool
	exactErrors     bool
	xmlCoercion     bool
	onScript        func(el *dom.Element)
}

// newConfig creates a new config with defaults and applies options.
func newConfig(opts ...Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Option configures the parser behavior.
type Option func(*config)

// WithEncoding sets the character encoding to use for parsing.
// This overrides automatic encoding detection.
//
// Common values: "utf-8", "windows-1252", "iso-8859-1"
func WithEncoding(enc string) Option {
	return func(c *config) {
		c.encoding = enc
	}
}

// WithFragment sets the parsing context for fragment parsing.
// This is typically used internally by ParseFragment.
func WithFragment(tagName string) Option {
	return func(c *config) {
		c.fragmentContext = &treebuilder.FragmentContext{
			TagName:   tagName,
			Namespace: "html",
		}
	}
}

// WithFragmentNS sets the parsing context with a specific namespace.
// Use this for parsing SVG or MathML fragments.
func WithFragmentNS(tagName, namespace string) Option {
	return func(c *config) {
		c.fragmentContext = &treebuilder.FragmentContext{
			TagName:   tagName,
			Namespace: namespace,
		}
	}
}

// WithIframeSrcdoc enables iframe srcdoc parsing mode.
// In this mode, the parser treats the input as the srcdoc attribute value.
func WithIframeSrcdoc() Option {
	return func(c *config) {
		c.iframeSrcdoc = true
	}
}

// WithStrictMode enables strict parsing mode.
// In this mode, the first parse error causes Parse to return an error.
// By default, parse errors are handled according to the HTML5 spec
// and parsing continues.
func WithStrictMode() Option {
	return func(c *config) {
		c.strict = true
	}
}

// WithCollectErrors enables error collection mode.
// Parse errors are collected and returned as a ParseErrors error
// (which can be unwrapped to get individual errors).
// Without this option, parse errors are silently recovered from.
func WithCollectErrors() Option {
	return func(c *config) {
		c.collectErrors = true
	}
}

// WithExactErrors copies the message of each collected tree-construction
// parse error into its Detail field. The message text is the same with or
// without this option; it does not include the offending token or the
// insertion mode. Has no effect unless combined with WithCollectErrors or
// WithStrictMode.
func WithExactErrors() Option {
	return func(c *config) {
		c.exactErrors = true
	}
}

// WithOnScript registers a callback invoked synchronously whenever a
// <script> element's end tag closes it during parsing, before the parser
// resumes — matching the HTML5 spec's "prepare the script element" timing.
// Hosts that execute script (or merely want to collect script contents
// as they're parsed, rather than walking the finished tree) use this
// instead of a post-parse Document.Query("script") pass.
func WithOnScript(fn func(el *dom.Element)) Option {
	return func(c *config) {
		c.onScript = fn
	}
}

// WithXMLCoercion enables XML-compatible serialization coercion in the
// tokenizer's text and comment output, for callers that intend to
// re-serialize the resulting tree as XML.
func WithXMLCoercion() Option {
	return func(c *config) {
		c.xmlCoercion = true
	}
}
