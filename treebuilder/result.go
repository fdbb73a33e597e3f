package treebuilder

import (
	"github.com/kestrel-parse/html5core/dom"
	"github.com/kestrel-parse/html5core/tokenizer"
)

// ResultKind identifies which outcome of a single tree-construction dispatch
// step a ProcessResult carries. The teacher's mode handlers collapsed all of
// these into a single "reprocess the same token?" bool; ResultKind restores
// the distinctions a host (or the driver package) actually needs to act on.
type ResultKind int

const (
	// ResultDone means the token was fully consumed.
	ResultDone ResultKind = iota
	// ResultDoneAckSelfClosing is ResultDone, plus an acknowledgement that
	// the token's self-closing flag was honored (void and foreign elements
	// that don't stay on the stack of open elements).
	ResultDoneAckSelfClosing
	// ResultReprocess asks the caller to dispatch Token again; tb.mode has
	// already been updated to the mode it should be dispatched under.
	ResultReprocess
	// ResultReprocessForeign is ResultReprocess, but the request originated
	// from foreign-content dispatch rather than an HTML insertion mode.
	ResultReprocessForeign
	// ResultSplitWhitespace asks the caller to split Buf at the boundary
	// between its leading whitespace run and what follows, and dispatch
	// each part in turn.
	ResultSplitWhitespace
	// ResultScript carries the <script> element whose end tag just closed
	// it, for a host that wants to execute scripts before resuming parsing.
	ResultScript
	// ResultToPlaintext means the tokenizer switched to PLAINTEXT state,
	// which (per the HTML5 spec) never reverts.
	ResultToPlaintext
	// ResultToRawData means the tokenizer switched to one of the RCDATA /
	// RAWTEXT / script data states for the element that was just opened.
	ResultToRawData
)

// RawDataKind distinguishes which tokenizer state a ResultToRawData result
// switched to.
type RawDataKind int

const (
	RawDataRCDATA RawDataKind = iota
	RawDataRawtext
	RawDataScriptData
)

// ProcessResult is the outcome of one tree-construction dispatch step,
// returned by every insertion-mode handler and by processForeignContent.
type ProcessResult struct {
	Kind ResultKind

	// Mode and Token are set for ResultReprocess / ResultReprocessForeign.
	Mode  InsertionMode
	Token tokenizer.Token

	// Buf is set for ResultSplitWhitespace.
	Buf string

	// Script is set for ResultScript.
	Script *dom.Element

	// RawKind is set for ResultToRawData.
	RawKind RawDataKind
}

// Done reports that a dispatch step fully consumed its token.
var Done = ProcessResult{Kind: ResultDone}

// DoneAckSelfClosing is Done plus a self-closing acknowledgement.
var DoneAckSelfClosing = ProcessResult{Kind: ResultDoneAckSelfClosing}

// ToPlaintext reports that the tokenizer switched to PLAINTEXT state.
var ToPlaintext = ProcessResult{Kind: ResultToPlaintext}

// reprocess builds a ResultReprocess outcome for tok under tb's current
// (already updated) mode.
func (tb *TreeBuilder) reprocess(tok tokenizer.Token) ProcessResult {
	return ProcessResult{Kind: ResultReprocess, Mode: tb.mode, Token: tok}
}

// reprocessForeign builds a ResultReprocessForeign outcome for tok.
func (tb *TreeBuilder) reprocessForeign(tok tokenizer.Token) ProcessResult {
	return ProcessResult{Kind: ResultReprocessForeign, Mode: tb.mode, Token: tok}
}

// toRawData builds a ResultToRawData outcome for the raw-text state the
// tokenizer was just switched into.
func (tb *TreeBuilder) toRawData(kind RawDataKind) ProcessResult {
	return ProcessResult{Kind: ResultToRawData, RawKind: kind}
}

// scriptResult builds a ResultScript outcome carrying the element whose end
// tag just closed it.
func scriptResult(el *dom.Element) ProcessResult {
	return ProcessResult{Kind: ResultScript, Script: el}
}

// IsReprocess reports whether r asks the caller to dispatch its token again
// rather than move on to the next one.
func (r ProcessResult) IsReprocess() bool {
	return r.Kind == ResultReprocess || r.Kind == ResultReprocessForeign
}
