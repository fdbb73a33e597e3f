// Package domsink adapts this module's concrete dom package to the
// sink.TreeSink contract, so the tree builder can be driven against a real
// document without depending on dom directly.
//
// Node introspection (tag name, attributes, namespace) still flows through
// concrete *dom.Element values rather than full type erasure behind
// sink.Handle: callers that need those details type-assert the handle back
// to *dom.Element, the same way rcdom hands html5ever's tree builder
// concrete node handles rather than an opaque trait object for everything.
// TreeSink exists so the *builder* never needs to do that assertion; a sink
// implementation is allowed to.
package domsink

import (
	"strings"

	"github.com/kestrel-parse/html5core/dom"
	"github.com/kestrel-parse/html5core/errors"
	"github.com/kestrel-parse/html5core/sink"
)

// Sink adapts a *dom.Document to sink.TreeSink.
type Sink struct {
	Document *dom.Document

	// Errors accumulates parse errors reported via ParseError when
	// CollectErrors is true.
	CollectErrors bool
	Errors        errors.ParseErrors

	// ExactErrors, when set alongside CollectErrors, copies the reported
	// message into Detail on each collected ParseError.
	ExactErrors bool

	currentLine int
}

// New creates a Sink wrapping a freshly allocated document.
func New() *Sink {
	return &Sink{Document: dom.NewDocument()}
}

func toNode(h sink.Handle) dom.Node {
	if h == nil {
		return nil
	}
	return h.(dom.Node)
}

func toElement(h sink.Handle) *dom.Element {
	if h == nil {
		return nil
	}
	if e, ok := h.(*dom.Element); ok {
		return e
	}
	return nil
}

// GetDocument implements sink.TreeSink.
func (s *Sink) GetDocument() sink.Handle { return s.Document }

// ElemName implements sink.TreeSink.
func (s *Sink) ElemName(h sink.Handle) sink.QualName {
	e := toElement(h)
	if e == nil {
		panic("domsink: ElemName called on a non-element handle")
	}
	return sink.QualName{Namespace: e.Namespace, Local: e.TagName}
}

// CreateElement implements sink.TreeSink.
func (s *Sink) CreateElement(name sink.QualName, attrs []sink.Attribute, flags sink.ElementFlags) sink.Handle {
	var e *dom.Element
	if name.Namespace == "" || name.Namespace == dom.NamespaceHTML {
		e = dom.NewElement(name.Local)
	} else {
		e = dom.NewElementNS(name.Local, name.Namespace)
	}
	for _, a := range attrs {
		e.Attributes.SetNS(a.Name.Namespace, a.Name.Local, a.Value)
	}
	if flags.Template {
		e.TemplateContent = dom.NewDocumentFragment()
	}
	if sr, ok := e.Attributes.Get("shadowrootmode"); ok {
		e.ShadowRootMode = strings.ToLower(sr)
	}
	return e
}

// CreateComment implements sink.TreeSink.
func (s *Sink) CreateComment(text string) sink.Handle { return dom.NewComment(text) }

// CreatePI implements sink.TreeSink.
func (s *Sink) CreatePI(target, data string) sink.Handle {
	return dom.NewProcessingInstruction(target, data)
}

func appendNodeOrText(parent dom.Node, child sink.NodeOrText) {
	if child.IsText {
		if appendText(parent, child.Text) {
			return
		}
		parent.AppendChild(dom.NewText(child.Text))
		return
	}
	parent.AppendChild(toNode(child.Node))
}

// appendText merges into a trailing text-node sibling if one exists, per the
// "adjacent text nodes must be merged" guarantee.
func appendText(parent dom.Node, text string) bool {
	children := parent.Children()
	if len(children) == 0 {
		return false
	}
	if t, ok := children[len(children)-1].(*dom.Text); ok {
		t.Data += text
		return true
	}
	return false
}

// Append implements sink.TreeSink.
func (s *Sink) Append(parent sink.Handle, child sink.NodeOrText) {
	appendNodeOrText(toNode(parent), child)
}

// AppendBeforeSibling implements sink.TreeSink.
func (s *Sink) AppendBeforeSibling(sibling sink.Handle, child sink.NodeOrText) {
	sib := toNode(sibling)
	parent := sib.Parent()
	if parent == nil {
		return
	}
	if child.IsText {
		if prev := previousSibling(parent, sib); prev != nil {
			if t, ok := prev.(*dom.Text); ok {
				t.Data += child.Text
				return
			}
		}
		parent.InsertBefore(dom.NewText(child.Text), sib)
		return
	}
	parent.InsertBefore(toNode(child.Node), sib)
}

func previousSibling(parent, of dom.Node) dom.Node {
	children := parent.Children()
	for i, c := range children {
		if c == of {
			if i == 0 {
				return nil
			}
			return children[i-1]
		}
	}
	return nil
}

// AppendBasedOnParentNode implements sink.TreeSink.
func (s *Sink) AppendBasedOnParentNode(elem, prevElem sink.Handle, child sink.NodeOrText) {
	e := toNode(elem)
	if e.Parent() != nil {
		s.AppendBeforeSibling(elem, child)
		return
	}
	appendNodeOrText(toNode(prevElem), child)
}

// AppendDoctypeToDocument implements sink.TreeSink.
func (s *Sink) AppendDoctypeToDocument(name, publicID, systemID string) {
	s.Document.Doctype = dom.NewDocumentType(name, publicID, systemID)
}

// SameNode implements sink.TreeSink.
func (s *Sink) SameNode(a, b sink.Handle) bool { return toNode(a) == toNode(b) }

// SetQuirksMode implements sink.TreeSink.
func (s *Sink) SetQuirksMode(mode sink.QuirksMode) {
	switch mode {
	case sink.Quirks:
		s.Document.QuirksMode = dom.Quirks
	case sink.LimitedQuirks:
		s.Document.QuirksMode = dom.LimitedQuirks
	default:
		s.Document.QuirksMode = dom.NoQuirks
	}
}

// ParseError implements sink.TreeSink.
func (s *Sink) ParseError(message string) {
	if !s.CollectErrors {
		return
	}
	pe := &errors.ParseError{
		Message: message,
		Line:    s.currentLine,
	}
	if s.ExactErrors {
		pe.Detail = message
	}
	s.Errors = append(s.Errors, pe)
}

// RemoveFromParent implements sink.TreeSink.
func (s *Sink) RemoveFromParent(h sink.Handle) {
	n := toNode(h)
	if p := n.Parent(); p != nil {
		p.RemoveChild(n)
	}
}

// ReparentChildren implements sink.TreeSink.
func (s *Sink) ReparentChildren(src, dst sink.Handle) {
	srcNode, dstNode := toNode(src), toNode(dst)
	for _, c := range append([]dom.Node(nil), srcNode.Children()...) {
		srcNode.RemoveChild(c)
		dstNode.AppendChild(c)
	}
}

// AddAttrsIfMissing implements sink.TreeSink.
func (s *Sink) AddAttrsIfMissing(h sink.Handle, attrs []sink.Attribute) {
	e := toElement(h)
	if e == nil {
		return
	}
	for _, a := range attrs {
		if !e.Attributes.HasNS(a.Name.Namespace, a.Name.Local) {
			e.Attributes.SetNS(a.Name.Namespace, a.Name.Local, a.Value)
		}
	}
}

// GetTemplateContents implements sink.TreeSink.
func (s *Sink) GetTemplateContents(h sink.Handle) sink.Handle {
	e := toElement(h)
	if e == nil || e.TemplateContent == nil {
		return nil
	}
	return e.TemplateContent
}

// MarkScriptAlreadyStarted implements sink.TreeSink.
func (s *Sink) MarkScriptAlreadyStarted(h sink.Handle) {
	if e := toElement(h); e != nil {
		e.ScriptAlreadyStarted = true
	}
}

// AssociateWithForm implements sink.TreeSink.
func (s *Sink) AssociateWithForm(elem, form sink.Handle, association sink.FormAssociation) {
	e := toElement(elem)
	f := toElement(form)
	if e == nil || f == nil {
		return
	}
	// Mirrors the "reset the form owner" check: only associate when the
	// candidate form is still the nearest form ancestor relationship
	// recorded at parse time (current), not a stale one (previous).
	if association.Current != nil && !s.SameNode(association.Current, form) {
		return
	}
	e.AssociatedForm = f
}

// IsMathMLAnnotationXMLIntegrationPoint implements sink.TreeSink.
func (s *Sink) IsMathMLAnnotationXMLIntegrationPoint(h sink.Handle) bool {
	e := toElement(h)
	if e == nil || e.Namespace != dom.NamespaceMathML || e.TagName != "annotation-xml" {
		return false
	}
	encoding := strings.ToLower(e.Attr("encoding"))
	return encoding == "text/html" || encoding == "application/xhtml+xml"
}

// AllowDeclarativeShadowRoots implements sink.TreeSink.
//
// The host dom package has no ShadowRoot node type, so declarative shadow
// roots are recorded on the host <template> element (see
// AttachDeclarativeShadow) rather than rejected outright; this sink always
// allows the request.
func (s *Sink) AllowDeclarativeShadowRoots(_ sink.Handle) bool { return true }

// AttachDeclarativeShadow implements sink.TreeSink.
func (s *Sink) AttachDeclarativeShadow(host, template sink.Handle, _ []sink.Attribute) bool {
	hostElem := toElement(host)
	tmplElem := toElement(template)
	if hostElem == nil || tmplElem == nil || tmplElem.ShadowRootMode == "" {
		return false
	}
	// This dom package represents a shadow tree as the template's own
	// content fragment; declaring it "attached" just means the host element
	// is allowed to have had a shadowrootmode template recognized at all.
	return true
}

// Pop implements sink.TreeSink.
func (s *Sink) Pop(_ sink.Handle) {}

// SetCurrentLine implements sink.TreeSink.
func (s *Sink) SetCurrentLine(n int) { s.currentLine = n }
