// Package sink defines the TreeSink contract: the boundary between tree
// construction (which only knows about tokens, insertion modes, and the
// algorithm) and whatever concrete tree a host wants built, modelled on
// html5ever's Sink trait. This module's treebuilder builds dom nodes
// directly; the only TreeSink methods it calls are ParseError and
// SetCurrentLine.
package sink

// Handle is an opaque reference to a node owned by a TreeSink
// implementation. Tree construction never looks inside a Handle; it only
// passes handles back to the sink that produced them.
type Handle interface{}

// QualName is a namespaced, optionally prefixed name, used for both element
// and attribute names.
type QualName struct {
	Prefix    string
	Namespace string
	Local     string
}

// Attribute is a single attribute as tree construction hands it to a sink.
type Attribute struct {
	Name  QualName
	Value string
}

// ElementFlags carries out-of-band information create_element needs beyond
// the name and attributes: whether it's a template (so the sink knows to
// allocate a content fragment for it), and whether foreign attribute
// adjustment already ran. The "already started" script state is set
// separately through MarkScriptAlreadyStarted.
type ElementFlags struct {
	Template        bool
	MathMLAttrsOK   bool // set for elements created in MathML/SVG content where attribute adjustment already ran
}

// NodeOrText is the sum type passed to Append/AppendBeforeSibling: either an
// already-created node handle, or raw text to be merged into an adjacent
// text node.
type NodeOrText struct {
	Node Handle
	Text string
	// IsText discriminates the two cases; Node is meaningless when true.
	IsText bool
}

// Text wraps a string as the NodeOrText text case.
func Text(s string) NodeOrText { return NodeOrText{Text: s, IsText: true} }

// NodeRef wraps a handle as the NodeOrText node case.
func NodeRef(h Handle) NodeOrText { return NodeOrText{Node: h} }

// InsertionPoint generalizes "where to append a foster-parented node" so
// that appenders don't need table-detection logic of their own: it's either
// a concrete location (end of a parent, or before a sibling) or the
// table-foster-parenting case, which the sink resolves via
// AppendBasedOnParentNode.
type InsertionPoint struct {
	Kind     InsertionKind
	Parent   Handle
	Sibling  Handle
	FosterElem     Handle
	FosterPrevElem Handle
}

// InsertionKind distinguishes the InsertionPoint variants.
type InsertionKind int

const (
	LastChild InsertionKind = iota
	BeforeSibling
	TableFosterParenting
)

// QuirksMode mirrors dom.QuirksMode without sink importing dom, so the
// interface stays adapter-agnostic.
type QuirksMode int

const (
	NoQuirks QuirksMode = iota
	Quirks
	LimitedQuirks
)

// FormAssociation carries the (current form, previous form) pair
// AssociateWithForm needs to replicate the "reset the form owner" algorithm.
type FormAssociation struct {
	Current  Handle
	Previous Handle
}

// TreeSink is the full contract of a tree-construction sink. A host
// implements this once per concrete tree representation; domsink is the
// implementation backing this module's own dom package. The treebuilder
// calls only ParseError and SetCurrentLine on it.
type TreeSink interface {
	GetDocument() Handle
	ElemName(h Handle) QualName

	CreateElement(name QualName, attrs []Attribute, flags ElementFlags) Handle
	CreateComment(text string) Handle
	CreatePI(target, data string) Handle

	Append(parent Handle, child NodeOrText)
	AppendBeforeSibling(sibling Handle, child NodeOrText)
	AppendBasedOnParentNode(elem, prevElem Handle, child NodeOrText)
	AppendDoctypeToDocument(name, publicID, systemID string)

	SameNode(a, b Handle) bool
	SetQuirksMode(mode QuirksMode)
	ParseError(message string)

	RemoveFromParent(h Handle)
	ReparentChildren(src, dst Handle)
	AddAttrsIfMissing(h Handle, attrs []Attribute)

	GetTemplateContents(h Handle) Handle
	MarkScriptAlreadyStarted(h Handle)
	AssociateWithForm(elem, form Handle, association FormAssociation)

	IsMathMLAnnotationXMLIntegrationPoint(h Handle) bool
	AllowDeclarativeShadowRoots(parent Handle) bool
	AttachDeclarativeShadow(host, template Handle, attrs []Attribute) bool

	Pop(h Handle)
	SetCurrentLine(n int)
}
