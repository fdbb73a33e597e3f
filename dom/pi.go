package dom

// ProcessingInstructionNodeType is the DOM node type for <?target data?>
// nodes, used only by the XML5 builder (HTML has no processing
// instructions in its content model).
const ProcessingInstructionNodeType NodeType = 7

// ProcessingInstruction represents an XML processing instruction node.
type ProcessingInstruction struct {
	parent Node

	// Target is the PI target (the identifier right after "<?").
	Target string

	// Data is everything between the target and the closing "?>".
	Data string
}

// NewProcessingInstruction creates a new processing instruction node.
func NewProcessingInstruction(target, data string) *ProcessingInstruction {
	return &ProcessingInstruction{Target: target, Data: data}
}

// Type implements Node.
func (p *ProcessingInstruction) Type() NodeType { return ProcessingInstructionNodeType }

// Parent implements Node.
func (p *ProcessingInstruction) Parent() Node { return p.parent }

// SetParent implements Node.
func (p *ProcessingInstruction) SetParent(parent Node) { p.parent = parent }

// Children implements Node (PI nodes have no children).
func (p *ProcessingInstruction) Children() []Node { return nil }

// AppendChild implements Node (no-op for PI nodes).
func (p *ProcessingInstruction) AppendChild(_ Node) {}

// InsertBefore implements Node (no-op for PI nodes).
func (p *ProcessingInstruction) InsertBefore(_, _ Node) {}

// RemoveChild implements Node (no-op for PI nodes).
func (p *ProcessingInstruction) RemoveChild(_ Node) {}

// ReplaceChild implements Node (no-op for PI nodes).
func (p *ProcessingInstruction) ReplaceChild(_, _ Node) Node { return nil }

// HasChildNodes implements Node.
func (p *ProcessingInstruction) HasChildNodes() bool { return false }

// Clone implements Node.
func (p *ProcessingInstruction) Clone(_ bool) Node {
	return &ProcessingInstruction{Target: p.Target, Data: p.Data}
}
