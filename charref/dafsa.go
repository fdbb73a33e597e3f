// Package charref resolves HTML named and numeric character references.
//
// The named-reference table is stored as a packed trie modeled on the
// DAFSA node layout html5ever generates at build time (see
// tokenizer/char_ref/codegen.rs in the upstream project): each node is a
// single 32-bit word carrying the matched byte, a terminal flag, a
// last-sibling flag, and the index of its first child, with siblings laid
// out contiguously so that scanning stops at the last-child marker. This
// port widens the per-terminal reference index from 8 to 10 bits, since the
// vocabulary resolved here has more distinct output values than fit in a
// byte; see DESIGN.md.
package charref

import (
	"sort"

	"github.com/kestrel-parse/html5core/internal/constants"
)

type node uint32

const (
	isTerminalFlag  = 1 << 23
	isLastChildFlag = 1 << 22
	hashBits        = 10
	hashMask        = (1 << hashBits) - 1
	hashShift       = 12
	childMask       = (1 << 12) - 1
)

func newNode(codePoint byte, hashValue int, terminal, lastChild bool, firstChildIndex int) node {
	v := uint32(codePoint) << 24
	v |= (uint32(hashValue) & hashMask) << hashShift
	if terminal {
		v |= isTerminalFlag
	}
	if lastChild {
		v |= isLastChildFlag
	}
	v |= uint32(firstChildIndex) & childMask
	return node(v)
}

func (n node) codePoint() byte       { return byte(n >> 24) }
func (n node) hashValue() int        { return int((uint32(n) >> hashShift) & hashMask) }
func (n node) isTerminal() bool      { return uint32(n)&isTerminalFlag != 0 }
func (n node) isLastChild() bool     { return uint32(n)&isLastChildFlag != 0 }
func (n node) firstChildIndex() int  { return int(uint32(n) & childMask) }

// CharRef is a resolved character reference: one or two code points, as with
// references like "acE;" that decode to a base character plus a combining
// mark.
type CharRef struct {
	Chars    [2]rune
	NumChars int
}

var (
	dafsaNodes []node
	references [][2]rune
	// rootChildIndex is the index of the first top-level node.
	rootChildIndex int
)

type trieNode struct {
	children map[byte]*trieNode
	terminal bool
	value    [2]rune

	firstChildIndex int
	assignedIndex   int
}

func init() {
	buildDAFSA()
}

func buildDAFSA() {
	names := make([]string, 0, len(constants.NamedEntities))
	for name := range constants.NamedEntities {
		names = append(names, name)
	}
	sort.Strings(names)

	root := &trieNode{children: map[byte]*trieNode{}}
	for _, name := range names {
		cur := root
		for i := 0; i < len(name); i++ {
			b := name[i]
			child, ok := cur.children[b]
			if !ok {
				child = &trieNode{children: map[byte]*trieNode{}}
				cur.children[b] = child
			}
			cur = child
		}
		cur.terminal = true
		cur.value = decodeToCharPair(constants.NamedEntities[name])
	}

	valueIndex := map[[2]rune]int{}
	referenceOf := func(v [2]rune) int {
		if idx, ok := valueIndex[v]; ok {
			return idx
		}
		idx := len(references)
		valueIndex[v] = idx
		references = append(references, v)
		return idx
	}

	// Index 0 is reserved so that a zero first-child index means "no children".
	nodes := []node{0}
	queue := []*trieNode{root}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		keys := make([]byte, 0, len(cur.children))
		for k := range cur.children {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

		if len(keys) == 0 {
			cur.firstChildIndex = 0
			continue
		}
		cur.firstChildIndex = len(nodes)
		for i, k := range keys {
			child := cur.children[k]
			hv := 0
			if child.terminal {
				hv = referenceOf(child.value)
			}
			last := i == len(keys)-1
			nodes = append(nodes, newNode(k, hv, child.terminal, last, 0))
			child.assignedIndex = len(nodes) - 1
			queue = append(queue, child)
		}
	}

	// Second pass: now every node's own firstChildIndex is known, patch the
	// placeholder written when its parent emitted it.
	var patch func(t *trieNode)
	patch = func(t *trieNode) {
		if t != root {
			idx := t.assignedIndex
			n := nodes[idx]
			nodes[idx] = newNode(n.codePoint(), n.hashValue(), n.isTerminal(), n.isLastChild(), t.firstChildIndex)
		}
		for _, child := range t.children {
			patch(child)
		}
	}
	patch(root)

	dafsaNodes = nodes
	rootChildIndex = root.firstChildIndex
}

func decodeToCharPair(s string) [2]rune {
	var out [2]rune
	for i, r := range s {
		_ = i
		if out[0] == 0 {
			out[0] = r
		} else {
			out[1] = r
			break
		}
	}
	return out
}

func matchChild(start int, b byte) (node, bool) {
	if start == 0 {
		return 0, false
	}
	i := start
	for {
		n := dafsaNodes[i]
		if n.codePoint() == b {
			return n, true
		}
		if n.isLastChild() {
			return 0, false
		}
		i++
	}
}

// Resolve walks the DAFSA looking for the longest prefix of name that names
// a valid reference. It returns the decoded value for that prefix, the
// number of bytes of name it consumed, and whether any terminal prefix was
// found at all. Callers that need an exact match (e.g. numeric-escape-style
// consumers requiring the whole token be a known name) should compare the
// returned length against len(name).
func Resolve(name string) (CharRef, int, bool) {
	bestLen := 0
	var best [2]rune

	childStart := rootChildIndex
	for i := 0; i < len(name); i++ {
		n, ok := matchChild(childStart, name[i])
		if !ok {
			break
		}
		if n.isTerminal() {
			bestLen = i + 1
			best = references[n.hashValue()]
		}
		childStart = n.firstChildIndex()
	}

	if bestLen == 0 {
		return CharRef{}, 0, false
	}
	numChars := 1
	if best[1] != 0 {
		numChars = 2
	}
	return CharRef{Chars: best, NumChars: numChars}, bestLen, true
}

// ResolveExact reports the decoded value only when the entire name matches a
// known reference (used for the semicolon-terminated and attribute-context
// lookups, where a partial prefix match must not be accepted).
func ResolveExact(name string) (CharRef, bool) {
	ref, n, ok := Resolve(name)
	if !ok || n != len(name) {
		return CharRef{}, false
	}
	return ref, true
}
