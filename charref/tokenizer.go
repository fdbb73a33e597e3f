package charref

// Source is the pull interface the character-reference tokenizer consumes.
// It mirrors the buffered peek/discard style the upstream tokenizers drive
// their sub-tokenizers with, so a State machine can be stepped forward one
// rune at a time as input becomes available across chunk boundaries.
type Source interface {
	// Peek returns the next rune without consuming it. ok is false when no
	// rune is currently buffered (the caller should supply more input and
	// retry, not treat this as end of stream).
	Peek() (r rune, ok bool)
	Discard()
}

// StepStatus is the result of a single Step call.
type StepStatus int

const (
	// Stuck means the tokenizer needs more input before it can progress.
	Stuck StepStatus = iota
	// Progress means a rune was consumed and the caller should call Step
	// again.
	Progress
	// Done means the reference has been fully resolved; call Result.
	Done
)

type state int

const (
	stateBegin state = iota
	stateOctothorpe
	stateNumeric
	stateNumericSemicolon
	stateNamed
	stateBogusName
)

// Tokenizer resolves a single character reference starting at the '&' that
// has already been consumed by the caller. It implements the named/numeric
// branch of the WHATWG character-reference state, built as a standalone
// stepper so it can be driven from either the HTML tokenizer (attribute and
// data contexts) or any other caller that needs one-reference-at-a-time
// resolution.
type Tokenizer struct {
	state              state
	isConsumedInAttribute bool

	base         int
	num          int64
	numTooBig    bool
	seenDigit    bool

	nameBuf []byte

	result     CharRef
	done       bool
	errDetail  string
	unconsumed string
}

// New creates a character-reference tokenizer. consumedInAttribute controls
// the legacy no-semicolon matching rule: inside an attribute value, a named
// reference without a trailing semicolon is only honored when what follows
// is not alphanumeric or '=', to avoid breaking things like `href="?a&copy"`.
func New(consumedInAttribute bool) *Tokenizer {
	return &Tokenizer{isConsumedInAttribute: consumedInAttribute}
}

// LastError returns a human-readable description of the most recent
// tokenizing error (e.g. a missing semicolon), or "" if none occurred.
func (t *Tokenizer) LastError() string { return t.errDetail }

// Result returns the resolved reference after Step has returned Done. If no
// valid reference was found, NumChars is 0 and the caller should treat the
// consumed input (available via Unconsumed) as literal text.
func (t *Tokenizer) Result() CharRef { return t.result }

// Unconsumed returns the characters of a named reference that Step consumed
// from src but that are not part of the resolved reference, so the caller
// can emit them as literal text.
func (t *Tokenizer) Unconsumed() string { return t.unconsumed }

// Step advances the state machine by at most one rune.
func (t *Tokenizer) Step(src Source) StepStatus {
	if t.done {
		return Done
	}
	switch t.state {
	case stateBegin:
		return t.stepBegin(src)
	case stateOctothorpe:
		return t.stepOctothorpe(src)
	case stateNumeric:
		return t.stepNumeric(src)
	case stateNumericSemicolon:
		return t.stepNumericSemicolon(src)
	case stateNamed:
		return t.stepNamed(src)
	case stateBogusName:
		return t.stepBogusName(src)
	default:
		return Stuck
	}
}

func (t *Tokenizer) finish(ref CharRef) StepStatus {
	t.result = ref
	t.done = true
	return Done
}

func (t *Tokenizer) stepBegin(src Source) StepStatus {
	r, ok := src.Peek()
	if !ok {
		return Stuck
	}
	switch {
	case r == '#':
		src.Discard()
		t.state = stateOctothorpe
		return Progress
	case isASCIIAlnum(r):
		t.state = stateNamed
		t.nameBuf = t.nameBuf[:0]
		return Progress
	default:
		return t.finish(CharRef{})
	}
}

func (t *Tokenizer) stepOctothorpe(src Source) StepStatus {
	r, ok := src.Peek()
	if !ok {
		return Stuck
	}
	if r == 'x' || r == 'X' {
		src.Discard()
		t.base = 16
	} else {
		t.base = 10
	}
	t.state = stateNumeric
	return Progress
}

func (t *Tokenizer) stepNumeric(src Source) StepStatus {
	r, ok := src.Peek()
	if !ok {
		return Stuck
	}
	if d, valid := digitValue(r, t.base); valid {
		src.Discard()
		t.num = t.num*int64(t.base) + int64(d)
		if t.num > 0x10FFFF {
			t.numTooBig = true
		}
		t.seenDigit = true
		return Progress
	}
	if !t.seenDigit {
		// No digits consumed at all: "&#;" or "&#x;" — emit the replacement
		// character without consuming anything past the octothorpe.
		t.errDetail = "absence of digits in numeric character reference"
		return t.finish(CharRef{Chars: [2]rune{0xFFFD}, NumChars: 1})
	}
	t.state = stateNumericSemicolon
	return Progress
}

func (t *Tokenizer) stepNumericSemicolon(src Source) StepStatus {
	r, ok := src.Peek()
	if !ok {
		return Stuck
	}
	if r == ';' {
		src.Discard()
	} else {
		t.errDetail = "missing semicolon after numeric character reference"
	}
	return t.finish(t.resolveNumeric())
}

func (t *Tokenizer) resolveNumeric() CharRef {
	if t.numTooBig {
		return CharRef{Chars: [2]rune{0xFFFD}, NumChars: 1}
	}
	cp := int(t.num)
	if repl, ok := constantsNumericReplacement(cp); ok {
		return CharRef{Chars: [2]rune{repl}, NumChars: 1}
	}
	if cp == 0 || cp > 0x10FFFF || (cp >= 0xD800 && cp <= 0xDFFF) {
		return CharRef{Chars: [2]rune{0xFFFD}, NumChars: 1}
	}
	return CharRef{Chars: [2]rune{rune(cp)}, NumChars: 1}
}

func (t *Tokenizer) stepNamed(src Source) StepStatus {
	r, ok := src.Peek()
	if !ok {
		return Stuck
	}
	if isASCIIAlnum(r) {
		src.Discard()
		t.nameBuf = append(t.nameBuf, byte(r))
		return Progress
	}
	name := string(t.nameBuf)
	if r == ';' {
		if ref, matched := ResolveExact(name); matched {
			src.Discard()
			return t.finish(ref)
		}
		t.state = stateBogusName
		return Progress
	}

	// No semicolon: only the legacy (no-semicolon) subset may match, and
	// only the longest such prefix.
	ref, n, found := Resolve(name)
	if found && isLegacyPrefix(name[:n]) {
		if t.isConsumedInAttribute {
			next := rune(0)
			if n < len(name) {
				next = rune(name[n])
			} else if peeked, ok := src.Peek(); ok {
				next = peeked
			}
			if isASCIIAlnum(next) || next == '=' {
				t.state = stateBogusName
				return Progress
			}
		}
		// The trailing bytes of name that weren't part of the match were
		// already discarded from src; hand them back through Unconsumed.
		t.unconsumed = name[n:]
		return t.finish(ref)
	}
	t.state = stateBogusName
	return Progress
}

func (t *Tokenizer) stepBogusName(src Source) StepStatus {
	r, ok := src.Peek()
	if !ok {
		return Stuck
	}
	if isASCIIAlnum(r) {
		src.Discard()
		t.nameBuf = append(t.nameBuf, byte(r))
		return Progress
	}
	t.unconsumed = string(t.nameBuf)
	if r == ';' {
		src.Discard()
		t.unconsumed += ";"
	}
	return t.finish(CharRef{})
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func digitValue(r rune, base int) (int, bool) {
	var v int
	switch {
	case r >= '0' && r <= '9':
		v = int(r - '0')
	case r >= 'a' && r <= 'f':
		v = int(r-'a') + 10
	case r >= 'A' && r <= 'F':
		v = int(r-'A') + 10
	default:
		return 0, false
	}
	if v >= base {
		return 0, false
	}
	return v, true
}

func isLegacyPrefix(name string) bool {
	return legacyLookup(name)
}

