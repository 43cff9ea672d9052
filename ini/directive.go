package ini

import "strings"

// KvpOperation is the assignment-style operator carried by a Kvp directive,
// selected by the first non-whitespace byte of the line.
type KvpOperation int

const (
	// OpSet is the default operation: no sigil was present.
	OpSet KvpOperation = iota
	OpInsert
	OpInsertUnique
	OpRemove
	OpClear
)

func (op KvpOperation) String() string {
	switch op {
	case OpInsertUnique:
		return "InsertUnique"
	case OpInsert:
		return "Insert"
	case OpRemove:
		return "Remove"
	case OpClear:
		return "Clear"
	default:
		return "Set"
	}
}

// kvpOperationFromByte maps a sigil byte to its KvpOperation per the table in
// the directive recognizer's spec. Any byte other than the four sigils is Set.
func kvpOperationFromByte(b byte) KvpOperation {
	switch b {
	case '+':
		return OpInsertUnique
	case '.':
		return OpInsert
	case '-':
		return OpRemove
	case '!':
		return OpClear
	default:
		return OpSet
	}
}

// Directive is the tagged union of the four recognized line shapes. Blank
// lines produce no Directive at all. Concrete cases are SectionHeader, Kvp,
// and Unknown.
type Directive interface {
	// Span returns the directive's own top-level span.
	Span() Span
	isDirective()
}

// SectionHeader is a line of the form `[Obj.Class]`.
type SectionHeader struct {
	span Span
	// ObjName is the span of the bracket interior, excluding the `[` and `]`.
	ObjName Span
}

func (h SectionHeader) Span() Span { return h.span }
func (SectionHeader) isDirective() {}

// Kvp is a key-value pair, optionally prefixed by an operation sigil and
// possibly spanning several continuation lines.
type Kvp struct {
	span Span
	// Ident is the identifier span, excluding surrounding whitespace and any
	// consumed operation sigil.
	Ident Span
	// Value is the span of the right-hand side, from just after `=` through
	// the end of the last absorbed continuation line.
	Value Span
	Op    KvpOperation
}

func (k Kvp) Span() Span { return k.span }
func (Kvp) isDirective()  {}

// Unknown is a non-blank line that is neither a section header nor a kvp.
type Unknown struct {
	span Span
	// PrevSpan is the span of the raw line immediately preceding this one, if
	// any — even if that line was absorbed into a preceding Kvp's
	// continuation. Used by the validator to diagnose broken continuations.
	PrevSpan    Span
	HasPrevSpan bool
}

func (u Unknown) Span() Span { return u.span }
func (Unknown) isDirective()  {}

// Directives is an immutable, ordered sequence of Directive values together
// with the text they were recognized from. Every Span reachable from a
// Directives value is only meaningful relative to Text.
type Directives struct {
	Text       string
	Directives []Directive
}

// FromText runs the line splitter and directive recognizer over text. It is
// infallible: malformed input never produces an error, only Unknown
// directives.
func FromText(text string) *Directives {
	lines := splitLines(text)
	var out []Directive

	var prevLine Span
	hasPrevLine := false

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		raw := line.Slice(text)

		switch {
		case isBracketed(raw):
			out = append(out, SectionHeader{
				span:    line,
				ObjName: Span{line.Start + 1, line.End - 1},
			})

		case containsEquals(raw):
			trimStart := line.Start + leadingWhitespace(raw)
			trimmed := text[trimStart:line.End]
			eq := strings.IndexByte(trimmed, '=')

			propStart := trimStart
			propEnd := trimStart + eq
			propEnd = propStart + len(strings.TrimRight(text[propStart:propEnd], " \t"))

			op := kvpOperationFromByte(text[trimStart])
			if op != OpSet {
				propStart++
			}

			valueSpan := Span{trimStart + eq + 1, line.End}

			testLine := text[trimStart:line.End]
			for strings.HasSuffix(testLine, `\\`) && i+1 < len(lines) {
				i++
				next := lines[i]
				testLine = next.Slice(text)
				valueSpan.End = next.End
			}

			out = append(out, Kvp{
				span:  Span{propStart, valueSpan.End},
				Ident: Span{propStart, propEnd},
				Value: valueSpan,
				Op:    op,
			})

		case !isAllWhitespace(raw):
			u := Unknown{span: line}
			if hasPrevLine {
				u.PrevSpan = prevLine
				u.HasPrevSpan = true
			}
			out = append(out, u)

		default:
			// blank line: skip
		}

		prevLine = lines[i]
		hasPrevLine = true
	}

	return &Directives{Text: text, Directives: out}
}

// splitLines partitions text into line spans, splitting on `\r`, `\n`, or
// `\r\n`, with terminators excluded from the spans. Runs of consecutive
// terminator bytes are consumed as a single separator. A trailing empty line
// after a final terminator is not produced.
func splitLines(text string) []Span {
	var lines []Span
	start := 0
	i := 0
	for i < len(text) {
		c := text[i]
		if c == '\r' || c == '\n' {
			lines = append(lines, Span{start, i})
			for i < len(text) && (text[i] == '\r' || text[i] == '\n') {
				i++
			}
			start = i
			continue
		}
		i++
	}
	if start < len(text) {
		lines = append(lines, Span{start, len(text)})
	}
	return lines
}

func isBracketed(raw string) bool {
	return len(raw) >= 2 && raw[0] == '[' && raw[len(raw)-1] == ']'
}

func leadingWhitespace(raw string) int {
	n := 0
	for n < len(raw) && (raw[n] == ' ' || raw[n] == '\t') {
		n++
	}
	return n
}

func containsEquals(raw string) bool {
	n := leadingWhitespace(raw)
	return strings.IndexByte(raw[n:], '=') >= 0
}

func isAllWhitespace(raw string) bool {
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case ' ', '\t', '\r', '\n':
		default:
			return false
		}
	}
	return true
}
