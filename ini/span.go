// Package ini implements a tolerant, line-oriented parser and syntax
// validator for the Unreal Engine 3 `.ini` configuration dialect.
//
// The package is split into three stages: a directive recognizer that
// splits source text into section headers, key-value pairs, and unknown
// lines (FromText), a property-value sub-grammar parser for the
// UnrealScript struct/array/terminal literal grammar (ParseValue), and a
// pluggable Validator that walks a Directives stream and reports
// ReportedErrors with byte-range Spans into the original text.
//
// Every structural type in this package borrows from the input text by
// byte offset rather than copying substrings. A Directives value and the
// string it was built from must be kept together for the lifetime of any
// Span derived from it.
package ini

import "fmt"

// Span is a half-open byte range [Start, End) into a source text.
type Span struct {
	Start int
	End   int
}

// Slice returns the substring of text covered by the span.
func (s Span) Slice(text string) string {
	return text[s.Start:s.End]
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Empty reports whether the span covers zero bytes.
func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) String() string {
	return fmt.Sprintf("Span(%d, %d)", s.Start, s.End)
}
