package ini

import (
	"regexp"
	"strconv"
	"strings"
)

// Regexes for the three identifier shapes. Compiled once at package
// initialization and reused by every SimpleSyntaxValidator, matching the
// Rust original's once_cell-backed regexes.
var (
	keyPattern    = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*(\[(0|[1-9][0-9]*)\]|\((0|[1-9][0-9]*)\))?$`)
	objectPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*([ .][A-Za-z][A-Za-z0-9_]*)?$`)
	identPattern  = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)
)

// DiagResult is the three-way outcome of a Validator entry point.
type DiagResult int

const (
	// DiagResultOk means the directive matched a good shape.
	DiagResultOk DiagResult = iota
	// DiagResultNone means the validator has no opinion on this directive.
	DiagResultNone
	// DiagResultErr means one or more errors were found.
	DiagResultErr
)

// Diag is the result of visiting one directive.
type Diag struct {
	Result DiagResult
	Errors []ReportedError
}

func diagOk() Diag   { return Diag{Result: DiagResultOk} }
func diagNone() Diag { return Diag{Result: DiagResultNone} }
func diagErr(errs ...ReportedError) Diag {
	return Diag{Result: DiagResultErr, Errors: errs}
}

// Validator is a pluggable rule set applied to each directive in a
// Directives stream. Implementations may substitute stricter or looser
// rules without touching the directive layer.
type Validator interface {
	VisitSectionHeader(text string, h SectionHeader) Diag
	VisitKvp(text string, k Kvp) Diag
	VisitUnknown(text string, u Unknown) Diag
}

// Validate walks ds.Directives in order, dispatching each to the matching
// Validator entry point, and concatenates every Err result's errors in
// directive order. The result is a pure function of ds and v: repeated
// calls produce byte-identical output.
func (ds *Directives) Validate(v Validator) []ReportedError {
	var errs []ReportedError
	for _, d := range ds.Directives {
		var diag Diag
		switch dd := d.(type) {
		case SectionHeader:
			diag = v.VisitSectionHeader(ds.Text, dd)
		case Kvp:
			diag = v.VisitKvp(ds.Text, dd)
		case Unknown:
			diag = v.VisitUnknown(ds.Text, dd)
		}
		if diag.Result == DiagResultErr {
			errs = append(errs, diag.Errors...)
		}
	}
	return errs
}

// SimpleSyntaxValidator is the default rule set: identifier and header
// shape checks, value-grammar well-formedness, and comment/continuation
// anomaly detection.
type SimpleSyntaxValidator struct{}

func (SimpleSyntaxValidator) VisitSectionHeader(text string, h SectionHeader) Diag {
	interior := h.ObjName.Slice(text)
	if objectPattern.MatchString(interior) {
		return diagOk()
	}
	return diagErr(ReportedError{Kind: InvalidIdent, Span: h.ObjName})
}

func (SimpleSyntaxValidator) VisitKvp(text string, k Kvp) Diag {
	var errs []ReportedError

	identText := k.Ident.Slice(text)
	if !keyPattern.MatchString(identText) {
		trimmed := strings.TrimSpace(identText)
		switch {
		case strings.HasPrefix(trimmed, ";"):
			// The line is treated as a comment even though the recognizer
			// produced a Kvp; suppress every further check.
			return diagOk()
		case strings.HasPrefix(trimmed, "//"):
			errs = append(errs, ReportedError{Kind: SlashSlashComment, Span: k.Ident})
		default:
			errs = append(errs, ReportedError{Kind: InvalidIdent, Span: k.Ident})
		}
	}

	errs = append(errs, validatePropertyText(text, k.Value)...)

	if len(errs) == 0 {
		return diagOk()
	}
	return diagErr(errs...)
}

func (SimpleSyntaxValidator) VisitUnknown(text string, u Unknown) Diag {
	lineText := u.Span().Slice(text)
	trimmed := strings.TrimSpace(lineText)

	if strings.HasPrefix(trimmed, ";") {
		return diagOk()
	}

	var errs []ReportedError
	reported := false

	if strings.HasPrefix(trimmed, "//") {
		errs = append(errs, ReportedError{Kind: SlashSlashComment, Span: u.Span()})
		reported = true
	} else if isBracketedIgnoringComment(lineText) {
		errs = append(errs, ReportedError{Kind: MalformedHeader, Span: u.Span()})
		reported = true
	}

	if !reported {
		errs = append(errs, ReportedError{Kind: Other, Span: u.Span()})
	}

	if u.HasPrevSpan {
		prevText := u.PrevSpan.Slice(text)
		if !strings.HasSuffix(prevText, `\\`) {
			rtrimmed := strings.TrimRight(prevText, " \t\r\n")
			if idx := strings.LastIndex(rtrimmed, `\\`); idx >= 0 {
				errs = append(errs, ReportedError{
					Kind: SpaceAfterMultiline,
					Span: Span{u.PrevSpan.Start + idx, u.Span().End},
				})
			}
		}
	}

	if len(errs) == 0 {
		return diagOk()
	}
	return diagErr(errs...)
}

// isBracketedIgnoringComment reports whether line, with any trailing
// `;`-comment stripped and the remainder trimmed, begins with `[` and ends
// with `]`.
func isBracketedIgnoringComment(line string) bool {
	if i := strings.IndexByte(line, ';'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	return len(line) >= 2 && line[0] == '[' && line[len(line)-1] == ']'
}

// validatePropertyText implements the value-validation rules from §4.5:
// quoted literals, booleans, numeric literals, bare identifiers, and the
// parenthesized value grammar are all accepted; anything else is BadValue.
func validatePropertyText(text string, valueSpan Span) []ReportedError {
	if valueSpan.Empty() {
		return nil
	}

	trimStart := valueSpan.Start
	trimEnd := valueSpan.End
	for trimStart < trimEnd && isSpaceByte(text[trimStart]) {
		trimStart++
	}
	for trimEnd > trimStart && isSpaceByte(text[trimEnd-1]) {
		trimEnd--
	}
	if trimStart == trimEnd {
		return nil
	}
	trimmedSpan := Span{trimStart, trimEnd}

	raw := text[trimStart:trimEnd]

	// A dangling continuation marker with nothing left to continue into:
	// the recognizer couldn't absorb a following line, so this is the
	// broken-continuation case from §4.2/§7. Compare against the end of the
	// last physical line, not len(text): splitLines excludes line
	// terminators from every span, so a trailing "\n" after the final line
	// must not count as more content to continue into.
	if strings.HasSuffix(raw, `\\`) && valueSpan.End >= lastLineEnd(text) {
		return []ReportedError{{
			Kind: Custom("Trailing \\\\ without following line"),
			Span: Span{trimEnd - 2, trimEnd},
		}}
	}

	collapsed := collapseContinuations(raw)

	if strings.HasPrefix(collapsed, `"`) {
		return nil
	}
	if strings.EqualFold(collapsed, "true") || strings.EqualFold(collapsed, "false") {
		return nil
	}
	if _, err := strconv.ParseInt(collapsed, 10, 32); err == nil {
		return nil
	}
	if _, err := strconv.ParseFloat(collapsed, 32); err == nil {
		return nil
	}
	if identPattern.MatchString(collapsed) {
		return nil
	}
	if strings.HasPrefix(collapsed, "(") {
		_, perr := ParseValue(collapsed)
		if perr == nil {
			return nil
		}
		pos := trimmedSpan.Start + perr.Pos
		return []ReportedError{{Kind: Custom(perr.Msg), Span: Span{pos, pos + 1}}}
	}

	return []ReportedError{{Kind: BadValue, Span: trimmedSpan}}
}

// lastLineEnd returns the end offset of the last physical line in text,
// i.e. len(text) with any trailing run of `\r`/`\n` terminator bytes
// excluded — matching how splitLines bounds its final line span.
func lastLineEnd(text string) int {
	end := len(text)
	for end > 0 && (text[end-1] == '\r' || text[end-1] == '\n') {
		end--
	}
	return end
}

// collapseContinuations splices `\\` followed by a newline (and any
// subsequent run of whitespace) out of value, replacing each occurrence
// with a single space, so later shape checks see one logical line.
func collapseContinuations(value string) string {
	if !strings.ContainsAny(value, "\r\n") {
		return value
	}

	var b strings.Builder
	i := 0
	for i < len(value) {
		c := value[i]
		if (c == '\r' || c == '\n') && i >= 2 && value[i-2] == '\\' && value[i-1] == '\\' {
			// Drop the two backslashes already written and replace the
			// newline plus any trailing whitespace run with one space.
			s := b.String()
			b.Reset()
			b.WriteString(s[:len(s)-2])
			b.WriteByte(' ')
			i++
			for i < len(value) && (value[i] == ' ' || value[i] == '\t' || value[i] == '\r' || value[i] == '\n') {
				i++
			}
			continue
		}
		b.WriteByte(c)
		i++
	}
	return b.String()
}
