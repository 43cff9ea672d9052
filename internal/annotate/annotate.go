// Package annotate implements the editor adapter: given a source string, it
// runs the default validator and resolves each diagnostic's span endpoints
// to 1-based line/column pairs, ready to serialize to an editor's inline
// diagnostics API. It mirrors wasm-ue3-config-parser/src/lib.rs's check().
package annotate

import (
	"github.com/robojumper/ue3-config-parser/ini"
	"github.com/robojumper/ue3-config-parser/internal/linecol"
)

// Annotation is one resolved diagnostic, ready for JSON serialization.
type Annotation struct {
	Err   string `json:"err"`
	Line  int    `json:"line"`
	Col   int    `json:"col"`
	ELine int    `json:"eline"`
	ECol  int    `json:"ecol"`
}

// Check parses text, validates it with v (the default SimpleSyntaxValidator
// when v is nil), and returns one Annotation per diagnostic in directive
// order.
func Check(text string, v ini.Validator) []Annotation {
	if v == nil {
		v = ini.SimpleSyntaxValidator{}
	}

	directives := ini.FromText(text)
	errs := directives.Validate(v)

	lookup := linecol.New(text)
	annots := make([]Annotation, 0, len(errs))
	for _, e := range errs {
		line, col := lookup.Get(e.Span.Start)
		eline, ecol := lookup.Get(e.Span.End)
		annots = append(annots, Annotation{
			Err:   e.Kind.EditorMessage(),
			Line:  line,
			Col:   col,
			ELine: eline,
			ECol:  ecol,
		})
	}
	return annots
}
