package ini

import "testing"

func TestFromText_SectionHeader(t *testing.T) {
	text := "[MyPackage.MyClass]"
	ds := FromText(text)
	if len(ds.Directives) != 1 {
		t.Fatalf("got %d directives, want 1", len(ds.Directives))
	}
	h, ok := ds.Directives[0].(SectionHeader)
	if !ok {
		t.Fatalf("directive is %T, want SectionHeader", ds.Directives[0])
	}
	if h.Span() != (Span{0, len(text)}) {
		t.Errorf("span = %v, want (0, %d)", h.Span(), len(text))
	}
	if want := (Span{1, len(text) - 1}); h.ObjName != want {
		t.Errorf("obj_name = %v, want %v", h.ObjName, want)
	}
}

func TestFromText_TrailingSpaceHeaderIsUnknown(t *testing.T) {
	text := "[MyPackage.MyClass] "
	ds := FromText(text)
	if len(ds.Directives) != 1 {
		t.Fatalf("got %d directives, want 1", len(ds.Directives))
	}
	u, ok := ds.Directives[0].(Unknown)
	if !ok {
		t.Fatalf("directive is %T, want Unknown", ds.Directives[0])
	}
	if want := (Span{0, len(text)}); u.Span() != want {
		t.Errorf("span = %v, want %v", u.Span(), want)
	}
	if u.HasPrevSpan {
		t.Errorf("expected no prev_span")
	}
}

func TestFromText_ScenarioThree(t *testing.T) {
	text := "\n+MyVariable=(Abc[0]=\"Def\", \\\\ \n    )"
	ds := FromText(text)
	if len(ds.Directives) != 2 {
		t.Fatalf("got %d directives, want 2: %+v", len(ds.Directives), ds.Directives)
	}

	kvp, ok := ds.Directives[0].(Kvp)
	if !ok {
		t.Fatalf("directive[0] is %T, want Kvp", ds.Directives[0])
	}
	if want := (Span{2, 12}); kvp.Ident != want {
		t.Errorf("ident = %v, want %v", kvp.Ident, want)
	}
	if want := (Span{13, 31}); kvp.Value != want {
		t.Errorf("value = %v, want %v", kvp.Value, want)
	}
	if kvp.Op != OpInsertUnique {
		t.Errorf("op = %v, want InsertUnique", kvp.Op)
	}

	u, ok := ds.Directives[1].(Unknown)
	if !ok {
		t.Fatalf("directive[1] is %T, want Unknown", ds.Directives[1])
	}
	if want := (Span{32, 37}); u.Span() != want {
		t.Errorf("span = %v, want %v", u.Span(), want)
	}
	if !u.HasPrevSpan || u.PrevSpan != (Span{1, 31}) {
		t.Errorf("prev_span = %v (has=%v), want (1, 31)", u.PrevSpan, u.HasPrevSpan)
	}

	errs := ds.Validate(SimpleSyntaxValidator{})
	if len(errs) != 3 {
		t.Fatalf("got %d errors, want 3: %+v", len(errs), errs)
	}
	if msg, ok := errs[0].Kind.IsCustom(); !ok || msg != "Expected `=`" {
		t.Errorf("errs[0] = %+v, want Custom(\"Expected `=`\")", errs[0])
	}
	if errs[0].Span != (Span{30, 31}) {
		t.Errorf("errs[0].Span = %v, want (30, 31)", errs[0].Span)
	}
	if errs[1].Kind != Other || errs[1].Span != (Span{32, 37}) {
		t.Errorf("errs[1] = %+v, want Other @ (32, 37)", errs[1])
	}
	if errs[2].Kind != SpaceAfterMultiline || errs[2].Span != (Span{28, 37}) {
		t.Errorf("errs[2] = %+v, want SpaceAfterMultiline @ (28, 37)", errs[2])
	}
}

func TestFromText_WellFormedContinuation(t *testing.T) {
	text := "+SpawnDistributionLists=(ListID=\"DefaultLeaders\", \\\\\n" +
		"    SpawnDistribution[0]=(Prop1=1), \\\\\n" +
		"    )"
	ds := FromText(text)
	if len(ds.Directives) != 1 {
		t.Fatalf("got %d directives, want 1: %+v", len(ds.Directives), ds.Directives)
	}
	if _, ok := ds.Directives[0].(Kvp); !ok {
		t.Fatalf("directive is %T, want Kvp", ds.Directives[0])
	}
	errs := ds.Validate(SimpleSyntaxValidator{})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %+v", errs)
	}
}

func TestFromText_UnknownPrevSpanPointsAtAbsorbedContinuationLine(t *testing.T) {
	// The Kvp absorbs "contB" as a continuation line. The following Unknown
	// directive's PrevSpan must point at that absorbed line, not at the
	// Kvp's own first physical line.
	text := "A=1\\\\\ncontB\n###"
	ds := FromText(text)
	if len(ds.Directives) != 2 {
		t.Fatalf("got %d directives, want 2: %+v", len(ds.Directives), ds.Directives)
	}

	if _, ok := ds.Directives[0].(Kvp); !ok {
		t.Fatalf("directive[0] is %T, want Kvp", ds.Directives[0])
	}

	u, ok := ds.Directives[1].(Unknown)
	if !ok {
		t.Fatalf("directive[1] is %T, want Unknown", ds.Directives[1])
	}
	if want := (Span{6, 11}); !u.HasPrevSpan || u.PrevSpan != want {
		t.Errorf("prev_span = %v (has=%v), want %v (%q)", u.PrevSpan, u.HasPrevSpan, want, want.Slice(text))
	}
}

func TestFromText_BlankLinesSkipped(t *testing.T) {
	text := "[A]\n\n\nkey=1\n"
	ds := FromText(text)
	if len(ds.Directives) != 2 {
		t.Fatalf("got %d directives, want 2: %+v", len(ds.Directives), ds.Directives)
	}
}

func TestSpansNeverExceedTextLength(t *testing.T) {
	inputs := []string{
		"",
		"\n",
		"[A]",
		"key=1",
		"+key=(a=1,\\\\\nb=2)",
		";comment\n//comment\nrandom text",
	}
	for _, in := range inputs {
		ds := FromText(in)
		for _, d := range ds.Directives {
			s := d.Span()
			if s.Start < 0 || s.End > len(in) || s.Start > s.End {
				t.Errorf("input %q: span %v out of bounds", in, s)
			}
		}
	}
}
