package ini

import "testing"

func TestValidate_CleanSectionHeader(t *testing.T) {
	ds := FromText("[MyPackage.MyClass]")
	errs := ds.Validate(SimpleSyntaxValidator{})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %+v", errs)
	}
}

func TestValidate_TrailingSpaceHeader(t *testing.T) {
	ds := FromText("[MyPackage.MyClass] ")
	errs := ds.Validate(SimpleSyntaxValidator{})
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %+v", len(errs), errs)
	}
	if errs[0].Kind != MalformedHeader || errs[0].Span != (Span{0, 20}) {
		t.Errorf("errs[0] = %+v", errs[0])
	}
}

func TestValidate_InvalidSectionHeader(t *testing.T) {
	ds := FromText("[not valid header]")
	errs := ds.Validate(SimpleSyntaxValidator{})
	if len(errs) != 1 || errs[0].Kind != InvalidIdent {
		t.Fatalf("errs = %+v", errs)
	}
}

func TestValidate_KvpGoodShapes(t *testing.T) {
	cases := []string{
		`Name=true`,
		`Name=FALSE`,
		`Name=42`,
		`Name=-17`,
		`Name=3.14`,
		`Name=SomeIdent`,
		`Name="a quoted string"`,
		`Name[3]=1`,
		`Name(2)=1`,
		`Name=(A=1, B="x")`,
	}
	for _, c := range cases {
		ds := FromText(c)
		errs := ds.Validate(SimpleSyntaxValidator{})
		if len(errs) != 0 {
			t.Errorf("input %q: unexpected errors: %+v", c, errs)
		}
	}
}

func TestValidate_BadValue(t *testing.T) {
	ds := FromText(`Name=not an ident with spaces`)
	errs := ds.Validate(SimpleSyntaxValidator{})
	if len(errs) != 1 || errs[0].Kind != BadValue {
		t.Fatalf("errs = %+v", errs)
	}
}

func TestValidate_InvalidIdent(t *testing.T) {
	ds := FromText(`9Name=1`)
	errs := ds.Validate(SimpleSyntaxValidator{})
	if len(errs) != 1 || errs[0].Kind != InvalidIdent {
		t.Fatalf("errs = %+v", errs)
	}
}

func TestValidate_SlashSlashCommentIdent(t *testing.T) {
	ds := FromText(`//Name=1`)
	errs := ds.Validate(SimpleSyntaxValidator{})
	if len(errs) != 1 || errs[0].Kind != SlashSlashComment {
		t.Fatalf("errs = %+v", errs)
	}
}

func TestValidate_SemicolonIdentSuppressed(t *testing.T) {
	ds := FromText(`;Name=1`)
	errs := ds.Validate(SimpleSyntaxValidator{})
	if len(errs) != 0 {
		t.Fatalf("expected suppression, got %+v", errs)
	}
}

func TestValidate_StandaloneComment(t *testing.T) {
	ds := FromText("; just a comment")
	errs := ds.Validate(SimpleSyntaxValidator{})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %+v", errs)
	}
}

func TestValidate_SlashSlashUnknownLine(t *testing.T) {
	ds := FromText("// a comment")
	errs := ds.Validate(SimpleSyntaxValidator{})
	if len(errs) != 1 || errs[0].Kind != SlashSlashComment {
		t.Fatalf("errs = %+v", errs)
	}
}

func TestValidate_OtherUnknownLine(t *testing.T) {
	ds := FromText("this is not a directive")
	errs := ds.Validate(SimpleSyntaxValidator{})
	if len(errs) != 1 || errs[0].Kind != Other {
		t.Fatalf("errs = %+v", errs)
	}
}

func TestValidate_DanglingContinuationAtEOF(t *testing.T) {
	ds := FromText("A=1\\\\\n")
	errs := ds.Validate(SimpleSyntaxValidator{})
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %+v", len(errs), errs)
	}
	msg, ok := errs[0].Kind.IsCustom()
	if !ok || msg != "Trailing \\\\ without following line" {
		t.Errorf("errs[0] = %+v, want Custom(\"Trailing \\\\\\\\ without following line\")", errs[0])
	}
}

func TestValidate_DanglingContinuationNoTrailingNewline(t *testing.T) {
	ds := FromText("A=1\\\\")
	errs := ds.Validate(SimpleSyntaxValidator{})
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %+v", len(errs), errs)
	}
	msg, ok := errs[0].Kind.IsCustom()
	if !ok || msg != "Trailing \\\\ without following line" {
		t.Errorf("errs[0] = %+v", errs[0])
	}
}

func TestValidate_Determinism(t *testing.T) {
	text := "[Pkg.Class]\nName=1\n//bad comment\n9Invalid=1\n"
	ds := FromText(text)
	first := ds.Validate(SimpleSyntaxValidator{})
	second := ds.Validate(SimpleSyntaxValidator{})
	if len(first) != len(second) {
		t.Fatalf("non-deterministic: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("error %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}
