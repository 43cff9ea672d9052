package ini

import "testing"

func collectTokens(text string) []TokenKind {
	lex := NewLexer(text)
	var kinds []TokenKind
	for {
		tok, ok := lex.Next()
		if !ok {
			break
		}
		kinds = append(kinds, tok.Kind)
	}
	return kinds
}

func TestLexer_Basic(t *testing.T) {
	got := collectTokens(`(Prop1=1.0, Prop2="Abc")`)
	want := []TokenKind{TokLParen, TokText, TokEq, TokText, TokComma, TokText, TokEq, TokQuoted, TokRParen}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexer_IndexAndNesting(t *testing.T) {
	got := collectTokens(`(Prop1=1.0, Prop2[0]=(T="A", W=5),)`)
	want := []TokenKind{
		TokLParen, TokText, TokEq, TokText, TokComma,
		TokText, TokLBrack, TokText, TokRBrack, TokEq, TokLParen,
		TokText, TokEq, TokQuoted, TokComma, TokText, TokEq, TokText,
		TokRParen, TokComma, TokRParen,
	}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexer_Semi(t *testing.T) {
	got := collectTokens(`(Prop1=1.0; Prop2="Abc")`)
	want := []TokenKind{TokLParen, TokText, TokEq, TokText, TokSemi, TokText, TokEq, TokQuoted, TokRParen}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLexer_UnterminatedQuoted(t *testing.T) {
	lex := NewLexer(`"abc`)
	tok, ok := lex.Next()
	if !ok || tok.Kind != TokQuoted {
		t.Fatalf("got %+v, ok=%v, want Quoted", tok, ok)
	}
	if tok.Span != (Span{0, 4}) {
		t.Errorf("span = %v, want (0, 4)", tok.Span)
	}
	if _, ok := lex.Next(); ok {
		t.Errorf("expected no further tokens")
	}
}

func TestLexer_WhitespaceSeparatesWithoutEmitting(t *testing.T) {
	got := collectTokens("  (  A = 1  )  ")
	want := []TokenKind{TokLParen, TokText, TokEq, TokText, TokRParen}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
