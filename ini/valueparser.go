package ini

import "strconv"

// ValueKind identifies which production of the value grammar a PropValue
// instance represents.
type ValueKind int

const (
	ValTerminal ValueKind = iota
	ValStruct
	ValArray
	ValEmpty
)

// PropName is a property name, with an optional array index suffix
// (`Foo[3]` or `Foo(3)`).
type PropName struct {
	Name     string
	HasIndex bool
	Index    uint32
}

// StructField is one `name = value` member of a Struct PropValue.
type StructField struct {
	Name  PropName
	Value PropValue
}

// PropValue is the value-grammar AST: a terminal bareword/quoted string, a
// parenthesized struct, an array of terminals or structs, or an empty `()`.
// Arrays never directly contain arrays.
type PropValue struct {
	Kind ValueKind
	// Terminal holds the token text (including surrounding quotes for a
	// quoted literal) when Kind == ValTerminal.
	Terminal string
	// Struct holds the member list when Kind == ValStruct.
	Struct []StructField
	// Array holds the element list when Kind == ValArray.
	Array []PropValue
}

// ParseError is a value-grammar parse failure: a byte offset (relative to
// the text handed to ParseValue) and a short message.
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return e.Msg
}

// valueParser drives the struct/array/terminal grammar over a Lexer with up
// to two tokens of lookahead (needed for struct-vs-array disambiguation).
type valueParser struct {
	lex *Lexer
	buf []Token
}

func (p *valueParser) fill(n int) {
	for len(p.buf) < n {
		t, ok := p.lex.Next()
		if !ok {
			return
		}
		p.buf = append(p.buf, t)
	}
}

func (p *valueParser) peekAt(i int) (Token, bool) {
	p.fill(i + 1)
	if i < len(p.buf) {
		return p.buf[i], true
	}
	return Token{}, false
}

func (p *valueParser) next() (Token, bool) {
	p.fill(1)
	if len(p.buf) == 0 {
		return Token{}, false
	}
	t := p.buf[0]
	p.buf = p.buf[1:]
	return t, true
}

// eofPos returns the attribution point for an error discovered at end of
// input: the lexer's last scanning position.
func (p *valueParser) eofPos() int {
	p.fill(1)
	if len(p.buf) > 0 {
		return p.buf[0].Span.Start
	}
	return p.lex.Pos()
}

// ParseValue parses text against the value grammar's root production: the
// only legal top-level shape is a parenthesized struct.
func ParseValue(text string) (PropValue, *ParseError) {
	p := &valueParser{lex: NewLexer(text)}

	tok, ok := p.next()
	if !ok || tok.Kind != TokLParen {
		return PropValue{}, &ParseError{Pos: p.eofPos(), Msg: "Expected `(`"}
	}
	return p.parseStructBody()
}

// parseStructBody parses `struct_body := prop_name '=' value (',' prop_name
// '=' value)* ','? ')'`, with the opening `(` already consumed.
func (p *valueParser) parseStructBody() (PropValue, *ParseError) {
	var fields []StructField

	for {
		name, perr := p.parsePropName()
		if perr != nil {
			return PropValue{}, perr
		}

		tok, ok := p.next()
		if !ok || tok.Kind != TokEq {
			return PropValue{}, &ParseError{Pos: p.eofPos(), Msg: "Expected `=`"}
		}

		val, perr := p.parseValue()
		if perr != nil {
			return PropValue{}, perr
		}

		fields = append(fields, StructField{Name: name, Value: val})

		tok, ok = p.next()
		if !ok {
			return PropValue{}, &ParseError{Pos: p.eofPos(), Msg: "Expected `,` or `)`"}
		}
		switch tok.Kind {
		case TokRParen:
			return PropValue{Kind: ValStruct, Struct: fields}, nil
		case TokComma:
			next, ok := p.peekAt(0)
			if !ok {
				return PropValue{}, &ParseError{Pos: p.eofPos(), Msg: "Expected `)` or name"}
			}
			if next.Kind == TokRParen {
				p.next()
				return PropValue{Kind: ValStruct, Struct: fields}, nil
			}
			if next.Kind != TokText {
				return PropValue{}, &ParseError{Pos: next.Span.Start, Msg: "Expected `)` or name"}
			}
			// loop again to parse the next member
		default:
			return PropValue{}, &ParseError{Pos: tok.Span.Start, Msg: "Expected `,` or `)`"}
		}
	}
}

// parsePropName parses `prop_name := Text ('[' u32_text ']')?`.
func (p *valueParser) parsePropName() (PropName, *ParseError) {
	tok, ok := p.next()
	if !ok || tok.Kind != TokText {
		pos := p.eofPos()
		if ok {
			pos = tok.Span.Start
		}
		return PropName{}, &ParseError{Pos: pos, Msg: "Expected property name"}
	}
	name := PropName{Name: tok.Span.Slice(p.lex.text)}

	next, ok := p.peekAt(0)
	if !ok || next.Kind != TokLBrack {
		return name, nil
	}
	p.next() // consume '['

	idxTok, ok := p.next()
	if !ok || idxTok.Kind != TokText {
		pos := p.eofPos()
		if ok {
			pos = idxTok.Span.Start
		}
		return PropName{}, &ParseError{Pos: pos, Msg: "Expected array index"}
	}
	idx, err := strconv.ParseUint(idxTok.Span.Slice(p.lex.text), 10, 32)
	if err != nil {
		return PropName{}, &ParseError{Pos: idxTok.Span.Start, Msg: "Expected array index"}
	}
	name.HasIndex = true
	name.Index = uint32(idx)

	closeTok, ok := p.next()
	if !ok || closeTok.Kind != TokRBrack {
		pos := p.eofPos()
		if ok {
			pos = closeTok.Span.Start
		}
		return PropName{}, &ParseError{Pos: pos, Msg: "Expected `]`"}
	}
	return name, nil
}

// parseValue parses `value := Terminal | '(' inner`.
func (p *valueParser) parseValue() (PropValue, *ParseError) {
	tok, ok := p.peekAt(0)
	if !ok {
		return PropValue{}, &ParseError{Pos: p.eofPos(), Msg: "Expected `(` or value"}
	}
	switch tok.Kind {
	case TokText, TokQuoted:
		p.next()
		return PropValue{Kind: ValTerminal, Terminal: tok.Span.Slice(p.lex.text)}, nil
	case TokLParen:
		p.next()
		return p.parseInner()
	default:
		return PropValue{}, &ParseError{Pos: tok.Span.Start, Msg: "Expected `(` or value"}
	}
}

// parseInner parses the `inner` production (the opening `(` already
// consumed): Empty, a nested Struct, an array of terminals, or an array of
// structs, disambiguated by up to two tokens of lookahead.
func (p *valueParser) parseInner() (PropValue, *ParseError) {
	first, ok := p.peekAt(0)
	if !ok {
		return PropValue{}, &ParseError{Pos: p.eofPos(), Msg: "Expected key-value pair or array value"}
	}

	if first.Kind == TokRParen {
		p.next()
		return PropValue{Kind: ValEmpty}, nil
	}

	second, hasSecond := p.peekAt(1)

	switch {
	case first.Kind == TokText && hasSecond && (second.Kind == TokEq || second.Kind == TokLBrack):
		return p.parseStructBody()

	case (first.Kind == TokText || first.Kind == TokQuoted) && hasSecond &&
		(second.Kind == TokComma || second.Kind == TokRParen):
		return p.parseTerminalArray()

	case first.Kind == TokLParen:
		// An array of structs: the token *after* the element's own opening
		// `(` must look like the start of a struct or an empty struct.
		inner, hasInner := p.peekAt(1)
		if hasInner && (inner.Kind == TokText || inner.Kind == TokRParen) {
			return p.parseStructArray()
		}
		return PropValue{}, &ParseError{Pos: first.Span.Start, Msg: "Expected key-value pair or array value"}

	default:
		return PropValue{}, &ParseError{Pos: first.Span.Start, Msg: "Expected key-value pair or array value"}
	}
}

// parseTerminalArray parses `Terminal (',' Terminal)* ','? ')'`.
func (p *valueParser) parseTerminalArray() (PropValue, *ParseError) {
	var elems []PropValue

	for {
		tok, ok := p.next()
		if !ok || (tok.Kind != TokText && tok.Kind != TokQuoted) {
			pos := p.eofPos()
			if ok {
				pos = tok.Span.Start
			}
			return PropValue{}, &ParseError{Pos: pos, Msg: "expected value"}
		}
		elems = append(elems, PropValue{Kind: ValTerminal, Terminal: tok.Span.Slice(p.lex.text)})

		tok, ok = p.next()
		if !ok {
			return PropValue{}, &ParseError{Pos: p.eofPos(), Msg: "Expected `,` or `)`"}
		}
		switch tok.Kind {
		case TokRParen:
			return PropValue{Kind: ValArray, Array: elems}, nil
		case TokComma:
			next, ok := p.peekAt(0)
			if ok && next.Kind == TokRParen {
				p.next()
				return PropValue{Kind: ValArray, Array: elems}, nil
			}
			// loop again for the next element
		default:
			return PropValue{}, &ParseError{Pos: tok.Span.Start, Msg: "Expected `,` or `)`"}
		}
	}
}

// parseStructArrayElement parses the body of one `(`-led element of a
// struct array (the element's own opening `(` already consumed). Unlike
// parseInner, this never dispatches to a terminal or nested array
// production: a struct array's elements are always a Struct or Empty, by
// construction, matching how the original grammar's array-of-structs
// production never shares a parser with array-of-terminals.
func (p *valueParser) parseStructArrayElement() (PropValue, *ParseError) {
	first, ok := p.peekAt(0)
	if !ok {
		return PropValue{}, &ParseError{Pos: p.eofPos(), Msg: "Expected key-value pair or array value"}
	}
	if first.Kind == TokRParen {
		p.next()
		return PropValue{Kind: ValEmpty}, nil
	}
	return p.parseStructBody()
}

// parseStructArray parses an array whose elements are themselves
// parenthesized structs (or Empty).
func (p *valueParser) parseStructArray() (PropValue, *ParseError) {
	var elems []PropValue

	for {
		tok, ok := p.next()
		if !ok || tok.Kind != TokLParen {
			pos := p.eofPos()
			if ok {
				pos = tok.Span.Start
			}
			return PropValue{}, &ParseError{Pos: pos, Msg: "Expected name, value, or `)`"}
		}

		elem, perr := p.parseStructArrayElement()
		if perr != nil {
			return PropValue{}, perr
		}
		elems = append(elems, elem)

		tok, ok = p.next()
		if !ok {
			return PropValue{}, &ParseError{Pos: p.eofPos(), Msg: "Expected `,` or `)`"}
		}
		switch tok.Kind {
		case TokRParen:
			return PropValue{Kind: ValArray, Array: elems}, nil
		case TokComma:
			next, ok := p.peekAt(0)
			if !ok {
				return PropValue{}, &ParseError{Pos: p.eofPos(), Msg: "expected `,` or `(`"}
			}
			if next.Kind == TokRParen {
				p.next()
				return PropValue{Kind: ValArray, Array: elems}, nil
			}
			if next.Kind != TokLParen {
				return PropValue{}, &ParseError{Pos: next.Span.Start, Msg: "expected `,` or `(`"}
			}
			// loop again for the next element
		default:
			return PropValue{}, &ParseError{Pos: tok.Span.Start, Msg: "Expected `,` or `)`"}
		}
	}
}
