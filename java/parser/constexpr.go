package parser

// This file implements the constant-expression grammar used for field
// initializers, annotation arguments, and annotation element defaults. It
// is deliberately much smaller than a full Java expression grammar: no
// method calls, no object creation, no lambdas, no statements. It runs
// against any tokStream, which lets the same grammar consume either the
// live parser's token stream (annotation arguments, defaults) or a fixed
// slice of tokens saved ahead of time by the variable-initializer
// splitter (field declarator initializers).

// parseConstExpr is the grammar's single entry point.
func parseConstExpr(s tokStream) Expression {
	return parseTernary(s)
}

func parseTernary(s tokStream) Expression {
	cond := parseBinary(s, 0)
	if s.peek().Kind != TokenQuestion {
		return cond
	}
	start := cond.Pos()
	s.advance()
	then := parseTernary(s)
	expect(s, TokenColon)
	els := parseTernary(s)
	return &Ternary{pos: pos{start}, Cond: cond, Then: then, Else: els}
}

// binPrec lists the binary operators this grammar accepts, grouped by
// precedence level from loosest to tightest, mirroring Java's own table
// minus instanceof, which is not part of this grammar.
var binPrec = [][]TokenKind{
	{TokenOr},
	{TokenAnd},
	{TokenBitOr},
	{TokenBitXor},
	{TokenBitAnd},
	{TokenEQ, TokenNE},
	{TokenLT, TokenLE, TokenGT, TokenGE},
	{TokenShl, TokenShr, TokenUShr},
	{TokenPlus, TokenMinus},
	{TokenStar, TokenSlash, TokenPercent},
}

func parseBinary(s tokStream, level int) Expression {
	if level == len(binPrec) {
		return parseUnary(s)
	}
	left := parseBinary(s, level+1)
	for {
		op := s.peek().Kind
		if !containsKind(binPrec[level], op) {
			return left
		}
		s.advance()
		right := parseBinary(s, level+1)
		left = &Binary{pos: pos{left.Pos()}, Op: op, Left: left, Right: right}
	}
}

func containsKind(kinds []TokenKind, k TokenKind) bool {
	for _, want := range kinds {
		if want == k {
			return true
		}
	}
	return false
}

func parseUnary(s tokStream) Expression {
	tok := s.peek()
	switch tok.Kind {
	case TokenPlus, TokenMinus, TokenNot, TokenBitNot:
		s.advance()
		operand := parseUnary(s)
		return &Unary{pos: pos{tok.Span.Start.Offset}, Op: tok.Kind, Operand: operand}
	case TokenLParen:
		if ty, ok := tryParseCast(s); ok {
			operand := parseUnary(s)
			return &Cast{pos: pos{tok.Span.Start.Offset}, Type: ty, Operand: operand}
		}
	}
	return parsePrimary(s)
}

// tryParseCast recognizes the one cast form a constant expression needs
// unambiguously: a parenthesized primitive type. `(byte) -1` and
// `(long) 0xFFFFFFFFL` are common in field initializers; a cast to a
// reference type is not, and distinguishing `(Foo)` the cast from `(Foo)`
// the parenthesized name reference requires type information this grammar
// does not have, so that form is left to parsePrimary as a parenthesized
// expression.
func tryParseCast(s tokStream) (Type, bool) {
	mark := s.mark()
	s.advance() // '('

	switch s.peek().Kind {
	case TokenBoolean, TokenByte, TokenShort, TokenInt, TokenLong, TokenChar, TokenFloat, TokenDouble:
		tok := s.advance()
		dims := 0
		for s.peek().Kind == TokenLBracket {
			s.advance()
			expect(s, TokenRBracket)
			dims++
		}
		if s.peek().Kind != TokenRParen {
			s.rewind(mark)
			return nil, false
		}
		s.advance()
		var ty Type = &PrimTy{pos: pos{tok.Span.Start.Offset}, Kind: primKindOf(tok.Kind)}
		for i := 0; i < dims; i++ {
			ty = &ArrTy{pos: pos{tok.Span.Start.Offset}, Elem: ty}
		}
		return ty, true
	default:
		s.rewind(mark)
		return nil, false
	}
}

func parsePrimary(s tokStream) Expression {
	tok := s.peek()
	switch tok.Kind {
	case TokenIntLiteral, TokenFloatLiteral, TokenCharLiteral, TokenStringLiteral,
		TokenTextBlock, TokenTrue, TokenFalse, TokenNull:
		s.advance()
		return &Lit{pos: pos{tok.Span.Start.Offset}, Kind: tok.Kind, Literal: tok.Literal}
	case TokenLParen:
		s.advance()
		inner := parseConstExpr(s)
		expect(s, TokenRParen)
		return inner
	case TokenLBrace:
		return parseArrayInit(s)
	case TokenAt:
		return parseAnnoValue(s)
	case TokenIdent:
		return parseNameOrClassLiteral(s)
	default:
		s.failToken(tok, "expected an expression")
		panic("unreachable")
	}
}

func parseArrayInit(s tokStream) Expression {
	start := s.peek().Span.Start.Offset
	s.advance()
	var elems []Expression
	for s.peek().Kind != TokenRBrace {
		elems = append(elems, parseConstExpr(s))
		if s.peek().Kind != TokenComma {
			break
		}
		s.advance()
	}
	expect(s, TokenRBrace)
	return &ArrayInit{pos: pos{start}, Elems: elems}
}

// parseAnnoValue parses a nested annotation used as an argument value. It
// only needs the subset of the annotation grammar that parser.go's
// annotation() implements, so it delegates to a savedStream-agnostic
// helper shared by both call sites.
func parseAnnoValue(s tokStream) Expression {
	start := s.peek().Span.Start.Offset
	a := parseAnnotationOn(s)
	return &AnnoValue{pos: pos{start}, Anno: a}
}

func parseAnnotationOn(s tokStream) *Anno {
	start := s.peek().Span.Start.Offset
	expect(s, TokenAt)
	name := []string{eatIdent(s)}
	for s.peek().Kind == TokenDot {
		s.advance()
		name = append(name, eatIdent(s))
	}
	var args []Expression
	if s.peek().Kind == TokenLParen {
		s.advance()
		for s.peek().Kind != TokenRParen {
			if s.peek().Kind == TokenIdent {
				mark := s.mark()
				save := s.peek()
				nm := eatIdent(s)
				if s.peek().Kind == TokenAssign {
					s.advance()
					args = append(args, &Name{pos: pos{save.Span.Start.Offset}, Parts: []string{nm}})
					args = append(args, parseConstExpr(s))
					if s.peek().Kind == TokenComma {
						s.advance()
						continue
					}
					break
				}
				s.rewind(mark)
			}
			args = append(args, parseConstExpr(s))
			if s.peek().Kind != TokenComma {
				break
			}
			s.advance()
		}
		expect(s, TokenRParen)
	}
	return &Anno{pos: pos{start}, Name: name, Args: args}
}

// parseNameOrClassLiteral parses a qualified name, optionally followed by
// `.class` to form a class literal.
func parseNameOrClassLiteral(s tokStream) Expression {
	start := s.peek().Span.Start.Offset
	parts := []string{eatIdent(s)}
	for s.peek().Kind == TokenDot {
		mark := s.mark()
		s.advance()
		if s.peek().Kind == TokenClass {
			s.advance()
			ty := Type(&ClassTy{pos: pos{start}, Name: parts[0]})
			for _, seg := range parts[1:] {
				ty = &ClassTy{pos: pos{start}, Enclosing: ty.(*ClassTy), Name: seg}
			}
			return &ClassLit{pos: pos{start}, Type: ty}
		}
		if s.peek().Kind != TokenIdent {
			s.rewind(mark)
			break
		}
		parts = append(parts, eatIdent(s))
	}
	return &Name{pos: pos{start}, Parts: parts}
}

func expect(s tokStream, kind TokenKind) Token {
	if s.peek().Kind != kind {
		s.failToken(s.peek(), "expected %s", kind)
	}
	return s.advance()
}

func eatIdent(s tokStream) string {
	if s.peek().Kind != TokenIdent {
		s.failToken(s.peek(), "expected an identifier")
	}
	return s.advance().Literal
}
