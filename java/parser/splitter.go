package parser

import "fmt"

// splitDeclaratorInit isolates the token run that makes up one field
// declarator's initializer: everything from the current position up to
// (but not including) the next comma or semicolon that appears at bracket
// depth zero. It tracks `(`, `[`, and `{` nesting so that a declarator
// separator inside an array initializer, an annotation argument list, or
// a parenthesized sub-expression is not mistaken for the end of this
// declarator. The caller is left positioned at the terminator.
func (p *parser) splitDeclaratorInit() []Token {
	var toks []Token
	depth := 0
	for {
		tok := p.tok
		if depth == 0 && (tok.Kind == TokenComma || tok.Kind == TokenSemicolon) {
			return toks
		}
		if tok.Kind == TokenEOF {
			p.failToken(tok, "unterminated variable initializer")
		}
		switch tok.Kind {
		case TokenLParen, TokenLBracket, TokenLBrace:
			depth++
		case TokenRParen, TokenRBracket, TokenRBrace:
			depth--
		}
		toks = append(toks, tok)
		p.advance()
	}
}

// savedStream replays a fixed slice of tokens saved by splitDeclaratorInit,
// presenting the same tokStream surface the live parser does so the
// constant-expression grammar in constexpr.go cannot tell the difference.
// Reading past the end of the slice yields a synthetic TokenEOF forever,
// which both terminates the grammar cleanly and lets parseDeclaratorExpr
// detect a declarator initializer that didn't fully consume its tokens.
type savedStream struct {
	toks   []Token
	i      int
	source *SourceFile
}

func (s *savedStream) peek() Token {
	if s.i < len(s.toks) {
		return s.toks[s.i]
	}
	return Token{Kind: TokenEOF}
}

func (s *savedStream) advance() Token {
	t := s.peek()
	if s.i < len(s.toks) {
		s.i++
	}
	return t
}

func (s *savedStream) mark() any { return s.i }

func (s *savedStream) rewind(m any) { s.i = m.(int) }

func (s *savedStream) failToken(tok Token, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if tok.Literal != "" {
		msg = msg + ", got '" + tok.Literal + "'"
	}
	panic(parseError{&Diagnostic{Source: s.source, Offset: tok.Span.Start.Offset, Msg: msg}})
}

// parseDeclaratorExpr parses exactly one constant expression out of a
// declarator's saved initializer tokens, failing if any tokens remain
// unconsumed afterward.
func parseDeclaratorExpr(toks []Token, source *SourceFile) Expression {
	s := &savedStream{toks: toks, source: source}
	expr := parseConstExpr(s)
	if s.peek().Kind != TokenEOF {
		s.failToken(s.peek(), "unexpected token in variable initializer")
	}
	return expr
}
