package parser

import "fmt"

// Diagnostic reports a single syntax error. Parsing stops at the first
// Diagnostic; there is no error recovery.
type Diagnostic struct {
	Source *SourceFile
	Offset int
	Msg    string
}

func (d *Diagnostic) Error() string {
	if d.Source == nil {
		return d.Msg
	}
	line, col := d.Source.lineCol(d.Offset)
	return fmt.Sprintf("%s:%d:%d: %s", d.Source.Name, line, col, d.Msg)
}

// parseError is the internal panic value raised by the recursive-descent
// parser on the first malformed input. ParseCompilationUnit recovers it at the package
// boundary and turns it into a returned error.
type parseError struct {
	diag *Diagnostic
}

func (p *parser) fail(offset int, format string, args ...any) {
	panic(parseError{&Diagnostic{
		Source: p.source,
		Offset: offset,
		Msg:    fmt.Sprintf(format, args...),
	}})
}

// failToken reports a diagnostic anchored at tok's start, in the style
// Turbine's parser uses for "unexpected token" errors: the literal text of
// the offending token is quoted in the message when it has one.
func (p *parser) failToken(tok Token, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if tok.Literal != "" {
		msg = fmt.Sprintf("%s, got '%s'", msg, tok.Literal)
	} else {
		msg = fmt.Sprintf("%s, got %s", msg, tok.Kind)
	}
	p.fail(tok.Span.Start.Offset, "%s", msg)
}

// recoverParseError converts a parseError panic into a returned error.
// Any other panic value propagates unchanged, since it indicates a bug in
// this package rather than malformed input.
func recoverParseError(errp *error) {
	if r := recover(); r != nil {
		if pe, ok := r.(parseError); ok {
			*errp = pe.diag
			return
		}
		panic(r)
	}
}
