package parser

// Expression is implemented by every node the constant-expression
// sub-parser can produce. It covers exactly what can appear as a field
// initializer, an annotation argument, or an annotation element default:
// literals, simple operator trees, qualified names, class literals, and
// array initializers. Executable-statement expressions are out of scope.
type Expression interface {
	Tree
	exprKind() ExprKind
}

// ExprKind distinguishes the Expression variants without a type switch,
// mirroring the ARRAY_INIT check the field-initializer logic needs to
// special-case.
type ExprKind int

const (
	ExprLiteral ExprKind = iota
	ExprName
	ExprUnary
	ExprBinary
	ExprTernary
	ExprClassLiteral
	ExprArrayInit
	ExprAnno
	ExprCast
)

// Lit is a literal constant: a number, string, char, boolean, or null.
type Lit struct {
	pos
	Kind    TokenKind
	Literal string
}

func (l *Lit) exprKind() ExprKind { return ExprLiteral }

// Name is a (possibly qualified) identifier reference, e.g. `Foo.BAR`.
type Name struct {
	pos
	Parts []string
}

func (n *Name) exprKind() ExprKind { return ExprName }

// Unary is a prefix operator applied to an operand, e.g. `-1` or `!flag`.
type Unary struct {
	pos
	Op      TokenKind
	Operand Expression
}

func (u *Unary) exprKind() ExprKind { return ExprUnary }

// Binary is an infix operator expression, e.g. `A | B`.
type Binary struct {
	pos
	Op    TokenKind
	Left  Expression
	Right Expression
}

func (b *Binary) exprKind() ExprKind { return ExprBinary }

// Ternary is a `cond ? a : b` conditional expression.
type Ternary struct {
	pos
	Cond Expression
	Then Expression
	Else Expression
}

func (t *Ternary) exprKind() ExprKind { return ExprTernary }

// ClassLit is a `Foo.class` or `a.b.Foo.class` class literal. The grammar
// builds it only from class names; `int.class` and `int[].class` are not
// parsed.
type ClassLit struct {
	pos
	Type Type
}

func (c *ClassLit) exprKind() ExprKind { return ExprClassLiteral }

// ArrayInit is a `{a, b, c}` array initializer. It is only legal directly
// as a field initializer or annotation argument in this grammar.
type ArrayInit struct {
	pos
	Elems []Expression
}

func (a *ArrayInit) exprKind() ExprKind { return ExprArrayInit }

// AnnoValue wraps a nested annotation used as an annotation argument value,
// e.g. `@Outer(inner = @Inner)`.
type AnnoValue struct {
	pos
	Anno *Anno
}

func (a *AnnoValue) exprKind() ExprKind { return ExprAnno }

// Cast is a `(Type) expr` cast, kept only because constant expressions
// occasionally use it to pin a literal's type, e.g. `(byte) 1`.
type Cast struct {
	pos
	Type    Type
	Operand Expression
}

func (c *Cast) exprKind() ExprKind { return ExprCast }

var (
	_ Expression = (*Lit)(nil)
	_ Expression = (*Name)(nil)
	_ Expression = (*Unary)(nil)
	_ Expression = (*Binary)(nil)
	_ Expression = (*Ternary)(nil)
	_ Expression = (*ClassLit)(nil)
	_ Expression = (*ArrayInit)(nil)
	_ Expression = (*AnnoValue)(nil)
	_ Expression = (*Cast)(nil)
)
