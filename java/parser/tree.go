package parser

// Tree is the common interface implemented by every AST node produced by
// this package. It carries only a source position; the concrete node kind
// is recovered by a type switch rather than a discriminant field, since the
// set of node types is closed and known ahead of time.
type Tree interface {
	Pos() int
}

// pos is embedded in every node to provide the Tree implementation.
type pos struct {
	position int
}

func (p pos) Pos() int { return p.position }

// CompUnit is the root of a parsed Java source file.
type CompUnit struct {
	pos
	Package  *PkgDecl
	Imports  []*ImportDecl
	Decls    []*TyDecl
	Source   *SourceFile
}

// PkgDecl is a `package a.b.c;` declaration.
type PkgDecl struct {
	pos
	Name  []string
	Annos []*Anno
}

// ImportDecl is an `import [static] a.b.C[.*];` declaration.
type ImportDecl struct {
	pos
	Name     []string
	IsStatic bool
	IsWild   bool
}

// TyKind distinguishes the four declaration-level type flavors this parser
// understands.
type TyKind int

const (
	ClassDecl TyKind = iota
	InterfaceDecl
	EnumDecl
	AnnotationDecl
)

func (k TyKind) String() string {
	switch k {
	case ClassDecl:
		return "CLASS"
	case InterfaceDecl:
		return "INTERFACE"
	case EnumDecl:
		return "ENUM"
	case AnnotationDecl:
		return "ANNOTATION"
	default:
		return "UNKNOWN"
	}
}

// Member is implemented by the two kinds of class/interface/enum/annotation
// members this parser produces: VarDecl and MethDecl. Nested TyDecls are
// also valid members.
type Member interface {
	Tree
}

// TyDecl is a class, interface, enum, or annotation-type declaration.
type TyDecl struct {
	pos
	Mods       ModifierSet
	Annos      []*Anno
	Name       string
	TyParams   []*TyParam
	SuperClass *ClassTy // nil if absent
	Interfaces []*ClassTy
	Members    []Member
	Kind       TyKind
}

// TyParam is a single `<T extends A & B>` type parameter.
type TyParam struct {
	pos
	Name   string
	Bounds []Type
	Annos  []*Anno
}

// Type is implemented by every type-syntax node: ClassTy, PrimTy, ArrTy,
// WildTy, VoidTy.
type Type interface {
	Tree
}

// ClassTy is a (possibly qualified, possibly parameterized) reference type,
// e.g. `Map<K, V>` or `Outer<T>.Inner`. Enclosing is non-nil for the
// qualified segments of a dotted name; the chain is left-folded so that the
// leftmost segment has no Enclosing.
type ClassTy struct {
	pos
	Enclosing *ClassTy
	Name      string
	TyArgs    []Type
	Annos     []*Anno
}

// PrimKind enumerates the eight Java primitive types.
type PrimKind int

const (
	PrimBoolean PrimKind = iota
	PrimByte
	PrimShort
	PrimInt
	PrimLong
	PrimChar
	PrimFloat
	PrimDouble
)

func (k PrimKind) String() string {
	switch k {
	case PrimBoolean:
		return "boolean"
	case PrimByte:
		return "byte"
	case PrimShort:
		return "short"
	case PrimInt:
		return "int"
	case PrimLong:
		return "long"
	case PrimChar:
		return "char"
	case PrimFloat:
		return "float"
	case PrimDouble:
		return "double"
	default:
		return "?"
	}
}

// PrimTy is a primitive type use, e.g. `int` or `@NonNull boolean`.
type PrimTy struct {
	pos
	Annos []*Anno
	Kind  PrimKind
}

// ArrTy is an array type; Elem is the element type one dimension down.
type ArrTy struct {
	pos
	Annos []*Anno
	Elem  Type
}

// WildTy is a wildcard type argument, e.g. `?`, `? extends T`, `? super T`.
// At most one of Upper and Lower is non-nil.
type WildTy struct {
	pos
	Annos []*Anno
	Upper Type
	Lower Type
}

// VoidTy is the `void` pseudo-type, legal only as a method return type.
type VoidTy struct {
	pos
	Annos []*Anno
}

// VarDecl is a field, formal parameter, or enum constant. Method bodies are
// not modeled as declarations, so VarDecl never appears inside executable
// code.
type VarDecl struct {
	pos
	Mods   ModifierSet
	Annos  []*Anno
	Type   Type
	Name   string
	Init   Expression // nil if absent
}

// MethDecl is a method or constructor. A constructor is represented with
// Return == nil and Name == CtorName.
type MethDecl struct {
	pos
	Mods     ModifierSet
	Annos    []*Anno
	TyParams []*TyParam
	Return   Type // nil for constructors
	Name     string
	Formals  []*VarDecl
	Throws   []*ClassTy
	Default  Expression // annotation-type element default value; nil if absent
}

// CtorName is the canonical name assigned to constructor MethDecls, mirroring
// the `<init>` method name used in class files.
const CtorName = "<init>"

// Anno is a single `@Name(args...)` annotation use.
type Anno struct {
	pos
	Name []string
	Args []Expression
}

var (
	_ Tree = (*CompUnit)(nil)
	_ Tree = (*PkgDecl)(nil)
	_ Tree = (*ImportDecl)(nil)
	_ Tree = (*TyDecl)(nil)
	_ Tree = (*TyParam)(nil)
	_ Tree = (*ClassTy)(nil)
	_ Tree = (*PrimTy)(nil)
	_ Tree = (*ArrTy)(nil)
	_ Tree = (*WildTy)(nil)
	_ Tree = (*VoidTy)(nil)
	_ Tree = (*VarDecl)(nil)
	_ Tree = (*MethDecl)(nil)
	_ Tree = (*Anno)(nil)

	_ Type   = (*ClassTy)(nil)
	_ Type   = (*PrimTy)(nil)
	_ Type   = (*ArrTy)(nil)
	_ Type   = (*WildTy)(nil)
	_ Type   = (*VoidTy)(nil)
	_ Member = (*VarDecl)(nil)
	_ Member = (*MethDecl)(nil)
	_ Member = (*TyDecl)(nil)
)
