package parser

import (
	"testing"
)

func parse(t *testing.T, src string) *CompUnit {
	t.Helper()
	cu, err := ParseCompilationUnit(NewSourceFile("Test.java", []byte(src)))
	if err != nil {
		t.Fatalf("ParseCompilationUnit(%q) error: %v", src, err)
	}
	return cu
}

func TestParsePackageAndClass(t *testing.T) {
	cu := parse(t, "package a.b; class C {}")

	if cu.Package == nil {
		t.Fatal("Package = nil, want a.b")
	}
	wantPkg := []string{"a", "b"}
	if len(cu.Package.Name) != len(wantPkg) {
		t.Fatalf("Package.Name = %v, want %v", cu.Package.Name, wantPkg)
	}
	for i, p := range wantPkg {
		if cu.Package.Name[i] != p {
			t.Errorf("Package.Name[%d] = %q, want %q", i, cu.Package.Name[i], p)
		}
	}
	if len(cu.Imports) != 0 {
		t.Errorf("len(Imports) = %d, want 0", len(cu.Imports))
	}
	if len(cu.Decls) != 1 {
		t.Fatalf("len(Decls) = %d, want 1", len(cu.Decls))
	}
	decl := cu.Decls[0]
	if decl.Kind != ClassDecl {
		t.Errorf("Kind = %v, want ClassDecl", decl.Kind)
	}
	if decl.Name != "C" {
		t.Errorf("Name = %q, want C", decl.Name)
	}
	if len(decl.TyParams) != 0 || decl.SuperClass != nil || len(decl.Interfaces) != 0 || len(decl.Members) != 0 {
		t.Errorf("unexpected fields on empty class: %+v", decl)
	}
}

func TestParseStaticWildcardImport(t *testing.T) {
	cu := parse(t, "import static a.B.*;")
	if len(cu.Imports) != 1 {
		t.Fatalf("len(Imports) = %d, want 1", len(cu.Imports))
	}
	imp := cu.Imports[0]
	want := []string{"a", "B"}
	if len(imp.Name) != len(want) {
		t.Fatalf("Name = %v, want %v", imp.Name, want)
	}
	for i, p := range want {
		if imp.Name[i] != p {
			t.Errorf("Name[%d] = %q, want %q", i, imp.Name[i], p)
		}
	}
	if !imp.IsStatic {
		t.Error("IsStatic = false, want true")
	}
	if !imp.IsWild {
		t.Error("IsWild = false, want true")
	}
}

func TestParseTypeParamBoundsAndField(t *testing.T) {
	cu := parse(t, "class C<T extends A & B> { T f = null; }")
	decl := cu.Decls[0]

	if len(decl.TyParams) != 1 {
		t.Fatalf("len(TyParams) = %d, want 1", len(decl.TyParams))
	}
	tp := decl.TyParams[0]
	if tp.Name != "T" {
		t.Errorf("TyParam.Name = %q, want T", tp.Name)
	}
	if len(tp.Bounds) != 2 {
		t.Fatalf("len(Bounds) = %d, want 2", len(tp.Bounds))
	}
	for i, want := range []string{"A", "B"} {
		ct, ok := tp.Bounds[i].(*ClassTy)
		if !ok {
			t.Fatalf("Bounds[%d] = %T, want *ClassTy", i, tp.Bounds[i])
		}
		if ct.Name != want {
			t.Errorf("Bounds[%d].Name = %q, want %q", i, ct.Name, want)
		}
	}

	if len(decl.Members) != 1 {
		t.Fatalf("len(Members) = %d, want 1", len(decl.Members))
	}
	f, ok := decl.Members[0].(*VarDecl)
	if !ok {
		t.Fatalf("Members[0] = %T, want *VarDecl", decl.Members[0])
	}
	if f.Name != "f" {
		t.Errorf("Name = %q, want f", f.Name)
	}
	ct, ok := f.Type.(*ClassTy)
	if !ok || ct.Name != "T" {
		t.Errorf("Type = %+v, want ClassTy(T)", f.Type)
	}
}

func TestParseConstructorAndMethodWithThrows(t *testing.T) {
	cu := parse(t, "class C { C() {} void m() throws E, F {} }")
	decl := cu.Decls[0]
	if len(decl.Members) != 2 {
		t.Fatalf("len(Members) = %d, want 2", len(decl.Members))
	}

	ctor, ok := decl.Members[0].(*MethDecl)
	if !ok {
		t.Fatalf("Members[0] = %T, want *MethDecl", decl.Members[0])
	}
	if ctor.Return != nil {
		t.Errorf("Return = %+v, want nil", ctor.Return)
	}
	if ctor.Name != CtorName {
		t.Errorf("Name = %q, want %q", ctor.Name, CtorName)
	}
	if len(ctor.Formals) != 0 {
		t.Errorf("len(Formals) = %d, want 0", len(ctor.Formals))
	}

	m, ok := decl.Members[1].(*MethDecl)
	if !ok {
		t.Fatalf("Members[1] = %T, want *MethDecl", decl.Members[1])
	}
	if _, ok := m.Return.(*VoidTy); !ok {
		t.Errorf("Return = %T, want *VoidTy", m.Return)
	}
	if m.Name != "m" {
		t.Errorf("Name = %q, want m", m.Name)
	}
	if len(m.Throws) != 2 || m.Throws[0].Name != "E" || m.Throws[1].Name != "F" {
		t.Errorf("Throws = %+v, want [E F]", m.Throws)
	}
}

func TestParseEnumWithClassBodyConstant(t *testing.T) {
	cu := parse(t, "enum E implements I { A, B(1) { }, C; int x; }")
	decl := cu.Decls[0]
	if decl.Kind != EnumDecl {
		t.Fatalf("Kind = %v, want EnumDecl", decl.Kind)
	}
	if len(decl.Interfaces) != 1 || decl.Interfaces[0].Name != "I" {
		t.Errorf("Interfaces = %+v, want [I]", decl.Interfaces)
	}
	if len(decl.Members) != 4 {
		t.Fatalf("len(Members) = %d, want 4", len(decl.Members))
	}

	a := decl.Members[0].(*VarDecl)
	if a.Name != "A" {
		t.Errorf("Members[0].Name = %q, want A", a.Name)
	}
	if a.Mods != enumConstantMods {
		t.Errorf("A.Mods = %v, want %v", a.Mods, enumConstantMods)
	}

	b := decl.Members[1].(*VarDecl)
	if b.Name != "B" {
		t.Errorf("Members[1].Name = %q, want B", b.Name)
	}
	if !b.Mods.Has(ModEnumImpl) {
		t.Error("B.Mods missing ModEnumImpl")
	}

	c := decl.Members[2].(*VarDecl)
	if c.Name != "C" || c.Mods.Has(ModEnumImpl) {
		t.Errorf("Members[2] = %+v, want plain constant C", c)
	}

	x := decl.Members[3].(*VarDecl)
	if x.Name != "x" {
		t.Errorf("Members[3].Name = %q, want x", x.Name)
	}
}

func TestParseAnnotationTypeWithDefault(t *testing.T) {
	cu := parse(t, `@interface A { String value() default "x"; }`)
	decl := cu.Decls[0]
	if decl.Kind != AnnotationDecl {
		t.Fatalf("Kind = %v, want AnnotationDecl", decl.Kind)
	}
	if len(decl.Members) != 1 {
		t.Fatalf("len(Members) = %d, want 1", len(decl.Members))
	}
	m := decl.Members[0].(*MethDecl)
	if m.Name != "value" {
		t.Errorf("Name = %q, want value", m.Name)
	}
	ct, ok := m.Return.(*ClassTy)
	if !ok || ct.Name != "String" {
		t.Errorf("Return = %+v, want ClassTy(String)", m.Return)
	}
	lit, ok := m.Default.(*Lit)
	if !ok {
		t.Fatalf("Default = %T, want *Lit", m.Default)
	}
	if lit.Kind != TokenStringLiteral {
		t.Errorf("Default.Kind = %v, want TokenStringLiteral", lit.Kind)
	}
}

func TestParseMultiDeclaratorField(t *testing.T) {
	cu := parse(t, "class C { int a, b[], c = 1; }")
	decl := cu.Decls[0]
	if len(decl.Members) != 3 {
		t.Fatalf("len(Members) = %d, want 3", len(decl.Members))
	}

	a := decl.Members[0].(*VarDecl)
	if a.Name != "a" {
		t.Errorf("Members[0].Name = %q, want a", a.Name)
	}
	if _, ok := a.Type.(*PrimTy); !ok {
		t.Errorf("a.Type = %T, want *PrimTy", a.Type)
	}
	if a.Init != nil {
		t.Errorf("a.Init = %+v, want nil", a.Init)
	}

	b := decl.Members[1].(*VarDecl)
	if b.Name != "b" {
		t.Errorf("Members[1].Name = %q, want b", b.Name)
	}
	arr, ok := b.Type.(*ArrTy)
	if !ok {
		t.Fatalf("b.Type = %T, want *ArrTy", b.Type)
	}
	if _, ok := arr.Elem.(*PrimTy); !ok {
		t.Errorf("b.Type.Elem = %T, want *PrimTy", arr.Elem)
	}

	c := decl.Members[2].(*VarDecl)
	if c.Name != "c" {
		t.Errorf("Members[2].Name = %q, want c", c.Name)
	}
	if _, ok := c.Type.(*PrimTy); !ok {
		t.Errorf("c.Type = %T, want *PrimTy", c.Type)
	}
	lit, ok := c.Init.(*Lit)
	if !ok {
		t.Fatalf("c.Init = %T, want *Lit", c.Init)
	}
	if lit.Literal != "1" {
		t.Errorf("c.Init.Literal = %q, want 1", lit.Literal)
	}

	// Modifier sets and annotation lists are shared across declarators from
	// the same declaration; a, b, and c carry no modifiers or annotations
	// here, but they must agree pointwise.
	if a.Mods != b.Mods || b.Mods != c.Mods {
		t.Errorf("modifier sets differ across declarators: %v %v %v", a.Mods, b.Mods, c.Mods)
	}
}

func TestParseArrayInitializerFieldDropsInitializer(t *testing.T) {
	cu := parse(t, "class C { int[] a = {1, 2, 3}; }")
	decl := cu.Decls[0]
	f := decl.Members[0].(*VarDecl)
	if f.Init != nil {
		t.Errorf("Init = %+v, want nil (array initializers are dropped)", f.Init)
	}
}

func TestParseVarargsMethod(t *testing.T) {
	cu := parse(t, "class C { void m(int... xs) {} }")
	decl := cu.Decls[0]
	m := decl.Members[0].(*MethDecl)
	if !m.Mods.Has(ModVarargs) {
		t.Error("method Mods missing ModVarargs")
	}
	if len(m.Formals) != 1 {
		t.Fatalf("len(Formals) = %d, want 1", len(m.Formals))
	}
	p := m.Formals[0]
	if !p.Mods.Has(ModVarargs) {
		t.Error("formal Mods missing ModVarargs")
	}
	arr, ok := p.Type.(*ArrTy)
	if !ok {
		t.Fatalf("formal Type = %T, want *ArrTy", p.Type)
	}
	if _, ok := arr.Elem.(*PrimTy); !ok {
		t.Errorf("formal Type.Elem = %T, want *PrimTy", arr.Elem)
	}
}

func TestParseReceiverParameter(t *testing.T) {
	cu := parse(t, "class C { void m(Outer Outer.this) {} }")
	decl := cu.Decls[0]
	m := decl.Members[0].(*MethDecl)
	if len(m.Formals) != 1 {
		t.Fatalf("len(Formals) = %d, want 1", len(m.Formals))
	}
	// Only the final `this` is retained; the qualifier is discarded.
	if m.Formals[0].Name != "this" {
		t.Errorf("Name = %q, want this", m.Formals[0].Name)
	}
}

func TestParseNestedGenericTypeArguments(t *testing.T) {
	cu := parse(t, "class C { Map<K,List<V>> m; Map<K,List<List<V>>> n; }")
	decl := cu.Decls[0]
	if len(decl.Members) != 2 {
		t.Fatalf("len(Members) = %d, want 2", len(decl.Members))
	}

	m := decl.Members[0].(*VarDecl)
	mt, ok := m.Type.(*ClassTy)
	if !ok || mt.Name != "Map" {
		t.Fatalf("m.Type = %+v, want ClassTy(Map)", m.Type)
	}
	if len(mt.TyArgs) != 2 {
		t.Fatalf("len(Map.TyArgs) = %d, want 2", len(mt.TyArgs))
	}
	inner, ok := mt.TyArgs[1].(*ClassTy)
	if !ok || inner.Name != "List" {
		t.Fatalf("Map.TyArgs[1] = %+v, want ClassTy(List)", mt.TyArgs[1])
	}
	if len(inner.TyArgs) != 1 {
		t.Fatalf("len(List.TyArgs) = %d, want 1", len(inner.TyArgs))
	}
	if v, ok := inner.TyArgs[0].(*ClassTy); !ok || v.Name != "V" {
		t.Errorf("List.TyArgs[0] = %+v, want ClassTy(V)", inner.TyArgs[0])
	}

	n := decl.Members[1].(*VarDecl)
	nt := n.Type.(*ClassTy)
	listList := nt.TyArgs[1].(*ClassTy)
	if listList.Name != "List" {
		t.Fatalf("nested TyArgs[1] = %+v, want ClassTy(List)", listList)
	}
	innerList := listList.TyArgs[0].(*ClassTy)
	if innerList.Name != "List" {
		t.Fatalf("doubly-nested TyArgs[0] = %+v, want ClassTy(List)", innerList)
	}
	if v, ok := innerList.TyArgs[0].(*ClassTy); !ok || v.Name != "V" {
		t.Errorf("triply-nested TyArgs[0] = %+v, want ClassTy(V)", innerList.TyArgs[0])
	}
}

func TestParseWildcardTypeArguments(t *testing.T) {
	cu := parse(t, "class C { List<? extends Number> a; List<? super Integer> b; List<?> c; }")
	decl := cu.Decls[0]

	wildOf := func(i int) *WildTy {
		v := decl.Members[i].(*VarDecl)
		ct := v.Type.(*ClassTy)
		w, ok := ct.TyArgs[0].(*WildTy)
		if !ok {
			t.Fatalf("Members[%d] type arg = %T, want *WildTy", i, ct.TyArgs[0])
		}
		return w
	}

	a := wildOf(0)
	if a.Upper == nil || a.Lower != nil {
		t.Errorf("extends wildcard = %+v, want Upper set, Lower nil", a)
	}
	if ct, ok := a.Upper.(*ClassTy); !ok || ct.Name != "Number" {
		t.Errorf("Upper = %+v, want ClassTy(Number)", a.Upper)
	}

	b := wildOf(1)
	if b.Lower == nil || b.Upper != nil {
		t.Errorf("super wildcard = %+v, want Lower set, Upper nil", b)
	}

	c := wildOf(2)
	if c.Upper != nil || c.Lower != nil {
		t.Errorf("unbounded wildcard = %+v, want both nil", c)
	}
}

func TestParseGenericMethodVsField(t *testing.T) {
	cu := parse(t, "class C { <T> T identity(T x) { return x; } int plain; }")
	decl := cu.Decls[0]
	if len(decl.Members) != 2 {
		t.Fatalf("len(Members) = %d, want 2", len(decl.Members))
	}
	m, ok := decl.Members[0].(*MethDecl)
	if !ok {
		t.Fatalf("Members[0] = %T, want *MethDecl", decl.Members[0])
	}
	if len(m.TyParams) != 1 || m.TyParams[0].Name != "T" {
		t.Errorf("TyParams = %+v, want [T]", m.TyParams)
	}
	if _, ok := decl.Members[1].(*VarDecl); !ok {
		t.Errorf("Members[1] = %T, want *VarDecl", decl.Members[1])
	}
}

func TestParseAnnotationArguments(t *testing.T) {
	cu := parse(t, `@Anno(value = 1, other = "x") class C {}`)
	decl := cu.Decls[0]
	if len(decl.Annos) != 1 {
		t.Fatalf("len(Annos) = %d, want 1", len(decl.Annos))
	}
	anno := decl.Annos[0]
	if len(anno.Name) != 1 || anno.Name[0] != "Anno" {
		t.Errorf("Name = %v, want [Anno]", anno.Name)
	}
	if len(anno.Args) != 4 {
		t.Fatalf("len(Args) = %d, want 4 (name, value pairs)", len(anno.Args))
	}
	nameExpr, ok := anno.Args[0].(*Name)
	if !ok || len(nameExpr.Parts) != 1 || nameExpr.Parts[0] != "value" {
		t.Errorf("Args[0] = %+v, want Name(value)", anno.Args[0])
	}
}

func TestParseBareAnnotationValue(t *testing.T) {
	// A single, unnamed annotation argument that happens to be a bare
	// identifier must not be mistaken for a named argument: the lookahead
	// for `name =` has to rewind cleanly when there is no `=`.
	cu := parse(t, `@Anno(SOME_CONSTANT) class C {}`)
	anno := cu.Decls[0].Annos[0]
	if len(anno.Args) != 1 {
		t.Fatalf("len(Args) = %d, want 1", len(anno.Args))
	}
	n, ok := anno.Args[0].(*Name)
	if !ok || len(n.Parts) != 1 || n.Parts[0] != "SOME_CONSTANT" {
		t.Errorf("Args[0] = %+v, want Name(SOME_CONSTANT)", anno.Args[0])
	}
}

func TestParseFailsOnMalformedInput(t *testing.T) {
	_, err := ParseCompilationUnit(NewSourceFile("Bad.java", []byte("class {}")))
	if err == nil {
		t.Fatal("expected an error for a class with no name")
	}
	if _, ok := err.(*Diagnostic); !ok {
		t.Errorf("error type = %T, want *Diagnostic", err)
	}
}

func TestParseFailsOnGenericField(t *testing.T) {
	_, err := ParseCompilationUnit(NewSourceFile("Bad.java", []byte("class C { <T> int x; }")))
	if err == nil {
		t.Fatal("expected an error for a field carrying type parameters")
	}
}

func TestParseOutOfOrderImportAfterDecl(t *testing.T) {
	// An import appearing after a type declaration is unusual but must
	// still be recognized as an import rather than falling through to
	// the "expected a type declaration" error, since the dispatch loop
	// re-checks every token kind on every iteration.
	cu := parse(t, "class A {} import x.y;")
	if len(cu.Decls) != 1 {
		t.Fatalf("len(Decls) = %d, want 1", len(cu.Decls))
	}
	if len(cu.Imports) != 1 {
		t.Fatalf("len(Imports) = %d, want 1", len(cu.Imports))
	}
	want := []string{"x", "y"}
	if len(cu.Imports[0].Name) != len(want) {
		t.Fatalf("Imports[0].Name = %v, want %v", cu.Imports[0].Name, want)
	}
	for i, p := range want {
		if cu.Imports[0].Name[i] != p {
			t.Errorf("Imports[0].Name[%d] = %q, want %q", i, cu.Imports[0].Name[i], p)
		}
	}
}

func TestParseDanglingModifierAtEOFAccepted(t *testing.T) {
	// Dangling modifiers/annotations before EOF are accepted silently; see
	// the Open Questions in SPEC_FULL.md.
	cu := parse(t, "class C {} public")
	if len(cu.Decls) != 1 {
		t.Fatalf("len(Decls) = %d, want 1", len(cu.Decls))
	}
}
