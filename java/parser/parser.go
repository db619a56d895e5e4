package parser

// tokStream is the minimal surface a grammar function needs to consume
// tokens. It is implemented by *parser, which reads directly off the
// lexer, and by *savedStream, which replays a fixed slice of tokens saved
// earlier by the variable-initializer splitter. Sharing this interface is
// what lets the constant-expression grammar run either against the live
// source or against a declarator's saved tail.
type tokStream interface {
	peek() Token
	advance() Token
	failToken(tok Token, format string, args ...any)
	mark() any
	rewind(any)
}

type parserMark struct {
	tok Token
	lex Lexer
}

func (p *parser) mark() any { return parserMark{tok: p.tok, lex: *p.lex} }

func (p *parser) rewind(m any) {
	pm := m.(parserMark)
	p.tok = pm.tok
	*p.lex = pm.lex
}

// parser turns a token stream into a CompUnit. It holds one token of
// lookahead; the few places that need more peek on a copy of the lexer or
// save and restore the stream with mark/rewind. There is no error
// recovery, so every grammar function either succeeds or the whole parse
// panics with a parseError caught at the ParseCompilationUnit boundary.
type parser struct {
	source *SourceFile
	lex    *Lexer
	tok    Token
}

func newParser(source *SourceFile) *parser {
	processed, origOffsets := preprocessUnicodeEscapes(source.Bytes)
	lex := NewLexer(processed, source.Name)
	if origOffsets != nil {
		lex.esc = &escapeMap{orig: origOffsets, source: source}
	}
	p := &parser{source: source, lex: lex}
	p.tok = p.scan()
	return p
}

// scan reads the next significant token from the lexer, silently dropping
// whitespace and comments: the grammar never needs to see them.
func (p *parser) scan() Token {
	for {
		t := p.lex.NextToken()
		switch t.Kind {
		case TokenWhitespace, TokenComment, TokenLineComment:
			continue
		default:
			return t
		}
	}
}

func (p *parser) peek() Token { return p.tok }

func (p *parser) advance() Token {
	prev := p.tok
	p.tok = p.scan()
	return prev
}

// eat consumes the current token if it has the given kind and reports
// whether it did.
func (p *parser) eat(kind TokenKind) bool {
	if p.tok.Kind == kind {
		p.advance()
		return true
	}
	return false
}

// expect consumes the current token, which must have the given kind, or
// fails.
func (p *parser) expect(kind TokenKind) Token {
	if p.tok.Kind != kind {
		p.failToken(p.tok, "expected %s", kind)
	}
	return p.advance()
}

// eatIdent consumes an identifier token and returns its text.
func (p *parser) eatIdent() string {
	if p.tok.Kind != TokenIdent {
		p.failToken(p.tok, "expected an identifier")
	}
	return p.advance().Literal
}

// ParseCompilationUnit parses a single Java source file into a CompUnit.
// Parsing stops at the first malformed construct; there is no attempt to
// recover and continue.
func ParseCompilationUnit(source *SourceFile) (cu *CompUnit, err error) {
	defer recoverParseError(&err)
	p := newParser(source)
	cu = p.compilationUnit()
	return cu, nil
}

// compilationUnit dispatches on the current token on every iteration,
// the way a single source file's package/import/type-declaration sequence
// actually interleaves, rather than assuming package and import sections
// are each contiguous. This is what lets a later, out-of-place import or
// package token still be recognized instead of falling through to
// typeDecl's "expected a type declaration" error.
func (p *parser) compilationUnit() *CompUnit {
	start := p.tok.Span.Start.Offset

	var pkg *PkgDecl
	var imports []*ImportDecl
	var decls []*TyDecl
	var annos []*Anno
	var mods ModifierSet

	for {
		switch p.tok.Kind {
		case TokenEOF:
			return &CompUnit{pos: pos{start}, Package: pkg, Imports: imports, Decls: decls, Source: p.source}
		case TokenSemicolon:
			p.advance()
		case TokenPackage:
			pkg = p.packageDecl(annos)
			annos = nil
		case TokenImport:
			imports = append(imports, p.importDecl())
		case TokenAt:
			if p.isAnnotationStart() {
				annos = append(annos, p.annotation())
				continue
			}
			decls = append(decls, p.typeDecl(mods, annos))
			mods, annos = 0, nil
		case TokenClass, TokenInterface, TokenEnum:
			decls = append(decls, p.typeDecl(mods, annos))
			mods, annos = 0, nil
		default:
			m, a := p.modifiers()
			mods |= m
			annos = append(annos, a...)
			if p.tok.Kind == TokenEOF {
				// Dangling modifiers or annotations before end-of-file are
				// accepted silently rather than reported as an error.
				return &CompUnit{pos: pos{start}, Package: pkg, Imports: imports, Decls: decls, Source: p.source}
			}
			decls = append(decls, p.typeDecl(mods, annos))
			mods, annos = 0, nil
		}
	}
}

func (p *parser) packageDecl(annos []*Anno) *PkgDecl {
	start := p.tok.Span.Start.Offset
	p.expect(TokenPackage)
	name := p.qualIdent()
	p.expect(TokenSemicolon)
	return &PkgDecl{pos: pos{start}, Name: name, Annos: annos}
}

func (p *parser) importDecl() *ImportDecl {
	start := p.tok.Span.Start.Offset
	p.expect(TokenImport)
	isStatic := p.eat(TokenStatic)
	name := []string{p.eatIdent()}
	isWild := false
	for p.tok.Kind == TokenDot {
		p.advance()
		if p.tok.Kind == TokenStar {
			p.advance()
			isWild = true
			break
		}
		name = append(name, p.eatIdent())
	}
	p.expect(TokenSemicolon)
	return &ImportDecl{pos: pos{start}, Name: name, IsStatic: isStatic, IsWild: isWild}
}

func (p *parser) qualIdent() []string {
	name := []string{p.eatIdent()}
	for p.tok.Kind == TokenDot {
		p.advance()
		name = append(name, p.eatIdent())
	}
	return name
}

// typeDecl dispatches on the keyword that follows a modifier/annotation
// run (already consumed by the caller) to decide which of the four
// declaration flavors to parse.
func (p *parser) typeDecl(mods ModifierSet, annos []*Anno) *TyDecl {
	start := p.tok.Span.Start.Offset

	switch p.tok.Kind {
	case TokenClass:
		return p.classDeclaration(start, mods, annos)
	case TokenInterface:
		return p.interfaceDeclaration(start, mods, annos)
	case TokenEnum:
		return p.enumDeclaration(start, mods, annos)
	case TokenAt:
		// `@interface` annotation type declaration: the `@` was already
		// consumed as part of an annotation unless it is immediately
		// followed by `interface`.
		p.advance()
		p.expect(TokenInterface)
		return p.annotationDeclaration(start, mods, annos)
	default:
		p.failToken(p.tok, "expected a type declaration")
		panic("unreachable")
	}
}

// modifiers consumes a run of modifier keywords and annotations in any
// order, as Java permits, and folds them into a ModifierSet plus the
// annotations that were not modifier keywords.
func (p *parser) modifiers() (ModifierSet, []*Anno) {
	var mods ModifierSet
	var annos []*Anno
	for {
		switch p.tok.Kind {
		case TokenPublic:
			mods |= ModPublic
		case TokenPrivate:
			mods |= ModPrivate
		case TokenProtected:
			mods |= ModProtected
		case TokenStatic:
			mods |= ModStatic
		case TokenFinal:
			mods |= ModFinal
		case TokenAbstract:
			mods |= ModAbstract
		case TokenNative:
			mods |= ModNative
		case TokenSynchronized:
			mods |= ModSynchronized
		case TokenTransient:
			mods |= ModTransient
		case TokenVolatile:
			mods |= ModVolatile
		case TokenStrictfp:
			mods |= ModStrictfp
		case TokenDefault:
			mods |= ModDefault
		case TokenAt:
			if p.isAnnotationStart() {
				annos = append(annos, p.annotation())
				continue
			}
			return mods, annos
		default:
			return mods, annos
		}
		p.advance()
	}
}

// scanSignificant reads the next non-whitespace, non-comment token off a
// lexer, without regard for which parser (if any) owns it.
func scanSignificant(l *Lexer) Token {
	for {
		t := l.NextToken()
		switch t.Kind {
		case TokenWhitespace, TokenComment, TokenLineComment:
			continue
		default:
			return t
		}
	}
}

// isAnnotationStart reports whether the `@` under the cursor begins an
// annotation use rather than an `@interface` declaration. It peeks one
// token past the `@` on a throwaway copy of the lexer, so the real lexer
// is left untouched either way.
func (p *parser) isAnnotationStart() bool {
	clone := *p.lex
	return scanSignificant(&clone).Kind != TokenInterface
}

// isCtorStart reports whether the identifier under the cursor is a
// constructor name, i.e. it is immediately followed by `(`.
func (p *parser) isCtorStart() bool {
	clone := *p.lex
	return scanSignificant(&clone).Kind == TokenLParen
}

func (p *parser) annotation() *Anno {
	return parseAnnotationOn(p)
}

func (p *parser) constExpression() Expression {
	return parseConstExpr(p)
}

func (p *parser) classDeclaration(start int, mods ModifierSet, annos []*Anno) *TyDecl {
	p.expect(TokenClass)
	name := p.eatIdent()
	typarams := p.typarams()
	var super *ClassTy
	if p.eat(TokenExtends) {
		super = p.classty()
	}
	var ifaces []*ClassTy
	if p.eat(TokenImplements) {
		ifaces = p.classtyList()
	}
	members := p.classBody()
	return &TyDecl{
		pos: pos{start}, Mods: mods, Annos: annos, Name: name, TyParams: typarams,
		SuperClass: super, Interfaces: ifaces, Members: members, Kind: ClassDecl,
	}
}

func (p *parser) interfaceDeclaration(start int, mods ModifierSet, annos []*Anno) *TyDecl {
	p.expect(TokenInterface)
	name := p.eatIdent()
	typarams := p.typarams()
	var ifaces []*ClassTy
	if p.eat(TokenExtends) {
		ifaces = p.classtyList()
	}
	members := p.classBody()
	return &TyDecl{
		pos: pos{start}, Mods: mods, Annos: annos, Name: name, TyParams: typarams,
		Interfaces: ifaces, Members: members, Kind: InterfaceDecl,
	}
}

func (p *parser) annotationDeclaration(start int, mods ModifierSet, annos []*Anno) *TyDecl {
	name := p.eatIdent()
	members := p.classBody()
	return &TyDecl{
		pos: pos{start}, Mods: mods, Annos: annos, Name: name, Members: members, Kind: AnnotationDecl,
	}
}

func (p *parser) enumDeclaration(start int, mods ModifierSet, annos []*Anno) *TyDecl {
	p.expect(TokenEnum)
	name := p.eatIdent()
	var ifaces []*ClassTy
	if p.eat(TokenImplements) {
		ifaces = p.classtyList()
	}
	p.expect(TokenLBrace)
	members := p.enumMembers()
	p.expect(TokenRBrace)
	for _, m := range members {
		// Enum constants are typed as the enclosing enum itself.
		if v, ok := m.(*VarDecl); ok && v.Mods.Has(ModEnum) && v.Type == nil {
			v.Type = &ClassTy{pos: pos{v.Pos()}, Name: name}
		}
	}
	return &TyDecl{
		pos: pos{start}, Mods: mods, Annos: annos, Name: name,
		Interfaces: ifaces, Members: members, Kind: EnumDecl,
	}
}

// enumMembers parses the constant list that precedes the optional `;`
// separating it from the enum's ordinary members.
func (p *parser) enumMembers() []Member {
	var members []Member
	for p.tok.Kind == TokenAt || p.tok.Kind == TokenIdent {
		members = append(members, p.enumConstant())
		if !p.eat(TokenComma) {
			break
		}
	}
	if p.eat(TokenSemicolon) {
		members = append(members, p.classMembers()...)
	}
	return members
}

func (p *parser) enumConstant() *VarDecl {
	start := p.tok.Span.Start.Offset
	var annos []*Anno
	for p.tok.Kind == TokenAt {
		annos = append(annos, p.annotation())
	}
	name := p.eatIdent()
	mods := enumConstantMods
	if p.tok.Kind == TokenLParen {
		p.dropParens()
	}
	if p.tok.Kind == TokenLBrace {
		p.dropBlocks()
		mods |= ModEnumImpl
	}
	return &VarDecl{pos: pos{start}, Mods: mods, Annos: annos, Name: name}
}

func (p *parser) classtyList() []*ClassTy {
	list := []*ClassTy{p.classty()}
	for p.eat(TokenComma) {
		list = append(list, p.classty())
	}
	return list
}

func (p *parser) classBody() []Member {
	p.expect(TokenLBrace)
	members := p.classMembers()
	p.expect(TokenRBrace)
	return members
}

func (p *parser) classMembers() []Member {
	var members []Member
	for p.tok.Kind != TokenRBrace && p.tok.Kind != TokenEOF {
		if p.tok.Kind == TokenSemicolon {
			p.advance()
			continue
		}
		if p.tok.Kind == TokenLBrace {
			// Bare instance or static initializer block; not a
			// declaration, and its contents are never parsed.
			p.dropBlocks()
			continue
		}
		members = append(members, p.classMember()...)
	}
	return members
}

// classMember parses one modifier/annotation run and then disambiguates
// between a nested type declaration, a method or constructor, and a field
// declaration by looking at what follows the declared type. A field
// declaration can introduce several comma-separated declarators sharing
// one type and modifier set, so this returns a slice rather than a single
// Member.
func (p *parser) classMember() []Member {
	start := p.tok.Span.Start.Offset
	mods, annos := p.modifiers()

	switch p.tok.Kind {
	case TokenClass:
		return []Member{p.classDeclaration(start, mods, annos)}
	case TokenInterface:
		return []Member{p.interfaceDeclaration(start, mods, annos)}
	case TokenEnum:
		return []Member{p.enumDeclaration(start, mods, annos)}
	case TokenAt:
		// modifiers() only stops on `@` when isAnnotationStart ruled out
		// a plain annotation use, so this must be `@interface`.
		p.advance()
		p.expect(TokenInterface)
		return []Member{p.annotationDeclaration(start, mods, annos)}
	case TokenLBrace:
		// `static { ... }` initializer block; its contents are never parsed.
		p.dropBlocks()
		return nil
	default:
		return p.memberRest(start, mods, annos)
	}
}

// memberRest parses everything that is neither a nested type nor a bare
// initializer block: type parameters + constructor, or a type followed by
// either a method or one-or-more field declarators.
func (p *parser) memberRest(start int, mods ModifierSet, annos []*Anno) []Member {
	typarams := p.typarams()

	if p.tok.Kind == TokenIdent && p.isCtorStart() {
		return []Member{p.methodRest(start, mods, annos, typarams, nil, p.eatIdent())}
	}

	ty := p.typeSyntax()
	name := p.eatIdent()

	if p.tok.Kind == TokenLParen {
		return []Member{p.methodRest(start, mods, annos, typarams, ty, name)}
	}

	if len(typarams) > 0 {
		p.fail(start, "generic field %q carries method-style type parameters, which is illegal", name)
	}

	decls := p.fieldRest(start, mods, annos, ty, name)
	members := make([]Member, len(decls))
	for i, d := range decls {
		members[i] = d
	}
	return members
}

func (p *parser) methodRest(start int, mods ModifierSet, annos []*Anno, typarams []*TyParam, ret Type, name string) *MethDecl {
	if ret == nil {
		name = CtorName
	}
	formals := p.formalParams()
	for _, f := range formals {
		if f.Mods.Has(ModVarargs) {
			mods |= ModVarargs
		}
	}
	for p.tok.Kind == TokenLBracket {
		// C-style array return, e.g. `int foo()[]`: fold the trailing
		// brackets into the return type.
		p.advance()
		p.expect(TokenRBracket)
		ret = &ArrTy{pos: pos{start}, Elem: ret}
	}
	var throws []*ClassTy
	if p.eat(TokenThrows) {
		throws = p.classtyList()
	}

	var def Expression
	if p.tok.Kind == TokenDefault {
		p.advance()
		def = p.constExpression()
	}

	switch p.tok.Kind {
	case TokenLBrace:
		p.dropBlocks()
	case TokenSemicolon:
		p.advance()
	default:
		p.failToken(p.tok, "expected a method body or ';'")
	}

	return &MethDecl{
		pos: pos{start}, Mods: mods, Annos: annos, TyParams: typarams,
		Return: ret, Name: name, Formals: formals, Throws: throws, Default: def,
	}
}

// fieldRest parses one or more comma-separated declarators sharing a
// common declared type and modifier set, e.g. `int a = 1, b[], c;`. Each
// declarator's initializer, if it has one, is isolated ahead of time by
// splitDeclaratorInit and handed to the constant-expression grammar as an
// independent token slice; an initializer that parses as an array
// initializer is dropped rather than retained, regardless of the
// declared type.
func (p *parser) fieldRest(start int, mods ModifierSet, annos []*Anno, ty Type, name string) []*VarDecl {
	var decls []*VarDecl
	for {
		declStart := start
		if len(decls) > 0 {
			declStart = p.tok.Span.Start.Offset
		}
		declTy := ty
		for p.tok.Kind == TokenLBracket {
			p.advance()
			p.expect(TokenRBracket)
			declTy = &ArrTy{pos: pos{declStart}, Elem: declTy}
		}

		var init Expression
		if p.eat(TokenAssign) {
			toks := p.splitDeclaratorInit()
			init = parseDeclaratorExpr(toks, p.source)
			if init.exprKind() == ExprArrayInit {
				// Array-initializer field initializers are dropped rather
				// than represented; only scalar constant initializers
				// survive into the tree.
				init = nil
			}
		}

		decls = append(decls, &VarDecl{
			pos: pos{declStart}, Mods: mods, Annos: annos, Type: declTy, Name: name, Init: init,
		})

		if !p.eat(TokenComma) {
			break
		}
		name = p.eatIdent()
	}
	p.expect(TokenSemicolon)
	return decls
}

func (p *parser) typarams() []*TyParam {
	if p.tok.Kind != TokenLT {
		return nil
	}
	p.advance()
	var params []*TyParam
	for {
		start := p.tok.Span.Start.Offset
		var annos []*Anno
		for p.tok.Kind == TokenAt {
			annos = append(annos, p.annotation())
		}
		name := p.eatIdent()
		var bounds []Type
		if p.eat(TokenExtends) {
			bounds = append(bounds, p.referenceType())
			for p.eat(TokenBitAnd) {
				bounds = append(bounds, p.referenceType())
			}
		}
		params = append(params, &TyParam{pos: pos{start}, Name: name, Bounds: bounds, Annos: annos})
		if !p.eat(TokenComma) {
			break
		}
	}
	p.expectGT()
	return params
}

// typeSyntax parses a type, including any of the annotation/primitive/
// array/class forms this grammar supports.
func (p *parser) typeSyntax() Type {
	var annos []*Anno
	for p.tok.Kind == TokenAt {
		annos = append(annos, p.annotation())
	}

	start := p.tok.Span.Start.Offset
	var base Type
	switch p.tok.Kind {
	case TokenVoid:
		p.advance()
		base = &VoidTy{pos: pos{start}, Annos: annos}
	case TokenBoolean, TokenByte, TokenShort, TokenInt, TokenLong, TokenChar, TokenFloat, TokenDouble:
		kind := primKindOf(p.tok.Kind)
		p.advance()
		base = &PrimTy{pos: pos{start}, Annos: annos, Kind: kind}
	case TokenIdent:
		base = p.classtyAnnotated(annos)
	default:
		p.failToken(p.tok, "expected a type")
		panic("unreachable")
	}

	for p.tok.Kind == TokenLBracket || p.tok.Kind == TokenAt {
		arrStart := p.tok.Span.Start.Offset
		var elemAnnos []*Anno
		for p.tok.Kind == TokenAt {
			elemAnnos = append(elemAnnos, p.annotation())
		}
		if p.tok.Kind != TokenLBracket {
			p.failToken(p.tok, "expected '[' after array annotation")
		}
		p.advance()
		p.expect(TokenRBracket)
		base = &ArrTy{pos: pos{arrStart}, Annos: elemAnnos, Elem: base}
	}
	return base
}

func primKindOf(k TokenKind) PrimKind {
	switch k {
	case TokenBoolean:
		return PrimBoolean
	case TokenByte:
		return PrimByte
	case TokenShort:
		return PrimShort
	case TokenInt:
		return PrimInt
	case TokenLong:
		return PrimLong
	case TokenChar:
		return PrimChar
	case TokenFloat:
		return PrimFloat
	case TokenDouble:
		return PrimDouble
	}
	panic("not a primitive token")
}

// referenceType parses a type that cannot be a primitive or void: a class
// type, an array of one, or a wildcard (legal only inside a type-argument
// list, but checked by the caller rather than here).
func (p *parser) referenceType() Type {
	if p.tok.Kind == TokenQuestion {
		return p.wildcard(nil)
	}
	return p.typeSyntax()
}

func (p *parser) wildcard(annos []*Anno) Type {
	start := p.tok.Span.Start.Offset
	p.expect(TokenQuestion)
	var upper, lower Type
	if p.eat(TokenExtends) {
		upper = p.referenceType()
	} else if p.eat(TokenSuper) {
		lower = p.referenceType()
	}
	return &WildTy{pos: pos{start}, Annos: annos, Upper: upper, Lower: lower}
}

// classty parses a (possibly qualified, possibly parameterized) class
// type starting at the current identifier.
func (p *parser) classty() *ClassTy {
	return p.classtyAnnotated(nil)
}

func (p *parser) classtyAnnotated(annos []*Anno) *ClassTy {
	start := p.tok.Span.Start.Offset
	name := p.eatIdent()
	ty := &ClassTy{pos: pos{start}, Name: name, Annos: annos, TyArgs: p.maybeTyArgs()}

	for p.tok.Kind == TokenDot {
		// Only consume the `.` as part of this type when the next token
		// starts another identifier segment; a trailing `.class` or
		// `.this` is left unconsumed for the caller.
		save, saveLex := p.tok, *p.lex
		p.advance()
		var segAnnos []*Anno
		for p.tok.Kind == TokenAt {
			segAnnos = append(segAnnos, p.annotation())
		}
		if p.tok.Kind != TokenIdent {
			*p.lex, p.tok = saveLex, save
			break
		}
		segStart := p.tok.Span.Start.Offset
		seg := p.eatIdent()
		ty = &ClassTy{pos: pos{segStart}, Enclosing: ty, Name: seg, Annos: segAnnos, TyArgs: p.maybeTyArgs()}
	}
	return ty
}

func (p *parser) maybeTyArgs() []Type {
	if p.tok.Kind != TokenLT {
		return nil
	}
	return p.tyargs()
}

// tyargs parses a `<...>` type-argument list. Nested generics like
// `Map<K, List<V>>` lex their closing angle brackets as a single `>>` (or
// `>>>`) token; expectGT splits that token in place rather than advancing,
// so each nesting level consumes exactly one `>` of it.
func (p *parser) tyargs() []Type {
	p.expect(TokenLT)
	if p.tok.Kind == TokenGT || p.tok.Kind == TokenShr || p.tok.Kind == TokenUShr {
		p.expectGT()
		return nil
	}
	var args []Type
	for {
		if p.tok.Kind == TokenQuestion {
			args = append(args, p.wildcard(nil))
		} else {
			args = append(args, p.typeSyntax())
		}
		if !p.eat(TokenComma) {
			break
		}
	}
	p.expectGT()
	return args
}

// expectGT consumes one closing `>` from the current token, which may be
// a lone `>`, or a merged `>>`/`>>>`/`>=`/`>>=`/`>>>=` token produced by the
// lexer. Merged tokens are rewritten in place to their tail with one `>`
// removed, so the same merged token can close several nested type-argument
// lists without the lexer ever being asked to rescan.
func (p *parser) expectGT() {
	tok := p.tok
	switch tok.Kind {
	case TokenGT:
		p.advance()
	case TokenShr: // >>
		p.tok = shrinkAngle(tok, TokenGT, ">")
	case TokenUShr: // >>>
		p.tok = shrinkAngle(tok, TokenShr, ">>")
	case TokenGE: // >=
		p.tok = shrinkAngle(tok, TokenAssign, "=")
	case TokenShrAssign: // >>=
		p.tok = shrinkAngle(tok, TokenGE, ">=")
	case TokenUShrAssign: // >>>=
		p.tok = shrinkAngle(tok, TokenShrAssign, ">>=")
	default:
		p.failToken(tok, "expected '>'")
	}
}

// shrinkAngle rewrites a merged angle-bracket token to the token that
// remains once a single leading '>' is peeled off, keeping its original
// start position advanced by one byte and its end position unchanged.
func shrinkAngle(tok Token, kind TokenKind, literal string) Token {
	start := tok.Span.Start
	start.Offset++
	start.Column++
	return Token{
		Kind:    kind,
		Literal: literal,
		Span:    Span{Start: start, End: tok.Span.End},
	}
}

func (p *parser) formalParams() []*VarDecl {
	p.expect(TokenLParen)
	var params []*VarDecl
	for p.tok.Kind != TokenRParen {
		params = append(params, p.formalParam())
		if !p.eat(TokenComma) {
			break
		}
	}
	p.expect(TokenRParen)
	return params
}

// formalParam parses one formal parameter, including the varargs `...`
// marker and the receiver-parameter form `Type Outer.this`.
func (p *parser) formalParam() *VarDecl {
	start := p.tok.Span.Start.Offset
	mods, annos := p.modifiers()
	ty := p.typeSyntax()

	if p.tok.Kind == TokenEllipsis {
		p.advance()
		mods |= ModVarargs
		ty = &ArrTy{pos: pos{start}, Elem: ty}
	}

	name := p.identOrThis()
	for p.tok.Kind == TokenLBracket {
		p.advance()
		p.expect(TokenRBracket)
		ty = &ArrTy{pos: pos{start}, Elem: ty}
	}
	return &VarDecl{pos: pos{start}, Mods: mods, Annos: annos, Type: ty, Name: name}
}

// identOrThis parses a formal parameter's name, which is either a plain
// identifier or a (possibly qualified) receiver-parameter name ending in
// `this`, e.g. `Outer.this`. Only the final `this` is retained: the
// qualifier exists in Java source only to say which enclosing instance
// the receiver is, not to be carried as part of the parameter's name, so
// each dot-segment overwrites rather than extends the name in progress.
func (p *parser) identOrThis() string {
	if p.tok.Kind == TokenThis {
		p.advance()
		return "this"
	}
	name := p.eatIdent()
	for p.tok.Kind == TokenDot {
		p.advance()
		if p.tok.Kind == TokenThis {
			p.advance()
			return "this"
		}
		name = p.eatIdent()
	}
	return name
}

// dropParens skips a balanced `(...)` group without building any tree for
// its contents, used for enum-constant constructor arguments.
func (p *parser) dropParens() {
	p.expect(TokenLParen)
	depth := 1
	for depth > 0 {
		switch p.tok.Kind {
		case TokenLParen:
			depth++
		case TokenRParen:
			depth--
		case TokenEOF:
			p.failToken(p.tok, "unterminated parentheses")
		}
		p.advance()
	}
}

// dropBlocks skips a balanced `{...}` group: a method body, an initializer
// block, or an enum constant's anonymous class body. None of its contents
// are parsed.
func (p *parser) dropBlocks() {
	p.expect(TokenLBrace)
	depth := 1
	for depth > 0 {
		switch p.tok.Kind {
		case TokenLBrace:
			depth++
		case TokenRBrace:
			depth--
		case TokenEOF:
			p.failToken(p.tok, "unterminated block")
		}
		p.advance()
	}
}

