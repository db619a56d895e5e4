// Package parser parses the declaration-level shape of a Java source file:
// package and import declarations, class/interface/enum/annotation-type
// declarations and their members, and the type syntax those declarations
// use. It does not parse statements or expressions inside method bodies;
// those are skipped as balanced token runs rather than interpreted.
//
// # Overview
//
// Parsing is a single batch pass over the whole input. There is no
// incremental/streaming mode and no error recovery: the first malformed
// construct stops the parse and ParseCompilationUnit returns an error.
// This trades IDE-style resilience for a simpler, faster implementation
// suited to bulk header extraction, where a malformed file is a file to
// report and skip, not one to partially understand.
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   Source    │────▶│   Lexer     │────▶│   Parser    │────▶ *CompUnit
//	│  (bytes)    │     │  (tokens)   │     │  (AST)      │
//	└─────────────┘     └─────────────┘     └──────┬──────┘
//	                                                │
//	                                                ▼
//	                                          first error panics
//	                                          parseError, recovered
//	                                          at ParseCompilationUnit
//
// # Unicode escapes
//
// Before lexing, \uXXXX escapes anywhere in the source are expanded to
// the character they name, exactly as javac does, including its
// unintuitive left-to-right matching rule (\\u0041 is a literal backslash
// followed by the escape for 'A', not an escaped backslash). Positions
// reported on tokens that came from expanded text still point at the
// corresponding byte offset in the original, unexpanded source. Source
// text with no escapes is parsed with no extra allocation.
//
// # AST shape
//
// Unlike a concrete syntax tree with a single Node type carrying a kind
// tag and untyped children, this package's AST is a closed set of Go
// struct types, one per construct: CompUnit, PkgDecl, ImportDecl, TyDecl,
// VarDecl, MethDecl, and the Type/Expression variants. Callers recover
// the concrete kind with a type switch rather than inspecting a tag
// field, and the compiler enforces that every field access is valid for
// the node it's used on.
//
// # What is not parsed
//
// Method bodies, instance/static initializer blocks, and enum constant
// bodies are skipped as balanced brace or parenthesis runs; none of their
// contents are represented in the tree. Field initializers, annotation
// arguments, and annotation element defaults are the one place executable
// expressions are parsed, and only a constant-expression subset: literals,
// qualified names, class literals, simple unary/binary/ternary operator
// trees, primitive casts, and array/annotation initializers. Method
// calls, object creation, lambdas, and switch expressions do not appear
// there and are rejected.
//
// # Entry point
//
//	src := parser.NewSourceFile("Main.java", data)
//	cu, err := parser.ParseCompilationUnit(src)
//	if err != nil {
//	    // err is a *Diagnostic; err.Error() includes file:line:column.
//	}
//
// # Thread safety
//
// A *SourceFile and the tree ParseCompilationUnit returns from it are
// read-only afterward and safe to share across goroutines. Parsing itself
// is not concurrent: each call to ParseCompilationUnit runs a fresh parser
// over its own input.
package parser
