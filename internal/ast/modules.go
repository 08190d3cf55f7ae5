package ast

// ImportSpecifier is a named import: `import { a as b } from "m"`.
type ImportSpecifier struct {
	Base
	Imported *Identifier
	Local    *Identifier
}

func (*ImportSpecifier) Kind() Kind { return KindImportSpecifier }

// ImportDefaultSpecifier is `import a from "m"`.
type ImportDefaultSpecifier struct {
	Base
	Local *Identifier
}

func (*ImportDefaultSpecifier) Kind() Kind { return KindImportDefaultSpecifier }

// ImportNamespaceSpecifier is `import * as a from "m"`.
type ImportNamespaceSpecifier struct {
	Base
	Local *Identifier
}

func (*ImportNamespaceSpecifier) Kind() Kind { return KindImportNamespaceSpecifier }

// ImportDeclaration's Specifiers hold any mix of the three specifier
// node types above; resolving Source to an actual module record is out
// of this core's scope (Non-goal: module resolution/loading).
type ImportDeclaration struct {
	Base
	Specifiers []Node
	Source     *StringLiteral
}

func (*ImportDeclaration) Kind() Kind     { return KindImportDeclaration }
func (*ImportDeclaration) statementNode() {}

// ExportSpecifier pairs a local binding with its exported name:
// `export { a as b }`.
type ExportSpecifier struct {
	Local    *Identifier
	Exported *Identifier
}

// ExportNamedDeclaration covers `export const x = 1;`, `export function
// f() {}`, and `export { a, b as c }` (Declaration nil, Specifiers
// populated instead), plus the re-export form `export { a } from "m"`.
type ExportNamedDeclaration struct {
	Base
	Declaration Statement
	Specifiers  []ExportSpecifier
	Source      *StringLiteral // non-nil only for re-exports
}

func (*ExportNamedDeclaration) Kind() Kind     { return KindExportNamedDeclaration }
func (*ExportNamedDeclaration) statementNode() {}

// ExportDefaultDeclaration's Declaration may be a FunctionDecl,
// ClassDecl, or any Expression.
type ExportDefaultDeclaration struct {
	Base
	Declaration Node
}

func (*ExportDefaultDeclaration) Kind() Kind     { return KindExportDefaultDeclaration }
func (*ExportDefaultDeclaration) statementNode() {}

type ExportAllDeclaration struct {
	Base
	Exported *Identifier // non-nil for `export * as ns from "m"`
	Source   *StringLiteral
}

func (*ExportAllDeclaration) Kind() Kind     { return KindExportAllDeclaration }
func (*ExportAllDeclaration) statementNode() {}

// Program is the root of a Script parse.
type Program struct {
	Base
	Body []Statement
}

func (*Program) Kind() Kind { return KindProgram }

// Module is the root of a Module parse: like Program, but its Body may
// additionally contain ImportDeclaration / Export*Declaration
// statements, and its contents are always strict-mode.
type Module struct {
	Base
	Body []Statement
}

func (*Module) Kind() Kind { return KindModule }
