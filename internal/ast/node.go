// Package ast defines the syntax tree produced by the parser. Every
// concrete node type carries a Kind tag alongside satisfying the
// Node/Expression/Statement interfaces (one struct per node type,
// Pos()/End() on each); the closed Kind enumeration is what the scope
// builder and bytecode compiler switch on for O(1) dispatch instead of
// repeated type assertions.
package ast

import "github.com/cwbudde/go-jscore/internal/token"

// Kind tags every concrete node type. It is a closed set: adding a
// production means adding both a Kind constant and a struct.
type Kind uint8

const (
	KindInvalid Kind = iota

	// Program / module.
	KindProgram
	KindModule

	// Literals.
	KindIdentifier
	KindPrivateName
	KindNumericLiteral
	KindStringLiteral
	KindBooleanLiteral
	KindNullLiteral
	KindRegexLiteral
	KindTemplateLiteral
	KindTaggedTemplate
	KindArrayLiteral
	KindObjectLiteral
	KindProperty
	KindSpreadElement

	// Expressions.
	KindBinaryExpr
	KindLogicalExpr
	KindUnaryExpr
	KindUpdateExpr
	KindAssignmentExpr
	KindConditionalExpr
	KindCallExpr
	KindNewExpr
	KindMemberExpr
	KindOptionalMemberExpr
	KindOptionalCallExpr
	KindSequenceExpr
	KindArrowFunctionExpr
	KindFunctionExpr
	KindClassExpr
	KindThisExpr
	KindSuperExpr
	KindYieldExpr
	KindAwaitExpr
	KindParenthesizedExpr
	KindMetaProperty

	// Patterns (destructuring targets).
	KindArrayPattern
	KindObjectPattern
	KindAssignmentPattern
	KindRestElement

	// Statements.
	KindExpressionStmt
	KindBlockStmt
	KindEmptyStmt
	KindVariableDecl
	KindVariableDeclarator
	KindFunctionDecl
	KindClassDecl
	KindClassBody
	KindMethodDefinition
	KindPropertyDefinition
	KindIfStmt
	KindForStmt
	KindForInStmt
	KindForOfStmt
	KindWhileStmt
	KindDoWhileStmt
	KindSwitchStmt
	KindSwitchCase
	KindReturnStmt
	KindBreakStmt
	KindContinueStmt
	KindThrowStmt
	KindTryStmt
	KindCatchClause
	KindLabeledStmt
	KindWithStmt
	KindDebuggerStmt
	KindDirective

	// Modules.
	KindImportDeclaration
	KindImportSpecifier
	KindImportDefaultSpecifier
	KindImportNamespaceSpecifier
	KindExportNamedDeclaration
	KindExportDefaultDeclaration
	KindExportAllDeclaration
)

// Node is the interface every AST node satisfies: source span
// accessors plus the Kind tag.
type Node interface {
	Kind() Kind
	Pos() token.Position
	End() token.Position
	TokenLiteral() string
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any node that performs an action.
type Statement interface {
	Node
	statementNode()
}

// Pattern is a binding target: an Identifier, or a destructuring
// Array/Object pattern, optionally wrapped in a default
// (AssignmentPattern) or rest (RestElement).
type Pattern interface {
	Node
	patternNode()
}

// Base carries the span every node needs; embedded by every concrete
// node type instead of repeating Pos/End fields and methods.
type Base struct {
	StartPos token.Position
	EndPos   token.Position
	Literal  string
}

func (b Base) Pos() token.Position     { return b.StartPos }
func (b Base) End() token.Position     { return b.EndPos }
func (b Base) TokenLiteral() string    { return b.Literal }

func mkBase(start, end token.Position, literal string) Base {
	return Base{StartPos: start, EndPos: end, Literal: literal}
}
