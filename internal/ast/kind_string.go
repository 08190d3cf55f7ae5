package ast

import "encoding/json"

// kindNames mirrors internal/token/token_type.go's Kind.String() table
// shape: a flat map from enum constant to its wire/display name, used by
// dump tooling (pkg/jscore/dump.go) and error messages.
var kindNames = map[Kind]string{
	KindInvalid: "Invalid",

	KindProgram: "Program",
	KindModule:  "Module",

	KindIdentifier:      "Identifier",
	KindPrivateName:     "PrivateName",
	KindNumericLiteral:  "NumericLiteral",
	KindStringLiteral:   "StringLiteral",
	KindBooleanLiteral:  "BooleanLiteral",
	KindNullLiteral:     "NullLiteral",
	KindRegexLiteral:    "RegexLiteral",
	KindTemplateLiteral: "TemplateLiteral",
	KindTaggedTemplate:  "TaggedTemplateExpression",
	KindArrayLiteral:    "ArrayExpression",
	KindObjectLiteral:   "ObjectExpression",
	KindProperty:        "Property",
	KindSpreadElement:   "SpreadElement",

	KindBinaryExpr:         "BinaryExpression",
	KindLogicalExpr:        "LogicalExpression",
	KindUnaryExpr:          "UnaryExpression",
	KindUpdateExpr:         "UpdateExpression",
	KindAssignmentExpr:     "AssignmentExpression",
	KindConditionalExpr:    "ConditionalExpression",
	KindCallExpr:           "CallExpression",
	KindNewExpr:            "NewExpression",
	KindMemberExpr:         "MemberExpression",
	KindOptionalMemberExpr: "OptionalMemberExpression",
	KindOptionalCallExpr:   "OptionalCallExpression",
	KindSequenceExpr:       "SequenceExpression",
	KindArrowFunctionExpr:  "ArrowFunctionExpression",
	KindFunctionExpr:       "FunctionExpression",
	KindClassExpr:          "ClassExpression",
	KindThisExpr:           "ThisExpression",
	KindSuperExpr:          "Super",
	KindYieldExpr:          "YieldExpression",
	KindAwaitExpr:          "AwaitExpression",
	KindParenthesizedExpr:  "ParenthesizedExpression",
	KindMetaProperty:       "MetaProperty",

	KindArrayPattern:      "ArrayPattern",
	KindObjectPattern:     "ObjectPattern",
	KindAssignmentPattern: "AssignmentPattern",
	KindRestElement:       "RestElement",

	KindExpressionStmt:    "ExpressionStatement",
	KindBlockStmt:         "BlockStatement",
	KindEmptyStmt:         "EmptyStatement",
	KindVariableDecl:      "VariableDeclaration",
	KindVariableDeclarator: "VariableDeclarator",
	KindFunctionDecl:      "FunctionDeclaration",
	KindClassDecl:         "ClassDeclaration",
	KindClassBody:         "ClassBody",
	KindMethodDefinition:  "MethodDefinition",
	KindPropertyDefinition: "PropertyDefinition",
	KindIfStmt:            "IfStatement",
	KindForStmt:           "ForStatement",
	KindForInStmt:         "ForInStatement",
	KindForOfStmt:         "ForOfStatement",
	KindWhileStmt:         "WhileStatement",
	KindDoWhileStmt:       "DoWhileStatement",
	KindSwitchStmt:        "SwitchStatement",
	KindSwitchCase:        "SwitchCase",
	KindReturnStmt:        "ReturnStatement",
	KindBreakStmt:         "BreakStatement",
	KindContinueStmt:      "ContinueStatement",
	KindThrowStmt:         "ThrowStatement",
	KindTryStmt:           "TryStatement",
	KindCatchClause:       "CatchClause",
	KindLabeledStmt:       "LabeledStatement",
	KindWithStmt:          "WithStatement",
	KindDebuggerStmt:      "DebuggerStatement",
	KindDirective:         "Directive",

	KindImportDeclaration:        "ImportDeclaration",
	KindImportSpecifier:          "ImportSpecifier",
	KindImportDefaultSpecifier:   "ImportDefaultSpecifier",
	KindImportNamespaceSpecifier: "ImportNamespaceSpecifier",
	KindExportNamedDeclaration:   "ExportNamedDeclaration",
	KindExportDefaultDeclaration: "ExportDefaultDeclaration",
	KindExportAllDeclaration:     "ExportAllDeclaration",
}

// String renders a Kind using its ESTree-style production name, so
// dumped ASTs read the way a JS tooling author expects.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// MarshalJSON renders a Kind as its production name rather than its
// numeric tag, so a dumped AST (pkg/jscore/dump.go) reads as ESTree-style
// JSON instead of opaque integers.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}
