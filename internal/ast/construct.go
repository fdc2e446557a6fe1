package ast

// TSConstruct enumerates every TypeScript-specific construct the engine
// classifies. The set is closed: the classifier switches over it
// exhaustively, so a new construct fails at compile time instead of
// falling into a silent default.
type TSConstruct uint8

const (
	// ConstructTypeAnnotation is ': T' on variables, parameters, class
	// fields, return positions, and catch clauses.
	ConstructTypeAnnotation TSConstruct = iota
	// ConstructTypeParams is '<T, U>' on declarations.
	ConstructTypeParams
	// ConstructTypeArgs is '<T>' at call, new, and heritage sites.
	ConstructTypeArgs
	// ConstructTypeAlias is a 'type X = ...' declaration.
	ConstructTypeAlias
	// ConstructInterface is an 'interface X { ... }' declaration.
	ConstructInterface
	// ConstructAsExpr is 'x as T'.
	ConstructAsExpr
	// ConstructSatisfiesExpr is 'x satisfies T'.
	ConstructSatisfiesExpr
	// ConstructTypeAssertion is the angle-bracket form '<T>x'.
	ConstructTypeAssertion
	// ConstructNonNull is the postfix 'x!'.
	ConstructNonNull
	// ConstructDefiniteAssign is 'let x!: T'.
	ConstructDefiniteAssign
	// ConstructOptionalMarker is '?' on parameters and members.
	ConstructOptionalMarker
	// ConstructAmbientDeclare is a 'declare ...' statement.
	ConstructAmbientDeclare
	// ConstructEnum is a (non-const) enum declaration.
	ConstructEnum
	// ConstructConstEnum is a 'const enum' declaration.
	ConstructConstEnum
	// ConstructNamespaceTypeOnly is a namespace whose members are all types.
	ConstructNamespaceTypeOnly
	// ConstructNamespaceValue is a namespace with at least one value member.
	ConstructNamespaceValue
	// ConstructModuleKeyword is the legacy 'module foo' spelling.
	ConstructModuleKeyword
	// ConstructParamProperty is 'constructor(public x)'.
	ConstructParamProperty
	// ConstructImplementsClause is 'implements A, B' on a class.
	ConstructImplementsClause
	// ConstructAbstractModifier is 'abstract' on a class or concrete member.
	ConstructAbstractModifier
	// ConstructAbstractMember is an abstract (bodyless) class member.
	ConstructAbstractMember
	// ConstructAccessModifier is public/private/protected outside a
	// constructor parameter list.
	ConstructAccessModifier
	// ConstructReadonlyModifier is 'readonly' on a member.
	ConstructReadonlyModifier
	// ConstructOverrideModifier is 'override' on a member.
	ConstructOverrideModifier
	// ConstructDeclareMember is 'declare' on a class member.
	ConstructDeclareMember
	// ConstructIndexSignature is '[key: string]: T' in a class body.
	ConstructIndexSignature
	// ConstructImportType is 'import type' or an inline 'type' specifier.
	ConstructImportType
	// ConstructExportType is 'export type { ... }'.
	ConstructExportType
	// ConstructFunctionOverload is a bodyless overload signature.
	ConstructFunctionOverload
	// ConstructThisParam is a 'this' pseudo-parameter.
	ConstructThisParam
	// ConstructImportEquals is 'import x = require(...)'.
	ConstructImportEquals
	// ConstructExportAssign is 'export = x'.
	ConstructExportAssign
)

func (c TSConstruct) String() string {
	switch c {
	case ConstructTypeAnnotation:
		return "type annotation"
	case ConstructTypeParams:
		return "type parameter list"
	case ConstructTypeArgs:
		return "type argument list"
	case ConstructTypeAlias:
		return "type alias"
	case ConstructInterface:
		return "interface"
	case ConstructAsExpr:
		return "as expression"
	case ConstructSatisfiesExpr:
		return "satisfies expression"
	case ConstructTypeAssertion:
		return "type assertion"
	case ConstructNonNull:
		return "non-null assertion"
	case ConstructDefiniteAssign:
		return "definite assignment assertion"
	case ConstructOptionalMarker:
		return "optional marker"
	case ConstructAmbientDeclare:
		return "ambient declaration"
	case ConstructEnum:
		return "enum"
	case ConstructConstEnum:
		return "const enum"
	case ConstructNamespaceTypeOnly:
		return "type-only namespace"
	case ConstructNamespaceValue:
		return "namespace"
	case ConstructModuleKeyword:
		return "module keyword"
	case ConstructParamProperty:
		return "parameter property"
	case ConstructImplementsClause:
		return "implements clause"
	case ConstructAbstractModifier:
		return "abstract modifier"
	case ConstructAbstractMember:
		return "abstract member"
	case ConstructAccessModifier:
		return "accessibility modifier"
	case ConstructReadonlyModifier:
		return "readonly modifier"
	case ConstructOverrideModifier:
		return "override modifier"
	case ConstructDeclareMember:
		return "declare member"
	case ConstructIndexSignature:
		return "index signature"
	case ConstructImportType:
		return "type-only import"
	case ConstructExportType:
		return "type-only export"
	case ConstructFunctionOverload:
		return "overload signature"
	case ConstructThisParam:
		return "this parameter"
	case ConstructImportEquals:
		return "import assignment"
	case ConstructExportAssign:
		return "export assignment"
	}
	return "unknown construct"
}
