package classify

import (
	"tstrip/internal/ast"
)

// Mode selects how TypeScript constructs are handled.
type Mode uint8

const (
	// ModeStrip erases type-only syntax in place and refuses anything
	// with runtime semantics.
	ModeStrip Mode = iota
	// ModeTransform lowers runtime constructs to plain JavaScript.
	ModeTransform
)

func (m Mode) String() string {
	switch m {
	case ModeStrip:
		return "strip"
	case ModeTransform:
		return "transform"
	}
	return "unknown"
}

// Disposition is the per-mode classification of a construct.
type Disposition uint8

const (
	// Erasable: deleting the construct changes no runtime behavior.
	Erasable Disposition = iota
	// RuntimeConstruct: the construct carries runtime semantics and must
	// be lowered; mere deletion would change behavior.
	RuntimeConstruct
	// Disallowed: the construct is rejected outright in this mode.
	Disallowed
)

func (d Disposition) String() string {
	switch d {
	case Erasable:
		return "erasable"
	case RuntimeConstruct:
		return "runtime"
	case Disallowed:
		return "disallowed"
	}
	return "unknown"
}

// Of is the classification table: a pure, total function over the closed
// construct set. Erasure is valid only when removal changes no behavior;
// anything else is rejected in strip mode and lowered in transform mode,
// except the hard rejections that survive in both modes.
func Of(c ast.TSConstruct, mode Mode) Disposition {
	switch c {
	case ast.ConstructTypeAnnotation,
		ast.ConstructTypeParams,
		ast.ConstructTypeArgs,
		ast.ConstructTypeAlias,
		ast.ConstructInterface,
		ast.ConstructAsExpr,
		ast.ConstructSatisfiesExpr,
		ast.ConstructTypeAssertion,
		ast.ConstructNonNull,
		ast.ConstructDefiniteAssign,
		ast.ConstructOptionalMarker,
		ast.ConstructAmbientDeclare,
		ast.ConstructNamespaceTypeOnly,
		ast.ConstructImplementsClause,
		ast.ConstructAbstractModifier,
		ast.ConstructAbstractMember,
		ast.ConstructAccessModifier,
		ast.ConstructReadonlyModifier,
		ast.ConstructOverrideModifier,
		ast.ConstructDeclareMember,
		ast.ConstructIndexSignature,
		ast.ConstructImportType,
		ast.ConstructExportType,
		ast.ConstructFunctionOverload,
		ast.ConstructThisParam:
		return Erasable

	case ast.ConstructEnum,
		ast.ConstructConstEnum,
		ast.ConstructNamespaceValue,
		ast.ConstructParamProperty:
		if mode == ModeStrip {
			return Disallowed
		}
		return RuntimeConstruct

	case ast.ConstructModuleKeyword,
		ast.ConstructImportEquals,
		ast.ConstructExportAssign:
		// Hard rejections in both modes. 'module' is a deprecated spelling
		// of 'namespace'; reinterpreting it silently would mask intent.
		return Disallowed
	}
	// The construct set is closed; reaching here means a new construct was
	// added without a classification.
	panic("classify: unhandled construct")
}
