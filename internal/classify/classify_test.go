package classify_test

import (
	"testing"

	"tstrip/internal/ast"
	"tstrip/internal/classify"
)

func TestErasableConstructs(t *testing.T) {
	erasable := []ast.TSConstruct{
		ast.ConstructTypeAnnotation,
		ast.ConstructTypeParams,
		ast.ConstructTypeAlias,
		ast.ConstructInterface,
		ast.ConstructAsExpr,
		ast.ConstructSatisfiesExpr,
		ast.ConstructNonNull,
		ast.ConstructAmbientDeclare,
		ast.ConstructNamespaceTypeOnly,
		ast.ConstructImportType,
		ast.ConstructFunctionOverload,
		ast.ConstructThisParam,
	}
	for _, c := range erasable {
		for _, mode := range []classify.Mode{classify.ModeStrip, classify.ModeTransform} {
			if got := classify.Of(c, mode); got != classify.Erasable {
				t.Errorf("Of(%v, %v) = %v, want Erasable", c, mode, got)
			}
		}
	}
}

func TestRuntimeConstructsSplitByMode(t *testing.T) {
	runtime := []ast.TSConstruct{
		ast.ConstructEnum,
		ast.ConstructConstEnum,
		ast.ConstructNamespaceValue,
		ast.ConstructParamProperty,
	}
	for _, c := range runtime {
		if got := classify.Of(c, classify.ModeStrip); got != classify.Disallowed {
			t.Errorf("Of(%v, strip) = %v, want Disallowed", c, got)
		}
		if got := classify.Of(c, classify.ModeTransform); got != classify.RuntimeConstruct {
			t.Errorf("Of(%v, transform) = %v, want RuntimeConstruct", c, got)
		}
	}
}

func TestHardRejectionsInBothModes(t *testing.T) {
	rejected := []ast.TSConstruct{
		ast.ConstructModuleKeyword,
		ast.ConstructImportEquals,
		ast.ConstructExportAssign,
	}
	for _, c := range rejected {
		for _, mode := range []classify.Mode{classify.ModeStrip, classify.ModeTransform} {
			if got := classify.Of(c, mode); got != classify.Disallowed {
				t.Errorf("Of(%v, %v) = %v, want Disallowed", c, mode, got)
			}
		}
	}
}

func TestModeString(t *testing.T) {
	if classify.ModeStrip.String() != "strip" || classify.ModeTransform.String() != "transform" {
		t.Error("mode names changed")
	}
}
