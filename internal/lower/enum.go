package lower

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"tstrip/internal/ast"
	"tstrip/internal/diag"
	"tstrip/internal/printer"
)

// enumValue is the statically-known value of an enum member. Opaque
// initializers keep their source text and break the auto-number sequence.
type enumValue struct {
	kind enumValueKind
	num  float64
	str  string // decoded string value, or raw source text for opaque
}

type enumValueKind uint8

const (
	enumNumeric enumValueKind = iota
	enumString
	enumOpaque
)

// lowerEnum replaces an enum declaration with its initializer IIFE.
// Repeated blocks for the same name merge onto one binding.
func (lc *lowerer) lowerEnum(edits *[]printer.Edit, sc *scope, id ast.StmtID, st *ast.Stmt, exported bool) {
	en, _ := lc.b.Stmts.Enum(id)
	name := lc.b.Lookup(en.Name)

	var sb strings.Builder
	if sc.bind(name) {
		sb.WriteString("var ")
		sb.WriteString(name)
		sb.WriteString(";\n")
	}
	sb.WriteString("(function (")
	sb.WriteString(name)
	sb.WriteString(") {\n")

	next := 0.0
	haveNext := true
	for i := range en.Members {
		m := &en.Members[i]
		v := lc.enumMemberValue(m, next, haveNext)
		if lc.fail != nil {
			return
		}
		switch v.kind {
		case enumNumeric:
			// numeric members get the reverse mapping
			sb.WriteString("    ")
			sb.WriteString(name)
			sb.WriteString("[")
			sb.WriteString(name)
			sb.WriteString("[")
			sb.WriteString(strconv.Quote(m.Name))
			sb.WriteString("] = ")
			sb.WriteString(formatEnumNumber(v.num))
			sb.WriteString("] = ")
			sb.WriteString(strconv.Quote(m.Name))
			sb.WriteString(";\n")
			next = v.num + 1
			haveNext = true
		case enumString:
			sb.WriteString("    ")
			sb.WriteString(name)
			sb.WriteString("[")
			sb.WriteString(strconv.Quote(m.Name))
			sb.WriteString("] = ")
			sb.WriteString(v.str)
			sb.WriteString(";\n")
			haveNext = false
		case enumOpaque:
			// assume numeric at runtime, so the reverse entry stays
			sb.WriteString("    ")
			sb.WriteString(name)
			sb.WriteString("[")
			sb.WriteString(name)
			sb.WriteString("[")
			sb.WriteString(strconv.Quote(m.Name))
			sb.WriteString("] = ")
			sb.WriteString(v.str)
			sb.WriteString("] = ")
			sb.WriteString(strconv.Quote(m.Name))
			sb.WriteString(";\n")
			haveNext = false
		}
	}

	sb.WriteString("})(")
	sb.WriteString(name)
	if exported && sc.ns != "" {
		sb.WriteString(" = ")
		sb.WriteString(sc.ns)
		sb.WriteString(".")
		sb.WriteString(name)
		sb.WriteString(" || (")
		sb.WriteString(sc.ns)
		sb.WriteString(".")
		sb.WriteString(name)
		sb.WriteString(" = {})")
	} else {
		sb.WriteString(" || (")
		sb.WriteString(name)
		sb.WriteString(" = {})")
	}
	sb.WriteString(");")

	lc.replace(edits, st.Span, sb.String())
}

// enumMemberValue resolves one member to its value, advancing the implicit
// sequence. Auto members after an unknown value are an error.
func (lc *lowerer) enumMemberValue(m *ast.EnumMember, next float64, haveNext bool) enumValue {
	if m.Init == ast.NoExprID {
		if !haveNext {
			lc.reject(diag.LowerEnumInit, m.NameSpan,
				fmt.Sprintf("enum member %q must have an initializer", m.Name))
			return enumValue{}
		}
		return enumValue{kind: enumNumeric, num: next}
	}
	return lc.evalEnumInit(m.Init)
}

// evalEnumInit folds the small constant grammar enum values use: numeric
// and string literals with optional unary sign. Everything else is opaque
// and copied through by source text.
func (lc *lowerer) evalEnumInit(id ast.ExprID) enumValue {
	expr := lc.b.Exprs.Get(id)
	switch expr.Kind {
	case ast.ExprLit:
		lit, _ := lc.b.Exprs.Lit(id)
		text := lc.text(expr.Span)
		switch lit.Lit {
		case ast.LitNumber:
			if n, ok := parseNumeric(text); ok {
				return enumValue{kind: enumNumeric, num: n}
			}
		case ast.LitString:
			return enumValue{kind: enumString, str: text}
		}
	case ast.ExprUnary:
		u, _ := lc.b.Exprs.Unary(id)
		inner := lc.evalEnumInit(u.Operand)
		if inner.kind == enumNumeric {
			switch lc.src[expr.Span.Start] {
			case '-':
				return enumValue{kind: enumNumeric, num: -inner.num}
			case '+':
				return inner
			}
		}
	case ast.ExprParen:
		w, _ := lc.b.Exprs.Wrap(id)
		return lc.evalEnumInit(w.Inner)
	}
	return enumValue{kind: enumOpaque, str: lc.text(expr.Span)}
}

// parseNumeric decodes a JavaScript numeric literal: decimal, hex, octal,
// binary, with underscore separators. Legacy octal and bigint are opaque.
func parseNumeric(text string) (float64, bool) {
	text = strings.ReplaceAll(text, "_", "")
	if strings.HasSuffix(text, "n") {
		return 0, false
	}
	// legacy octal never reaches ParseFloat, which would read it as decimal
	if len(text) > 1 && text[0] == '0' && text[1] >= '0' && text[1] <= '9' {
		return 0, false
	}
	if len(text) > 2 && text[0] == '0' {
		switch text[1] {
		case 'x', 'X':
			u, err := strconv.ParseUint(text[2:], 16, 64)
			return float64(u), err == nil
		case 'o', 'O':
			u, err := strconv.ParseUint(text[2:], 8, 64)
			return float64(u), err == nil
		case 'b', 'B':
			u, err := strconv.ParseUint(text[2:], 2, 64)
			return float64(u), err == nil
		}
	}
	f, err := strconv.ParseFloat(text, 64)
	return f, err == nil
}

// formatEnumNumber prints a value the way JavaScript would: integers
// without a fractional part, everything else in shortest form.
func formatEnumNumber(n float64) string {
	// float64-to-int64 conversion is unspecified outside the int64 range
	if math.Abs(n) < 1<<63 && n == float64(int64(n)) {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}
