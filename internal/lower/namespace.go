package lower

import (
	"strings"

	"tstrip/internal/ast"
	"tstrip/internal/printer"
)

// lowerNamespace replaces a value-carrying namespace with its initializer
// IIFE. Blocks with the same name merge onto one object; dotted names
// expand to one nested IIFE per segment.
func (lc *lowerer) lowerNamespace(edits *[]printer.Edit, sc *scope, id ast.StmtID, st *ast.Stmt, exported bool) {
	ns, _ := lc.b.Stmts.Namespace(id)
	if typeOnlyBody(lc.b, ns.Body) {
		lc.apply(edits, ast.ConstructNamespaceTypeOnly, st.Span)
		return
	}

	// the body window sits between the brace after the name and the
	// closing brace of the statement
	open := ns.NameSpan.End
	for open < st.Span.End && lc.src[open] != '{' {
		open++
	}
	if open >= st.Span.End {
		// bodyless shorthand cannot reach here; treat as erasable
		lc.erase(edits, st.Span)
		return
	}

	segments := strings.Split(lc.b.Lookup(ns.Name), ".")

	var localEdits []printer.Edit
	inner := newScope(segments[len(segments)-1])
	for _, stmt := range ns.Body {
		lc.stmt(&localEdits, inner, stmt)
		if lc.fail != nil {
			return
		}
	}
	body := printer.RenderSlice(lc.src, open+1, st.Span.End-1, localEdits)

	var sb strings.Builder
	for i, seg := range segments {
		firstDecl := false
		if i == 0 {
			firstDecl = sc.bind(seg)
		} else {
			firstDecl = true
		}
		if firstDecl {
			sb.WriteString("var ")
			sb.WriteString(seg)
			sb.WriteString(";\n")
		}
		sb.WriteString("(function (")
		sb.WriteString(seg)
		sb.WriteString(") {")
	}
	sb.Write(body)
	for i := len(segments) - 1; i >= 0; i-- {
		seg := segments[i]
		sb.WriteString("})(")
		sb.WriteString(seg)
		var parent string
		if i > 0 {
			parent = segments[i-1]
		} else if exported && sc.ns != "" {
			parent = sc.ns
		}
		if parent != "" {
			sb.WriteString(" = ")
			sb.WriteString(parent)
			sb.WriteString(".")
			sb.WriteString(seg)
			sb.WriteString(" || (")
			sb.WriteString(parent)
			sb.WriteString(".")
			sb.WriteString(seg)
			sb.WriteString(" = {})")
		} else {
			sb.WriteString(" || (")
			sb.WriteString(seg)
			sb.WriteString(" = {})")
		}
		sb.WriteString(");")
		if i > 0 {
			sb.WriteString("\n")
		}
	}

	lc.replace(edits, st.Span, sb.String())
}

// typeOnlyBody reports whether a namespace body has no runtime members, in
// which case the whole block is erasable even in transform mode.
func typeOnlyBody(b *ast.Builder, body []ast.StmtID) bool {
	for _, id := range body {
		st := b.Stmts.Get(id)
		if st.Ambient() {
			continue
		}
		switch st.Kind {
		case ast.StmtEmpty, ast.StmtInterface, ast.StmtTypeAlias:
			continue
		case ast.StmtNamespace:
			ns, _ := b.Stmts.Namespace(id)
			if ns.ModuleKw || !typeOnlyBody(b, ns.Body) {
				return false
			}
		case ast.StmtExport:
			exp, _ := b.Stmts.Export(id)
			if exp.TypeOnly {
				continue
			}
			if exp.Decl == ast.NoStmtID {
				return false
			}
			inner := b.Stmts.Get(exp.Decl)
			if inner.Ambient() || inner.Kind == ast.StmtInterface || inner.Kind == ast.StmtTypeAlias {
				continue
			}
			if inner.Kind == ast.StmtNamespace {
				ns, _ := b.Stmts.Namespace(exp.Decl)
				if !ns.ModuleKw && typeOnlyBody(b, ns.Body) {
					continue
				}
			}
			return false
		default:
			return false
		}
	}
	return true
}
