package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"tstrip/internal/ast"
	"tstrip/internal/source"
)

// FormatASTPretty writes an indented statement tree for one parsed file.
// Statement and expression nodes print their kind and span; type syntax
// only exists as spans, so it never appears here.
func FormatASTPretty(w io.Writer, b *ast.Builder, fileID ast.FileID, fs *source.FileSet) {
	f := b.Files.Get(fileID)
	fmt.Fprintf(w, "File %s (%d statements)\n", fs.Get(f.Span.File).Path, len(f.Body))
	d := &astDumper{w: w, b: b, fs: fs}
	for _, stmt := range f.Body {
		d.stmt(stmt, 1)
	}
}

type astDumper struct {
	w  io.Writer
	b  *ast.Builder
	fs *source.FileSet
}

func (d *astDumper) head(depth int, kind fmt.Stringer, sp source.Span) {
	start, _ := d.fs.Resolve(sp)
	fmt.Fprintf(d.w, "%s%s @%d:%d\n", strings.Repeat("  ", depth), kind, start.Line, start.Col)
}

func (d *astDumper) stmt(id ast.StmtID, depth int) {
	if id == ast.NoStmtID {
		return
	}
	st := d.b.Stmts.Get(id)
	d.head(depth, st.Kind, st.Span)

	switch st.Kind {
	case ast.StmtExpr:
		data, _ := d.b.Stmts.ExprStmt(id)
		d.expr(data.Expr, depth+1)
	case ast.StmtVar:
		data, _ := d.b.Stmts.Var(id)
		for i := range data.Decls {
			d.expr(data.Decls[i].Pattern, depth+1)
			d.expr(data.Decls[i].Init, depth+1)
		}
	case ast.StmtBlock:
		data, _ := d.b.Stmts.Block(id)
		for _, s := range data.Body {
			d.stmt(s, depth+1)
		}
	case ast.StmtIf:
		data, _ := d.b.Stmts.If(id)
		d.expr(data.Cond, depth+1)
		d.stmt(data.Then, depth+1)
		d.stmt(data.Else, depth+1)
	case ast.StmtWhile, ast.StmtDoWhile:
		data, _ := d.b.Stmts.While(id)
		d.expr(data.Cond, depth+1)
		d.stmt(data.Body, depth+1)
	case ast.StmtFor:
		data, _ := d.b.Stmts.For(id)
		d.stmt(data.Init, depth+1)
		d.expr(data.Cond, depth+1)
		d.expr(data.Post, depth+1)
		d.stmt(data.Body, depth+1)
	case ast.StmtForInOf:
		data, _ := d.b.Stmts.ForInOf(id)
		d.stmt(data.Decl, depth+1)
		d.expr(data.Object, depth+1)
		d.stmt(data.Body, depth+1)
	case ast.StmtSwitch:
		data, _ := d.b.Stmts.Switch(id)
		d.expr(data.Disc, depth+1)
		for i := range data.Cases {
			d.expr(data.Cases[i].Expr, depth+1)
			for _, s := range data.Cases[i].Body {
				d.stmt(s, depth+2)
			}
		}
	case ast.StmtTry:
		data, _ := d.b.Stmts.Try(id)
		d.stmt(data.Block, depth+1)
		d.stmt(data.CatchBody, depth+1)
		d.stmt(data.Finally, depth+1)
	case ast.StmtReturn, ast.StmtThrow:
		data, _ := d.b.Stmts.Return(id)
		d.expr(data.Expr, depth+1)
	case ast.StmtLabeled:
		data, _ := d.b.Stmts.Labeled(id)
		d.stmt(data.Body, depth+1)
	case ast.StmtFunction:
		data, _ := d.b.Stmts.Function(id)
		d.fn(data.Fn, depth+1)
	case ast.StmtClass:
		data, _ := d.b.Stmts.Class(id)
		d.class(data.Class, depth+1)
	case ast.StmtExport:
		data, _ := d.b.Stmts.Export(id)
		d.stmt(data.Decl, depth+1)
	case ast.StmtNamespace:
		data, _ := d.b.Stmts.Namespace(id)
		for _, s := range data.Body {
			d.stmt(s, depth+1)
		}
	}
}

func (d *astDumper) fn(id ast.FnID, depth int) {
	decl := d.b.Fns.Get(id)
	for _, pid := range decl.Params {
		p := d.b.Params.Get(pid)
		d.expr(p.Pattern, depth)
		d.expr(p.Init, depth)
	}
	d.stmt(decl.Body, depth)
	d.expr(decl.ExprBody, depth)
}

func (d *astDumper) class(id ast.ClassID, depth int) {
	decl := d.b.Classes.Get(id)
	d.expr(decl.Extends, depth)
	for _, mid := range decl.Members {
		m := d.b.Classes.Member(mid)
		d.expr(m.Key, depth)
		d.expr(m.Init, depth)
		if m.Fn != ast.NoFnID {
			d.fn(m.Fn, depth+1)
		}
		d.stmt(m.Body, depth+1)
	}
}

func (d *astDumper) expr(id ast.ExprID, depth int) {
	if id == ast.NoExprID {
		return
	}
	e := d.b.Exprs.Get(id)
	d.head(depth, e.Kind, e.Span)

	switch e.Kind {
	case ast.ExprSeq, ast.ExprArray:
		data, _ := d.b.Exprs.List(id)
		for _, elem := range data.Elems {
			d.expr(elem, depth+1)
		}
	case ast.ExprObject:
		data, _ := d.b.Exprs.Object(id)
		for i := range data.Props {
			d.expr(data.Props[i].Key, depth+1)
			d.expr(data.Props[i].Value, depth+1)
			if data.Props[i].Fn != ast.NoFnID {
				d.fn(data.Props[i].Fn, depth+1)
			}
		}
	case ast.ExprTemplate:
		data, _ := d.b.Exprs.Template(id)
		for _, part := range data.Parts {
			d.expr(part, depth+1)
		}
	case ast.ExprFunction, ast.ExprArrow:
		data, _ := d.b.Exprs.Fn(id)
		d.fn(data.Fn, depth+1)
	case ast.ExprClass:
		data, _ := d.b.Exprs.ClassRef(id)
		d.class(data.Class, depth+1)
	case ast.ExprUnary:
		data, _ := d.b.Exprs.Unary(id)
		d.expr(data.Operand, depth+1)
	case ast.ExprUpdate:
		data, _ := d.b.Exprs.Update(id)
		d.expr(data.Operand, depth+1)
	case ast.ExprBinary:
		data, _ := d.b.Exprs.Binary(id)
		d.expr(data.Left, depth+1)
		d.expr(data.Right, depth+1)
	case ast.ExprAssign:
		data, _ := d.b.Exprs.Assign(id)
		d.expr(data.Target, depth+1)
		d.expr(data.Value, depth+1)
	case ast.ExprCond:
		data, _ := d.b.Exprs.Cond(id)
		d.expr(data.Cond, depth+1)
		d.expr(data.Then, depth+1)
		d.expr(data.Else, depth+1)
	case ast.ExprCall, ast.ExprNew:
		data, _ := d.b.Exprs.Call(id)
		d.expr(data.Callee, depth+1)
		for _, arg := range data.Args {
			d.expr(arg, depth+1)
		}
	case ast.ExprMember:
		data, _ := d.b.Exprs.Member(id)
		d.expr(data.Object, depth+1)
	case ast.ExprIndex:
		data, _ := d.b.Exprs.Index(id)
		d.expr(data.Object, depth+1)
		d.expr(data.Index, depth+1)
	case ast.ExprSpread, ast.ExprParen, ast.ExprAwait, ast.ExprYield, ast.ExprNonNull:
		data, _ := d.b.Exprs.Wrap(id)
		d.expr(data.Inner, depth+1)
	case ast.ExprAs, ast.ExprSatisfies, ast.ExprTypeAssert:
		data, _ := d.b.Exprs.Cast(id)
		d.expr(data.Inner, depth+1)
	case ast.ExprTagged:
		data, _ := d.b.Exprs.Tagged(id)
		d.expr(data.Tag, depth+1)
		d.expr(data.Quasi, depth+1)
	}
}
