// Package testkit holds shared invariant checks for tests.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"tstrip/internal/ast"
	"tstrip/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on a parsed file:
// 1) file.Span is non-empty and within file content bounds
// 2) every top-level statement span is non-empty and inside file.Span
// 3) file.Span covers the union of statement spans (if any exist)
func CheckSpanInvariants(b *ast.Builder, fileID ast.FileID, sf *source.File) error {
	if b == nil || sf == nil {
		return fmt.Errorf("nil builder or file")
	}
	f := b.Files.Get(fileID)
	if f == nil {
		return fmt.Errorf("file node not found")
	}

	// 1) file span sanity
	if f.Span.End <= f.Span.Start {
		return fmt.Errorf("file span is empty: %v", f.Span)
	}
	if f.Span.File != sf.ID {
		return fmt.Errorf("file span points to different file id: got=%d want=%d", f.Span.File, sf.ID)
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if f.Span.End > lenContent {
		return fmt.Errorf("file span end beyond content: %d > %d", f.Span.End, lenContent)
	}

	// 2) statement spans within file span; 3) file covers union
	var union source.Span
	var haveStmt bool
	for _, id := range f.Body {
		st := b.Stmts.Get(id)
		if st == nil {
			return fmt.Errorf("nil statement for id=%d", id)
		}
		sp := st.Span
		if sp.End <= sp.Start {
			return fmt.Errorf("empty statement span: %v", sp)
		}
		if sp.File != sf.ID {
			return fmt.Errorf("statement span file mismatch: got=%d want=%d", sp.File, sf.ID)
		}
		if sp.Start < f.Span.Start || sp.End > f.Span.End {
			return fmt.Errorf("statement span %v is outside file span %v", sp, f.Span)
		}
		if !haveStmt {
			union = sp
			haveStmt = true
		} else {
			union = union.Cover(sp)
		}
	}

	if haveStmt {
		if union.Start < f.Span.Start || union.End > f.Span.End {
			return fmt.Errorf("file span %v does not cover union of statements %v", f.Span, union)
		}
	}
	return nil
}

// CheckErasureInvariants verifies that erased output is byte-for-byte
// position preserving: same length, every line terminator unchanged.
func CheckErasureInvariants(src, out []byte) error {
	if len(out) != len(src) {
		return fmt.Errorf("output length %d differs from input length %d", len(out), len(src))
	}
	for i, c := range src {
		if c != '\n' && c != '\r' {
			continue
		}
		if out[i] != c {
			return fmt.Errorf("line terminator at offset %d was rewritten: %q -> %q", i, c, out[i])
		}
	}
	return nil
}
