package diag

import (
	"testing"

	"tstrip/internal/source"
)

func errAt(code Code, start, end uint32) Diagnostic {
	return NewError(code, source.Span{Start: start, End: end}, "boom")
}

func TestBagCap(t *testing.T) {
	bag := NewBag(2)
	if !bag.Add(errAt(SynUnexpectedToken, 0, 1)) {
		t.Error("first Add rejected")
	}
	if !bag.Add(errAt(SynUnexpectedToken, 2, 3)) {
		t.Error("second Add rejected")
	}
	if bag.Add(errAt(SynUnexpectedToken, 4, 5)) {
		t.Error("Add past cap accepted")
	}
	if bag.Len() != 2 {
		t.Errorf("Len = %d, want 2", bag.Len())
	}
}

func TestBagHasErrors(t *testing.T) {
	bag := NewBag(8)
	bag.Add(New(SevWarning, LexInfo, source.Span{}, "just a warning"))
	if bag.HasErrors() {
		t.Error("warning-only bag reported errors")
	}
	bag.Add(errAt(LexUnknownChar, 0, 1))
	if !bag.HasErrors() {
		t.Error("error diagnostic not detected")
	}
}

func TestBagFirstPicksEarliestError(t *testing.T) {
	bag := NewBag(8)
	bag.Add(errAt(SynUnexpectedToken, 10, 12))
	bag.Add(New(SevWarning, LexInfo, source.Span{Start: 0, End: 1}, "early warning"))
	bag.Add(errAt(LexUnknownChar, 4, 5))

	first, ok := bag.First()
	if !ok {
		t.Fatal("First found nothing")
	}
	// Earliest by position, warnings never win.
	if first.Code != LexUnknownChar || first.Primary.Start != 4 {
		t.Errorf("First = %+v", first)
	}
}

func TestBagSortDeterministic(t *testing.T) {
	bag := NewBag(8)
	bag.Add(errAt(SynExpectSemicolon, 8, 9))
	bag.Add(errAt(SynUnexpectedToken, 2, 5))
	bag.Add(errAt(LexUnknownChar, 2, 3))
	bag.Sort()

	items := bag.Items()
	wantStarts := []uint32{2, 2, 8}
	for i, d := range items {
		if d.Primary.Start != wantStarts[i] {
			t.Fatalf("item %d start = %d, want %d", i, d.Primary.Start, wantStarts[i])
		}
	}
	// Same start, shorter span first.
	if items[0].Primary.End != 3 {
		t.Errorf("tie not broken by end offset: %+v", items[0])
	}
}

func TestBagMergeGrowsCap(t *testing.T) {
	a := NewBag(1)
	a.Add(errAt(SynUnexpectedToken, 0, 1))
	b := NewBag(1)
	b.Add(errAt(SynExpectSemicolon, 2, 3))
	a.Merge(b)
	if a.Len() != 2 {
		t.Errorf("merged Len = %d, want 2", a.Len())
	}
}

func TestBagReporterHonorsNil(t *testing.T) {
	bag := NewBag(4)
	r := BagReporter{Bag: bag}
	r.Report(SynUnexpectedToken, SevError, source.Span{Start: 1, End: 2}, "oops",
		[]Note{{Msg: "context"}})
	if bag.Len() != 1 {
		t.Fatalf("Len = %d, want 1", bag.Len())
	}
	if len(bag.Items()[0].Notes) != 1 {
		t.Error("notes dropped")
	}
}

func TestWithNote(t *testing.T) {
	d := NewError(StripEnum, source.Span{Start: 0, End: 4}, "no enums here").
		WithNote(source.Span{Start: 5, End: 6}, "declared here")
	if len(d.Notes) != 1 || d.Notes[0].Msg != "declared here" {
		t.Errorf("Notes = %+v", d.Notes)
	}
}

func TestCodeString(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{LexUnknownChar, "LEX1001"},
		{SynUnexpectedToken, "SYN2001"},
		{StripEnum, "STR3001"},
		{LowerModuleKeyword, "XFM3101"},
		{UnknownCode, "UNK0000"},
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestCodeIsParse(t *testing.T) {
	if !LexUnterminatedString.IsParse() || !SynAwaitOutsideAsync.IsParse() {
		t.Error("front-end codes not flagged as parse codes")
	}
	if StripEnum.IsParse() || LowerModuleKeyword.IsParse() {
		t.Error("pass rejection codes flagged as parse codes")
	}
}

func TestFailureFrom(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("app.ts", []byte("enum Foo {}\nrest"))
	sp := source.Span{File: id, Start: 0, End: 11}

	f := FailureFrom(fs, NewError(StripEnum, sp, "TypeScript enum is not supported in strip-only mode"))
	if f.Kind != UnsupportedSyntax {
		t.Errorf("Kind = %v, want UnsupportedSyntax", f.Kind)
	}
	if f.Line != 1 || f.Column != 0 {
		t.Errorf("position = %d:%d, want 1:0", f.Line, f.Column)
	}
	if f.Snippet != "enum Foo {}" {
		t.Errorf("Snippet = %q", f.Snippet)
	}

	pf := FailureFrom(fs, NewError(SynUnexpectedToken, source.Span{File: id, Start: 12, End: 16}, "unexpected token"))
	if pf.Kind != InvalidSyntax {
		t.Errorf("parse failure Kind = %v, want InvalidSyntax", pf.Kind)
	}
	if pf.Line != 2 || pf.Column != 0 {
		t.Errorf("position = %d:%d, want 2:0", pf.Line, pf.Column)
	}

	want := "app.ts:1:0: UnsupportedSyntax: TypeScript enum is not supported in strip-only mode"
	if f.Error() != want {
		t.Errorf("Error() = %q, want %q", f.Error(), want)
	}
}
