package source

import "testing"

func TestSpanBasics(t *testing.T) {
	s := Span{File: 0, Start: 3, End: 9}
	if s.Empty() {
		t.Error("non-empty span reported Empty")
	}
	if s.Len() != 6 {
		t.Errorf("Len = %d, want 6", s.Len())
	}
	if !(Span{Start: 4, End: 4}).Empty() {
		t.Error("zero-length span not Empty")
	}
	if s.String() != "0:3-9" {
		t.Errorf("String = %q", s.String())
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 0, Start: 5, End: 10}
	b := Span{File: 0, Start: 2, End: 7}
	got := a.Cover(b)
	if got.Start != 2 || got.End != 10 {
		t.Errorf("Cover = [%d,%d), want [2,10)", got.Start, got.End)
	}

	// Different file leaves the receiver unchanged.
	other := Span{File: 1, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Errorf("cross-file Cover changed span: %v", got)
	}
}

func TestSpanContains(t *testing.T) {
	outer := Span{File: 0, Start: 2, End: 10}
	if !outer.Contains(Span{File: 0, Start: 2, End: 10}) {
		t.Error("span should contain itself")
	}
	if !outer.Contains(Span{File: 0, Start: 4, End: 6}) {
		t.Error("inner span not contained")
	}
	if outer.Contains(Span{File: 0, Start: 4, End: 11}) {
		t.Error("overhanging span reported contained")
	}
	if outer.Contains(Span{File: 1, Start: 4, End: 6}) {
		t.Error("cross-file span reported contained")
	}

	if !outer.ContainsOffset(2) || outer.ContainsOffset(10) {
		t.Error("ContainsOffset boundary wrong, span is half-open")
	}
}
