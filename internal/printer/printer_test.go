package printer_test

import (
	"testing"

	"tstrip/internal/printer"
	"tstrip/internal/source"
)

func span(start, end uint32) source.Span {
	return source.Span{File: 0, Start: start, End: end}
}

func TestRenderPad(t *testing.T) {
	src := []byte("keep BLANK keep")
	out := printer.Render(src, []printer.Edit{{Span: span(5, 10)}})
	if string(out) != "keep       keep" {
		t.Errorf("got %q", out)
	}
	if len(out) != len(src) {
		t.Errorf("length changed: %d -> %d", len(src), len(out))
	}
}

func TestRenderPadKeepsNewlines(t *testing.T) {
	src := []byte("a\nBLANK\r\nME\nb")
	out := printer.Render(src, []printer.Edit{{Span: span(2, 11)}})
	want := "a\n     \r\n  \nb"
	if string(out) != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestRenderReplace(t *testing.T) {
	src := []byte("one two three")
	out := printer.Render(src, []printer.Edit{
		{Span: span(4, 7), Text: []byte("TWO")},
	})
	if string(out) != "one TWO three" {
		t.Errorf("got %q", out)
	}
}

func TestRenderInsert(t *testing.T) {
	src := []byte("ab")
	out := printer.Render(src, []printer.Edit{
		{Span: span(1, 1), Text: []byte("X")},
	})
	if string(out) != "aXb" {
		t.Errorf("got %q", out)
	}
}

func TestRenderOrdersEdits(t *testing.T) {
	src := []byte("0123456789")
	out := printer.Render(src, []printer.Edit{
		{Span: span(6, 8), Text: []byte("B")},
		{Span: span(1, 3), Text: []byte("A")},
	})
	if string(out) != "0A345B89" {
		t.Errorf("got %q", out)
	}
}

func TestRenderSliceWindow(t *testing.T) {
	src := []byte("aaa bbb ccc")
	edits := []printer.Edit{
		{Span: span(0, 3), Text: []byte("X")},  // outside the window
		{Span: span(4, 7), Text: []byte("B")},  // inside
		{Span: span(8, 11), Text: []byte("Y")}, // outside
	}
	out := printer.RenderSlice(src, 4, 8, edits)
	if string(out) != "B " {
		t.Errorf("got %q", out)
	}
}

func TestRenderInsertionsKeepGivenOrder(t *testing.T) {
	src := []byte("{}")
	out := printer.Render(src, []printer.Edit{
		{Span: span(1, 1), Text: []byte("a;")},
		{Span: span(1, 1), Text: []byte("b;")},
	})
	if string(out) != "{a;b;}" {
		t.Errorf("got %q", out)
	}
}
