// Package printer is the edit-splice emitter: it reproduces source bytes
// verbatim except where edits apply. An edit either replaces a span with
// synthesized text or space-pads it in place; zero-width edits insert.
package printer

import (
	"bytes"
	"sort"

	"tstrip/internal/source"
)

// Edit is one splice. A nil Text space-pads the span, keeping line
// terminators so positions after the edit are unchanged. A non-nil Text
// replaces the span bytes; with an empty span it is a pure insertion.
type Edit struct {
	Span source.Span
	Text []byte
}

// Render applies edits to src and returns the new content. Edits must not
// overlap; insertions at the same offset keep their given order.
func Render(src []byte, edits []Edit) []byte {
	return RenderSlice(src, 0, uint32(len(src)), edits)
}

// RenderSlice renders the [from, to) window of src, applying only the
// edits that fall inside it.
func RenderSlice(src []byte, from, to uint32, edits []Edit) []byte {
	window := make([]Edit, 0, len(edits))
	for _, e := range edits {
		if e.Span.Start >= from && e.Span.End <= to {
			window = append(window, e)
		}
	}
	sort.SliceStable(window, func(i, j int) bool {
		return window[i].Span.Start < window[j].Span.Start
	})

	var out bytes.Buffer
	out.Grow(int(to - from))
	cur := from
	for _, e := range window {
		if e.Span.Start < cur {
			continue // overlapped by a previous edit
		}
		out.Write(src[cur:e.Span.Start])
		if e.Text != nil {
			out.Write(e.Text)
		} else {
			writePad(&out, src[e.Span.Start:e.Span.End])
		}
		cur = e.Span.End
	}
	out.Write(src[cur:to])
	return out.Bytes()
}

// writePad writes one space per byte, passing line terminators through.
func writePad(out *bytes.Buffer, span []byte) {
	for _, b := range span {
		if b == '\n' || b == '\r' {
			out.WriteByte(b)
		} else {
			out.WriteByte(' ')
		}
	}
}
