package fuzztests

import (
	"testing"

	"tstrip/internal/diag"
	"tstrip/internal/parser"
	"tstrip/internal/source"
	"tstrip/internal/token"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = append([]byte(nil), input[:maxFuzzInput]...)
		} else {
			input = append([]byte(nil), input...)
		}

		fs := source.NewFileSet()
		fileID := fs.AddVirtual("fuzz.ts", input)
		file := fs.Get(fileID)

		bag := diag.NewBag(64)
		toks := parser.Tokenize(file, diag.BagReporter{Bag: bag})
		if len(toks) == 0 {
			t.Fatal("token stream empty, missing EOF")
		}
		if last := toks[len(toks)-1]; last.Kind != token.EOF {
			t.Fatalf("stream ends with %v, want EOF", last.Kind)
		}
		// Spans must stay inside the file no matter how broken the input is.
		limit := uint32(len(file.Content))
		for _, tok := range toks {
			if tok.Span.Start > tok.Span.End || tok.Span.End > limit {
				t.Fatalf("token %v has span [%d,%d) outside file of %d bytes",
					tok.Kind, tok.Span.Start, tok.Span.End, limit)
			}
		}
	})
}
