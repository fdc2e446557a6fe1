package fuzztests

import (
	"testing"
	"time"

	"tstrip/internal/ast"
	"tstrip/internal/diag"
	"tstrip/internal/parser"
	"tstrip/internal/source"
)

// parseTimeout bounds a single parse. Exceeding it means the error
// recovery stopped making progress on some input.
const parseTimeout = 5 * time.Second

func parseInput(input []byte) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("fuzz.ts", input)
	file := fs.Get(fileID)

	bag := diag.NewBag(128)
	reporter := diag.BagReporter{Bag: bag}
	toks := parser.Tokenize(file, reporter)

	builder := ast.NewBuilder(ast.Hints{})
	p := parser.New(file, toks, builder, reporter)
	_ = p.ParseFile()
}

func FuzzParserBuildsAST(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(_ *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = append([]byte(nil), input[:maxFuzzInput]...)
		} else {
			input = append([]byte(nil), input...)
		}
		parseInput(input)
	})
}

// FuzzParserNoHang checks that error recovery always advances. Each case
// runs in its own goroutine so a stuck parse fails the run instead of
// wedging the fuzzer.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)

	// Recovery paths that are easy to get wrong.
	f.Add([]byte("const x: number = 1\nconst y = 2;"))    // ASI between statements
	f.Add(byteSeed("function f( {"))                      // unterminated parameter list
	f.Add(byteSeed("class C { constructor(private }"))    // modifier with no parameter
	f.Add(byteSeed("const a = <"))                        // dangling type assertion
	f.Add(byteSeed("x < y > z >> w"))                     // generics vs comparison ambiguity
	f.Add(byteSeed("{ { { { }"))                          // unbalanced blocks
	f.Add(byteSeed("enum E { A = , }"))                   // missing initializer expression
	f.Add(byteSeed("for (;;) for (;;) for (;;) break;"))  // nested headers
	f.Add(byteSeed("`${`${`${x}`}`}`"))                   // nested template substitutions
	f.Add(byteSeed("namespace A.B.C { namespace D { }"))  // unclosed nested namespace
	f.Add(byteSeed("type T = (((((((((((number)))))))")) // deep type parens

	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = append([]byte(nil), input[:maxFuzzInput]...)
		} else {
			input = append([]byte(nil), input...)
		}

		done := make(chan struct{})
		go func() {
			defer close(done)
			parseInput(input)
		}()

		select {
		case <-done:
		case <-time.After(parseTimeout):
			t.Fatalf("parser hang: exceeded %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

func byteSeed(s string) []byte { return []byte(s) }

func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen:maxLen], []byte("...")...)
}
