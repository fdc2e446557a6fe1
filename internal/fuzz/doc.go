// Package fuzztests houses Go fuzz harnesses that exercise the front half of
// the stripper (source -> lexer -> parser). Its goal is to smoke test
// robustness and guard against panics, bad spans, or stuck error recovery on
// arbitrary inputs.
//
// The harnesses load bytes into a FileSet as a virtual .ts file and drive the
// tokenizer and parser over them. They never write files or run the CLI.
package fuzztests
