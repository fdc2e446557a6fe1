// Package ast defines the arena-backed syntax tree for TypeScript sources.
//
// Nodes live in append-only arenas addressed by typed 1-based IDs; ID 0 is
// the invalid value for every category. Each node is a small Kind+Span
// header pointing at a per-kind payload arena. Type syntax is not
// structured: a type position is recorded as its covering source span,
// because the engine only ever erases those bytes.
package ast
