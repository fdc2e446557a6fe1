// Package diag holds the diagnostic model: coded, span-located diagnostics
// produced by the front end and the passes, a capped Bag accumulator, and
// the two-kind boundary Failure shape (InvalidSyntax / UnsupportedSyntax)
// the engine exposes to callers.
package diag
