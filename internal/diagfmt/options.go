// Package diagfmt renders diagnostics and front-end dumps for terminals
// and tooling.
package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeFull prints paths as stored in the file set.
	PathModeFull PathMode = iota
	// PathModeBasename prints only the final path element.
	PathModeBasename
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color bool
	// Context is the number of source lines printed above the caret line.
	Context  int
	PathMode PathMode
	// ShowNotes includes secondary notes under each diagnostic.
	ShowNotes bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	// IncludePositions adds line/col to every location.
	IncludePositions bool
	PathMode         PathMode
	// Max truncates the output, not the bag. Zero means no limit.
	Max int
}
