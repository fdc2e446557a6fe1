package diag

// Severity ranks a diagnostic. Order matters: HasErrors and the renderers
// compare against SevError.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	// SevError marks diagnostics that fail the invocation.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
