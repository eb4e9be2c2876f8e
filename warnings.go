package clipocr

import "strings"

// Warning describes a non-fatal issue encountered while scanning. Terminal
// operations return warnings alongside their value; the value is still
// usable.
type Warning struct {
	// Code identifies the warning category, e.g. "truncated".
	Code string
	// Message is a human-readable description.
	Message string
}

// Warning codes.
const (
	// WarnTruncated means the recognized text did not fit the output
	// buffer and was cut off; the buffer still ends with a terminator.
	WarnTruncated = "truncated"
)

// FormatWarnings renders warnings as a single semicolon-separated string
// for logging.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, 0, len(warnings))
	for _, w := range warnings {
		parts = append(parts, w.Code+": "+w.Message)
	}
	return strings.Join(parts, "; ")
}
