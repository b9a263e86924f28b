package queryskema

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType  = "invalid_type"
	CodeParseError   = "parse_error"
	CodeInvalidEnum  = "invalid_enum"
	CodeUnknownField = "unknown_field"
	CodeNotArray     = "not_array"
	// Schema construction errors
	CodeEmptyName         = "empty_name"
	CodeDuplicateField    = "duplicate_field"
	CodeMissingOptions    = "missing_options"
	CodeDuplicateOption   = "duplicate_option"
	CodeUnexpectedOptions = "unexpected_options"
	// schemafile translation errors
	CodeUnsupportedShape = "unsupported_shape"
	CodeEmptyDocument    = "empty_document"
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // Field name, or "/" for schema-level issues.
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: offending value, allowed options, etc.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g. {"got":"abc"}) for
	// i18n and observability.
	Params map[string]any
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_enum at statuses
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
