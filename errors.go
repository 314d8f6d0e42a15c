package gosdmx

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType   = "invalid_type"
	CodeRequired      = "required"
	CodeDuplicateKey  = "duplicate_key"
	CodeTooSmall      = "too_small"
	CodeInvalidEnum   = "invalid_enum"
	CodeInvalidFormat = "invalid_format"
	CodeUnionNoMatch  = "union_no_match"
	CodeParseError    = "parse_error"
	CodeOverflow      = "overflow"
	CodeTruncated     = "truncated"
)

// Issue represents a single structural or enumeration failure.
type Issue struct {
	Path    string // JSON Pointer (for example: /data/dataSets/0/action).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: expected shape, accepted tokens, etc.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"got":"X"}) for i18n and
	// observability.
	Params map[string]any
}

// Issues is a collection of parse errors that implements error.
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
		// e.g. invalid_type at /path
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// HasCode reports whether any issue carries the given code.
func (iss Issues) HasCode(code string) bool {
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
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

// SourceError reports a failure to obtain input bytes. It is returned instead
// of Issues, never alongside them.
type SourceError struct {
	Op  string
	Err error
}

func (e *SourceError) Error() string { return "gosdmx: " + e.Op + ": " + e.Err.Error() }

func (e *SourceError) Unwrap() error { return e.Err }

// IsSourceError reports whether err was caused by the input source rather than
// by the document content.
func IsSourceError(err error) bool {
	var se *SourceError
	return errors.As(err, &se)
}
