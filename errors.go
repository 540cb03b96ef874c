package goprior

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType    = "invalid_type"
	CodeRequired       = "required"
	CodeUnknownKey     = "unknown_key"
	CodeDuplicateKey   = "duplicate_key"
	CodeInvalidEnum    = "invalid_enum"
	CodeLengthMismatch = "length_mismatch"
	CodeInvalidWeight  = "invalid_weight"
	CodeParseError     = "parse_error"
	// Parameter semantics
	CodeRangeOrder  = "range_order"
	CodeConflict    = "conflict"
	CodeDomainRange = "domain_range"
)

// Error kinds. Issues match them with errors.Is according to their codes.
var (
	// ErrRangeOrder reports an interval whose low bound exceeds its high bound.
	ErrRangeOrder = errors.New("goprior: range order")
	// ErrParameterConflict reports mutually exclusive parameterizations supplied
	// together, or none of them supplied.
	ErrParameterConflict = errors.New("goprior: parameter conflict")
	// ErrDomain reports a value outside its distribution's legal domain.
	ErrDomain = errors.New("goprior: domain")
	// ErrValidation reports structurally wrong input.
	ErrValidation = errors.New("goprior: validation")
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // JSON Pointer naming the parameter (for example: /dists/2/sd).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"param":"low", "got":-1})
	// for i18n and observability.
	Params map[string]any
}

// Kind returns the sentinel error kind for the issue code.
func (it Issue) Kind() error { return kindOf(it.Code) }

func kindOf(code string) error {
	switch code {
	case CodeRangeOrder:
		return ErrRangeOrder
	case CodeConflict:
		return ErrParameterConflict
	case CodeDomainRange:
		return ErrDomain
	default:
		return ErrValidation
	}
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
		// e.g. domain_range at /low: must be greater than 0 (got -1)
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Message != "" {
			b.WriteString(": ")
			b.WriteString(it.Message)
		}
		if got, ok := it.Params["got"]; ok {
			fmt.Fprintf(b, " (got %v)", got)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Is reports whether any issue belongs to the target kind.
func (iss Issues) Is(target error) bool {
	for _, it := range iss {
		if kindOf(it.Code) == target {
			return true
		}
	}
	return false
}

// Unwrap exposes issue causes to errors.Is / errors.As.
func (iss Issues) Unwrap() []error {
	var out []error
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
}

// WithPrefix returns a copy whose paths are re-rooted under prefix (a JSON Pointer).
func (iss Issues) WithPrefix(prefix string) Issues {
	prefix = strings.TrimSuffix(prefix, "/")
	if prefix == "" {
		return iss
	}
	out := make(Issues, len(iss))
	for i, it := range iss {
		if it.Path == "/" || it.Path == "" {
			it.Path = prefix
		} else {
			it.Path = prefix + it.Path
		}
		out[i] = it
	}
	return out
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
