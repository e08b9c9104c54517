package domid

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType      = "invalid_type"
	CodeRequired         = "required"
	CodeEmpty            = "empty"
	CodeEmptyComponent   = "empty_component"
	CodeInvalidCharacter = "invalid_character"
	CodeInvalidComponent = "invalid_component"
	CodeNumericFirst     = "numeric_first"
	CodeNegative         = "negative"
	CodeFractional       = "fractional"
	CodeOverflow         = "overflow"
	CodeUnsupportedValue = "unsupported_value"
	// Template/identifier relations
	CodeComponentCount  = "component_count"
	CodeTooFewParams    = "too_few_params"
	CodeTooManyParams   = "too_many_params"
	CodeMismatch        = "mismatch"
	CodeWildcardFirst   = "wildcard_first"
	CodeInvalidTemplate = "invalid_template"
	CodeParseError      = "parse_error"
)

// Kind classifies an Issue.
type Kind int

const (
	KindFormat Kind = iota // Well-typed but semantically invalid input.
	KindType               // Wrong argument shape (nil where forbidden, wrong type).
	KindParse              // Extracted component could not be converted to a number.
)

func (k Kind) String() string {
	switch k {
	case KindType:
		return "type"
	case KindParse:
		return "parse"
	default:
		return "format"
	}
}

// Sentinels for errors.Is. Parse issues match both ErrParse and ErrFormat.
var (
	ErrType   = errors.New("domid: argument type error")
	ErrFormat = errors.New("domid: format error")
	ErrParse  = errors.New("domid: parse error")
)

// Issue represents a single violation.
type Issue struct {
	Kind    Kind
	Code    string // One of the codes listed above.
	Index   int    // Component or character index (-1 when not applicable).
	Value   string // Offending value, rendered as text.
	Message string
	// Params carries structured parameters (e.g., {"expected":3, "got":2})
	// for i18n and observability.
	Params map[string]any
	Cause  error // Optional: underlying error.
}

func (it Issue) Error() string {
	b := &strings.Builder{}
	b.WriteString(it.Code)
	if it.Index >= 0 {
		fmt.Fprintf(b, " at %d", it.Index)
	}
	if it.Message != "" && it.Message != it.Code {
		b.WriteString(": ")
		b.WriteString(it.Message)
	}
	return b.String()
}

// Is maps the issue kind onto the package sentinels.
func (it Issue) Is(target error) bool {
	switch target {
	case ErrType:
		return it.Kind == KindType
	case ErrFormat:
		return it.Kind == KindFormat || it.Kind == KindParse
	case ErrParse:
		return it.Kind == KindParse
	}
	return false
}

func (it Issue) Unwrap() error { return it.Cause }

// Issues is a collection of violations that implements error.
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
		b.WriteString(iss[i].Error())
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Is reports whether any contained issue matches target.
func (iss Issues) Is(target error) bool {
	for _, it := range iss {
		if it.Is(target) {
			return true
		}
	}
	return false
}

// First returns the first issue, if any.
func (iss Issues) First() (Issue, bool) {
	if len(iss) == 0 {
		return Issue{}, false
	}
	return iss[0], true
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
