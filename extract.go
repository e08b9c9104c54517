package domid

import (
	"strconv"
	"strings"
)

// ExtractValues returns the identifier components at the wildcard slots of t,
// in slot order. id must be a valid identifier. Fixed slots must equal their component; a difference is a
// mismatch error rather than a silently partial result.
func ExtractValues(t Template, id string) ([]string, error) {
	parts, iss := splitFor(t, id)
	if iss != nil {
		return nil, iss
	}
	values := make([]string, 0, t.Wildcards())
	for i, s := range t {
		if s.IsWildcard() {
			values = append(values, parts[i])
			continue
		}
		if parts[i] != s.Expect() {
			return nil, mismatch(i, parts[i], s)
		}
	}
	return values, nil
}

// ExtractLastValue returns the final component of id. t must end in a
// wildcard and must not start with one: a template whose last slot is fixed
// fails with CodeInvalidTemplate and one starting with a wildcard with
// CodeWildcardFirst. The fixed slots before the last are compared against id.
func ExtractLastValue(t Template, id string) (string, error) {
	if iss := t.validate(); iss != nil {
		return "", iss
	}
	if t[0].IsWildcard() {
		return "", formatIssue(CodeWildcardFirst, 0, "", nil)
	}
	last := len(t) - 1
	if !t[last].IsWildcard() {
		return "", formatIssue(CodeInvalidTemplate, last, t[last].String(),
			map[string]any{"reason": "last slot must be a wildcard"})
	}
	parts, iss := splitFor(t, id)
	if iss != nil {
		return "", iss
	}
	for i, s := range t[:last] {
		if s.IsWildcard() {
			continue
		}
		if parts[i] != s.Expect() {
			return "", mismatch(i, parts[i], s)
		}
	}
	return parts[last], nil
}

// ExtractLastUint is ExtractLastValue parsed as an unsigned 32-bit decimal.
func ExtractLastUint(t Template, id string) (uint32, error) {
	v, err := ExtractLastValue(t, id)
	if err != nil {
		return 0, err
	}
	n, perr := strconv.ParseUint(v, 10, 32)
	if perr != nil {
		it := IssueAt(KindParse, CodeParseError, len(t)-1, v, nil)
		it.Cause = perr
		return 0, Issues{it}
	}
	return uint32(n), nil
}

// MatchesTemplate reports whether id is a valid identifier with the shape of t.
// Structural template defects are returned as errors; a non-matching or
// invalid id is (false, nil).
func MatchesTemplate(t Template, id string) (bool, error) {
	if iss := t.validate(); iss != nil {
		return false, iss
	}
	if checkIdentifier(id, true) != nil {
		return false, nil
	}
	parts := strings.Split(id, separator)
	if len(parts) != len(t) {
		return false, nil
	}
	for i, s := range t {
		if s.IsWildcard() {
			continue
		}
		if parts[i] != s.Expect() {
			return false, nil
		}
	}
	return true, nil
}

// Matches is MatchesTemplate treating template defects as no match.
func Matches(t Template, id string) bool {
	ok, err := MatchesTemplate(t, id)
	return err == nil && ok
}

// splitFor checks t and id, then splits id into exactly len(t) components.
func splitFor(t Template, id string) ([]string, Issues) {
	if iss := t.validate(); iss != nil {
		return nil, iss
	}
	if iss := checkIdentifier(id, true); iss != nil {
		return nil, iss
	}
	parts := strings.Split(id, separator)
	if len(parts) != len(t) {
		return nil, formatIssue(CodeComponentCount, -1, id,
			map[string]any{"expected": len(t), "got": len(parts)})
	}
	return parts, nil
}

func mismatch(index int, got string, s Slot) Issues {
	return formatIssue(CodeMismatch, index, got, map[string]any{"expected": s.Expect()})
}
