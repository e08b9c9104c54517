package domid

import (
	"strings"
	"unicode/utf8"
)

// Separator joins the components of an identifier.
const Separator = '-'

const separator = string(Separator)

// IsValidCharacter reports whether r may appear in an identifier. Letters are
// always allowed; digits, ':' and '.' only when r is not the first character
// of the identifier.
func IsValidCharacter(r rune, first bool) bool {
	if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
		return true
	}
	if first {
		return false
	}
	return (r >= '0' && r <= '9') || r == ':' || r == '.'
}

// IsValidComponent reports whether c is a non-empty component made of valid
// characters. first marks the first component of an identifier.
func IsValidComponent(c string, first bool) bool {
	if c == "" {
		return false
	}
	for i, r := range c {
		if !IsValidCharacter(r, first && i == 0) {
			return false
		}
	}
	return true
}

// IsValidIdentifier is the non-failing form of Check.
func IsValidIdentifier(id string) bool {
	return len(checkIdentifier(id, true)) == 0
}

// IsValidValue is IsValidIdentifier for untyped input. It returns false for
// nil and for anything that is not a string.
func IsValidValue(v any) bool {
	s, ok := stringValue(v)
	return ok && IsValidIdentifier(s)
}

// Check validates id and returns the first violation.
func Check(id string) error {
	if iss := checkIdentifier(id, true); len(iss) > 0 {
		return iss
	}
	return nil
}

// CheckValue validates untyped input. A nil value (or nil *string) passes when
// allowNil is set; anything else that is not a string is a type error.
func CheckValue(v any, allowNil bool) error {
	if v == nil {
		if allowNil {
			return nil
		}
		return typeIssue(CodeRequired, "", nil)
	}
	if p, ok := v.(*string); ok && p == nil {
		if allowNil {
			return nil
		}
		return typeIssue(CodeRequired, "", nil)
	}
	s, ok := stringValue(v)
	if !ok {
		return typeIssue(CodeInvalidType, "", map[string]any{"type": typeName(v)})
	}
	return Check(s)
}

// Diagnose reports every violation in id instead of stopping at the first.
func Diagnose(id string) Issues {
	return checkIdentifier(id, false)
}

// Split checks id and returns its components.
func Split(id string) ([]string, error) {
	if err := Check(id); err != nil {
		return nil, err
	}
	return strings.Split(id, separator), nil
}

// checkIdentifier walks id component by component. Character indexes in issues
// count runes across the whole identifier.
func checkIdentifier(id string, failFast bool) Issues {
	if id == "" {
		return formatIssue(CodeEmpty, -1, "", nil)
	}
	var iss Issues
	pos := 0
	for ci, comp := range strings.Split(id, separator) {
		if comp == "" {
			iss = AppendIssues(iss, IssueAt(KindFormat, CodeEmptyComponent, ci, "", nil))
			if failFast {
				return iss
			}
			pos++
			continue
		}
		k := 0
		for bi, r := range comp {
			if !IsValidCharacter(r, ci == 0 && k == 0) {
				value, cp := string(r), codePoint(r)
				if r == utf8.RuneError {
					// Undecodable byte: report it raw instead of U+FFFD.
					if _, size := utf8.DecodeRuneInString(comp[bi:]); size == 1 {
						value, cp = comp[bi:bi+1], rawByte(comp[bi])
					}
				}
				iss = AppendIssues(iss, IssueAt(KindFormat, CodeInvalidCharacter, pos, value,
					map[string]any{"codepoint": cp, "component": ci}))
				if failFast {
					return iss
				}
			}
			k++
			pos++
		}
		pos++ // separator
	}
	return iss
}

func stringValue(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case *string:
		if s == nil {
			return "", false
		}
		return *s, true
	}
	return "", false
}
