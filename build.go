package domid

import "strings"

// Build joins values into an identifier. Each value is a string, a
// non-negative integer or a Component; integers are not allowed first.
func Build(values ...any) (string, error) {
	if len(values) == 0 {
		return "", formatIssue(CodeEmpty, -1, "", nil)
	}
	parts := make([]string, len(values))
	for i, v := range values {
		c, iss := componentAt(v, i)
		if iss != nil {
			return "", iss
		}
		parts[i] = c.String()
	}
	return strings.Join(parts, separator), nil
}

// BuildComponents is Build for already resolved components.
func BuildComponents(cs ...Component) (string, error) {
	if len(cs) == 0 {
		return "", formatIssue(CodeEmpty, -1, "", nil)
	}
	parts := make([]string, len(cs))
	for i, c := range cs {
		if iss := c.validate(i); iss != nil {
			return "", iss
		}
		parts[i] = c.String()
	}
	return strings.Join(parts, separator), nil
}

// BuildFromTemplate fills the wildcards of t with params, in order, and joins
// the result. The number of params must equal t.Wildcards().
func BuildFromTemplate(t Template, params ...any) (string, error) {
	if iss := t.validate(); iss != nil {
		return "", iss
	}
	counts := func() map[string]any {
		return map[string]any{"required": t.Wildcards(), "supplied": len(params)}
	}
	parts := make([]string, len(t))
	next := 0
	for i, s := range t {
		if !s.IsWildcard() {
			parts[i] = s.Expect()
			continue
		}
		if next >= len(params) {
			return "", formatIssue(CodeTooFewParams, i, "", counts())
		}
		c, iss := componentAt(params[next], i)
		if iss != nil {
			return "", iss
		}
		next++
		parts[i] = c.String()
	}
	if next < len(params) {
		return "", formatIssue(CodeTooManyParams, -1, "", counts())
	}
	return strings.Join(parts, separator), nil
}

// SafeBuild is Build returning ("", false) on error.
func SafeBuild(values ...any) (string, bool) {
	id, err := Build(values...)
	if err != nil {
		return "", false
	}
	return id, true
}

func componentAt(v any, index int) (Component, Issues) {
	c, iss := resolveComponent(v, index)
	if iss != nil {
		return Component{}, iss
	}
	if iss := c.validate(index); iss != nil {
		return Component{}, iss
	}
	return c, nil
}
