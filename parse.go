package domid

import "strconv"

// Parse checks id and returns its typed components. Digit-only components
// after the first become numeric when they fit in uint32 and carry no leading
// zero, so that Parse followed by BuildComponents reproduces id.
func Parse(id string) ([]Component, error) {
	parts, err := Split(id)
	if err != nil {
		return nil, err
	}
	cs := make([]Component, len(parts))
	for i, p := range parts {
		cs[i] = Str(p)
		if i == 0 || !canonicalDecimal(p) {
			continue
		}
		if n, perr := strconv.ParseUint(p, 10, 32); perr == nil {
			cs[i] = Num(uint32(n))
		}
	}
	return cs, nil
}

func canonicalDecimal(s string) bool {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
