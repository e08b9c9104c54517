package domid

import (
	"strconv"
	"strings"
)

// SlotKind discriminates template slots.
type SlotKind uint8

const (
	SlotLiteral SlotKind = iota
	SlotNumeric
	SlotWildcard
)

// Slot is one position of a Template: a fixed literal, a fixed number, or a
// wildcard filled at build time and extracted at parse time.
type Slot struct {
	kind SlotKind
	text string
	num  uint32
}

// Wildcard is the placeholder slot.
var Wildcard = Slot{kind: SlotWildcard}

// Literal creates a fixed string slot.
func Literal(s string) Slot { return Slot{kind: SlotLiteral, text: s} }

// Numeric creates a fixed number slot.
func Numeric(n uint32) Slot { return Slot{kind: SlotNumeric, num: n} }

func (s Slot) Kind() SlotKind   { return s.kind }
func (s Slot) IsWildcard() bool { return s.kind == SlotWildcard }

// Expect returns the component text a fixed slot must match. It is empty for
// wildcards.
func (s Slot) Expect() string {
	switch s.kind {
	case SlotNumeric:
		return strconv.FormatUint(uint64(s.num), 10)
	case SlotLiteral:
		return s.text
	}
	return ""
}

func (s Slot) String() string {
	if s.kind == SlotWildcard {
		return "*"
	}
	return s.Expect()
}

func (s Slot) component() Component {
	if s.kind == SlotNumeric {
		return Num(s.num)
	}
	return Str(s.text)
}

// Template is an ordered list of slots.
type Template []Slot

// NewTemplate resolves untyped slot values: nil is a wildcard, strings are
// literals, integers are numeric slots and Slot values pass through. The
// resulting template is validated.
func NewTemplate(values ...any) (Template, error) {
	t := make(Template, 0, len(values))
	for i, v := range values {
		switch x := v.(type) {
		case nil:
			t = append(t, Wildcard)
		case Slot:
			t = append(t, x)
		default:
			c, iss := resolveComponent(v, i)
			if iss != nil {
				return nil, iss
			}
			if n, ok := c.Number(); ok {
				t = append(t, Numeric(n))
			} else {
				t = append(t, Literal(c.text))
			}
		}
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// MustTemplate is NewTemplate that panics on error. Use it for templates
// declared at package level.
func MustTemplate(values ...any) Template {
	t, err := NewTemplate(values...)
	if err != nil {
		panic(err)
	}
	return t
}

// Validate reports structural defects: an empty template, a numeric first
// slot or a literal that is not a valid component at its position.
func (t Template) Validate() error {
	if iss := t.validate(); iss != nil {
		return iss
	}
	return nil
}

func (t Template) validate() Issues {
	if len(t) == 0 {
		return formatIssue(CodeEmpty, -1, "", nil)
	}
	for i, s := range t {
		if s.kind == SlotWildcard {
			continue
		}
		if iss := s.component().validate(i); iss != nil {
			return iss
		}
	}
	return nil
}

// Wildcards counts the wildcard slots.
func (t Template) Wildcards() int {
	n := 0
	for _, s := range t {
		if s.kind == SlotWildcard {
			n++
		}
	}
	return n
}

// String renders the template with '*' for wildcards, e.g. "tab-*".
func (t Template) String() string {
	parts := make([]string, len(t))
	for i, s := range t {
		parts[i] = s.String()
	}
	return strings.Join(parts, separator)
}
