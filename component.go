package domid

import (
	"fmt"
	"math"
	"strconv"
)

// ComponentKind discriminates Component values.
type ComponentKind uint8

const (
	ComponentString ComponentKind = iota
	ComponentNumber
)

// Component is one segment of an identifier: either a string or an unsigned
// number.
type Component struct {
	kind ComponentKind
	text string
	num  uint32
}

// Str creates a string component.
func Str(s string) Component { return Component{kind: ComponentString, text: s} }

// Num creates a numeric component.
func Num(n uint32) Component { return Component{kind: ComponentNumber, num: n} }

func (c Component) Kind() ComponentKind { return c.kind }
func (c Component) IsNumeric() bool     { return c.kind == ComponentNumber }

// Number returns the numeric value and whether c is numeric.
func (c Component) Number() (uint32, bool) {
	return c.num, c.kind == ComponentNumber
}

// String serializes the component as it appears in an identifier.
func (c Component) String() string {
	if c.kind == ComponentNumber {
		return strconv.FormatUint(uint64(c.num), 10)
	}
	return c.text
}

// validate checks c for position index.
func (c Component) validate(index int) Issues {
	if c.kind == ComponentNumber {
		if index == 0 {
			return formatIssue(CodeNumericFirst, index, c.String(), nil)
		}
		return nil
	}
	if !IsValidComponent(c.text, index == 0) {
		return formatIssue(CodeInvalidComponent, index, c.text, nil)
	}
	return nil
}

// ComponentOf resolves an untyped value into a Component. Accepted inputs are
// Component, string and Go integer or integral float types.
func ComponentOf(v any) (Component, error) {
	c, iss := resolveComponent(v, -1)
	if iss != nil {
		return Component{}, iss
	}
	return c, nil
}

// resolveComponent converts v without validating its character set. Numeric
// values at index 0 are rejected before range checks.
func resolveComponent(v any, index int) (Component, Issues) {
	switch x := v.(type) {
	case Component:
		return x, nil
	case string:
		return Str(x), nil
	case *string:
		if x != nil {
			return Str(*x), nil
		}
	case int:
		return numericComponent(int64(x), index)
	case int8:
		return numericComponent(int64(x), index)
	case int16:
		return numericComponent(int64(x), index)
	case int32:
		return numericComponent(int64(x), index)
	case int64:
		return numericComponent(x, index)
	case uint:
		return unsignedComponent(uint64(x), index)
	case uint8:
		return unsignedComponent(uint64(x), index)
	case uint16:
		return unsignedComponent(uint64(x), index)
	case uint32:
		return unsignedComponent(uint64(x), index)
	case uint64:
		return unsignedComponent(x, index)
	case float32:
		return floatComponent(float64(x), index)
	case float64:
		return floatComponent(x, index)
	}
	return Component{}, formatIssue(CodeUnsupportedValue, index, fmt.Sprint(v), map[string]any{"type": typeName(v)})
}

func numericComponent(n int64, index int) (Component, Issues) {
	if index == 0 {
		return Component{}, formatIssue(CodeNumericFirst, index, strconv.FormatInt(n, 10), nil)
	}
	if n < 0 {
		return Component{}, formatIssue(CodeNegative, index, strconv.FormatInt(n, 10), nil)
	}
	return unsignedComponent(uint64(n), index)
}

func unsignedComponent(n uint64, index int) (Component, Issues) {
	if index == 0 {
		return Component{}, formatIssue(CodeNumericFirst, index, strconv.FormatUint(n, 10), nil)
	}
	if n > math.MaxUint32 {
		return Component{}, formatIssue(CodeOverflow, index, strconv.FormatUint(n, 10), map[string]any{"max": uint64(math.MaxUint32)})
	}
	return Num(uint32(n)), nil
}

func floatComponent(f float64, index int) (Component, Issues) {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if index == 0 {
		return Component{}, formatIssue(CodeNumericFirst, index, s, nil)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return Component{}, formatIssue(CodeFractional, index, s, nil)
	}
	if f < 0 {
		return Component{}, formatIssue(CodeNegative, index, s, nil)
	}
	if f > math.MaxUint32 {
		return Component{}, formatIssue(CodeOverflow, index, s, map[string]any{"max": uint64(math.MaxUint32)})
	}
	return Num(uint32(f)), nil
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}
