package domid_test

import (
	"errors"
	"testing"

	"github.com/reoring/domid"
)

func codeOf(t *testing.T, err error) string {
	t.Helper()
	iss, ok := domid.AsIssues(err)
	if !ok || len(iss) == 0 {
		t.Fatalf("expected Issues, got %v", err)
	}
	return iss[0].Code
}

func TestBuild_Basic(t *testing.T) {
	id, err := domid.Build("a", "b")
	if err != nil || id != "a-b" {
		t.Fatalf("Build(a, b) = %q, %v", id, err)
	}
	id, err = domid.Build("a", "b1")
	if err != nil || id != "a-b1" {
		t.Fatalf("Build(a, b1) = %q, %v", id, err)
	}
	id, err = domid.Build("a", 43)
	if err != nil || id != "a-43" {
		t.Fatalf("Build(a, 43) = %q, %v", id, err)
	}
	id, err = domid.Build("tab", uint8(7), int64(0), 2.0, domid.Num(9))
	if err != nil || id != "tab-7-0-2-9" {
		t.Fatalf("mixed numeric kinds = %q, %v", id, err)
	}
}

func TestBuild_FirstCharacterRule(t *testing.T) {
	_, err := domid.Build("1abc")
	if !errors.Is(err, domid.ErrFormat) || codeOf(t, err) != domid.CodeInvalidComponent {
		t.Fatalf("expected invalid_component, got %v", err)
	}
	iss, _ := domid.AsIssues(err)
	if iss[0].Index != 0 || iss[0].Value != "1abc" {
		t.Fatalf("expected offending index and value, got %+v", iss[0])
	}
}

func TestBuild_NumericRules(t *testing.T) {
	cases := []struct {
		name   string
		values []any
		code   string
	}{
		{"numeric first", []any{43, "a"}, domid.CodeNumericFirst},
		{"negative first", []any{-1, "x"}, domid.CodeNumericFirst},
		{"fractional first", []any{1.5, "x"}, domid.CodeNumericFirst},
		{"negative", []any{"x", -1}, domid.CodeNegative},
		{"fractional", []any{"x", 1.5}, domid.CodeFractional},
		{"overflow", []any{"x", int64(1) << 40}, domid.CodeOverflow},
		{"unsupported", []any{"x", true}, domid.CodeUnsupportedValue},
		{"empty component", []any{"x", ""}, domid.CodeInvalidComponent},
		{"separator inside component", []any{"x", "a-b"}, domid.CodeInvalidComponent},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := domid.Build(c.values...)
			if !errors.Is(err, domid.ErrFormat) {
				t.Fatalf("expected format error, got %v", err)
			}
			if got := codeOf(t, err); got != c.code {
				t.Fatalf("expected %s, got %s (%v)", c.code, got, err)
			}
		})
	}
}

func TestBuild_Empty(t *testing.T) {
	if _, err := domid.Build(); codeOf(t, err) != domid.CodeEmpty {
		t.Fatalf("expected empty error")
	}
	if _, err := domid.BuildComponents(); codeOf(t, err) != domid.CodeEmpty {
		t.Fatalf("expected empty error")
	}
}

func TestBuildComponents(t *testing.T) {
	id, err := domid.BuildComponents(domid.Str("row"), domid.Num(12))
	if err != nil || id != "row-12" {
		t.Fatalf("BuildComponents = %q, %v", id, err)
	}
	if _, err := domid.BuildComponents(domid.Num(1)); codeOf(t, err) != domid.CodeNumericFirst {
		t.Fatalf("expected numeric_first")
	}
}

func TestSafeBuild(t *testing.T) {
	if id, ok := domid.SafeBuild("a", 1); !ok || id != "a-1" {
		t.Fatalf("SafeBuild = %q, %v", id, ok)
	}
	if _, ok := domid.SafeBuild(1); ok {
		t.Fatalf("expected SafeBuild to fail")
	}
}

func TestBuildFromTemplate(t *testing.T) {
	tpl := domid.MustTemplate("a", "b", nil, "c", nil)
	id, err := domid.BuildFromTemplate(tpl, 3, 1343)
	if err != nil || id != "a-b-3-c-1343" {
		t.Fatalf("BuildFromTemplate = %q, %v", id, err)
	}

	// Wildcard at position 0 is filled with the same rules as Build.
	head := domid.MustTemplate(nil, "x")
	if id, err := domid.BuildFromTemplate(head, "tab"); err != nil || id != "tab-x" {
		t.Fatalf("wildcard head = %q, %v", id, err)
	}
	if _, err := domid.BuildFromTemplate(head, 4); codeOf(t, err) != domid.CodeNumericFirst {
		t.Fatalf("expected numeric_first for numeric head parameter")
	}
	if _, err := domid.BuildFromTemplate(tpl, 3, -1); codeOf(t, err) != domid.CodeNegative {
		t.Fatalf("expected negative parameter to be rejected")
	}
}

func TestBuildFromTemplate_ParameterCount(t *testing.T) {
	two := domid.MustTemplate(nil, nil)
	_, err := domid.BuildFromTemplate(two, "only")
	if codeOf(t, err) != domid.CodeTooFewParams {
		t.Fatalf("expected too_few_params, got %v", err)
	}
	iss, _ := domid.AsIssues(err)
	if iss[0].Params["required"] != 2 || iss[0].Params["supplied"] != 1 {
		t.Fatalf("expected counts in params, got %v", iss[0].Params)
	}

	one := domid.MustTemplate(nil)
	_, err = domid.BuildFromTemplate(one, "a", "b")
	if codeOf(t, err) != domid.CodeTooManyParams {
		t.Fatalf("expected too_many_params, got %v", err)
	}
}

func TestBuildFromTemplate_MalformedTemplate(t *testing.T) {
	bad := domid.Template{domid.Numeric(1), domid.Literal("a")}
	if _, err := domid.BuildFromTemplate(bad); codeOf(t, err) != domid.CodeNumericFirst {
		t.Fatalf("expected numeric_first for malformed template, got %v", err)
	}
	if _, err := domid.BuildFromTemplate(nil); codeOf(t, err) != domid.CodeEmpty {
		t.Fatalf("expected empty template error, got %v", err)
	}
}

func TestNewTemplate(t *testing.T) {
	tpl, err := domid.NewTemplate("tab", nil, 3, domid.Wildcard)
	if err != nil {
		t.Fatalf("NewTemplate: %v", err)
	}
	if tpl.String() != "tab-*-3-*" || tpl.Wildcards() != 2 {
		t.Fatalf("unexpected template %s (%d wildcards)", tpl, tpl.Wildcards())
	}
	if _, err := domid.NewTemplate(3, "a"); codeOf(t, err) != domid.CodeNumericFirst {
		t.Fatalf("expected numeric_first")
	}
	if _, err := domid.NewTemplate("a", 2.5); codeOf(t, err) != domid.CodeFractional {
		t.Fatalf("expected fractional")
	}
	if _, err := domid.NewTemplate("9a"); codeOf(t, err) != domid.CodeInvalidComponent {
		t.Fatalf("expected invalid_component")
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("expected MustTemplate to panic")
		}
	}()
	domid.MustTemplate()
}

func TestComponentOf(t *testing.T) {
	c, err := domid.ComponentOf(uint16(12))
	if err != nil {
		t.Fatalf("ComponentOf: %v", err)
	}
	if n, ok := c.Number(); !ok || n != 12 || c.String() != "12" {
		t.Fatalf("unexpected component %#v", c)
	}
	c, _ = domid.ComponentOf("row")
	if c.IsNumeric() || c.String() != "row" {
		t.Fatalf("unexpected component %#v", c)
	}
	if _, err := domid.ComponentOf(-3); !errors.Is(err, domid.ErrFormat) {
		t.Fatalf("expected negative to fail, got %v", err)
	}
}
