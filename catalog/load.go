package catalog

import (
	"context"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"sort"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/reoring/domid"
	"github.com/reoring/domid/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

// document is the YAML/JSON shape:
//
//	templates:
//	  tab: [tab, ~]
//	  projectRow: [project, row, ~]
//
// A null slot is a wildcard, a string a literal and an integer a numeric slot.
type document struct {
	Templates map[string][]any `json:"templates" yaml:"templates"`
}

// hclDocument is the HCL shape:
//
//	template "tab" {
//	  slots = ["tab", null]
//	}
type hclDocument struct {
	Templates []*hclTemplate `hcl:"template,block"`
}

type hclTemplate struct {
	Name  string    `hcl:"name,label"`
	Slots cty.Value `hcl:"slots"`
}

// FromYAML parses a YAML catalog document.
func FromYAML(ctx context.Context, data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("catalog: decode yaml: %w", err)
	}
	return fromDocument(ctx, "yaml", doc.Templates)
}

// FromJSON parses a JSON catalog document.
func FromJSON(ctx context.Context, data []byte) (*Catalog, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("catalog: decode json: %w", err)
	}
	return fromDocument(ctx, "json", doc.Templates)
}

// FromHCL parses an HCL catalog document. filename is used in diagnostics.
func FromHCL(ctx context.Context, data []byte, filename string) (*Catalog, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("catalog: failed to parse HCL file %s: %w", filename, diags)
	}
	var doc hclDocument
	diags = gohcl.DecodeBody(file.Body, nil, &doc)
	if diags.HasErrors() {
		return nil, fmt.Errorf("catalog: failed to decode HCL file %s: %w", filename, diags)
	}
	templates := make(map[string][]any, len(doc.Templates))
	for _, t := range doc.Templates {
		if _, dup := templates[t.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTemplate, t.Name)
		}
		slots, err := ctySlots(t.Slots)
		if err != nil {
			return nil, fmt.Errorf("catalog: template %q: %w", t.Name, err)
		}
		templates[t.Name] = slots
	}
	return fromDocument(ctx, "hcl", templates)
}

// LoadFile reads a catalog, choosing the decoder by file extension
// (.yaml, .yml, .json or .hcl).
func LoadFile(ctx context.Context, path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FromYAML(ctx, data)
	case ".json":
		return FromJSON(ctx, data)
	case ".hcl":
		return FromHCL(ctx, data, path)
	}
	return nil, fmt.Errorf("catalog: unsupported file extension %q", filepath.Ext(path))
}

func fromDocument(ctx context.Context, format string, templates map[string][]any) (*Catalog, error) {
	logger := ctxlog.FromContext(ctx)
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)

	c := New()
	for _, name := range names {
		t, err := domid.NewTemplate(templates[name]...)
		if err != nil {
			logger.Debug("Rejected catalog template.", "format", format, "name", name, "error", err)
			return nil, fmt.Errorf("catalog: template %q: %w", name, err)
		}
		if err := c.Register(name, t); err != nil {
			return nil, err
		}
		logger.Debug("Registered catalog template.", "name", name, "template", t.String())
	}
	logger.Debug("Catalog loaded.", "format", format, "templates", c.Len())
	return c, nil
}

// ctySlots converts an HCL list or tuple into untyped slot values.
func ctySlots(v cty.Value) ([]any, error) {
	if v.IsNull() || !v.IsWhollyKnown() {
		return nil, fmt.Errorf("slots must be a known list")
	}
	ty := v.Type()
	if !ty.IsTupleType() && !ty.IsListType() {
		return nil, fmt.Errorf("slots must be a list, got %s", ty.FriendlyName())
	}
	var out []any
	for it := v.ElementIterator(); it.Next(); {
		_, ev := it.Element()
		switch {
		case ev.IsNull():
			out = append(out, nil)
		case ev.Type() == cty.String:
			out = append(out, ev.AsString())
		case ev.Type() == cty.Number:
			bf := ev.AsBigFloat()
			if i, acc := bf.Int64(); bf.IsInt() && acc == big.Exact {
				out = append(out, i)
			} else {
				f, _ := bf.Float64()
				out = append(out, f)
			}
		default:
			return nil, fmt.Errorf("unsupported slot type %s", ev.Type().FriendlyName())
		}
	}
	return out, nil
}
