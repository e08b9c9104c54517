// Package catalog holds named identifier templates. A Catalog replaces
// package-level registries of "common" templates with an explicit value that
// callers load once and pass around.
package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/reoring/domid"
)

// ErrUnknownTemplate is returned when a name is not registered.
var ErrUnknownTemplate = errors.New("catalog: unknown template")

// ErrDuplicateTemplate is returned when a name is registered twice.
var ErrDuplicateTemplate = errors.New("catalog: duplicate template")

// Catalog maps names to templates. It is safe for concurrent readers once
// populated; Register must not run concurrently with other methods.
type Catalog struct {
	templates map[string]domid.Template
	names     []string // sorted
}

// New returns an empty Catalog.
func New() *Catalog {
	return &Catalog{templates: map[string]domid.Template{}}
}

// Register validates t and adds it under name.
func (c *Catalog) Register(name string, t domid.Template) error {
	if name == "" {
		return errors.New("catalog: template name is empty")
	}
	if _, ok := c.templates[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateTemplate, name)
	}
	if err := t.Validate(); err != nil {
		return fmt.Errorf("catalog: template %q: %w", name, err)
	}
	c.templates[name] = append(domid.Template(nil), t...)
	i := sort.SearchStrings(c.names, name)
	c.names = append(c.names, "")
	copy(c.names[i+1:], c.names[i:])
	c.names[i] = name
	return nil
}

// Template returns a copy of the template registered under name.
func (c *Catalog) Template(name string) (domid.Template, bool) {
	t, ok := c.templates[name]
	if !ok {
		return nil, false
	}
	return append(domid.Template(nil), t...), true
}

// Names lists the registered names in sorted order.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.names...)
}

func (c *Catalog) Len() int { return len(c.names) }

func (c *Catalog) lookup(name string) (domid.Template, error) {
	t, ok := c.templates[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}
	return t, nil
}

// Build fills the named template with params.
func (c *Catalog) Build(name string, params ...any) (string, error) {
	t, err := c.lookup(name)
	if err != nil {
		return "", err
	}
	return domid.BuildFromTemplate(t, params...)
}

// Extract returns the wildcard values of id under the named template.
func (c *Catalog) Extract(name, id string) ([]string, error) {
	t, err := c.lookup(name)
	if err != nil {
		return nil, err
	}
	return domid.ExtractValues(t, id)
}

// ExtractLast returns the trailing wildcard value of id under the named template.
func (c *Catalog) ExtractLast(name, id string) (string, error) {
	t, err := c.lookup(name)
	if err != nil {
		return "", err
	}
	return domid.ExtractLastValue(t, id)
}

// Matches reports whether id has the shape of the named template.
func (c *Catalog) Matches(name, id string) (bool, error) {
	t, err := c.lookup(name)
	if err != nil {
		return false, err
	}
	return domid.MatchesTemplate(t, id)
}

// Resolve finds the first template, in name order, that id matches and
// returns its name with the extracted wildcard values.
func (c *Catalog) Resolve(id string) (name string, values []string, ok bool) {
	for _, n := range c.names {
		t := c.templates[n]
		if !domid.Matches(t, id) {
			continue
		}
		vs, err := domid.ExtractValues(t, id)
		if err != nil {
			continue
		}
		return n, vs, true
	}
	return "", nil, false
}
