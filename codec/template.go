package codec

import (
	"context"

	"github.com/reoring/domid"
)

// Template returns a Codec that converts between identifiers shaped like t and
// the values of its wildcard slots.
func Template(t domid.Template) domid.Codec[string, []string] {
	return &templateCodec{t: t}
}

type templateCodec struct {
	t domid.Template
}

func (c *templateCodec) Decode(ctx context.Context, id string) ([]string, error) {
	return domid.ExtractValues(c.t, id)
}

func (c *templateCodec) Encode(ctx context.Context, values []string) (string, error) {
	params := make([]any, len(values))
	for i, v := range values {
		params[i] = v
	}
	return domid.BuildFromTemplate(c.t, params...)
}

// LastUint returns a Codec for templates whose only wildcard is the last
// slot, such as "project-row-*". Decode yields the trailing number.
func LastUint(t domid.Template) domid.Codec[string, uint32] {
	return &lastUintCodec{t: t}
}

type lastUintCodec struct {
	t domid.Template
}

func (c *lastUintCodec) Decode(ctx context.Context, id string) (uint32, error) {
	return domid.ExtractLastUint(c.t, id)
}

func (c *lastUintCodec) Encode(ctx context.Context, n uint32) (string, error) {
	return domid.BuildFromTemplate(c.t, n)
}
