package codec

import (
	"context"

	"github.com/reoring/domid"
)

// Identifier returns a Codec between an identifier and its typed components.
// Decode checks and splits via domid.Parse; Encode validates and joins via
// domid.BuildComponents.
func Identifier() domid.Codec[string, []domid.Component] {
	return identifierCodec{}
}

type identifierCodec struct{}

func (identifierCodec) Decode(ctx context.Context, id string) ([]domid.Component, error) {
	return domid.Parse(id)
}

func (identifierCodec) Encode(ctx context.Context, cs []domid.Component) (string, error) {
	return domid.BuildComponents(cs...)
}
