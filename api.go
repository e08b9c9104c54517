package domid

import "context"

// Codec performs bidirectional transformation between the wire form A (an
// identifier string) and the domain form B. Implementations live in package
// codec.
type Codec[A, B any] interface {
	Decode(ctx context.Context, a A) (B, error) // Identifier -> values.
	Encode(ctx context.Context, b B) (A, error) // Values -> identifier.
}

// Decode is a convenience wrapper over Codec.Decode.
func Decode[A, B any](ctx context.Context, c Codec[A, B], a A) (B, error) {
	return c.Decode(ctx, a)
}

// Encode is a convenience wrapper over Codec.Encode.
func Encode[A, B any](ctx context.Context, c Codec[A, B], b B) (A, error) {
	return c.Encode(ctx, b)
}
