// Package stegano hides text messages in the sample data of raster
// images and recovers them without access to the original. Several
// algorithms trade capacity against visibility; the payload
// subpackage protects messages with a password before embedding and
// the analysis subpackage estimates whether a grid carries one.
package stegano

import "context"

// Encode hides message in a copy of g with the configured algorithm,
// sequential LSB unless WithAlgorithm says otherwise. This is a
// convenience function that creates an Engine and calls its Encode
// method.
func Encode(ctx context.Context, g *Grid, message string, opts ...Option) (*Grid, error) {
	e, err := NewEngine(opts...)
	if err != nil {
		return nil, err
	}
	return e.Encode(ctx, g, message)
}

// Decode recovers a message hidden in g with the configured
// algorithm. This is a convenience function that creates an Engine
// and calls its Decode method.
func Decode(ctx context.Context, g *Grid, opts ...Option) (string, error) {
	e, err := NewEngine(opts...)
	if err != nil {
		return "", err
	}
	return e.Decode(ctx, g)
}
