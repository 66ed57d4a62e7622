// Package serializer provides JSON round-trip helpers for arbitrary
// structured values.
//
// Marshal renders a value as JSON text, Unmarshal reconstructs a typed value
// from JSON text with the target shape supplied as a type parameter, and
// Clone composes the two into a deep copy through the text representation.
// Unmarshal runs in strict mode: fields in the input that the target type
// does not declare are rejected rather than dropped.
//
// # Usage
//
//	import "github.com/dmitrymomot/csskit/pkg/serializer"
//
//	type Point struct {
//		X int `json:"x"`
//		Y int `json:"y"`
//	}
//
//	text, err := serializer.Marshal(Point{X: 1, Y: 2})
//	// text == `{"x":1,"y":2}`
//
//	p, err := serializer.Unmarshal[Point](`{"x":1,"y":2}`)
//	// p == Point{X: 1, Y: 2}
//
// Failures wrap the package sentinels ErrMarshal and ErrUnmarshal, so callers
// branch with errors.Is while the wrapped message keeps the decoder detail.
package serializer
