// Package shape provides simple geometric value objects.
//
// Shapes are plain immutable value types: construct one with its dimensions
// and read the derived measurements. No validation is applied to the inputs;
// callers own the meaning of negative or zero dimensions.
//
// # Usage
//
//	import "github.com/dmitrymomot/csskit/pkg/shape"
//
//	r := shape.NewRectangle(10, 20)
//	area := r.Area()      // 200
//	perim := r.Perimeter() // 60
package shape
