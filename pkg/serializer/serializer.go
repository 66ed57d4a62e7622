package serializer

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Serialization errors
var (
	ErrMarshal   = errors.New("failed to marshal value")
	ErrUnmarshal = errors.New("failed to unmarshal value")
)

// Marshal renders v as compact JSON text.
func Marshal(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMarshal, err)
	}
	return string(data), nil
}

// Unmarshal reconstructs a value of type T from JSON text. Decoding is
// strict: fields not declared on T are rejected.
func Unmarshal[T any](data string) (T, error) {
	var v T

	dec := json.NewDecoder(strings.NewReader(data))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&v); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %v", ErrUnmarshal, err)
	}
	return v, nil
}

// Clone deep-copies v through its JSON text representation. Only fields that
// survive a JSON round trip are carried over.
func Clone[T any](v T) (T, error) {
	data, err := Marshal(v)
	if err != nil {
		var zero T
		return zero, err
	}
	return Unmarshal[T](data)
}
