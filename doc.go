// Package csskit is a small toolkit of front-end string utilities for Go.
//
// Each concern lives in its own focused package under pkg/ and is
// independently importable:
//
//   - pkg/selector: fluent construction of CSS selector strings with
//     grammar-order and uniqueness validation
//   - pkg/shape: simple geometric value objects
//   - pkg/serializer: JSON round-trip helpers for structured values
//
// The toolkit is pure computation: no I/O, no goroutines, no global state.
// Every fallible operation returns an explicit error built on package-level
// sentinels, so callers branch with errors.Is.
package csskit
