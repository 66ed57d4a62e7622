package selector

import "errors"

// Validation errors. The message texts are part of the public contract and
// must stay byte-for-byte stable: callers are known to match on them.
var (
	// ErrDuplicateSingleton is returned when a second element, id, or
	// pseudo-element fragment is appended to the same builder.
	ErrDuplicateSingleton = errors.New("Element, id and pseudo-element should not occur more then one time inside the selector")

	// ErrOrderViolation is returned when a fragment is appended after a
	// fragment of a later category.
	ErrOrderViolation = errors.New("Selector parts should be arranged in the following order: element, id, class, attribute, pseudo-class, pseudo-element")
)
