package selector

import "strings"

// Builder accumulates selector fragments into a single selector string.
// The zero value is ready to use; chains normally start from one of the
// package-level entry points below. A Builder is not safe for concurrent use
// and is meant to be discarded after Build.
type Builder struct {
	out  strings.Builder
	last Category
	seen [CategoryPseudoElement + 1]bool
	err  error
}

// Element starts a selector with an element fragment, e.g. "div".
func Element(value string) *Builder { return new(Builder).Element(value) }

// ID starts a selector with an id fragment, e.g. "#main".
func ID(value string) *Builder { return new(Builder).ID(value) }

// Class starts a selector with a class fragment, e.g. ".container".
func Class(value string) *Builder { return new(Builder).Class(value) }

// Attr starts a selector with an attribute fragment, e.g. "[href]".
func Attr(value string) *Builder { return new(Builder).Attr(value) }

// PseudoClass starts a selector with a pseudo-class fragment, e.g. ":focus".
func PseudoClass(value string) *Builder { return new(Builder).PseudoClass(value) }

// PseudoElement starts a selector with a pseudo-element fragment, e.g. "::after".
func PseudoElement(value string) *Builder { return new(Builder).PseudoElement(value) }

// Combine joins two built selectors with a combinator token into a new
// builder holding "<left> <combinator> <right>". The token is inserted
// verbatim between single spaces; it is not checked against the four CSS
// combinators (" ", "+", "~", ">"), so any token the caller supplies ends up
// in the output unchanged. A violation recorded on either side propagates to
// the combined builder.
func Combine(left *Builder, combinator string, right *Builder) *Builder {
	b := new(Builder)

	lt, err := left.Build()
	if err != nil {
		b.err = err
		return b
	}
	rt, err := right.Build()
	if err != nil {
		b.err = err
		return b
	}

	b.out.WriteString(lt)
	b.out.WriteString(" ")
	b.out.WriteString(combinator)
	b.out.WriteString(" ")
	b.out.WriteString(rt)
	return b
}

// Element appends an element fragment. At most one per selector.
func (b *Builder) Element(value string) *Builder { return b.append(CategoryElement, value) }

// ID appends an id fragment as "#value". At most one per selector.
func (b *Builder) ID(value string) *Builder { return b.append(CategoryID, value) }

// Class appends a class fragment as ".value". Repeatable.
func (b *Builder) Class(value string) *Builder { return b.append(CategoryClass, value) }

// Attr appends an attribute fragment as "[value]". Repeatable.
func (b *Builder) Attr(value string) *Builder { return b.append(CategoryAttr, value) }

// PseudoClass appends a pseudo-class fragment as ":value". Repeatable.
func (b *Builder) PseudoClass(value string) *Builder { return b.append(CategoryPseudoClass, value) }

// PseudoElement appends a pseudo-element fragment as "::value". At most one
// per selector.
func (b *Builder) PseudoElement(value string) *Builder { return b.append(CategoryPseudoElement, value) }

// Build returns the accumulated selector string, or the first validation
// error recorded on the chain.
func (b *Builder) Build() (string, error) {
	if b.err != nil {
		return "", b.err
	}
	return b.out.String(), nil
}

// MustBuild returns the accumulated selector string and panics on a recorded
// validation error. Intended for static selectors and test fixtures where the
// chain is known to be valid.
func (b *Builder) MustBuild() string {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// Err returns the first validation error recorded on the chain, or nil.
func (b *Builder) Err() error {
	return b.err
}

// append validates the fragment against the singleton and ordering rules,
// then writes its decorated value. Once a violation is recorded the builder
// latches it and every later append is a no-op, so Build reports the first
// violation in the chain.
func (b *Builder) append(c Category, value string) *Builder {
	if b.err != nil {
		return b
	}
	if b.seen[c] && c.singleton() {
		b.err = ErrDuplicateSingleton
		return b
	}
	// The first append always passes: categoryNone orders before everything.
	if c < b.last {
		b.err = ErrOrderViolation
		return b
	}

	b.seen[c] = true
	b.last = c

	f := categoryFormat[c]
	b.out.WriteString(f.prefix)
	b.out.WriteString(value)
	b.out.WriteString(f.suffix)
	return b
}
