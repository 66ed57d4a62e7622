package selector

// Category identifies the kind of a selector fragment. The constant order is
// the order the CSS grammar requires fragments to appear in, so categories
// compare directly with < and >.
type Category int

const (
	categoryNone Category = iota // zero value: nothing appended yet

	CategoryElement
	CategoryID
	CategoryClass
	CategoryAttr
	CategoryPseudoClass
	CategoryPseudoElement
)

// categoryFormat maps each category to the decoration its fragment value
// receives in the output string.
var categoryFormat = [...]struct {
	prefix string
	suffix string
}{
	CategoryElement:       {"", ""},
	CategoryID:            {"#", ""},
	CategoryClass:         {".", ""},
	CategoryAttr:          {"[", "]"},
	CategoryPseudoClass:   {":", ""},
	CategoryPseudoElement: {"::", ""},
}

// singleton reports whether the category may occur at most once per selector.
func (c Category) singleton() bool {
	switch c {
	case CategoryElement, CategoryID, CategoryPseudoElement:
		return true
	default:
		return false
	}
}

// String returns the category name as used in the ordering error message.
func (c Category) String() string {
	switch c {
	case CategoryElement:
		return "element"
	case CategoryID:
		return "id"
	case CategoryClass:
		return "class"
	case CategoryAttr:
		return "attribute"
	case CategoryPseudoClass:
		return "pseudo-class"
	case CategoryPseudoElement:
		return "pseudo-element"
	default:
		return "none"
	}
}
