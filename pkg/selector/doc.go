// Package selector builds CSS selector strings through a fluent, chainable API
// while enforcing the ordering and uniqueness rules of the CSS selector grammar.
//
// A selector is assembled from typed fragments (element, id, class, attribute,
// pseudo-class, pseudo-element) appended in the order the CSS specification
// requires. The builder validates every append: fragments must arrive in
// non-decreasing category order, and the element, id, and pseudo-element
// categories may appear at most once per selector. Class and attribute
// fragments may repeat. Two finished selectors can be joined with a combinator
// token into a composite selector.
//
// # Features
//
// The builder supports:
//   - All six fragment categories with their CSS prefixes (#, ., [], :, ::)
//   - Ordering validation against the fixed category order
//   - Singleton enforcement for element, id, and pseudo-element
//   - Combinator composition of two built selectors (descendant, +, ~, >)
//   - Fixed, match-stable error messages for both violation kinds
//
// # Usage
//
// Start a chain from any of the package-level entry points:
//
//	import "github.com/dmitrymomot/csskit/pkg/selector"
//
//	s, err := selector.ID("main").Class("container").Class("editable").Build()
//	// s == "#main.container.editable"
//
//	s, err := selector.Element("a").Attr(`href$=".png"`).PseudoClass("focus").Build()
//	// s == `a[href$=".png"]:focus`
//
// Composite selectors join two builders with a combinator token:
//
//	s, err := selector.Combine(
//		selector.Element("p").PseudoClass("focus"),
//		">",
//		selector.Element("a"),
//	).Build()
//	// s == "p:focus > a"
//
// # Error Handling
//
// Violations are latched on the builder: the first invalid append records the
// error, subsequent appends become no-ops, and Build returns the recorded
// error. Check a chain mid-flight with Err, or use MustBuild when the chain is
// known to be valid (fixtures, static selectors).
//
// Fragment values and combinator tokens are inserted verbatim. The package
// constructs selector strings only; it never parses, escapes, or validates
// CSS syntax inside a fragment.
package selector
