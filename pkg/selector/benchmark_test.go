package selector_test

import (
	"testing"

	"github.com/dmitrymomot/csskit/pkg/selector"
)

func BenchmarkBuilder_Build(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_, err := selector.Element("input").
			ID("email").
			Class("form-control").
			Attr("type=email").
			PseudoClass("required").
			PseudoElement("placeholder").
			Build()
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCombine(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_, err := selector.Combine(
			selector.Element("ul").Class("menu"),
			">",
			selector.Element("li").PseudoClass("first-child"),
		).Build()
		if err != nil {
			b.Fatal(err)
		}
	}
}
