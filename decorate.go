package metaobj

import (
	"github.com/asaskevich/govalidator"
	"github.com/metaobj-go/metaobj/internal/slices"
)

type (
	// Combinator produces a wrapped method from an original.
	Combinator func(original Handler) Handler

	// Selector decides whether a method name is decorated.
	Selector func(name string) bool
)

// Named selects methods by exact name.
func Named(names ...string) Selector {
	return func(name string) bool {
		return slices.Contains(names, name)
	}
}

// MatchPattern selects method names matching the regular expression.
func MatchPattern(pattern string) Selector {
	return func(name string) bool {
		return govalidator.Matches(name, pattern)
	}
}

// Decorate replaces the selected methods of the source with
// combinator-wrapped versions and carries every other method
// through unchanged.  An empty selector list selects every method.
// The source is never mutated and remains independently usable;
// decorating an already decorated metaobject simply treats it as
// the new source.
func Decorate(
	combinator Combinator,
	meta       *Metaobject,
	selectors  ...Selector,
) *Metaobject {
	if combinator == nil {
		panic("combinator cannot be nil")
	}
	if meta == nil {
		panic("meta cannot be nil")
	}
	methods := make(map[string]Handler, len(meta.methods))
	for name, handler := range meta.methods {
		if selected(name, selectors) {
			methods[name] = combinator(handler)
		} else {
			methods[name] = handler
		}
	}
	return &Metaobject{methods}
}

func selected(name string, selectors []Selector) bool {
	if len(selectors) == 0 {
		return true
	}
	for _, selector := range selectors {
		if selector != nil && selector(name) {
			return true
		}
	}
	return false
}
