package config

import (
	"github.com/imdario/mergo"
	"github.com/metaobj-go/metaobj"
	"github.com/metaobj-go/metaobj/internal/slices"
)

// Trace selects which methods to observe and how verbosely.
// Methods holds regular expression patterns over method names;
// an empty list selects every method.
type Trace struct {
	Methods   []string `path:"methods"`
	Verbosity int      `path:"verbosity"`
}

// LoadTrace populates a Trace from the provider at path.
func LoadTrace(provider Provider, path string) (Trace, error) {
	var trace Trace
	if err := provider.Unmarshal(path, &trace); err != nil {
		return Trace{}, err
	}
	return trace, nil
}

// Merge combines trace profiles, later profiles extending
// earlier ones.
func (t Trace) Merge(others ...Trace) (Trace, error) {
	merged := t
	for _, other := range others {
		if err := mergo.Merge(&merged, other,
			mergo.WithAppendSlice, mergo.WithOverride); err != nil {
			return Trace{}, err
		}
	}
	return merged, nil
}

// Selectors converts the method patterns to selectors.
// A profile with no patterns returns none, which Decorate
// interprets as selecting every method.
func (t Trace) Selectors() []metaobj.Selector {
	patterns := slices.Filter(t.Methods, func(p string) bool {
		return p != ""
	})
	return slices.Map(patterns, func(p string) metaobj.Selector {
		return metaobj.MatchPattern(p)
	})
}
