package suite

import (
	"slices"
	"sort"
)

// FeatureSet is the set of feature names test files may query.
type FeatureSet map[string]struct{}

// NewFeatureSet returns a set holding the given features.
func NewFeatureSet(features ...string) FeatureSet {
	set := make(FeatureSet, len(features))
	for _, f := range features {
		set.Add(f)
	}
	return set
}

// Add inserts a feature, allocating the set on first use. Empty names are ignored.
func (s *FeatureSet) Add(feature string) {
	if feature == "" {
		return
	}
	if *s == nil {
		*s = make(FeatureSet)
	}
	(*s)[feature] = struct{}{}
}

// Has reports whether the feature is available.
func (s FeatureSet) Has(feature string) bool {
	_, ok := s[feature]
	return ok
}

// List returns the features in sorted order.
func (s FeatureSet) List() []string {
	list := make([]string, 0, len(s))
	for f := range s {
		list = append(list, f)
	}
	sort.Strings(list)
	return list
}

// Requires returns the requested features the suite does not provide, in request order.
func (c *Config) Requires(features ...string) []string {
	var missing []string
	for _, f := range features {
		if !c.AvailableFeatures.Has(f) && !slices.Contains(missing, f) {
			missing = append(missing, f)
		}
	}
	return missing
}
