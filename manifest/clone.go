package manifest

import "maps"

// WithReplacedDependenciesAndTargets returns a fresh Manifest carrying deps
// and targets in place of m's, with every other field copied by value. It is
// the single place that knows the manifest's full field list, so the
// rewriter never has to repeat it and a schema change only has one call site
// to update.
func (m *Manifest) WithReplacedDependenciesAndTargets(deps []Dependency, targets []Target) *Manifest {
	out := *m
	out.Dependencies = deps
	out.Targets = targets
	out.Platforms = cloneStrings(m.Platforms)
	out.Products = cloneStrings(m.Products)
	out.Traits = cloneStrings(m.Traits)
	if m.Extra != nil {
		out.Extra = maps.Clone(m.Extra)
	}
	return &out
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
