package domain

import (
	"cmp"
	"slices"
)

// Sort returns the dependencies of set in display order.
//
// The sequence is sorted ascending by (kind priority, name) and then reversed,
// so runtime dependencies come first, then development, then peer, and names
// run in descending order within each kind.
func Sort(set Set) []Dependency {
	deps := make([]Dependency, 0, len(set))
	for _, dep := range set {
		deps = append(deps, dep)
	}

	slices.SortStableFunc(deps, func(a, b Dependency) int {
		return cmp.Or(
			cmp.Compare(a.Kind.Priority(), b.Kind.Priority()),
			cmp.Compare(a.Name, b.Name),
		)
	})
	slices.Reverse(deps)

	return deps
}
