package tui

import (
	"strings"

	"github.com/mrz1836/tows/internal/domain"
)

// Selected returns the entries whose flag is set, in display order.
// flags is indexed like entries; missing flags count as unselected.
func Selected(entries []domain.Dependency, flags []bool) []domain.Dependency {
	out := make([]domain.Dependency, 0, len(entries))
	for i, dep := range entries {
		if i < len(flags) && flags[i] {
			out = append(out, dep)
		}
	}
	return out
}

// Tokens joins the "name@version" tokens of deps with a single space.
func Tokens(deps []domain.Dependency) string {
	tokens := make([]string, len(deps))
	for i, dep := range deps {
		tokens[i] = dep.Token()
	}
	return strings.Join(tokens, " ")
}
