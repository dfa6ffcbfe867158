// Package listing holds the search and category filter behind the
// algorithm list screen.
package listing

import (
	"strings"

	"github.com/csheth/algoscout/internal/catalog"
)

// State is the list screen's filter input.
type State struct {
	SearchTerm string
	Category   catalog.CategoryID
}

// NewState returns an unfiltered state.
func NewState() State {
	return State{Category: catalog.AllCategories}
}

// Reset clears both the search term and the category filter.
func (s *State) Reset() {
	s.SearchTerm = ""
	s.Category = catalog.AllCategories
}

// Active reports whether any filter narrows the list.
func (s State) Active() bool {
	return s.SearchTerm != "" || (s.Category != catalog.AllCategories && s.Category != "")
}

// Apply filters algs with the current state.
func (s State) Apply(algs []catalog.Algorithm) []catalog.Algorithm {
	return Filter(algs, s.SearchTerm, s.Category)
}

// CycleCategory moves the category filter through "all" followed by
// categories, wrapping in both directions.
func (s *State) CycleCategory(categories []catalog.Category, delta int) {
	options := make([]catalog.CategoryID, 0, len(categories)+1)
	options = append(options, catalog.AllCategories)
	for _, category := range categories {
		options = append(options, category.ID)
	}
	current := 0
	for i, option := range options {
		if option == s.Category {
			current = i
			break
		}
	}
	next := (current + delta) % len(options)
	if next < 0 {
		next += len(options)
	}
	s.Category = options[next]
}

// Filter keeps entries whose category matches and whose name or description
// contains searchTerm case-insensitively. Order is preserved. An empty term
// matches everything; an empty category is treated as "all".
func Filter(algs []catalog.Algorithm, searchTerm string, category catalog.CategoryID) []catalog.Algorithm {
	needle := strings.ToLower(searchTerm)
	out := make([]catalog.Algorithm, 0, len(algs))
	for _, alg := range algs {
		if category != catalog.AllCategories && category != "" && alg.Category != category {
			continue
		}
		if !strings.Contains(strings.ToLower(alg.Name), needle) &&
			!strings.Contains(strings.ToLower(alg.Description), needle) {
			continue
		}
		out = append(out, alg)
	}
	return out
}
