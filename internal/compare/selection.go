// Package compare implements the side-by-side comparison: an ordered,
// capped selection of algorithm ids and the pivot table built from it.
package compare

import (
	"slices"

	"github.com/csheth/algoscout/internal/catalog"
)

// MaxSelected caps how many algorithms can be compared at once.
const MaxSelected = 4

// Selection is the ordered set of compared ids plus the picker flag.
type Selection struct {
	ids          []string
	selectorOpen bool
}

// Add appends id and closes the picker. It is a no-op when the selection is
// full or already holds id.
func (s *Selection) Add(id string) bool {
	if len(s.ids) >= MaxSelected || slices.Contains(s.ids, id) {
		return false
	}
	s.ids = append(s.ids, id)
	s.selectorOpen = false
	return true
}

// Remove drops id without reordering the rest. Absent ids are ignored.
func (s *Selection) Remove(id string) bool {
	idx := slices.Index(s.ids, id)
	if idx < 0 {
		return false
	}
	s.ids = slices.Delete(s.ids, idx, idx+1)
	return true
}

// IDs returns the selection in the order it was built.
func (s *Selection) IDs() []string {
	return slices.Clone(s.ids)
}

func (s *Selection) Len() int { return len(s.ids) }

func (s *Selection) Empty() bool { return len(s.ids) == 0 }

// Full reports whether the add affordance should be hidden.
func (s *Selection) Full() bool { return len(s.ids) >= MaxSelected }

func (s *Selection) Contains(id string) bool { return slices.Contains(s.ids, id) }

func (s *Selection) SelectorOpen() bool { return s.selectorOpen }

// ToggleSelector flips the picker, which never opens on a full selection.
func (s *Selection) ToggleSelector() {
	if s.Full() {
		s.selectorOpen = false
		return
	}
	s.selectorOpen = !s.selectorOpen
}

func (s *Selection) CloseSelector() { s.selectorOpen = false }

// Available returns the entries not yet selected, in catalog order.
func (s *Selection) Available(algs []catalog.Algorithm) []catalog.Algorithm {
	out := make([]catalog.Algorithm, 0, len(algs))
	for _, alg := range algs {
		if !s.Contains(alg.ID) {
			out = append(out, alg)
		}
	}
	return out
}
