// Package nav is the top-level view state machine. It owns which screen is
// active and which algorithm the detail screen shows; nothing else mutates
// either value.
package nav

import "strings"

// View names a top-level screen.
type View string

const (
	Home    View = "home"
	List    View = "list"
	Detail  View = "detail"
	Compare View = "compare"
)

// Valid reports whether v is a routable screen.
func (v View) Valid() bool {
	switch v {
	case Home, List, Detail, Compare:
		return true
	default:
		return false
	}
}

// ParseView maps a user supplied name to a view, falling back to Home.
func ParseView(name string) View {
	v := View(strings.ToLower(strings.TrimSpace(name)))
	if v.Valid() {
		return v
	}
	return Home
}

// Shell holds the current view and the selected algorithm id.
type Shell struct {
	current  View
	selected string
}

// NewShell starts on the home screen.
func NewShell() *Shell {
	return &Shell{current: Home}
}

// Navigate switches to target and clears the selection.
func (s *Shell) Navigate(target View) {
	s.current = target
	s.selected = ""
}

// SelectAlgorithm opens the detail screen for id.
func (s *Shell) SelectAlgorithm(id string) {
	s.selected = id
	s.current = Detail
}

// BackToList returns from the detail screen.
func (s *Shell) BackToList() {
	s.current = List
	s.selected = ""
}

// Current returns the screen to render. Unroutable values render Home.
func (s *Shell) Current() View {
	if !s.current.Valid() {
		return Home
	}
	return s.current
}

// SelectedID is only meaningful while Current is Detail.
func (s *Shell) SelectedID() (string, bool) {
	if s.Current() != Detail {
		return "", false
	}
	return s.selected, true
}
