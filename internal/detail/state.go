package detail

// State is the detail screen's local view state.
type State struct {
	tab       Tab
	copied    bool
	copyToken int
}

// NewState starts on the overview tab.
func NewState() State {
	return State{tab: TabOverview}
}

func (s *State) Tab() Tab { return s.tab }

// SelectTab switches to tab; out of range values are ignored.
func (s *State) SelectTab(tab Tab) {
	if tab < TabOverview || tab > TabUsage {
		return
	}
	s.tab = tab
}

// ShiftTab moves delta tabs, wrapping around.
func (s *State) ShiftTab(delta int) {
	n := len(Tabs)
	next := (int(s.tab) + delta) % n
	if next < 0 {
		next += n
	}
	s.tab = Tab(next)
}

func (s *State) Copied() bool { return s.copied }

// MarkCopied shows the indicator and returns the token that must be passed
// to ExpireCopied to hide it again.
func (s *State) MarkCopied() int {
	s.copyToken++
	s.copied = true
	return s.copyToken
}

// ExpireCopied hides the indicator unless a newer copy replaced token.
func (s *State) ExpireCopied(token int) {
	if token == s.copyToken {
		s.copied = false
	}
}
