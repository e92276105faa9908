// Package dstate implements State, a single step in a derivation: an
// ordered sequence of upadeśas plus an append-only history of which rule
// fired at which position. States are immutable value objects; every
// mutating method returns a new State sharing the unchanged terms.
package dstate

import "github.com/hareeshbabu82ns/vyakarana/upadesha"

// RuleApplication records one (rule-name, position) step in a derivation.
type RuleApplication struct {
	RuleName string
	Position int
}

// State is an ordered sequence of upadeśas plus its derivation history.
type State struct {
	items   []*upadesha.Upadesha
	history []RuleApplication
}

// New builds a State from an ordered list of upadeśas, with empty history.
func New(items ...*upadesha.Upadesha) *State {
	cp := make([]*upadesha.Upadesha, len(items))
	copy(cp, items)
	return &State{items: cp}
}

// Len returns the number of terms in the state.
func (s *State) Len() int { return len(s.items) }

// At returns the term at position i.
func (s *State) At(i int) *upadesha.Upadesha { return s.items[i] }

// Terms returns the state's terms; callers must not mutate the slice.
func (s *State) Terms() []*upadesha.Upadesha { return s.items }

// History returns the state's derivation history; callers must not mutate
// the slice.
func (s *State) History() []RuleApplication { return s.history }

// Equal reports whether s and other have identical term sequences (history
// is not part of equality, matching the Python original: two states with
// the same terms reached by different paths are the same state).
func (s *State) Equal(other *State) bool {
	if other == nil {
		return false
	}
	if s == other {
		return true
	}
	if len(s.items) != len(other.items) {
		return false
	}
	for i := range s.items {
		if s.items[i] != other.items[i] {
			return false
		}
	}
	return true
}

func (s *State) copyItems() []*upadesha.Upadesha {
	cp := make([]*upadesha.Upadesha, len(s.items))
	copy(cp, s.items)
	return cp
}

func (s *State) copyHistory() []RuleApplication {
	cp := make([]RuleApplication, len(s.history))
	copy(cp, s.history)
	return cp
}

// Swap returns a new state with the term at index replaced by item.
func (s *State) Swap(index int, item *upadesha.Upadesha) *State {
	items := s.copyItems()
	items[index] = item
	return &State{items: items, history: s.copyHistory()}
}

// Insert returns a new state with item inserted at index.
func (s *State) Insert(index int, item *upadesha.Upadesha) *State {
	items := s.copyItems()
	items = append(items, nil)
	copy(items[index+1:], items[index:])
	items[index] = item
	return &State{items: items, history: s.copyHistory()}
}

// Remove returns a new state with the term at index removed.
func (s *State) Remove(index int) *State {
	items := s.copyItems()
	items = append(items[:index], items[index+1:]...)
	return &State{items: items, history: s.copyHistory()}
}

// ReplaceAll returns a new state whose terms are entirely replaced.
func (s *State) ReplaceAll(items []*upadesha.Upadesha) *State {
	cp := make([]*upadesha.Upadesha, len(items))
	copy(cp, items)
	return &State{items: cp, history: s.copyHistory()}
}

// MarkRule returns a new state with (ruleName, index) appended to history.
func (s *State) MarkRule(ruleName string, index int) *State {
	hist := s.copyHistory()
	hist = append(hist, RuleApplication{RuleName: ruleName, Position: index})
	return &State{items: s.copyItems(), history: hist}
}

// String renders the asiddha view of every term, the same diagnostic the
// Python original's __str__ produces.
func (s *State) String() string {
	out := make([]byte, 0, 16*len(s.items))
	out = append(out, '[')
	for i, it := range s.items {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, it.Asiddha()...)
	}
	out = append(out, ']')
	return string(out)
}
