// Package filter implements a composable predicate over a (state,
// position) pair, with boolean combinators, a specificity rank, and a
// subset/specificity relation used by the rule registry's apavāda
// inference and rule-tree index.
package filter

import (
	"fmt"
	"strings"

	"github.com/hareeshbabu82ns/vyakarana/dhatupatha"
	"github.com/hareeshbabu82ns/vyakarana/dstate"
	"github.com/hareeshbabu82ns/vyakarana/sound"
	"github.com/hareeshbabu82ns/vyakarana/upadesha"
)

// Filter is a named, ranked predicate over (state, position). Filter
// values are immutable and safe to share; the zero value is not usable —
// construct filters via the exported constructors below.
type Filter struct {
	name string
	rank Rank
	// atoms is the set of indexable leaf filters this filter decomposes
	// into, keyed by name to dedupe. A plain atomic filter's only atom is
	// itself. And recursively flattens to its conjuncts' atoms — the rule
	// tree can index on any one of them independently, since all must hold
	// for the conjunction to match. Or and Not do not decompose this way
	// (a disjunction or negation isn't narrowed by any single conjunct), so
	// each is its own atom.
	atoms map[string]*Filter
	// members is populated only for a conjunction (And); this mirrors the
	// asymmetric shape of the subset relation: a compound filter is a
	// subset of anything any one of its own conjuncts is a subset of, but
	// a disjunction or negation offers no such shortcut.
	members []*Filter
	match   func(s *dstate.State, index int) bool
}

// Name returns the filter's canonical, parameter-qualified name, e.g.
// "adi(a, i, u)".
func (f *Filter) Name() string { return f.name }

// Rank returns the filter's specificity rank.
func (f *Filter) Rank() Rank { return f.rank }

// Supersets returns the indexable leaf filters this filter contributes to
// the rule tree: itself for an atomic, Or, or Not filter, or the recursively
// flattened conjuncts for an And. Each returned filter is directly callable
// via Match, which is what the rule tree's feature index needs.
func (f *Filter) Supersets() []*Filter {
	out := make([]*Filter, 0, len(f.atoms))
	for _, a := range f.atoms {
		out = append(out, a)
	}
	return out
}

// Match evaluates the filter at (state, index); out-of-range indices
// match false.
func (f *Filter) Match(s *dstate.State, index int) bool {
	if index < 0 || index >= s.Len() {
		return false
	}
	return f.match(s, index)
}

func newAtomic(name string, rank Rank, match func(*upadesha.Upadesha) bool) *Filter {
	f := &Filter{
		name: name,
		rank: rank,
		match: func(s *dstate.State, index int) bool {
			return match(s.At(index))
		},
	}
	f.atoms = map[string]*Filter{name: f}
	return f
}

func joinedName(fn string, parts []string) string {
	return fn + "(" + strings.Join(parts, ", ") + ")"
}

// AllowAll always matches. It contributes no feature to the rule tree index:
// an always-true predicate narrows nothing, so it is excluded from feature
// collection.
var AllowAll = &Filter{name: "allow_all", atoms: map[string]*Filter{}, match: func(*dstate.State, int) bool { return true }}

// Placeholder never matches. Like AllowAll, it contributes no feature.
var Placeholder = &Filter{name: "placeholder", atoms: map[string]*Filter{}, match: func(*dstate.State, int) bool { return false }}

// Adi matches when the first letter of the term's value is in sounds.
func Adi(sounds ...string) *Filter {
	set, size := expandSounds(sounds)
	return newAtomic(joinedName("adi", sounds), withAl(size), func(u *upadesha.Upadesha) bool {
		return set[rune(u.Adi(upadesha.Value))]
	})
}

// Al matches when the last letter of the term's value is in sounds.
func Al(sounds ...string) *Filter {
	set, size := expandSounds(sounds)
	return newAtomic(joinedName("al", sounds), withAl(size), func(u *upadesha.Upadesha) bool {
		return set[rune(u.Antya(upadesha.Value))]
	})
}

// Upadha matches when the penultimate letter of the term's value is in
// sounds.
func Upadha(sounds ...string) *Filter {
	set, size := expandSounds(sounds)
	return newAtomic(joinedName("upadha", sounds), withAl(size), func(u *upadesha.Upadesha) bool {
		return set[rune(u.Upadha(upadesha.Value))]
	})
}

// Contains matches when any letter of the term's value is in sounds —
// the "somewhere in this term" counterpart to Adi/Al/Upadha's fixed
// positions, needed by long-distance conditions such as ṇatva's
// samānapada reach.
func Contains(sounds ...string) *Filter {
	set, size := expandSounds(sounds)
	return newAtomic(joinedName("contains", sounds), withAl(size), func(u *upadesha.Upadesha) bool {
		for _, r := range u.Value() {
			if set[r] {
				return true
			}
		}
		return false
	})
}

// Raw matches when the term's raw form is one of values.
func Raw(values ...string) *Filter {
	set := toSet(values)
	return newAtomic(joinedName("raw", values), withUpadesha(len(set)), func(u *upadesha.Upadesha) bool {
		return set[u.Raw()]
	})
}

// Value matches when the term's value is one of values.
func Value(values ...string) *Filter {
	set := toSet(values)
	return newAtomic(joinedName("value", values), withUpadesha(len(set)), func(u *upadesha.Upadesha) bool {
		return set[u.Value()]
	})
}

// Lakshana matches when any of values is in the term's historical-raw
// alias set.
func Lakshana(values ...string) *Filter {
	set := toSet(values)
	return newAtomic(joinedName("lakshana", values), withUpadesha(len(set)), func(u *upadesha.Upadesha) bool {
		for v := range set {
			if u.HasLakshana(v) {
				return true
			}
		}
		return false
	})
}

// Samjna matches when any of tags is in the term's saṃjñā set.
func Samjna(tags ...string) *Filter {
	set := toSet(tags)
	return newAtomic(joinedName("samjna", tags), withSamjna(len(set)), func(u *upadesha.Upadesha) bool {
		return u.HasSamjna(tags...)
	})
}

// Gana matches when the term's raw form is in the dhātupāṭha range
// [start, end] (or [start, end-of-gaṇa) if end is "").
func Gana(dp *dhatupatha.Dhatupatha, start, end string) (*Filter, error) {
	set, err := dp.Set(start, end)
	if err != nil {
		return nil, fmt.Errorf("filter: gana(%s, %s): %w", start, end, err)
	}
	name := joinedName("gana", []string{start, end})
	return newAtomic(name, withUpadesha(len(set)), func(u *upadesha.Upadesha) bool {
		return set[u.Raw()]
	}), nil
}

func expandSounds(names []string) (map[rune]bool, int) {
	set := map[rune]bool{}
	for _, n := range names {
		if group, err := sound.Pratyahara(n); err == nil {
			for _, s := range group {
				set[rune(s)] = true
			}
			continue
		}
		for _, r := range n {
			set[r] = true
		}
	}
	return set, len(set)
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

// And returns the conjunction of filters.
func And(filters ...*Filter) *Filter {
	ranks := make([]Rank, len(filters))
	names := make([]string, len(filters))
	atoms := map[string]*Filter{}
	for i, f := range filters {
		ranks[i] = f.rank
		names[i] = f.name
		for name, a := range f.atoms {
			atoms[name] = a
		}
	}
	return &Filter{
		name:    joinedName("and", names),
		rank:    andRanks(ranks...),
		atoms:   atoms,
		members: append([]*Filter{}, filters...),
		match: func(s *dstate.State, index int) bool {
			for _, f := range filters {
				if !f.Match(s, index) {
					return false
				}
			}
			return true
		},
	}
}

// Or returns the disjunction of filters. Unlike And, a disjunction is its
// own single feature: no individual disjunct matching is equivalent to the
// whole, so Or does not flatten its children's atoms into the index.
func Or(filters ...*Filter) *Filter {
	ranks := make([]Rank, len(filters))
	names := make([]string, len(filters))
	for i, f := range filters {
		ranks[i] = f.rank
		names[i] = f.name
	}
	f := &Filter{
		name: joinedName("or", names),
		rank: orRanks(ranks...),
		match: func(s *dstate.State, index int) bool {
			for _, f := range filters {
				if f.Match(s, index) {
					return true
				}
			}
			return false
		},
	}
	f.atoms = map[string]*Filter{f.name: f}
	return f
}

// Not returns the negation of f. Like Or, a negation is its own atom.
func Not(f *Filter) *Filter {
	out := &Filter{
		name: "not(" + f.name + ")",
		rank: f.rank,
		match: func(s *dstate.State, index int) bool {
			return !f.Match(s, index)
		},
	}
	out.atoms = map[string]*Filter{out.name: out}
	return out
}

// SubsetOf reports whether f ⊆ other: every state f matches, other
// matches too. This is a name-based structural check — f is a subset of
// other if they share a canonical name, or if f is a conjunction one of
// whose own conjuncts is (recursively) a subset of other.
func (f *Filter) SubsetOf(other *Filter) bool {
	if f.name == other.name {
		return true
	}
	for _, m := range f.members {
		if m.SubsetOf(other) {
			return true
		}
	}
	return false
}
