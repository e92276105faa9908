// Package rule bundles a filter window with an operator into a single
// named rule, carrying the metadata the registry's inference pass and
// the derivation driver need: rank, modifier, locus, and the utsarga/
// apavāda lists that inference populates after every rule is registered.
package rule

import (
	"github.com/hareeshbabu82ns/vyakarana/dstate"
	"github.com/hareeshbabu82ns/vyakarana/filter"
	"github.com/hareeshbabu82ns/vyakarana/operator"
	"github.com/hareeshbabu82ns/vyakarana/upadesha"
)

// Locus names which value-stack layer a rule writes.
type Locus int

const (
	Value Locus = iota
	Asiddhavat
)

// rankWeight assigns locus-based rank weights: an asiddhavat-locus rule
// ranks strictly below any value-locus rule with an otherwise identical
// filter window.
func (l Locus) rankWeight() float64 {
	if l == Asiddhavat {
		return 0
	}
	return 1
}

// Modifier controls how a rule resolves once its filter window matches.
type Modifier int

const (
	// Plain is an ordinary, mandatory rule (vidhi): it always fires when
	// matched.
	Plain Modifier = iota
	// Blocking ("na") fires only to stamp its utsarga rules as already
	// applied; its own operator never runs.
	Blocking
	// Optional ("anyatarasyām" / "vā" / "vibhāṣā" / "artha" / "opinion")
	// may be declined: both outcomes are valid successor states.
	Optional
)

// Kind classifies what a rule's operator produces. Its one effect on
// derivation is through the rank: any kind other than KindTasya sets the
// rank's Category component to 1 (see computeRank), so such rules sort
// ahead of tasya rules; application itself treats every kind uniformly
// once Op/StateOp is resolved.
type Kind int

const (
	KindTasya Kind = iota
	KindSamjna
	KindInsert
	KindParibhasha
)

// Rule is a single, immutable rule: a filter window plus the operator it
// applies once every filter in the window matches.
type Rule struct {
	Name     string
	Filters  []*filter.Filter
	Offset   int // index, within Filters, of the position the operator targets
	Op       *operator.Op
	StateOp  *operator.StateOp // set instead of Op for insert-kind rules
	Modifier Modifier
	Kind     Kind
	Locus    Locus
	Rank     filter.Rank

	// Utsarga lists rules this one blocks when it fires; Apavada lists
	// rules that are exceptions to this one. Both are populated by the
	// registry's inference pass after every rule is registered.
	Utsarga []*Rule
	Apavada []*Rule
}

// New builds a rule from a flattened filter window. offset names which
// position in filters the operator writes to (e.g. len(left) for a
// left+center+right window, 0 for a center-only window).
func New(name string, filters []*filter.Filter, offset int, op *operator.Op, opts ...Option) *Rule {
	r := &Rule{
		Name:    name,
		Filters: filters,
		Offset:  offset,
		Op:      op,
		Kind:    KindTasya,
		Locus:   Value,
	}
	for _, o := range opts {
		o(r)
	}
	r.Rank = r.computeRank()
	return r
}

// Option configures a Rule at construction time.
type Option func(*Rule)

func WithModifier(m Modifier) Option { return func(r *Rule) { r.Modifier = m } }
func WithKind(k Kind) Option         { return func(r *Rule) { r.Kind = k } }
func WithLocus(l Locus) Option       { return func(r *Rule) { r.Locus = l } }
func WithStateOp(op *operator.StateOp) Option {
	return func(r *Rule) { r.StateOp = op; r.Kind = KindInsert }
}

func (r *Rule) computeRank() filter.Rank {
	ranks := make([]filter.Rank, len(r.Filters))
	for i, f := range r.Filters {
		ranks[i] = f.Rank()
	}
	category := 0.0
	if r.Kind != KindTasya {
		category = 1
	}
	return filter.SumRanks(ranks...).WithCategoryLocus(category, r.Locus.rankWeight())
}

// Matches reports whether every filter in the window matches, scanning
// sequentially from state[index].
func (r *Rule) Matches(s *dstate.State, index int) bool {
	for i, f := range r.Filters {
		if !f.Match(s, index+i) {
			return false
		}
	}
	return true
}

// Feature is an (atomic filter, window-offset) pair — the index key the
// registry's rule tree buckets rules under. Filter is directly callable via
// its Match method, which is what lets the tree test a feature against a
// candidate state without consulting the rule that contributed it.
type Feature struct {
	Filter *filter.Filter
	Offset int
}

// Features returns the features this rule contributes to the registry's
// rule tree index: every atomic filter making up each window position,
// paired with that position's offset from the window start.
func (r *Rule) Features() map[Feature]bool {
	out := map[Feature]bool{}
	for i, f := range r.Filters {
		for _, s := range f.Supersets() {
			out[Feature{Filter: s, Offset: i}] = true
		}
	}
	return out
}

// HasApavada reports whether other is an exception (apavāda) to r: they
// are different rules, every filter of other is a subset of the
// corresponding filter of r (position for position), they share a locus,
// and their operators' categories conflict.
func (r *Rule) HasApavada(other *Rule) bool {
	if r.Name == other.Name {
		return false
	}
	if len(r.Filters) != len(other.Filters) {
		return false
	}
	for i := range r.Filters {
		if !other.Filters[i].SubsetOf(r.Filters[i]) {
			return false
		}
	}
	if r.Locus != other.Locus {
		return false
	}
	return operator.Conflicts(r.category(), other.category())
}

func (r *Rule) category() operator.Category {
	if r.StateOp != nil {
		return r.StateOp.Category
	}
	if r.Op != nil {
		return r.Op.Category
	}
	return operator.CategoryTasya
}

// valueLocus returns the upadesha.Locus a rule's Locus writes to.
func (r *Rule) valueLocus() upadesha.Locus {
	if r.Locus == Asiddhavat {
		return upadesha.Asiddhavat
	}
	return upadesha.Value
}

// termAt returns state.At(i), or nil if i is out of range — the operator
// contract treats a nil right-context as "no right neighbour".
func termAt(s *dstate.State, i int) *upadesha.Upadesha {
	if i < 0 || i >= s.Len() {
		return nil
	}
	return s.At(i)
}

// applyOperator applies the rule's operator at the window-designated
// index and returns the resulting state.
func (r *Rule) applyOperator(s *dstate.State, index int) (*dstate.State, error) {
	if r.StateOp != nil {
		return r.StateOp.Func(s, index)
	}
	target := index + r.Offset
	cur := s.At(target)
	next, err := r.Op.Func(cur, termAt(s, target+1))
	if err != nil {
		return nil, err
	}
	return s.Swap(target, next), nil
}
