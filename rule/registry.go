package rule

import (
	"sort"

	"github.com/rs/zerolog/log"
)

// Registry holds every rule of the grammar after the inference pass has
// populated apavāda/utsarga cross-links and rules have been ranked and
// indexed into a Tree — ashtadhyayi.py's Ashtadhyayi constructor.
type Registry struct {
	rules  []*Rule
	ranked []*Rule
	tree   *Tree
}

// New builds a Registry from rules: it runs the apavāda/utsarga inference
// pass, ranks rules from highest to lowest specificity, and builds the
// feature-indexed Tree over the ranked list.
func New(rules []*Rule) *Registry {
	infer(rules)

	ranked := append([]*Rule{}, rules...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[j].Rank.Less(ranked[i].Rank)
	})

	r := &Registry{
		rules:  rules,
		ranked: ranked,
		tree:   NewTree(ranked),
	}
	log.Info().
		Int("rules", len(rules)).
		Int("treeSize", r.tree.Len()).
		Msg("rule registry built")
	return r
}

// infer computes, for every pair of rules (a, b) with matching window size
// and locus, whether b is an apavāda (exception) to a: a.HasApavada(b)
// records b in a.Apavada and a in b.Utsarga, so the driver can stamp the
// utsarga into a term's applied-operator set once the apavāda fires.
func infer(rules []*Rule) {
	apavadaCount := 0
	for _, a := range rules {
		for _, b := range rules {
			if a == b {
				continue
			}
			if a.HasApavada(b) {
				a.Apavada = append(a.Apavada, b)
				b.Utsarga = append(b.Utsarga, a)
				apavadaCount++
			}
		}
	}
	log.Info().Int("apavadaPairs", apavadaCount).Msg("apavada inference complete")
}

// Ranked returns the rules ordered from highest to lowest rank, with
// registration order breaking ties — the precomputed order candidate
// iteration drives off of during derivation.
func (reg *Registry) Ranked() []*Rule { return reg.ranked }

// Tree returns the registry's feature-indexed rule tree.
func (reg *Registry) Tree() *Tree { return reg.tree }

// Len returns the number of rules in the registry.
func (reg *Registry) Len() int { return len(reg.rules) }
