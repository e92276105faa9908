// Package derive drives a bounded rule registry to exhaustion over a
// starting sequence of upadeśas and hands every terminal state through the
// sandhi post-pass, producing surface-form strings. It mirrors
// ashtadhyayi.py's own top-level derive loop: at each step, scan positions
// left to right and apply the single highest-ranked matching rule at the
// earliest position where one fires, exactly the applyFirst shape
// sandhi.AsiddhaClosure already uses for its own fixed-point pass.
package derive

import (
	"fmt"

	"github.com/hareeshbabu82ns/vyakarana/dhatupatha"
	"github.com/hareeshbabu82ns/vyakarana/dstate"
	"github.com/hareeshbabu82ns/vyakarana/grammar"
	"github.com/hareeshbabu82ns/vyakarana/rule"
	"github.com/hareeshbabu82ns/vyakarana/sandhi"
	"github.com/hareeshbabu82ns/vyakarana/upadesha"
	"github.com/rs/zerolog/log"
)

// Options bounds a derivation: both fields default when zero, so a caller
// that only cares about correctness, not pathological inputs, can pass the
// zero value.
type Options struct {
	// MaxSteps bounds the total number of rule applications across every
	// branch of the derivation, guarding against a rule pair that could in
	// principle toggle a state back and forth forever.
	MaxSteps int
	// MaxAsiddhaIterations bounds sandhi.AsiddhaClosure's fixed-point pass
	// over each terminal state.
	MaxAsiddhaIterations int
}

const (
	defaultMaxSteps             = 500
	defaultMaxAsiddhaIterations = 50
)

func (o Options) withDefaults() Options {
	if o.MaxSteps <= 0 {
		o.MaxSteps = defaultMaxSteps
	}
	if o.MaxAsiddhaIterations <= 0 {
		o.MaxAsiddhaIterations = defaultMaxAsiddhaIterations
	}
	return o
}

// Derive builds the bounded grammar from dp and boundaries, derives every
// rule-application path starting from seq, and returns the deduplicated
// surface forms — one per distinct terminal state once the sandhi
// post-pass has run. A ConfigError reports a failure building the
// grammar; a DerivationError reports a failure partway through the walk
// itself.
func Derive(dp *dhatupatha.Dhatupatha, boundaries grammar.GanaBoundaries, seq []*upadesha.Upadesha, opts Options) ([]string, error) {
	rules, err := grammar.AllRules(dp, boundaries)
	if err != nil {
		return nil, &ConfigError{Err: err}
	}
	return DeriveWithRules(rules, seq, opts)
}

// buildRegistry wraps rule.New, converting a panic from a malformed rule
// (an operator whose category the inference pass can't reconcile, an
// inconsistent locus declaration) into a RuleConstructionError instead of
// crashing the caller. This corpus's own rule set is hand-built from fixed
// constants and is not expected to panic; the guard exists for the
// registry-build boundary itself, not because a known construction
// failure is pending.
func buildRegistry(rules []*rule.Rule) (reg *rule.Registry, err error) {
	defer func() {
		if r := recover(); r != nil {
			reg = nil
			err = &RuleConstructionError{Rule: "<registry build>", Err: fmt.Errorf("%v", r)}
		}
	}()
	return rule.New(rules), nil
}

// DeriveWithRules runs the same walk as Derive over an already-built rule
// set — the seam for callers that build the rule set themselves, as this
// package's own tests do; Derive calls it after building the grammar.
//
// A returned *DerivationError never invalidates the forms slice: per a
// tasya substitution that cannot classify its input, or a derivation that
// exhausts opts.MaxSteps before every branch reaches a rule-free state,
// the error is a diagnostic alongside whatever forms the branches that did
// finish already produced, not a reason to discard them.
func DeriveWithRules(rules []*rule.Rule, seq []*upadesha.Upadesha, opts Options) ([]string, error) {
	opts = opts.withDefaults()
	reg, err := buildRegistry(rules)
	if err != nil {
		return nil, err
	}

	finals, walkErr := walk(reg, dstate.New(seq...), opts.MaxSteps)

	seen := map[string]bool{}
	var forms []string
	for _, f := range finals {
		surface := sandhi.Join(sandhi.AsiddhaClosure(sandhi.Apply(f), nil, opts.MaxAsiddhaIterations))
		if seen[surface] {
			continue
		}
		seen[surface] = true
		forms = append(forms, surface)
	}
	log.Info().Int("finalStates", len(finals)).Int("forms", len(forms)).Msg("derivation complete")
	return forms, walkErr
}

// walk advances the frontier of live states step by step until every
// branch has reached a state no rule can advance further, or maxSteps rule
// applications have been spent across the whole walk. States already seen
// (by their asiddha-view string) are never re-enqueued, so a rule pair
// that cycles between two states converges instead of looping. Any branch
// still live when the step budget runs out is folded into the returned
// states as-is, alongside a DerivationError reporting the exhausted
// budget — the caller decides whether an incomplete derivation is still
// useful.
func walk(reg *rule.Registry, start *dstate.State, maxSteps int) ([]*dstate.State, error) {
	frontier := []*dstate.State{start}
	visited := map[string]bool{start.String(): true}
	var finals []*dstate.State
	steps := 0
	var budgetErr error

	for len(frontier) > 0 {
		var next []*dstate.State
		for _, s := range frontier {
			if steps >= maxSteps {
				finals = append(finals, s)
				if budgetErr == nil {
					budgetErr = &DerivationError{Err: fmt.Errorf("rule-application budget of %d steps exceeded", maxSteps)}
				}
				continue
			}
			steps++
			out, fired, err := step(reg, s)
			if err != nil {
				return finals, err
			}
			if !fired {
				finals = append(finals, s)
				continue
			}
			for _, o := range out {
				key := o.String()
				if visited[key] {
					continue
				}
				visited[key] = true
				next = append(next, o)
			}
		}
		frontier = next
	}
	log.Debug().Int("steps", steps).Msg("derivation walk finished")
	return finals, budgetErr
}

// step applies the single highest-ranked rule that matches at the
// earliest position in s, per the registry's rank-ordered candidate list
// at that position, skipping any rule already stamped into its target
// term's applied-operator set. It reports fired=false once no position yields a
// rule whose Apply produces a changed successor — Plain rules return a
// nil result on a no-op match, which this loop treats as "keep scanning",
// not as a match to stop on.
func step(reg *rule.Registry, s *dstate.State) (out []*dstate.State, fired bool, err error) {
	for i := 0; i < s.Len(); i++ {
		candidates := reg.Tree().Select(s, i)
		for _, r := range reg.Ranked() {
			if !candidates[r] || !r.Matches(s, i) {
				continue
			}
			if t := i + r.Offset; t >= 0 && t < s.Len() && s.At(t).HasOp(r.Name) {
				continue
			}
			res, applyErr := r.Apply(s, i)
			if applyErr != nil {
				return nil, false, &DerivationError{RuleName: r.Name, Position: i, Err: applyErr}
			}
			if len(res) == 0 {
				continue
			}
			return res, true, nil
		}
	}
	return nil, false, nil
}
