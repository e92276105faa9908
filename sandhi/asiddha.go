package sandhi

import (
	"strings"

	"github.com/hareeshbabu82ns/vyakarana/dstate"
	"github.com/hareeshbabu82ns/vyakarana/rule"
)

// AsiddhaClosure iterates rules (expected to be the registry's
// asiddhavat-locus rules) against s to a fixed point: repeatedly scan every
// position for the first unapplied matching rule, apply it, and restart the
// scan, until a full pass applies nothing or maxIterations is reached. This
// is the second half of ashtadhyayi.py's sandhi_asiddha
// (`for t in siddha.asiddha(s): ...`) — asiddhavat rules are traditionally
// "not yet in effect" for any rule that ran before them, so they get one
// more isolated pass after the ordinary derivation has otherwise finished.
func AsiddhaClosure(s *dstate.State, rules []*rule.Rule, maxIterations int) *dstate.State {
	for iter := 0; iter < maxIterations; iter++ {
		next, applied := applyFirst(s, rules)
		if !applied {
			return s
		}
		s = next
	}
	return s
}

func applyFirst(s *dstate.State, rules []*rule.Rule) (*dstate.State, bool) {
	for i := 0; i < s.Len(); i++ {
		for _, r := range rules {
			if s.At(i).HasOp(r.Name) || !r.Matches(s, i) {
				continue
			}
			out, err := r.Apply(s, i)
			if err != nil || len(out) == 0 {
				continue
			}
			next := out[0]
			if i < next.Len() {
				next = next.Swap(i, next.At(i).AddOp(r.Name))
			}
			return next, true
		}
	}
	return s, false
}

// Join concatenates the asiddha view of every term in s into the final
// surface-form string — ashtadhyayi.py's `''.join(x.asiddha for x in t)`.
func Join(s *dstate.State) string {
	var sb strings.Builder
	for i := 0; i < s.Len(); i++ {
		sb.WriteString(s.At(i).Asiddha())
	}
	return sb.String()
}
