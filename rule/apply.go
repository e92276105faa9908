package rule

import (
	"github.com/hareeshbabu82ns/vyakarana/dstate"
	"github.com/hareeshbabu82ns/vyakarana/operator"
)

// Apply resolves this rule's filter-window match at (state, index) into
// zero or more successor states:
//
//   - Blocking ("na"): the term is left untouched; the rule is stamped
//     into history and every utsarga rule is stamped into the matched
//     term's applied-operator set so a more general competing rule will
//     not fire redundantly later.
//   - Optional: both outcomes are valid — the declined state (history
//     extended, any saṃjña the rule would have added retracted) and the
//     accepted state (operator applied).
//   - Plain (mandatory): the operator runs; if the result is unchanged
//     from the input, nothing is yielded, which is how the driver avoids
//     looping forever on a rule that keeps "firing" without effect.
func (r *Rule) Apply(s *dstate.State, index int) ([]*dstate.State, error) {
	switch r.Modifier {
	case Blocking:
		return []*dstate.State{r.stampUtsarga(s.MarkRule(r.Name, index), index)}, nil

	case Optional:
		var out []*dstate.State
		out = append(out, r.applyDeclined(s, index))
		accepted, err := r.applyAccepted(s, index)
		if err != nil {
			return nil, err
		}
		if accepted != nil {
			out = append(out, accepted)
		}
		return out, nil

	default:
		accepted, err := r.applyAccepted(s, index)
		if err != nil {
			return nil, err
		}
		if accepted == nil {
			return nil, nil
		}
		return []*dstate.State{accepted}, nil
	}
}

// applyAccepted runs the operator and, if the result differs from s,
// stamps history and utsarga bookkeeping onto it. A nil return means the
// operator produced no change — a normal termination signal, not an
// error.
func (r *Rule) applyAccepted(s *dstate.State, index int) (*dstate.State, error) {
	next, err := r.applyOperator(s, index)
	if err != nil {
		return nil, err
	}
	if next.Equal(s) {
		return nil, nil
	}
	next = next.MarkRule(r.Name, index)
	next = r.stampUtsarga(next, index)
	return next, nil
}

// applyDeclined returns the state as if this rule had not fired: history
// is extended, but if the operator would have added a saṃjña, exactly
// those tags are retracted from the matched term first (they were never
// actually added, so there is nothing to remove — this guards against a
// future declined-then-reconsidered rule seeing stray tags).
func (r *Rule) applyDeclined(s *dstate.State, index int) *dstate.State {
	if r.Op != nil && r.Op.Category == operator.CategoryAddSamjna {
		target := index + r.Offset
		if target >= 0 && target < s.Len() {
			cur := s.At(target).RemoveSamjna(r.Op.Params...)
			s = s.Swap(target, cur)
		}
	}
	return s.MarkRule(r.Name, index)
}

// stampUtsarga adds every utsarga rule's name to the matched term's
// applied-operator set, so the driver skips them on future visits.
func (r *Rule) stampUtsarga(s *dstate.State, index int) *dstate.State {
	if len(r.Utsarga) == 0 {
		return s
	}
	target := index + r.Offset
	if target < 0 || target >= s.Len() {
		return s
	}
	names := make([]string, len(r.Utsarga))
	for i, u := range r.Utsarga {
		names[i] = u.Name
	}
	cur := s.At(target).AddOp(names...)
	return s.Swap(target, cur)
}
