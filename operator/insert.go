package operator

import (
	"github.com/hareeshbabu82ns/vyakarana/dstate"
	"github.com/hareeshbabu82ns/vyakarana/upadesha"
)

// StateOp is an operator that edits the derivation state's term list
// itself rather than a single term's value stack — currently just
// insert(), which the per-term Op/Func shape cannot express since it
// changes the term count.
type StateOp struct {
	Category Category
	Name     string
	Func     func(s *dstate.State, index int) (*dstate.State, error)
}

// Insert builds a StateOp that inserts term immediately before the
// matched position (offset 0) or after it (offset 1).
func Insert(term *upadesha.Upadesha, offset int) *StateOp {
	return &StateOp{
		Category: CategoryInsert,
		Name:     paramName("insert", term.Raw()),
		Func: func(s *dstate.State, index int) (*dstate.State, error) {
			return s.Insert(index+offset, term), nil
		},
	}
}
