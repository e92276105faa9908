package rule

import (
	"testing"

	"github.com/hareeshbabu82ns/vyakarana/dstate"
	"github.com/hareeshbabu82ns/vyakarana/filter"
	"github.com/hareeshbabu82ns/vyakarana/operator"
)

func TestRegistryInferenceLinksApavadaAndUtsarga(t *testing.T) {
	general := New("general-dirgha", []*filter.Filter{filter.Al("hal")}, 0, operator.DirghaOp)
	specific := New("specific-hrasva", []*filter.Filter{filter.And(filter.Al("hal"), filter.Samjna("dhatu"))}, 0, operator.HrasvaOp)

	reg := New([]*Rule{general, specific})
	if reg.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", reg.Len())
	}

	if len(general.Apavada) != 1 || general.Apavada[0] != specific {
		t.Errorf("general.Apavada = %v, want [specific]", general.Apavada)
	}
	if len(specific.Utsarga) != 1 || specific.Utsarga[0] != general {
		t.Errorf("specific.Utsarga = %v, want [general]", specific.Utsarga)
	}
}

func TestRegistryRanksSpecificBeforeGeneral(t *testing.T) {
	general := New("general-dirgha", []*filter.Filter{filter.Al("hal")}, 0, operator.DirghaOp)
	specific := New("specific-hrasva", []*filter.Filter{filter.And(filter.Al("hal"), filter.Samjna("dhatu"))}, 0, operator.HrasvaOp)

	reg := New([]*Rule{general, specific})
	ranked := reg.Ranked()
	if ranked[0] != specific {
		t.Errorf("ranked[0] = %s, want specific-hrasva (narrower filter window ranks higher)", ranked[0].Name)
	}
}

func TestTreeSelect(t *testing.T) {
	dhatuOnly := New("dhatu-only", []*filter.Filter{filter.Samjna("dhatu")}, 0, operator.GunaOp)
	halOnly := New("hal-only", []*filter.Filter{filter.Al("hal")}, 0, operator.HrasvaOp)

	tree := NewTree([]*Rule{dhatuOnly, halOnly})
	if tree.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tree.Len())
	}

	dhatuTerm := withValue(t, "BU", "dhatu")
	s := dstate.New(dhatuTerm)

	selected := tree.Select(s, 0)
	if !selected[dhatuOnly] {
		t.Error("dhatu-only should be selected for a term tagged dhatu")
	}
	if selected[halOnly] {
		t.Error("hal-only should not be selected: the term's last letter (U) is not in hal")
	}

	consonantTerm := withValue(t, "kar")
	s2 := dstate.New(consonantTerm)
	selected2 := tree.Select(s2, 0)
	if selected2[dhatuOnly] {
		t.Error("dhatu-only should not be selected for an untagged term")
	}
	if !selected2[halOnly] {
		t.Error("hal-only should be selected: the term's last letter (r) is in hal")
	}
}
