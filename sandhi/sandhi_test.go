package sandhi

import (
	"testing"

	"github.com/hareeshbabu82ns/vyakarana/dstate"
	"github.com/hareeshbabu82ns/vyakarana/filter"
	"github.com/hareeshbabu82ns/vyakarana/operator"
	"github.com/hareeshbabu82ns/vyakarana/rule"
	"github.com/hareeshbabu82ns/vyakarana/upadesha"
)

func term(t *testing.T, value string) *upadesha.Upadesha {
	t.Helper()
	u, err := upadesha.New("a", upadesha.Options{})
	if err != nil {
		t.Fatal(err)
	}
	return u.WithLocus(upadesha.Value, value)
}

func applyJoin(t *testing.T, first, second string) string {
	t.Helper()
	s := dstate.New(term(t, first), term(t, second))
	return Join(Apply(s))
}

func TestApplyAtoGune(t *testing.T) {
	// 6.1.97 ato guNe: a + e -> e (a dropped). The branch fires on any y in
	// "at eN" ({a, e, o}), so it also intercepts a+a ahead of 6.1.101 below
	// — the retrieved source's own if/elif order, not a rewrite of it.
	if got := applyJoin(t, "ca", "eti"); got != "ceti" {
		t.Errorf("ca+eti = %q, want %q", got, "ceti")
	}
}

func TestApplyAtoGuneInterceptsAPlusA(t *testing.T) {
	if got := applyJoin(t, "ca", "asti"); got != "casti" {
		t.Errorf("ca+asti = %q, want %q", got, "casti")
	}
}

func TestApplyAkahSavarneDirghah(t *testing.T) {
	// 6.1.101 akaH savarNe dIrghaH: only reachable when x isn't literally
	// "a" (6.1.97 would otherwise have already claimed it) — I/i, same
	// place, different length.
	if got := applyJoin(t, "devI", "indra"); got != "devIndra" {
		t.Errorf("devI+indra = %q, want %q", got, "devIndra")
	}
}

func TestApplyIkoYanAci(t *testing.T) {
	// 6.1.77 iko yaN aci: dadhi + atra -> dadhyatra
	if got := applyJoin(t, "DADi", "atra"); got != "DADyatra" {
		t.Errorf("DADi+atra = %q, want %q", got, "DADyatra")
	}
}

func TestApplyEcoAyavayavah(t *testing.T) {
	// 6.1.78 eco 'yavAyAvaH: ne + atra -> nayatra
	if got := applyJoin(t, "ne", "atra"); got != "nayatra" {
		t.Errorf("ne+atra = %q, want %q", got, "nayatra")
	}
}

func TestApplyAdGuna(t *testing.T) {
	// 6.1.87 Ad guNaH: a/A + ik vowel -> guNa substitute for the right sound
	if got := applyJoin(t, "tava", "iha"); got != "taveha" {
		t.Errorf("tava+iha = %q, want %q", got, "taveha")
	}
}

func TestApplyVrddhiEciIsIdempotentOnAlreadyVrddhiVowel(t *testing.T) {
	// 6.1.88 vRddhir eci: a/A + ec vowel -> vRddhi substitute for the right
	// sound. When the right sound is already vRddhi-grade (ai/au, "E"/"O"
	// here), the substitute leaves it unchanged — vRddhi of ai is ai.
	if got := applyJoin(t, "tA", "Eti"); got != "tEti" {
		t.Errorf("tA+Eti = %q, want %q", got, "tEti")
	}
}

func TestApplyHalSandhiLopoVyorVali(t *testing.T) {
	// 6.1.66 lopo vyor vali: y/v drop before a "val" consonant
	if got := applyJoin(t, "Boy", "su"); got != "Bosu" {
		t.Errorf("Boy+su = %q, want %q", got, "Bosu")
	}
}

func TestApplyLeavesUnrelatedSoundsAlone(t *testing.T) {
	if got := applyJoin(t, "kar", "mi"); got != "karmi" {
		t.Errorf("kar+mi = %q, want %q", got, "karmi")
	}
}

func TestAsiddhaClosureAppliesUntouchedAsiddhavatRule(t *testing.T) {
	s := dstate.New(term(t, "i"))
	r := rule.New("closure-dirgha", []*filter.Filter{filter.Al("ik")}, 0, operator.DirghaOp)

	out := AsiddhaClosure(s, []*rule.Rule{r}, 10)
	if out.At(0).Value() != "I" {
		t.Errorf("Value() = %q, want %q", out.At(0).Value(), "I")
	}
	if !out.At(0).HasOp("closure-dirgha") {
		t.Error("closure should mark the rule as applied")
	}
}

func TestAsiddhaClosureStopsWhenNothingMatches(t *testing.T) {
	s := dstate.New(term(t, "kar"))
	r := rule.New("closure-dirgha", []*filter.Filter{filter.Al("ik")}, 0, operator.DirghaOp)

	out := AsiddhaClosure(s, []*rule.Rule{r}, 10)
	if out != s {
		t.Error("closure should return the original state when no rule matches")
	}
}

func TestAsiddhaClosureSkipsAlreadyAppliedRule(t *testing.T) {
	applied := term(t, "i").AddOp("closure-dirgha")
	s := dstate.New(applied)
	r := rule.New("closure-dirgha", []*filter.Filter{filter.Al("ik")}, 0, operator.DirghaOp)

	out := AsiddhaClosure(s, []*rule.Rule{r}, 10)
	if out.At(0).Value() != "i" {
		t.Errorf("a rule already marked as applied to this term should not fire again, got %q", out.At(0).Value())
	}
}

func TestJoinConcatenatesAsiddhaViews(t *testing.T) {
	s := dstate.New(term(t, "rAma"), term(t, "s"))
	if got := Join(s); got != "rAmas" {
		t.Errorf("Join() = %q, want %q", got, "rAmas")
	}
}
