// Package sandhi implements the phonological post-pass applied once a
// derivation has settled: a single left-to-right sandhi traversal over
// every sound in a terminal state, followed by a fixed-point closure over
// the remaining asiddhavat-locus rules, then the final join into a
// surface-form string.
package sandhi

import (
	"strings"

	"github.com/hareeshbabu82ns/vyakarana/dstate"
	"github.com/hareeshbabu82ns/vyakarana/operator"
	"github.com/hareeshbabu82ns/vyakarana/sound"
	"github.com/hareeshbabu82ns/vyakarana/upadesha"
)

func mustGroup(name string) map[rune]bool {
	g, err := sound.Pratyahara(name)
	if err != nil {
		panic(err)
	}
	set := make(map[rune]bool, len(g))
	for _, s := range g {
		set[rune(s)] = true
	}
	return set
}

var (
	acGroup  = mustGroup("ac")
	halGroup = mustGroup("hal")
	ikGroup  = mustGroup("ik")
	ecGroup  = mustGroup("ec")
	icGroup  = mustGroup("ic")
	valGroup = mustGroup("val")
	// atEN is 6.1.97's "at eN": the guṇa-vowel set eN (e, o) union "at",
	// which names the single sound a — no it-marker 't' exists in the
	// flattened Māheśvara Sūtra table this engine resolves pratyāhāras
	// from, so "at" is a single-sound abbreviation outside that system
	// rather than a genuine pratyāhāra, and is special-cased accordingly
	// instead of falling back to filter.expandSounds's literal-character
	// split (which would wrongly add 't' to this set).
	atEN = buildAtEN()
)

func buildAtEN() map[rune]bool {
	set := map[rune]bool{'a': true}
	for r := range mustGroup("eN") {
		set[r] = true
	}
	return set
}

var ikoYanAci = mustAlTasya("ik", "yaR")

func mustAlTasya(target, result string) *operator.Op {
	op, err := operator.AlTasya(target, result)
	if err != nil {
		panic(err)
	}
	return op
}

// single returns s's one rune and true, or (0, false) if s is empty or has
// more than one rune — a prior sandhi step's multi-character or empty
// rewrite never itself participates in a later sandhi match, the same way
// the retrieved source's membership tests silently fail against a
// multi-character Python string.
func single(s string) (rune, bool) {
	r := []rune(s)
	if len(r) != 1 {
		return 0, false
	}
	return r[0], true
}

// convert applies a bare phonological transform (guṇa, vṛddhi, dīrgha, or
// an al_tasya substitution) to a single sound in isolation, the same
// workaround the retrieved source's own `convert` helper uses to reuse an
// Upadesha-shaped operator on a bare character.
func convert(fn func(cur, right *upadesha.Upadesha) (*upadesha.Upadesha, error), r string) string {
	u, err := upadesha.New("a", upadesha.Options{})
	if err != nil {
		return r
	}
	u = u.WithLocus(upadesha.Value, r)
	out, err := fn(u, nil)
	if err != nil {
		return r
	}
	return out.Value()
}

// cell is one sound-position in the flattened cursor Apply walks: its
// current string value (usually one letter, but a sandhi rule may drop it
// to "" or expand it to a short digraph) and which term in the state it
// belongs to.
type cell struct {
	value   string
	termIdx int
}

// flatten lays every term's asiddha-layer letters end to end, tagged by
// which term each position belongs to — the part of util.py's SoundEditor
// this port needs; Apply only ever looks one position ahead, so the
// separate SoundIndex/prev/next object wrapping isn't reproduced.
func flatten(s *dstate.State) []cell {
	var out []cell
	for i := 0; i < s.Len(); i++ {
		for _, r := range s.At(i).Asiddha() {
			out = append(out, cell{value: string(r), termIdx: i})
		}
	}
	return out
}

// join rebuilds a state from cells, grouping consecutive cells by term and
// writing each term's concatenated cell values to its asiddha locus.
func join(s *dstate.State, cells []cell) *dstate.State {
	parts := make([]strings.Builder, s.Len())
	for _, c := range cells {
		parts[c.termIdx].WriteString(c.value)
	}
	terms := make([]*upadesha.Upadesha, s.Len())
	for i := 0; i < s.Len(); i++ {
		terms[i] = s.At(i).WithLocus(upadesha.Asiddha, parts[i].String())
	}
	return s.ReplaceAll(terms)
}

// Apply performs one left-to-right sandhi pass over every sound in s: at
// each adjacent pair (x, y), the first matching vowel-sandhi rule (6.1.97,
// 101, 77, 78, 87/88, in that evaluation order) or consonant-sandhi rule
// (6.1.66) rewrites the pair. This is sandhi.py's module-level apply.
func Apply(s *dstate.State) *dstate.State {
	cells := flatten(s)
	for i := 0; i+1 < len(cells); i++ {
		x, y := cells[i].value, cells[i+1].value
		xr, ok := single(x)
		if !ok {
			continue
		}
		switch {
		case acGroup[xr]:
			cells[i].value, cells[i+1].value = acSandhi(x, y)
		case halGroup[xr]:
			cells[i].value, cells[i+1].value = halSandhi(x, y)
		}
	}
	return join(s, cells)
}

// acSandhi applies 6.1's vowel-sandhi rules to x as followed by y. A rule
// is part of ac sandhi iff the first letter is a vowel.
func acSandhi(x, y string) (string, string) {
	xr, _ := single(x)
	yr, yOk := single(y)

	switch {
	// 6.1.97 ato guNe
	case xr == 'a' && yOk && atEN[yr]:
		return "", y

	// 6.1.101 akaH savarNe dIrghaH
	case yOk && sound.Savarna(sound.Sound(xr), sound.Sound(yr)):
		return "", convert(operator.Dirgha, y)

	// 6.1.77 iko yaN aci
	case ikGroup[xr] && yOk && acGroup[yr]:
		return convert(ikoYanAci.Func, x), y

	// 6.1.78 eco 'yavAyAvaH
	case ecGroup[xr] && yOk && acGroup[yr]:
		converter := map[rune]string{'e': "ay", 'E': "Ay", 'o': "av", 'O': "Av"}
		return converter[xr], y

	// 6.1.87 Ad guNaH / 6.1.88 vRddhir eci
	case (xr == 'a' || xr == 'A') && yOk && icGroup[yr]:
		if ecGroup[yr] {
			return "", convert(operator.Vrddhi, y)
		}
		return "", convert(operator.Guna, y)
	}
	return x, y
}

// halSandhi applies 6.1.66 lopo vyor vali to x as followed by y. A rule is
// part of hal sandhi iff the first letter is a consonant.
func halSandhi(x, y string) (string, string) {
	xr, _ := single(x)
	yr, yOk := single(y)
	if (xr == 'v' || xr == 'y') && yOk && valGroup[yr] {
		return "", y
	}
	return x, y
}
