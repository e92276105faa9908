package operator

import (
	"fmt"

	"github.com/hareeshbabu82ns/vyakarana/sound"
	"github.com/hareeshbabu82ns/vyakarana/upadesha"
)

// Sthani is whatever a tasya substitution replaces the term with: a bare
// string (1.1.52/1.1.55), a sound-set (1.1.50 sthāne 'ntaratamaḥ), or a
// full upadeśa whose indicatory letters select the branch (1.1.46/47/53).
type Sthani interface{}

// SoundSet names a sound-set sthāni by the literal sounds it contains —
// the Go encoding of "not an upadeśa, no .value attribute" in the source
// material's duck-typed cascade.
type SoundSet []sound.Sound

// Tasya performs the ordered substitution cascade for "sthāne 'ntaratamaḥ"
// and its neighbouring sūtras.
// adi requests 1.1.54 ādeḥ parasya: replace the term's initial letter
// instead of its final one / whole value.
func Tasya(cur *upadesha.Upadesha, sthani Sthani, adi bool) (*upadesha.Upadesha, error) {
	value := []rune(cur.Value())

	if adi {
		var head string
		switch s := sthani.(type) {
		case string:
			head = s
		case SoundSet:
			if len(s) == 0 {
				return nil, fmt.Errorf("operator: tasya: adi substitution from an empty sound-set")
			}
			head = string(rune(s[0]))
		case *upadesha.Upadesha:
			head = s.Value()
		default:
			return nil, fmt.Errorf("operator: tasya: unclassifiable adi sthani %T", sthani)
		}
		if len(value) == 0 {
			return cur.WithLocus(upadesha.Value, head), nil
		}
		return cur.WithLocus(upadesha.Value, head+string(value[1:])), nil
	}

	switch s := sthani.(type) {
	case string:
		// 1.1.52 alo 'ntyasya / 1.1.55 anekAlSit sarvasya.
		if len(value) == 0 {
			return cur.WithLocus(upadesha.Value, s), nil
		}
		if len([]rune(s)) <= 1 {
			return cur.WithLocus(upadesha.Value, string(value[:len(value)-1])+s), nil
		}
		return cur.WithLocus(upadesha.Value, s), nil

	case SoundSet:
		// 1.1.50 sthAne 'ntaratamaH: the nearest member of the set.
		if len(value) == 0 {
			return nil, fmt.Errorf("operator: tasya: sound-set substitution into an empty term")
		}
		repl, ok := sound.Closest(sound.Sound(value[len(value)-1]), []sound.Sound(s))
		if !ok {
			return nil, fmt.Errorf("operator: tasya: empty sound-set sthani")
		}
		return cur.WithLocus(upadesha.Value, string(value[:len(value)-1])+string(repl)), nil

	case *upadesha.Upadesha:
		return tasyaUpadesha(cur, value, s)

	default:
		return nil, fmt.Errorf("operator: tasya: unclassifiable sthani %T", sthani)
	}
}

// tasyaUpadesha resolves the it-letter-driven branch of the cascade once
// sthani is known to be a full upadeśa.
func tasyaUpadesha(cur *upadesha.Upadesha, value []rune, other *upadesha.Upadesha) (*upadesha.Upadesha, error) {
	switch {
	case other.HasSamjna("mit"):
		// 1.1.47 mid aco 'ntyAt paraH: insert right after the last vowel.
		i := lastVowelIndex(value)
		if i < 0 {
			return cur.AddPart(other.Raw()).WithLocus(upadesha.Value, other.Value()+string(value)), nil
		}
		out := string(value[:i+1]) + other.Value() + string(value[i+1:])
		return cur.AddPart(other.Raw()).WithLocus(upadesha.Value, out), nil

	case other.HasSamjna("kit"):
		// 1.1.46 Adyantau Takitau, kit half: attach at the end.
		return cur.AddPart(other.Raw()).WithLocus(upadesha.Value, string(value)+other.Value()), nil

	case other.HasSamjna("wit"):
		// 1.1.46 Adyantau Takitau, wit half: attach at the start.
		return cur.AddPart(other.Raw()).WithLocus(upadesha.Value, other.Value()+string(value)), nil

	case len([]rune(other.Value())) == 1 || other.HasSamjna("Nit"):
		// 1.1.52 alo 'ntyasya / 1.1.53 Gic ca: replace the final letter.
		if len(value) == 0 {
			return cur.WithLocus(upadesha.Value, other.Value()), nil
		}
		return cur.WithLocus(upadesha.Value, string(value[:len(value)-1])+other.Value()), nil

	case other.HasSamjna("Sit") || len([]rune(other.Value())) > 1:
		// 1.1.55 anekAlSit sarvasya: replace wholesale.
		return cur.WithLocus(upadesha.Value, other.Value()), nil

	default:
		return nil, fmt.Errorf("operator: tasya: sthani %q (raw %q) matched no branch of the substitution cascade", other.Value(), other.Raw())
	}
}

// TasyaOp wraps Tasya as a named Op for the rule registry.
func TasyaOp(name string, sthani Sthani, adi bool) *Op {
	category := CategoryTasya
	if adi {
		category = CategoryAdi
	}
	return &Op{
		Category: category,
		Name:     paramName(category.String(), name),
		Params:   []string{name},
		Func: func(cur, right *upadesha.Upadesha) (*upadesha.Upadesha, error) {
			return Tasya(cur, sthani, adi)
		},
	}
}

// Adi is tasya with the adi flag forced on: 1.1.54 AdeH parasya.
func Adi(name string, sthani Sthani) *Op {
	return TasyaOp(name, sthani, true)
}
