// Package operator implements the transforms a rule applies once its
// filter window matches: value-stack substitution, phonological
// transforms (guṇa, vṛddhi, dīrgha, hrasva, saṃprasāraṇa), saṃjñā
// assignment, and the bookkeeping an insert or yathāsaṃkhya remap needs.
//
// Every per-term operator (Op) is a plain function from (current term,
// right-context term) to a (possibly unchanged) new term; insert is a
// StateOp over the whole state instead. None of them mutate their
// arguments, matching upadesha.Upadesha's own copy-on-write discipline.
package operator

import (
	"fmt"
	"strings"

	"github.com/hareeshbabu82ns/vyakarana/sound"
	"github.com/hareeshbabu82ns/vyakarana/upadesha"
)

// Category names an operator family, for the conflict predicate and for
// the registry's rule-kind inference (samjna-producing vs. tasya vs.
// insert).
type Category int

const (
	CategoryTasya Category = iota
	CategoryAdi
	CategoryAlTasya
	CategoryTi
	CategoryUpadha
	CategoryInsert
	CategoryReplace
	CategoryAddSamjna
	CategoryYathasamkhya
	CategoryGuna
	CategoryVrddhi
	CategoryDirgha
	CategoryHrasva
	CategorySamprasarana
)

func (c Category) String() string {
	switch c {
	case CategoryTasya:
		return "tasya"
	case CategoryAdi:
		return "adi"
	case CategoryAlTasya:
		return "al_tasya"
	case CategoryTi:
		return "ti"
	case CategoryUpadha:
		return "upadha"
	case CategoryInsert:
		return "insert"
	case CategoryReplace:
		return "replace"
	case CategoryAddSamjna:
		return "add_samjna"
	case CategoryYathasamkhya:
		return "yathasamkhya"
	case CategoryGuna:
		return "guna"
	case CategoryVrddhi:
		return "vrddhi"
	case CategoryDirgha:
		return "dirgha"
	case CategoryHrasva:
		return "hrasva"
	case CategorySamprasarana:
		return "samprasarana"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// conflictPairs is the static conflict predicate: unordered category pairs
// that cannot both fire at the same locus. A category paired with itself
// means "no two distinct operators of this category may both fire."
var conflictPairs = map[[2]Category]bool{
	{CategoryDirgha, CategoryHrasva}:  true,
	{CategoryHrasva, CategoryDirgha}:  true,
	{CategoryInsert, CategoryInsert}:  true,
	{CategoryReplace, CategoryReplace}: true,
	{CategoryAddSamjna, CategoryAddSamjna}: true,
	{CategoryTi, CategoryTasya}: true,
	{CategoryTasya, CategoryTi}: true,
}

// Conflicts reports whether a and b may not both fire at the same locus.
func Conflicts(a, b Category) bool {
	return conflictPairs[[2]Category{a, b}]
}

// Op is a single named, parameterized transform. Func never mutates its
// arguments; right is nil when the operator has no right-context term.
type Op struct {
	Category Category
	Name     string
	Params   []string
	Func     func(cur, right *upadesha.Upadesha) (*upadesha.Upadesha, error)
}

// Equal reports whether two operators are the same operation with the
// same parameters — the registry's conflict inference keys off this, not
// pointer identity.
func (o *Op) Equal(other *Op) bool {
	if other == nil {
		return false
	}
	return o.Name == other.Name && strings.Join(o.Params, "\x00") == strings.Join(other.Params, "\x00")
}

func paramName(category string, params ...string) string {
	return category + "(" + strings.Join(params, ", ") + ")"
}

var yanGroup = mustPratyahara("yaR")
var acGroup = mustPratyahara("ac")

func mustPratyahara(name string) []sound.Sound {
	g, err := sound.Pratyahara(name)
	if err != nil {
		panic(err)
	}
	return g
}

func inGroup(group []sound.Sound, s sound.Sound) bool {
	for _, g := range group {
		if g == s {
			return true
		}
	}
	return false
}

// lastVowelIndex returns the index of the rightmost vowel in runes, or -1
// if there is none.
func lastVowelIndex(runes []rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if sound.IsVowel(sound.Sound(runes[i])) {
			return i
		}
	}
	return -1
}

// Dirgha lengthens the first short simple vowel in the term's value,
// leaving everything else unchanged. 1.1.? dīrgha is otherwise
// unconditional — unlike guṇa/vṛddhi it has no kit/Nit blocking clause.
func Dirgha(cur, right *upadesha.Upadesha) (*upadesha.Upadesha, error) {
	converter := map[rune]rune{'a': 'A', 'i': 'I', 'u': 'U', 'f': 'F', 'x': 'X'}
	runes := []rune(cur.Value())
	for i, r := range runes {
		if long, ok := converter[r]; ok {
			runes[i] = long
			return cur.WithLocus(upadesha.Value, string(runes)), nil
		}
	}
	return cur, nil
}

// Guna applies 1.1.2 adeG guṇaḥ / 1.1.3 iko guṇavṛddhī to the first
// guṇa-able vowel in the term's value, then tags the result with the
// "guna" saṃjñā. 1.1.5 kṅiti ca (na) suppresses it when right bears kit
// or Nit.
func Guna(cur, right *upadesha.Upadesha) (*upadesha.Upadesha, error) {
	if right != nil && right.HasSamjna("kit", "Nit") {
		return cur, nil
	}
	converter := map[rune]string{
		'i': "e", 'I': "e", 'u': "o", 'U': "o",
		'f': "ar", 'F': "ar", 'x': "al", 'X': "al",
	}
	runes := []rune(cur.Value())
	for i, r := range runes {
		if repl, ok := converter[r]; ok {
			out := string(runes[:i]) + repl + string(runes[i+1:])
			return cur.WithLocus(upadesha.Value, out).AddSamjna("guna"), nil
		}
	}
	return cur, nil
}

// Vrddhi applies 1.1.1 vṛddhir ādaic / 1.1.3 iko guṇavṛddhī, blocked the
// same way Guna is.
func Vrddhi(cur, right *upadesha.Upadesha) (*upadesha.Upadesha, error) {
	if right != nil && right.HasSamjna("kit", "Nit") {
		return cur, nil
	}
	converter := map[rune]string{
		'i': "E", 'I': "E", 'u': "O", 'U': "O",
		'f': "Ar", 'F': "Ar", 'x': "Al", 'X': "Al",
	}
	runes := []rune(cur.Value())
	for i, r := range runes {
		if repl, ok := converter[r]; ok {
			out := string(runes[:i]) + repl + string(runes[i+1:])
			return cur.WithLocus(upadesha.Value, out), nil
		}
	}
	return cur, nil
}

// Hrasva shortens the first long or diphthong vowel in the term's value
// to its short equivalent (e and o count as the guṇa grade of i/u).
func Hrasva(cur, right *upadesha.Upadesha) (*upadesha.Upadesha, error) {
	converter := map[rune]rune{
		'A': 'a', 'I': 'i', 'U': 'u', 'F': 'f', 'X': 'x',
		'e': 'i', 'E': 'i', 'o': 'u', 'O': 'u',
	}
	runes := []rune(cur.Value())
	for i, r := range runes {
		if short, ok := converter[r]; ok {
			runes[i] = short
			return cur.WithLocus(upadesha.Value, string(runes)), nil
		}
	}
	return cur, nil
}

// Samprasarana applies 1.1.45 ig yaṇaḥ saṃprasāraṇam: the rightmost
// semivowel (y/v/r/l) becomes its homorganic vowel (i/u/ṛ/ḷ), then 6.4.108
// saṃprasāraṇāc ca drops the vowel immediately following it, if any.
//
// The retrieved reference implementation indexes one position past the
// match with a bare negative index, which in Python silently wraps around
// to the start of the string instead of raising — clearly unintended. This
// implementation skips the drop instead of wrapping when the match is the
// final letter of the value.
func Samprasarana(cur, right *upadesha.Upadesha) (*upadesha.Upadesha, error) {
	runes := []rune(cur.Value())
	idx := -1
	for i := len(runes) - 1; i >= 0; i-- {
		if inGroup(yanGroup, sound.Sound(runes[i])) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return cur, nil
	}
	repl, ok := sound.Closest(sound.Sound(runes[idx]), []sound.Sound{'i', 'f', 'x', 'u'})
	if !ok {
		return cur, nil
	}
	runes[idx] = rune(repl)
	if idx+1 < len(runes) && inGroup(acGroup, sound.Sound(runes[idx+1])) {
		runes = append(runes[:idx+1], runes[idx+2:]...)
	}
	return cur.WithLocus(upadesha.Value, string(runes)), nil
}

// DirghaOp, GunaOp, VrddhiOp, HrasvaOp, and SamprasaranaOp wrap the bare
// phonological-transform functions above as named Ops, so the rule registry
// has a Category/Name to key its conflict and rank bookkeeping on — the
// functions themselves stay plain so operator_test.go can call them
// directly without constructing a Rule.
var (
	DirghaOp       = &Op{Category: CategoryDirgha, Name: "dirgha", Func: Dirgha}
	GunaOp         = &Op{Category: CategoryGuna, Name: "guna", Func: Guna}
	VrddhiOp       = &Op{Category: CategoryVrddhi, Name: "vrddhi", Func: Vrddhi}
	HrasvaOp       = &Op{Category: CategoryHrasva, Name: "hrasva", Func: Hrasva}
	SamprasaranaOp = &Op{Category: CategorySamprasarana, Name: "samprasarana", Func: Samprasarana}
)

// Replace performs naive substring replacement on the term's value.
func Replace(target, result string) *Op {
	return &Op{
		Category: CategoryReplace,
		Name:     paramName("replace", target, result),
		Params:   []string{target, result},
		Func: func(cur, right *upadesha.Upadesha) (*upadesha.Upadesha, error) {
			return cur.WithLocus(upadesha.Value, strings.Replace(cur.Value(), target, result, 1)), nil
		},
	}
}

// Ti replaces the ṭi — the suffix starting at the term's last vowel —
// with result (1.1.64 taparas tatkālasya's sibling notion, "ṭeḥ").
func Ti(result string) *Op {
	return &Op{
		Category: CategoryTi,
		Name:     paramName("ti", result),
		Params:   []string{result},
		Func: func(cur, right *upadesha.Upadesha) (*upadesha.Upadesha, error) {
			runes := []rune(cur.Value())
			i := lastVowelIndex(runes)
			if i < 0 {
				return cur.WithLocus(upadesha.Value, cur.Value()+result), nil
			}
			return cur.WithLocus(upadesha.Value, string(runes[:i])+result), nil
		},
	}
}

// Upadha replaces the penultimate letter of the term's value with result.
func Upadha(result string) *Op {
	return &Op{
		Category: CategoryUpadha,
		Name:     paramName("upadha", result),
		Params:   []string{result},
		Func: func(cur, right *upadesha.Upadesha) (*upadesha.Upadesha, error) {
			runes := []rune(cur.Value())
			if len(runes) < 2 {
				return cur, nil
			}
			out := string(runes[:len(runes)-2]) + result + string(runes[len(runes)-1])
			if out == cur.Value() {
				return cur, nil
			}
			return cur.WithLocus(upadesha.Value, out), nil
		},
	}
}

// AddSamjna unions tags into the term's saṃjñā set.
func AddSamjna(tags ...string) *Op {
	return &Op{
		Category: CategoryAddSamjna,
		Name:     paramName("add_samjna", tags...),
		Params:   tags,
		Func: func(cur, right *upadesha.Upadesha) (*upadesha.Upadesha, error) {
			return cur.AddSamjna(tags...), nil
		},
	}
}

// AlTasya walks the term's value; the first letter belonging to the
// target sound-set is replaced with its closest-by-features match from
// the result sound-set. If the replaced letter was ṛ/ṝ (f/F) and the
// chosen result lands in aṬ (a short or long simple vowel), an "r" is
// appended, recovering the consonantal tail ṛ's vocalic grade drops.
func AlTasya(target, result string) (*Op, error) {
	targetGroup, err := expandGroup(target)
	if err != nil {
		return nil, err
	}
	resultGroup, err := expandGroup(result)
	if err != nil {
		return nil, err
	}
	arGroup, err := sound.Pratyahara("aR")
	if err != nil {
		return nil, err
	}
	return &Op{
		Category: CategoryAlTasya,
		Name:     paramName("al_tasya", target, result),
		Params:   []string{target, result},
		Func: func(cur, right *upadesha.Upadesha) (*upadesha.Upadesha, error) {
			runes := []rune(cur.Value())
			for i, r := range runes {
				s := sound.Sound(r)
				if !inGroup(targetGroup, s) {
					continue
				}
				repl, ok := sound.Closest(s, resultGroup)
				if !ok {
					break
				}
				tail := string(repl)
				if (s == 'f' || s == 'F') && inGroup(arGroup, repl) {
					tail += "r"
				}
				out := string(runes[:i]) + tail + string(runes[i+1:])
				return cur.WithLocus(upadesha.Value, out), nil
			}
			return cur, nil
		},
	}, nil
}

func expandGroup(name string) ([]sound.Sound, error) {
	if group, err := sound.Pratyahara(name); err == nil {
		return group, nil
	}
	var out []sound.Sound
	for _, r := range name {
		out = append(out, sound.Sound(r))
	}
	return out, nil
}

// Yathasamkhya remaps the term's raw form bijectively by position: a term
// whose raw is sources[i] is rewritten to results[i].
func Yathasamkhya(sources, results []string) (*Op, error) {
	if len(sources) != len(results) {
		return nil, fmt.Errorf("operator: yathasamkhya: %d sources but %d results", len(sources), len(results))
	}
	converter := make(map[string]string, len(sources))
	for i, s := range sources {
		converter[s] = results[i]
	}
	return &Op{
		Category: CategoryYathasamkhya,
		Name:     paramName("yathasamkhya", append(append([]string{}, sources...), results...)...),
		Params:   append(append([]string{}, sources...), results...),
		Func: func(cur, right *upadesha.Upadesha) (*upadesha.Upadesha, error) {
			out, ok := converter[cur.Raw()]
			if !ok {
				return cur, nil
			}
			return cur.WithRaw(out, upadesha.Options{})
		},
	}, nil
}
