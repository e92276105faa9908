// Package upadesha implements the annotated lexical element at the centre
// of the engine: a five-layer value stack, the saṃjñā/lakṣaṇa/ops tag
// sets, and the indicatory-letter parser that turns a raw declared form
// ("anta~", "kvasu~") into a clean working value plus the tags its dropped
// letters leave behind.
//
// An Upadesha is an immutable value: every method that would mutate it
// returns a modified copy, a struct-and-tag convention over in-place
// mutation.
package upadesha

import (
	"fmt"
	"strings"

	"github.com/hareeshbabu82ns/vyakarana/internal/slprune"
	"github.com/hareeshbabu82ns/vyakarana/sound"
)

// Locus names one layer of the five-layer value stack.
type Locus int

const (
	Raw Locus = iota
	Clean
	Value
	Asiddhavat
	Asiddha
	numLoci
)

func (l Locus) String() string {
	switch l {
	case Raw:
		return "raw"
	case Clean:
		return "clean"
	case Value:
		return "value"
	case Asiddhavat:
		return "asiddhavat"
	case Asiddha:
		return "asiddha"
	default:
		return fmt.Sprintf("Locus(%d)", int(l))
	}
}

// stack is the five-layer value stack. Each layer either carries its own
// explicit override or is unset, in which case reads fall back to the
// nearest earlier (lower-index) set layer. Writing a layer therefore
// automatically propagates forward to every later layer that has not
// itself been explicitly overridden, without needing to touch them.
type stack struct {
	set  [numLoci]bool
	vals [numLoci]string
}

func (s stack) get(l Locus) string {
	for i := l; i >= Raw; i-- {
		if s.set[i] {
			return s.vals[i]
		}
	}
	return ""
}

func (s stack) with(l Locus, v string) stack {
	ns := s
	ns.set[l] = true
	ns.vals[l] = v
	return ns
}

// Upadesha is an annotated lexical element: root, suffix, or infix, as
// declared by the grammar, including indicatory letters.
type Upadesha struct {
	stack    stack
	samjna   map[string]bool
	lakshana map[string]bool
	ops      map[string]bool
	parts    map[string]bool
}

// Options controls the indicatory-letter parse.
type Options struct {
	// Pratyaya marks this upadesha as an affix: leading it-letters in
	// {z,c,j,Y,w,q,R} (and, unless Taddhita, {l,S,ku}) are stripped.
	Pratyaya bool
	// Vibhakti suppresses the final-consonant-drop rule when the final
	// consonant is one of t, s, m.
	Vibhakti bool
	// Taddhita suppresses the second leading-letter strip that Pratyaya
	// would otherwise perform.
	Taddhita bool
}

func cloneSet(m map[string]bool) map[string]bool {
	out := make(map[string]bool, len(m))
	for k := range m {
		out[k] = true
	}
	return out
}

func unionSet(m map[string]bool, names ...string) map[string]bool {
	out := cloneSet(m)
	for _, n := range names {
		out[n] = true
	}
	return out
}

// New parses raw into its clean form and indicatory-letter samjnas,
// returning the resulting Upadesha.
func New(raw string, opts Options) (*Upadesha, error) {
	clean, tags, err := parseIt(raw, opts)
	if err != nil {
		return nil, err
	}
	st := stack{}
	st = st.with(Raw, raw)
	st = st.with(Clean, clean)
	samjna := make(map[string]bool, len(tags))
	for _, t := range tags {
		samjna[t] = true
	}
	return &Upadesha{
		stack:    st,
		samjna:   samjna,
		lakshana: map[string]bool{},
		ops:      map[string]bool{},
		parts:    map[string]bool{},
	}, nil
}

// ku is the traditional velar substitute-group used by the second
// leading-letter strip: k, K, g, G, N.
var kuGroup = map[rune]bool{'k': true, 'K': true, 'g': true, 'G': true, 'N': true}

// tusma is the closed {t, s, m} group exempted from the final-consonant
// drop under Vibhakti (traditionally "tusmāḥ").
var tusma = map[rune]bool{'t': true, 's': true, 'm': true}

// parseIt runs the indicatory-letter parse step by step.
func parseIt(raw string, opts Options) (string, []string, error) {
	if raw == "" {
		return "", nil, nil
	}
	runes := []rune(raw)
	var tags []string

	// Step 1: accent markers, tagging anudattet/svaritet when preceded by
	// the nasal marker, anudatta/svarita otherwise.
	for i, r := range runes {
		if !slprune.IsAccent(r) {
			continue
		}
		precededByNasal := i > 0 && runes[i-1] == slprune.Nasal
		switch {
		case r == slprune.Anudatta && precededByNasal:
			tags = append(tags, "anudattet")
		case r == slprune.Anudatta:
			tags = append(tags, "anudatta")
		case r == slprune.Svarita && precededByNasal:
			tags = append(tags, "svaritet")
		case r == slprune.Svarita:
			tags = append(tags, "svarita")
		}
	}

	// Step 2: strip accent markers.
	clean := []rune(slprune.StripAccents(string(runes)))

	// Step 3: trailing "i~r" keeps "ir", stripped of the nasal marker.
	if len(clean) >= 3 && clean[len(clean)-3] == 'i' && clean[len(clean)-2] == '~' && clean[len(clean)-1] == 'r' {
		clean = append(clean[:len(clean)-2], clean[len(clean)-1])
		tags = append(tags, "ir"+"it")
	}

	keep := make([]bool, len(clean))
	for i := range keep {
		keep[i] = true
	}

	// Step 4: every nasal-marked vowel V~ anywhere: drop both, tag Vdit.
	for i, r := range clean {
		if r != '~' || i == 0 {
			continue
		}
		v := clean[i-1]
		if !isSimpleVowel(v) {
			continue
		}
		keep[i-1] = false
		keep[i] = false
		tags = append(tags, string(v)+"d"+"it")
	}

	// Step 5: hal-antyam — drop the final consonant of clean, unless
	// vibhakti is set and it is in {t, s, m}. The final letter examined
	// here is the literal last rune of clean as it stood after step 3 —
	// unaffected by step 4's keep-marking, which only flags positions for
	// later removal without shortening clean itself.
	if n := len(clean); n > 0 {
		antya := clean[n-1]
		if sound.IsConsonant(sound.Sound(antya)) {
			if !(opts.Vibhakti && tusma[antya]) {
				keep[n-1] = false
				tags = append(tags, string(antya)+"it")
			}
		}
	}

	// Step 6: a leading Yi/wu/qu drops both letters and records a
	// vit/It designation from the following vowel.
	if len(clean) >= 2 {
		two := string(clean[0:2])
		if two == "Yi" || two == "wu" || two == "qu" {
			keep[0] = false
			keep[1] = false
			if strings.HasSuffix(two, "u") {
				tags = append(tags, string(clean[0])+"vit")
			} else {
				tags = append(tags, string(clean[0])+"It")
			}
		}
	}

	// Step 7: pratyaya-only leading strips.
	if opts.Pratyaya && len(clean) > 0 {
		adi := clean[0]
		if strings.ContainsRune("zcjYwqR", adi) {
			keep[0] = false
			tags = append(tags, string(adi)+"it")
		}
		if !opts.Taddhita {
			if adi == 'l' || adi == 'S' || kuGroup[adi] {
				keep[0] = false
				tags = append(tags, string(adi)+"it")
			}
		}
	}

	// Step 8: tasya lopah — drop whatever step 1-7 marked.
	var out strings.Builder
	for i, r := range clean {
		if keep[i] {
			out.WriteRune(r)
		}
	}
	return out.String(), tags, nil
}

func isSimpleVowel(r rune) bool {
	switch r {
	case 'a', 'A', 'i', 'I', 'u', 'U', 'f', 'F', 'x', 'X', 'e', 'E', 'o', 'O':
		return true
	default:
		return false
	}
}

// Get returns the current value at layer l.
func (u *Upadesha) Get(l Locus) string { return u.stack.get(l) }

// Raw returns the immutable raw declared form.
func (u *Upadesha) Raw() string { return u.stack.get(Raw) }

// Clean returns the form with indicatory markers stripped.
func (u *Upadesha) Clean() string { return u.stack.get(Clean) }

// Value returns the primary mutable view.
func (u *Upadesha) Value() string { return u.stack.get(Value) }

// Asiddhavat returns the view late rules pretend is the only change so far.
func (u *Upadesha) Asiddhavat() string { return u.stack.get(Asiddhavat) }

// Asiddha returns the view the final phonological pass edits.
func (u *Upadesha) Asiddha() string { return u.stack.get(Asiddha) }

// Adi returns the first letter of layer l, or 0 if l is empty.
func (u *Upadesha) Adi(l Locus) rune {
	v := []rune(u.Get(l))
	if len(v) == 0 {
		return 0
	}
	return v[0]
}

// Antya returns the last letter of layer l, or 0 if l is empty.
func (u *Upadesha) Antya(l Locus) rune {
	v := []rune(u.Get(l))
	if len(v) == 0 {
		return 0
	}
	return v[len(v)-1]
}

// Upadha returns the penultimate letter of layer l, or 0 if too short.
func (u *Upadesha) Upadha(l Locus) rune {
	v := []rune(u.Get(l))
	if len(v) < 2 {
		return 0
	}
	return v[len(v)-2]
}

// WithLocus returns a copy of u with layer l (and, implicitly, every later
// unset layer) set to v.
func (u *Upadesha) WithLocus(l Locus, v string) *Upadesha {
	nu := u.shallowCopy()
	nu.stack = u.stack.with(l, v)
	return nu
}

// WithRaw reassigns raw (and re-derives clean), recording the previous raw
// value into lakshana — the historical-alias set rules may still consult.
func (u *Upadesha) WithRaw(raw string, opts Options) (*Upadesha, error) {
	clean, tags, err := parseIt(raw, opts)
	if err != nil {
		return nil, err
	}
	nu := u.shallowCopy()
	nu.stack = stack{}
	nu.stack = nu.stack.with(Raw, raw)
	nu.stack = nu.stack.with(Clean, clean)
	nu.samjna = unionSet(u.samjna, tags...)
	nu.lakshana = unionSet(u.lakshana, u.Raw())
	return nu, nil
}

func (u *Upadesha) shallowCopy() *Upadesha {
	return &Upadesha{
		stack:    u.stack,
		samjna:   cloneSet(u.samjna),
		lakshana: cloneSet(u.lakshana),
		ops:      cloneSet(u.ops),
		parts:    cloneSet(u.parts),
	}
}

// HasSamjna reports whether any of names is in the saṃjñā set.
func (u *Upadesha) HasSamjna(names ...string) bool {
	for _, n := range names {
		if u.samjna[n] {
			return true
		}
	}
	return false
}

// Samjna returns the saṃjñā set as a slice, for diagnostics and tests.
func (u *Upadesha) Samjna() []string { return keys(u.samjna) }

// AddSamjna returns a copy of u with names unioned into the saṃjñā set.
func (u *Upadesha) AddSamjna(names ...string) *Upadesha {
	nu := u.shallowCopy()
	nu.samjna = unionSet(u.samjna, names...)
	return nu
}

// RemoveSamjna returns a copy of u with names removed from the saṃjñā set
// — used only to retract exactly the tags an optional saṃjñā rule added
// when that rule's option is declined.
func (u *Upadesha) RemoveSamjna(names ...string) *Upadesha {
	nu := u.shallowCopy()
	for _, n := range names {
		delete(nu.samjna, n)
	}
	return nu
}

// Lakshana returns the historical-raw-value alias set.
func (u *Upadesha) Lakshana() []string { return keys(u.lakshana) }

// HasLakshana reports whether any of values was ever this term's raw form.
func (u *Upadesha) HasLakshana(values ...string) bool {
	for _, v := range values {
		if u.lakshana[v] {
			return true
		}
	}
	return false
}

// HasOp reports whether operator name has already been applied to this
// term.
func (u *Upadesha) HasOp(name string) bool { return u.ops[name] }

// AddOp returns a copy of u with names unioned into the applied-operator
// set.
func (u *Upadesha) AddOp(names ...string) *Upadesha {
	nu := u.shallowCopy()
	nu.ops = unionSet(u.ops, names...)
	return nu
}

// Parts returns the raw forms of every upadeśa ever inserted into this
// term by a tasya substitution, in the same unordered-set shape Lakshana
// and HasOp already use.
func (u *Upadesha) Parts() []string { return keys(u.parts) }

// HasPart reports whether any of raws was ever inserted into this term.
func (u *Upadesha) HasPart(raws ...string) bool {
	for _, r := range raws {
		if u.parts[r] {
			return true
		}
	}
	return false
}

// AddPart returns a copy of u with raws unioned into the inserted-part set.
func (u *Upadesha) AddPart(raws ...string) *Upadesha {
	nu := u.shallowCopy()
	nu.parts = unionSet(u.parts, raws...)
	return nu
}

func keys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func (u *Upadesha) String() string {
	return fmt.Sprintf("Upadesha(%q)", u.Value())
}
