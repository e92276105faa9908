// Package sound implements the SLP1-style phonological alphabet that the
// rest of the engine builds on: articulatory feature lookup, pratyāhāra
// (Māheśvara-sūtra) group parsing, savarṇa equivalence and a closest-match
// function between sounds.
//
// Known limitations: the alphabet is fixed at SLP1's ASCII repertoire; it
// does not attempt to cover Vedic accents beyond the two markers consumed
// by the upadesha package, and it has no notion of Devanāgarī or any other
// script.
package sound

import "fmt"

// Place is the articulatory place of a sound.
type Place int

const (
	PlaceNone Place = iota
	Guttural
	Palatal
	Retroflex
	Dental
	Labial
)

// Sound is a single SLP1 letter.
type Sound rune

// feature bundles the articulatory attributes of one sound.
type feature struct {
	place    Place
	vowel    bool
	long     bool
	nasal    bool
	voiced   bool
	aspirate bool
}

// features is the closed table of every sound this engine knows about.
// It is the SLP1 alphabet in full: simple and diphthong vowels, the five
// stop vargas, semivowels, sibilants and h.
var features = map[Sound]feature{
	'a': {place: Guttural, vowel: true},
	'A': {place: Guttural, vowel: true, long: true},
	'i': {place: Palatal, vowel: true},
	'I': {place: Palatal, vowel: true, long: true},
	'u': {place: Labial, vowel: true},
	'U': {place: Labial, vowel: true, long: true},
	'f': {place: Retroflex, vowel: true},
	'F': {place: Retroflex, vowel: true, long: true},
	'x': {place: Dental, vowel: true},
	'X': {place: Dental, vowel: true, long: true},
	'e': {place: Palatal, vowel: true, long: true},
	'o': {place: Labial, vowel: true, long: true},
	'E': {place: Palatal, vowel: true, long: true},
	'O': {place: Labial, vowel: true, long: true},

	'k': {place: Guttural}, 'K': {place: Guttural, aspirate: true},
	'g': {place: Guttural, voiced: true}, 'G': {place: Guttural, voiced: true, aspirate: true},
	'N': {place: Guttural, voiced: true, nasal: true},

	'c': {place: Palatal}, 'C': {place: Palatal, aspirate: true},
	'j': {place: Palatal, voiced: true}, 'J': {place: Palatal, voiced: true, aspirate: true},
	'Y': {place: Palatal, voiced: true, nasal: true},

	'w': {place: Retroflex}, 'W': {place: Retroflex, aspirate: true},
	'q': {place: Retroflex, voiced: true}, 'Q': {place: Retroflex, voiced: true, aspirate: true},
	'R': {place: Retroflex, voiced: true, nasal: true},

	't': {place: Dental}, 'T': {place: Dental, aspirate: true},
	'd': {place: Dental, voiced: true}, 'D': {place: Dental, voiced: true, aspirate: true},
	'n': {place: Dental, voiced: true, nasal: true},

	'p': {place: Labial}, 'P': {place: Labial, aspirate: true},
	'b': {place: Labial, voiced: true}, 'B': {place: Labial, voiced: true, aspirate: true},
	'm': {place: Labial, voiced: true, nasal: true},

	'y': {place: Palatal, voiced: true},
	'r': {place: Retroflex, voiced: true},
	'l': {place: Dental, voiced: true},
	'v': {place: Labial, voiced: true},

	'S': {place: Palatal},
	'z': {place: Retroflex},
	's': {place: Dental},
	'h': {place: Guttural, voiced: true, aspirate: true},
}

// savarnaPair pairs up the simple vowels for the length-only
// savarṇa relation; e, E, o, O have no short partner.
var savarnaPair = map[Sound]Sound{
	'a': 'A', 'A': 'a',
	'i': 'I', 'I': 'i',
	'u': 'U', 'U': 'u',
	'f': 'F', 'F': 'f',
	'x': 'X', 'X': 'x',
}

// Known reports whether r is a recognised SLP1 sound.
func Known(r rune) bool {
	_, ok := features[Sound(r)]
	return ok
}

// IsVowel reports whether s is a vowel.
func IsVowel(s Sound) bool {
	f, ok := features[s]
	return ok && f.vowel
}

// IsConsonant reports whether s is a consonant (a known sound that is not a
// vowel).
func IsConsonant(s Sound) bool {
	f, ok := features[s]
	return ok && !f.vowel
}

// Savarna reports whether x and y share articulatory place and nasality,
// independent of length — two sounds are savarṇa when differing, at most,
// in vowel length.
func Savarna(x, y Sound) bool {
	fx, ok1 := features[x]
	fy, ok2 := features[y]
	if !ok1 || !ok2 {
		return false
	}
	if fx.vowel != fy.vowel {
		return false
	}
	return fx.place == fy.place && fx.nasal == fy.nasal
}

// LongSavarna returns the long savarṇa partner of a short simple vowel, or
// s unchanged if it has none (already long, or a diphthong).
func LongSavarna(s Sound) Sound {
	if p, ok := savarnaPair[s]; ok && !features[s].long {
		return p
	}
	return s
}

// shivaToken is one letter of the flattened fourteen Māheśvara Sūtras.
type shivaToken struct {
	r  rune
	it bool
}

// shivaSutras is the flattened Māheśvara Sūtra sequence: the fourteen
// traditional sūtras laid end to end, each letter tagged with whether it is
// that sūtra's trailing it-marker.
var shivaSutras = buildShivaSutras()

func sutra(letters string, it rune) []shivaToken {
	toks := make([]shivaToken, 0, len(letters)+1)
	for _, r := range letters {
		toks = append(toks, shivaToken{r: r})
	}
	toks = append(toks, shivaToken{r: it, it: true})
	return toks
}

func buildShivaSutras() []shivaToken {
	var all []shivaToken
	all = append(all, sutra("aiu", 'R')...)
	all = append(all, sutra("fx", 'k')...)
	all = append(all, sutra("eo", 'N')...)
	all = append(all, sutra("EO", 'c')...)
	all = append(all, sutra("hyvr", 'w')...)
	all = append(all, sutra("l", 'R')...)
	all = append(all, sutra("YmNRn", 'm')...)
	all = append(all, sutra("JB", 'Y')...)
	all = append(all, sutra("GQD", 'z')...)
	all = append(all, sutra("jbgqd", 'S')...)
	all = append(all, sutra("KPCWTcwt", 'v')...)
	all = append(all, sutra("kp", 'y')...)
	all = append(all, sutra("Szs", 'r')...)
	all = append(all, sutra("h", 'l')...)
	return all
}

// Pratyahara resolves a named sound-group such as "ac", "hal", "ik" or
// "yaR" into the closed set of sounds it denotes, following the traditional
// algorithm: start scanning from the group's first letter and collect every
// non-it letter until the it-marker naming the group is reached, skipping
// over intervening it-markers. Simple vowels are closed under savarṇa (a
// short vowel pulls in its long partner) since the sūtras list only one
// representative per vowel grade.
func Pratyahara(name string) ([]Sound, error) {
	if len(name) < 2 {
		return nil, fmt.Errorf("sound: malformed pratyahara name %q", name)
	}
	runes := []rune(name)
	start := runes[0]
	it := runes[len(runes)-1]

	startIdx := -1
	for i, tok := range shivaSutras {
		if !tok.it && tok.r == start {
			startIdx = i
			break
		}
	}
	if startIdx < 0 {
		return nil, fmt.Errorf("sound: unknown pratyahara start letter %q in %q", start, name)
	}

	seen := map[Sound]bool{}
	var out []Sound
	add := func(s Sound) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}

	found := false
	for i := startIdx; i < len(shivaSutras); i++ {
		tok := shivaSutras[i]
		if tok.it {
			if tok.r == it {
				found = true
				break
			}
			continue
		}
		add(Sound(tok.r))
	}
	if !found {
		return nil, fmt.Errorf("sound: unknown pratyahara it-marker %q in %q", it, name)
	}

	closure := append([]Sound{}, out...)
	for _, s := range out {
		if p, ok := savarnaPair[s]; ok && !features[s].long {
			if !seen[p] {
				seen[p] = true
				closure = append(closure, p)
			}
		}
	}
	return closure, nil
}

// InGroup reports whether s is a member of the named pratyāhāra. A name
// that does not resolve as a pratyāhāra yields false; it is not read as a
// literal list of sounds.
func InGroup(name string, s Sound) bool {
	group, err := Pratyahara(name)
	if err != nil {
		return false
	}
	for _, g := range group {
		if g == s {
			return true
		}
	}
	return false
}

// sharedFeatures scores how many articulatory attributes x and y have in
// common; used to break ties in Closest.
func sharedFeatures(x, y Sound) int {
	fx, okx := features[x]
	fy, oky := features[y]
	if !okx || !oky {
		return 0
	}
	score := 0
	if fx.place == fy.place {
		score++
	}
	if fx.vowel == fy.vowel {
		score++
	}
	if fx.nasal == fy.nasal {
		score++
	}
	if fx.voiced == fy.voiced {
		score++
	}
	if fx.aspirate == fy.aspirate {
		score++
	}
	if fx.long == fy.long {
		score++
	}
	return score
}

// Closest picks the member of group sharing the most articulatory features
// with x; ties are broken by preferring a same-length candidate, then by
// the candidate's position within group. Closest is total whenever group is
// nonempty; it returns (0, false) for an empty group.
func Closest(x Sound, group []Sound) (Sound, bool) {
	if len(group) == 0 {
		return 0, false
	}
	fx := features[x]
	best := group[0]
	bestScore := -1
	bestSameLength := false
	for _, cand := range group {
		score := sharedFeatures(x, cand)
		sameLength := features[cand].long == fx.long
		if score > bestScore || (score == bestScore && sameLength && !bestSameLength) {
			best = cand
			bestScore = score
			bestSameLength = sameLength
		}
	}
	return best, true
}
