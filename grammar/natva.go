package grammar

import (
	"github.com/hareeshbabu82ns/vyakarana/filter"
	"github.com/hareeshbabu82ns/vyakarana/operator"
	"github.com/hareeshbabu82ns/vyakarana/rule"
)

// ratvaTrigger names the sounds 8.4.1 raSAbhyAM no NaH samAnapade
// conditions ṇatva on: r, the vocalic ṛ/ṝ (same savarṇa class as r), and
// ṣ. The real sūtra's samānapada reach tolerates a chain of intervening
// vowels, anusvāra, and certain consonant classes (8.4.2's "nēmaṅ
// kavargavargayoḥ") between the trigger and the n it retroflexes,
// stopping at y/v/h/anunāsika boundaries further out (8.4.2) and at an
// intervening dental stop/sibilant that is not itself part of the ṭ/ṭh
// series (8.4.1's own scope plus 8.4.37-39's blockers). This package
// implements only the single-term reach the derivable roots need — the
// trigger anywhere in the preceding dhātu's value, with nothing at all
// between the dhātu and the n-initial term that follows it — and does
// not attempt the multi-term, blocker-aware traversal the full sūtra
// describes. No original_source file retrieved for this corpus models
// ṇatva at all; this rule is grounded directly in the sūtra text, not in
// a ported implementation.
var ratvaTrigger = filter.Contains("r", "f", "F", "z")

// natvaRule is 8.4.1, bounded as ratvaTrigger documents.
var natvaRule = rule.New(
	"8.4.1-ra-sa-abhyam-no-nah-samanapade",
	[]*filter.Filter{filter.And(filter.Samjna("dhatu"), ratvaTrigger), filter.Adi("n")},
	1, operator.Adi("8.4.1-natva", "R"),
)
