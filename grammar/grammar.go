// Package grammar assembles a bounded, representative rule corpus on top
// of the filter/operator/rule machinery: dhātu and tiṅ-ending
// construction, gaṇa-keyed vikaraṇa insertion, the sārvadhātuka-guṇa
// trigger, and the nasal-upadha drop a handful of consonant-final roots
// need. It is grounded throughout on original_source/vyakarana/dhatu.py's
// `vikarana` and `pada_options`, which enumerate the same gaṇa-to-vikaraṇa
// table and the "apit sārvadhātuka" ṅit-equivalence this package encodes
// directly as a saṃjña.
package grammar

import (
	"github.com/hareeshbabu82ns/vyakarana/upadesha"
)

// Dhatu builds the upadeśa for a verb root: no pratyaya-only strips
// apply, only the indicatory letters every upadeśa carries.
func Dhatu(raw string) (*upadesha.Upadesha, error) {
	u, err := upadesha.New(raw, upadesha.Options{})
	if err != nil {
		return nil, err
	}
	return u.AddSamjna("dhatu"), nil
}

// Vibhakti builds a tiṅ-ending upadeśa already resolved to its surface
// affix (bypassing lakāra-to-tiṅ substitution, which this bounded corpus
// does not implement): raw is parsed as a pratyaya, vibhakti-exempt of
// the t/s/m drop, then tagged tin+sarvadhatuka+parasmaipada — every
// scenario this package derives uses a parasmaipada sārvadhātuka tiṅ
// ("tip" and its kin).
func Vibhakti(raw string) (*upadesha.Upadesha, error) {
	u, err := upadesha.New(raw, upadesha.Options{Pratyaya: true, Vibhakti: true})
	if err != nil {
		return nil, err
	}
	return u.AddSamjna("tin", "sarvadhatuka", "parasmaipada"), nil
}

// vikarana builds the upadeśa for a vikaraṇa (the gaṇa-determined
// stem-forming affix inserted between dhātu and tiṅ) and tags it the way
// dhatu.py's `_yield` helper does: every vikaraṇa is an "anga".
//
// 1.2.4 sārvadhātukam apit: a sārvadhātuka affix without a labial (p) it
// letter behaves as ṅit — which 1.1.5 kṅiti ca then reads as blocking
// guṇa/vṛddhi of whatever precedes it. A śit vikaraṇa (leading
// indicatory "S", stripped to the "Sit" tag below) is sārvadhātuka by
// 3.4.113 tiṅśit sārvadhātukam; if parsing it did not also strip a
// trailing "pit" (Sap's own final -p, e.g.), it qualifies and is tagged
// "Nit" here so operator.Guna/Vrddhi's existing kit/Nit check on the
// right-context term blocks correctly without any extra plumbing.
func vikarana(raw string) (*upadesha.Upadesha, error) {
	u, err := upadesha.New(raw, upadesha.Options{Pratyaya: true})
	if err != nil {
		return nil, err
	}
	u = u.AddSamjna("anga")
	if u.HasSamjna("Sit") {
		u = u.AddSamjna("sarvadhatuka")
		if !u.HasSamjna("pit") {
			u = u.AddSamjna("Nit")
		}
	}
	return u, nil
}

func mustVikarana(raw string) *upadesha.Upadesha {
	u, err := vikarana(raw)
	if err != nil {
		panic(err)
	}
	return u
}
