package upadesha

import "strings"

// NewAnga parses raw as a nominal stem: every Upadesha that can take
// further affixes carries the "anga" tag.
func NewAnga(raw string, opts Options) (*Upadesha, error) {
	u, err := New(raw, opts)
	if err != nil {
		return nil, err
	}
	return u.AddSamjna("anga"), nil
}

// NewDhatu parses raw as a verbal root: it carries "anga" and "dhatu", and
// its value is normalized per 6.1.64 (initial ṣ → s, with a matching
// retroflex-to-dental shift one letter further in) and 6.1.65 (initial
// ṇ → n).
func NewDhatu(raw string, opts Options) (*Upadesha, error) {
	u, err := New(raw, opts)
	if err != nil {
		return nil, err
	}
	u = u.AddSamjna("anga", "dhatu")

	value := u.Value()
	if value == "" {
		return u, nil
	}
	runes := []rune(value)
	switch runes[0] {
	case 'z': // 6.1.64 dhAtvAder SaH saH
		runes[0] = 's'
		if len(runes) > 1 {
			switch runes[1] {
			case 'w':
				runes[1] = 't'
			case 'W':
				runes[1] = 'T'
			}
		}
	case 'R': // 6.1.65 no naH
		runes[0] = 'n'
	default:
		return u, nil
	}
	return u.WithLocus(Value, string(runes)), nil
}

// NewPratyaya parses raw as an affix (the Pratyaya construction flag is
// forced on) and carries the "pratyaya" tag. The lup/luk/ślu markers that
// denote a null affix collapse its value to the empty string.
func NewPratyaya(raw string, opts Options) (*Upadesha, error) {
	opts.Pratyaya = true
	u, err := New(raw, opts)
	if err != nil {
		return nil, err
	}
	u = u.AddSamjna("pratyaya")
	switch u.Raw() {
	case "lu~k", "Slu~", "lu~p":
		u = u.WithLocus(Value, "")
	}
	return u, nil
}

// NewKrt parses raw as a kṛt affix: it carries "krt" plus either
// "sarvadhatuka" or "ardhadhatuka" (3.4.113/3.4.115), and "Nit" when
// sārvadhātuka and not already pit (1.2.4).
func NewKrt(raw string, opts Options) (*Upadesha, error) {
	u, err := NewPratyaya(raw, opts)
	if err != nil {
		return nil, err
	}
	u = u.AddSamjna("krt")

	if u.HasSamjna("Sit") && u.Raw() != "li~w" {
		u = u.AddSamjna("sarvadhatuka")
	} else {
		u = u.AddSamjna("ardhadhatuka")
	}
	if u.HasSamjna("sarvadhatuka") && !u.HasSamjna("pit") {
		u = u.AddSamjna("Nit")
	}
	return u, nil
}

// NewVibhakti parses raw as a vibhakti ending (the Pratyaya and Vibhakti
// construction flags are forced on) and carries the "vibhakti" tag.
func NewVibhakti(raw string, opts Options) (*Upadesha, error) {
	opts.Pratyaya = true
	opts.Vibhakti = true
	u, err := New(raw, opts)
	if err != nil {
		return nil, err
	}
	return u.AddSamjna("pratyaya", "vibhakti"), nil
}

// IsNull reports whether u denotes a lup/luk/ślu null affix: an empty
// value that should contribute nothing to the surface form but still
// carries its samjnas for rules that key off the original raw form.
func IsNull(u *Upadesha) bool {
	return u.Value() == "" && strings.Contains(u.Raw(), "lu")
}
