package filter

// Closed vocabularies auto() consults to classify a bare string spec into
// a samjna, al (sound-group), or lakshana filter, falling back to raw.
var (
	samjnaVocabulary = buildSamjnaVocabulary()
	soundVocabulary  = map[string]bool{
		"a": true, "at": true,
		"i": true, "it": true,
		"u": true, "ut": true,
		"f": true, "ft": true,
		"ak": true, "ik": true,
		"ac": true, "ec": true,
		"yaY": true,
		"JaS": true, "jaS": true,
		"car": true,
		"hal": true, "Jal": true,
	}
	pratyayaVocabulary = map[string]bool{
		"luk": true, "Slu": true, "lup": true,
		"la~w": true, "li~w": true, "lu~w": true, "lf~w": true, "le~w": true, "lo~w": true,
		"la~N": true, "li~N": true, "lu~N": true, "lf~N": true,
		"Sap": true, "Syan": true, "Snu": true, "Sa": true, "Snam": true, "u": true, "SnA": true,
		"Ric": true,
	}
)

func buildSamjnaVocabulary() map[string]bool {
	set := map[string]bool{
		"atmanepada": true, "parasmaipada": true,
		"dhatu": true, "anga": true, "pada": true, "pratyaya": true,
		"krt": true, "taddhita": true,
		"sarvadhatuka": true, "ardhadhatuka": true,
		"abhyasa": true, "abhyasta": true,
		"tin": true, "sup": true,
	}
	for _, l := range "kKGNYwqRpmS" {
		set[string(l)+"it"] = true
	}
	for _, l := range "aiufx" {
		set[string(l)+"dit"] = true
	}
	return set
}

// Auto classifies each spec into a samjna, al, or lakshana atom (falling
// back to raw when none of the closed vocabularies recognise it), then
// disjunctively combines the results. An empty spec list returns
// AllowAll.
func Auto(specs ...string) *Filter {
	if len(specs) == 0 {
		return AllowAll
	}
	var samjnas, als, lakshanas, raws []string
	for _, s := range specs {
		switch {
		case samjnaVocabulary[s]:
			samjnas = append(samjnas, s)
		case soundVocabulary[s]:
			als = append(als, s)
		case pratyayaVocabulary[s]:
			lakshanas = append(lakshanas, s)
		default:
			raws = append(raws, s)
		}
	}

	var parts []*Filter
	if len(raws) > 0 {
		parts = append(parts, Raw(raws...))
	}
	if len(lakshanas) > 0 {
		parts = append(parts, Lakshana(lakshanas...))
	}
	if len(samjnas) > 0 {
		parts = append(parts, Samjna(samjnas...))
	}
	if len(als) > 0 {
		parts = append(parts, Al(als...))
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return Or(parts...)
}
