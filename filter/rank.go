package filter

// Rank is the five-component specificity vector used to order competing
// rules, in decreasing authority: Category (kind of rule), Locus (which
// value-stack layer), then three "how narrow was the matched set" components —
// Upadesha (raw/lakshana/gana matching), Samjna, and Al (adi/al/upadha
// sound-set matching). Rules are ordered by lexicographic, descending
// comparison over this vector.
type Rank struct {
	Category float64
	Locus    float64
	Upadesha float64
	Samjna   float64
	Al       float64
}

// Less orders ranks lexicographically by descending specificity: r is
// "less specific than" other if, at the first differing component
// (scanning Category, Locus, Upadesha, Samjna, Al in order), r's value is
// smaller.
func (r Rank) Less(other Rank) bool {
	if r.Category != other.Category {
		return r.Category < other.Category
	}
	if r.Locus != other.Locus {
		return r.Locus < other.Locus
	}
	if r.Upadesha != other.Upadesha {
		return r.Upadesha < other.Upadesha
	}
	if r.Samjna != other.Samjna {
		return r.Samjna < other.Samjna
	}
	return r.Al < other.Al
}

// WithCategoryLocus returns a copy of r with its Category and Locus
// components replaced — the rule package uses this to stamp a rule's
// kind and target-locus weight onto the rank its filter window already
// computed.
func (r Rank) WithCategoryLocus(category, locus float64) Rank {
	r.Category = category
	r.Locus = locus
	return r
}

// SumRanks exposes andRanks to other packages: the rank of a rule's
// filter window is the component-wise sum of each window filter's rank.
func SumRanks(ranks ...Rank) Rank {
	return andRanks(ranks...)
}

// And combines ranks by component-wise addition — the rank of a
// conjunction of filters.
func andRanks(ranks ...Rank) Rank {
	var out Rank
	for _, r := range ranks {
		out.Category += r.Category
		out.Locus += r.Locus
		out.Upadesha += r.Upadesha
		out.Samjna += r.Samjna
		out.Al += r.Al
	}
	return out
}

// Or combines ranks by component-wise minimum — the rank of a disjunction
// of filters.
func orRanks(ranks ...Rank) Rank {
	if len(ranks) == 0 {
		return Rank{}
	}
	out := ranks[0]
	for _, r := range ranks[1:] {
		out.Category = minf(out.Category, r.Category)
		out.Locus = minf(out.Locus, r.Locus)
		out.Upadesha = minf(out.Upadesha, r.Upadesha)
		out.Samjna = minf(out.Samjna, r.Samjna)
		out.Al = minf(out.Al, r.Al)
	}
	return out
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func withUpadesha(size int) Rank {
	return Rank{Upadesha: 1 / float64(max1(size))}
}

func withSamjna(size int) Rank {
	return Rank{Samjna: 1 / float64(max1(size))}
}

func withAl(size int) Rank {
	return Rank{Al: 1 / float64(max1(size))}
}

func max1(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
