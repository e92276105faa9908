package rule

import (
	"sort"

	"github.com/hareeshbabu82ns/vyakarana/dstate"
)

// Tree is the hierarchical, feature-indexed rule arrangement: roughly 4000
// rules could in principle apply at any position, so instead of scanning
// every rule against every position, rules are bucketed by the feature (an
// atomic filter plus a window offset) shared by the most rules,
// recursively, mirroring ashtadhyayi.py's RuleTree.
type Tree struct {
	// rules are the residual rules at this node: every one of their
	// features was already "used" by an ancestor bucket, so they can't be
	// subdivided any further and are always candidates once reached.
	rules []*Rule
	// children maps a feature to the subtree of rules that share it.
	children map[Feature]*Tree
}

// NewTree builds a Tree over rules.
func NewTree(rules []*Rule) *Tree {
	return buildTree(rules, map[Feature]bool{})
}

func buildTree(rules []*Rule, used map[Feature]bool) *Tree {
	t := &Tree{children: map[Feature]*Tree{}}

	featureMap := map[Feature][]*Rule{}
	var featureOrder []Feature
	for _, r := range rules {
		appended := false
		for feat := range r.Features() {
			if used[feat] {
				continue
			}
			if _, ok := featureMap[feat]; !ok {
				featureOrder = append(featureOrder, feat)
			}
			featureMap[feat] = append(featureMap[feat], r)
			appended = true
		}
		if !appended {
			t.rules = append(t.rules, r)
		}
	}

	// Sort buckets from most general (most rules) to most specific, with
	// first-seen order breaking ties for determinism.
	sort.SliceStable(featureOrder, func(i, j int) bool {
		return len(featureMap[featureOrder[i]]) > len(featureMap[featureOrder[j]])
	})

	seen := map[*Rule]bool{}
	for _, feat := range featureOrder {
		bucket := featureMap[feat]
		unseen := make([]*Rule, 0, len(bucket))
		for _, r := range bucket {
			if !seen[r] {
				unseen = append(unseen, r)
			}
		}
		if len(unseen) == 0 {
			continue
		}
		childUsed := make(map[Feature]bool, len(used)+1)
		for k, v := range used {
			childUsed[k] = v
		}
		childUsed[feat] = true
		t.children[feat] = buildTree(unseen, childUsed)
		for _, r := range bucket {
			seen[r] = true
		}
	}
	return t
}

// Len reports the total number of rules reachable from t.
func (t *Tree) Len() int {
	n := len(t.rules)
	for _, c := range t.children {
		n += c.Len()
	}
	return n
}

// Select returns the set of rules that might match at (state, index): t's
// own residual rules, plus every child subtree whose feature matches at its
// offset from index.
func (t *Tree) Select(s *dstate.State, index int) map[*Rule]bool {
	out := make(map[*Rule]bool, len(t.rules))
	for _, r := range t.rules {
		out[r] = true
	}
	for feat, child := range t.children {
		j := index + feat.Offset
		if j < 0 {
			continue
		}
		if !feat.Filter.Match(s, j) {
			continue
		}
		for r := range child.Select(s, index) {
			out[r] = true
		}
	}
	return out
}
