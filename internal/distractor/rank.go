package distractor

import "sort"

// RankAndSelect picks up to k candidates, biased toward high
// plausibility and distinct error types. It returns min(k,
// len(candidates)) entries: candidates are sorted by score, walked
// greedily accepting each new error type, with the diversity constraint
// relaxed for the final slot, and any shortfall backfilled by score
// regardless of repetition.
func RankAndSelect(candidates []Candidate, k int) []Candidate {
	if k <= 0 {
		return nil
	}
	if len(candidates) <= k {
		return append([]Candidate(nil), candidates...)
	}

	ranked := append([]Candidate(nil), candidates...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Plausibility > ranked[j].Plausibility
	})

	selected := make([]Candidate, 0, k)
	taken := make([]bool, len(ranked))
	usedTypes := make(map[string]bool)

	for i, c := range ranked {
		if len(selected) >= k {
			break
		}
		if !usedTypes[c.ErrorTypeID] || len(selected) >= k-1 {
			selected = append(selected, c)
			usedTypes[c.ErrorTypeID] = true
			taken[i] = true
		}
	}

	for i, c := range ranked {
		if len(selected) >= k {
			break
		}
		if !taken[i] {
			selected = append(selected, c)
			taken[i] = true
		}
	}
	return selected
}
