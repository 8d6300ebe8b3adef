package match

import "sort"

// MinSuggestScore is the similarity below which a candidate is not suggested.
const MinSuggestScore = 0.5

type scored struct {
	name  string
	score float64
}

// Suggest returns up to limit candidates that look like name, best first.
// Ties keep the order in which candidates were given.
func Suggest(name string, candidates []string, limit int) []string {
	if limit <= 0 {
		return nil
	}

	var ranked []scored

	seen := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		if c == name || seen[c] {
			continue
		}

		seen[c] = true

		score := NormalizedLevenshteinScore(name, c)
		if score < MinSuggestScore {
			continue
		}

		ranked = append(ranked, scored{name: c, score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	out := make([]string, 0, min(limit, len(ranked)))
	for i := 0; i < len(ranked) && i < limit; i++ {
		out = append(out, ranked[i].name)
	}

	return out
}
