package match

import (
	"cmp"
	"slices"
)

// MinSimilarity is the lowest score a candidate may have to be suggested.
const MinSimilarity = 0.5

// Suggest returns up to n candidates most similar to name, best first. Ties
// keep the candidates' input order. Candidates equal to name are skipped.
func Suggest(name string, candidates []string, n int) []string {
	if n <= 0 {
		return nil
	}

	type scored struct {
		name  string
		score float64
	}

	var ranked []scored

	seen := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		if c == name {
			continue
		}

		if _, dup := seen[c]; dup {
			continue
		}

		seen[c] = struct{}{}

		if s := Similarity(name, c); s >= MinSimilarity {
			ranked = append(ranked, scored{name: c, score: s})
		}
	}

	slices.SortStableFunc(ranked, func(a, b scored) int {
		return cmp.Compare(b.score, a.score)
	})

	out := make([]string, 0, min(n, len(ranked)))
	for _, r := range ranked[:min(n, len(ranked))] {
		out = append(out, r.name)
	}

	return out
}
