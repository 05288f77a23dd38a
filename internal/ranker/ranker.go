// Package ranker orders catalog names against partial user input for
// autocomplete. Matching is case-insensitive; prefix matches outrank
// substring matches, and within each group the backend-curated catalog order
// is preserved as the stable secondary key. No similarity scoring: the
// catalog order already encodes relevance for ties.
package ranker

import "strings"

// Rank returns up to limit catalog names matching query. Names whose
// lowercase form starts with the lowercase query come first, names that
// merely contain it elsewhere follow, both in catalog order. An empty query
// matches every name, so it yields the first limit entries unfiltered.
func Rank(query string, catalog []string, limit int) []string {
	if limit <= 0 {
		return nil
	}

	q := strings.ToLower(query)

	var startsWith, contains []string
	for _, name := range catalog {
		lower := strings.ToLower(name)
		switch {
		case strings.HasPrefix(lower, q):
			startsWith = append(startsWith, name)
		case strings.Contains(lower, q):
			contains = append(contains, name)
		}
	}

	ranked := append(startsWith, contains...)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
