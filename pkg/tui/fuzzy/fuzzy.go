// ABOUTME: Thin wrapper over sahilm/fuzzy for ranking candidate names
// ABOUTME: Used to suggest known key names when a configured name is misspelled

package fuzzy

import "github.com/sahilm/fuzzy"

// Match represents a single fuzzy match result.
type Match struct {
	Str            string
	Index          int
	MatchedIndexes []int
	Score          int
}

// Find performs fuzzy matching of pattern against items.
// Returns matches sorted by score (best first).
func Find(pattern string, items []string) []Match {
	results := fuzzy.Find(pattern, items)
	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{
			Str:            r.Str,
			Index:          r.Index,
			MatchedIndexes: r.MatchedIndexes,
			Score:          r.Score,
		}
	}
	return matches
}

// Suggest returns up to limit candidates closest to pattern, best first.
// An empty pattern suggests nothing.
func Suggest(pattern string, candidates []string, limit int) []string {
	if pattern == "" || limit <= 0 {
		return nil
	}
	matches := Find(pattern, candidates)
	if len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Str
	}
	return out
}
