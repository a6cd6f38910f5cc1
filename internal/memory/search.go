package memory

import (
	"sort"
	"strings"
	"time"
)

// DefaultSearchLimit bounds result sets when the caller does not specify
// a limit.
const DefaultSearchLimit = 10

// Scoring weights. Exact content matches dominate, topic matches are worth
// more than provenance matches, and a small recency bonus breaks near-ties
// in favor of fresh entries. Tuning defaults, not laws of nature.
const (
	scoreContentMatch = 3.0
	scoreTopicMatch   = 2.0
	scoreContextMatch = 1.0
	scorePartialWord  = 1.0
	scoreRecencyBonus = 0.5

	minTokenLen   = 3
	recencyWindow = 30 * 24 * time.Hour
)

// SearchResult pairs a matching entry with its relevance score and the
// query terms that matched its content.
type SearchResult struct {
	Entry        Entry    `json:"entry"`
	Score        float64  `json:"score"`
	MatchedTerms []string `json:"matched_terms,omitempty"`
}

// Search scores and ranks the indexed entries against a free-text query.
// Entries that score zero are excluded; ties keep index order. A nil or
// empty index yields an empty result, never an error.
func Search(idx *Index, query string, limit int) []SearchResult {
	return searchAt(idx, query, limit, time.Now())
}

// searchAt is Search with an explicit notion of "now" for recency scoring.
func searchAt(idx *Index, query string, limit int, now time.Time) []SearchResult {
	if idx == nil || len(idx.Entries) == 0 {
		return nil
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	terms := tokenize(query)
	if len(terms) == 0 {
		return nil
	}

	var results []SearchResult
	for i := range idx.Entries {
		if r, ok := scoreEntry(&idx.Entries[i], terms, now); ok {
			results = append(results, r)
		}
	}

	// Stable keeps insertion order as the tie-break, which makes repeated
	// searches over a fixed index return identical ordered results.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// tokenize splits the query on whitespace and drops very short tokens,
// which behave like stop words for substring matching.
func tokenize(query string) []string {
	var terms []string
	for _, tok := range strings.Fields(strings.ToLower(query)) {
		if len(tok) >= minTokenLen {
			terms = append(terms, tok)
		}
	}
	return terms
}

func scoreEntry(e *Entry, terms []string, now time.Time) (SearchResult, bool) {
	searchable := e.Searchable
	if searchable == "" {
		// Entries built outside the store (tests, ad-hoc callers) may not
		// be sealed; normalize locally without mutating the shared entry.
		searchable = strings.ToLower(e.Content)
	}
	context := strings.ToLower(e.Context)

	var (
		score   float64
		matched []string
		words   []string // split lazily, most entries never need it
	)

	for _, term := range terms {
		exact := strings.Contains(searchable, term)
		if exact {
			score += scoreContentMatch
			matched = append(matched, term)
		}

		for _, topic := range e.Topics {
			if strings.Contains(topic, term) {
				score += scoreTopicMatch
				break
			}
		}

		if context != "" && strings.Contains(context, term) {
			score += scoreContextMatch
		}

		// Partial word overlap, counted once per term and only when the
		// term did not already match the content outright.
		if !exact {
			if words == nil {
				words = strings.Fields(searchable)
			}
			for _, w := range words {
				if strings.Contains(w, term) || strings.Contains(term, w) {
					score += scorePartialWord
					break
				}
			}
		}
	}

	if score == 0 {
		return SearchResult{}, false
	}

	// Recency only boosts entries that already matched; a fresh entry with
	// no term overlap stays out of the results.
	if !e.Timestamp.IsZero() && now.Sub(e.Timestamp) < recencyWindow {
		score += scoreRecencyBonus
	}
	return SearchResult{Entry: *e, Score: score, MatchedTerms: matched}, true
}
