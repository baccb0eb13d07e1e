// Package rank orders clauses by token-overlap relevance to a query.
package rank

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/Yash-N0007/Risk-Aware-Legal-NLP/internal/docreview/domain"
)

// MaxResults bounds the number of ranked clauses returned per query.
const MaxResults = 8

var nonWord = regexp.MustCompile(`\W+`)

// Tokenize lower-cases s and splits it on non-word-character runs, dropping
// empty tokens. Duplicates are kept.
func Tokenize(s string) []string {
	parts := nonWord.Split(strings.ToLower(s), -1)
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// Rank scores every candidate against the query by token overlap and returns
// at most MaxResults clauses with score > 0, sorted by descending score.
// Ties keep the original candidate order. An empty query yields no results.
func Rank(query string, candidates []domain.Clause) []domain.ScoredClause {
	q := Tokenize(query)
	denom := len(q)
	if denom == 0 {
		denom = 1
	}

	out := make([]domain.ScoredClause, 0, len(candidates))
	for _, c := range candidates {
		tokens := Tokenize(c.Text)
		seen := make(map[string]bool, len(tokens))
		for _, t := range tokens {
			seen[t] = true
		}
		matched := 0
		for _, t := range q {
			if seen[t] {
				matched++
			}
		}
		score := round2(float64(matched) / float64(denom))
		if score > 0 {
			out = append(out, domain.ScoredClause{Clause: c, Score: score})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if len(out) > MaxResults {
		out = out[:MaxResults]
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
