// Package risk flags potentially unfavorable contract language with a
// deterministic [0,1] heuristic: keyword hits plus a length signal.
package risk

import (
	"math"
	"regexp"
)

// Patterns that indicate one-sided or high-exposure contract terms. Each
// pattern contributes at most one hit regardless of repeated occurrence.
var riskyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)sole discretion`),
	regexp.MustCompile(`(?i)without liability`),
	regexp.MustCompile(`(?i)indemnif`),
	regexp.MustCompile(`(?i)liquidated damages`),
	regexp.MustCompile(`(?i)termination for convenience`),
}

// Score returns a risk score in [0,1] for the given clause text, rounded to
// two decimals. Pure function: same input, same output. Empty text scores 0.
func Score(text string) float64 {
	hits := 0
	for _, p := range riskyPatterns {
		if p.MatchString(text) {
			hits++
		}
	}
	lenSig := math.Min(float64(len(text))/300, 1)
	return round2(math.Min(1, 0.25*float64(hits)+0.35*lenSig))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
