package facade

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

var (
	htmlTag       = regexp.MustCompile(`<[^>]*>`)
	spaceThenNL   = regexp.MustCompile(`\s+\n`)
	multiNL       = regexp.MustCompile(`\n{2,}`)
	multiSpace    = regexp.MustCompile(`[ \t]{2,}`)
	summaryTokens = regexp.MustCompile(`[A-Za-z]{3,}`)
)

// Sentence keywords that mark legally salient content for the extractive
// summarizer.
var summaryKeys = map[string]bool{
	"court": true, "issue": true, "hold": true, "reason": true,
	"contract": true, "clause": true, "section": true, "order": true,
	"notice": true, "termination": true,
}

func stripHTML(s string) string {
	return htmlTag.ReplaceAllString(s, " ")
}

func cleanText(t string) string {
	t = strings.ReplaceAll(t, "\r", "\n")
	t = spaceThenNL.ReplaceAllString(t, "\n")
	t = multiNL.ReplaceAllString(t, "\n\n")
	t = multiSpace.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}

// splitSentences breaks text after ./!/? when the following whitespace run is
// followed by an uppercase letter or an opening parenthesis.
func splitSentences(text string) []string {
	runes := []rune(text)
	var out []string
	start := 0
	i := 0
	for i < len(runes) {
		r := runes[i]
		if r == '.' || r == '!' || r == '?' {
			j := i + 1
			for j < len(runes) && unicode.IsSpace(runes[j]) {
				j++
			}
			if j > i+1 && j < len(runes) && (unicode.IsUpper(runes[j]) || runes[j] == '(') {
				if s := strings.TrimSpace(string(runes[start : i+1])); s != "" {
					out = append(out, s)
				}
				start = j
				i = j
				continue
			}
		}
		i++
	}
	if tail := strings.TrimSpace(string(runes[start:])); tail != "" {
		out = append(out, tail)
	}
	return out
}

// extractiveSummary picks the highest-scoring sentences: token count plus a
// bonus for legally salient keywords, returned in score order.
func extractiveSummary(text string, maxSentences int) []string {
	type scored struct {
		score int
		text  string
	}
	sentences := splitSentences(text)
	rows := make([]scored, 0, len(sentences))
	for _, s := range sentences {
		tokens := summaryTokens.FindAllString(strings.ToLower(s), -1)
		score := len(tokens)
		for _, t := range tokens {
			if summaryKeys[t] {
				score += 2
			}
		}
		rows = append(rows, scored{score: score, text: s})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].score > rows[j].score })
	if len(rows) > maxSentences {
		rows = rows[:maxSentences]
	}
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.text
	}
	return out
}
