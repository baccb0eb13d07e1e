package risk

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_KnownClause(t *testing.T) {
	// two pattern hits plus the length signal for a ~60 char clause
	got := Score("Vendor may terminate at its sole discretion without liability.")
	assert.Equal(t, 0.57, got)
}

func TestScore_EmptyText(t *testing.T) {
	assert.Equal(t, 0.0, Score(""))
}

func TestScore_Range(t *testing.T) {
	texts := []string{
		"",
		"a",
		"Parties executed a service agreement on 02 Jan 2024 with a 12-month term.",
		"Vendor may terminate at its sole discretion without liability.",
		strings.Repeat("indemnification liquidated damages termination for convenience ", 20),
	}
	for _, text := range texts {
		got := Score(text)
		assert.GreaterOrEqual(t, got, 0.0, "text: %q", text)
		assert.LessOrEqual(t, got, 1.0, "text: %q", text)
		// rounded to exactly two decimals
		assert.Equal(t, got, math.Round(got*100)/100, "text: %q", text)
	}
}

func TestScore_CappedAtOne(t *testing.T) {
	text := strings.Repeat("sole discretion without liability indemnify liquidated damages termination for convenience ", 10)
	assert.Equal(t, 1.0, Score(text))
}

func TestScore_PatternCountsOnce(t *testing.T) {
	// repeating one phrase must not add hits
	single := Score("sole discretion")
	repeated := Score("sole discretion sole discretion")
	// length signal differs, so compare the hit contribution
	lenSingle := math.Min(float64(len("sole discretion"))/300, 1)
	lenRepeated := math.Min(float64(len("sole discretion sole discretion"))/300, 1)
	assert.InDelta(t, single-0.35*lenSingle, repeated-0.35*lenRepeated, 0.011)
}

func TestScore_CaseInsensitive(t *testing.T) {
	assert.Equal(t, Score("SOLE DISCRETION applies"), Score("sole discretion applies"))
}

func TestScore_Deterministic(t *testing.T) {
	text := "The vendor shall indemnify the client against liquidated damages."
	first := Score(text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Score(text))
	}
}
