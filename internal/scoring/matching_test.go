package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchingIncorrectMatchRate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, (&MatchingMetrics{}).IncorrectMatchRate(), "no attempts means no rate")
	assert.Equal(t, 0.2, (&MatchingMetrics{MatchesAttempted: 10, IncorrectMatches: 2}).IncorrectMatchRate())
}

func TestScoreMatchingCards(t *testing.T) {
	t.Parallel()

	t.Run("no per-match times fall back to neutral efficiency", func(t *testing.T) {
		m := &MatchingMetrics{
			MatchesAttempted: 8,
			CorrectMatches:   6,
			IncorrectMatches: 2,
		}
		// accuracy 75, efficiency defaults to 50, load 8/12 for the 8-10
		// band: 37.5 + 15 + 13.33 = 65.83.
		assert.Equal(t, 65.83, ScoreMatchingCards(m, AgeGroup8to10))
	})

	t.Run("rushed matches undershoot the optimal window", func(t *testing.T) {
		m := &MatchingMetrics{
			MatchesAttempted: 10,
			CorrectMatches:   9,
			IncorrectMatches: 1,
			TimePerMatch:     []int64{1000, 1000, 1000, 1000},
		}
		// 1000ms mean against the 8-10 window floor of 1500ms scores 66.7
		// efficiency: 45 + 20 + 16.67 = 81.67.
		assert.Equal(t, 81.67, ScoreMatchingCards(m, AgeGroup8to10))
	})

	t.Run("full run inside the window", func(t *testing.T) {
		m := &MatchingMetrics{
			MatchesAttempted: 15,
			CorrectMatches:   15,
			TimePerMatch:     []int64{2000, 2200, 1800, 2000},
		}
		assert.Equal(t, 100.0, ScoreMatchingCards(m, AgeGroup11to13))
	})

	t.Run("empty run scores zero accuracy and load", func(t *testing.T) {
		// Only the neutral efficiency component survives: 0.3 x 50 = 15.
		assert.Equal(t, 15.0, ScoreMatchingCards(&MatchingMetrics{}, AgeGroupAdult))
	})
}

func TestScoreMatchingBreakdown(t *testing.T) {
	t.Parallel()

	m := &MatchingMetrics{
		MatchesAttempted: 12,
		CorrectMatches:   10,
		IncorrectMatches: 2,
		TimePerMatch:     []int64{2000, 2100, 1900, 2000},
	}
	b := scoreMatching(m, AgeGroup11to13)

	assert.InDelta(t, 83.33, b.Accuracy, 0.01)
	assert.Equal(t, 100.0, b.Efficiency, "2000ms mean sits inside the 11-13 window")
	assert.Equal(t, 80.0, b.Load, "12 attempts against the expected 15")
	assert.InDelta(t, 87.67, b.Score, 0.01)
}
