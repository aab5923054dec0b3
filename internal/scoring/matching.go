package scoring

// MatchingMetrics is the raw telemetry captured from one card matching run.
// TimePerMatch holds per-attempt durations in milliseconds.
type MatchingMetrics struct {
	MatchesAttempted int     `json:"matches_attempted" validate:"gte=0"`
	CorrectMatches   int     `json:"correct_matches" validate:"gte=0"`
	IncorrectMatches int     `json:"incorrect_matches" validate:"gte=0"`
	TimePerMatch     []int64 `json:"time_per_match" validate:"dive,gte=0"`
}

// Validate rejects malformed telemetry before it reaches the scoring
// pipeline.
func (m *MatchingMetrics) Validate() error {
	return validateStruct(m)
}

// HasData reports whether the run produced anything scoreable.
func (m *MatchingMetrics) HasData() bool {
	return m.MatchesAttempted > 0
}

// IncorrectMatchRate is the share of attempts that were wrong, 0 when no
// attempts were made.
func (m *MatchingMetrics) IncorrectMatchRate() float64 {
	if m.MatchesAttempted == 0 {
		return 0
	}
	return clamp01(float64(m.IncorrectMatches) / float64(m.MatchesAttempted))
}

// matchingBreakdown carries the visual memory sub-scores on a 0-100 scale.
type matchingBreakdown struct {
	Accuracy   float64
	Efficiency float64
	Load       float64
	Score      float64
}

// scoreMatching computes recognition accuracy (50%), recognition efficiency
// against the age's optimal per-match window (30%), and memory load against
// the expected attempt count (20%).
func scoreMatching(m *MatchingMetrics, age AgeGroup) matchingBreakdown {
	accuracy := 0.0
	if m.MatchesAttempted > 0 {
		accuracy = float64(m.CorrectMatches) / float64(m.MatchesAttempted) * 100
	}

	efficiency := NeutralConsistencyScore
	if len(m.TimePerMatch) > 0 {
		efficiency = windowScore(meanOf(m.TimePerMatch), matchingWindowFor(age))
	}

	load := clamp01(float64(m.MatchesAttempted)/float64(expectedMatchesFor(age))) * 100

	score := 0.50*accuracy + 0.30*efficiency + 0.20*load
	return matchingBreakdown{
		Accuracy:   accuracy,
		Efficiency: efficiency,
		Load:       load,
		Score:      clampScore(score),
	}
}

// ScoreMatchingCards normalizes card matching telemetry into a 0-100 score.
func ScoreMatchingCards(m *MatchingMetrics, age AgeGroup) float64 {
	return round2(scoreMatching(m, age).Score)
}
