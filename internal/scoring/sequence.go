package scoring

// SequenceMetrics is the raw telemetry captured from one sequence memory
// run. RetentionTimes are per-element response times in milliseconds.
type SequenceMetrics struct {
	SequenceLength        int     `json:"sequence_length" validate:"gte=0"`
	CommissionErrors      int     `json:"commission_errors" validate:"gte=0"`
	NumOfTrials           int     `json:"num_of_trials" validate:"gte=0"`
	RetentionTimes        []int64 `json:"retention_times" validate:"dive,gte=0"`
	TotalSequenceElements int     `json:"total_sequence_elements" validate:"gte=0"`
}

// Validate rejects malformed telemetry before it reaches the scoring
// pipeline.
func (m *SequenceMetrics) Validate() error {
	return validateStruct(m)
}

// HasData reports whether the run produced anything scoreable.
func (m *SequenceMetrics) HasData() bool {
	return m.SequenceLength > 0 || m.TotalSequenceElements > 0
}

// ScoreSequenceMemory normalizes sequence telemetry into a 0-100 score.
// Capacity is the achieved span against the expected maximum (a known age
// group overrides expectedMax with its fixed table value), error control is
// one minus the commission rate, and processing efficiency compares mean
// retention time to the age's expected value. Weights are 50/30/20 when
// retention times are present, 60/40 otherwise.
func ScoreSequenceMemory(m *SequenceMetrics, expectedMax int, age AgeGroup) float64 {
	expected := expectedMaxSequenceFor(age, expectedMax)

	capacity := 0.0
	if expected > 0 {
		capacity = clamp01(float64(m.SequenceLength) / float64(expected))
	}

	errorControl := 0.0
	if m.TotalSequenceElements > 0 {
		errorControl = clamp01(1 - float64(m.CommissionErrors)/float64(m.TotalSequenceElements))
	}

	if len(m.RetentionTimes) == 0 {
		return round2(clampScore(100 * (0.60*capacity + 0.40*errorControl)))
	}

	efficiency := retentionEfficiency(m.RetentionTimes, age)
	return round2(clampScore(100 * (0.50*capacity + 0.30*errorControl + 0.20*efficiency)))
}

// retentionEfficiency compares the mean retention time against the age's
// expected value: at or under expectation scores 1, slower scores decay
// proportionally.
func retentionEfficiency(retentionTimes []int64, age AgeGroup) float64 {
	actual := meanOf(retentionTimes)
	if actual <= 0 {
		return 0
	}
	return clamp01(expectedRetentionTimeFor(age) / actual)
}
