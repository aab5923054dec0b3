package scoring

// GoNoGoMetrics is the raw telemetry captured from one go/no-go run.
// Reaction time fields are in milliseconds and cover go responses only.
type GoNoGoMetrics struct {
	CorrectGo        int     `json:"correct_go" validate:"gte=0"`
	CorrectNoGo      int     `json:"correct_nogo" validate:"gte=0"`
	CommissionErrors int     `json:"commission_errors" validate:"gte=0"`
	OmissionErrors   int     `json:"omission_errors" validate:"gte=0"`
	MeanReactionTime float64 `json:"mean_reaction_time" validate:"gte=0"`
	ReactionTimeSD   float64 `json:"reaction_time_sd" validate:"gte=0"`
}

// Validate rejects malformed telemetry before it reaches the scoring
// pipeline.
func (m *GoNoGoMetrics) Validate() error {
	return validateStruct(m)
}

// TotalTrials counts every presented stimulus the player responded to or
// should have responded to.
func (m *GoNoGoMetrics) TotalTrials() int {
	return m.CorrectGo + m.CorrectNoGo + m.CommissionErrors + m.OmissionErrors
}

// CommissionErrorRate is the share of no-go trials answered anyway, 0 when
// no no-go trials occurred.
func (m *GoNoGoMetrics) CommissionErrorRate() float64 {
	noGoTrials := m.CorrectNoGo + m.CommissionErrors
	if noGoTrials == 0 {
		return 0
	}
	return clamp01(float64(m.CommissionErrors) / float64(noGoTrials))
}

// Component weights for the go/no-go attention score.
const (
	gonogoAccuracyWeight    = 0.60
	gonogoConsistencyWeight = 0.30
	gonogoSpeedWeight       = 0.10
)

// Response consistency targets. The coefficient of variation is compared
// against DefaultTargetCV with DefaultCVToleranceBand of slack.
const (
	DefaultTargetCV        = 0.25
	DefaultCVToleranceBand = 0.30
)

// NeutralConsistencyScore is assumed when reaction times carry no usable
// signal.
const NeutralConsistencyScore = 50.0

// ScoreGoNoGo normalizes go/no-go telemetry into a 0-100 attention score:
// sustained-attention accuracy (60%), response consistency (30%), and
// processing speed against the age's optimal window (10%).
func ScoreGoNoGo(m *GoNoGoMetrics, age AgeGroup) float64 {
	// No trials at all means no usable signal, not a neutral score.
	if m.TotalTrials() == 0 {
		return 0
	}

	accuracy := 0.0
	goTrials := m.CorrectGo + m.OmissionErrors
	if goTrials > 0 {
		accuracy = float64(m.CorrectGo) / float64(goTrials) * 100
	}

	consistency := NeutralConsistencyScore
	if m.MeanReactionTime > 0 {
		cv := m.ReactionTimeSD / m.MeanReactionTime
		consistency = clamp01((DefaultTargetCV+DefaultCVToleranceBand-cv)/DefaultCVToleranceBand) * 100
	}

	speed := windowScore(m.MeanReactionTime, optimalRTWindowFor(age))

	score := gonogoAccuracyWeight*accuracy +
		gonogoConsistencyWeight*consistency +
		gonogoSpeedWeight*speed
	return round2(clampScore(score))
}
