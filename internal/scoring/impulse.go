package scoring

// Impulse control component weights.
const (
	inhibitoryControlWeight = 0.40
	responseControlWeight   = 0.30
	decisionSpeedWeight     = 0.20
	errorAdaptationWeight   = 0.10
)

// Impulse control component keys.
const (
	ComponentInhibitoryControl = "inhibitory_control"
	ComponentResponseControl   = "response_control"
	ComponentDecisionSpeed     = "decision_speed"
	ComponentErrorAdaptation   = "error_adaptation"
)

// ErrorAdaptationScore is the fixed error-adaptation component value. Scoring
// post-error slowing needs trial-ordered reaction times, which the games do
// not record yet.
// TODO: derive this from trial-level data once clients upload per-trial logs.
const ErrorAdaptationScore = 50.0

// ImpulseResult is the impulse control domain result plus the raw error
// rates kept for clinical reporting.
type ImpulseResult struct {
	DomainScoreResult
	GoNoGoCommissionRate   *float64 `json:"gonogo_commission_rate,omitempty"`
	SequenceCommissionRate *float64 `json:"sequence_commission_rate,omitempty"`
	MatchingIncorrectRate  *float64 `json:"matching_incorrect_rate,omitempty"`
}

// ScoreImpulseControl blends inhibitory control (40%), response control
// (30%), decision speed (20%) and error adaptation (10%) across whichever
// games are present. A game joins the blend only when it presented
// anything to respond to; timing components fall back to the neutral
// midpoint when no game recorded times. With no games at all the result
// carries a zero score and an empty game list rather than an error.
func ScoreImpulseControl(gonogo *GoNoGoMetrics, sequence *SequenceMetrics, matching *MatchingMetrics, age AgeGroup) *ImpulseResult {
	result := &ImpulseResult{
		DomainScoreResult: DomainScoreResult{
			Components: map[string]float64{},
			TasksUsed:  []string{},
		},
	}

	window := optimalRTWindowFor(age)

	var inhibitory, consistency, speed []float64

	if gonogo != nil && gonogo.TotalTrials() > 0 {
		rate := gonogo.CommissionErrorRate()
		inhibitory = append(inhibitory, (1-rate)*100)
		result.GoNoGoCommissionRate = ptrFloat(round3(rate))
		result.TasksUsed = append(result.TasksUsed, TaskGoNoGo)

		if gonogo.MeanReactionTime > 0 {
			cv := gonogo.ReactionTimeSD / gonogo.MeanReactionTime
			consistency = append(consistency, consistencyScore(cv))
			speed = append(speed, windowScore(gonogo.MeanReactionTime, window))
		}
	}

	if sequence != nil && sequence.TotalSequenceElements > 0 {
		rate := clamp01(float64(sequence.CommissionErrors) / float64(sequence.TotalSequenceElements))
		inhibitory = append(inhibitory, (1-rate)*100)
		result.SequenceCommissionRate = ptrFloat(round3(rate))
		result.TasksUsed = append(result.TasksUsed, TaskSequence)

		if cv, ok := coefficientOfVariation(sequence.RetentionTimes); ok {
			consistency = append(consistency, consistencyScore(cv))
		}
		if len(sequence.RetentionTimes) > 0 {
			speed = append(speed, windowScore(meanOf(sequence.RetentionTimes), window))
		}
	}

	if matching != nil && matching.HasData() {
		rate := matching.IncorrectMatchRate()
		inhibitory = append(inhibitory, (1-rate)*100)
		result.MatchingIncorrectRate = ptrFloat(round3(rate))
		result.TasksUsed = append(result.TasksUsed, TaskMatching)

		if cv, ok := coefficientOfVariation(matching.TimePerMatch); ok {
			consistency = append(consistency, consistencyScore(cv))
		}
		if len(matching.TimePerMatch) > 0 {
			speed = append(speed, windowScore(meanOf(matching.TimePerMatch), window))
		}
	}

	if len(result.TasksUsed) == 0 {
		return result
	}

	inhibitoryScore := meanFloats(inhibitory)
	responseScore := meanOrNeutral(consistency)
	speedScore := meanOrNeutral(speed)

	score := inhibitoryControlWeight*inhibitoryScore +
		responseControlWeight*responseScore +
		decisionSpeedWeight*speedScore +
		errorAdaptationWeight*ErrorAdaptationScore

	result.Components[ComponentInhibitoryControl] = round1(inhibitoryScore)
	result.Components[ComponentResponseControl] = round1(responseScore)
	result.Components[ComponentDecisionSpeed] = round1(speedScore)
	result.Components[ComponentErrorAdaptation] = round1(ErrorAdaptationScore)
	result.Score = round1(clampScore(score))
	result.DataCompleteness = float64(len(result.TasksUsed)) / 3
	return result
}

func meanOrNeutral(vals []float64) float64 {
	if len(vals) == 0 {
		return NeutralConsistencyScore
	}
	return meanFloats(vals)
}

func ptrFloat(v float64) *float64 { return &v }
