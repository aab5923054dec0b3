package scoring

// Working memory sub-component weights (sequence task).
const (
	spanCapacityWeight      = 0.40
	wmAccuracyWeight        = 0.30
	wmEfficiencyWeight      = 0.20
	wmProcessingSpeedWeight = 0.10
)

// Combined memory weights when both tasks are present.
const (
	workingMemoryWeight = 0.60
	visualMemoryWeight  = 0.40
)

// Memory component keys.
const (
	ComponentWorkingMemory = "working_memory"
	ComponentVisualMemory  = "visual_memory"
)

// WorkingMemoryBreakdown carries the sequence-task sub-scores (0-100).
type WorkingMemoryBreakdown struct {
	SpanCapacity    float64 `json:"span_capacity"`
	Accuracy        float64 `json:"accuracy"`
	Efficiency      float64 `json:"efficiency"`
	ProcessingSpeed float64 `json:"processing_speed"`
}

// VisualMemoryBreakdown carries the matching-task sub-scores (0-100).
type VisualMemoryBreakdown struct {
	RecognitionAccuracy   float64 `json:"recognition_accuracy"`
	RecognitionEfficiency float64 `json:"recognition_efficiency"`
	MemoryLoad            float64 `json:"memory_load"`
}

// MemoryResult is the memory domain result plus the per-task breakdowns
// kept for clinical reporting.
type MemoryResult struct {
	DomainScoreResult
	WorkingMemory *WorkingMemoryBreakdown `json:"working_memory_components,omitempty"`
	VisualMemory  *VisualMemoryBreakdown  `json:"visual_memory_components,omitempty"`
}

// ScoreMemory combines the working memory sub-score (span capacity 40%,
// accuracy 30%, trial efficiency 20%, processing speed 10%) with the visual
// memory sub-score from card matching, weighted 60/40 when both tasks are
// present and 100% of whichever is present alone. With no usable task the
// result carries a zero score and an empty task list.
func ScoreMemory(sequence *SequenceMetrics, matching *MatchingMetrics, age AgeGroup) *MemoryResult {
	result := &MemoryResult{
		DomainScoreResult: DomainScoreResult{
			Components: map[string]float64{},
			TasksUsed:  []string{},
		},
	}

	var workingScore, visualScore *float64

	if sequence != nil && sequence.HasData() {
		breakdown, score := scoreWorkingMemory(sequence, age)
		workingScore = &score
		result.WorkingMemory = &breakdown
		result.TasksUsed = append(result.TasksUsed, TaskSequence)
	}

	if matching != nil && matching.HasData() {
		b := scoreMatching(matching, age)
		visualScore = &b.Score
		result.VisualMemory = &VisualMemoryBreakdown{
			RecognitionAccuracy:   round1(b.Accuracy),
			RecognitionEfficiency: round1(b.Efficiency),
			MemoryLoad:            round1(b.Load),
		}
		result.TasksUsed = append(result.TasksUsed, TaskMatching)
	}

	overall := 0.0
	switch {
	case workingScore != nil && visualScore != nil:
		overall = workingMemoryWeight*(*workingScore) + visualMemoryWeight*(*visualScore)
		result.Components[ComponentWorkingMemory] = round1(*workingScore)
		result.Components[ComponentVisualMemory] = round1(*visualScore)
	case workingScore != nil:
		overall = *workingScore
		result.Components[ComponentWorkingMemory] = round1(*workingScore)
	case visualScore != nil:
		overall = *visualScore
		result.Components[ComponentVisualMemory] = round1(*visualScore)
	}

	result.Score = round1(clampScore(overall))
	result.DataCompleteness = float64(len(result.TasksUsed)) / 2
	return result
}

// scoreWorkingMemory computes the sequence-task side of the memory domain.
func scoreWorkingMemory(m *SequenceMetrics, age AgeGroup) (WorkingMemoryBreakdown, float64) {
	expected := expectedMaxSequenceFor(age, 0)
	spanCapacity := clamp01(float64(m.SequenceLength)/float64(expected)) * 100

	accuracy := 0.0
	if m.TotalSequenceElements > 0 {
		accuracy = clamp01(1-float64(m.CommissionErrors)/float64(m.TotalSequenceElements)) * 100
	}

	// One trial per achieved sequence length is the learning-efficiency
	// ideal.
	efficiency := 0.0
	if m.SequenceLength > 0 {
		trials := m.NumOfTrials
		if trials < 1 {
			trials = 1
		}
		efficiency = clamp01(float64(m.SequenceLength)/float64(trials)) * 100
	}

	processingSpeed := NeutralConsistencyScore
	if len(m.RetentionTimes) > 1 {
		if cv, ok := coefficientOfVariation(m.RetentionTimes); ok {
			processingSpeed = consistencyScore(cv)
		} else {
			// Degenerate timing data: enough samples but a zero mean.
			processingSpeed = 0
		}
	}

	score := spanCapacityWeight*spanCapacity +
		wmAccuracyWeight*accuracy +
		wmEfficiencyWeight*efficiency +
		wmProcessingSpeedWeight*processingSpeed

	breakdown := WorkingMemoryBreakdown{
		SpanCapacity:    round1(spanCapacity),
		Accuracy:        round1(accuracy),
		Efficiency:      round1(efficiency),
		ProcessingSpeed: round1(processingSpeed),
	}
	return breakdown, clampScore(score)
}
