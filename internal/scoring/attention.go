package scoring

// Overall attention splits evenly between the go/no-go and sequence games.
// Go/no-go is the canonical sustained-attention task; the retired picture
// recognition game is no longer part of the scheme.
const (
	attentionGoNoGoWeight   = 0.50
	attentionSequenceWeight = 0.50
)

// OverallAttention combines whichever game scores are present. Both absent
// yields nil; a single present score passes through rounded to 2 decimals.
func OverallAttention(gonogoScore, sequenceScore *float64) *float64 {
	switch {
	case gonogoScore != nil && sequenceScore != nil:
		v := round2(attentionGoNoGoWeight*(*gonogoScore) + attentionSequenceWeight*(*sequenceScore))
		return &v
	case gonogoScore != nil:
		v := round2(*gonogoScore)
		return &v
	case sequenceScore != nil:
		v := round2(*sequenceScore)
		return &v
	default:
		return nil
	}
}

// ScoreAttention builds the attention domain result from whichever games
// supplied data. Returns ErrInsufficientData when neither did.
func ScoreAttention(gonogo *GoNoGoMetrics, sequence *SequenceMetrics, age AgeGroup) (*DomainScoreResult, error) {
	var gonogoScore, sequenceScore *float64
	components := map[string]float64{}
	tasks := []string{}

	if gonogo != nil && gonogo.TotalTrials() > 0 {
		v := ScoreGoNoGo(gonogo, age)
		gonogoScore = &v
		components[TaskGoNoGo] = v
		tasks = append(tasks, TaskGoNoGo)
	}
	if sequence != nil && sequence.HasData() {
		v := ScoreSequenceMemory(sequence, sequence.TotalSequenceElements, age)
		sequenceScore = &v
		components[TaskSequence] = v
		tasks = append(tasks, TaskSequence)
	}

	overall := OverallAttention(gonogoScore, sequenceScore)
	if overall == nil {
		return nil, ErrInsufficientData
	}

	return &DomainScoreResult{
		Score:            *overall,
		Components:       components,
		TasksUsed:        tasks,
		DataCompleteness: float64(len(tasks)) / 2,
	}, nil
}
