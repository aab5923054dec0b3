package scoring

// Dynamic executive function weights, keyed by which domain scores are
// present. Weighting follows Diamond (2013) and the NIH Toolbox composite
// guidance: memory and inhibition carry more than sustained attention.
const (
	execMemoryWeightFull    = 0.40
	execImpulseWeightFull   = 0.35
	execAttentionWeightFull = 0.25

	execMemoryWeightMI  = 0.55
	execImpulseWeightMI = 0.45

	execMemoryWeightMA    = 0.60
	execAttentionWeightMA = 0.40

	execImpulseWeightIA   = 0.55
	execAttentionWeightIA = 0.45
)

// Profile pattern thresholds: a domain at or above the strength threshold
// counts as a strength, below the challenge threshold as a challenge.
const (
	profileStrengthThreshold  = 75.0
	profileChallengeThreshold = 65.0
)

// Profile pattern labels surfaced to clinicians.
const (
	ProfileMemoryStrength   = "Memory strength with impulse control challenges"
	ProfileImpulseStrength  = "Impulse control strength with memory challenges"
	ProfileStrongExecutive  = "Strong executive function profile"
	ProfileExecChallenges   = "Executive function challenges"
	ProfileMixed            = "Mixed executive function profile"
	ProfileInsufficientData = "Insufficient data for full profile pattern"
)

// ExecutiveFunctionResult is the composite score with the weighted
// contribution of each input domain. Absent domains contribute nil,
// never zero.
type ExecutiveFunctionResult struct {
	Score                 float64  `json:"score"`
	MemoryContribution    *float64 `json:"memory_contribution"`
	ImpulseContribution   *float64 `json:"impulse_contribution"`
	AttentionContribution *float64 `json:"attention_contribution"`
	ProfilePattern        string   `json:"profile_pattern"`
}

// ExecutiveFunction composes memory, impulse control and attention domain
// scores into a single executive function score, reweighting by which
// inputs are present. At least one input is required.
func ExecutiveFunction(memory, impulse, attention *float64) (*ExecutiveFunctionResult, error) {
	var memoryW, impulseW, attentionW float64
	switch {
	case memory != nil && impulse != nil && attention != nil:
		memoryW, impulseW, attentionW = execMemoryWeightFull, execImpulseWeightFull, execAttentionWeightFull
	case memory != nil && impulse != nil:
		memoryW, impulseW = execMemoryWeightMI, execImpulseWeightMI
	case memory != nil && attention != nil:
		memoryW, attentionW = execMemoryWeightMA, execAttentionWeightMA
	case impulse != nil && attention != nil:
		impulseW, attentionW = execImpulseWeightIA, execAttentionWeightIA
	case memory != nil:
		memoryW = 1.0
	case impulse != nil:
		impulseW = 1.0
	case attention != nil:
		attentionW = 1.0
	default:
		return nil, ErrInsufficientInput
	}

	result := &ExecutiveFunctionResult{}

	score := 0.0
	totalWeight := 0.0
	if memory != nil {
		contribution := memoryW * (*memory)
		score += contribution
		totalWeight += memoryW
		result.MemoryContribution = ptrFloat(round1(contribution))
	}
	if impulse != nil {
		contribution := impulseW * (*impulse)
		score += contribution
		totalWeight += impulseW
		result.ImpulseContribution = ptrFloat(round1(contribution))
	}
	if attention != nil {
		contribution := attentionW * (*attention)
		score += contribution
		totalWeight += attentionW
		result.AttentionContribution = ptrFloat(round1(contribution))
	}

	// Normalize by the weight actually applied; the schemes above sum to 1.
	if totalWeight > 0 {
		score /= totalWeight
	}

	result.Score = round1(score)
	result.ProfilePattern = profilePattern(memory, impulse)
	return result, nil
}

// profilePattern classifies the memory/impulse relationship. Both scores
// are required; attention does not participate.
func profilePattern(memory, impulse *float64) string {
	if memory == nil || impulse == nil {
		return ProfileInsufficientData
	}
	m, i := *memory, *impulse
	switch {
	case m >= profileStrengthThreshold && i < profileChallengeThreshold:
		return ProfileMemoryStrength
	case i >= profileStrengthThreshold && m < profileChallengeThreshold:
		return ProfileImpulseStrength
	case m >= profileStrengthThreshold && i >= profileStrengthThreshold:
		return ProfileStrongExecutive
	case m < profileChallengeThreshold && i < profileChallengeThreshold:
		return ProfileExecChallenges
	default:
		return ProfileMixed
	}
}
