package scoring

// rtWindow is an optimal reaction-time range in milliseconds. Mean response
// times below Min indicate impulsive responding, above Max inattentive
// responding.
type rtWindow struct {
	Min float64
	Max float64
}

// Process-wide constant lookup tables keyed by age group. These are loaded
// once and never mutated.
var (
	// expectedMaxSequence is the span ceiling used to normalize sequence
	// capacity per age band.
	expectedMaxSequence = map[AgeGroup]int{
		AgeGroup5to7:   5,
		AgeGroup8to10:  6,
		AgeGroup11to13: 7,
		AgeGroup14to16: 8,
		AgeGroupAdult:  9,
	}

	// expectedRetentionTime is the retention time (ms) a player of the age
	// band is expected to need per sequence element.
	expectedRetentionTime = map[AgeGroup]float64{
		AgeGroup5to7:   1400,
		AgeGroup8to10:  1250,
		AgeGroup11to13: 1100,
		AgeGroup14to16: 950,
		AgeGroupAdult:  800,
	}

	// optimalRTWindows bounds acceptable mean reaction times for go/no-go
	// responses and impulse decision speed.
	optimalRTWindows = map[AgeGroup]rtWindow{
		AgeGroup5to7:   {Min: 800, Max: 2000},
		AgeGroup8to10:  {Min: 700, Max: 1800},
		AgeGroup11to13: {Min: 600, Max: 1600},
		AgeGroup14to16: {Min: 500, Max: 1400},
		AgeGroupAdult:  {Min: 400, Max: 1200},
	}

	// matchingOptimalWindows bounds acceptable per-match times in the card
	// matching game.
	matchingOptimalWindows = map[AgeGroup]rtWindow{
		AgeGroup5to7:   {Min: 2000, Max: 5000},
		AgeGroup8to10:  {Min: 1500, Max: 4000},
		AgeGroup11to13: {Min: 1200, Max: 3500},
		AgeGroup14to16: {Min: 1000, Max: 3000},
		AgeGroupAdult:  {Min: 800, Max: 2500},
	}

	// expectedMatchCounts is the number of match attempts a full game is
	// expected to produce per age band.
	expectedMatchCounts = map[AgeGroup]int{
		AgeGroup5to7:   10,
		AgeGroup8to10:  12,
		AgeGroup11to13: 15,
		AgeGroup14to16: 18,
		AgeGroupAdult:  20,
	}
)

// Defaults applied when the age group is unknown.
const (
	DefaultExpectedMaxSequence = 9
	DefaultExpectedMatches     = 15
)

var (
	defaultRTWindow       = rtWindow{Min: 600, Max: 1600}
	defaultMatchingWindow = rtWindow{Min: 1200, Max: 3500}
)

// expectedMaxSequenceFor resolves the span ceiling for an age group. A known
// age group always overrides the caller-supplied expectation; otherwise the
// caller's value is used when positive, falling back to the adult default.
func expectedMaxSequenceFor(age AgeGroup, callerExpected int) int {
	if v, ok := expectedMaxSequence[age]; ok {
		return v
	}
	if callerExpected > 0 {
		return callerExpected
	}
	return DefaultExpectedMaxSequence
}

func expectedRetentionTimeFor(age AgeGroup) float64 {
	if v, ok := expectedRetentionTime[age]; ok {
		return v
	}
	return expectedRetentionTime[AgeGroupAdult]
}

func optimalRTWindowFor(age AgeGroup) rtWindow {
	if w, ok := optimalRTWindows[age]; ok {
		return w
	}
	return defaultRTWindow
}

func matchingWindowFor(age AgeGroup) rtWindow {
	if w, ok := matchingOptimalWindows[age]; ok {
		return w
	}
	return defaultMatchingWindow
}

func expectedMatchesFor(age AgeGroup) int {
	if v, ok := expectedMatchCounts[age]; ok {
		return v
	}
	return DefaultExpectedMatches
}
