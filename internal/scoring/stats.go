package scoring

import (
	"math"

	"github.com/montanaflynn/stats"
)

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func clampScore(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func toFloats(samples []int64) []float64 {
	vals := make([]float64, len(samples))
	for i, s := range samples {
		vals[i] = float64(s)
	}
	return vals
}

// meanOf returns the arithmetic mean of millisecond samples, 0 when empty.
func meanOf(samples []int64) float64 {
	if len(samples) == 0 {
		return 0
	}
	m, err := stats.Mean(toFloats(samples))
	if err != nil {
		return 0
	}
	return m
}

// meanFloats returns the arithmetic mean of component scores, 0 when empty.
func meanFloats(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	m, err := stats.Mean(vals)
	if err != nil {
		return 0
	}
	return m
}

// coefficientOfVariation returns sample SD divided by mean. It needs at
// least two samples and a non-zero mean; ok reports whether it could be
// computed.
func coefficientOfVariation(samples []int64) (cv float64, ok bool) {
	if len(samples) < 2 {
		return 0, false
	}
	vals := toFloats(samples)
	mean, err := stats.Mean(vals)
	if err != nil || mean == 0 {
		return 0, false
	}
	sd, err := stats.StandardDeviationSample(vals)
	if err != nil {
		return 0, false
	}
	return sd / mean, true
}

// consistencyScore converts a coefficient of variation into a 0-100 score.
// A CV at or below 0.2 clamps to the full 100; at or above 0.5 it is 0.
func consistencyScore(cv float64) float64 {
	return clamp01((0.5-cv)/0.3) * 100
}

// windowScore scores a mean reaction time against an optimal window.
// Below the window the score drops proportionally toward 0, above it decays
// linearly, and inside it is a full 100.
func windowScore(meanRT float64, w rtWindow) float64 {
	switch {
	case meanRT < w.Min:
		return meanRT / w.Min * 100
	case meanRT > w.Max:
		return math.Max(0, 1-(meanRT-w.Max)/w.Max) * 100
	default:
		return 100
	}
}
