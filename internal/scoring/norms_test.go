package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	t.Parallel()

	ref := NormativeReference{
		Domain:            DomainMemory,
		AgeGroup:          AgeGroup8to10,
		ClinicalGroup:     GroupTypicallyDeveloping,
		Mean:              75,
		StandardDeviation: 12,
	}

	t.Run("score at the mean is dead average", func(t *testing.T) {
		result := Compare(75, ref)
		assert.Equal(t, 0.0, result.ZScore)
		assert.Equal(t, 50.0, result.Percentile)
		assert.Equal(t, ClassificationAverage, result.Classification)
	})

	t.Run("score above the mean", func(t *testing.T) {
		result := Compare(85, ref)
		assert.Equal(t, 0.83, result.ZScore)
		assert.Equal(t, 79.8, result.Percentile)
		assert.Equal(t, ClassificationHighAverage, result.Classification)
	})

	t.Run("score below the mean", func(t *testing.T) {
		below := NormativeReference{Domain: DomainImpulseControl, Mean: 70, StandardDeviation: 15}
		result := Compare(60, below)
		assert.Equal(t, -0.67, result.ZScore)
		assert.Equal(t, 25.2, result.Percentile)
		assert.Equal(t, ClassificationAverage, result.Classification)
	})

	t.Run("zero standard deviation yields z of zero", func(t *testing.T) {
		degenerate := NormativeReference{Mean: 75}
		result := Compare(90, degenerate)
		assert.Equal(t, 0.0, result.ZScore)
		assert.Equal(t, 50.0, result.Percentile)
	})

	t.Run("classification uses the unrounded percentile", func(t *testing.T) {
		// z = 2.05 gives percentile 97.98, which rounds to 98.0 for
		// display but still classifies one band under Very Superior.
		result := Compare(70.5, NormativeReference{Mean: 50, StandardDeviation: 10})
		assert.Equal(t, 2.05, result.ZScore)
		assert.Equal(t, 98.0, result.Percentile)
		assert.Equal(t, ClassificationSuperior, result.Classification)
	})

	t.Run("percentile is monotonic in the score", func(t *testing.T) {
		prev := -1.0
		for _, score := range []float64{20, 40, 55, 70, 75, 82, 95, 110} {
			result := Compare(score, ref)
			assert.Greater(t, result.Percentile, prev, "percentile must increase with the score")
			prev = result.Percentile
		}
	})
}

func TestClassify(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		percentile float64
		expected   string
	}{
		{100, ClassificationVerySuperior},
		{98, ClassificationVerySuperior},
		{97.9, ClassificationSuperior},
		{91, ClassificationSuperior},
		{90.9, ClassificationHighAverage},
		{75, ClassificationHighAverage},
		{74.9, ClassificationAverage},
		{50, ClassificationAverage},
		{25, ClassificationAverage},
		{24.9, ClassificationLowAverage},
		{9, ClassificationLowAverage},
		{8.9, ClassificationBorderline},
		{2, ClassificationBorderline},
		{1.9, ClassificationExtremelyLow},
		{0, ClassificationExtremelyLow},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, Classify(tc.percentile))
		})
	}
}

func TestDefaultNorm(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 75.0, DefaultNorm(DomainMemory).Mean)
	assert.Equal(t, 12.0, DefaultNorm(DomainMemory).StandardDeviation)
	assert.Equal(t, 70.0, DefaultNorm(DomainImpulseControl).Mean)
	assert.Equal(t, 15.0, DefaultNorm(DomainImpulseControl).StandardDeviation)
	assert.Equal(t, 73.0, DefaultNorm(DomainExecutiveFunction).Mean)
	assert.Equal(t, 13.0, DefaultNorm(DomainExecutiveFunction).StandardDeviation)

	fallback := DefaultNorm(DomainAttention)
	assert.Equal(t, 70.0, fallback.Mean)
	assert.Equal(t, 15.0, fallback.StandardDeviation)
	assert.Equal(t, DomainAttention, fallback.Domain, "requested domain is carried through")
}
