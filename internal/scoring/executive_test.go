package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

// TestExecutiveFunctionWeights verifies that every present-input
// combination reweights to a sum of 1.
func TestExecutiveFunctionWeights(t *testing.T) {
	t.Parallel()

	// Feeding 100 for every present domain must always compose to 100 if
	// the active weights sum to 1.
	testCases := []struct {
		name      string
		memory    *float64
		impulse   *float64
		attention *float64
	}{
		{name: "all three", memory: ptr(100), impulse: ptr(100), attention: ptr(100)},
		{name: "memory and impulse", memory: ptr(100), impulse: ptr(100)},
		{name: "memory and attention", memory: ptr(100), attention: ptr(100)},
		{name: "impulse and attention", impulse: ptr(100), attention: ptr(100)},
		{name: "memory alone", memory: ptr(100)},
		{name: "impulse alone", impulse: ptr(100)},
		{name: "attention alone", attention: ptr(100)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ExecutiveFunction(tc.memory, tc.impulse, tc.attention)
			require.NoError(t, err)
			assert.InDelta(t, 100.0, result.Score, 1e-9)
		})
	}
}

func TestExecutiveFunctionComposition(t *testing.T) {
	t.Parallel()

	t.Run("all three domains", func(t *testing.T) {
		result, err := ExecutiveFunction(ptr(80), ptr(70), ptr(60))
		require.NoError(t, err)

		// 0.40 x 80 + 0.35 x 70 + 0.25 x 60 = 71.5.
		assert.Equal(t, 71.5, result.Score)
		require.NotNil(t, result.MemoryContribution)
		assert.Equal(t, 32.0, *result.MemoryContribution)
		require.NotNil(t, result.ImpulseContribution)
		assert.Equal(t, 24.5, *result.ImpulseContribution)
		require.NotNil(t, result.AttentionContribution)
		assert.Equal(t, 15.0, *result.AttentionContribution)
	})

	t.Run("memory and impulse reweight to 55/45", func(t *testing.T) {
		result, err := ExecutiveFunction(ptr(80), ptr(60), nil)
		require.NoError(t, err)

		// 0.55 x 80 + 0.45 x 60 = 71.
		assert.Equal(t, 71.0, result.Score)
		assert.Nil(t, result.AttentionContribution, "absent domains contribute nil, never zero")
	})

	t.Run("memory and attention reweight to 60/40", func(t *testing.T) {
		result, err := ExecutiveFunction(ptr(80), nil, ptr(70))
		require.NoError(t, err)
		// 0.60 x 80 + 0.40 x 70 = 76.
		assert.Equal(t, 76.0, result.Score)
		assert.Nil(t, result.ImpulseContribution)
	})

	t.Run("impulse and attention reweight to 55/45", func(t *testing.T) {
		result, err := ExecutiveFunction(nil, ptr(80), ptr(60))
		require.NoError(t, err)
		// 0.55 x 80 + 0.45 x 60 = 71.
		assert.Equal(t, 71.0, result.Score)
		assert.Nil(t, result.MemoryContribution)
	})

	t.Run("single domain passes through", func(t *testing.T) {
		result, err := ExecutiveFunction(nil, ptr(66.4), nil)
		require.NoError(t, err)
		assert.Equal(t, 66.4, result.Score)
	})

	t.Run("no domains is an error", func(t *testing.T) {
		_, err := ExecutiveFunction(nil, nil, nil)
		assert.ErrorIs(t, err, ErrInsufficientInput)
	})
}

func TestProfilePattern(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		memory   *float64
		impulse  *float64
		expected string
	}{
		{
			name:     "memory strength with impulse challenges",
			memory:   ptr(80),
			impulse:  ptr(60),
			expected: ProfileMemoryStrength,
		},
		{
			name:     "impulse strength with memory challenges",
			memory:   ptr(60),
			impulse:  ptr(80),
			expected: ProfileImpulseStrength,
		},
		{
			name:     "both strong",
			memory:   ptr(75),
			impulse:  ptr(90),
			expected: ProfileStrongExecutive,
		},
		{
			name:     "both challenged",
			memory:   ptr(50),
			impulse:  ptr(64.9),
			expected: ProfileExecChallenges,
		},
		{
			name:     "middling scores are mixed",
			memory:   ptr(70),
			impulse:  ptr(70),
			expected: ProfileMixed,
		},
		{
			name:     "strength without counterpart challenge is mixed",
			memory:   ptr(80),
			impulse:  ptr(70),
			expected: ProfileMixed,
		},
		{
			name:     "missing memory",
			memory:   nil,
			impulse:  ptr(70),
			expected: ProfileInsufficientData,
		},
		{
			name:     "missing impulse",
			memory:   ptr(70),
			impulse:  nil,
			expected: ProfileInsufficientData,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ExecutiveFunction(tc.memory, tc.impulse, ptr(70))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result.ProfilePattern)
		})
	}
}
