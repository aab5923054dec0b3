package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverallAttention(t *testing.T) {
	t.Parallel()

	gonogo := 88.0
	sequence := 72.5

	t.Run("both games average evenly", func(t *testing.T) {
		got := OverallAttention(&gonogo, &sequence)
		require.NotNil(t, got)
		assert.Equal(t, 80.25, *got)
	})

	t.Run("single game passes through unchanged", func(t *testing.T) {
		got := OverallAttention(&gonogo, nil)
		require.NotNil(t, got)
		assert.Equal(t, 88.0, *got)

		got = OverallAttention(nil, &sequence)
		require.NotNil(t, got)
		assert.Equal(t, 72.5, *got)
	})

	t.Run("neither game yields nil", func(t *testing.T) {
		assert.Nil(t, OverallAttention(nil, nil))
	})
}

func TestScoreAttention(t *testing.T) {
	t.Parallel()

	gonogo := &GoNoGoMetrics{
		CorrectGo:        18,
		CorrectNoGo:      9,
		CommissionErrors: 1,
		OmissionErrors:   2,
		MeanReactionTime: 700,
		ReactionTimeSD:   140,
	}
	sequence := &SequenceMetrics{
		SequenceLength:        6,
		CommissionErrors:      3,
		TotalSequenceElements: 30,
	}

	t.Run("both games present", func(t *testing.T) {
		result, err := ScoreAttention(gonogo, sequence, AgeGroup8to10)
		require.NoError(t, err)

		assert.Equal(t, []string{TaskGoNoGo, TaskSequence}, result.TasksUsed)
		assert.Equal(t, 1.0, result.DataCompleteness)
		assert.Equal(t, 94.0, result.Components[TaskGoNoGo])
		// 8-10 band pins the span ceiling to 6.
		assert.Equal(t, 96.0, result.Components[TaskSequence])
		assert.Equal(t, 95.0, result.Score)
	})

	t.Run("go/no-go alone", func(t *testing.T) {
		result, err := ScoreAttention(gonogo, nil, AgeGroup8to10)
		require.NoError(t, err)

		assert.Equal(t, []string{TaskGoNoGo}, result.TasksUsed)
		assert.Equal(t, 0.5, result.DataCompleteness)
		assert.Equal(t, 94.0, result.Score)
		assert.NotContains(t, result.Components, TaskSequence)
	})

	t.Run("sequence without data is ignored", func(t *testing.T) {
		result, err := ScoreAttention(gonogo, &SequenceMetrics{}, AgeGroup8to10)
		require.NoError(t, err)
		assert.Equal(t, []string{TaskGoNoGo}, result.TasksUsed)
	})

	t.Run("no usable games", func(t *testing.T) {
		_, err := ScoreAttention(nil, nil, AgeGroup8to10)
		assert.ErrorIs(t, err, ErrInsufficientData)

		_, err = ScoreAttention(&GoNoGoMetrics{}, &SequenceMetrics{}, AgeGroup8to10)
		assert.ErrorIs(t, err, ErrInsufficientData, "empty metric rows carry no usable games")
	})
}
