package services

import (
	"testing"
	"time"

	"focusgame-go/internal/config"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// TestNewSchedulerWorkerFloor verifies the concurrency limit never drops
// below one; errgroup treats a zero limit as "admit nothing".
func TestNewSchedulerWorkerFloor(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		maxConcurrent int
		expected      int
	}{
		{name: "zero floors to one", maxConcurrent: 0, expected: 1},
		{name: "negative floors to one", maxConcurrent: -3, expected: 1},
		{name: "positive passes through", maxConcurrent: 8, expected: 8},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.AssessmentConfig{
				SweepInterval:  time.Minute,
				SweepBatchSize: 10,
				MaxConcurrent:  tc.maxConcurrent,
			}
			s := NewScheduler(zap.NewNop(), NewAssessmentService(zap.NewNop()), cfg)
			assert.Equal(t, tc.expected, s.maxWorkers)
		})
	}
}
