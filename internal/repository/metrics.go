// internal/repository/metrics.go
package repository

import (
	"context"

	"focusgame-go/internal/database"
	"focusgame-go/internal/models"

	"github.com/google/uuid"
)

// SessionMetrics groups the newest uploaded metric row of each game type
// for one session. A nil field means the game was not played.
type SessionMetrics struct {
	GoNoGo   *models.GoNoGoMetrics
	Sequence *models.SequenceMemoryMetrics
	Matching *models.MatchingCardsMetrics
}

// HasAny reports whether at least one game contributed metrics.
func (m *SessionMetrics) HasAny() bool {
	return m.GoNoGo != nil || m.Sequence != nil || m.Matching != nil
}

// GetRawMetricsForSession loads every game result of the session with its
// metric rows. Results are walked in upload order, so when a game type was
// played more than once the newest row wins.
func GetRawMetricsForSession(ctx context.Context, sessionID uuid.UUID) (*SessionMetrics, error) {
	var results []models.GameResult
	err := database.DB.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Preload("GoNoGoMetrics").
		Preload("SequenceMemoryMetrics").
		Preload("MatchingCardsMetrics").
		Find(&results).Error
	if err != nil {
		return nil, err
	}

	metrics := &SessionMetrics{}
	for i := range results {
		result := &results[i]
		if result.GoNoGoMetrics != nil {
			metrics.GoNoGo = result.GoNoGoMetrics
		}
		if result.SequenceMemoryMetrics != nil {
			metrics.Sequence = result.SequenceMemoryMetrics
		}
		if result.MatchingCardsMetrics != nil {
			metrics.Matching = result.MatchingCardsMetrics
		}
	}
	return metrics, nil
}
