package repository

import (
	"context"
	"fmt"

	"focusgame-go/internal/database"
	"focusgame-go/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnalysisSet is one complete assessment output: whichever domain analysis
// rows were computed for a session. Nil entries are domains that had no
// usable game data.
type AnalysisSet struct {
	Attention *models.AttentionAnalysis
	Memory    *models.MemoryAnalysis
	Impulse   *models.ImpulseAnalysis
	Executive *models.ExecutiveFunctionAnalysis
}

// SaveAssessmentTx persists every non-nil analysis row of the set in a
// single transaction. Either all rows commit or none do.
func SaveAssessmentTx(ctx context.Context, set *AnalysisSet) error {
	return database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if set.Attention != nil {
			if err := tx.Create(set.Attention).Error; err != nil {
				return fmt.Errorf("failed to save attention analysis: %w", err)
			}
		}
		if set.Memory != nil {
			if err := tx.Create(set.Memory).Error; err != nil {
				return fmt.Errorf("failed to save memory analysis: %w", err)
			}
		}
		if set.Impulse != nil {
			if err := tx.Create(set.Impulse).Error; err != nil {
				return fmt.Errorf("failed to save impulse analysis: %w", err)
			}
		}
		if set.Executive != nil {
			if err := tx.Create(set.Executive).Error; err != nil {
				return fmt.Errorf("failed to save executive analysis: %w", err)
			}
		}
		return nil
	})
}

// GetSessionPatient loads the patient behind a session, for date of birth
// and clinical group resolution.
func GetSessionPatient(ctx context.Context, sessionID uuid.UUID) (*models.Patient, error) {
	var session models.Session
	err := database.DB.WithContext(ctx).
		Preload("Patient").
		First(&session, "id = ?", sessionID).Error
	if err != nil {
		return nil, err
	}
	if session.Patient == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return session.Patient, nil
}

// PendingSessionIDs returns sessions that have game results but no
// executive function analysis yet. The executive row is part of every
// committed set, so its absence marks an unprocessed session.
func PendingSessionIDs(ctx context.Context, limit int) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	query := `
		SELECT DISTINCT gr.session_id
		FROM game_results gr
		LEFT JOIN executive_function_analyses efa ON efa.session_id = gr.session_id
		WHERE efa.id IS NULL
		ORDER BY gr.session_id
		LIMIT ?
	`
	err := database.DB.WithContext(ctx).Raw(query, limit).Scan(&ids).Error
	return ids, err
}
