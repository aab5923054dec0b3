// internal/repository/charts.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"focusgame-go/internal/database"
	"focusgame-go/internal/models"
	"focusgame-go/internal/scoring"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TimelineDataPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// LatestAnalysesForSession returns the newest analysis row per domain for a
// session. Domains that were never computed come back nil.
func LatestAnalysesForSession(ctx context.Context, sessionID uuid.UUID) (*AnalysisSet, error) {
	set := &AnalysisSet{}

	var attention models.AttentionAnalysis
	found, err := latestFor(ctx, sessionID, &attention)
	if err != nil {
		return nil, err
	}
	if found {
		set.Attention = &attention
	}

	var memory models.MemoryAnalysis
	if found, err = latestFor(ctx, sessionID, &memory); err != nil {
		return nil, err
	} else if found {
		set.Memory = &memory
	}

	var impulse models.ImpulseAnalysis
	if found, err = latestFor(ctx, sessionID, &impulse); err != nil {
		return nil, err
	} else if found {
		set.Impulse = &impulse
	}

	var executive models.ExecutiveFunctionAnalysis
	if found, err = latestFor(ctx, sessionID, &executive); err != nil {
		return nil, err
	} else if found {
		set.Executive = &executive
	}

	return set, nil
}

func latestFor(ctx context.Context, sessionID uuid.UUID, dest any) (bool, error) {
	err := database.DB.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at DESC").
		First(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// DomainTimeline returns one point per analysis row for a patient, ordered
// by computation time. Used to chart domain progress across therapy
// sessions.
func DomainTimeline(ctx context.Context, patientID uuid.UUID, domain string) ([]TimelineDataPoint, error) {
	table, column, err := domainTable(domain)
	if err != nil {
		return nil, err
	}

	var data []TimelineDataPoint
	query := fmt.Sprintf(`
		SELECT
			a.created_at AS date,
			a.%s AS value
		FROM %s a
		JOIN sessions s ON s.id = a.session_id
		WHERE s.patient_id = ?
		ORDER BY a.created_at;
	`, column, table)

	err = database.DB.WithContext(ctx).Raw(query, patientID).Scan(&data).Error
	return data, err
}

func domainTable(domain string) (table, column string, err error) {
	switch domain {
	case scoring.DomainAttention:
		return "attention_analyses", "overall_score", nil
	case scoring.DomainMemory:
		return "memory_analyses", "overall_score", nil
	case scoring.DomainImpulseControl:
		return "impulse_analyses", "overall_score", nil
	case scoring.DomainExecutiveFunction:
		return "executive_function_analyses", "score", nil
	default:
		return "", "", fmt.Errorf("unknown domain %q", domain)
	}
}
