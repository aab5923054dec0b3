package services

import (
	"encoding/json"
	"fmt"

	"focusgame-go/internal/models"
	"focusgame-go/internal/scoring"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

func gonogoInput(row *models.GoNoGoMetrics) *scoring.GoNoGoMetrics {
	if row == nil {
		return nil
	}
	return &scoring.GoNoGoMetrics{
		CorrectGo:        row.CorrectGo,
		CorrectNoGo:      row.CorrectNoGo,
		CommissionErrors: row.CommissionErrors,
		OmissionErrors:   row.OmissionErrors,
		MeanReactionTime: row.MeanReactionTime,
		ReactionTimeSD:   row.ReactionTimeSD,
	}
}

func sequenceInput(row *models.SequenceMemoryMetrics) *scoring.SequenceMetrics {
	if row == nil {
		return nil
	}
	return &scoring.SequenceMetrics{
		SequenceLength:        row.SequenceLength,
		CommissionErrors:      row.CommissionErrors,
		NumOfTrials:           row.NumOfTrials,
		RetentionTimes:        []int64(row.RetentionTimes),
		TotalSequenceElements: row.TotalSequenceElements,
	}
}

func matchingInput(row *models.MatchingCardsMetrics) *scoring.MatchingMetrics {
	if row == nil {
		return nil
	}
	return &scoring.MatchingMetrics{
		MatchesAttempted: row.MatchesAttempted,
		CorrectMatches:   row.CorrectMatches,
		IncorrectMatches: row.IncorrectMatches,
		TimePerMatch:     []int64(row.TimePerMatch),
	}
}

func attentionRow(sessionID uuid.UUID, a *AttentionAssessment) *models.AttentionAnalysis {
	row := &models.AttentionAnalysis{
		SessionID:      sessionID,
		OverallScore:   a.Result.Score,
		ZScore:         a.Comparison.ZScore,
		Percentile:     a.Comparison.Percentile,
		Classification: a.Comparison.Classification,
	}
	if v, ok := a.Result.Components[scoring.TaskGoNoGo]; ok {
		row.GoNoGoScore = &v
	}
	if v, ok := a.Result.Components[scoring.TaskSequence]; ok {
		row.SequenceScore = &v
	}
	return row
}

func memoryRow(sessionID uuid.UUID, m *MemoryAssessment) (*models.MemoryAnalysis, error) {
	row := &models.MemoryAnalysis{
		SessionID:        sessionID,
		OverallScore:     m.Result.Score,
		DataCompleteness: m.Result.DataCompleteness,
		TasksUsed:        pq.StringArray(m.Result.TasksUsed),
		ZScore:           m.Comparison.ZScore,
		Percentile:       m.Comparison.Percentile,
		Classification:   m.Comparison.Classification,
	}
	if v, ok := m.Result.Components[scoring.ComponentWorkingMemory]; ok {
		row.WorkingMemoryScore = &v
	}
	if v, ok := m.Result.Components[scoring.ComponentVisualMemory]; ok {
		row.VisualMemoryScore = &v
	}

	if m.Result.WorkingMemory != nil {
		data, err := json.Marshal(m.Result.WorkingMemory)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal working memory components: %w", err)
		}
		row.WorkingMemoryComponents = data
	}
	if m.Result.VisualMemory != nil {
		data, err := json.Marshal(m.Result.VisualMemory)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal visual memory components: %w", err)
		}
		row.VisualMemoryComponents = data
	}
	return row, nil
}

func impulseRow(sessionID uuid.UUID, i *ImpulseAssessment) *models.ImpulseAnalysis {
	return &models.ImpulseAnalysis{
		SessionID:         sessionID,
		OverallScore:      i.Result.Score,
		InhibitoryControl: i.Result.Components[scoring.ComponentInhibitoryControl],
		ResponseControl:   i.Result.Components[scoring.ComponentResponseControl],
		DecisionSpeed:     i.Result.Components[scoring.ComponentDecisionSpeed],
		ErrorAdaptation:   i.Result.Components[scoring.ComponentErrorAdaptation],
		DataCompleteness:  i.Result.DataCompleteness,
		GamesUsed:         pq.StringArray(i.Result.TasksUsed),
		ZScore:            i.Comparison.ZScore,
		Percentile:        i.Comparison.Percentile,
		Classification:    i.Comparison.Classification,
	}
}

func executiveRow(sessionID uuid.UUID, e *ExecutiveAssessment) *models.ExecutiveFunctionAnalysis {
	return &models.ExecutiveFunctionAnalysis{
		SessionID:             sessionID,
		Score:                 e.Result.Score,
		MemoryContribution:    e.Result.MemoryContribution,
		ImpulseContribution:   e.Result.ImpulseContribution,
		AttentionContribution: e.Result.AttentionContribution,
		ProfilePattern:        e.Result.ProfilePattern,
		ZScore:                e.Comparison.ZScore,
		Percentile:            e.Comparison.Percentile,
		Classification:        e.Comparison.Classification,
	}
}
