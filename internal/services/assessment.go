package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"focusgame-go/internal/repository"
	"focusgame-go/internal/scoring"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// AssessmentService orchestrates one cognitive assessment per session:
// fetch raw metrics, score the domains, compare against norms, persist the
// analysis rows as one unit. Concurrent computations for the same session
// are collapsed into a single flight.
type AssessmentService struct {
	log   *zap.Logger
	group singleflight.Group
}

func NewAssessmentService(log *zap.Logger) *AssessmentService {
	return &AssessmentService{log: log}
}

// AttentionAssessment pairs the attention domain result with its normative
// comparison.
type AttentionAssessment struct {
	Result     *scoring.DomainScoreResult `json:"result"`
	Comparison scoring.ComparisonResult   `json:"comparison"`
}

type MemoryAssessment struct {
	Result     *scoring.MemoryResult    `json:"result"`
	Comparison scoring.ComparisonResult `json:"comparison"`
}

type ImpulseAssessment struct {
	Result     *scoring.ImpulseResult   `json:"result"`
	Comparison scoring.ComparisonResult `json:"comparison"`
}

type ExecutiveAssessment struct {
	Result     *scoring.ExecutiveFunctionResult `json:"result"`
	Comparison scoring.ComparisonResult         `json:"comparison"`
}

// AssessmentResult is the full outcome of one assessment computation.
// Domains that had no usable game data are nil.
type AssessmentResult struct {
	SessionID     uuid.UUID        `json:"session_id"`
	AgeGroup      scoring.AgeGroup `json:"age_group"`
	ClinicalGroup string           `json:"clinical_group"`
	ComputedAt    time.Time        `json:"computed_at"`

	Attention *AttentionAssessment `json:"attention,omitempty"`
	Memory    *MemoryAssessment    `json:"memory,omitempty"`
	Impulse   *ImpulseAssessment   `json:"impulse,omitempty"`
	Executive *ExecutiveAssessment `json:"executive,omitempty"`
}

// ComputeAssessment runs the scoring pipeline for a session. The caller may
// supply a date of birth; when nil, the patient record's date of birth is
// used. Returns ErrInsufficientData when no game contributed any metrics.
func (s *AssessmentService) ComputeAssessment(ctx context.Context, sessionID uuid.UUID, dateOfBirth *time.Time) (*AssessmentResult, error) {
	metrics, err := repository.GetRawMetricsForSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load metrics for session %s: %w", sessionID, err)
	}
	if !metrics.HasAny() {
		return nil, fmt.Errorf("session %s: %w", sessionID, scoring.ErrInsufficientData)
	}

	clinicalGroup := scoring.GroupTypicallyDeveloping
	patient, err := repository.GetSessionPatient(ctx, sessionID)
	switch {
	case err == nil:
		if dateOfBirth == nil {
			dateOfBirth = patient.DateOfBirth
		}
		if patient.ADHDSubtype != nil {
			clinicalGroup = scoring.GroupADHD
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		s.log.Warn("Session has no patient on record", zap.String("session_id", sessionID.String()))
	default:
		return nil, fmt.Errorf("failed to load patient for session %s: %w", sessionID, err)
	}

	ageGroup := scoring.AgeGroupUnknown
	if dateOfBirth != nil {
		ageGroup = scoring.AgeGroupForBirthDate(*dateOfBirth, time.Now().UTC())
	}

	s.log.Info("Computing cognitive assessment",
		zap.String("session_id", sessionID.String()),
		zap.String("age_group", string(ageGroup)),
		zap.String("clinical_group", clinicalGroup))

	gonogo := gonogoInput(metrics.GoNoGo)
	sequence := sequenceInput(metrics.Sequence)
	matching := matchingInput(metrics.Matching)
	if err := validateInputs(gonogo, sequence, matching); err != nil {
		return nil, fmt.Errorf("session %s: %w", sessionID, err)
	}

	attention, err := scoring.ScoreAttention(gonogo, sequence, ageGroup)
	if err != nil {
		if !errors.Is(err, scoring.ErrInsufficientData) {
			return nil, err
		}
		s.log.Debug("Skipping attention domain, no usable game data",
			zap.String("session_id", sessionID.String()))
		attention = nil
	}

	memory := scoring.ScoreMemory(sequence, matching, ageGroup)
	if len(memory.TasksUsed) == 0 {
		s.log.Debug("Skipping memory domain, no usable game data",
			zap.String("session_id", sessionID.String()))
		memory = nil
	}

	impulse := scoring.ScoreImpulseControl(gonogo, sequence, matching, ageGroup)
	if len(impulse.TasksUsed) == 0 {
		s.log.Debug("Skipping impulse control domain, no usable game data",
			zap.String("session_id", sessionID.String()))
		impulse = nil
	}

	var memoryScore, impulseScore, attentionScore *float64
	if memory != nil {
		memoryScore = &memory.Score
	}
	if impulse != nil {
		impulseScore = &impulse.Score
	}
	if attention != nil {
		attentionScore = &attention.Score
	}

	executive, err := scoring.ExecutiveFunction(memoryScore, impulseScore, attentionScore)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", sessionID, err)
	}

	result := &AssessmentResult{
		SessionID:     sessionID,
		AgeGroup:      ageGroup,
		ClinicalGroup: clinicalGroup,
		ComputedAt:    time.Now().UTC(),
	}

	// The four comparisons are independent reads; each goroutine writes a
	// distinct result field.
	g, gctx := errgroup.WithContext(ctx)
	if attention != nil {
		g.Go(func() error {
			cmp, err := s.compareDomain(gctx, scoring.DomainAttention, attention.Score, ageGroup, clinicalGroup)
			if err != nil {
				return err
			}
			result.Attention = &AttentionAssessment{Result: attention, Comparison: cmp}
			return nil
		})
	}
	if memory != nil {
		g.Go(func() error {
			cmp, err := s.compareDomain(gctx, scoring.DomainMemory, memory.Score, ageGroup, clinicalGroup)
			if err != nil {
				return err
			}
			result.Memory = &MemoryAssessment{Result: memory, Comparison: cmp}
			return nil
		})
	}
	if impulse != nil {
		g.Go(func() error {
			cmp, err := s.compareDomain(gctx, scoring.DomainImpulseControl, impulse.Score, ageGroup, clinicalGroup)
			if err != nil {
				return err
			}
			result.Impulse = &ImpulseAssessment{Result: impulse, Comparison: cmp}
			return nil
		})
	}
	g.Go(func() error {
		cmp, err := s.compareDomain(gctx, scoring.DomainExecutiveFunction, executive.Score, ageGroup, clinicalGroup)
		if err != nil {
			return err
		}
		result.Executive = &ExecutiveAssessment{Result: executive, Comparison: cmp}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("normative comparison failed for session %s: %w", sessionID, err)
	}

	return result, nil
}

// compareDomain looks up the normative reference and places the score
// against it, falling back to the hardcoded per-domain defaults when no
// reference row exists.
func (s *AssessmentService) compareDomain(ctx context.Context, domain string, score float64, age scoring.AgeGroup, clinicalGroup string) (scoring.ComparisonResult, error) {
	ref, err := repository.LookupNorm(ctx, domain, age, clinicalGroup)
	if err != nil {
		if !errors.Is(err, scoring.ErrNormativeDataNotFound) {
			return scoring.ComparisonResult{}, err
		}
		s.log.Debug("No normative reference found, using defaults",
			zap.String("domain", domain),
			zap.String("age_group", string(age)),
			zap.String("clinical_group", clinicalGroup))
		fallback := scoring.DefaultNorm(domain)
		ref = &fallback
	}
	return scoring.Compare(score, *ref), nil
}

func validateInputs(gonogo *scoring.GoNoGoMetrics, sequence *scoring.SequenceMetrics, matching *scoring.MatchingMetrics) error {
	if gonogo != nil {
		if err := gonogo.Validate(); err != nil {
			return fmt.Errorf("go/no-go metrics: %w", err)
		}
	}
	if sequence != nil {
		if err := sequence.Validate(); err != nil {
			return fmt.Errorf("sequence metrics: %w", err)
		}
	}
	if matching != nil {
		if err := matching.Validate(); err != nil {
			return fmt.Errorf("matching metrics: %w", err)
		}
	}
	return nil
}

// SaveAssessment persists every computed domain analysis in one
// transaction.
func (s *AssessmentService) SaveAssessment(ctx context.Context, result *AssessmentResult) error {
	set := &repository.AnalysisSet{}
	if result.Attention != nil {
		set.Attention = attentionRow(result.SessionID, result.Attention)
	}
	if result.Memory != nil {
		row, err := memoryRow(result.SessionID, result.Memory)
		if err != nil {
			return err
		}
		set.Memory = row
	}
	if result.Impulse != nil {
		set.Impulse = impulseRow(result.SessionID, result.Impulse)
	}
	if result.Executive != nil {
		set.Executive = executiveRow(result.SessionID, result.Executive)
	}

	if err := repository.SaveAssessmentTx(ctx, set); err != nil {
		return fmt.Errorf("failed to persist assessment for session %s: %w", result.SessionID, err)
	}

	s.log.Info("Saved cognitive assessment",
		zap.String("session_id", result.SessionID.String()),
		zap.Bool("attention", set.Attention != nil),
		zap.Bool("memory", set.Memory != nil),
		zap.Bool("impulse", set.Impulse != nil))
	return nil
}

// ComputeAndSave runs the full pipeline for a session. Duplicate calls for
// the same session while one is in flight share its outcome.
func (s *AssessmentService) ComputeAndSave(ctx context.Context, sessionID uuid.UUID, dateOfBirth *time.Time) (*AssessmentResult, error) {
	v, err, _ := s.group.Do(sessionID.String(), func() (any, error) {
		result, err := s.ComputeAssessment(ctx, sessionID, dateOfBirth)
		if err != nil {
			return nil, err
		}
		if err := s.SaveAssessment(ctx, result); err != nil {
			return nil, err
		}
		return result, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*AssessmentResult), nil
}

// LatestAssessment returns the newest stored analysis row per domain for a
// session.
func (s *AssessmentService) LatestAssessment(ctx context.Context, sessionID uuid.UUID) (*repository.AnalysisSet, error) {
	return repository.LatestAnalysesForSession(ctx, sessionID)
}

// DomainTimeline returns a patient's per-session score history for one
// domain.
func (s *AssessmentService) DomainTimeline(ctx context.Context, patientID uuid.UUID, domain string) ([]repository.TimelineDataPoint, error) {
	return repository.DomainTimeline(ctx, patientID, domain)
}
