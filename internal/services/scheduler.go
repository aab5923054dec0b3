package services

import (
	"context"
	"errors"
	"time"

	"focusgame-go/internal/config"
	"focusgame-go/internal/repository"
	"focusgame-go/internal/scoring"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Scheduler periodically sweeps for sessions that have game results but no
// analysis set yet and assesses them in the background.
type Scheduler struct {
	log        *zap.Logger
	assessment *AssessmentService
	interval   time.Duration
	batchSize  int
	maxWorkers int
}

func NewScheduler(log *zap.Logger, assessment *AssessmentService, cfg config.AssessmentConfig) *Scheduler {
	// errgroup.SetLimit(0) blocks every Go call, so never run with fewer
	// than one worker.
	workers := cfg.MaxConcurrent
	if workers < 1 {
		workers = 1
	}
	return &Scheduler{
		log:        log,
		assessment: assessment,
		interval:   cfg.SweepInterval,
		batchSize:  cfg.SweepBatchSize,
		maxWorkers: workers,
	}
}

// Start runs the sweep loop in a goroutine until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	s.log.Info("Starting assessment sweep scheduler...",
		zap.Duration("interval", s.interval),
		zap.Int("batch_size", s.batchSize))
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				s.log.Info("Assessment sweep scheduler stopped")
				return
			case <-ticker.C:
				s.runSweep(ctx)
			}
		}
	}()
}

func (s *Scheduler) runSweep(ctx context.Context) {
	sessionIDs, err := repository.PendingSessionIDs(ctx, s.batchSize)
	if err != nil {
		s.log.Error("Failed to list pending sessions", zap.Error(err))
		return
	}
	if len(sessionIDs) == 0 {
		return
	}
	s.log.Debug("Assessing pending sessions", zap.Int("count", len(sessionIDs)))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxWorkers)
	for _, sessionID := range sessionIDs {
		g.Go(func() error {
			_, err := s.assessment.ComputeAndSave(gctx, sessionID, nil)
			switch {
			case err == nil:
			case errors.Is(err, scoring.ErrInsufficientData), errors.Is(err, scoring.ErrInsufficientInput):
				s.log.Debug("Session not scoreable yet", zap.String("session_id", sessionID.String()))
			default:
				s.log.Error("Failed to assess session",
					zap.String("session_id", sessionID.String()), zap.Error(err))
			}
			return nil
		})
	}
	g.Wait()
}
