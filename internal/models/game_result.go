package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// GameType identifies which game produced a result.
type GameType string

const (
	GameGoNoGo         GameType = "go_no_go"
	GameSequenceMemory GameType = "sequence_memory"
	GameMatchingCards  GameType = "matching_cards"
)

// GameResult is one completed game run within a session. Exactly one of the
// metric relations is populated, matching GameType.
type GameResult struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	GameType        GameType   `gorm:"type:varchar(30);not null"`
	StartTime       *time.Time
	EndTime         *time.Time
	DifficultyLevel *int
	CreatedAt       time.Time

	GoNoGoMetrics         *GoNoGoMetrics         `gorm:"foreignKey:ResultID"`
	SequenceMemoryMetrics *SequenceMemoryMetrics `gorm:"foreignKey:ResultID"`
	MatchingCardsMetrics  *MatchingCardsMetrics  `gorm:"foreignKey:ResultID"`
}

// GoNoGoMetrics holds the raw counts and reaction-time aggregates uploaded
// after a Go/No-Go run. Counts are per trial, times in milliseconds.
type GoNoGoMetrics struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ResultID         uuid.UUID `gorm:"type:uuid;not null;index"`
	CorrectGo        int
	CorrectNoGo      int
	CommissionErrors int
	OmissionErrors   int
	MeanReactionTime float64
	ReactionTimeSD   float64
	Score            *float64
	CreatedAt        time.Time
}

// SequenceMemoryMetrics holds the raw telemetry of a sequence memory run.
// RetentionTimes is one entry per recalled element, in milliseconds.
type SequenceMemoryMetrics struct {
	ID                    uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ResultID              uuid.UUID     `gorm:"type:uuid;not null;index"`
	SequenceLength        int
	CommissionErrors      int
	NumOfTrials           int
	RetentionTimes        pq.Int64Array `gorm:"type:integer[]"`
	TotalSequenceElements int
	Score                 *float64
	CreatedAt             time.Time
}

// MatchingCardsMetrics holds the raw telemetry of a card matching run.
// TimePerMatch is one entry per attempted match, in milliseconds.
type MatchingCardsMetrics struct {
	ID               uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ResultID         uuid.UUID     `gorm:"type:uuid;not null;index"`
	MatchesAttempted int
	CorrectMatches   int
	IncorrectMatches int
	TimePerMatch     pq.Int64Array `gorm:"type:integer[]"`
	Score            *float64
	CreatedAt        time.Time
}
