// analysis.go
package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// AttentionAnalysis is one attention domain snapshot for a session.
// Per-game scores are nil when that game contributed no data.
type AttentionAnalysis struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionID      uuid.UUID `gorm:"type:uuid;not null;index"`
	GoNoGoScore    *float64
	SequenceScore  *float64
	OverallScore   float64
	ZScore         float64
	Percentile     float64
	Classification string `gorm:"size:30"`
	CreatedAt      time.Time
}

// MemoryAnalysis is one memory domain snapshot for a session. The component
// columns keep the full sub-score breakdowns as jsonb for reporting.
type MemoryAnalysis struct {
	ID                      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionID               uuid.UUID `gorm:"type:uuid;not null;index"`
	OverallScore            float64
	WorkingMemoryScore      *float64
	VisualMemoryScore       *float64
	DataCompleteness        float64
	TasksUsed               pq.StringArray `gorm:"type:text[]"`
	ZScore                  float64
	Percentile              float64
	Classification          string          `gorm:"size:30"`
	WorkingMemoryComponents json.RawMessage `gorm:"type:jsonb"`
	VisualMemoryComponents  json.RawMessage `gorm:"type:jsonb"`
	CreatedAt               time.Time
}

// ImpulseAnalysis is one impulse control domain snapshot for a session.
type ImpulseAnalysis struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionID         uuid.UUID `gorm:"type:uuid;not null;index"`
	OverallScore      float64
	InhibitoryControl float64
	ResponseControl   float64
	DecisionSpeed     float64
	ErrorAdaptation   float64
	DataCompleteness  float64
	GamesUsed         pq.StringArray `gorm:"type:text[]"`
	ZScore            float64
	Percentile        float64
	Classification    string `gorm:"size:30"`
	CreatedAt         time.Time
}

// ExecutiveFunctionAnalysis is one executive function snapshot for a
// session. Contributions are nil for domains that were unavailable.
type ExecutiveFunctionAnalysis struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionID             uuid.UUID `gorm:"type:uuid;not null;index"`
	Score                 float64
	MemoryContribution    *float64
	ImpulseContribution   *float64
	AttentionContribution *float64
	ProfilePattern        string `gorm:"size:60"`
	ZScore                float64
	Percentile            float64
	Classification        string `gorm:"size:30"`
	CreatedAt             time.Time
}
