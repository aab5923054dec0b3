package models

import (
	"time"

	"github.com/google/uuid"
)

// Patient carries the clinical context the assessment needs: date of birth
// for age banding and ADHD subtype for normative group selection.
type Patient struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FirstName        string     `gorm:"size:50"`
	LastName         string     `gorm:"size:50"`
	DateOfBirth      *time.Time `gorm:"type:date"`
	Gender           string     `gorm:"size:20"`
	ADHDSubtype      *string    `gorm:"size:30"`
	DiagnosisDate    *time.Time `gorm:"type:date"`
	MedicationStatus *string    `gorm:"size:100"`
	Notes            *string    `gorm:"type:text"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Sessions []Session `gorm:"foreignKey:PatientID"`
}

// Session is one sitting of game play. Analyses are keyed by session, one
// immutable set per computation.
type Session struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PatientID       uuid.UUID `gorm:"type:uuid;not null;index"`
	SessionDate     time.Time `gorm:"not null"`
	SessionDuration *int
	Notes           *string   `gorm:"type:text"`
	CreatedAt       time.Time

	Patient     *Patient     `gorm:"foreignKey:PatientID"`
	GameResults []GameResult `gorm:"foreignKey:SessionID"`
}
