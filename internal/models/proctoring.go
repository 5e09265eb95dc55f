package models

import (
	"time"

	"github.com/google/uuid"
)

type EventSeverity string

const (
	SeverityLow    EventSeverity = "low"
	SeverityMedium EventSeverity = "medium"
	SeverityHigh   EventSeverity = "high"
)

type ProctoringEvent struct {
	ID           uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CandidateID  uuid.UUID     `gorm:"type:uuid;not null;index" json:"candidate_id"`
	AssessmentID uuid.UUID     `gorm:"type:uuid;not null;index" json:"assessment_id"`
	EventType    string        `gorm:"type:text" json:"event_type"`
	Severity     EventSeverity `gorm:"type:text" json:"severity"`
	Description  string        `gorm:"type:text" json:"description,omitempty"`
	Timestamp    time.Time     `gorm:"type:timestamp;default:now()" json:"timestamp"`
}

func (ProctoringEvent) TableName() string {
	return "proctoring_events"
}
