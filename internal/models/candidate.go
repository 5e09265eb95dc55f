package models

import (
	"time"

	"github.com/google/uuid"
)

type CandidateStatus string

const (
	CandidatePending    CandidateStatus = "pending"
	CandidateInProgress CandidateStatus = "in_progress"
	CandidateCompleted  CandidateStatus = "completed"
	CandidateHired      CandidateStatus = "hired"
	CandidateRejected   CandidateStatus = "rejected"
)

type CandidateProfile struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID       uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	ResumePath   string          `gorm:"type:text" json:"resume_path"`
	ParsedResume *ParsedResume   `gorm:"type:jsonb;serializer:json" json:"parsed_resume,omitempty"`
	Status       CandidateStatus `gorm:"type:text;default:'pending'" json:"status"`
	Ranking      string          `gorm:"type:text" json:"ranking"`
	CreatedAt    time.Time       `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"type:timestamp;default:now()" json:"updated_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (CandidateProfile) TableName() string {
	return "candidate_profiles"
}
