package models

import (
	"time"

	"github.com/google/uuid"
)

type AssessmentStatus string

const (
	AssessmentNotStarted AssessmentStatus = "not_started"
	AssessmentInProgress AssessmentStatus = "in_progress"
	AssessmentCompleted  AssessmentStatus = "completed"
)

type Assessment struct {
	ID                uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CandidateID       uuid.UUID        `gorm:"type:uuid;not null" json:"candidate_id"`
	JobID             uuid.UUID        `gorm:"type:uuid;not null" json:"job_id"`
	Status            AssessmentStatus `gorm:"type:text;default:'not_started'" json:"status"`
	StartedAt         *time.Time       `gorm:"type:timestamp" json:"started_at,omitempty"`
	CompletedAt       *time.Time       `gorm:"type:timestamp" json:"completed_at,omitempty"`
	TechnicalScore    float64          `gorm:"default:0" json:"technical_score"`
	PsychometricScore float64          `gorm:"default:0" json:"psychometric_score"`
	TotalScore        float64          `gorm:"default:0" json:"total_score"`
	CreatedAt         time.Time        `gorm:"type:timestamp;default:now()" json:"created_at"`

	// Relations
	Candidate CandidateProfile `gorm:"foreignKey:CandidateID" json:"-"`
	Job       Job              `gorm:"foreignKey:JobID" json:"-"`
}

func (Assessment) TableName() string {
	return "assessments"
}

type QuestionResponse struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	AssessmentID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_response_question,unique" json:"assessment_id"`
	QuestionID       uuid.UUID  `gorm:"type:uuid;not null;index:idx_response_question,unique" json:"question_id"`
	ResponseText     string     `gorm:"type:text" json:"response_text,omitempty"`
	SelectedOption   *int       `json:"selected_option,omitempty"`
	SliderValue      *float64   `json:"slider_value,omitempty"`
	CodeOutput       string     `gorm:"type:text" json:"code_output,omitempty"`
	IsCorrect        *bool      `json:"is_correct,omitempty"`
	Score            float64    `gorm:"default:0" json:"score"`
	TimeTakenSeconds int        `json:"time_taken_seconds"`
	SubmittedAt      time.Time  `gorm:"type:timestamp;default:now()" json:"submitted_at"`

	// Relations
	Question Question `gorm:"foreignKey:QuestionID" json:"-"`
}

func (QuestionResponse) TableName() string {
	return "question_responses"
}
