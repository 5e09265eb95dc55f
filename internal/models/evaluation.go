package models

import (
	"time"

	"github.com/google/uuid"
)

type EvaluationStatus string

const (
	StatusQueued     EvaluationStatus = "queued"
	StatusProcessing EvaluationStatus = "processing"
	StatusCompleted  EvaluationStatus = "completed"
	StatusFailed     EvaluationStatus = "failed"
)

type Recommendation string

const (
	RecommendHire     Recommendation = "hire"
	RecommendConsider Recommendation = "consider"
	RecommendNoHire   Recommendation = "no_hire"
)

// FinalEvaluation is the single authoritative record per (candidate, job).
// It is created queued when an assessment completes and fully overwritten
// each time the assessment is re-finalized.
type FinalEvaluation struct {
	ID                    uuid.UUID           `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CandidateID           uuid.UUID           `gorm:"type:uuid;not null;index:idx_eval_candidate_job,unique" json:"candidate_id"`
	JobID                 uuid.UUID           `gorm:"type:uuid;not null;index:idx_eval_candidate_job,unique" json:"job_id"`
	AssessmentID          uuid.UUID           `gorm:"type:uuid;not null" json:"assessment_id"`
	Status                EvaluationStatus    `gorm:"type:text;not null;default:'queued'" json:"status"`
	Recommendation        Recommendation      `gorm:"type:text" json:"recommendation,omitempty"`
	Rationale             string              `gorm:"type:text" json:"rationale,omitempty"`
	FinalScore            float64             `json:"final_score"`
	ResumeMatchScore      float64             `json:"resume_match_score"`
	AssessmentScore       float64             `json:"assessment_score"`
	IntegrityScore        float64             `json:"integrity_score"`
	TechnicalBreakdown    []ResponseBreakdown `gorm:"type:jsonb;serializer:json" json:"technical_breakdown,omitempty"`
	PsychometricBreakdown []ResponseBreakdown `gorm:"type:jsonb;serializer:json" json:"psychometric_breakdown,omitempty"`
	Strengths             []string            `gorm:"type:jsonb;serializer:json" json:"strengths,omitempty"`
	Weaknesses            []string            `gorm:"type:jsonb;serializer:json" json:"weaknesses,omitempty"`
	ErrorMessage          *string             `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt             time.Time           `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt             time.Time           `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (FinalEvaluation) TableName() string {
	return "final_evaluations"
}
