package models

import (
	"time"

	"github.com/google/uuid"
)

type QuestionType string

const (
	QuestionMCQ    QuestionType = "mcq"
	QuestionCoding QuestionType = "coding"
	QuestionText   QuestionType = "text"
	QuestionSlider QuestionType = "slider"
)

type QuestionCategory string

const (
	CategoryTechnical    QuestionCategory = "technical"
	CategoryPsychometric QuestionCategory = "psychometric"
)

// TestCase is one stdin/stdout pair a coding submission is judged against.
type TestCase struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expected_output"`
}

type Question struct {
	ID               uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	JobID            *uuid.UUID       `gorm:"type:uuid" json:"job_id,omitempty"`
	QuestionType     QuestionType     `gorm:"type:text" json:"question_type"`
	Category         QuestionCategory `gorm:"type:text" json:"category"`
	Difficulty       string           `gorm:"type:text" json:"difficulty"`
	QuestionText     string           `gorm:"type:text;not null" json:"question_text"`
	Options          []string         `gorm:"type:jsonb;serializer:json" json:"options,omitempty"`
	CorrectAnswer    string           `gorm:"type:text" json:"correct_answer,omitempty"`
	TestCases        []TestCase       `gorm:"type:jsonb;serializer:json" json:"test_cases,omitempty"`
	MaxScore         float64          `gorm:"default:10" json:"max_score"`
	TimeLimitSeconds int              `gorm:"default:300" json:"time_limit_seconds"`
	SkillTags        []string         `gorm:"type:jsonb;serializer:json" json:"skill_tags,omitempty"`
	CreatedAt        time.Time        `gorm:"type:timestamp;default:now()" json:"created_at"`
}

func (Question) TableName() string {
	return "questions"
}
