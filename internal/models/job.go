package models

import (
	"time"

	"github.com/google/uuid"
)

type Job struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	RecruiterID           uuid.UUID `gorm:"type:uuid" json:"recruiter_id"`
	Title                 string    `gorm:"type:text;not null" json:"title"`
	Description           string    `gorm:"type:text" json:"description"`
	RequiredSkills        []string  `gorm:"type:jsonb;serializer:json" json:"required_skills"`
	PreferredSkills       []string  `gorm:"type:jsonb;serializer:json" json:"preferred_skills"`
	MinExperienceYears    int       `gorm:"default:0" json:"min_experience_years"`
	EducationRequirements []string  `gorm:"type:jsonb;serializer:json" json:"education_requirements"`
	IsActive              bool      `gorm:"default:true" json:"is_active"`
	CreatedAt             time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt             time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (Job) TableName() string {
	return "job_descriptions"
}
