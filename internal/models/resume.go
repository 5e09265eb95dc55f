package models

// ParsedResume is the structured profile extracted from a resume. It is
// produced once per upload and overwritten wholesale on re-upload, never
// patched field by field.
type ParsedResume struct {
	Name            string           `json:"name"`
	Skills          []string         `json:"skills"`
	ExperienceYears float64          `json:"experience_years"`
	Education       []EducationEntry `json:"education"`
	WorkExperience  []WorkExperience `json:"work_experience"`
	ContactInfo     ContactInfo      `json:"contact_info"`
	RawText         string           `json:"raw_text"`
}

type EducationEntry struct {
	Degree string `json:"degree"`
	Field  string `json:"field"`
	Raw    string `json:"raw"`
}

// Display renders an education entry the way dashboards show it.
func (e EducationEntry) Display() string {
	if e.Field != "" {
		return e.Degree + " in " + e.Field
	}
	return e.Degree
}

type WorkExperience struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ContactInfo struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}
