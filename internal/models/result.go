package models

type UploadResumeResponse struct {
	CandidateID string        `json:"candidate_id"`
	Filename    string        `json:"filename"`
	Parsed      *ParsedResume `json:"parsed_resume"`
}

type JobRequest struct {
	RecruiterID           string   `json:"recruiter_id" validate:"required,uuid"`
	Title                 string   `json:"title" validate:"required"`
	Description           string   `json:"description"`
	RequiredSkills        []string `json:"required_skills"`
	PreferredSkills       []string `json:"preferred_skills"`
	MinExperienceYears    int      `json:"min_experience_years" validate:"gte=0"`
	EducationRequirements []string `json:"education_requirements"`
}

type QuestionRequest struct {
	JobID            string     `json:"job_id" validate:"omitempty,uuid"`
	QuestionType     string     `json:"question_type" validate:"required,oneof=mcq coding text slider"`
	Category         string     `json:"category" validate:"required,oneof=technical psychometric"`
	Difficulty       string     `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	QuestionText     string     `json:"question_text" validate:"required"`
	Options          []string   `json:"options"`
	CorrectAnswer    string     `json:"correct_answer"`
	TestCases        []TestCase `json:"test_cases"`
	MaxScore         float64    `json:"max_score" validate:"gt=0"`
	TimeLimitSeconds int        `json:"time_limit_seconds"`
	SkillTags        []string   `json:"skill_tags"`
}

type BulkQuestionsRequest struct {
	Questions []QuestionRequest `json:"questions" validate:"required,min=1,dive"`
}

type StartAssessmentRequest struct {
	CandidateID string `json:"candidate_id" validate:"required,uuid"`
	JobID       string `json:"job_id" validate:"required,uuid"`
}

type SubmitResponseRequest struct {
	QuestionID       string   `json:"question_id" validate:"required,uuid"`
	ResponseText     string   `json:"response_text"`
	SelectedOption   *int     `json:"selected_option"`
	SliderValue      *float64 `json:"slider_value"`
	Language         string   `json:"language"`
	TimeTakenSeconds int      `json:"time_taken_seconds"`
}

type SubmitResponseResult struct {
	ResponseID string       `json:"response_id"`
	Grade      *GradeResult `json:"grade"`
	CodeOutput string       `json:"code_output,omitempty"`
}

type ExecuteRequest struct {
	Code      string     `json:"code" validate:"required"`
	Language  string     `json:"language" validate:"required"`
	TestCases []TestCase `json:"test_cases"`
}

type ProctoringEventRequest struct {
	CandidateID  string `json:"candidate_id" validate:"required,uuid"`
	AssessmentID string `json:"assessment_id" validate:"required,uuid"`
	EventType    string `json:"event_type" validate:"required"`
	Severity     string `json:"severity" validate:"required,oneof=low medium high"`
	Description  string `json:"description"`
}

type ProctoringSummary struct {
	AssessmentID   string         `json:"assessment_id"`
	TotalEvents    int            `json:"total_events"`
	EventCounts    map[string]int `json:"event_counts"`
	IntegrityScore float64        `json:"integrity_score"`
}

type AssessmentStatusResponse struct {
	ID                string  `json:"id"`
	Status            string  `json:"status"`
	QuestionsTotal    int     `json:"questions_total"`
	QuestionsAnswered int     `json:"questions_answered"`
	TechnicalScore    float64 `json:"technical_score"`
	PsychometricScore float64 `json:"psychometric_score"`
	TotalScore        float64 `json:"total_score"`
}

type ShortlistEntry struct {
	CandidateID    string  `json:"candidate_id"`
	FinalScore     float64 `json:"final_score"`
	Recommendation string  `json:"recommendation"`
	Ranking        string  `json:"ranking"`
}
