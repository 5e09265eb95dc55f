package models

// GradeResult scores one submitted response. IsCorrect is nil for slider
// items, which measure preference rather than correctness. A grade is written
// once and never mutated.
type GradeResult struct {
	IsCorrect *bool   `json:"is_correct"`
	Score     float64 `json:"score"`
	MaxScore  float64 `json:"max_score"`

	// Type-specific metadata.
	TestsPassed     *int     `json:"tests_passed,omitempty"`
	TestsTotal      *int     `json:"tests_total,omitempty"`
	WordCount       *int     `json:"word_count,omitempty"`
	KeywordsFound   *int     `json:"keywords_found,omitempty"`
	NormalizedValue *float64 `json:"normalized_value,omitempty"`
}

// AssessmentScoreSummary aggregates all graded responses of one assessment.
// Recomputed from scratch each time the assessment is finalized.
type AssessmentScoreSummary struct {
	TechnicalScore        float64             `json:"technical_score"`
	PsychometricScore     float64             `json:"psychometric_score"`
	TotalScore            float64             `json:"total_score"`
	TechnicalBreakdown    []ResponseBreakdown `json:"technical_breakdown"`
	PsychometricBreakdown []ResponseBreakdown `json:"psychometric_breakdown"`
}

type ResponseBreakdown struct {
	Score    float64      `json:"score"`
	MaxScore float64      `json:"max_score"`
	Type     QuestionType `json:"type"`
	Skills   []string     `json:"skills"`
}
