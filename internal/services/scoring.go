package services

import (
	"alfredoptarigan/talent-screen/internal/models"
)

// Category weights for the overall assessment score.
const (
	technicalWeight    = 0.6
	psychometricWeight = 0.4
)

// Integrity deductions per proctoring event type, scaled by severity and
// floored at zero. Unknown event types deduct the default.
var integrityDeductions = map[string]float64{
	"multiple_faces":    15,
	"no_face":           10,
	"tab_switch":        5,
	"copy_paste":        8,
	"keyboard_shortcut": 3,
	"window_blur":       5,
	"right_click":       2,
}

const defaultDeduction = 5

var severityMultipliers = map[models.EventSeverity]float64{
	models.SeverityLow:    0.5,
	models.SeverityMedium: 1.0,
	models.SeverityHigh:   2.0,
}

type ScoringService interface {
	SummarizeAssessment(responses []models.QuestionResponse) *models.AssessmentScoreSummary
	ComputeIntegrityScore(events []models.ProctoringEvent) float64
}

type scoringService struct{}

func NewScoringService() ScoringService {
	return &scoringService{}
}

// SummarizeAssessment partitions graded responses by question category and
// computes percentage scores. A category with zero total weight scores zero
// rather than dividing by it.
func (s *scoringService) SummarizeAssessment(responses []models.QuestionResponse) *models.AssessmentScoreSummary {
	summary := &models.AssessmentScoreSummary{
		TechnicalBreakdown:    []models.ResponseBreakdown{},
		PsychometricBreakdown: []models.ResponseBreakdown{},
	}

	var techTotal, techMax, psychTotal, psychMax float64
	for _, response := range responses {
		breakdown := models.ResponseBreakdown{
			Score:    response.Score,
			MaxScore: response.Question.MaxScore,
			Type:     response.Question.QuestionType,
			Skills:   response.Question.SkillTags,
		}

		if response.Question.Category == models.CategoryTechnical {
			summary.TechnicalBreakdown = append(summary.TechnicalBreakdown, breakdown)
			techTotal += response.Score
			techMax += response.Question.MaxScore
		} else {
			summary.PsychometricBreakdown = append(summary.PsychometricBreakdown, breakdown)
			psychTotal += response.Score
			psychMax += response.Question.MaxScore
		}
	}

	if techMax > 0 {
		summary.TechnicalScore = round2(techTotal / techMax * 100)
	}
	if psychMax > 0 {
		summary.PsychometricScore = round2(psychTotal / psychMax * 100)
	}
	summary.TotalScore = round2(summary.TechnicalScore*technicalWeight + summary.PsychometricScore*psychometricWeight)

	return summary
}

// ComputeIntegrityScore starts at 100 and subtracts a severity-scaled
// deduction per proctoring event, floored at 0. No events means 100.
func (s *scoringService) ComputeIntegrityScore(events []models.ProctoringEvent) float64 {
	if len(events) == 0 {
		return 100.0
	}

	var totalDeduction float64
	for _, event := range events {
		base, ok := integrityDeductions[event.EventType]
		if !ok {
			base = defaultDeduction
		}
		multiplier, ok := severityMultipliers[event.Severity]
		if !ok {
			multiplier = 1.0
		}
		totalDeduction += base * multiplier
	}

	score := 100 - totalDeduction
	if score < 0 {
		score = 0
	}
	return round2(score)
}
