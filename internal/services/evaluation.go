package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"alfredoptarigan/talent-screen/internal/models"
	"alfredoptarigan/talent-screen/internal/repositories"
)

// Final score weights across the three signals.
const (
	resumeWeight     = 0.25
	assessmentWeight = 0.55
	integrityWeight  = 0.20
)

// Recommendation thresholds, checked in order: hire, then consider, else
// no_hire.
const (
	hireScoreFloor         = 75.0
	hireIntegrityFloor     = 70.0
	considerScoreFloor     = 50.0
	considerIntegrityFloor = 50.0
)

// rationaleRule is one independent "condition → templated sentence"
// evaluator. Rules run in slice order and their fragments are joined with
// single spaces, so wording changes never touch scoring logic.
type rationaleRule func(in synthesisInput) (string, bool)

type synthesisInput struct {
	match          *models.MatchResult
	summary        *models.AssessmentScoreSummary
	integrityScore float64
	recommendation models.Recommendation
}

var rationaleRules = []rationaleRule{
	func(in synthesisInput) (string, bool) {
		t := in.summary.TechnicalScore
		switch {
		case t >= 80:
			return fmt.Sprintf("Strong technical performance (%v%%). Candidate demonstrated solid coding and problem-solving skills.", t), true
		case t >= 60:
			return fmt.Sprintf("Adequate technical skills (%v%%). Shows competency but may need mentoring in some areas.", t), true
		default:
			return fmt.Sprintf("Technical assessment score of %v%% indicates gaps in required skills.", t), true
		}
	},
	func(in synthesisInput) (string, bool) {
		p := in.summary.PsychometricScore
		switch {
		case p >= 70:
			return fmt.Sprintf("Psychometric assessment (%v%%) indicates good cultural fit and soft skills.", p), true
		case p >= 50:
			return fmt.Sprintf("Psychometric score of %v%% shows moderate alignment with team values.", p), true
		default:
			return fmt.Sprintf("Low psychometric score (%v%%) suggests potential challenges with team integration.", p), true
		}
	},
	func(in synthesisInput) (string, bool) {
		if len(in.match.MissingSkills) == 0 {
			return "", false
		}
		return fmt.Sprintf("Missing skills: %s.", strings.Join(topN(in.match.MissingSkills, 3), ", ")), true
	},
	func(in synthesisInput) (string, bool) {
		if in.integrityScore >= 70 {
			return "", false
		}
		return fmt.Sprintf("⚠️ Integrity concerns: Score of %v%% due to proctoring violations.", in.integrityScore), true
	},
	func(in synthesisInput) (string, bool) {
		switch in.recommendation {
		case models.RecommendHire:
			return "RECOMMENDATION: Proceed with hiring. Candidate meets or exceeds requirements.", true
		case models.RecommendConsider:
			return "RECOMMENDATION: Consider for role. May benefit from additional interview or training.", true
		default:
			return "RECOMMENDATION: Not recommended for this role at this time.", true
		}
	},
}

type SynthesizerService interface {
	Synthesize(match *models.MatchResult, summary *models.AssessmentScoreSummary, integrityScore float64) *models.FinalEvaluation
}

type synthesizerService struct{}

func NewSynthesizerService() SynthesizerService {
	return &synthesizerService{}
}

// Synthesize combines the resume match, assessment summary, and integrity
// score into the final recommendation with rationale and strengths/
// weaknesses. Pure function: re-running it overwrites, never appends.
func (s *synthesizerService) Synthesize(match *models.MatchResult, summary *models.AssessmentScoreSummary, integrityScore float64) *models.FinalEvaluation {
	finalScore := round2(match.MatchScore*resumeWeight +
		summary.TotalScore*assessmentWeight +
		integrityScore*integrityWeight)

	recommendation := models.RecommendNoHire
	switch {
	case finalScore >= hireScoreFloor && integrityScore >= hireIntegrityFloor:
		recommendation = models.RecommendHire
	case finalScore >= considerScoreFloor && integrityScore >= considerIntegrityFloor:
		recommendation = models.RecommendConsider
	}

	in := synthesisInput{
		match:          match,
		summary:        summary,
		integrityScore: integrityScore,
		recommendation: recommendation,
	}

	var fragments []string
	for _, rule := range rationaleRules {
		if fragment, ok := rule(in); ok {
			fragments = append(fragments, fragment)
		}
	}

	strengths, weaknesses := assessTraits(in)

	return &models.FinalEvaluation{
		Recommendation:        recommendation,
		Rationale:             strings.Join(fragments, " "),
		FinalScore:            finalScore,
		ResumeMatchScore:      match.MatchScore,
		AssessmentScore:       summary.TotalScore,
		IntegrityScore:        integrityScore,
		TechnicalBreakdown:    summary.TechnicalBreakdown,
		PsychometricBreakdown: summary.PsychometricBreakdown,
		Strengths:             strengths,
		Weaknesses:            weaknesses,
	}
}

func assessTraits(in synthesisInput) (strengths, weaknesses []string) {
	if in.summary.TechnicalScore >= 70 {
		strengths = append(strengths, "Strong technical foundation")
	} else {
		weaknesses = append(weaknesses, "Technical skills need improvement")
	}

	if in.summary.PsychometricScore >= 70 {
		strengths = append(strengths, "Good cultural fit and soft skills")
	} else {
		weaknesses = append(weaknesses, "May need soft skills development")
	}

	if in.match.ExperienceMatch {
		strengths = append(strengths, "Meets experience requirements")
	} else {
		weaknesses = append(weaknesses, "Below required experience level")
	}

	if len(in.match.MatchedSkills) > 0 {
		strengths = append(strengths, fmt.Sprintf("Has key skills: %s", strings.Join(topN(in.match.MatchedSkills, 3), ", ")))
	}

	// Integrity between 70 and 90 contributes neither way.
	if in.integrityScore >= 90 {
		strengths = append(strengths, "Excellent test integrity")
	} else if in.integrityScore < 70 {
		weaknesses = append(weaknesses, "Integrity concerns during assessment")
	}

	return strengths, weaknesses
}

func topN(values []string, n int) []string {
	if len(values) > n {
		return values[:n]
	}
	return values
}

// EvaluatorService finalizes one queued evaluation end to end: it loads the
// assessment's responses, proctoring events, profile, and job, recomputes
// every derived aggregate from scratch, and overwrites the evaluation row.
type EvaluatorService interface {
	FinalizeEvaluation(ctx context.Context, evalID uuid.UUID) error
}

type evaluatorService struct {
	evalRepo       repositories.EvaluationRepository
	assessmentRepo repositories.AssessmentRepository
	responseRepo   repositories.ResponseRepository
	proctoringRepo repositories.ProctoringRepository
	candidateRepo  repositories.CandidateRepository
	jobRepo        repositories.JobRepository
	matcher        MatcherService
	scoring        ScoringService
	synthesizer    SynthesizerService
}

func NewEvaluatorService(
	evalRepo repositories.EvaluationRepository,
	assessmentRepo repositories.AssessmentRepository,
	responseRepo repositories.ResponseRepository,
	proctoringRepo repositories.ProctoringRepository,
	candidateRepo repositories.CandidateRepository,
	jobRepo repositories.JobRepository,
	matcher MatcherService,
	scoring ScoringService,
	synthesizer SynthesizerService,
) EvaluatorService {
	return &evaluatorService{
		evalRepo:       evalRepo,
		assessmentRepo: assessmentRepo,
		responseRepo:   responseRepo,
		proctoringRepo: proctoringRepo,
		candidateRepo:  candidateRepo,
		jobRepo:        jobRepo,
		matcher:        matcher,
		scoring:        scoring,
		synthesizer:    synthesizer,
	}
}

func (e *evaluatorService) FinalizeEvaluation(ctx context.Context, evalID uuid.UUID) error {
	if err := e.evalRepo.UpdateStatus(evalID, models.StatusProcessing); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	log.Printf("🔄 Finalizing evaluation %s\n", evalID)

	evaluation, err := e.evalRepo.FindByID(evalID)
	if err != nil {
		e.evalRepo.UpdateError(evalID, err.Error())
		return fmt.Errorf("failed to get evaluation: %w", err)
	}

	assessment, err := e.assessmentRepo.FindByID(evaluation.AssessmentID)
	if err != nil {
		e.evalRepo.UpdateError(evalID, fmt.Sprintf("assessment not found: %v", err))
		return fmt.Errorf("failed to get assessment: %w", err)
	}

	candidate, err := e.candidateRepo.FindByID(evaluation.CandidateID)
	if err != nil {
		e.evalRepo.UpdateError(evalID, fmt.Sprintf("candidate not found: %v", err))
		return fmt.Errorf("failed to get candidate: %w", err)
	}

	job, err := e.jobRepo.FindByID(evaluation.JobID)
	if err != nil {
		e.evalRepo.UpdateError(evalID, fmt.Sprintf("job not found: %v", err))
		return fmt.Errorf("failed to get job: %w", err)
	}

	responses, err := e.responseRepo.FindByAssessment(assessment.ID)
	if err != nil {
		e.evalRepo.UpdateError(evalID, fmt.Sprintf("failed to load responses: %v", err))
		return fmt.Errorf("failed to load responses: %w", err)
	}

	events, err := e.proctoringRepo.FindByScope(evaluation.CandidateID, assessment.ID)
	if err != nil {
		e.evalRepo.UpdateError(evalID, fmt.Sprintf("failed to load proctoring events: %v", err))
		return fmt.Errorf("failed to load proctoring events: %w", err)
	}

	// Recompute everything from scratch; a partial failure upstream can
	// never leave these aggregates inconsistent.
	summary := e.scoring.SummarizeAssessment(responses)
	integrityScore := e.scoring.ComputeIntegrityScore(events)

	match := &models.MatchResult{}
	if candidate.ParsedResume != nil {
		match = e.matcher.Match(candidate.ParsedResume, job)
	} else {
		match.Ranking = models.RankingReject
	}

	result := e.synthesizer.Synthesize(match, summary, integrityScore)

	if err := e.assessmentRepo.UpdateScores(assessment.ID, summary.TechnicalScore, summary.PsychometricScore, summary.TotalScore); err != nil {
		e.evalRepo.UpdateError(evalID, fmt.Sprintf("failed to save assessment scores: %v", err))
		return fmt.Errorf("failed to save assessment scores: %w", err)
	}

	if err := e.evalRepo.UpdateResult(evalID, result); err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}

	log.Printf("✅ Evaluation %s completed: %s (%.2f)\n", evalID, result.Recommendation, result.FinalScore)
	return nil
}
