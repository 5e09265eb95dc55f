package handlers

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/talent-screen/internal/models"
	"alfredoptarigan/talent-screen/internal/repositories"
	"alfredoptarigan/talent-screen/internal/services"
)

type AssessmentHandler struct {
	assessmentRepo repositories.AssessmentRepository
	responseRepo   repositories.ResponseRepository
	questionRepo   repositories.QuestionRepository
	candidateRepo  repositories.CandidateRepository
	jobRepo        repositories.JobRepository
	evalRepo       repositories.EvaluationRepository
	grader         services.GraderService
	sandbox        services.SandboxService
	scoring        services.ScoringService
	worker         services.Worker
	validate       *validator.Validate
}

func NewAssessmentHandler(
	assessmentRepo repositories.AssessmentRepository,
	responseRepo repositories.ResponseRepository,
	questionRepo repositories.QuestionRepository,
	candidateRepo repositories.CandidateRepository,
	jobRepo repositories.JobRepository,
	evalRepo repositories.EvaluationRepository,
	grader services.GraderService,
	sandbox services.SandboxService,
	scoring services.ScoringService,
	worker services.Worker,
	validate *validator.Validate,
) *AssessmentHandler {
	return &AssessmentHandler{
		assessmentRepo: assessmentRepo,
		responseRepo:   responseRepo,
		questionRepo:   questionRepo,
		candidateRepo:  candidateRepo,
		jobRepo:        jobRepo,
		evalRepo:       evalRepo,
		grader:         grader,
		sandbox:        sandbox,
		scoring:        scoring,
		worker:         worker,
		validate:       validate,
	}
}

// HandleStart handles POST /assessments. One assessment per (candidate, job);
// starting again returns the existing one.
func (h *AssessmentHandler) HandleStart(c *fiber.Ctx) error {
	var req models.StartAssessmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	candidateID, _ := uuid.Parse(req.CandidateID)
	jobID, _ := uuid.Parse(req.JobID)

	if _, err := h.candidateRepo.FindByID(candidateID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Candidate not found",
		})
	}
	job, err := h.jobRepo.FindByID(jobID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Job not found",
		})
	}
	if !job.IsActive {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Job is no longer active",
		})
	}

	existing, err := h.assessmentRepo.FindByCandidateAndJob(candidateID, jobID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to look up assessment",
		})
	}
	if existing != nil {
		if existing.Status == models.AssessmentNotStarted {
			if err := h.assessmentRepo.MarkStarted(existing.ID); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": "Failed to start assessment",
				})
			}
			existing, err = h.assessmentRepo.FindByID(existing.ID)
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": "Failed to look up assessment",
				})
			}
		}
		return c.JSON(existing)
	}

	assessment := &models.Assessment{
		ID:          uuid.New(),
		CandidateID: candidateID,
		JobID:       jobID,
		Status:      models.AssessmentNotStarted,
	}
	if err := h.assessmentRepo.Create(assessment); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create assessment",
		})
	}
	if err := h.assessmentRepo.MarkStarted(assessment.ID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to start assessment",
		})
	}
	now := time.Now()
	assessment.Status = models.AssessmentInProgress
	assessment.StartedAt = &now

	if err := h.candidateRepo.UpdateStatus(candidateID, models.CandidateInProgress); err != nil {
		log.Printf("⚠️ Failed to update candidate status: %v", err)
	}

	return c.Status(fiber.StatusCreated).JSON(assessment)
}

// HandleGetQuestions handles GET /assessments/:id/questions. Correct answers
// and expected outputs are stripped before the payload leaves the server.
func (h *AssessmentHandler) HandleGetQuestions(c *fiber.Ctx) error {
	assessmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid assessment ID format",
		})
	}

	assessment, err := h.assessmentRepo.FindByID(assessmentID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Assessment not found",
		})
	}

	questions, err := h.questionRepo.FindByJob(assessment.JobID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list questions",
		})
	}

	sanitized := make([]models.Question, 0, len(questions))
	for _, q := range questions {
		q.CorrectAnswer = ""
		if len(q.TestCases) > 0 {
			cases := make([]models.TestCase, len(q.TestCases))
			for i, tc := range q.TestCases {
				cases[i] = models.TestCase{Input: tc.Input}
			}
			q.TestCases = cases
		}
		sanitized = append(sanitized, q)
	}

	return c.JSON(sanitized)
}

// HandleGetStatus handles GET /assessments/:id/status
func (h *AssessmentHandler) HandleGetStatus(c *fiber.Ctx) error {
	assessmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid assessment ID format",
		})
	}

	assessment, err := h.assessmentRepo.FindByID(assessmentID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Assessment not found",
		})
	}

	questions, err := h.questionRepo.FindByJob(assessment.JobID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list questions",
		})
	}
	answered, err := h.responseRepo.CountByAssessment(assessmentID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to count responses",
		})
	}

	return c.JSON(models.AssessmentStatusResponse{
		ID:                assessment.ID.String(),
		Status:            string(assessment.Status),
		QuestionsTotal:    len(questions),
		QuestionsAnswered: int(answered),
		TechnicalScore:    assessment.TechnicalScore,
		PsychometricScore: assessment.PsychometricScore,
		TotalScore:        assessment.TotalScore,
	})
}

// HandleSubmitResponse handles POST /assessments/:id/responses. The response
// is graded synchronously; coding submissions run in the sandbox first.
func (h *AssessmentHandler) HandleSubmitResponse(c *fiber.Ctx) error {
	assessmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid assessment ID format",
		})
	}

	var req models.SubmitResponseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	assessment, err := h.assessmentRepo.FindByID(assessmentID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Assessment not found",
		})
	}
	if assessment.Status != models.AssessmentInProgress {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Assessment is not in progress",
		})
	}

	questionID, _ := uuid.Parse(req.QuestionID)
	question, err := h.questionRepo.FindByID(questionID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Question not found",
		})
	}

	var execResult *models.ExecutionResult
	codeOutput := ""
	if question.QuestionType == models.QuestionCoding {
		language := req.Language
		if language == "" {
			language = "python"
		}
		if err := h.sandbox.CheckLanguage(language); err != nil {
			if errors.Is(err, services.ErrUnsupportedLanguage) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "Language not supported. Supported: python, javascript",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to check language",
			})
		}
		execResult = h.sandbox.Execute(c.Context(), req.ResponseText, language, question.TestCases)
		codeOutput = execResult.Output
		if execResult.Error != nil {
			codeOutput = *execResult.Error
		}
	}

	grade := h.grader.Grade(question, &req, execResult)

	response := &models.QuestionResponse{
		ID:               uuid.New(),
		AssessmentID:     assessmentID,
		QuestionID:       questionID,
		ResponseText:     req.ResponseText,
		SelectedOption:   req.SelectedOption,
		SliderValue:      req.SliderValue,
		CodeOutput:       codeOutput,
		IsCorrect:        grade.IsCorrect,
		Score:            grade.Score,
		TimeTakenSeconds: req.TimeTakenSeconds,
		SubmittedAt:      time.Now(),
	}

	if err := h.responseRepo.Create(response); err != nil {
		if errors.Is(err, repositories.ErrDuplicateResponse) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Question already answered in this assessment",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to store response",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.SubmitResponseResult{
		ResponseID: response.ID.String(),
		Grade:      grade,
		CodeOutput: codeOutput,
	})
}

// HandleComplete handles POST /assessments/:id/complete. Scores are rolled up
// synchronously; the final evaluation is queued for the background worker.
func (h *AssessmentHandler) HandleComplete(c *fiber.Ctx) error {
	assessmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid assessment ID format",
		})
	}

	assessment, err := h.assessmentRepo.FindByID(assessmentID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Assessment not found",
		})
	}
	if assessment.Status == models.AssessmentCompleted {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Assessment already completed",
		})
	}

	responses, err := h.responseRepo.FindByAssessment(assessmentID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load responses",
		})
	}

	summary := h.scoring.SummarizeAssessment(responses)
	if err := h.assessmentRepo.UpdateScores(assessmentID, summary.TechnicalScore, summary.PsychometricScore, summary.TotalScore); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to store assessment scores",
		})
	}
	if err := h.assessmentRepo.MarkCompleted(assessmentID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to complete assessment",
		})
	}

	eval := &models.FinalEvaluation{
		ID:           uuid.New(),
		CandidateID:  assessment.CandidateID,
		JobID:        assessment.JobID,
		AssessmentID: assessmentID,
		Status:       models.StatusQueued,
	}
	if err := h.evalRepo.Enqueue(eval); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to queue evaluation",
		})
	}

	// Re-finalizations reuse the existing row, so look up the effective ID.
	queued, err := h.evalRepo.FindByCandidateAndJob(assessment.CandidateID, assessment.JobID)
	if err == nil && queued != nil {
		h.worker.EnqueueJob(queued.ID)
	} else {
		h.worker.EnqueueJob(eval.ID)
	}

	log.Printf("📋 Assessment %s completed, evaluation queued", assessmentID)

	return c.JSON(fiber.Map{
		"message":            "Assessment completed",
		"technical_score":    summary.TechnicalScore,
		"psychometric_score": summary.PsychometricScore,
		"total_score":        summary.TotalScore,
		"evaluation_status":  string(models.StatusQueued),
	})
}

// HandleExecute handles POST /execute for ad-hoc runs while a candidate is
// drafting a coding answer. Nothing is persisted.
func (h *AssessmentHandler) HandleExecute(c *fiber.Ctx) error {
	var req models.ExecuteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := h.sandbox.CheckLanguage(req.Language); err != nil {
		if errors.Is(err, services.ErrUnsupportedLanguage) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Language not supported. Supported: python, javascript",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to check language",
		})
	}

	if check := h.sandbox.ValidateSyntax(c.Context(), req.Code, req.Language); !check.Valid {
		return c.Status(fiber.StatusOK).JSON(models.ExecutionResult{
			Success:     false,
			Error:       check.Error,
			TestResults: []models.TestCaseResult{},
		})
	}

	result := h.sandbox.Execute(c.Context(), req.Code, req.Language, req.TestCases)
	return c.JSON(result)
}
