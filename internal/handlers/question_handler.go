package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/talent-screen/internal/models"
	"alfredoptarigan/talent-screen/internal/repositories"
)

type QuestionHandler struct {
	questionRepo repositories.QuestionRepository
	jobRepo      repositories.JobRepository
	validate     *validator.Validate
}

func NewQuestionHandler(
	questionRepo repositories.QuestionRepository,
	jobRepo repositories.JobRepository,
	validate *validator.Validate,
) *QuestionHandler {
	return &QuestionHandler{
		questionRepo: questionRepo,
		jobRepo:      jobRepo,
		validate:     validate,
	}
}

func questionFromRequest(req *models.QuestionRequest) (*models.Question, error) {
	question := &models.Question{
		ID:               uuid.New(),
		QuestionType:     models.QuestionType(req.QuestionType),
		Category:         models.QuestionCategory(req.Category),
		Difficulty:       req.Difficulty,
		QuestionText:     req.QuestionText,
		Options:          req.Options,
		CorrectAnswer:    req.CorrectAnswer,
		TestCases:        req.TestCases,
		MaxScore:         req.MaxScore,
		TimeLimitSeconds: req.TimeLimitSeconds,
		SkillTags:        req.SkillTags,
	}
	if req.JobID != "" {
		jobID, err := uuid.Parse(req.JobID)
		if err != nil {
			return nil, err
		}
		question.JobID = &jobID
	}
	if question.MaxScore <= 0 {
		question.MaxScore = 10
	}
	if question.TimeLimitSeconds <= 0 {
		question.TimeLimitSeconds = 300
	}
	return question, nil
}

// HandleCreate handles POST /questions
func (h *QuestionHandler) HandleCreate(c *fiber.Ctx) error {
	var req models.QuestionRequest
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

	question, err := questionFromRequest(&req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job ID format",
		})
	}

	if err := h.questionRepo.Create(question); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create question",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(question)
}

// HandleCreateBulk handles POST /questions/bulk
func (h *QuestionHandler) HandleCreateBulk(c *fiber.Ctx) error {
	var req models.BulkQuestionsRequest
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

	questions := make([]models.Question, 0, len(req.Questions))
	for i := range req.Questions {
		question, err := questionFromRequest(&req.Questions[i])
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid job ID format",
			})
		}
		questions = append(questions, *question)
	}

	if err := h.questionRepo.CreateBatch(questions); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create questions",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"created": len(questions),
	})
}

// HandleList handles GET /questions?job_id=... Answers and test case
// expectations stay recruiter-side; candidates fetch questions through the
// assessment endpoints.
func (h *QuestionHandler) HandleList(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Query("job_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job ID format",
		})
	}

	if _, err := h.jobRepo.FindByID(jobID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Job not found",
		})
	}

	questions, err := h.questionRepo.FindByJob(jobID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list questions",
		})
	}
	return c.JSON(questions)
}
