package handlers

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/talent-screen/internal/models"
	"alfredoptarigan/talent-screen/internal/repositories"
	"alfredoptarigan/talent-screen/internal/services"
)

type ProctoringHandler struct {
	proctoringRepo repositories.ProctoringRepository
	assessmentRepo repositories.AssessmentRepository
	scoring        services.ScoringService
	validate       *validator.Validate
}

func NewProctoringHandler(
	proctoringRepo repositories.ProctoringRepository,
	assessmentRepo repositories.AssessmentRepository,
	scoring services.ScoringService,
	validate *validator.Validate,
) *ProctoringHandler {
	return &ProctoringHandler{
		proctoringRepo: proctoringRepo,
		assessmentRepo: assessmentRepo,
		scoring:        scoring,
		validate:       validate,
	}
}

// HandleCreateEvent handles POST /proctoring/events. Events are append-only;
// there is no update or delete surface.
func (h *ProctoringHandler) HandleCreateEvent(c *fiber.Ctx) error {
	var req models.ProctoringEventRequest
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
	assessmentID, _ := uuid.Parse(req.AssessmentID)

	if _, err := h.assessmentRepo.FindByID(assessmentID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Assessment not found",
		})
	}

	event := &models.ProctoringEvent{
		ID:           uuid.New(),
		CandidateID:  candidateID,
		AssessmentID: assessmentID,
		EventType:    req.EventType,
		Severity:     models.EventSeverity(req.Severity),
		Description:  req.Description,
		Timestamp:    time.Now(),
	}

	if err := h.proctoringRepo.Create(event); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to record event",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(event)
}

// HandleListEvents handles GET /assessments/:id/proctoring/events
func (h *ProctoringHandler) HandleListEvents(c *fiber.Ctx) error {
	assessmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid assessment ID format",
		})
	}

	events, err := h.proctoringRepo.FindByAssessment(assessmentID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list events",
		})
	}
	return c.JSON(events)
}

// HandleGetSummary handles GET /assessments/:id/proctoring/summary. The
// integrity score here is a live recomputation over the stored events.
func (h *ProctoringHandler) HandleGetSummary(c *fiber.Ctx) error {
	assessmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid assessment ID format",
		})
	}

	if _, err := h.assessmentRepo.FindByID(assessmentID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Assessment not found",
		})
	}

	events, err := h.proctoringRepo.FindByAssessment(assessmentID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list events",
		})
	}

	counts := make(map[string]int)
	for _, event := range events {
		counts[event.EventType]++
	}

	return c.JSON(models.ProctoringSummary{
		AssessmentID:   assessmentID.String(),
		TotalEvents:    len(events),
		EventCounts:    counts,
		IntegrityScore: h.scoring.ComputeIntegrityScore(events),
	})
}
