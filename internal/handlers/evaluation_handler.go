package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/talent-screen/internal/repositories"
)

type EvaluationHandler struct {
	evalRepo repositories.EvaluationRepository
}

func NewEvaluationHandler(evalRepo repositories.EvaluationRepository) *EvaluationHandler {
	return &EvaluationHandler{evalRepo: evalRepo}
}

// HandleGetByCandidate handles GET /candidates/:id/evaluation. An optional
// job_id query narrows to one posting; otherwise the most recent evaluation
// is returned. Queued and processing evaluations are returned as-is so
// clients can poll the status field.
func (h *EvaluationHandler) HandleGetByCandidate(c *fiber.Ctx) error {
	candidateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid candidate ID format",
		})
	}

	if jobParam := c.Query("job_id"); jobParam != "" {
		jobID, err := uuid.Parse(jobParam)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid job ID format",
			})
		}
		eval, err := h.evalRepo.FindByCandidateAndJob(candidateID, jobID)
		if err != nil || eval == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Evaluation not found",
			})
		}
		return c.JSON(eval)
	}

	eval, err := h.evalRepo.FindByCandidate(candidateID)
	if err != nil || eval == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Evaluation not found",
		})
	}
	return c.JSON(eval)
}

// HandleGetByID handles GET /evaluations/:id
func (h *EvaluationHandler) HandleGetByID(c *fiber.Ctx) error {
	evalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid evaluation ID format",
		})
	}

	eval, err := h.evalRepo.FindByID(evalID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Evaluation not found",
		})
	}
	return c.JSON(eval)
}
