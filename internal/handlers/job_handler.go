package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/talent-screen/internal/models"
	"alfredoptarigan/talent-screen/internal/repositories"
	"alfredoptarigan/talent-screen/internal/services"
)

type JobHandler struct {
	jobRepo       repositories.JobRepository
	candidateRepo repositories.CandidateRepository
	evalRepo      repositories.EvaluationRepository
	matcher       services.MatcherService
	validate      *validator.Validate
}

func NewJobHandler(
	jobRepo repositories.JobRepository,
	candidateRepo repositories.CandidateRepository,
	evalRepo repositories.EvaluationRepository,
	matcher services.MatcherService,
	validate *validator.Validate,
) *JobHandler {
	return &JobHandler{
		jobRepo:       jobRepo,
		candidateRepo: candidateRepo,
		evalRepo:      evalRepo,
		matcher:       matcher,
		validate:      validate,
	}
}

// HandleCreate handles POST /jobs
func (h *JobHandler) HandleCreate(c *fiber.Ctx) error {
	var req models.JobRequest
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

	recruiterID, _ := uuid.Parse(req.RecruiterID)
	job := &models.Job{
		ID:                    uuid.New(),
		RecruiterID:           recruiterID,
		Title:                 req.Title,
		Description:           req.Description,
		RequiredSkills:        req.RequiredSkills,
		PreferredSkills:       req.PreferredSkills,
		MinExperienceYears:    req.MinExperienceYears,
		EducationRequirements: req.EducationRequirements,
		IsActive:              true,
	}

	if err := h.jobRepo.Create(job); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create job",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(job)
}

// HandleList handles GET /jobs. By default only active jobs are returned;
// ?recruiter_id= scopes the list to one recruiter's postings instead,
// inactive ones included.
func (h *JobHandler) HandleList(c *fiber.Ctx) error {
	if recruiter := c.Query("recruiter_id"); recruiter != "" {
		recruiterID, err := uuid.Parse(recruiter)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid recruiter ID format",
			})
		}
		jobs, err := h.jobRepo.FindByRecruiter(recruiterID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to list jobs",
			})
		}
		return c.JSON(jobs)
	}

	jobs, err := h.jobRepo.FindActive()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list jobs",
		})
	}
	return c.JSON(jobs)
}

// HandleGet handles GET /jobs/:id
func (h *JobHandler) HandleGet(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job ID format",
		})
	}

	job, err := h.jobRepo.FindByID(jobID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Job not found",
		})
	}
	return c.JSON(job)
}

// HandleUpdate handles PUT /jobs/:id
func (h *JobHandler) HandleUpdate(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job ID format",
		})
	}

	job, err := h.jobRepo.FindByID(jobID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Job not found",
		})
	}

	var req models.JobRequest
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

	job.Title = req.Title
	job.Description = req.Description
	job.RequiredSkills = req.RequiredSkills
	job.PreferredSkills = req.PreferredSkills
	job.MinExperienceYears = req.MinExperienceYears
	job.EducationRequirements = req.EducationRequirements

	if err := h.jobRepo.Update(job); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update job",
		})
	}
	return c.JSON(job)
}

// HandleDelete handles DELETE /jobs/:id (soft delete)
func (h *JobHandler) HandleDelete(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job ID format",
		})
	}

	if err := h.jobRepo.Deactivate(jobID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Job not found",
		})
	}
	return c.JSON(fiber.Map{"message": "Job deactivated"})
}

// HandleMatch handles POST /jobs/:id/match/:candidateID. The result is
// recomputed from the stored profile and job on every call, never read back
// from earlier runs.
func (h *JobHandler) HandleMatch(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job ID format",
		})
	}
	candidateID, err := uuid.Parse(c.Params("candidateID"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid candidate ID format",
		})
	}

	job, err := h.jobRepo.FindByID(jobID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Job not found",
		})
	}

	candidate, err := h.candidateRepo.FindByID(candidateID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Candidate not found",
		})
	}
	if candidate.ParsedResume == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Candidate has no parsed resume yet",
		})
	}

	result := h.matcher.Match(candidate.ParsedResume, job)

	// The stored ranking is display state; the match result stays derived.
	if err := h.candidateRepo.UpdateRanking(candidateID, string(result.Ranking)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to store ranking",
		})
	}

	return c.JSON(result)
}

// HandleShortlist handles GET /jobs/:id/shortlist
func (h *JobHandler) HandleShortlist(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job ID format",
		})
	}

	evals, err := h.evalRepo.FindCompletedByJob(jobID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list evaluations",
		})
	}

	entries := make([]models.ShortlistEntry, 0, len(evals))
	for _, eval := range evals {
		entry := models.ShortlistEntry{
			CandidateID:    eval.CandidateID.String(),
			FinalScore:     eval.FinalScore,
			Recommendation: string(eval.Recommendation),
		}
		if candidate, err := h.candidateRepo.FindByID(eval.CandidateID); err == nil {
			entry.Ranking = candidate.Ranking
		}
		entries = append(entries, entry)
	}

	return c.JSON(entries)
}
