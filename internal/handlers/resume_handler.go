package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/talent-screen/internal/models"
	"alfredoptarigan/talent-screen/internal/repositories"
	"alfredoptarigan/talent-screen/internal/services"
)

const extractionGuidance = "Could not extract text from the document. The file may be image-based. Please upload a DOCX file or a text-based PDF."

type ResumeHandler struct {
	candidateRepo repositories.CandidateRepository
	jobRepo       repositories.JobRepository
	storage       services.StorageService
	extractor     services.ExtractorService
	profiles      services.ProfileService
	matcher       services.MatcherService
	maxFileSize   int64
}

func NewResumeHandler(
	candidateRepo repositories.CandidateRepository,
	jobRepo repositories.JobRepository,
	storage services.StorageService,
	extractor services.ExtractorService,
	profiles services.ProfileService,
	matcher services.MatcherService,
	maxFileSize int64,
) *ResumeHandler {
	return &ResumeHandler{
		candidateRepo: candidateRepo,
		jobRepo:       jobRepo,
		storage:       storage,
		extractor:     extractor,
		profiles:      profiles,
		matcher:       matcher,
		maxFileSize:   maxFileSize,
	}
}

// HandleUpload handles POST /candidates/resume. The parsed profile replaces
// any previous one wholesale.
func (h *ResumeHandler) HandleUpload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume file is required",
		})
	}

	userIDParam := c.FormValue("user_id")
	userID, err := uuid.Parse(userIDParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "valid user_id is required",
		})
	}

	if fileHeader.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to open uploaded file",
		})
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to read uploaded file",
		})
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	text, err := h.extractor.ExtractText(data, ext)
	if errors.Is(err, services.ErrExtractorUnavailable) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "Document extraction is unavailable in this environment. Please upload a DOCX or plain-text resume.",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to extract text: %v", err),
		})
	}

	if len(strings.TrimSpace(text)) < services.MinExtractedLength {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": extractionGuidance,
		})
	}

	filename, filePath, err := h.storage.SaveResume(data, fileHeader.Filename)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save resume: %v", err),
		})
	}

	parsed := h.profiles.BuildProfile(services.CleanText(text))

	profile, err := h.candidateRepo.FindByUserID(userID)
	if err != nil {
		profile = &models.CandidateProfile{
			ID:     uuid.New(),
			UserID: userID,
			Status: models.CandidatePending,
		}
		if err := h.candidateRepo.Create(profile); err != nil {
			h.storage.DeleteFile(filename)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to create candidate profile",
			})
		}
		profile, err = h.candidateRepo.FindByUserID(userID)
		if err != nil {
			h.storage.DeleteFile(filename)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to load candidate profile",
			})
		}
	}

	if err := h.candidateRepo.ReplaceResume(profile.ID, filePath, parsed); err != nil {
		h.storage.DeleteFile(filename)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to store parsed resume",
		})
	}

	h.rematchActiveJobs(profile.ID, parsed)

	return c.Status(fiber.StatusCreated).JSON(models.UploadResumeResponse{
		CandidateID: profile.ID.String(),
		Filename:    filename,
		Parsed:      parsed,
	})
}

// rematchActiveJobs refreshes the display ranking against the best-scoring
// active job after a resume replacement. Failures are logged, not surfaced:
// the upload already succeeded.
func (h *ResumeHandler) rematchActiveJobs(candidateID uuid.UUID, parsed *models.ParsedResume) {
	jobs, err := h.jobRepo.FindActive()
	if err != nil {
		log.Printf("⚠️ Failed to load active jobs for re-match: %v", err)
		return
	}
	if len(jobs) == 0 {
		return
	}

	best := h.matcher.Match(parsed, &jobs[0])
	for i := 1; i < len(jobs); i++ {
		if result := h.matcher.Match(parsed, &jobs[i]); result.MatchScore > best.MatchScore {
			best = result
		}
	}

	if err := h.candidateRepo.UpdateRanking(candidateID, string(best.Ranking)); err != nil {
		log.Printf("⚠️ Failed to update ranking: %v", err)
	}
}

// HandleGetProfile handles GET /candidates/:id/profile
func (h *ResumeHandler) HandleGetProfile(c *fiber.Ctx) error {
	candidateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid candidate ID format",
		})
	}

	profile, err := h.candidateRepo.FindByID(candidateID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Candidate not found",
		})
	}

	return c.JSON(profile)
}

// HandleListCandidates handles GET /candidates
func (h *ResumeHandler) HandleListCandidates(c *fiber.Ctx) error {
	candidates, err := h.candidateRepo.FindAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list candidates",
		})
	}
	return c.JSON(candidates)
}
