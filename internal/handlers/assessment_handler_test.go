package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/talent-screen/internal/config"
	"alfredoptarigan/talent-screen/internal/models"
	"alfredoptarigan/talent-screen/internal/repositories"
	"alfredoptarigan/talent-screen/internal/services"
)

// Stubs embed the repository interface so only the methods a route actually
// touches need an implementation.

type stubCandidateRepo struct {
	repositories.CandidateRepository
	candidates []models.CandidateProfile
}

func (s *stubCandidateRepo) FindByID(id uuid.UUID) (*models.CandidateProfile, error) {
	return &models.CandidateProfile{ID: id}, nil
}

func (s *stubCandidateRepo) FindAll() ([]models.CandidateProfile, error) {
	return s.candidates, nil
}

func (s *stubCandidateRepo) UpdateStatus(id uuid.UUID, status models.CandidateStatus) error {
	return nil
}

type stubJobRepo struct {
	repositories.JobRepository
	recruiterJobs []models.Job
	recruiterSeen uuid.UUID
}

func (s *stubJobRepo) FindByID(id uuid.UUID) (*models.Job, error) {
	return &models.Job{ID: id, IsActive: true}, nil
}

func (s *stubJobRepo) FindByRecruiter(recruiterID uuid.UUID) ([]models.Job, error) {
	s.recruiterSeen = recruiterID
	return s.recruiterJobs, nil
}

type stubAssessmentRepo struct {
	repositories.AssessmentRepository
	created       *models.Assessment
	startedID     uuid.UUID
	startedCalled bool
}

func (s *stubAssessmentRepo) FindByCandidateAndJob(candidateID, jobID uuid.UUID) (*models.Assessment, error) {
	return nil, nil
}

func (s *stubAssessmentRepo) Create(assessment *models.Assessment) error {
	s.created = assessment
	return nil
}

func (s *stubAssessmentRepo) MarkStarted(id uuid.UUID) error {
	s.startedCalled = true
	s.startedID = id
	return nil
}

func doJSONRequest(t *testing.T, app *fiber.App, method, target string, payload any) (*http.Response, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, raw
}

func TestHandleStartMarksAssessmentStarted(t *testing.T) {
	assessmentRepo := &stubAssessmentRepo{}
	h := NewAssessmentHandler(
		assessmentRepo, nil, nil,
		&stubCandidateRepo{}, &stubJobRepo{}, nil,
		nil, nil, nil, nil,
		validator.New(),
	)

	app := fiber.New()
	app.Post("/assessments", h.HandleStart)

	resp, raw := doJSONRequest(t, app, "POST", "/assessments", models.StartAssessmentRequest{
		CandidateID: uuid.New().String(),
		JobID:       uuid.New().String(),
	})

	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.NotNil(t, assessmentRepo.created)
	assert.True(t, assessmentRepo.startedCalled)
	assert.Equal(t, assessmentRepo.created.ID, assessmentRepo.startedID)

	var got models.Assessment
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, models.AssessmentInProgress, got.Status)
	assert.NotNil(t, got.StartedAt)
}

func TestHandleExecuteRejectsUnsupportedLanguage(t *testing.T) {
	sandbox := services.NewSandboxService(config.SandboxConfig{
		Timeout: time.Second,
		WorkDir: t.TempDir(),
	})
	h := NewAssessmentHandler(
		nil, nil, nil, nil, nil, nil,
		nil, sandbox, nil, nil,
		validator.New(),
	)

	app := fiber.New()
	app.Post("/execute", h.HandleExecute)

	resp, raw := doJSONRequest(t, app, "POST", "/execute", models.ExecuteRequest{
		Code:     "puts 'hi'",
		Language: "ruby",
	})

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Contains(t, body["error"], "not supported")
}
