package handlers

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/talent-screen/internal/models"
)

func TestHandleListFiltersByRecruiter(t *testing.T) {
	recruiterID := uuid.New()
	jobRepo := &stubJobRepo{
		recruiterJobs: []models.Job{
			{ID: uuid.New(), RecruiterID: recruiterID, Title: "Backend Engineer", IsActive: true},
			{ID: uuid.New(), RecruiterID: recruiterID, Title: "Data Engineer", IsActive: false},
		},
	}
	h := NewJobHandler(jobRepo, nil, nil, nil, validator.New())

	app := fiber.New()
	app.Get("/jobs", h.HandleList)

	resp, raw := doJSONRequest(t, app, "GET", "/jobs?recruiter_id="+recruiterID.String(), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, recruiterID, jobRepo.recruiterSeen)

	var jobs []models.Job
	require.NoError(t, json.Unmarshal(raw, &jobs))
	require.Len(t, jobs, 2)
	assert.Equal(t, "Backend Engineer", jobs[0].Title)
	assert.False(t, jobs[1].IsActive)
}

func TestHandleListRejectsBadRecruiterID(t *testing.T) {
	h := NewJobHandler(&stubJobRepo{}, nil, nil, nil, validator.New())

	app := fiber.New()
	app.Get("/jobs", h.HandleList)

	resp, _ := doJSONRequest(t, app, "GET", "/jobs?recruiter_id=not-a-uuid", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
