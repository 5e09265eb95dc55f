package handlers

import (
	"encoding/json"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/talent-screen/internal/models"
)

func TestHandleListCandidates(t *testing.T) {
	candidateRepo := &stubCandidateRepo{
		candidates: []models.CandidateProfile{
			{ID: uuid.New(), Ranking: string(models.RankingHighMatch)},
			{ID: uuid.New()},
		},
	}
	h := NewResumeHandler(candidateRepo, nil, nil, nil, nil, nil, 1<<20)

	app := fiber.New()
	app.Get("/candidates", h.HandleListCandidates)

	resp, raw := doJSONRequest(t, app, "GET", "/candidates", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var candidates []models.CandidateProfile
	require.NoError(t, json.Unmarshal(raw, &candidates))
	require.Len(t, candidates, 2)
	assert.Equal(t, string(models.RankingHighMatch), candidates[0].Ranking)
}
