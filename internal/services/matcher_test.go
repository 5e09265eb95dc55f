package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/talent-screen/internal/models"
)

func TestMatchPerfectCandidate(t *testing.T) {
	svc := NewMatcherService()

	parsed := &models.ParsedResume{
		Skills:          []string{"Python", "Docker", "Kubernetes"},
		ExperienceYears: 5,
		Education:       []models.EducationEntry{{Degree: "B.S.", Field: "Computer Science"}},
	}
	job := &models.Job{
		RequiredSkills:        []string{"python", "docker"},
		PreferredSkills:       []string{"kubernetes"},
		MinExperienceYears:    3,
		EducationRequirements: []string{"b.s."},
	}

	result := svc.Match(parsed, job)
	require.NotNil(t, result)

	assert.Equal(t, 100.0, result.MatchScore)
	assert.Equal(t, models.RankingHighMatch, result.Ranking)
	assert.True(t, result.ExperienceMatch)
	assert.True(t, result.EducationMatch)
	assert.Empty(t, result.MissingSkills)
}

func TestMatchDefaults(t *testing.T) {
	svc := NewMatcherService()

	parsed := &models.ParsedResume{
		Skills:          []string{"Python"},
		ExperienceYears: 2,
	}
	// No requirements declared at all: required 1.0, preferred 0.5,
	// experience min(1, 2/1) = 1.0, education 1.0.
	job := &models.Job{}

	result := svc.Match(parsed, job)
	assert.Equal(t, 92.5, result.MatchScore)
	assert.Equal(t, models.RankingHighMatch, result.Ranking)
}

func TestMatchDeterministic(t *testing.T) {
	svc := NewMatcherService()

	parsed := &models.ParsedResume{
		Skills:          []string{"Go", "Sql"},
		ExperienceYears: 4,
		Education:       []models.EducationEntry{{Degree: "B.Tech"}},
	}
	job := &models.Job{
		RequiredSkills:     []string{"go", "kafka"},
		MinExperienceYears: 5,
	}

	first := svc.Match(parsed, job)
	second := svc.Match(parsed, job)
	assert.Equal(t, first, second)
}

func TestMatchScoreBounds(t *testing.T) {
	svc := NewMatcherService()

	empty := &models.ParsedResume{}
	demanding := &models.Job{
		RequiredSkills:        []string{"rust", "haskell"},
		PreferredSkills:       []string{"zig"},
		MinExperienceYears:    10,
		EducationRequirements: []string{"ph.d"},
	}

	result := svc.Match(empty, demanding)
	assert.GreaterOrEqual(t, result.MatchScore, 0.0)
	assert.LessOrEqual(t, result.MatchScore, 100.0)
	assert.Equal(t, models.RankingReject, result.Ranking)
	assert.Equal(t, []string{"rust", "haskell"}, result.MissingSkills)
}

func TestMatchExperienceScoreClamped(t *testing.T) {
	svc := NewMatcherService()

	parsed := &models.ParsedResume{ExperienceYears: 20}
	job := &models.Job{MinExperienceYears: 3}

	result := svc.Match(parsed, job)
	assert.Equal(t, 100.0, result.Breakdown.ExperienceScore)
}

func TestMatchPotentialRanking(t *testing.T) {
	svc := NewMatcherService()

	parsed := &models.ParsedResume{
		Skills:          []string{"Python"},
		ExperienceYears: 1,
		Education:       []models.EducationEntry{{Degree: "Degree"}},
	}
	job := &models.Job{
		RequiredSkills:        []string{"python", "docker"},
		MinExperienceYears:    4,
		EducationRequirements: []string{"b.s."},
	}

	// required 0.5*50 + preferred 0.5*15 + experience 0.25*20 + education 0.5*15
	result := svc.Match(parsed, job)
	assert.Equal(t, 45.0, result.MatchScore)
	assert.Equal(t, models.RankingPotential, result.Ranking)
}

func TestMatchEducationSubstring(t *testing.T) {
	assert.True(t, matchEducation([]models.EducationEntry{{Degree: "B.S.B.A."}}, []string{"b.s."}))
	assert.False(t, matchEducation([]models.EducationEntry{{Degree: "MBA"}}, []string{"b.tech"}))
	assert.True(t, matchEducation(nil, nil))
}
