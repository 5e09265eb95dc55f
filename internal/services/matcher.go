package services

import (
	"math"
	"strings"

	"alfredoptarigan/talent-screen/internal/models"
)

// Weights and thresholds below are product policy shared with the recruiter
// dashboard. Do not tune without a coordinated release.
const (
	requiredSkillsWeight  = 0.50
	preferredSkillsWeight = 0.15
	experienceWeight      = 0.20
	educationWeight       = 0.15

	highMatchThreshold = 70.0
	potentialThreshold = 40.0
)

type MatcherService interface {
	Match(parsed *models.ParsedResume, job *models.Job) *models.MatchResult
}

type matcherService struct{}

func NewMatcherService() MatcherService {
	return &matcherService{}
}

// Match scores a parsed resume against a job's requirements. It is a pure
// function of its inputs: recomputed on demand, never stored as truth.
func (m *matcherService) Match(parsed *models.ParsedResume, job *models.Job) *models.MatchResult {
	resumeSkills := lowerSet(parsed.Skills)

	var matchedRequired, matchedPreferred, missing []string
	for _, s := range job.RequiredSkills {
		if resumeSkills[strings.ToLower(s)] {
			matchedRequired = append(matchedRequired, strings.ToLower(s))
		} else {
			missing = append(missing, strings.ToLower(s))
		}
	}
	for _, s := range job.PreferredSkills {
		if resumeSkills[strings.ToLower(s)] {
			matchedPreferred = append(matchedPreferred, strings.ToLower(s))
		}
	}

	requiredScore := 1.0
	if len(job.RequiredSkills) > 0 {
		requiredScore = float64(len(matchedRequired)) / float64(len(job.RequiredSkills))
	}
	preferredScore := 0.5
	if len(job.PreferredSkills) > 0 {
		preferredScore = float64(len(matchedPreferred)) / float64(len(job.PreferredSkills))
	}

	experienceMatch := parsed.ExperienceYears >= float64(job.MinExperienceYears)
	minYears := job.MinExperienceYears
	if minYears < 1 {
		minYears = 1
	}
	experienceScore := math.Min(1.0, parsed.ExperienceYears/float64(minYears))

	educationMatch := matchEducation(parsed.Education, job.EducationRequirements)
	educationScore := 0.5
	if educationMatch {
		educationScore = 1.0
	}

	matchScore := (requiredScore*requiredSkillsWeight +
		preferredScore*preferredSkillsWeight +
		experienceScore*experienceWeight +
		educationScore*educationWeight) * 100

	ranking := models.RankingReject
	switch {
	case matchScore >= highMatchThreshold:
		ranking = models.RankingHighMatch
	case matchScore >= potentialThreshold:
		ranking = models.RankingPotential
	}

	return &models.MatchResult{
		MatchScore:      round2(matchScore),
		MatchedSkills:   append(matchedRequired, matchedPreferred...),
		MissingSkills:   missing,
		ExperienceMatch: experienceMatch,
		EducationMatch:  educationMatch,
		Ranking:         ranking,
		Breakdown: models.MatchBreakdown{
			RequiredSkillsScore:  round2(requiredScore * 100),
			PreferredSkillsScore: round2(preferredScore * 100),
			ExperienceScore:      round2(experienceScore * 100),
			EducationScore:       round2(educationScore * 100),
		},
	}
}

// matchEducation is satisfied when the job declares no requirement, or any
// requirement string appears in the concatenated lower-cased degree labels.
func matchEducation(education []models.EducationEntry, requirements []string) bool {
	if len(requirements) == 0 {
		return true
	}

	var degrees []string
	for _, e := range education {
		degrees = append(degrees, strings.ToLower(e.Degree))
	}
	joined := strings.Join(degrees, " ")

	for _, req := range requirements {
		if strings.Contains(joined, strings.ToLower(req)) {
			return true
		}
	}
	return false
}

func lowerSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[strings.ToLower(v)] = true
	}
	return set
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
