package models

type Ranking string

const (
	RankingHighMatch Ranking = "high_match"
	RankingPotential Ranking = "potential"
	RankingReject    Ranking = "reject"
)

// MatchResult is a pure function of (ParsedResume, Job). It is recomputed on
// demand and never stored as authoritative state.
type MatchResult struct {
	MatchScore      float64        `json:"match_score"`
	MatchedSkills   []string       `json:"matched_skills"`
	MissingSkills   []string       `json:"missing_skills"`
	ExperienceMatch bool           `json:"experience_match"`
	EducationMatch  bool           `json:"education_match"`
	Ranking         Ranking        `json:"ranking"`
	Breakdown       MatchBreakdown `json:"breakdown"`
}

type MatchBreakdown struct {
	RequiredSkillsScore  float64 `json:"required_skills_score"`
	PreferredSkillsScore float64 `json:"preferred_skills_score"`
	ExperienceScore      float64 `json:"experience_score"`
	EducationScore       float64 `json:"education_score"`
}
