package services

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profileTestYear = 2026

func TestExtractSkills(t *testing.T) {
	svc := NewProfileService(profileTestYear)

	text := "Experienced in Python, Docker and PostgreSQL. Led teams using agile and Jira."
	skills := svc.ExtractSkills(text)

	assert.Contains(t, skills, "Python")
	assert.Contains(t, skills, "Docker")
	assert.Contains(t, skills, "Postgresql")
	assert.Contains(t, skills, "Agile")
	assert.Contains(t, skills, "Jira")
}

func TestExtractSkillsDeduplicates(t *testing.T) {
	svc := NewProfileService(profileTestYear)

	skills := svc.ExtractSkills("python PYTHON Python python")
	count := 0
	for _, s := range skills {
		if s == "Python" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestExtractSkillsWordBoundary(t *testing.T) {
	svc := NewProfileService(profileTestYear)

	// "r" and "go" must not fire inside ordinary words.
	skills := svc.ExtractSkills("organized the regular governance meeting")
	assert.NotContains(t, skills, "R")
	assert.NotContains(t, skills, "Go")
}

func TestExtractSkillsIdempotent(t *testing.T) {
	svc := NewProfileService(profileTestYear)

	text := "Python, Kubernetes, leadership and communication."
	first := svc.ExtractSkills(text)
	second := svc.ExtractSkills(text)
	assert.Equal(t, first, second)
}

func TestExtractExperienceYearsExplicit(t *testing.T) {
	svc := NewProfileService(profileTestYear)

	assert.Equal(t, 5.0, svc.ExtractExperienceYears("5 years of experience in backend development"))
	assert.Equal(t, 7.0, svc.ExtractExperienceYears("Experience: 7 years"))
}

func TestExtractExperienceYearsExplicitTakesMax(t *testing.T) {
	svc := NewProfileService(profileTestYear)

	text := "3 years of experience with Go and 8 years of experience with Java"
	assert.Equal(t, 8.0, svc.ExtractExperienceYears(text))
}

func TestExtractExperienceYearsFromRanges(t *testing.T) {
	svc := NewProfileService(profileTestYear)

	text := "Software Engineer at Acme 2015-2018\nSenior Engineer at Globex 2019-present"
	// 3 + (2026-2019) = 10
	assert.Equal(t, 10.0, svc.ExtractExperienceYears(text))
}

func TestExtractExperienceYearsIgnoresLongRanges(t *testing.T) {
	svc := NewProfileService(profileTestYear)

	// A 1990-2026 span reads like a birth year, not employment.
	text := "Born 1990-2026\nDeveloper 2020-2023"
	assert.Equal(t, 3.0, svc.ExtractExperienceYears(text))
}

func TestExtractExperienceYearsFresher(t *testing.T) {
	svc := NewProfileService(profileTestYear)

	assert.Equal(t, 0.5, svc.ExtractExperienceYears("Recent graduate seeking an entry level role"))
	assert.Equal(t, 0.5, svc.ExtractExperienceYears("Summer intern at a fintech startup"))
}

func TestExtractExperienceYearsNone(t *testing.T) {
	svc := NewProfileService(profileTestYear)

	assert.Equal(t, 0.0, svc.ExtractExperienceYears("Skills: Python, SQL"))
}

func TestExtractEducationDetectsDegrees(t *testing.T) {
	svc := NewProfileService(profileTestYear)

	text := "Education\nB.S. in Computer Science, State University\nMBA, Business School"
	entries := svc.ExtractEducation(text)
	require.Len(t, entries, 2)

	assert.Equal(t, "B.S.", entries[0].Degree)
	assert.Equal(t, "Computer Science", entries[0].Field)
	assert.Equal(t, "MBA", entries[1].Degree)
}

func TestExtractEducationLongestTokenWins(t *testing.T) {
	svc := NewProfileService(profileTestYear)

	entries := svc.ExtractEducation("B.S.B.A. in Management Information Systems")
	require.Len(t, entries, 1)
	assert.Equal(t, "B.S.B.A.", entries[0].Degree)
	assert.Equal(t, "Management Information Systems", entries[0].Field)
}

func TestExtractEducationDefaultField(t *testing.T) {
	svc := NewProfileService(profileTestYear)

	entries := svc.ExtractEducation("MCA from Delhi University, 2019")
	require.Len(t, entries, 1)
	assert.Equal(t, "MCA", entries[0].Degree)
	assert.Equal(t, "Computer Applications", entries[0].Field)
}

func TestExtractEducationFallback(t *testing.T) {
	svc := NewProfileService(profileTestYear)

	entries := svc.ExtractEducation("no education section here")
	require.Len(t, entries, 1)
	assert.Equal(t, "Degree", entries[0].Degree)
}

func TestBuildProfileContactAndName(t *testing.T) {
	svc := NewProfileService(profileTestYear)

	text := strings.Join([]string{
		"John Smith",
		"john.smith@example.com",
		"+1 555 123 4567",
		"",
		"Senior Developer with 6 years of experience",
		"Skills: Python, Docker",
	}, "\n")

	parsed := svc.BuildProfile(text)
	require.NotNil(t, parsed)

	assert.Equal(t, "John Smith", parsed.Name)
	assert.Equal(t, "john.smith@example.com", parsed.ContactInfo.Email)
	assert.NotEmpty(t, parsed.ContactInfo.Phone)
	assert.Equal(t, 6.0, parsed.ExperienceYears)
	assert.Contains(t, parsed.Skills, "Python")
}

func TestBuildProfileRawTextTruncated(t *testing.T) {
	svc := NewProfileService(profileTestYear)

	parsed := svc.BuildProfile(strings.Repeat("a", rawTextLimit+500))
	assert.Len(t, parsed.RawText, rawTextLimit)
}

func TestBuildProfileRawTextTruncatesOnRuneBoundary(t *testing.T) {
	svc := NewProfileService(profileTestYear)

	// Three-byte runes guarantee the byte limit lands mid-rune.
	parsed := svc.BuildProfile(strings.Repeat("€", rawTextLimit))
	assert.True(t, utf8.ValidString(parsed.RawText))
	assert.LessOrEqual(t, len(parsed.RawText), rawTextLimit)
	assert.NotEmpty(t, parsed.RawText)
}

func TestExtractWorkExperienceCapped(t *testing.T) {
	var lines []string
	for i := 0; i < 8; i++ {
		lines = append(lines, "Senior Engineer at Company")
	}

	experiences := extractWorkExperience(strings.Join(lines, "\n"))
	assert.Len(t, experiences, maxWorkExperienceEntries)
}
