package services

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"alfredoptarigan/talent-screen/internal/models"
)

const rawTextLimit = 5000
const maxWorkExperienceEntries = 5
const maxRangeYears = 15
const totalYearsCap = 30

type ProfileService interface {
	BuildProfile(text string) *models.ParsedResume
	ExtractSkills(text string) []string
	ExtractExperienceYears(text string) float64
	ExtractEducation(text string) []models.EducationEntry
}

type profileService struct {
	currentYear int
}

// NewProfileService builds the resume profile extractor. currentYear closes
// open-ended date ranges ("2019-present").
func NewProfileService(currentYear int) ProfileService {
	return &profileService{currentYear: currentYear}
}

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`[+]?[(]?[0-9]{1,3}[)]?[-\s.]?[(]?[0-9]{1,4}[)]?[-\s.]?[0-9]{1,4}[-\s.]?[0-9]{1,9}`)
	nonDigit     = regexp.MustCompile(`\D`)

	experiencePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\+?\s*years?\s*(?:of\s*)?experience`),
		regexp.MustCompile(`experience[:\s]+(\d+)\+?\s*years?`),
		regexp.MustCompile(`(\d+)\+?\s*years?\s*(?:in|of|working)`),
	}
	yearRangePattern = regexp.MustCompile(`(\d{4})\s*[-–—]\s*(\d{4}|present|current|ongoing|now)`)

	skillPatterns    = compileSkillPatterns()
	detectorPatterns = compileDetectorPatterns()
)

func compileDetectorPatterns() map[string]*regexp.Regexp {
	m := make(map[string]*regexp.Regexp)
	for _, d := range degreeDetectors {
		if d.pattern != "" {
			m[d.degree] = regexp.MustCompile(d.pattern)
		}
	}
	return m
}

type skillPattern struct {
	skill   string
	pattern *regexp.Regexp
}

func compileSkillPatterns() []skillPattern {
	vocab := append(append([]string{}, techSkills...), softSkills...)
	patterns := make([]skillPattern, 0, len(vocab))
	for _, skill := range vocab {
		patterns = append(patterns, skillPattern{
			skill:   skill,
			pattern: regexp.MustCompile(`\b` + regexp.QuoteMeta(skill) + `\b`),
		})
	}
	return patterns
}

func (p *profileService) BuildProfile(text string) *models.ParsedResume {
	raw := text
	if len(raw) > rawTextLimit {
		// Back up to a rune boundary so the cut never leaves invalid UTF-8.
		cut := rawTextLimit
		for cut > 0 && !utf8.RuneStart(raw[cut]) {
			cut--
		}
		raw = raw[:cut]
	}

	return &models.ParsedResume{
		Name:            extractName(text),
		Skills:          p.ExtractSkills(text),
		ExperienceYears: p.ExtractExperienceYears(text),
		Education:       p.ExtractEducation(text),
		WorkExperience:  extractWorkExperience(text),
		ContactInfo: models.ContactInfo{
			Email: extractEmail(text),
			Phone: extractPhone(text),
		},
		RawText: raw,
	}
}

// ExtractSkills matches both vocabularies case-insensitively on word
// boundaries, de-duplicates preserving first-seen order, and title-cases for
// display.
func (p *profileService) ExtractSkills(text string) []string {
	textLower := strings.ToLower(text)
	seen := make(map[string]bool)
	var found []string

	for _, sp := range skillPatterns {
		if !sp.pattern.MatchString(textLower) {
			continue
		}
		display := titleCase(sp.skill)
		if skillStoplist[strings.ToLower(display)] || len(display) <= 1 {
			continue
		}
		key := strings.ToLower(display)
		if !seen[key] {
			seen[key] = true
			found = append(found, display)
		}
	}

	return found
}

// titleCase uppercases the first letter of every space-separated word, the
// way skills are shown on dashboards.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// ExtractExperienceYears estimates experience in priority order: explicit
// phrases, then summed work-history date ranges, then fresher/intern
// language, else zero.
func (p *profileService) ExtractExperienceYears(text string) float64 {
	textLower := strings.ToLower(text)

	var best float64
	var explicit bool
	for _, pattern := range experiencePatterns {
		for _, m := range pattern.FindAllStringSubmatch(textLower, -1) {
			if n, err := strconv.Atoi(m[1]); err == nil {
				explicit = true
				if float64(n) > best {
					best = float64(n)
				}
			}
		}
	}
	if explicit {
		return best
	}

	var total float64
	for _, m := range yearRangePattern.FindAllStringSubmatch(textLower, -1) {
		start, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		end := p.currentYear
		if y, err := strconv.Atoi(m[2]); err == nil {
			end = y
		}
		years := end - start
		// Ranges longer than 15 years are almost always education or noise.
		if years > 0 && years <= maxRangeYears {
			total += float64(years)
		}
	}
	if total > 0 {
		if total > totalYearsCap {
			return totalYearsCap
		}
		return total
	}

	for _, ind := range fresherIndicators {
		if strings.Contains(textLower, ind) {
			return 0.5
		}
	}
	if strings.Contains(textLower, "intern") {
		return 0.5
	}

	return 0
}

// ExtractEducation scans each line against the ordered degree detectors. The
// first detector that fires consumes the line; duplicates by degree label are
// dropped, first occurrence wins.
func (p *profileService) ExtractEducation(text string) []models.EducationEntry {
	var entries []models.EducationEntry
	seen := make(map[string]bool)

	for _, line := range strings.Split(text, "\n") {
		lineLower := strings.ToLower(strings.TrimSpace(line))
		if lineLower == "" {
			continue
		}

		for _, det := range degreeDetectors {
			if !det.matches(lineLower) {
				continue
			}
			if !seen[det.degree] {
				seen[det.degree] = true
				entries = append(entries, models.EducationEntry{
					Degree: det.degree,
					Field:  det.inferField(lineLower),
					Raw:    strings.TrimSpace(line),
				})
			}
			break
		}
	}

	if len(entries) == 0 {
		return []models.EducationEntry{{Degree: "Degree"}}
	}
	return entries
}

func (d degreeDetector) matches(lineLower string) bool {
	for _, excl := range d.excludes {
		if strings.Contains(lineLower, excl) {
			return false
		}
	}
	for _, tok := range d.tokens {
		if strings.Contains(lineLower, tok) {
			return true
		}
	}
	if re := detectorPatterns[d.degree]; re != nil && re.MatchString(lineLower) {
		return true
	}
	return false
}

func (d degreeDetector) inferField(lineLower string) string {
	for _, rule := range d.fieldRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lineLower, kw) {
				return rule.field
			}
		}
	}
	return d.defaultField
}

// extractName scans the first 5 non-empty lines for a 1–4 word line whose
// every word starts with an uppercase letter, skipping lines with '@' or a
// digit near the start.
func extractName(text string) string {
	var checked int
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		checked++
		if checked > 5 {
			break
		}
		if strings.Contains(line, "@") || startsWithDigit(line) {
			continue
		}
		words := strings.Fields(line)
		if len(words) < 1 || len(words) > 4 {
			continue
		}
		allUpper := true
		for _, w := range words {
			r := []rune(w)[0]
			if !unicode.IsUpper(r) {
				allUpper = false
				break
			}
		}
		if allUpper {
			return line
		}
	}
	return ""
}

func startsWithDigit(line string) bool {
	limit := 5
	if len(line) < limit {
		limit = len(line)
	}
	for _, r := range line[:limit] {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func extractEmail(text string) string {
	return emailPattern.FindString(text)
}

func extractPhone(text string) string {
	for _, m := range phonePattern.FindAllString(text, -1) {
		if len(nonDigit.ReplaceAllString(m, "")) >= 10 {
			return m
		}
	}
	return ""
}

// extractWorkExperience groups lines into title/description entries using the
// job-title indicator list. Intentionally shallow; the dashboard only shows
// snippets.
func extractWorkExperience(text string) []models.WorkExperience {
	var experiences []models.WorkExperience
	var current *models.WorkExperience

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		lineLower := strings.ToLower(line)

		isTitle := false
		for _, ind := range jobTitleIndicators {
			if strings.Contains(lineLower, ind) {
				isTitle = true
				break
			}
		}

		if isTitle {
			if current != nil {
				experiences = append(experiences, *current)
			}
			current = &models.WorkExperience{Title: line}
		} else if current != nil && line != "" {
			current.Description += line + " "
		}
	}
	if current != nil {
		experiences = append(experiences, *current)
	}

	if len(experiences) > maxWorkExperienceEntries {
		experiences = experiences[:maxWorkExperienceEntries]
	}
	return experiences
}
