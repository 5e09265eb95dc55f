package services

import (
	"strconv"
	"strings"

	"alfredoptarigan/talent-screen/internal/models"
)

// Free-text grading weights: candidates get full length credit around 100
// words; keyword coverage dominates.
const (
	textLengthWeight    = 0.4
	textKeywordWeight   = 0.6
	textFullLengthWords = 100
)

// sliderScale is the declared input range of slider questions. Submitted
// values outside it are clamped rather than rejected.
const sliderScale = 5.0

type GraderService interface {
	// Grade dispatches on question type. Coding questions additionally need
	// the ExecutionResult produced by the sandbox.
	Grade(question *models.Question, req *models.SubmitResponseRequest, execResult *models.ExecutionResult) *models.GradeResult
}

type graderService struct{}

func NewGraderService() GraderService {
	return &graderService{}
}

func (g *graderService) Grade(question *models.Question, req *models.SubmitResponseRequest, execResult *models.ExecutionResult) *models.GradeResult {
	switch question.QuestionType {
	case models.QuestionMCQ:
		selected := 0
		if req.SelectedOption != nil {
			selected = *req.SelectedOption
		}
		return gradeMCQ(question, selected)
	case models.QuestionCoding:
		return gradeCoding(question, execResult)
	case models.QuestionSlider:
		value := 0.0
		if req.SliderValue != nil {
			value = *req.SliderValue
		}
		return gradeSlider(question, value)
	default:
		return gradeText(question, req.ResponseText)
	}
}

// gradeMCQ resolves the stored correct answer as a numeric index, else the
// index of that value in the options list, else 0. Scoring is binary.
func gradeMCQ(question *models.Question, selected int) *models.GradeResult {
	correctIndex := 0
	if idx, err := strconv.Atoi(strings.TrimSpace(question.CorrectAnswer)); err == nil {
		correctIndex = idx
	} else {
		for i, opt := range question.Options {
			if opt == question.CorrectAnswer {
				correctIndex = i
				break
			}
		}
	}

	isCorrect := selected == correctIndex
	score := 0.0
	if isCorrect {
		score = question.MaxScore
	}

	return &models.GradeResult{
		IsCorrect: &isCorrect,
		Score:     score,
		MaxScore:  question.MaxScore,
	}
}

// gradeCoding scores by the fraction of test cases passed; with no test
// cases defined, scoring is binary on execution success.
func gradeCoding(question *models.Question, execResult *models.ExecutionResult) *models.GradeResult {
	success := execResult != nil && execResult.Success

	if execResult == nil || len(execResult.TestResults) == 0 {
		score := 0.0
		if success {
			score = question.MaxScore
		}
		return &models.GradeResult{
			IsCorrect: &success,
			Score:     score,
			MaxScore:  question.MaxScore,
		}
	}

	passed := 0
	for _, t := range execResult.TestResults {
		if t.Passed {
			passed++
		}
	}
	total := len(execResult.TestResults)

	isCorrect := passed == total
	score := round2(question.MaxScore * float64(passed) / float64(total))

	return &models.GradeResult{
		IsCorrect:   &isCorrect,
		Score:       score,
		MaxScore:    question.MaxScore,
		TestsPassed: &passed,
		TestsTotal:  &total,
	}
}

// gradeText combines answer length against a ~100 word target with keyword
// coverage over the question's skill tags.
func gradeText(question *models.Question, responseText string) *models.GradeResult {
	if strings.TrimSpace(responseText) == "" {
		isCorrect := false
		return &models.GradeResult{
			IsCorrect: &isCorrect,
			Score:     0,
			MaxScore:  question.MaxScore,
		}
	}

	wordCount := len(strings.Fields(responseText))
	textLower := strings.ToLower(responseText)

	keywordsFound := 0
	for _, tag := range question.SkillTags {
		if strings.Contains(textLower, strings.ToLower(tag)) {
			keywordsFound++
		}
	}

	lengthScore := float64(wordCount) / textFullLengthWords
	if lengthScore > 1.0 {
		lengthScore = 1.0
	}
	keywordScore := 0.5
	if len(question.SkillTags) > 0 {
		keywordScore = float64(keywordsFound) / float64(len(question.SkillTags))
	}

	score := round2((lengthScore*textLengthWeight + keywordScore*textKeywordWeight) * question.MaxScore)
	isCorrect := score >= question.MaxScore*0.5

	return &models.GradeResult{
		IsCorrect:     &isCorrect,
		Score:         score,
		MaxScore:      question.MaxScore,
		WordCount:     &wordCount,
		KeywordsFound: &keywordsFound,
	}
}

// gradeSlider measures preference, not correctness: IsCorrect stays nil.
func gradeSlider(question *models.Question, value float64) *models.GradeResult {
	if value < 1 {
		value = 1
	} else if value > sliderScale {
		value = sliderScale
	}

	normalized := value / sliderScale
	score := round2(normalized * question.MaxScore)

	return &models.GradeResult{
		IsCorrect:       nil,
		Score:           score,
		MaxScore:        question.MaxScore,
		NormalizedValue: &normalized,
	}
}
