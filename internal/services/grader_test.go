package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/talent-screen/internal/models"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestGradeMCQCorrect(t *testing.T) {
	svc := NewGraderService()

	question := &models.Question{
		QuestionType:  models.QuestionMCQ,
		Options:       []string{"a", "b", "c", "d"},
		CorrectAnswer: "2",
		MaxScore:      10,
	}
	req := &models.SubmitResponseRequest{SelectedOption: intPtr(2)}

	grade := svc.Grade(question, req, nil)
	require.NotNil(t, grade.IsCorrect)
	assert.True(t, *grade.IsCorrect)
	assert.Equal(t, 10.0, grade.Score)
}

func TestGradeMCQWrong(t *testing.T) {
	svc := NewGraderService()

	question := &models.Question{
		QuestionType:  models.QuestionMCQ,
		Options:       []string{"a", "b", "c", "d"},
		CorrectAnswer: "2",
		MaxScore:      10,
	}
	req := &models.SubmitResponseRequest{SelectedOption: intPtr(0)}

	grade := svc.Grade(question, req, nil)
	require.NotNil(t, grade.IsCorrect)
	assert.False(t, *grade.IsCorrect)
	assert.Equal(t, 0.0, grade.Score)
}

func TestGradeMCQAnswerByValue(t *testing.T) {
	svc := NewGraderService()

	question := &models.Question{
		QuestionType:  models.QuestionMCQ,
		Options:       []string{"alpha", "beta", "gamma"},
		CorrectAnswer: "beta",
		MaxScore:      5,
	}
	req := &models.SubmitResponseRequest{SelectedOption: intPtr(1)}

	grade := svc.Grade(question, req, nil)
	require.NotNil(t, grade.IsCorrect)
	assert.True(t, *grade.IsCorrect)
	assert.Equal(t, 5.0, grade.Score)
}

func TestGradeCodingPartial(t *testing.T) {
	svc := NewGraderService()

	question := &models.Question{QuestionType: models.QuestionCoding, MaxScore: 10}
	execResult := &models.ExecutionResult{
		Success: false,
		TestResults: []models.TestCaseResult{
			{Passed: true},
			{Passed: true},
			{Passed: false},
		},
	}

	grade := svc.Grade(question, &models.SubmitResponseRequest{}, execResult)
	require.NotNil(t, grade.IsCorrect)
	assert.False(t, *grade.IsCorrect)
	assert.Equal(t, 6.67, grade.Score)
	require.NotNil(t, grade.TestsPassed)
	assert.Equal(t, 2, *grade.TestsPassed)
	require.NotNil(t, grade.TestsTotal)
	assert.Equal(t, 3, *grade.TestsTotal)
}

func TestGradeCodingAllPassed(t *testing.T) {
	svc := NewGraderService()

	question := &models.Question{QuestionType: models.QuestionCoding, MaxScore: 10}
	execResult := &models.ExecutionResult{
		Success: true,
		TestResults: []models.TestCaseResult{
			{Passed: true},
			{Passed: true},
		},
	}

	grade := svc.Grade(question, &models.SubmitResponseRequest{}, execResult)
	require.NotNil(t, grade.IsCorrect)
	assert.True(t, *grade.IsCorrect)
	assert.Equal(t, 10.0, grade.Score)
}

func TestGradeCodingNoExecution(t *testing.T) {
	svc := NewGraderService()

	question := &models.Question{QuestionType: models.QuestionCoding, MaxScore: 10}
	grade := svc.Grade(question, &models.SubmitResponseRequest{}, nil)

	require.NotNil(t, grade.IsCorrect)
	assert.False(t, *grade.IsCorrect)
	assert.Equal(t, 0.0, grade.Score)
}

func TestGradeCodingBinaryWithoutTestCases(t *testing.T) {
	svc := NewGraderService()

	question := &models.Question{QuestionType: models.QuestionCoding, MaxScore: 10}
	execResult := &models.ExecutionResult{Success: true, Output: "ok"}

	grade := svc.Grade(question, &models.SubmitResponseRequest{}, execResult)
	require.NotNil(t, grade.IsCorrect)
	assert.True(t, *grade.IsCorrect)
	assert.Equal(t, 10.0, grade.Score)
}

func TestGradeTextEmpty(t *testing.T) {
	svc := NewGraderService()

	question := &models.Question{QuestionType: models.QuestionText, MaxScore: 10}
	grade := svc.Grade(question, &models.SubmitResponseRequest{ResponseText: "   "}, nil)

	require.NotNil(t, grade.IsCorrect)
	assert.False(t, *grade.IsCorrect)
	assert.Equal(t, 0.0, grade.Score)
}

func TestGradeTextFullMarks(t *testing.T) {
	svc := NewGraderService()

	question := &models.Question{
		QuestionType: models.QuestionText,
		MaxScore:     10,
		SkillTags:    []string{"python", "docker"},
	}
	text := strings.Repeat("word ", 100) + "python docker"
	grade := svc.Grade(question, &models.SubmitResponseRequest{ResponseText: text}, nil)

	assert.Equal(t, 10.0, grade.Score)
	require.NotNil(t, grade.IsCorrect)
	assert.True(t, *grade.IsCorrect)
	require.NotNil(t, grade.KeywordsFound)
	assert.Equal(t, 2, *grade.KeywordsFound)
}

func TestGradeTextDefaultKeywordScore(t *testing.T) {
	svc := NewGraderService()

	// No skill tags: keyword component defaults to 0.5.
	question := &models.Question{QuestionType: models.QuestionText, MaxScore: 10}
	text := strings.Repeat("word ", 50)
	grade := svc.Grade(question, &models.SubmitResponseRequest{ResponseText: text}, nil)

	assert.Equal(t, 5.0, grade.Score)
	require.NotNil(t, grade.IsCorrect)
	assert.True(t, *grade.IsCorrect)
}

func TestGradeSlider(t *testing.T) {
	svc := NewGraderService()

	question := &models.Question{QuestionType: models.QuestionSlider, MaxScore: 10}
	grade := svc.Grade(question, &models.SubmitResponseRequest{SliderValue: floatPtr(5)}, nil)

	assert.Nil(t, grade.IsCorrect)
	assert.Equal(t, 10.0, grade.Score)
	require.NotNil(t, grade.NormalizedValue)
	assert.Equal(t, 1.0, *grade.NormalizedValue)
}

func TestGradeSliderClamped(t *testing.T) {
	svc := NewGraderService()

	question := &models.Question{QuestionType: models.QuestionSlider, MaxScore: 10}

	low := svc.Grade(question, &models.SubmitResponseRequest{SliderValue: floatPtr(0)}, nil)
	assert.Equal(t, 2.0, low.Score)

	high := svc.Grade(question, &models.SubmitResponseRequest{SliderValue: floatPtr(42)}, nil)
	assert.Equal(t, 10.0, high.Score)
}
