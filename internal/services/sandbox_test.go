package services

import (
	"context"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/talent-screen/internal/config"
	"alfredoptarigan/talent-screen/internal/models"
)

func newTestSandbox(t *testing.T) SandboxService {
	t.Helper()
	if _, err := exec.LookPath("python3"); err != nil {
		t.Skip("python3 not available")
	}
	return NewSandboxService(config.SandboxConfig{
		Timeout:   5 * time.Second,
		PythonBin: "python3",
		NodeBin:   "node",
		WorkDir:   t.TempDir(),
	})
}

func TestSandboxExecuteSimple(t *testing.T) {
	svc := newTestSandbox(t)

	result := svc.Execute(context.Background(), `print("hello")`, "python", nil)
	require.NotNil(t, result)

	assert.True(t, result.Success)
	assert.Nil(t, result.Error)
	assert.Equal(t, "hello\n", result.Output)
	assert.Empty(t, result.TestResults)
}

func TestSandboxExecuteTestCases(t *testing.T) {
	svc := newTestSandbox(t)

	code := "print(int(input()) * 2)"
	cases := []models.TestCase{
		{Input: "3", ExpectedOutput: "6"},
		{Input: "4", ExpectedOutput: "9"},
	}

	result := svc.Execute(context.Background(), code, "python", cases)
	require.Len(t, result.TestResults, 2)

	assert.False(t, result.Success)
	assert.Equal(t, "Passed 1/2 test cases", result.Output)
	assert.True(t, result.TestResults[0].Passed)
	assert.False(t, result.TestResults[1].Passed)
	assert.Equal(t, "8", result.TestResults[1].Actual)
}

func TestSandboxExecuteRuntimeError(t *testing.T) {
	svc := newTestSandbox(t)

	result := svc.Execute(context.Background(), `raise ValueError("boom")`, "python", nil)
	assert.False(t, result.Success)
	require.NotNil(t, result.Error)
	assert.Contains(t, *result.Error, "ValueError")
}

func TestSandboxUnsupportedLanguage(t *testing.T) {
	svc := NewSandboxService(config.SandboxConfig{
		Timeout: time.Second,
		WorkDir: t.TempDir(),
	})

	result := svc.Execute(context.Background(), "puts 'hi'", "ruby", nil)
	assert.False(t, result.Success)
	require.NotNil(t, result.Error)
	assert.Contains(t, *result.Error, "not supported")
	assert.Empty(t, result.TestResults)
}

func TestSandboxCheckLanguage(t *testing.T) {
	svc := NewSandboxService(config.SandboxConfig{
		Timeout:   time.Second,
		PythonBin: "python3",
		NodeBin:   "node",
		WorkDir:   t.TempDir(),
	})

	assert.NoError(t, svc.CheckLanguage("python"))
	assert.NoError(t, svc.CheckLanguage("Python3"))
	assert.NoError(t, svc.CheckLanguage("javascript"))

	err := svc.CheckLanguage("ruby")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
	assert.Contains(t, err.Error(), "ruby")
}

func TestSandboxTimeout(t *testing.T) {
	if _, err := exec.LookPath("python3"); err != nil {
		t.Skip("python3 not available")
	}
	svc := NewSandboxService(config.SandboxConfig{
		Timeout:   500 * time.Millisecond,
		PythonBin: "python3",
		WorkDir:   t.TempDir(),
	})

	result := svc.Execute(context.Background(), "while True:\n    pass", "python", nil)
	assert.False(t, result.Success)
	require.NotNil(t, result.Error)
	assert.Contains(t, *result.Error, "timed out")
}

func TestSandboxTestCaseTimeoutDoesNotStopRun(t *testing.T) {
	if _, err := exec.LookPath("python3"); err != nil {
		t.Skip("python3 not available")
	}
	svc := NewSandboxService(config.SandboxConfig{
		Timeout:   time.Second,
		PythonBin: "python3",
		WorkDir:   t.TempDir(),
	})

	// Spins forever on input 0, echoes anything else. The first case must
	// time out in isolation while the second still gets a fresh process.
	code := "n = int(input())\nif n == 0:\n    while True:\n        pass\nprint(n)"
	cases := []models.TestCase{
		{Input: "0", ExpectedOutput: "0"},
		{Input: "5", ExpectedOutput: "5"},
	}

	result := svc.Execute(context.Background(), code, "python", cases)
	require.Len(t, result.TestResults, 2)

	require.NotNil(t, result.TestResults[0].Error)
	assert.Equal(t, "Timeout", *result.TestResults[0].Error)
	assert.False(t, result.TestResults[0].Passed)

	assert.True(t, result.TestResults[1].Passed)
	assert.Equal(t, "5", result.TestResults[1].Actual)

	assert.False(t, result.Success)
	assert.Equal(t, "Passed 1/2 test cases", result.Output)
}

func TestSandboxCleansWorkspace(t *testing.T) {
	if _, err := exec.LookPath("python3"); err != nil {
		t.Skip("python3 not available")
	}
	workDir := t.TempDir()
	svc := NewSandboxService(config.SandboxConfig{
		Timeout:   5 * time.Second,
		PythonBin: "python3",
		WorkDir:   workDir,
	})

	svc.Execute(context.Background(), `print("hi")`, "python", nil)

	entries, err := os.ReadDir(workDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestValidateSyntax(t *testing.T) {
	svc := newTestSandbox(t)

	valid := svc.ValidateSyntax(context.Background(), `print("ok")`, "python")
	assert.True(t, valid.Valid)

	invalid := svc.ValidateSyntax(context.Background(), "def broken(:", "python")
	assert.False(t, invalid.Valid)
	require.NotNil(t, invalid.Error)
}

func TestValidateSyntaxUnknownLanguage(t *testing.T) {
	svc := NewSandboxService(config.SandboxConfig{
		Timeout: time.Second,
		WorkDir: t.TempDir(),
	})

	check := svc.ValidateSyntax(context.Background(), "console.log(1)", "javascript")
	assert.True(t, check.Valid)
}
