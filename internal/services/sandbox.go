package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/talent-screen/internal/config"
	"alfredoptarigan/talent-screen/internal/models"
)

// ErrUnsupportedLanguage is returned before any process is spawned when the
// declared language is not in the supported set.
var ErrUnsupportedLanguage = errors.New("language not supported")

// displayLimit truncates per-case input/expected/actual for display.
const displayLimit = 100

type SandboxService interface {
	// Execute runs untrusted source code in an isolated child process per
	// test case under a hard wall-clock timeout. It never returns an error:
	// every failure mode is reported inside the ExecutionResult.
	Execute(ctx context.Context, code, language string, testCases []models.TestCase) *models.ExecutionResult

	// ValidateSyntax compiles/parses the source without executing it.
	// Languages without a pre-check are treated as always valid.
	ValidateSyntax(ctx context.Context, code, language string) *models.SyntaxCheck

	// CheckLanguage reports whether the declared language has a runner.
	// It returns an error wrapping ErrUnsupportedLanguage otherwise, so
	// callers can reject the request before spawning anything.
	CheckLanguage(language string) error
}

type sandboxService struct {
	cfg config.SandboxConfig
}

func NewSandboxService(cfg config.SandboxConfig) SandboxService {
	return &sandboxService{cfg: cfg}
}

// runnerFor maps a declared language onto an interpreter invocation and a
// source filename. The set is intentionally small; unknown languages fail
// closed. The configured memory ceiling is advisory: it is passed to the
// hosting environment (ulimit/cgroup), not enforced here on all platforms.
func (s *sandboxService) runnerFor(language string) (bin string, filename string, err error) {
	switch strings.ToLower(language) {
	case "python", "py", "python3":
		return s.cfg.PythonBin, "main.py", nil
	case "javascript", "js", "node":
		return s.cfg.NodeBin, "main.js", nil
	default:
		return "", "", fmt.Errorf("language '%s': %w", language, ErrUnsupportedLanguage)
	}
}

func (s *sandboxService) CheckLanguage(language string) error {
	_, _, err := s.runnerFor(language)
	return err
}

func (s *sandboxService) Execute(ctx context.Context, code, language string, testCases []models.TestCase) *models.ExecutionResult {
	start := time.Now()
	result := &models.ExecutionResult{TestResults: []models.TestCaseResult{}}

	bin, filename, err := s.runnerFor(language)
	if err != nil {
		msg := fmt.Sprintf("Language '%s' not supported. Supported: python, javascript", language)
		result.Error = &msg
		return result
	}

	srcPath, cleanup, err := s.writeWorkspace(code, filename)
	if err != nil {
		msg := err.Error()
		result.Error = &msg
		return result
	}
	defer cleanup()

	if len(testCases) == 0 {
		stdout, stderr, exitErr := s.runOnce(ctx, bin, srcPath, "")
		result.Output = stdout
		if stderr != "" {
			result.Error = &stderr
		}
		switch {
		case errors.Is(exitErr, context.DeadlineExceeded):
			msg := fmt.Sprintf("Execution timed out (limit: %s)", s.cfg.Timeout)
			result.Error = &msg
		case exitErr == nil:
			result.Success = true
		}
		result.ExecutionTimeMs = elapsedMs(start)
		return result
	}

	allPassed := true
	passed := 0
	for i, tc := range testCases {
		caseResult := s.runTestCase(ctx, bin, srcPath, i, tc)
		if caseResult.Passed {
			passed++
		} else {
			allPassed = false
		}
		result.TestResults = append(result.TestResults, caseResult)
	}

	result.Success = allPassed
	result.Output = fmt.Sprintf("Passed %d/%d test cases", passed, len(testCases))
	result.ExecutionTimeMs = elapsedMs(start)
	return result
}

// runTestCase executes one fresh child process so candidate code never
// observes prior test-case state.
func (s *sandboxService) runTestCase(ctx context.Context, bin, srcPath string, index int, tc models.TestCase) models.TestCaseResult {
	expected := strings.TrimSpace(tc.ExpectedOutput)
	caseResult := models.TestCaseResult{
		TestCase: index + 1,
		Input:    truncate(tc.Input, displayLimit),
		Expected: truncate(expected, displayLimit),
	}

	stdout, stderr, err := s.runOnce(ctx, bin, srcPath, tc.Input)
	actual := strings.TrimSpace(stdout)
	caseResult.Actual = truncate(actual, displayLimit)
	if stderr != "" {
		caseResult.Error = &stderr
	}

	if errors.Is(err, context.DeadlineExceeded) {
		msg := "Timeout"
		caseResult.Error = &msg
		return caseResult
	}

	caseResult.Passed = actual == expected
	return caseResult
}

// runOnce spawns a single bounded child process. The context timeout kills
// the process group; it does not rely on the child exiting cooperatively.
func (s *sandboxService) runOnce(parent context.Context, bin, srcPath, stdin string) (stdout, stderr string, err error) {
	ctx, cancel := context.WithTimeout(parent, s.cfg.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, bin, srcPath)
	cmd.Dir = filepath.Dir(srcPath)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}

	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	runErr := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return outBuf.String(), errBuf.String(), context.DeadlineExceeded
	}
	return outBuf.String(), errBuf.String(), runErr
}

// writeWorkspace creates a uniquely named temp directory holding the source
// file. The returned cleanup runs on every exit path, including timeouts.
func (s *sandboxService) writeWorkspace(code, filename string) (string, func(), error) {
	dir := filepath.Join(s.cfg.WorkDir, "sandbox-"+uuid.New().String())
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", nil, fmt.Errorf("failed to create sandbox workspace: %w", err)
	}

	srcPath := filepath.Join(dir, filename)
	if err := os.WriteFile(srcPath, []byte(code), 0o600); err != nil {
		os.RemoveAll(dir)
		return "", nil, fmt.Errorf("failed to write source file: %w", err)
	}

	return srcPath, func() { os.RemoveAll(dir) }, nil
}

func (s *sandboxService) ValidateSyntax(ctx context.Context, code, language string) *models.SyntaxCheck {
	switch strings.ToLower(language) {
	case "python", "py", "python3":
		return s.validatePython(ctx, code)
	default:
		// No pre-check for this language; the sandbox run decides.
		return &models.SyntaxCheck{Valid: true}
	}
}

func (s *sandboxService) validatePython(ctx context.Context, code string) *models.SyntaxCheck {
	srcPath, cleanup, err := s.writeWorkspace(code, "main.py")
	if err != nil {
		msg := err.Error()
		return &models.SyntaxCheck{Valid: false, Error: &msg}
	}
	defer cleanup()

	runCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, s.cfg.PythonBin, "-m", "py_compile", srcPath)
	var errBuf bytes.Buffer
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(errBuf.String())
		if msg == "" {
			msg = err.Error()
		}
		return &models.SyntaxCheck{Valid: false, Error: &msg}
	}
	return &models.SyntaxCheck{Valid: true}
}

func elapsedMs(start time.Time) float64 {
	return round2(float64(time.Since(start).Microseconds()) / 1000)
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
