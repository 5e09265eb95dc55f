package models

// ExecutionResult reports one sandbox run. With test cases, Success means
// every case passed; without, it mirrors the process exit code.
type ExecutionResult struct {
	Success         bool             `json:"success"`
	Output          string           `json:"output"`
	Error           *string          `json:"error,omitempty"`
	TestResults     []TestCaseResult `json:"test_results"`
	ExecutionTimeMs float64          `json:"execution_time_ms"`
}

// TestCaseResult records one isolated child-process run against a test case.
// Input/expected/actual are truncated to 100 characters for display.
type TestCaseResult struct {
	TestCase int     `json:"test_case"`
	Input    string  `json:"input"`
	Expected string  `json:"expected"`
	Actual   string  `json:"actual"`
	Passed   bool    `json:"passed"`
	Error    *string `json:"error,omitempty"`
}

// SyntaxCheck is the result of a compile/parse pre-check that never executes
// the submission.
type SyntaxCheck struct {
	Valid bool    `json:"valid"`
	Error *string `json:"error,omitempty"`
}
