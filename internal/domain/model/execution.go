package model

// ExecutionResult is the outcome of running user code once against a stdin.
type ExecutionResult struct {
	Stdout        string `json:"stdout"`
	Stderr        string `json:"stderr"`
	ExitCode      int    `json:"exitCode"`
	CompileOutput string `json:"compileOutput,omitempty"`
	CompileFailed bool   `json:"compileFailed,omitempty"`
}

// TestCase is one input/expected-output pair supplied by the client.
type TestCase struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// TestResult reports one test case outcome. Output comparison trims leading
// and trailing whitespace on both sides and otherwise requires an exact match.
type TestResult struct {
	TestNumber     int    `json:"testNumber"`
	Input          string `json:"input"`
	ExpectedOutput string `json:"expectedOutput"`
	UserOutput     string `json:"userOutput"`
	Passed         bool   `json:"passed"`
	Error          string `json:"error,omitempty"`
}

type TestBatchResult struct {
	AllPassed   bool         `json:"allPassed"`
	Results     []TestResult `json:"results"`
	TotalTests  int          `json:"totalTests"`
	PassedTests int          `json:"passedTests"`
}
