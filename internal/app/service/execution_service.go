package service

import (
	"context"
	"fmt"
	"strings"

	"dsaquest/internal/common"
	"dsaquest/internal/domain/model"
	"dsaquest/internal/platform/executor"

	"go.uber.org/zap"
)

// ExecutionService fronts the external sandboxed runner. It never executes
// anything locally and never converts an upstream failure into a success.
type ExecutionService struct {
	executor executor.Client
}

func NewExecutionService(exec executor.Client) *ExecutionService {
	return &ExecutionService{executor: exec}
}

type ExecuteRequest struct {
	Code     string `json:"code"`
	Language string `json:"language"`
	Input    string `json:"input"`
}

type ExecuteResponse struct {
	Success bool   `json:"success"`
	Output  string `json:"output,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

type RunTestsRequest struct {
	Code      string           `json:"code"`
	Language  string           `json:"language"`
	TestCases []model.TestCase `json:"testCases"`
}

func (s *ExecutionService) Execute(ctx context.Context, req ExecuteRequest) (*ExecuteResponse, error) {
	if req.Code == "" || req.Language == "" {
		return nil, fmt.Errorf("code and language are required: %w", common.ErrValidation)
	}
	if _, ok := executor.LookupLanguage(req.Language); !ok {
		return nil, common.ErrUnsupportedLanguage
	}

	result, err := s.executor.Execute(ctx, req.Language, req.Code, req.Input)
	if err != nil {
		return nil, err
	}

	if result.CompileFailed {
		return &ExecuteResponse{
			Success: false,
			Error:   "Compilation Error",
			Message: result.CompileOutput,
		}, nil
	}
	if result.Stderr != "" {
		return &ExecuteResponse{
			Success: false,
			Error:   "Runtime Error",
			Message: result.Stderr,
			Output:  result.Stdout,
		}, nil
	}
	return &ExecuteResponse{
		Success: true,
		Output:  strings.TrimSpace(result.Stdout),
	}, nil
}

// RunTests executes the code once per test case. A failing or unreachable run
// becomes a failed result entry; the batch keeps going so the client sees
// every case's outcome.
func (s *ExecutionService) RunTests(ctx context.Context, req RunTestsRequest) (*model.TestBatchResult, error) {
	if req.Code == "" || req.Language == "" || len(req.TestCases) == 0 {
		return nil, fmt.Errorf("code, language and testCases are required: %w", common.ErrValidation)
	}
	if _, ok := executor.LookupLanguage(req.Language); !ok {
		return nil, common.ErrUnsupportedLanguage
	}

	batch := &model.TestBatchResult{
		AllPassed:  true,
		TotalTests: len(req.TestCases),
	}

	for i, tc := range req.TestCases {
		result := model.TestResult{
			TestNumber:     i + 1,
			Input:          tc.Input,
			ExpectedOutput: strings.TrimSpace(tc.Output),
		}

		execResult, err := s.executor.Execute(ctx, req.Language, req.Code, tc.Input)
		switch {
		case err != nil:
			result.UserOutput = "Error: " + err.Error()
			result.Error = err.Error()
			zap.L().Warn("test case execution failed",
				zap.Int("test", i+1), zap.Error(err))
		case execResult.CompileFailed:
			result.UserOutput = "Error: " + execResult.CompileOutput
			result.Error = execResult.CompileOutput
		default:
			result.UserOutput = strings.TrimSpace(execResult.Stdout)
			// Exact match after trimming surrounding whitespace; internal
			// whitespace, case and numeric formatting are significant.
			result.Passed = result.UserOutput == result.ExpectedOutput
			if execResult.Stderr != "" {
				result.Error = execResult.Stderr
			}
		}

		if !result.Passed {
			batch.AllPassed = false
		} else {
			batch.PassedTests++
		}
		batch.Results = append(batch.Results, result)
	}

	return batch, nil
}
