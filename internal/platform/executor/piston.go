package executor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"dsaquest/internal/common"
	"dsaquest/internal/domain/model"
	"dsaquest/internal/platform/config"
)

// Client runs user code in an external sandboxed runner. It is injected into
// the execution service so tests can substitute a fake.
type Client interface {
	Execute(ctx context.Context, language, code, stdin string) (*model.ExecutionResult, error)
}

type pistonClient struct {
	baseURL          string
	httpClient       *http.Client
	compileTimeoutMs int
	runTimeoutMs     int
}

func NewPistonClient() Client {
	return &pistonClient{
		baseURL: config.AppConfig.ExecutorURL,
		httpClient: &http.Client{
			Timeout: config.AppConfig.ExecutorRequestTimeout,
		},
		compileTimeoutMs: config.AppConfig.ExecutorCompileTimeoutMs,
		runTimeoutMs:     config.AppConfig.ExecutorRunTimeoutMs,
	}
}

// NewPistonClientWithURL exists for tests that point the client at a local server.
func NewPistonClientWithURL(baseURL string, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &pistonClient{
		baseURL:          baseURL,
		httpClient:       httpClient,
		compileTimeoutMs: 10000,
		runTimeoutMs:     3000,
	}
}

type pistonFile struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

type pistonRequest struct {
	Language       string       `json:"language"`
	Version        string       `json:"version"`
	Files          []pistonFile `json:"files"`
	Stdin          string       `json:"stdin"`
	Args           []string     `json:"args"`
	CompileTimeout int          `json:"compile_timeout"`
	RunTimeout     int          `json:"run_timeout"`
}

type pistonStage struct {
	Stdout string `json:"stdout"`
	Stderr string `json:"stderr"`
	Output string `json:"output"`
	Code   int    `json:"code"`
}

type pistonResponse struct {
	Run     *pistonStage `json:"run"`
	Compile *pistonStage `json:"compile"`
	Message string       `json:"message"`
}

func (c *pistonClient) Execute(ctx context.Context, language, code, stdin string) (*model.ExecutionResult, error) {
	lang, ok := LookupLanguage(language)
	if !ok {
		return nil, common.ErrUnsupportedLanguage
	}

	reqBody := pistonRequest{
		Language: lang.Language,
		Version:  lang.Version,
		Files: []pistonFile{
			{Name: "main." + lang.Extension, Content: code},
		},
		Stdin:          stdin,
		Args:           []string{},
		CompileTimeout: c.compileTimeoutMs,
		RunTimeout:     c.runTimeoutMs,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("pistonClient.Execute: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/execute", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("pistonClient.Execute: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("executor did not respond in time: %w", common.ErrExecutionTimeout)
		}
		return nil, fmt.Errorf("executor unreachable: %v: %w", err, common.ErrExecutionFailed)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("executor returned status %d: %w", resp.StatusCode, common.ErrExecutionFailed)
	}

	var out pistonResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("executor response malformed: %v: %w", err, common.ErrExecutionFailed)
	}

	if out.Compile != nil && out.Compile.Code != 0 {
		compileOutput := out.Compile.Stderr
		if compileOutput == "" {
			compileOutput = out.Compile.Output
		}
		return &model.ExecutionResult{
			CompileFailed: true,
			CompileOutput: compileOutput,
			ExitCode:      out.Compile.Code,
		}, nil
	}

	if out.Run == nil {
		return nil, fmt.Errorf("executor returned no run result: %w", common.ErrExecutionFailed)
	}

	return &model.ExecutionResult{
		Stdout:   out.Run.Stdout,
		Stderr:   out.Run.Stderr,
		ExitCode: out.Run.Code,
	}, nil
}
