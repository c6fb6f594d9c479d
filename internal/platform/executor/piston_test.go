package executor

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dsaquest/internal/common"
)

func TestExecuteSuccessfulRun(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/execute" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`{"run": {"stdout": "42\n", "stderr": "", "code": 0}}`))
	}))
	defer server.Close()

	client := NewPistonClientWithURL(server.URL, nil)
	result, err := client.Execute(context.Background(), "python", "print(42)", "")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.Stdout != "42\n" || result.ExitCode != 0 {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestExecuteCompileFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"compile": {"stderr": "main.cpp:1: expected ';'", "code": 1}}`))
	}))
	defer server.Close()

	client := NewPistonClientWithURL(server.URL, nil)
	result, err := client.Execute(context.Background(), "cpp", "int main( {}", "")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !result.CompileFailed || result.CompileOutput == "" {
		t.Errorf("expected compile failure, got %+v", result)
	}
}

func TestExecuteUnsupportedLanguage(t *testing.T) {
	client := NewPistonClientWithURL("http://invalid.local", nil)
	_, err := client.Execute(context.Background(), "cobol", "x", "")
	if !errors.Is(err, common.ErrUnsupportedLanguage) {
		t.Fatalf("got %v, want ErrUnsupportedLanguage", err)
	}
}

func TestExecuteUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewPistonClientWithURL(server.URL, nil)
	_, err := client.Execute(context.Background(), "python", "print(1)", "")
	if !errors.Is(err, common.ErrExecutionFailed) {
		t.Fatalf("got %v, want ErrExecutionFailed", err)
	}
}

func TestExecuteTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"run": {"stdout": "late"}}`))
	}))
	defer server.Close()

	client := NewPistonClientWithURL(server.URL, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.Execute(ctx, "python", "while True: pass", "")
	if !errors.Is(err, common.ErrExecutionTimeout) {
		t.Fatalf("got %v, want ErrExecutionTimeout", err)
	}
}

func TestLookupLanguage(t *testing.T) {
	for _, lang := range []string{"javascript", "python", "java", "cpp", "c"} {
		if _, ok := LookupLanguage(lang); !ok {
			t.Errorf("%s should be supported", lang)
		}
	}
	if _, ok := LookupLanguage("rust"); ok {
		t.Errorf("rust is not in the supported set")
	}
}
