package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"dsaquest/internal/domain/model"
)

var arraysTopic = model.Topic{ID: "arrays", Name: "Arrays", CatalogSlug: "array"}

func TestFetchProblemsTransformsBankResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("category"); got != "array" {
			t.Errorf("category = %q, want array", got)
		}
		if got := r.URL.Query().Get("difficulty"); got != "easy" {
			t.Errorf("difficulty = %q, want easy", got)
		}
		w.Write([]byte(`{"results": [
			{"problem_name": "two-sum", "problem_title": "Two Sum", "problem_description": "Find two numbers.",
			 "problem_url": "https://practice.example.com/problems/two-sum", "tags": ["array", "hash-table"]},
			{"title": "Rotate Array By K Steps", "topic_tags": ["array"]}
		]}`))
	}))
	defer server.Close()

	client := NewHTTPClientWithURL(server.URL, nil)
	problems, err := client.FetchProblems(context.Background(), arraysTopic, model.DifficultyEasy, 1)
	if err != nil {
		t.Fatalf("FetchProblems: %v", err)
	}
	if len(problems) != 2 {
		t.Fatalf("got %d problems, want 2", len(problems))
	}
	if problems[0].Slug != "two-sum" || problems[0].Points != 10 {
		t.Errorf("first problem: %+v", problems[0])
	}
	if problems[0].Link != "https://practice.example.com/problems/two-sum" {
		t.Errorf("link = %q", problems[0].Link)
	}
	if len(problems[0].Tags) != 2 || problems[0].Tags[0] != "array" {
		t.Errorf("tags = %v", problems[0].Tags)
	}
	// A missing slug is derived from the title.
	if problems[1].Slug != "rotate-array-by-k-steps" {
		t.Errorf("derived slug = %q", problems[1].Slug)
	}
	if problems[1].Topic != "Arrays" || problems[1].Difficulty != model.DifficultyEasy {
		t.Errorf("second problem: %+v", problems[1])
	}
	// topic_tags is the fallback naming for the same field.
	if len(problems[1].Tags) != 1 || problems[1].Tags[0] != "array" {
		t.Errorf("fallback tags = %v", problems[1].Tags)
	}
}

func TestFetchProblemsAcceptsLegacyFieldNames(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"problems": [{"slug": "max-subarray", "title": "Maximum Subarray"}]}`))
	}))
	defer server.Close()

	client := NewHTTPClientWithURL(server.URL, nil)
	problems, err := client.FetchProblems(context.Background(), arraysTopic, model.DifficultyMedium, 1)
	if err != nil {
		t.Fatalf("FetchProblems: %v", err)
	}
	if len(problems) != 1 || problems[0].Slug != "max-subarray" || problems[0].Points != 20 {
		t.Errorf("unexpected problems: %+v", problems)
	}
}

func TestFetchProblemsCapsAtTen(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := `{"results": [`
		for i := 0; i < 15; i++ {
			if i > 0 {
				body += ","
			}
			body += `{"title": "Problem"}`
		}
		body += `]}`
		w.Write([]byte(body))
	}))
	defer server.Close()

	client := NewHTTPClientWithURL(server.URL, nil)
	problems, err := client.FetchProblems(context.Background(), arraysTopic, model.DifficultyEasy, 1)
	if err != nil {
		t.Fatalf("FetchProblems: %v", err)
	}
	if len(problems) != 10 {
		t.Errorf("got %d problems, want 10", len(problems))
	}
}

func TestFetchProblemsUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewHTTPClientWithURL(server.URL, nil)
	if _, err := client.FetchProblems(context.Background(), arraysTopic, model.DifficultyEasy, 1); err == nil {
		t.Fatalf("expected an error on upstream failure")
	}
}
