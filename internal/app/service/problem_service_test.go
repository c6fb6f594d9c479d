package service

import (
	"context"
	"errors"
	"testing"

	"dsaquest/internal/common"
	"dsaquest/internal/domain/model"
)

type fakeCatalog struct {
	problems []model.Problem
	err      error
}

func (f *fakeCatalog) FetchProblems(ctx context.Context, topic model.Topic, difficulty model.Difficulty, page int) ([]model.Problem, error) {
	return f.problems, f.err
}

func TestGetProblemsFromBank(t *testing.T) {
	cat := &fakeCatalog{problems: []model.Problem{
		{Slug: "rotate-array", Title: "Rotate Array", Difficulty: model.DifficultyEasy, Points: 10},
	}}
	svc := NewProblemService(cat)

	resp, err := svc.GetProblems(context.Background(), "arrays", "Easy", 1)
	if err != nil {
		t.Fatalf("GetProblems: %v", err)
	}
	if resp.Source != sourceProblemBank {
		t.Errorf("got source %q, want %q", resp.Source, sourceProblemBank)
	}
	if resp.Total != 1 || resp.Problems[0].Slug != "rotate-array" {
		t.Errorf("unexpected problems: %+v", resp.Problems)
	}
}

func TestGetProblemsFallsBackToCurated(t *testing.T) {
	tests := []struct {
		name string
		cat  *fakeCatalog
	}{
		{"bank error", &fakeCatalog{err: errors.New("connection refused")}},
		{"bank empty", &fakeCatalog{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewProblemService(tt.cat)
			resp, err := svc.GetProblems(context.Background(), "arrays", "Easy", 1)
			if err != nil {
				t.Fatalf("GetProblems: %v", err)
			}
			if resp.Source != sourceCurated {
				t.Errorf("got source %q, want %q", resp.Source, sourceCurated)
			}
			if len(resp.Problems) == 0 || resp.Problems[0].Slug != "two-sum" {
				t.Errorf("expected curated two-sum, got %+v", resp.Problems)
			}
			if resp.Problems[0].Points != 10 {
				t.Errorf("curated Easy problem should be worth 10 points, got %d", resp.Problems[0].Points)
			}
			if resp.Problems[0].Link == "" || len(resp.Problems[0].Tags) == 0 {
				t.Errorf("curated problem missing link or tags: %+v", resp.Problems[0])
			}
		})
	}
}

func TestGetProblemsErrors(t *testing.T) {
	svc := NewProblemService(&fakeCatalog{err: errors.New("down")})
	ctx := context.Background()

	if _, err := svc.GetProblems(ctx, "", "Easy", 1); !errors.Is(err, common.ErrBadRequest) {
		t.Errorf("missing topic: got %v, want ErrBadRequest", err)
	}
	if _, err := svc.GetProblems(ctx, "quantum", "Easy", 1); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("unknown topic: got %v, want ErrNotFound", err)
	}
	if _, err := svc.GetProblems(ctx, "arrays", "Insane", 1); !errors.Is(err, common.ErrValidation) {
		t.Errorf("unknown difficulty: got %v, want ErrValidation", err)
	}
	// No curated Hard problems for arrays.
	if _, err := svc.GetProblems(ctx, "arrays", "Hard", 1); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("no problems available: got %v, want ErrNotFound", err)
	}
}

func TestGetProblemsMatchesTopicByName(t *testing.T) {
	svc := NewProblemService(&fakeCatalog{err: errors.New("down")})
	resp, err := svc.GetProblems(context.Background(), "Linked List", "easy", 1)
	if err != nil {
		t.Fatalf("GetProblems: %v", err)
	}
	if resp.Topic != "Linked List" || resp.Problems[0].Slug != "reverse-list" {
		t.Errorf("unexpected response: topic=%q problems=%+v", resp.Topic, resp.Problems)
	}
}
