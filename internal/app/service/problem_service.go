package service

import (
	"context"
	"fmt"
	"strings"

	"dsaquest/internal/common"
	"dsaquest/internal/domain/model"
	"dsaquest/internal/platform/catalog"

	"go.uber.org/zap"
)

const (
	sourceProblemBank = "Problem Bank API"
	sourceCurated     = "Curated Practice Problems"
)

// ProblemService serves the read-only problem catalog: the fixed topic list,
// the external bank, and the curated built-in fallback.
type ProblemService struct {
	catalog catalog.Client
}

func NewProblemService(cat catalog.Client) *ProblemService {
	return &ProblemService{catalog: cat}
}

func (s *ProblemService) GetTopics() []model.Topic {
	return model.Topics
}

type ProblemListResponse struct {
	Problems   []model.Problem `json:"problems"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	Topic      string          `json:"topic"`
	Difficulty string          `json:"difficulty"`
	Source     string          `json:"source"`
}

func parseDifficulty(raw string) (model.Difficulty, bool) {
	for _, d := range []model.Difficulty{model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard} {
		if strings.EqualFold(raw, string(d)) {
			return d, true
		}
	}
	return "", false
}

func (s *ProblemService) GetProblems(ctx context.Context, topicQuery, difficultyQuery string, page int) (*ProblemListResponse, error) {
	if topicQuery == "" || difficultyQuery == "" {
		return nil, fmt.Errorf("topic and difficulty are required: %w", common.ErrBadRequest)
	}
	topic, ok := model.FindTopic(topicQuery)
	if !ok {
		return nil, fmt.Errorf("topic %q: %w", topicQuery, common.ErrNotFound)
	}
	difficulty, ok := parseDifficulty(difficultyQuery)
	if !ok {
		return nil, fmt.Errorf("difficulty %q: %w", difficultyQuery, common.ErrValidation)
	}
	if page < 1 {
		page = 1
	}

	problems, err := s.catalog.FetchProblems(ctx, topic, difficulty, page)
	if err != nil {
		zap.L().Warn("problem bank unavailable, falling back to curated set",
			zap.String("topic", topic.ID), zap.Error(err))
	}

	if err == nil && len(problems) > 0 {
		return &ProblemListResponse{
			Problems:   problems,
			Total:      len(problems),
			Page:       page,
			Topic:      topic.Name,
			Difficulty: string(difficulty),
			Source:     sourceProblemBank,
		}, nil
	}

	curated := curatedProblems(topic.ID, difficulty)
	if len(curated) == 0 {
		return nil, fmt.Errorf("no problems available for %s - %s: %w", topic.Name, difficulty, common.ErrNotFound)
	}
	return &ProblemListResponse{
		Problems:   curated,
		Total:      len(curated),
		Page:       1,
		Topic:      topic.Name,
		Difficulty: string(difficulty),
		Source:     sourceCurated,
	}, nil
}
