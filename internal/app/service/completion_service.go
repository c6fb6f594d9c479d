package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dsaquest/internal/common"
	"dsaquest/internal/domain/model"
	"dsaquest/internal/domain/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CompletionService awards points for a solved problem. The ledger write and
// the user stat increment commit together; the idempotence boundary lives in
// the store's unique (user_id, problem_slug) index, reached through a single
// conditional write.
type CompletionService struct {
	userRepo     repository.UserRepository
	progressRepo repository.ProgressRepository
	leaderboard  *LeaderboardService
	txRunner     repository.TxRunner
}

func NewCompletionService(
	userRepo repository.UserRepository,
	progressRepo repository.ProgressRepository,
	leaderboard *LeaderboardService,
	txRunner repository.TxRunner,
) *CompletionService {
	return &CompletionService{
		userRepo:     userRepo,
		progressRepo: progressRepo,
		leaderboard:  leaderboard,
		txRunner:     txRunner,
	}
}

type CompleteProblemRequest struct {
	UserID       string `json:"userId"`
	ProblemSlug  string `json:"problemSlug"`
	ProblemTitle string `json:"problemTitle"`
	Topic        string `json:"topic"`
	Difficulty   string `json:"difficulty"`
	Language     string `json:"language"`
	Code         string `json:"code"`
}

type CompletionResult struct {
	Success      bool        `json:"success"`
	PointsEarned int         `json:"pointsEarned"`
	TotalPoints  int         `json:"totalPoints"`
	Rank         int         `json:"rank"`
	Stats        model.Stats `json:"stats"`
	Message      string      `json:"message"`
}

func (s *CompletionService) CompleteProblem(ctx context.Context, req CompleteProblemRequest) (*CompletionResult, error) {
	if req.UserID == "" || req.ProblemSlug == "" || req.Topic == "" || req.Difficulty == "" {
		return nil, fmt.Errorf("userId, problemSlug, topic and difficulty are required: %w", common.ErrValidation)
	}

	difficulty := model.Difficulty(req.Difficulty)
	points, ok := model.PointsForDifficulty(difficulty)
	if !ok {
		return nil, fmt.Errorf("unknown difficulty %q: %w", req.Difficulty, common.ErrValidation)
	}

	language := req.Language
	if language == "" {
		language = "javascript"
	}

	// Fast path only. The conditional write below is what actually prevents a
	// racing double award.
	if existing, err := s.progressRepo.FindByUserAndSlug(ctx, req.UserID, req.ProblemSlug); err == nil && existing.Completed {
		return nil, common.ErrAlreadyCompleted
	}

	entry := &model.ProgressEntry{
		ID:           uuid.NewString(),
		UserID:       req.UserID,
		ProblemSlug:  req.ProblemSlug,
		ProblemTitle: req.ProblemTitle,
		Topic:        req.Topic,
		Difficulty:   difficulty,
		Completed:    true,
		PointsEarned: points,
		Language:     language,
		Solution:     req.Code,
	}

	var easy, medium, hard int
	switch difficulty {
	case model.DifficultyEasy:
		easy = 1
	case model.DifficultyMedium:
		medium = 1
	case model.DifficultyHard:
		hard = 1
	}

	err := s.txRunner.RunInTx(ctx, func(tx *sql.Tx) error {
		if err := s.progressRepo.MarkCompleted(ctx, tx, entry); err != nil {
			return err
		}
		return s.userRepo.ApplyCompletion(ctx, tx, req.UserID, points, easy, medium, hard)
	})
	if err != nil {
		if errors.Is(err, common.ErrAlreadyCompleted) {
			return nil, common.ErrAlreadyCompleted
		}
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("user %s: %w", req.UserID, common.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to record completion: %w", err)
	}

	// Eager recompute so a leaderboard read right after this call reflects the
	// new points. A failure here leaves ranks stale until the next sweep.
	if err := s.leaderboard.RecomputeRanks(ctx); err != nil {
		zap.L().Error("rank recompute after completion failed", zap.Error(err))
	}

	user, err := s.userRepo.FindByID(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload user after completion: %w", err)
	}

	zap.L().Info("problem completed",
		zap.String("user", user.Username),
		zap.String("problem", req.ProblemSlug),
		zap.String("language", language),
		zap.Int("points", points))

	return &CompletionResult{
		Success:      true,
		PointsEarned: points,
		TotalPoints:  user.Points,
		Rank:         user.Rank,
		Stats:        user.Stats,
		Message:      fmt.Sprintf("Congratulations! You earned %d points!", points),
	}, nil
}
