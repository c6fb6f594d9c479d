package service

import (
	"context"
	"fmt"

	"dsaquest/internal/common"
	"dsaquest/internal/domain/model"
	"dsaquest/internal/domain/repository"
)

type UserService struct {
	userRepo     repository.UserRepository
	progressRepo repository.ProgressRepository
}

func NewUserService(userRepo repository.UserRepository, progressRepo repository.ProgressRepository) *UserService {
	return &UserService{userRepo: userRepo, progressRepo: progressRepo}
}

type ProfileResponse struct {
	User           *model.User            `json:"user"`
	RecentProblems []*model.ProgressEntry `json:"recentProblems"`
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*ProfileResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", userID, err)
	}
	user.HashedPassword = ""

	recent, err := s.progressRepo.ListCompletedByUser(ctx, userID, 10)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent completions: %w", err)
	}
	return &ProfileResponse{User: user, RecentProblems: recent}, nil
}

type UpdateProfileRequest struct {
	Username *string `json:"username"`
	Avatar   *string `json:"avatar"`
	Bio      *string `json:"bio"`
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*model.User, error) {
	if req.Username == nil && req.Avatar == nil && req.Bio == nil {
		return nil, fmt.Errorf("nothing to update: %w", common.ErrValidation)
	}
	if req.Username != nil && *req.Username == "" {
		return nil, fmt.Errorf("username cannot be empty: %w", common.ErrValidation)
	}
	user, err := s.userRepo.UpdateProfile(ctx, userID, req.Username, req.Avatar, req.Bio)
	if err != nil {
		return nil, err
	}
	user.HashedPassword = ""
	return user, nil
}

type ProgressResponse struct {
	User              *model.User            `json:"user"`
	CompletedProblems []*model.ProgressEntry `json:"completedProblems"`
}

// GetProgress returns the user's point standing plus every completed problem.
func (s *UserService) GetProgress(ctx context.Context, userID string) (*ProgressResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", userID, err)
	}
	user.HashedPassword = ""

	completed, err := s.progressRepo.ListCompletedByUser(ctx, userID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load completed problems: %w", err)
	}
	return &ProgressResponse{User: user, CompletedProblems: completed}, nil
}

type LearningProgressResponse struct {
	Username          string      `json:"username"`
	Avatar            string      `json:"avatar"`
	Points            int         `json:"points"`
	Rank              int         `json:"rank"`
	Stats             model.Stats `json:"stats"`
	CompletedProblems int         `json:"completedProblems"`
	Streak            int         `json:"streak"`
}

// GetLearningProgress returns the summary shown on the learning dashboard.
// The streak counts the most recent completions, capped at a week's worth.
func (s *UserService) GetLearningProgress(ctx context.Context, userID string) (*LearningProgressResponse, error) {
	if userID == "" {
		return nil, fmt.Errorf("userId is required: %w", common.ErrValidation)
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", userID, err)
	}

	completed, err := s.progressRepo.CountCompletedByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count completions: %w", err)
	}
	recent, err := s.progressRepo.ListCompletedByUser(ctx, userID, 7)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent completions: %w", err)
	}

	avatar := user.Avatar
	if avatar == "" {
		avatar = "ninja"
	}
	return &LearningProgressResponse{
		Username:          user.Username,
		Avatar:            avatar,
		Points:            user.Points,
		Rank:              user.Rank,
		Stats:             user.Stats,
		CompletedProblems: completed,
		Streak:            len(recent),
	}, nil
}
