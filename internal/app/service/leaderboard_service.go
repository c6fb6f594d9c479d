package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"dsaquest/internal/domain/model"
	"dsaquest/internal/domain/repository"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// LeaderboardService owns the ranked projection of users by points. Ranks are
// dense 1-based positions ordered by (points, totalCompleted) descending; the
// ordering is the only tie-break.
type LeaderboardService struct {
	userRepo repository.UserRepository
	rdb      *redis.Client // nil disables caching
	cacheKey string
	cacheTTL time.Duration
}

func NewLeaderboardService(userRepo repository.UserRepository, rdb *redis.Client, cacheKey string, cacheTTL time.Duration) *LeaderboardService {
	return &LeaderboardService{
		userRepo: userRepo,
		rdb:      rdb,
		cacheKey: cacheKey,
		cacheTTL: cacheTTL,
	}
}

func rankLess(a, b *model.User) bool {
	if a.Points != b.Points {
		return a.Points > b.Points
	}
	return a.Stats.TotalCompleted > b.Stats.TotalCompleted
}

// RecomputeRanks reassigns every rank from scratch and writes them back.
// Full O(n log n) on each completion; fine at small scale, the periodic sweep
// and the cache drop keep readers consistent with the latest commit.
func (s *LeaderboardService) RecomputeRanks(ctx context.Context) error {
	users, err := s.userRepo.ListWithPoints(ctx, 0)
	if err != nil {
		return fmt.Errorf("leaderboard recompute: %w", err)
	}

	sort.SliceStable(users, func(i, j int) bool { return rankLess(users[i], users[j]) })

	updates := make([]repository.RankUpdate, 0, len(users))
	for i, u := range users {
		updates = append(updates, repository.RankUpdate{UserID: u.ID, Rank: i + 1})
	}
	if err := s.userRepo.UpdateRanks(ctx, updates); err != nil {
		return fmt.Errorf("leaderboard recompute: %w", err)
	}

	s.invalidateCache(ctx)
	return nil
}

// GetLeaderboard returns the top entries. The cached projection is shared
// across requesters; IsCurrentUser is stamped per request after load.
func (s *LeaderboardService) GetLeaderboard(ctx context.Context, limit int, requestingUserID string) ([]model.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 100
	}

	entries, ok := s.readCache(ctx, limit)
	if !ok {
		users, err := s.userRepo.ListWithPoints(ctx, limit)
		if err != nil {
			return nil, fmt.Errorf("leaderboard read: %w", err)
		}
		sort.SliceStable(users, func(i, j int) bool { return rankLess(users[i], users[j]) })

		entries = make([]model.LeaderboardEntry, 0, len(users))
		for i, u := range users {
			entries = append(entries, model.LeaderboardEntry{
				Rank:           i + 1,
				UserID:         u.ID,
				Username:       u.Username,
				Avatar:         u.Avatar,
				Points:         u.Points,
				ProblemsSolved: u.Stats.TotalCompleted,
				Stats:          u.Stats,
			})
		}
		s.writeCache(ctx, limit, entries)
	}

	if requestingUserID != "" {
		for i := range entries {
			entries[i].IsCurrentUser = entries[i].UserID == requestingUserID
		}
	}
	return entries, nil
}

func (s *LeaderboardService) key(limit int) string {
	return fmt.Sprintf("%s:%d", s.cacheKey, limit)
}

func (s *LeaderboardService) readCache(ctx context.Context, limit int) ([]model.LeaderboardEntry, bool) {
	if s.rdb == nil {
		return nil, false
	}
	raw, err := s.rdb.Get(ctx, s.key(limit)).Result()
	if err != nil {
		if err != redis.Nil {
			zap.L().Warn("leaderboard cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var entries []model.LeaderboardEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, false
	}
	return entries, true
}

func (s *LeaderboardService) writeCache(ctx context.Context, limit int, entries []model.LeaderboardEntry) {
	if s.rdb == nil {
		return
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, s.key(limit), raw, s.cacheTTL).Err(); err != nil {
		zap.L().Warn("leaderboard cache write failed", zap.Error(err))
	}
}

func (s *LeaderboardService) invalidateCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	iter := s.rdb.Scan(ctx, 0, s.cacheKey+":*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			zap.L().Warn("leaderboard cache invalidation failed", zap.Error(err))
		}
	}
	if err := iter.Err(); err != nil {
		zap.L().Warn("leaderboard cache scan failed", zap.Error(err))
	}
}
