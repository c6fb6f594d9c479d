package service

import (
	"context"
	"testing"

	"dsaquest/internal/domain/model"
)

func userWithPoints(id string, points, completed int) *model.User {
	return &model.User{
		ID:       id,
		Username: id,
		Points:   points,
		Stats:    model.Stats{TotalCompleted: completed},
	}
}

func TestRecomputeRanksTieBreak(t *testing.T) {
	// Equal points fall back to total completions; u1 and u3 both have 100.
	userRepo := newFakeUserRepo(
		userWithPoints("u1", 100, 10),
		userWithPoints("u2", 80, 8),
		userWithPoints("u3", 100, 5),
	)
	svc := NewLeaderboardService(userRepo, nil, "leaderboard:test", 0)

	if err := svc.RecomputeRanks(context.Background()); err != nil {
		t.Fatalf("RecomputeRanks: %v", err)
	}

	want := map[string]int{"u1": 1, "u3": 2, "u2": 3}
	for id, rank := range want {
		if got := userRepo.users[id].Rank; got != rank {
			t.Errorf("%s: got rank %d, want %d", id, got, rank)
		}
	}
}

func TestRecomputeRanksSkipsZeroPointUsers(t *testing.T) {
	userRepo := newFakeUserRepo(
		userWithPoints("active", 30, 2),
		userWithPoints("idle", 0, 0),
	)
	svc := NewLeaderboardService(userRepo, nil, "leaderboard:test", 0)

	if err := svc.RecomputeRanks(context.Background()); err != nil {
		t.Fatalf("RecomputeRanks: %v", err)
	}
	if got := userRepo.users["active"].Rank; got != 1 {
		t.Errorf("active: got rank %d, want 1", got)
	}
	if got := userRepo.users["idle"].Rank; got != 0 {
		t.Errorf("idle user was ranked: got %d, want 0", got)
	}
}

func TestRankMonotonicity(t *testing.T) {
	userRepo := newFakeUserRepo(
		userWithPoints("a", 50, 3),
		userWithPoints("b", 120, 7),
		userWithPoints("c", 90, 4),
		userWithPoints("d", 10, 1),
	)
	svc := NewLeaderboardService(userRepo, nil, "leaderboard:test", 0)

	if err := svc.RecomputeRanks(context.Background()); err != nil {
		t.Fatalf("RecomputeRanks: %v", err)
	}

	for _, a := range userRepo.users {
		for _, b := range userRepo.users {
			if a.Points > b.Points && b.Points > 0 && a.Rank >= b.Rank {
				t.Errorf("%s (%d pts, rank %d) should rank above %s (%d pts, rank %d)",
					a.ID, a.Points, a.Rank, b.ID, b.Points, b.Rank)
			}
		}
	}
}

func TestGetLeaderboard(t *testing.T) {
	userRepo := newFakeUserRepo(
		userWithPoints("u1", 100, 10),
		userWithPoints("u2", 80, 8),
		userWithPoints("u3", 60, 6),
	)
	svc := NewLeaderboardService(userRepo, nil, "leaderboard:test", 0)

	entries, err := svc.GetLeaderboard(context.Background(), 2, "u2")
	if err != nil {
		t.Fatalf("GetLeaderboard: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2 (limit)", len(entries))
	}
	if entries[0].UserID != "u1" || entries[0].Rank != 1 {
		t.Errorf("top entry: got %s rank %d, want u1 rank 1", entries[0].UserID, entries[0].Rank)
	}
	if !entries[1].IsCurrentUser {
		t.Errorf("u2 entry not marked as current user")
	}
	if entries[0].IsCurrentUser {
		t.Errorf("u1 entry wrongly marked as current user")
	}
}
