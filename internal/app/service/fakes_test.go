package service

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"dsaquest/internal/common"
	"dsaquest/internal/domain/model"
	"dsaquest/internal/domain/repository"
)

// In-memory stand-ins for the pg repositories. They mirror the store's
// semantics closely enough for workflow tests: the progress fake enforces the
// at-most-one-completion rule, the user fake applies increments atomically.

type fakeUserRepo struct {
	users map[string]*model.User
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*model.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	for _, u := range r.users {
		if u.Email == user.Email || u.Username == user.Username {
			return fmt.Errorf("duplicate user: %w", common.ErrConflict)
		}
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *fakeUserRepo) UpdateProfile(ctx context.Context, id string, username, avatar, bio *string) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	if username != nil {
		u.Username = *username
	}
	if avatar != nil {
		u.Avatar = *avatar
	}
	if bio != nil {
		u.Bio = *bio
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) ApplyCompletion(ctx context.Context, tx *sql.Tx, userID string, points, easy, medium, hard int) error {
	u, ok := r.users[userID]
	if !ok {
		return common.ErrNotFound
	}
	u.Points += points
	u.Stats.EasyCompleted += easy
	u.Stats.MediumCompleted += medium
	u.Stats.HardCompleted += hard
	u.Stats.TotalCompleted += easy + medium + hard
	return nil
}

func (r *fakeUserRepo) ListWithPoints(ctx context.Context, limit int) ([]*model.User, error) {
	var users []*model.User
	for _, u := range r.users {
		if u.Points > 0 {
			copied := *u
			users = append(users, &copied)
		}
	}
	sort.SliceStable(users, func(i, j int) bool { return rankLess(users[i], users[j]) })
	if limit > 0 && len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}

func (r *fakeUserRepo) UpdateRanks(ctx context.Context, updates []repository.RankUpdate) error {
	for _, upd := range updates {
		if u, ok := r.users[upd.UserID]; ok {
			u.Rank = upd.Rank
		}
	}
	return nil
}

type fakeProgressRepo struct {
	entries map[string]*model.ProgressEntry

	// When set, MarkCompleted rejects entries for unknown users the way the
	// pg ledger does through its foreign key on users(id).
	users *fakeUserRepo
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{entries: make(map[string]*model.ProgressEntry)}
}

func progressKey(userID, slug string) string {
	return userID + "/" + slug
}

func (r *fakeProgressRepo) MarkCompleted(ctx context.Context, tx *sql.Tx, entry *model.ProgressEntry) error {
	if r.users != nil {
		if _, ok := r.users.users[entry.UserID]; !ok {
			return fmt.Errorf("user %s does not exist: %w", entry.UserID, common.ErrNotFound)
		}
	}
	key := progressKey(entry.UserID, entry.ProblemSlug)
	if existing, ok := r.entries[key]; ok {
		if existing.Completed {
			return common.ErrAlreadyCompleted
		}
	}
	copied := *entry
	copied.Completed = true
	r.entries[key] = &copied
	return nil
}

func (r *fakeProgressRepo) FindByUserAndSlug(ctx context.Context, userID, problemSlug string) (*model.ProgressEntry, error) {
	e, ok := r.entries[progressKey(userID, problemSlug)]
	if !ok {
		return nil, common.ErrNotFound
	}
	copied := *e
	return &copied, nil
}

func (r *fakeProgressRepo) ListCompletedByUser(ctx context.Context, userID string, limit int) ([]*model.ProgressEntry, error) {
	var entries []*model.ProgressEntry
	for _, e := range r.entries {
		if e.UserID == userID && e.Completed {
			copied := *e
			entries = append(entries, &copied)
		}
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (r *fakeProgressRepo) CountCompletedByUser(ctx context.Context, userID string) (int, error) {
	count := 0
	for _, e := range r.entries {
		if e.UserID == userID && e.Completed {
			count++
		}
	}
	return count, nil
}

// noopTxRunner runs the function without a real transaction; the fakes above
// ignore the tx handle.
type noopTxRunner struct{}

func (noopTxRunner) RunInTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	return fn(nil)
}

// fakeExecutor scripts responses per stdin input.
type fakeExecutor struct {
	results map[string]*model.ExecutionResult
	errs    map[string]error
	calls   int
}

func (f *fakeExecutor) Execute(ctx context.Context, language, code, stdin string) (*model.ExecutionResult, error) {
	f.calls++
	if err, ok := f.errs[stdin]; ok {
		return nil, err
	}
	if res, ok := f.results[stdin]; ok {
		return res, nil
	}
	return &model.ExecutionResult{}, nil
}
