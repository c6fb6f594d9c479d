package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dsaquest/internal/common"
	"dsaquest/internal/domain/model"

	"github.com/jackc/pgx/v5/pgconn"
)

type ProgressRepository interface {
	// MarkCompleted records the completion in a single conditional write.
	// It inserts the entry, or flips an existing not-yet-completed entry to
	// completed. If the pair is already completed it returns
	// common.ErrAlreadyCompleted without touching the row. The unique index
	// on (user_id, problem_slug) is the correctness mechanism; callers may
	// pre-check only as a fast path.
	MarkCompleted(ctx context.Context, tx *sql.Tx, entry *model.ProgressEntry) error

	FindByUserAndSlug(ctx context.Context, userID, problemSlug string) (*model.ProgressEntry, error)
	ListCompletedByUser(ctx context.Context, userID string, limit int) ([]*model.ProgressEntry, error)
	CountCompletedByUser(ctx context.Context, userID string) (int, error)
}

type pgProgressRepository struct {
	db *sql.DB
}

func NewPgProgressRepository(db *sql.DB) ProgressRepository {
	return &pgProgressRepository{db: db}
}

func (r *pgProgressRepository) MarkCompleted(ctx context.Context, tx *sql.Tx, entry *model.ProgressEntry) error {
	query := `INSERT INTO dsa_progress
	              (id, user_id, problem_slug, problem_title, topic, difficulty,
	               completed, points_earned, language, solution, completed_at)
	          VALUES ($1, $2, $3, $4, $5, $6, TRUE, $7, $8, $9, NOW())
	          ON CONFLICT (user_id, problem_slug) DO UPDATE
	          SET completed     = TRUE,
	              problem_title = EXCLUDED.problem_title,
	              topic         = EXCLUDED.topic,
	              difficulty    = EXCLUDED.difficulty,
	              points_earned = EXCLUDED.points_earned,
	              language      = EXCLUDED.language,
	              solution      = EXCLUDED.solution,
	              completed_at  = NOW(),
	              updated_at    = NOW()
	          WHERE dsa_progress.completed = FALSE
	          RETURNING id`
	err := tx.QueryRowContext(ctx, query,
		entry.ID, entry.UserID, entry.ProblemSlug, entry.ProblemTitle, entry.Topic,
		entry.Difficulty, entry.PointsEarned, entry.Language, entry.Solution,
	).Scan(&entry.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// The conflicting row exists and is already completed.
			return common.ErrAlreadyCompleted
		}
		// The ledger is written before the user row is touched, so a missing
		// user surfaces here as a foreign-key violation.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("user %s does not exist: %w", entry.UserID, common.ErrNotFound)
		}
		return fmt.Errorf("pgProgressRepository.MarkCompleted: %w", err)
	}
	return nil
}

func (r *pgProgressRepository) FindByUserAndSlug(ctx context.Context, userID, problemSlug string) (*model.ProgressEntry, error) {
	query := `SELECT id, user_id, problem_slug, problem_title, topic, difficulty,
	                 completed, points_earned, language, solution, completed_at, created_at, updated_at
	          FROM dsa_progress WHERE user_id = $1 AND problem_slug = $2`
	entry := &model.ProgressEntry{}
	err := r.db.QueryRowContext(ctx, query, userID, problemSlug).Scan(
		&entry.ID, &entry.UserID, &entry.ProblemSlug, &entry.ProblemTitle, &entry.Topic,
		&entry.Difficulty, &entry.Completed, &entry.PointsEarned, &entry.Language,
		&entry.Solution, &entry.CompletedAt, &entry.CreatedAt, &entry.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgProgressRepository.FindByUserAndSlug: %w", err)
	}
	return entry, nil
}

func (r *pgProgressRepository) ListCompletedByUser(ctx context.Context, userID string, limit int) ([]*model.ProgressEntry, error) {
	query := `SELECT id, user_id, problem_slug, problem_title, topic, difficulty,
	                 completed, points_earned, language, solution, completed_at, created_at, updated_at
	          FROM dsa_progress
	          WHERE user_id = $1 AND completed = TRUE
	          ORDER BY completed_at DESC`
	args := []interface{}{userID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("pgProgressRepository.ListCompletedByUser: %w", err)
	}
	defer rows.Close()

	var entries []*model.ProgressEntry
	for rows.Next() {
		entry := &model.ProgressEntry{}
		if err := rows.Scan(
			&entry.ID, &entry.UserID, &entry.ProblemSlug, &entry.ProblemTitle, &entry.Topic,
			&entry.Difficulty, &entry.Completed, &entry.PointsEarned, &entry.Language,
			&entry.Solution, &entry.CompletedAt, &entry.CreatedAt, &entry.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("pgProgressRepository.ListCompletedByUser: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (r *pgProgressRepository) CountCompletedByUser(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM dsa_progress WHERE user_id = $1 AND completed = TRUE`, userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("pgProgressRepository.CountCompletedByUser: %w", err)
	}
	return count, nil
}
