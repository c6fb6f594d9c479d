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

// RankUpdate carries one recomputed rank to be written back onto a user record.
type RankUpdate struct {
	UserID string
	Rank   int
}

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateProfile(ctx context.Context, id string, username, avatar, bio *string) (*model.User, error)

	// ApplyCompletion atomically increments points and the per-difficulty
	// counters inside the caller's transaction. The increments happen in the
	// store, never as an application-side read-modify-write.
	ApplyCompletion(ctx context.Context, tx *sql.Tx, userID string, points, easy, medium, hard int) error

	// ListWithPoints returns every user with points > 0, sorted descending
	// by (points, total_completed).
	ListWithPoints(ctx context.Context, limit int) ([]*model.User, error)
	UpdateRanks(ctx context.Context, updates []RankUpdate) error
}

type pgUserRepository struct {
	db *sql.DB
}

func NewPgUserRepository(db *sql.DB) UserRepository {
	return &pgUserRepository{db: db}
}

const userColumns = `id, username, email, hashed_password, role, avatar, bio, points, rank,
	easy_completed, medium_completed, hard_completed, total_completed, created_at, updated_at`

func scanUser(row interface{ Scan(...interface{}) error }) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.HashedPassword, &user.Role,
		&user.Avatar, &user.Bio, &user.Points, &user.Rank,
		&user.Stats.EasyCompleted, &user.Stats.MediumCompleted, &user.Stats.HardCompleted,
		&user.Stats.TotalCompleted, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *pgUserRepository) Create(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (id, username, email, hashed_password, role, avatar, bio)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Username, user.Email, user.HashedPassword, user.Role, user.Avatar, user.Bio)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique constraint violation
			return fmt.Errorf("user with given username or email already exists: %w", common.ErrConflict)
		}
		return fmt.Errorf("pgUserRepository.Create: %w", err)
	}
	return nil
}

func (r *pgUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgUserRepository.FindByID: %w", err)
	}
	return user, nil
}

func (r *pgUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	user, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgUserRepository.FindByEmail: %w", err)
	}
	return user, nil
}

func (r *pgUserRepository) UpdateProfile(ctx context.Context, id string, username, avatar, bio *string) (*model.User, error) {
	query := `UPDATE users
	          SET username = COALESCE($2, username),
	              avatar   = COALESCE($3, avatar),
	              bio      = COALESCE($4, bio),
	              updated_at = NOW()
	          WHERE id = $1
	          RETURNING ` + userColumns
	user, err := scanUser(r.db.QueryRowContext(ctx, query, id, username, avatar, bio))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("username already taken: %w", common.ErrConflict)
		}
		return nil, fmt.Errorf("pgUserRepository.UpdateProfile: %w", err)
	}
	return user, nil
}

func (r *pgUserRepository) ApplyCompletion(ctx context.Context, tx *sql.Tx, userID string, points, easy, medium, hard int) error {
	query := `UPDATE users
	          SET points = points + $2,
	              easy_completed   = easy_completed + $3,
	              medium_completed = medium_completed + $4,
	              hard_completed   = hard_completed + $5,
	              total_completed  = total_completed + $6,
	              updated_at = NOW()
	          WHERE id = $1`
	res, err := tx.ExecContext(ctx, query, userID, points, easy, medium, hard, easy+medium+hard)
	if err != nil {
		return fmt.Errorf("pgUserRepository.ApplyCompletion: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgUserRepository.ApplyCompletion: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgUserRepository) ListWithPoints(ctx context.Context, limit int) ([]*model.User, error) {
	query := `SELECT ` + userColumns + `
	          FROM users WHERE points > 0
	          ORDER BY points DESC, total_completed DESC`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("pgUserRepository.ListWithPoints: %w", err)
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("pgUserRepository.ListWithPoints: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *pgUserRepository) UpdateRanks(ctx context.Context, updates []RankUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("pgUserRepository.UpdateRanks: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `UPDATE users SET rank = $2 WHERE id = $1`)
	if err != nil {
		return fmt.Errorf("pgUserRepository.UpdateRanks: %w", err)
	}
	defer stmt.Close()

	for _, u := range updates {
		if _, err := stmt.ExecContext(ctx, u.UserID, u.Rank); err != nil {
			return fmt.Errorf("pgUserRepository.UpdateRanks: %w", err)
		}
	}
	return tx.Commit()
}
