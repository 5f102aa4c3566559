package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/news-comments-api/internal/database"
	"github.com/news-comments-api/internal/models"
	"github.com/news-comments-api/internal/validation"
)

// uniqueViolation is the Postgres error code raised by the unique index on
// LOWER(username) when two first-time submissions race.
const uniqueViolation = "23505"

// userRepo is the concrete implementation of UserRepository
type userRepo struct {
	db *database.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *database.DB) UserRepository {
	return &userRepo{db: db}
}

// Resolve returns the user with the given display name, creating the row on
// first sighting. The name is trimmed of surrounding whitespace and matched
// case-insensitively: " Alice" and "alice" resolve to the same id. Concurrent
// first-time submissions of one name serialize on the unique index; the loser
// re-reads the winner's row instead of failing.
func (r *userRepo) Resolve(ctx context.Context, username string) (*models.User, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, err
	}
	username = strings.TrimSpace(username)

	user, err := r.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	query := `
		INSERT INTO users (username)
		VALUES ($1)
		ON CONFLICT (LOWER(username)) DO NOTHING
		RETURNING id, username, created_at
	`
	var created models.User
	err = r.db.QueryRowContext(ctx, query, username).Scan(
		&created.ID, &created.Username, &created.CreatedAt,
	)
	if err == sql.ErrNoRows {
		// Lost the race; the conflicting insert has committed by the time
		// DO NOTHING returns, so the winner's row is visible now.
		return r.reResolve(ctx, username)
	}
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolation {
			return r.reResolve(ctx, username)
		}
		return nil, err
	}

	return &created, nil
}

func (r *userRepo) reResolve(ctx context.Context, username string) (*models.User, error) {
	user, err := r.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %q not visible after insert conflict", username)
	}
	return user, nil
}

// GetByUsername retrieves a user by display name, case-insensitively.
// Returns nil without error when no such user exists.
func (r *userRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT id, username, created_at FROM users WHERE LOWER(username) = LOWER($1)`

	var user models.User
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// List retrieves all users ordered by id
func (r *userRepo) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, username, created_at FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Username, &user.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// Count returns the total number of users
func (r *userRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&count)
	return count, err
}
