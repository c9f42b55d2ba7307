package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mrdjohnson/sukistudy/internal/logger"
	"github.com/mrdjohnson/sukistudy/models"
)

type userRepository struct {
	*DB
	notifier
	logger *logger.Logger
}

// NewUserRepository constructs the sqlite-backed singleton user record.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	return &userRepository{DB: db, logger: logger}
}

// Upsert implements [UserRepository]. The profile is always stored under
// [models.LocalUserID] and replaced wholesale.
func (r *userRepository) Upsert(ctx context.Context, user models.User) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin user upsert: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteUserByID, models.LocalUserID); err != nil {
		return fmt.Errorf("delete user before insert: %w", err)
	}

	_, err = tx.ExecContext(ctx, insertUser,
		models.LocalUserID,
		user.Username,
		user.Level,
		user.StartedAt,
	)
	if err != nil {
		r.logger.Err(err).
			Str("func", "userRepository.Upsert").
			Msg("failed to insert user")
		return fmt.Errorf("insert user: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit user upsert: %w", err)
	}

	r.notifyAll()
	return nil
}

// Get implements [UserRepository]. Returns [ErrNotFound] before the first
// sync has stored a profile.
func (r *userRepository) Get(ctx context.Context) (models.User, error) {
	var (
		u         models.User
		startedAt sql.NullTime
	)

	row := r.DB.QueryRowContext(ctx, getUser, models.LocalUserID)
	err := row.Scan(&u.ID, &u.Username, &u.Level, &startedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, fmt.Errorf("user: %w", ErrNotFound)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("scan user row: %w", err)
	}

	u.StartedAt = nullTimePtr(startedAt)
	return u, nil
}

// DeleteAll implements [UserRepository].
func (r *userRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM users;`); err != nil {
		return fmt.Errorf("delete all users: %w", err)
	}
	r.notifyAll()
	return nil
}
