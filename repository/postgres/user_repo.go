package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskgram/bot/domain"
	"github.com/taskgram/bot/repository"
)

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository instantiates a Postgres-backed user repository.
func NewUserRepository(pool *pgxpool.Pool) repository.UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) FindByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	const query = `
	SELECT id, telegram_id, first_name, last_name, username, is_active, state, created_at
	FROM users
	WHERE telegram_id = $1
	`
	row := r.pool.QueryRow(ctx, query, telegramID)

	var user domain.User
	if err := row.Scan(
		&user.ID,
		&user.TelegramID,
		&user.FirstName,
		&user.LastName,
		&user.Username,
		&user.IsActive,
		&user.State,
		&user.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, domain.StoreFailure(err)
	}
	return &user, nil
}

func (r *userRepository) Save(ctx context.Context, user *domain.User) error {
	if user == nil {
		return domain.ErrInvalidEvent
	}

	const query = `
	INSERT INTO users (telegram_id, first_name, last_name, username, is_active, state)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (telegram_id) DO UPDATE
	SET first_name = EXCLUDED.first_name,
		last_name = EXCLUDED.last_name,
		username = EXCLUDED.username,
		is_active = EXCLUDED.is_active,
		state = EXCLUDED.state
	RETURNING id, created_at
	`
	if err := r.pool.QueryRow(ctx, query,
		user.TelegramID,
		user.FirstName,
		user.LastName,
		user.Username,
		user.IsActive,
		user.State,
	).Scan(&user.ID, &user.CreatedAt); err != nil {
		return domain.StoreFailure(err)
	}
	return nil
}
