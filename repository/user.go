package repository

import (
	"context"

	"github.com/taskgram/bot/domain"
)

// UserRepository is the durable user store. Save inserts on first sight
// and updates in place afterwards; FindByTelegramID returns
// domain.ErrUserNotFound for unseen identities.
type UserRepository interface {
	FindByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error)
	Save(ctx context.Context, user *domain.User) error
}
