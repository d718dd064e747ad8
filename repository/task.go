package repository

import (
	"context"

	"github.com/taskgram/bot/domain"
)

// TaskRepository is the durable task store consumed by the engine.
// FindOpenByUser returns tasks in insertion order (ascending id) and an
// empty slice, not an error, when the user has none.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	FindOpenByUser(ctx context.Context, userID int64) ([]domain.Task, error)
	FindByTitleAndCompleted(ctx context.Context, title string, completed bool) (*domain.Task, error)
	Save(ctx context.Context, task *domain.Task) error
	DeleteByTitle(ctx context.Context, title string) error
}
