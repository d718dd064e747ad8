// Package task implements the task-management engine: create, list,
// complete and delete operations scoped to a user.
package task

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/taskgram/bot/domain"
	"github.com/taskgram/bot/repository"
)

type UseCase struct {
	tasks  repository.TaskRepository
	logger *zap.Logger
}

func New(tasks repository.TaskRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:  tasks,
		logger: logger,
	}
}

// Create inserts a new open task for the user. The title is trimmed;
// an empty result is rejected with an INVALID error. Duplicate titles
// are allowed.
func (uc *UseCase) Create(ctx context.Context, user *domain.User, title string) (*domain.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domain.ErrEmptyTitle
	}

	created, err := uc.tasks.Create(ctx, &domain.Task{
		UserID: user.ID,
		Title:  title,
	})
	if err != nil {
		return nil, err
	}
	uc.logger.Info("task created",
		zap.Int64("user_id", user.ID),
		zap.Int64("task_id", created.ID))
	return created, nil
}

// ListOpen returns the user's open tasks in insertion order. A user
// without tasks gets an empty slice, not an error.
func (uc *UseCase) ListOpen(ctx context.Context, user *domain.User) ([]domain.Task, error) {
	return uc.tasks.FindOpenByUser(ctx, user.ID)
}

// CompleteByTitle marks as done the earliest-created open task of the
// user whose title matches exactly. Completed tasks are invisible to
// the lookup, so completing the same title twice yields NOT_FOUND.
func (uc *UseCase) CompleteByTitle(ctx context.Context, user *domain.User, title string) (*domain.Task, error) {
	open, err := uc.tasks.FindOpenByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	for i := range open {
		if open[i].Title == title {
			return uc.complete(ctx, &open[i])
		}
	}
	return nil, domain.ErrTaskNotFound
}

// CompleteByPosition marks as done the task at the 0-based offset into
// the freshly recomputed open-task list. The offset is not a persisted
// ordinal: any completion or deletion shifts the positions after it, so
// the same index can target different tasks across calls.
func (uc *UseCase) CompleteByPosition(ctx context.Context, user *domain.User, position int) (*domain.Task, error) {
	open, err := uc.tasks.FindOpenByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if position < 0 || position >= len(open) {
		return nil, domain.ErrTaskNotFound
	}
	return uc.complete(ctx, &open[position])
}

// RemoveByTitle deletes every task matching the title exactly, across
// all users. Deleting a title nobody has is a no-op.
func (uc *UseCase) RemoveByTitle(ctx context.Context, title string) error {
	if err := uc.tasks.DeleteByTitle(ctx, title); err != nil {
		return err
	}
	uc.logger.Info("tasks removed", zap.String("title", title))
	return nil
}

func (uc *UseCase) complete(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	task.Completed = true
	if err := uc.tasks.Save(ctx, task); err != nil {
		return nil, err
	}
	uc.logger.Info("task completed",
		zap.Int64("user_id", task.UserID),
		zap.Int64("task_id", task.ID))
	return task, nil
}
