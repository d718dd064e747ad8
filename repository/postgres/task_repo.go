package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskgram/bot/domain"
	"github.com/taskgram/bot/repository"
)

type taskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository returns a Postgres-backed implementation of TaskRepository.
func NewTaskRepository(pool *pgxpool.Pool) repository.TaskRepository {
	return &taskRepository{pool: pool}
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if task == nil {
		return nil, domain.ErrInvalidEvent
	}

	const query = `
	INSERT INTO tasks (user_id, title, completed)
	VALUES ($1, $2, $3)
	RETURNING id, created_at
	`
	if err := r.pool.QueryRow(ctx, query,
		task.UserID,
		task.Title,
		task.Completed,
	).Scan(&task.ID, &task.CreatedAt); err != nil {
		return nil, domain.StoreFailure(err)
	}
	return task, nil
}

func (r *taskRepository) FindOpenByUser(ctx context.Context, userID int64) ([]domain.Task, error) {
	const query = `
	SELECT id, user_id, title, completed, created_at
	FROM tasks
	WHERE user_id = $1 AND completed = FALSE
	ORDER BY id ASC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, domain.StoreFailure(err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StoreFailure(err)
	}
	return tasks, nil
}

func (r *taskRepository) FindByTitleAndCompleted(ctx context.Context, title string, completed bool) (*domain.Task, error) {
	const query = `
	SELECT id, user_id, title, completed, created_at
	FROM tasks
	WHERE title = $1 AND completed = $2
	ORDER BY id ASC
	LIMIT 1
	`
	row := r.pool.QueryRow(ctx, query, title, completed)
	return scanTask(row)
}

func (r *taskRepository) Save(ctx context.Context, task *domain.Task) error {
	if task == nil {
		return domain.ErrInvalidEvent
	}

	const query = `
	UPDATE tasks
	SET title = $2,
		completed = $3
	WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query, task.ID, task.Title, task.Completed)
	if err != nil {
		return domain.StoreFailure(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *taskRepository) DeleteByTitle(ctx context.Context, title string) error {
	// Matches every task with that title across all users. Deleting
	// nothing is not an error.
	const query = `DELETE FROM tasks WHERE title = $1`
	if _, err := r.pool.Exec(ctx, query, title); err != nil {
		return domain.StoreFailure(err)
	}
	return nil
}

func scanTask(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Task, error) {
	var task domain.Task
	if err := row.Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&task.Completed,
		&task.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, domain.StoreFailure(err)
	}
	return &task, nil
}
