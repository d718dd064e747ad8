// Package memory provides in-memory store implementations used by tests
// and local runs without Postgres.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/taskgram/bot/domain"
	"github.com/taskgram/bot/repository"
)

// TaskStore is an in-memory TaskRepository. Insertion order is the
// ascending id order, matching the Postgres implementation.
type TaskStore struct {
	mu     sync.Mutex
	nextID int64
	tasks  map[int64]*domain.Task
}

func NewTaskStore() *TaskStore {
	return &TaskStore{
		nextID: 1,
		tasks:  make(map[int64]*domain.Task),
	}
}

func (s *TaskStore) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if task == nil {
		return nil, domain.ErrInvalidEvent
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *task
	stored.ID = s.nextID
	stored.CreatedAt = time.Now()
	s.nextID++
	s.tasks[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (s *TaskStore) FindOpenByUser(ctx context.Context, userID int64) ([]domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var tasks []domain.Task
	for _, task := range s.tasks {
		if task.UserID == userID && !task.Completed {
			tasks = append(tasks, *task)
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks, nil
}

func (s *TaskStore) FindByTitleAndCompleted(ctx context.Context, title string, completed bool) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var match *domain.Task
	for _, task := range s.tasks {
		if task.Title != title || task.Completed != completed {
			continue
		}
		if match == nil || task.ID < match.ID {
			match = task
		}
	}
	if match == nil {
		return nil, domain.ErrTaskNotFound
	}
	out := *match
	return &out, nil
}

func (s *TaskStore) Save(ctx context.Context, task *domain.Task) error {
	if task == nil {
		return domain.ErrInvalidEvent
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.tasks[task.ID]
	if !ok {
		return domain.ErrTaskNotFound
	}
	stored.Title = task.Title
	stored.Completed = task.Completed
	return nil
}

func (s *TaskStore) DeleteByTitle(ctx context.Context, title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, task := range s.tasks {
		if task.Title == title {
			delete(s.tasks, id)
		}
	}
	return nil
}

// UserStore is an in-memory UserRepository keyed by Telegram user id.
type UserStore struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*domain.User
}

func NewUserStore() *UserStore {
	return &UserStore{
		nextID: 1,
		users:  make(map[int64]*domain.User),
	}
}

func (s *UserStore) FindByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[telegramID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := *user
	return &out, nil
}

func (s *UserStore) Save(ctx context.Context, user *domain.User) error {
	if user == nil {
		return domain.ErrInvalidEvent
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.users[user.TelegramID]; ok {
		user.ID = existing.ID
		user.CreatedAt = existing.CreatedAt
	} else {
		user.ID = s.nextID
		user.CreatedAt = time.Now()
		s.nextID++
	}
	stored := *user
	s.users[user.TelegramID] = &stored
	return nil
}

// UpdateGuard is an in-memory processed-update marker.
type UpdateGuard struct {
	mu   sync.Mutex
	seen map[int64]struct{}
}

func NewUpdateGuard() *UpdateGuard {
	return &UpdateGuard{seen: make(map[int64]struct{})}
}

func (g *UpdateGuard) MarkProcessed(ctx context.Context, updateID int64) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.seen[updateID]; ok {
		return false, nil
	}
	g.seen[updateID] = struct{}{}
	return true, nil
}

var (
	_ repository.TaskRepository = (*TaskStore)(nil)
	_ repository.UserRepository = (*UserStore)(nil)
	_ repository.UpdateGuard    = (*UpdateGuard)(nil)
)
