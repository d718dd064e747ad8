package task

import (
	"context"
	"testing"

	"github.com/taskgram/bot/domain"
	"github.com/taskgram/bot/repository/memory"
)

func newEngine() (*UseCase, *memory.TaskStore) {
	store := memory.NewTaskStore()
	return New(store, nil), store
}

func user(id int64) *domain.User {
	return &domain.User{ID: id, TelegramID: id * 100, IsActive: true, State: domain.StateIdle}
}

func TestCreateThenListOpen(t *testing.T) {
	uc, _ := newEngine()
	u := user(1)

	created, err := uc.Create(context.Background(), u, "  Buy milk  ")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.Title != "Buy milk" {
		t.Fatalf("created.Title = %q, want %q", created.Title, "Buy milk")
	}
	if created.Completed {
		t.Fatalf("created.Completed = true, want false")
	}

	open, err := uc.ListOpen(context.Background(), u)
	if err != nil {
		t.Fatalf("ListOpen() error = %v", err)
	}
	if len(open) != 1 || open[0].Title != "Buy milk" || open[0].Completed {
		t.Fatalf("ListOpen() = %+v, want one open task titled %q", open, "Buy milk")
	}
}

func TestCreateRejectsEmptyTitle(t *testing.T) {
	uc, _ := newEngine()

	if _, err := uc.Create(context.Background(), user(1), "   "); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Fatalf("Create() error = %v, want INVALID", err)
	}
}

func TestCreateAllowsDuplicateTitles(t *testing.T) {
	uc, _ := newEngine()
	u := user(1)

	for i := 0; i < 2; i++ {
		if _, err := uc.Create(context.Background(), u, "Call mom"); err != nil {
			t.Fatalf("Create() #%d error = %v", i, err)
		}
	}
	open, _ := uc.ListOpen(context.Background(), u)
	if len(open) != 2 {
		t.Fatalf("len(open) = %d, want 2", len(open))
	}
}

func TestListOpenPreservesInsertionOrder(t *testing.T) {
	uc, _ := newEngine()
	u := user(1)

	titles := []string{"first", "second", "third"}
	for _, title := range titles {
		if _, err := uc.Create(context.Background(), u, title); err != nil {
			t.Fatalf("Create(%q) error = %v", title, err)
		}
	}

	open, _ := uc.ListOpen(context.Background(), u)
	for i, title := range titles {
		if open[i].Title != title {
			t.Fatalf("open[%d].Title = %q, want %q", i, open[i].Title, title)
		}
	}
}

func TestCompleteByTitle(t *testing.T) {
	uc, _ := newEngine()
	u := user(1)
	_, _ = uc.Create(context.Background(), u, "Buy milk")

	done, err := uc.CompleteByTitle(context.Background(), u, "Buy milk")
	if err != nil {
		t.Fatalf("CompleteByTitle() error = %v", err)
	}
	if !done.Completed {
		t.Fatalf("done.Completed = false, want true")
	}

	// The lookup only sees open tasks, so completing the same title
	// again reports NOT_FOUND.
	if _, err := uc.CompleteByTitle(context.Background(), u, "Buy milk"); !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		t.Fatalf("second CompleteByTitle() error = %v, want NOT_FOUND", err)
	}
}

func TestCompleteByTitlePicksEarliestDuplicate(t *testing.T) {
	uc, _ := newEngine()
	u := user(1)
	first, _ := uc.Create(context.Background(), u, "Call mom")
	second, _ := uc.Create(context.Background(), u, "Call mom")

	done, err := uc.CompleteByTitle(context.Background(), u, "Call mom")
	if err != nil {
		t.Fatalf("CompleteByTitle() error = %v", err)
	}
	if done.ID != first.ID {
		t.Fatalf("completed task id = %d, want earliest-created %d", done.ID, first.ID)
	}

	open, _ := uc.ListOpen(context.Background(), u)
	if len(open) != 1 || open[0].ID != second.ID {
		t.Fatalf("remaining open = %+v, want only task %d", open, second.ID)
	}
}

func TestCompleteByTitleScopedToUser(t *testing.T) {
	uc, _ := newEngine()
	owner := user(1)
	other := user(2)
	_, _ = uc.Create(context.Background(), owner, "Buy milk")

	if _, err := uc.CompleteByTitle(context.Background(), other, "Buy milk"); !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		t.Fatalf("CompleteByTitle() for non-owner error = %v, want NOT_FOUND", err)
	}
}

func TestCompleteByPositionIsRecomputedPerCall(t *testing.T) {
	uc, _ := newEngine()
	u := user(1)
	_, _ = uc.Create(context.Background(), u, "a")
	b, _ := uc.Create(context.Background(), u, "b")
	_, _ = uc.Create(context.Background(), u, "c")

	first, err := uc.CompleteByPosition(context.Background(), u, 0)
	if err != nil {
		t.Fatalf("CompleteByPosition(0) error = %v", err)
	}
	if first.Title != "a" {
		t.Fatalf("first completed = %q, want %q", first.Title, "a")
	}

	// Position 0 now targets the former position 1: the offset indexes
	// the freshly recomputed open list, not a persisted ordinal.
	second, err := uc.CompleteByPosition(context.Background(), u, 0)
	if err != nil {
		t.Fatalf("second CompleteByPosition(0) error = %v", err)
	}
	if second.ID != b.ID {
		t.Fatalf("second completed id = %d, want %d", second.ID, b.ID)
	}
}

func TestCompleteByPositionOutOfRange(t *testing.T) {
	uc, _ := newEngine()
	u := user(1)
	_, _ = uc.Create(context.Background(), u, "only")

	if _, err := uc.CompleteByPosition(context.Background(), u, 1); !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		t.Fatalf("CompleteByPosition(1) error = %v, want NOT_FOUND", err)
	}
	if _, err := uc.CompleteByPosition(context.Background(), u, -1); !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		t.Fatalf("CompleteByPosition(-1) error = %v, want NOT_FOUND", err)
	}
}

func TestRemoveByTitleSpansUsers(t *testing.T) {
	uc, _ := newEngine()
	alice := user(1)
	bob := user(2)
	_, _ = uc.Create(context.Background(), alice, "shared chore")
	_, _ = uc.Create(context.Background(), bob, "shared chore")
	_, _ = uc.Create(context.Background(), bob, "keep me")

	if err := uc.RemoveByTitle(context.Background(), "shared chore"); err != nil {
		t.Fatalf("RemoveByTitle() error = %v", err)
	}

	aliceOpen, _ := uc.ListOpen(context.Background(), alice)
	if len(aliceOpen) != 0 {
		t.Fatalf("alice open = %+v, want empty", aliceOpen)
	}
	bobOpen, _ := uc.ListOpen(context.Background(), bob)
	if len(bobOpen) != 1 || bobOpen[0].Title != "keep me" {
		t.Fatalf("bob open = %+v, want only %q", bobOpen, "keep me")
	}

	// Deleting again is a no-op, not an error.
	if err := uc.RemoveByTitle(context.Background(), "shared chore"); err != nil {
		t.Fatalf("repeat RemoveByTitle() error = %v", err)
	}
}
