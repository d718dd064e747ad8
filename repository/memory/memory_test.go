package memory

import (
	"context"
	"testing"

	"github.com/taskgram/bot/domain"
)

func TestTaskStoreInsertionOrder(t *testing.T) {
	store := NewTaskStore()
	for _, title := range []string{"a", "b", "c"} {
		if _, err := store.Create(context.Background(), &domain.Task{UserID: 1, Title: title}); err != nil {
			t.Fatalf("Create(%q) error = %v", title, err)
		}
	}

	open, err := store.FindOpenByUser(context.Background(), 1)
	if err != nil {
		t.Fatalf("FindOpenByUser() error = %v", err)
	}
	if len(open) != 3 {
		t.Fatalf("len(open) = %d, want 3", len(open))
	}
	for i, want := range []string{"a", "b", "c"} {
		if open[i].Title != want {
			t.Fatalf("open[%d].Title = %q, want %q", i, open[i].Title, want)
		}
	}
}

func TestTaskStoreFindByTitleAndCompletedPicksLowestID(t *testing.T) {
	store := NewTaskStore()
	first, _ := store.Create(context.Background(), &domain.Task{UserID: 1, Title: "dup"})
	_, _ = store.Create(context.Background(), &domain.Task{UserID: 2, Title: "dup"})

	found, err := store.FindByTitleAndCompleted(context.Background(), "dup", false)
	if err != nil {
		t.Fatalf("FindByTitleAndCompleted() error = %v", err)
	}
	if found.ID != first.ID {
		t.Fatalf("found.ID = %d, want %d", found.ID, first.ID)
	}

	if _, err := store.FindByTitleAndCompleted(context.Background(), "dup", true); !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		t.Fatalf("completed lookup error = %v, want NOT_FOUND", err)
	}
}

func TestTaskStoreDeleteByTitleIsGlobal(t *testing.T) {
	store := NewTaskStore()
	_, _ = store.Create(context.Background(), &domain.Task{UserID: 1, Title: "chore"})
	_, _ = store.Create(context.Background(), &domain.Task{UserID: 2, Title: "chore"})
	keep, _ := store.Create(context.Background(), &domain.Task{UserID: 2, Title: "other"})

	if err := store.DeleteByTitle(context.Background(), "chore"); err != nil {
		t.Fatalf("DeleteByTitle() error = %v", err)
	}
	if err := store.DeleteByTitle(context.Background(), "chore"); err != nil {
		t.Fatalf("repeat DeleteByTitle() error = %v", err)
	}

	open, _ := store.FindOpenByUser(context.Background(), 2)
	if len(open) != 1 || open[0].ID != keep.ID {
		t.Fatalf("remaining = %+v, want only task %d", open, keep.ID)
	}
}

func TestTaskStoreSaveUnknownTask(t *testing.T) {
	store := NewTaskStore()
	err := store.Save(context.Background(), &domain.Task{ID: 99, Title: "ghost"})
	if !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		t.Fatalf("Save() error = %v, want NOT_FOUND", err)
	}
}

func TestUserStoreUpsertKeepsIdentity(t *testing.T) {
	store := NewUserStore()
	user := &domain.User{TelegramID: 42, FirstName: "Ada", IsActive: true, State: domain.StateIdle}
	if err := store.Save(context.Background(), user); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	firstID := user.ID

	user.State = domain.StateAwaitingAddTitle
	if err := store.Save(context.Background(), user); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}
	if user.ID != firstID {
		t.Fatalf("user.ID changed from %d to %d on update", firstID, user.ID)
	}

	loaded, err := store.FindByTelegramID(context.Background(), 42)
	if err != nil {
		t.Fatalf("FindByTelegramID() error = %v", err)
	}
	if loaded.State != domain.StateAwaitingAddTitle {
		t.Fatalf("loaded.State = %q, want %q", loaded.State, domain.StateAwaitingAddTitle)
	}
}

func TestUserStoreUnknownIdentity(t *testing.T) {
	store := NewUserStore()
	if _, err := store.FindByTelegramID(context.Background(), 7); !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		t.Fatalf("FindByTelegramID() error = %v, want NOT_FOUND", err)
	}
}

func TestUpdateGuardMarksOnce(t *testing.T) {
	guard := NewUpdateGuard()

	first, err := guard.MarkProcessed(context.Background(), 1001)
	if err != nil {
		t.Fatalf("MarkProcessed() error = %v", err)
	}
	if !first {
		t.Fatalf("first MarkProcessed() = false, want true")
	}

	second, err := guard.MarkProcessed(context.Background(), 1001)
	if err != nil {
		t.Fatalf("second MarkProcessed() error = %v", err)
	}
	if second {
		t.Fatalf("second MarkProcessed() = true, want false")
	}
}
