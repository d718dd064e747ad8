package lifecycle

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestShutdownRunsHooksInReverseOrder(t *testing.T) {
	m := New(time.Second, nil)

	var order []string
	m.Register("first", func(ctx context.Context) error {
		order = append(order, "first")
		return nil
	})
	m.Register("second", func(ctx context.Context) error {
		order = append(order, "second")
		return nil
	})

	if err := m.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	if len(order) != 2 || order[0] != "second" || order[1] != "first" {
		t.Fatalf("hook order = %v, want [second first]", order)
	}
}

func TestShutdownCollectsHookErrors(t *testing.T) {
	m := New(time.Second, nil)

	hookErr := errors.New("close failed")
	m.Register("bad", func(ctx context.Context) error {
		return hookErr
	})
	ran := false
	m.Register("good", func(ctx context.Context) error {
		ran = true
		return nil
	})

	err := m.Shutdown(context.Background())
	if !errors.Is(err, hookErr) {
		t.Fatalf("Shutdown() error = %v, want wrapped %v", err, hookErr)
	}
	if !ran {
		t.Fatalf("remaining hooks skipped after failure")
	}
}

func TestRegisterIgnoresNilHook(t *testing.T) {
	m := New(time.Second, nil)
	m.Register("nil", nil)

	if err := m.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
}
