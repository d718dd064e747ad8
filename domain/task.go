package domain

import "time"

// Task represents a user-owned to-do item. The title is never updated
// after creation; the completed flag flips from false to true exactly once.
type Task struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

// StatusLabel returns the human-readable status used in task listings.
func (t *Task) StatusLabel() string {
	if t != nil && t.Completed {
		return "done"
	}
	return "in progress"
}
