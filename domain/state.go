package domain

// State marks which multi-step command, if any, awaits a follow-up
// message from the user. It is persisted on the User record so the
// pending step survives across events and across worker instances.
type State string

const (
	// StateIdle means no command is pending; the next message is
	// classified from scratch.
	StateIdle State = "idle"
	// StateAwaitingAddTitle means the next message is consumed whole as
	// the title of a new task.
	StateAwaitingAddTitle State = "awaiting_add_title"
	// StateAwaitingDoneTarget means the next message names the task to
	// complete, by title or by list position.
	StateAwaitingDoneTarget State = "awaiting_done_target"
	// StateAwaitingDeleteTarget means the next message names the title
	// to delete.
	StateAwaitingDeleteTarget State = "awaiting_delete_target"
)
