package repository

import "context"

// UpdateGuard remembers processed update ids so webhook redeliveries do
// not replay a conversation step. MarkProcessed reports false when the
// id was already marked.
type UpdateGuard interface {
	MarkProcessed(ctx context.Context, updateID int64) (bool, error)
}
