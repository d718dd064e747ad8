// Package dialog owns the per-user conversation state machine. It
// classifies each inbound event, routes it to the task engine or to a
// canned answer, and produces exactly one reply.
package dialog

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/taskgram/bot/domain"
	"github.com/taskgram/bot/repository"
	"github.com/taskgram/bot/usecase/reply"
	taskUC "github.com/taskgram/bot/usecase/task"
)

// Dispatcher maps (inbound event, conversation state) to (store
// mutation, reply, new conversation state). It holds no per-user state
// of its own: the pending step lives on the User record, so any worker
// instance can serve the next event.
type Dispatcher struct {
	users  repository.UserRepository
	engine *taskUC.UseCase
	files  FileSink
	logger *zap.Logger
}

func New(users repository.UserRepository, engine *taskUC.UseCase, files FileSink, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if files == nil {
		files = NopFileSink{}
	}
	return &Dispatcher{
		users:  users,
		engine: engine,
		files:  files,
		logger: logger,
	}
}

// Process handles one inbound event and returns the reply to send. A
// non-nil error means a collaborator failed; conversation state is left
// untouched in that case and the caller answers with the generic
// failure text, so the user's retry re-enters the same step.
func (d *Dispatcher) Process(ctx context.Context, event domain.InboundEvent) (domain.Reply, error) {
	user, err := d.findOrCreateUser(ctx, event)
	if err != nil {
		return domain.Reply{}, err
	}

	var text string
	if event.HasAttachment() {
		text, err = d.processAttachment(ctx, user, event)
	} else {
		text, err = d.processText(ctx, user, event.Text)
	}
	if err != nil {
		return domain.Reply{}, err
	}
	return domain.Reply{TelegramID: event.TelegramID, Text: text}, nil
}

// processText evaluates the dispatch rules in strict precedence order:
// /cancel first, then the pending-state continuations, then idle
// classification.
func (d *Dispatcher) processText(ctx context.Context, user *domain.User, text string) (string, error) {
	if text == string(CommandCancel) {
		if err := d.transition(ctx, user, domain.StateIdle); err != nil {
			return "", err
		}
		return reply.Cancelled, nil
	}

	switch user.State {
	case domain.StateAwaitingAddTitle:
		return d.addTask(ctx, user, text, true)
	case domain.StateAwaitingDoneTarget:
		return d.completeTask(ctx, user, text, true)
	case domain.StateAwaitingDeleteTarget:
		return d.deleteTask(ctx, user, text, true)
	case domain.StateIdle:
		return d.processIdle(ctx, user, text)
	default:
		d.logger.Error("unknown conversation state",
			zap.Int64("user_id", user.ID),
			zap.String("state", string(user.State)))
		return reply.UnknownError, nil
	}
}

func (d *Dispatcher) processIdle(ctx context.Context, user *domain.User, text string) (string, error) {
	in := classify(text)
	if in.kind == inputFreeText {
		return reply.Help, nil
	}

	switch in.command {
	case CommandHelp:
		return reply.Help, nil
	case CommandStart:
		return reply.Start, nil
	case CommandRegistration:
		return reply.Registration, nil
	case CommandTasks:
		tasks, err := d.engine.ListOpen(ctx, user)
		if err != nil {
			return "", err
		}
		return reply.TaskList(tasks), nil
	case CommandAdd:
		if in.arg == "" {
			if err := d.transition(ctx, user, domain.StateAwaitingAddTitle); err != nil {
				return "", err
			}
			return reply.PromptAddTitle, nil
		}
		return d.addTask(ctx, user, in.arg, false)
	case CommandDone:
		if in.arg == "" {
			if err := d.transition(ctx, user, domain.StateAwaitingDoneTarget); err != nil {
				return "", err
			}
			return reply.PromptDoneTarget, nil
		}
		return d.completeTask(ctx, user, in.arg, false)
	case CommandDelete:
		if in.arg == "" {
			if err := d.transition(ctx, user, domain.StateAwaitingDeleteTarget); err != nil {
				return "", err
			}
			return reply.PromptDeleteTarget, nil
		}
		return d.deleteTask(ctx, user, in.arg, false)
	default:
		return reply.Help, nil
	}
}

// addTask creates the task and, when the title arrived as a pending
// continuation, resets the state afterwards. The mutation goes first:
// a store failure propagates with the Awaiting* state untouched.
func (d *Dispatcher) addTask(ctx context.Context, user *domain.User, title string, resetState bool) (string, error) {
	created, err := d.engine.Create(ctx, user, title)
	if err != nil && !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		return "", err
	}
	if resetState {
		if trErr := d.transition(ctx, user, domain.StateIdle); trErr != nil {
			return "", trErr
		}
	}
	if err != nil {
		return reply.EmptyTitle, nil
	}
	return reply.TaskAdded(created.Title), nil
}

func (d *Dispatcher) completeTask(ctx context.Context, user *domain.User, target string, resetState bool) (string, error) {
	var err error
	if isPosition(target) {
		position, _ := strconv.Atoi(target)
		_, err = d.engine.CompleteByPosition(ctx, user, position)
	} else {
		_, err = d.engine.CompleteByTitle(ctx, user, target)
	}
	if err != nil && !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		return "", err
	}
	if resetState {
		if trErr := d.transition(ctx, user, domain.StateIdle); trErr != nil {
			return "", trErr
		}
	}
	if err != nil {
		return reply.TaskNotFound, nil
	}
	return reply.TaskCompleted, nil
}

func (d *Dispatcher) deleteTask(ctx context.Context, user *domain.User, title string, resetState bool) (string, error) {
	if err := d.engine.RemoveByTitle(ctx, title); err != nil {
		return "", err
	}
	if resetState {
		if err := d.transition(ctx, user, domain.StateIdle); err != nil {
			return "", err
		}
	}
	return reply.TaskDeleted, nil
}

// processAttachment gates non-text events: the user must be active and
// must not be in the middle of a multi-step command. The check is a
// precondition, independent of text classification.
func (d *Dispatcher) processAttachment(ctx context.Context, user *domain.User, event domain.InboundEvent) (string, error) {
	if !user.Active() {
		return reply.InactiveUser, nil
	}
	if user.State != domain.StateIdle {
		return reply.BusyUser, nil
	}

	link, err := d.files.Store(ctx, event)
	if err != nil {
		d.logger.Error("file upload failed",
			zap.Int64("user_id", user.ID),
			zap.String("kind", string(event.Attachment)),
			zap.Error(err))
		return reply.UploadFailed, nil
	}
	return reply.UploadAccepted(event.Attachment, link), nil
}

func (d *Dispatcher) findOrCreateUser(ctx context.Context, event domain.InboundEvent) (*domain.User, error) {
	user, err := d.users.FindByTelegramID(ctx, event.TelegramID)
	if err == nil {
		return user, nil
	}
	if !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		return nil, err
	}

	user = &domain.User{
		TelegramID: event.TelegramID,
		FirstName:  event.FirstName,
		LastName:   event.LastName,
		Username:   event.Username,
		IsActive:   true,
		State:      domain.StateIdle,
	}
	if err := d.users.Save(ctx, user); err != nil {
		return nil, err
	}
	d.logger.Info("user created", zap.Int64("telegram_id", user.TelegramID))
	return user, nil
}

func (d *Dispatcher) transition(ctx context.Context, user *domain.User, state domain.State) error {
	previous := user.State
	user.State = state
	if err := d.users.Save(ctx, user); err != nil {
		user.State = previous
		return err
	}
	return nil
}
