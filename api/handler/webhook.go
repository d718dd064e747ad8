package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskgram/bot/api/transport"
	"github.com/taskgram/bot/domain"
	"github.com/taskgram/bot/internal/infrastructure/journal"
	"github.com/taskgram/bot/pkg/httpcontext"
	appLogger "github.com/taskgram/bot/pkg/logger"
	"github.com/taskgram/bot/repository"
	"github.com/taskgram/bot/usecase/dialog"
	"github.com/taskgram/bot/usecase/reply"
)

// ReplySender delivers the outbound answer to the chat platform.
type ReplySender interface {
	Send(ctx context.Context, reply domain.Reply) error
}

type WebhookHandler struct {
	baseHandler
	dispatcher *dialog.Dispatcher
	sender     ReplySender
	journal    *journal.Store
	guard      repository.UpdateGuard
}

func NewWebhookHandler(
	dispatcher *dialog.Dispatcher,
	sender ReplySender,
	journalStore *journal.Store,
	guard repository.UpdateGuard,
	adapter *httpcontext.Adapter,
	logger *zap.Logger,
) *WebhookHandler {
	return &WebhookHandler{
		baseHandler: newBaseHandler(adapter, logger),
		dispatcher:  dispatcher,
		sender:      sender,
		journal:     journalStore,
		guard:       guard,
	}
}

// Receive handles one webhook delivery. The platform redelivers
// anything not answered with 200, so every recognized update is acked
// even when downstream work fails; the user-facing outcome travels in
// the reply message, not the HTTP status.
func (h *WebhookHandler) Receive(ctx *fasthttp.RequestCtx) {
	body := ctx.PostBody()

	var update transport.Update
	if err := json.Unmarshal(body, &update); err != nil {
		h.respondError(ctx, domain.WrapError(domain.ErrCodeInvalid, "malformed update", err))
		return
	}

	event, ok := update.Event(body)
	if !ok {
		// Edited messages, channel posts and other update kinds the
		// bot does not handle are acked and skipped.
		h.respondSuccess(ctx, http.StatusOK, nil)
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()
	log := appLogger.WithRequestID(stdCtx, h.logger)

	if h.guard != nil {
		first, err := h.guard.MarkProcessed(stdCtx, event.UpdateID)
		if err != nil {
			log.Warn("update dedupe unavailable, processing anyway",
				zap.Int64("update_id", event.UpdateID), zap.Error(err))
		} else if !first {
			log.Debug("duplicate update skipped", zap.Int64("update_id", event.UpdateID))
			h.respondSuccess(ctx, http.StatusOK, nil)
			return
		}
	}

	if h.journal != nil {
		if err := h.journal.Append(journal.Record{UpdateID: event.UpdateID, Payload: event.Raw}); err != nil {
			log.Warn("failed to journal update",
				zap.Int64("update_id", event.UpdateID), zap.Error(err))
		}
	}

	answer, err := h.dispatcher.Process(stdCtx, event)
	if err != nil {
		// Conversation state was left untouched; the retry re-enters
		// the same step.
		log.Error("dispatch failed",
			zap.Int64("update_id", event.UpdateID),
			zap.Int64("telegram_id", event.TelegramID),
			zap.Error(err))
		answer = domain.Reply{TelegramID: event.TelegramID, Text: reply.GenericFailure}
	}

	if err := h.sender.Send(stdCtx, answer); err != nil {
		log.Error("failed to send reply",
			zap.Int64("telegram_id", answer.TelegramID), zap.Error(err))
	}

	h.respondSuccess(ctx, http.StatusOK, nil)
}
