// Package sender delivers replies to the Telegram bot API, attaching
// the persistent command keyboard to every message.
package sender

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskgram/bot/api/transport"
	"github.com/taskgram/bot/domain"
	"github.com/taskgram/bot/usecase/dialog"
)

// Telegram posts sendMessage calls over a shared fasthttp client.
type Telegram struct {
	client  *fasthttp.Client
	baseURL string
	token   string
	logger  *zap.Logger
}

func NewTelegram(baseURL, token string, logger *zap.Logger) *Telegram {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Telegram{
		client: &fasthttp.Client{
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		baseURL: baseURL,
		token:   token,
		logger:  logger,
	}
}

// Send delivers one reply. The context deadline bounds the HTTP call.
func (t *Telegram) Send(ctx context.Context, reply domain.Reply) error {
	payload, err := json.Marshal(transport.SendMessage{
		ChatID:      reply.TelegramID,
		Text:        reply.Text,
		ReplyMarkup: mainKeyboard(),
	})
	if err != nil {
		return err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fmt.Sprintf("%s/bot%s/sendMessage", t.baseURL, t.token))
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetBody(payload)

	deadline := time.Now().Add(10 * time.Second)
	if d, ok := ctx.Deadline(); ok {
		deadline = d
	}
	if err := t.client.DoDeadline(req, resp, deadline); err != nil {
		return domain.StoreFailure(err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		t.logger.Warn("bot api rejected sendMessage",
			zap.Int("status", resp.StatusCode()),
			zap.Int64("chat_id", reply.TelegramID))
		return domain.NewError(domain.ErrCodeUnavailable, fmt.Sprintf("bot api status %d", resp.StatusCode()))
	}
	return nil
}

// mainKeyboard mirrors the four-button reply keyboard the bot shows
// under every answer.
func mainKeyboard() *transport.ReplyKeyboardMarkup {
	return &transport.ReplyKeyboardMarkup{
		Keyboard: [][]transport.KeyboardButton{
			{
				{Text: dialog.ButtonAdd},
				{Text: dialog.ButtonTasks},
			},
			{
				{Text: dialog.ButtonComplete},
				{Text: dialog.ButtonDelete},
			},
		},
		ResizeKeyboard: true,
		Selective:      true,
	}
}
