package middleware

import (
	"crypto/subtle"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

const secretHeader = "X-Telegram-Bot-Api-Secret-Token"

// WebhookSecret rejects deliveries that do not carry the secret token
// configured at webhook registration. An empty secret disables the
// check (local development).
func WebhookSecret(secret string, logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		if secret == "" {
			return next
		}
		return func(ctx *fasthttp.RequestCtx) {
			provided := ctx.Request.Header.Peek(secretHeader)
			if subtle.ConstantTimeCompare(provided, []byte(secret)) != 1 {
				logger.Warn("webhook delivery with bad secret token",
					zap.String("remote_addr", ctx.RemoteAddr().String()))
				ctx.SetStatusCode(fasthttp.StatusUnauthorized)
				return
			}
			next(ctx)
		}
	}
}
