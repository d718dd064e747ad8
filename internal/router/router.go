package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/taskgram/bot/api/handler"
)

type Handlers struct {
	Webhook *apiHandler.WebhookHandler
	Health  *apiHandler.HealthHandler
}

func New(handlers Handlers, secretMiddleware func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	r.POST("/webhook", secretMiddleware(handlers.Webhook.Receive))

	return r
}
