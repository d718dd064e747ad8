package main

import (
	"context"
	"log"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/taskgram/bot/api/handler"
	"github.com/taskgram/bot/internal/config"
	"github.com/taskgram/bot/internal/infrastructure/journal"
	"github.com/taskgram/bot/internal/infrastructure/monitor"
	pgInfra "github.com/taskgram/bot/internal/infrastructure/postgres"
	redisInfra "github.com/taskgram/bot/internal/infrastructure/redis"
	"github.com/taskgram/bot/internal/middleware"
	"github.com/taskgram/bot/internal/router"
	"github.com/taskgram/bot/internal/sender"
	"github.com/taskgram/bot/internal/services"
	"github.com/taskgram/bot/internal/services/lifecycle"
	"github.com/taskgram/bot/pkg/httpcontext"
	"github.com/taskgram/bot/pkg/logger"
	"github.com/taskgram/bot/repository/postgres"
	redisRepo "github.com/taskgram/bot/repository/redis"
	"github.com/taskgram/bot/usecase/dialog"
	taskUC "github.com/taskgram/bot/usecase/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	if err := pgInfra.RunMigrations(cfg, zapLogger); err != nil {
		zapLogger.Fatal("migrations failed", zap.Error(err))
	}

	pool, err := pgInfra.NewPool(appCtx, cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("postgres connection failed", zap.Error(err))
	}
	manager.Register("postgres", func(ctx context.Context) error {
		pool.Close()
		return nil
	})

	redisClient, err := redisInfra.NewClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("redis connection failed", zap.Error(err))
	}
	manager.Register("redis", func(ctx context.Context) error {
		return redisClient.Close()
	})

	journalStore, err := journal.Open(cfg.Journal.Path, "updates")
	if err != nil {
		zapLogger.Fatal("failed to open update journal", zap.Error(err))
	}
	manager.Register("journal", func(ctx context.Context) error {
		return journalStore.Close()
	})

	mon := monitor.New(pool, redisClient, journalStore, 10*time.Second, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	sweeper := services.NewRetentionSweeper(journalStore, zapLogger, services.SweeperConfig{
		Interval:  cfg.Journal.SweepInterval,
		Retention: time.Duration(cfg.Journal.RetentionHours) * time.Hour,
	})
	sweeper.Start()
	manager.Register("retention_sweeper", func(ctx context.Context) error {
		sweeper.Stop()
		return nil
	})

	userRepo := postgres.NewUserRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	updateGuard := redisRepo.NewUpdateGuard(redisClient, cfg.Bot.DedupeTTL)

	engine := taskUC.New(taskRepo, zapLogger)
	dispatcher := dialog.New(
		userRepo,
		engine,
		dialog.StaticLinkSink{BaseURL: cfg.Bot.FileBaseURL},
		zapLogger,
	)

	replySender := sender.NewTelegram(cfg.Bot.APIBaseURL, cfg.Bot.Token, zapLogger)
	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Webhook: apiHandler.NewWebhookHandler(dispatcher, replySender, journalStore, updateGuard, ctxAdapter, zapLogger),
		Health:  apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	secretMiddleware := middleware.WebhookSecret(cfg.Bot.WebhookSecret, zapLogger)
	r := router.New(handlers, secretMiddleware)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
