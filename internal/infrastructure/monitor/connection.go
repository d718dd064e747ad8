package monitor

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	goRedis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/taskgram/bot/internal/infrastructure/journal"
)

// Monitor periodically checks connectivity of the backing services and
// caches the latest snapshot for the health endpoint.
type Monitor struct {
	pool     *pgxpool.Pool
	redis    *goRedis.Client
	journal  *journal.Store
	interval time.Duration
	logger   *zap.Logger

	mu     sync.RWMutex
	status Status

	stopCh chan struct{}
	done   chan struct{}
}

func New(pool *pgxpool.Pool, redis *goRedis.Client, journalStore *journal.Store, interval time.Duration, logger *zap.Logger) *Monitor {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{
		pool:     pool,
		redis:    redis,
		journal:  journalStore,
		interval: interval,
		logger:   logger,
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the background check loop.
func (m *Monitor) Start() {
	m.check()
	go func() {
		defer close(m.done)
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.check()
			case <-m.stopCh:
				return
			}
		}
	}()
}

// Stop terminates the check loop and waits for it to exit.
func (m *Monitor) Stop() {
	close(m.stopCh)
	<-m.done
}

// GetStatus returns the latest snapshot.
func (m *Monitor) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}


func (m *Monitor) check() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	status := Status{LastCheck: time.Now()}

	if m.pool != nil {
		if err := m.pool.Ping(ctx); err != nil {
			m.logger.Warn("postgres health check failed", zap.Error(err))
		} else {
			status.PostgreSQL = true
		}
	}

	if m.redis != nil {
		if err := m.redis.Ping(ctx).Err(); err != nil {
			m.logger.Warn("redis health check failed", zap.Error(err))
		} else {
			status.Redis = true
		}
	}

	if m.journal != nil {
		if size, err := m.journal.Size(); err != nil {
			m.logger.Warn("journal health check failed", zap.Error(err))
		} else {
			status.Journal = true
			status.JournalSize = size
		}
	}

	m.mu.Lock()
	m.status = status
	m.mu.Unlock()
}
