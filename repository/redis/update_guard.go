package redis

import (
	"context"
	"fmt"
	"time"

	redislib "github.com/redis/go-redis/v9"

	"github.com/taskgram/bot/domain"
	"github.com/taskgram/bot/repository"
)

type updateGuard struct {
	client *redislib.Client
	prefix string
	ttl    time.Duration
}

// NewUpdateGuard creates a Redis-backed processed-update marker. The
// chat platform redelivers webhooks on slow responses; marking each
// update id once keeps a redelivery from replaying a conversation step.
func NewUpdateGuard(client *redislib.Client, ttl time.Duration) repository.UpdateGuard {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &updateGuard{
		client: client,
		prefix: "update:",
		ttl:    ttl,
	}
}

func (g *updateGuard) MarkProcessed(ctx context.Context, updateID int64) (bool, error) {
	first, err := g.client.SetNX(ctx, g.key(updateID), 1, g.ttl).Result()
	if err != nil {
		return false, domain.StoreFailure(err)
	}
	return first, nil
}

func (g *updateGuard) key(updateID int64) string {
	return fmt.Sprintf("%s%d", g.prefix, updateID)
}
