package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Counter is the slice of the redis client the limiter needs.
type Counter interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// MessageLimiter allows at most limit messages per user in each fixed window.
type MessageLimiter struct {
	client Counter
	limit  int64
	window time.Duration
	now    func() time.Time
}

func NewMessageLimiter(client Counter, limit int, window time.Duration) *MessageLimiter {
	if window < time.Second {
		window = time.Minute
	}
	return &MessageLimiter{
		client: client,
		limit:  int64(limit),
		window: window,
		now:    time.Now,
	}
}

func (l *MessageLimiter) Allow(ctx context.Context, userID uint) (bool, error) {
	bucket := l.now().Unix() / int64(l.window.Seconds())
	key := fmt.Sprintf("ratelimit:messages:%d:%d", userID, bucket)

	count, err := incrWithTTL(ctx, l.client, key, l.window)
	if err != nil {
		return false, err
	}
	return count <= l.limit, nil
}

func incrWithTTL(ctx context.Context, client Counter, key string, ttl time.Duration) (int64, error) {
	count, err := client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		if err := client.Expire(ctx, key, ttl).Err(); err != nil {
			return 0, fmt.Errorf("expire %s: %w", key, err)
		}
	}
	return count, nil
}
