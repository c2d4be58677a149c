package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const lockKeyPrefix = "kyc-verify-lock:"

// RedisVerificationLock implements VerificationLock with SETNX and a TTL so a
// crashed console replica cannot hold a provider's document list forever.
type RedisVerificationLock struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisVerificationLock(client *redis.Client) *RedisVerificationLock {
	return &RedisVerificationLock{Client: client, TTL: 30 * time.Second}
}

func (l *RedisVerificationLock) Acquire(ctx context.Context, providerID string) (bool, error) {
	ttl := l.TTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	ok, err := l.Client.SetNX(ctx, lockKeyPrefix+providerID, 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire verification lock for provider %s: %w", providerID, err)
	}
	return ok, nil
}

func (l *RedisVerificationLock) Release(ctx context.Context, providerID string) error {
	if err := l.Client.Del(ctx, lockKeyPrefix+providerID).Err(); err != nil {
		return fmt.Errorf("failed to release verification lock for provider %s: %w", providerID, err)
	}
	return nil
}
