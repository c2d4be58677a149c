package utils

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const revokedTokenPrefix = "admin-token-revoked:"

// TokenRevoker records admin tokens that were signed out before their expiry,
// so a stolen or stale token stops working at logout instead of at exp.
type TokenRevoker interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// RedisTokenRevoker is the production TokenRevoker backed by the cache client.
// Entries carry the token's remaining lifetime as TTL, so the deny-list
// cleans itself up once the token would have expired anyway.
type RedisTokenRevoker struct {
	Client *redis.Client
}

func NewRedisTokenRevoker() *RedisTokenRevoker {
	return &RedisTokenRevoker{Client: GetCacheClient()}
}

// revokedTokenKey hashes the token so raw credentials never land in redis.
func revokedTokenKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return revokedTokenPrefix + hex.EncodeToString(sum[:])
}

func (r *RedisTokenRevoker) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = time.Minute
	}
	if err := r.Client.Set(ctx, revokedTokenKey(token), 1, ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke admin token: %w", err)
	}
	return nil
}

func (r *RedisTokenRevoker) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := r.Client.Exists(ctx, revokedTokenKey(token)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check admin token revocation: %w", err)
	}
	return n > 0, nil
}
