package auth

import (
	"context" // Context for Redis operations
	"fmt"     // Error wrapping
	"time"    // TTLs

	"marketplace_auth/internal/utils" // Redis JSON helpers

	"github.com/redis/go-redis/v9" // Redis client
)

// RedisSessionStore keeps session records in Redis under
// session:<guard>:<id>, expiring with the session
type RedisSessionStore struct {
	rdb redis.Cmdable // Redis client
}

// NewRedisSessionStore wraps a Redis client
func NewRedisSessionStore(rdb redis.Cmdable) *RedisSessionStore {
	return &RedisSessionStore{rdb: rdb}
}

func (s *RedisSessionStore) Save(ctx context.Context, sess *Session) error {
	ttl := time.Until(sess.ExpiresAt) // Redis expires the record with the session
	if ttl <= 0 {
		return fmt.Errorf("save session %s: already expired", sess.ID)
	}
	if err := utils.SetJSON(ctx, s.rdb, sessionKey(sess.Guard, sess.ID), sess, ttl); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Find(ctx context.Context, guard Guard, id string) (*Session, error) {
	var sess Session // Session struct to hold data
	found, err := utils.GetJSON(ctx, s.rdb, sessionKey(guard, id), &sess)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if !found {
		return nil, nil // Unknown or expired
	}
	return &sess, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, guard Guard, id string) error {
	if err := utils.DeleteKey(ctx, s.rdb, sessionKey(guard, id)); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
