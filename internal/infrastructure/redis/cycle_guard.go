package redisstore

import (
	"context"
	"fmt"
	"time"

	"cryptostatus/internal/application"

	"github.com/redis/go-redis/v9"
)

var _ application.CycleGuard = (*Store)(nil)

const keyPrefix = "cryptostatus:cycle:"

// Store leases cycle slots with SETNX so replicas sharing one output do not write the same slot twice.
type Store struct {
	Client *redis.Client
	TTL    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Store {
	return &Store{Client: client, TTL: ttl}
}

func (s *Store) TryReserve(ctx context.Context, key string) (bool, error) {
	ok, err := s.Client.SetNX(ctx, keyPrefix+key, "1", s.TTL).Result()
	if err != nil {
		return false, fmt.Errorf("redis setnx: %w", err)
	}
	return ok, nil
}
