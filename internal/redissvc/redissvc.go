package redissvc

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rogerio-castellano/soda-stock/internal/config"
)

const pingTimeout = 5 * time.Second

// RedisService owns the client backing the redis soda store.
type RedisService struct {
	rdb       *redis.Client
	keyPrefix string
}

// New connects to redis and verifies the connection with a ping.
func New(ctx context.Context, cfg config.RedisConfig) (*RedisService, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("redis address is required")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("could not connect to redis at %s: %w", cfg.Addr, err)
	}

	return &RedisService{rdb: rdb, keyPrefix: cfg.KeyPrefix}, nil
}

func (s *RedisService) Rdb() *redis.Client {
	return s.rdb
}

func (s *RedisService) KeyPrefix() string {
	return s.keyPrefix
}

func (s *RedisService) Close() error {
	return s.rdb.Close()
}
