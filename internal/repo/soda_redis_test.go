package repo

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/redis/go-redis/v9"
)

func getRedisClient(t *testing.T) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func flushPrefix(t *testing.T, client *redis.Client, prefix string) {
	ctx := context.Background()
	keys, err := client.Keys(ctx, prefix+":*").Result()
	if err != nil {
		t.Fatalf("listing keys: %v", err)
	}
	if len(keys) > 0 {
		client.Del(ctx, keys...)
	}
}

func TestRedisSodaRepository(t *testing.T) {
	client := getRedisClient(t)

	runSodaRepositoryContract(t, func(t *testing.T) SodaRepository {
		prefix := fmt.Sprintf("sodastock-test-%s", strings.ReplaceAll(t.Name(), "/", "-"))
		flushPrefix(t, client, prefix)
		t.Cleanup(func() { flushPrefix(t, client, prefix) })
		return NewRedisSodaRepository(client, prefix)
	})
}
