package repo

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/soda-stock/internal/models"
)

const defaultKeyPrefix = "sodastock"

var insertSodaScript = redis.NewScript(`
if redis.call('HEXISTS', KEYS[1], ARGV[2]) == 1 then
	return -1
end
local id = redis.call('INCR', KEYS[2])
redis.call('HSET', ARGV[1] .. id, 'name', ARGV[2], 'max', ARGV[3], 'quantity', ARGV[4], 'size', ARGV[5])
redis.call('HSET', KEYS[1], ARGV[2], id)
redis.call('ZADD', KEYS[3], id, id)
return id
`)

var updateSodaScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[2]) == 0 then
	return 0
end
local owner = redis.call('HGET', KEYS[1], ARGV[2])
if owner and owner ~= ARGV[1] then
	return -1
end
local previous = redis.call('HGET', KEYS[2], 'name')
if previous and previous ~= ARGV[2] then
	redis.call('HDEL', KEYS[1], previous)
end
redis.call('HSET', KEYS[2], 'name', ARGV[2], 'max', ARGV[3], 'quantity', ARGV[4], 'size', ARGV[5])
redis.call('HSET', KEYS[1], ARGV[2], ARGV[1])
return 1
`)

var deleteSodaScript = redis.NewScript(`
local name = redis.call('HGET', KEYS[2], 'name')
if not name then
	return 0
end
redis.call('DEL', KEYS[2])
redis.call('HDEL', KEYS[1], name)
redis.call('ZREM', KEYS[3], ARGV[1])
return 1
`)

// RedisSodaRepository keeps each soda in a hash, with a name index hash, an
// ordered id set and an id sequence. Writes run as Lua scripts so the name
// index never drifts from the records.
type RedisSodaRepository struct {
	client *redis.Client
	prefix string
}

func NewRedisSodaRepository(client *redis.Client, prefix string) *RedisSodaRepository {
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	return &RedisSodaRepository{client: client, prefix: prefix}
}

func (r *RedisSodaRepository) recordPrefix() string { return r.prefix + ":soda:" }

func (r *RedisSodaRepository) recordKey(id int64) string {
	return r.recordPrefix() + strconv.FormatInt(id, 10)
}

func (r *RedisSodaRepository) namesKey() string { return r.prefix + ":soda-names" }

func (r *RedisSodaRepository) idsKey() string { return r.prefix + ":soda-ids" }

func (r *RedisSodaRepository) seqKey() string { return r.prefix + ":soda-seq" }

func (r *RedisSodaRepository) Save(ctx context.Context, s models.Soda) (models.Soda, error) {
	if s.ID == 0 {
		id, err := insertSodaScript.Run(ctx, r.client,
			[]string{r.namesKey(), r.seqKey(), r.idsKey()},
			r.recordPrefix(), s.Name, s.Max, s.Quantity, string(s.Size),
		).Int64()
		if err != nil {
			return models.Soda{}, fmt.Errorf("failed to insert soda: %w", err)
		}
		if id < 0 {
			return models.Soda{}, ErrDuplicatedValueUnique
		}
		s.ID = id
		return s, nil
	}

	result, err := updateSodaScript.Run(ctx, r.client,
		[]string{r.namesKey(), r.recordKey(s.ID)},
		strconv.FormatInt(s.ID, 10), s.Name, s.Max, s.Quantity, string(s.Size),
	).Int()
	if err != nil {
		return models.Soda{}, fmt.Errorf("failed to update soda: %w", err)
	}
	switch result {
	case 0:
		return models.Soda{}, ErrSodaNotFound
	case -1:
		return models.Soda{}, ErrDuplicatedValueUnique
	}
	return s, nil
}

func (r *RedisSodaRepository) FindByID(ctx context.Context, id int64) (models.Soda, error) {
	fields, err := r.client.HGetAll(ctx, r.recordKey(id)).Result()
	if err != nil {
		return models.Soda{}, fmt.Errorf("failed to fetch soda: %w", err)
	}
	if len(fields) == 0 {
		return models.Soda{}, ErrSodaNotFound
	}
	return decodeSoda(id, fields)
}

func (r *RedisSodaRepository) FindByName(ctx context.Context, name string) (models.Soda, error) {
	id, err := r.client.HGet(ctx, r.namesKey(), name).Int64()
	if errors.Is(err, redis.Nil) {
		return models.Soda{}, ErrSodaNotFound
	}
	if err != nil {
		return models.Soda{}, fmt.Errorf("failed to resolve soda name: %w", err)
	}
	return r.FindByID(ctx, id)
}

func (r *RedisSodaRepository) FindAll(ctx context.Context) ([]models.Soda, error) {
	members, err := r.client.ZRange(ctx, r.idsKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list soda ids: %w", err)
	}

	ids := make([]int64, len(members))
	cmds := make([]*redis.MapStringStringCmd, len(members))
	_, err = r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, m := range members {
			id, err := strconv.ParseInt(m, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid soda id %q: %w", m, err)
			}
			ids[i] = id
			cmds[i] = pipe.HGetAll(ctx, r.recordKey(id))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list sodas: %w", err)
	}

	sodas := make([]models.Soda, 0, len(members))
	for i, cmd := range cmds {
		fields := cmd.Val()
		if len(fields) == 0 {
			continue
		}
		s, err := decodeSoda(ids[i], fields)
		if err != nil {
			return nil, err
		}
		sodas = append(sodas, s)
	}
	return sodas, nil
}

func (r *RedisSodaRepository) DeleteByID(ctx context.Context, id int64) error {
	deleted, err := deleteSodaScript.Run(ctx, r.client,
		[]string{r.namesKey(), r.recordKey(id), r.idsKey()},
		strconv.FormatInt(id, 10),
	).Int()
	if err != nil {
		return fmt.Errorf("failed to delete soda: %w", err)
	}
	if deleted == 0 {
		return ErrSodaNotFound
	}
	return nil
}

func (r *RedisSodaRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func decodeSoda(id int64, fields map[string]string) (models.Soda, error) {
	max, err := strconv.Atoi(fields["max"])
	if err != nil {
		return models.Soda{}, fmt.Errorf("soda %d has invalid max: %w", id, err)
	}
	quantity, err := strconv.Atoi(fields["quantity"])
	if err != nil {
		return models.Soda{}, fmt.Errorf("soda %d has invalid quantity: %w", id, err)
	}
	return models.Soda{
		ID:       id,
		Name:     fields["name"],
		Max:      max,
		Quantity: quantity,
		Size:     models.SodaSize(fields["size"]),
	}, nil
}
