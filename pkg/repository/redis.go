package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/redis/go-redis/v9"
	"github.com/secmon-lab/holodeck/pkg/domain/interfaces"
	"github.com/secmon-lab/holodeck/pkg/domain/model"
)

const dataModelKey = "holodeck:edm"

// RedisCache shares the data model between server instances
type RedisCache struct {
	client *redis.Client
}

var _ interfaces.DataModelCache = &RedisCache{}

// NewRedisCache connects to the redis server at redisURL
func NewRedisCache(ctx context.Context, redisURL string) (*RedisCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse redis URL")
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, goerr.Wrap(err, "failed to connect to redis", goerr.V("addr", opts.Addr))
	}

	ctxlog.From(ctx).Info("Redis cache initialized successfully", "addr", opts.Addr)
	return &RedisCache{client: client}, nil
}

// GetDataModel returns the cached data model, nil on a miss
func (c *RedisCache) GetDataModel(ctx context.Context) (*model.DataModel, error) {
	raw, err := c.client.Get(ctx, dataModelKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get data model from redis")
	}

	var dm model.DataModel
	if err := json.Unmarshal(raw, &dm); err != nil {
		return nil, goerr.Wrap(err, "failed to decode cached data model")
	}
	return &dm, nil
}

// PutDataModel caches the data model for ttl
func (c *RedisCache) PutDataModel(ctx context.Context, dm *model.DataModel, ttl time.Duration) error {
	if dm == nil {
		return goerr.New("data model is nil")
	}
	raw, err := json.Marshal(dm)
	if err != nil {
		return goerr.Wrap(err, "failed to encode data model")
	}
	if err := c.client.Set(ctx, dataModelKey, raw, ttl).Err(); err != nil {
		return goerr.Wrap(err, "failed to put data model to redis")
	}
	return nil
}

// Close closes the redis client
func (c *RedisCache) Close() error {
	return c.client.Close()
}
