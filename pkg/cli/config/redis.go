package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/holodeck/pkg/domain/interfaces"
	"github.com/secmon-lab/holodeck/pkg/repository"
	"github.com/urfave/cli/v3"
)

// Redis holds the data model cache configuration
type Redis struct {
	URL         string
	EDMCacheTTL time.Duration
}

// Flags returns CLI flags for Redis configuration
func (r *Redis) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "redis-url",
			Usage:       "Redis URL for the shared data model cache (e.g. redis://localhost:6379/0)",
			Category:    "Cache",
			Sources:     cli.EnvVars("HOLODECK_REDIS_URL"),
			Destination: &r.URL,
		},
		&cli.DurationFlag{
			Name:        "edm-cache-ttl",
			Usage:       "How long a loaded data model is reused",
			Category:    "Cache",
			Value:       10 * time.Minute,
			Sources:     cli.EnvVars("HOLODECK_EDM_CACHE_TTL"),
			Destination: &r.EDMCacheTTL,
		},
	}
}

// Configure creates the data model cache and a function releasing it. Without a
// Redis URL the cache is kept in memory.
func (r *Redis) Configure(ctx context.Context) (interfaces.DataModelCache, func(), error) {
	if !r.IsConfigured() {
		ctxlog.From(ctx).Info("Using memory data model cache")
		return repository.NewMemoryCache(), func() {}, nil
	}

	cache, err := repository.NewRedisCache(ctx, r.URL)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to init redis cache")
	}

	closer := func() {
		if err := cache.Close(); err != nil {
			ctxlog.From(ctx).Warn("Failed to close redis cache", "error", err)
		}
	}
	return cache, closer, nil
}

// IsConfigured checks if Redis is configured
func (r *Redis) IsConfigured() bool {
	return r.URL != ""
}

// LogValue returns structured log value. The URL is not logged as it may carry a
// password.
func (r Redis) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("configured", r.IsConfigured()),
		slog.Duration("edmCacheTTL", r.EDMCacheTTL),
	)
}
