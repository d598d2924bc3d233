// Package redis wraps go-redis client construction for the HUD's stores
package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/token-action-hud-wng/internal/errors"
)

// Options tunes the connection pool
type Options struct {
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	MaxRetries   int
}

// NewClient creates a client for a single redis instance. Connections are
// lazy; use Ping to check reachability.
func NewClient(addr string, opts *Options) (Client, error) {
	if addr == "" {
		return nil, errors.InvalidArgument("redis address is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	return redis.NewClient(&redis.Options{
		Addr:         addr,
		PoolSize:     opts.PoolSize,
		MinIdleConns: opts.MinIdleConns,
		DialTimeout:  opts.DialTimeout,
		MaxRetries:   opts.MaxRetries,
	}), nil
}

// Ping checks the server answers
func Ping(ctx context.Context, client Client) error {
	if err := client.Ping(ctx).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "redis ping failed")
	}
	return nil
}
