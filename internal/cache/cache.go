package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/jayden648/shoesclean/internal/config"
)

const (
	BackendRedis  = "redis"
	BackendMemory = "memory"
	BackendNone   = "none"
)

// Store общий контракт бэкендов.
type Store interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, key string) error
	Close() error
}

// New создаёт бэкенд по cfg.Cache.Backend.
func New(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.Cache.Backend {
	case BackendRedis:
		return InitServer(ctx, cfg.RedisConnection)
	case BackendMemory, "":
		return NewMemory(cfg.Cache.TTL), nil
	case BackendNone:
		return Noop{}, nil
	default:
		return nil, fmt.Errorf("cache.New: unknown backend %q", cfg.Cache.Backend)
	}
}

// Noop кеш, который ничего не хранит.
type Noop struct{}

func (Noop) Get(context.Context, string, any) (bool, error)        { return false, nil }
func (Noop) Set(context.Context, string, any, time.Duration) error { return nil }
func (Noop) Invalidate(context.Context, string) error              { return nil }
func (Noop) Close() error                                          { return nil }
