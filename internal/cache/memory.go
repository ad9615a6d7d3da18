package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Memory кеш в памяти процесса. Значения хранятся сериализованными,
// чтобы вызывающий код не мог изменить закешированную запись.
type Memory struct {
	store *gocache.Cache
}

// NewMemory создаёт кеш с временем жизни записей ttl.
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{store: gocache.New(ttl, 2*ttl)}
}

func (m *Memory) Get(_ context.Context, key string, result any) (bool, error) {
	raw, ok := m.store.Get(key)
	if !ok {
		return false, nil
	}
	data, ok := raw.([]byte)
	if !ok {
		return false, fmt.Errorf("cache.Memory.Get: unexpected value type %T", raw)
	}
	if err := json.Unmarshal(data, result); err != nil {
		return false, fmt.Errorf("cache.Memory.Get: %w", err)
	}
	return true, nil
}

func (m *Memory) Set(_ context.Context, key string, value any, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache.Memory.Set: %w", err)
	}
	m.store.Set(key, data, expiration)
	return nil
}

func (m *Memory) Invalidate(_ context.Context, key string) error {
	m.store.Delete(key)
	return nil
}

func (m *Memory) Close() error {
	m.store.Flush()
	return nil
}
