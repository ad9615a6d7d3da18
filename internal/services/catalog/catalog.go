// Package catalog содержит бизнес-логику каталога услуг и товаров:
// кеширование отдельных записей и публикацию событий после изменений.
package catalog

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/jayden648/shoesclean/internal/lib/metrics"
	"github.com/jayden648/shoesclean/internal/lib/sl"
	"github.com/jayden648/shoesclean/internal/models"
)

// Cache описывает кеш отдельных записей.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(ctx context.Context, key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(ctx context.Context, key string) error
}

// EventPublisher отправляет события об изменениях каталога.
type EventPublisher interface {
	Publish(ctx context.Context, event models.CatalogEvent) error
}

// records общая часть сервисов: кеш записей и события. Кеш заполняет только
// Read, изменения его сбрасывают. Ошибки кеша и брокера только логируются,
// на результат операции они не влияют.
type records struct {
	prefix string
	cache  Cache
	events EventPublisher
	ttl    time.Duration
	log    *slog.Logger
}

func (r records) key(id int) string {
	return r.prefix + ":" + strconv.Itoa(id)
}

func (r records) lookup(ctx context.Context, id int, dst any) bool {
	key := r.key(id)
	found, err := r.cache.Get(ctx, key, dst)
	if err != nil {
		r.log.Warn("failed to read from cache", slog.String("key", key), sl.Err(err))
		found = false
	}
	metrics.CacheLookup(found)
	return found
}

func (r records) store(ctx context.Context, id int, value any) {
	key := r.key(id)
	if err := r.cache.Set(ctx, key, value, r.ttl); err != nil {
		r.log.Warn("failed to cache record", slog.String("key", key), sl.Err(err))
	}
}

func (r records) invalidate(ctx context.Context, id int) {
	key := r.key(id)
	if err := r.cache.Invalidate(ctx, key); err != nil {
		r.log.Warn("failed to invalidate cache", slog.String("key", key), sl.Err(err))
	}
}

func (r records) publish(ctx context.Context, eventType string, id int, payload any) {
	event := models.CatalogEvent{
		Type:       eventType,
		ID:         id,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
	if err := r.events.Publish(ctx, event); err != nil {
		r.log.Warn("failed to publish event", slog.String("type", eventType), slog.Int("id", id), sl.Err(err))
	}
}
