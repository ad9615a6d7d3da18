package models

import "time"

// Типы событий каталога, они же routing key в RabbitMQ.
const (
	EventServiceCreated = "service.created"
	EventServiceUpdated = "service.updated"
	EventServiceDeleted = "service.deleted"
	EventProductCreated = "product.created"
	EventProductUpdated = "product.updated"
	EventProductDeleted = "product.deleted"
)

// CatalogEvent сообщение об изменении записи каталога.
type CatalogEvent struct {
	Type       string    `json:"type"`
	ID         int       `json:"id"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload,omitempty"`
}
