// Package events публикует события изменения каталога в RabbitMQ.
package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jayden648/shoesclean/internal/config"
	"github.com/jayden648/shoesclean/internal/lib/metrics"
	"github.com/jayden648/shoesclean/internal/lib/rabbitmq"
	"github.com/jayden648/shoesclean/internal/lib/sl"
	"github.com/jayden648/shoesclean/internal/models"
)

// Publisher отправляет события каталога.
type Publisher interface {
	Publish(ctx context.Context, event models.CatalogEvent) error
	Close() error
}

// AMQP публикует события в topic-обменник, routing key равен типу события.
type AMQP struct {
	mu       sync.Mutex
	ch       rabbitmq.Channel
	closer   func() error
	exchange string
	log      *slog.Logger
}

// NewAMQP подключается к брокеру и объявляет обменник с очередями каталога.
func NewAMQP(cfg config.RabbitMQ, log *slog.Logger) (*AMQP, error) {
	const op = "events.NewAMQP"

	conn, err := rabbitmq.Connect(cfg.URL, cfg.MaxRetries, cfg.RetryDelay)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	ch, err := rabbitmq.SetupChannel(conn, cfg.Exchange, rabbitmq.GetCatalogQueues())
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	p := newAMQP(ch, cfg.Exchange, log)
	p.closer = func() error {
		_ = ch.Close()
		return conn.Close()
	}
	return p, nil
}

func newAMQP(ch rabbitmq.Channel, exchange string, log *slog.Logger) *AMQP {
	return &AMQP{
		ch:       ch,
		exchange: exchange,
		log:      log.With(slog.String("component", "events"), slog.String("exchange", exchange)),
	}
}

func (p *AMQP) Publish(ctx context.Context, event models.CatalogEvent) error {
	const op = "events.Publish"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	p.mu.Lock()
	err := rabbitmq.PublishMessage(p.ch, p.exchange, event.Type, event)
	p.mu.Unlock()

	metrics.EventPublished(event.Type, err)
	if err != nil {
		p.log.Error("failed to publish event", sl.Op(op), slog.String("type", event.Type), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	p.log.Debug("event published", slog.String("type", event.Type), slog.Int("id", event.ID))
	return nil
}

func (p *AMQP) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closer == nil {
		return nil
	}
	err := p.closer()
	p.closer = nil
	return err
}

// Noop используется, когда брокер не настроен.
type Noop struct{}

func (Noop) Publish(context.Context, models.CatalogEvent) error { return nil }
func (Noop) Close() error                                       { return nil }
