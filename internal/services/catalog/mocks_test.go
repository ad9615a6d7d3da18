package catalog

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jayden648/shoesclean/internal/models"
)

type ServiceRepoMock struct{ mock.Mock }

func (m *ServiceRepoMock) CountServices(ctx context.Context, q models.ListQuery) (int64, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ServiceRepoMock) ListServices(ctx context.Context, q models.ListQuery) ([]models.Service, error) {
	args := m.Called(ctx, q)
	list, _ := args.Get(0).([]models.Service)
	return list, args.Error(1)
}

func (m *ServiceRepoMock) ReadService(ctx context.Context, id int) (*models.Service, error) {
	args := m.Called(ctx, id)
	svc, _ := args.Get(0).(*models.Service)
	return svc, args.Error(1)
}

func (m *ServiceRepoMock) CreateService(ctx context.Context, rec models.ServiceRecord) (*models.Service, error) {
	args := m.Called(ctx, rec)
	svc, _ := args.Get(0).(*models.Service)
	return svc, args.Error(1)
}

func (m *ServiceRepoMock) UpdateService(ctx context.Context, id int, rec models.ServiceRecord) (*models.Service, error) {
	args := m.Called(ctx, id, rec)
	svc, _ := args.Get(0).(*models.Service)
	return svc, args.Error(1)
}

func (m *ServiceRepoMock) RemoveService(ctx context.Context, id int) (*models.Service, error) {
	args := m.Called(ctx, id)
	svc, _ := args.Get(0).(*models.Service)
	return svc, args.Error(1)
}

func (m *ServiceRepoMock) ServiceStats(ctx context.Context) (models.ServiceStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.ServiceStats), args.Error(1)
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) CountProducts(ctx context.Context, q models.ListQuery) (int64, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ProductRepoMock) ListProducts(ctx context.Context, q models.ListQuery) ([]models.Product, error) {
	args := m.Called(ctx, q)
	list, _ := args.Get(0).([]models.Product)
	return list, args.Error(1)
}

func (m *ProductRepoMock) ReadProduct(ctx context.Context, id int) (*models.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*models.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) CreateProduct(ctx context.Context, rec models.ProductRecord) (*models.Product, error) {
	args := m.Called(ctx, rec)
	p, _ := args.Get(0).(*models.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) UpdateProduct(ctx context.Context, id int, rec models.ProductRecord) (*models.Product, error) {
	args := m.Called(ctx, id, rec)
	p, _ := args.Get(0).(*models.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) RemoveProduct(ctx context.Context, id int) (*models.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*models.Product)
	return p, args.Error(1)
}

type CacheMock struct{ mock.Mock }

func (m *CacheMock) Get(ctx context.Context, key string, result any) (bool, error) {
	args := m.Called(ctx, key, result)
	return args.Bool(0), args.Error(1)
}

func (m *CacheMock) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *CacheMock) Invalidate(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type PublisherMock struct{ mock.Mock }

func (m *PublisherMock) Publish(ctx context.Context, event models.CatalogEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func eventOfType(eventType string, id int) any {
	return mock.MatchedBy(func(e models.CatalogEvent) bool {
		return e.Type == eventType && e.ID == id && !e.OccurredAt.IsZero()
	})
}
