package catalog

import (
	"context"
	"log/slog"
	"time"

	"github.com/jayden648/shoesclean/internal/models"
	"github.com/jayden648/shoesclean/internal/validation"
)

// ServiceRepository определяет методы хранилища услуг.
type ServiceRepository interface {
	CountServices(ctx context.Context, q models.ListQuery) (int64, error)
	ListServices(ctx context.Context, q models.ListQuery) ([]models.Service, error)
	ReadService(ctx context.Context, id int) (*models.Service, error)
	CreateService(ctx context.Context, rec models.ServiceRecord) (*models.Service, error)
	UpdateService(ctx context.Context, id int, rec models.ServiceRecord) (*models.Service, error)
	RemoveService(ctx context.Context, id int) (*models.Service, error)
	ServiceStats(ctx context.Context) (models.ServiceStats, error)
}

// Service бизнес-логика услуг чистки обуви.
type Service struct {
	repo ServiceRepository
	records
}

// NewService создаёт сервис услуг.
func NewService(repo ServiceRepository, cache Cache, events EventPublisher, ttl time.Duration, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		records: records{
			prefix: "service",
			cache:  cache,
			events: events,
			ttl:    ttl,
			log:    log.With(slog.String("component", "services.catalog.Service")),
		},
	}
}

// List возвращает страницу услуг и метаданные пагинации. Количество и
// страница считаются по одному и тому же условию поиска.
func (s *Service) List(ctx context.Context, q models.ListQuery) (*models.ServicePage, error) {
	total, err := s.repo.CountServices(ctx, q)
	if err != nil {
		return nil, err
	}
	list, err := s.repo.ListServices(ctx, q)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []models.Service{}
	}
	return &models.ServicePage{
		Services:   list,
		Pagination: validation.NewPagination(q.Page, q.Limit, total),
	}, nil
}

// Read возвращает услугу по ID, сначала из кеша.
func (s *Service) Read(ctx context.Context, id int) (*models.Service, error) {
	var cached models.Service
	if s.lookup(ctx, id, &cached) {
		return &cached, nil
	}

	svc, err := s.repo.ReadService(ctx, id)
	if err != nil {
		return nil, err
	}
	s.store(ctx, id, svc)
	return svc, nil
}

// Create сохраняет услугу и возвращает созданную запись.
func (s *Service) Create(ctx context.Context, rec models.ServiceRecord) (*models.Service, error) {
	svc, err := s.repo.CreateService(ctx, rec)
	if err != nil {
		return nil, err
	}
	s.log.Info("created new service", slog.Int("id", svc.ID))

	s.publish(ctx, models.EventServiceCreated, svc.ID, svc)
	return svc, nil
}

// Update перезаписывает услугу. Кеш только сбрасывается: запись после
// параллельного Remove вернула бы в кеш уже удалённую услугу.
func (s *Service) Update(ctx context.Context, id int, rec models.ServiceRecord) (*models.Service, error) {
	svc, err := s.repo.UpdateService(ctx, id, rec)
	if err != nil {
		return nil, err
	}
	s.log.Info("updated service", slog.Int("id", id))

	s.invalidate(ctx, id)
	s.publish(ctx, models.EventServiceUpdated, id, svc)
	return svc, nil
}

// Remove удаляет услугу и возвращает удалённую запись.
func (s *Service) Remove(ctx context.Context, id int) (*models.Service, error) {
	svc, err := s.repo.RemoveService(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info("deleted service", slog.Int("id", id))

	s.invalidate(ctx, id)
	s.publish(ctx, models.EventServiceDeleted, id, svc)
	return svc, nil
}

// Stats возвращает агрегаты по услугам. Не кешируется.
func (s *Service) Stats(ctx context.Context) (*models.ServiceStats, error) {
	stats, err := s.repo.ServiceStats(ctx)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
