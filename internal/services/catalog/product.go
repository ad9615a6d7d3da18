package catalog

import (
	"context"
	"log/slog"
	"time"

	"github.com/jayden648/shoesclean/internal/models"
	"github.com/jayden648/shoesclean/internal/validation"
)

// ProductRepository определяет методы хранилища товаров.
type ProductRepository interface {
	CountProducts(ctx context.Context, q models.ListQuery) (int64, error)
	ListProducts(ctx context.Context, q models.ListQuery) ([]models.Product, error)
	ReadProduct(ctx context.Context, id int) (*models.Product, error)
	CreateProduct(ctx context.Context, rec models.ProductRecord) (*models.Product, error)
	UpdateProduct(ctx context.Context, id int, rec models.ProductRecord) (*models.Product, error)
	RemoveProduct(ctx context.Context, id int) (*models.Product, error)
}

// ProductService бизнес-логика товаров.
type ProductService struct {
	repo ProductRepository
	records
}

func NewProductService(repo ProductRepository, cache Cache, events EventPublisher, ttl time.Duration, log *slog.Logger) *ProductService {
	return &ProductService{
		repo: repo,
		records: records{
			prefix: "product",
			cache:  cache,
			events: events,
			ttl:    ttl,
			log:    log.With(slog.String("component", "services.catalog.ProductService")),
		},
	}
}

func (s *ProductService) List(ctx context.Context, q models.ListQuery) (*models.ProductPage, error) {
	total, err := s.repo.CountProducts(ctx, q)
	if err != nil {
		return nil, err
	}
	list, err := s.repo.ListProducts(ctx, q)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []models.Product{}
	}
	return &models.ProductPage{
		Products:   list,
		Pagination: validation.NewPagination(q.Page, q.Limit, total),
	}, nil
}

func (s *ProductService) Read(ctx context.Context, id int) (*models.Product, error) {
	var cached models.Product
	if s.lookup(ctx, id, &cached) {
		return &cached, nil
	}
	p, err := s.repo.ReadProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	s.store(ctx, id, p)
	return p, nil
}

func (s *ProductService) Create(ctx context.Context, rec models.ProductRecord) (*models.Product, error) {
	p, err := s.repo.CreateProduct(ctx, rec)
	if err != nil {
		return nil, err
	}
	s.log.Info("created new product", slog.Int("id", p.ID))
	s.publish(ctx, models.EventProductCreated, p.ID, p)
	return p, nil
}

func (s *ProductService) Update(ctx context.Context, id int, rec models.ProductRecord) (*models.Product, error) {
	p, err := s.repo.UpdateProduct(ctx, id, rec)
	if err != nil {
		return nil, err
	}
	s.log.Info("updated product", slog.Int("id", id))
	s.invalidate(ctx, id)
	s.publish(ctx, models.EventProductUpdated, id, p)
	return p, nil
}

func (s *ProductService) Remove(ctx context.Context, id int) (*models.Product, error) {
	p, err := s.repo.RemoveProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info("deleted product", slog.Int("id", id))
	s.invalidate(ctx, id)
	s.publish(ctx, models.EventProductDeleted, id, p)
	return p, nil
}
