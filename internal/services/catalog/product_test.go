package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jayden648/shoesclean/internal/lib/apperr"
	"github.com/jayden648/shoesclean/internal/models"
)

func newTestProductService() (*ProductService, *ProductRepoMock, *CacheMock, *PublisherMock) {
	repo := new(ProductRepoMock)
	cache := new(CacheMock)
	pub := new(PublisherMock)
	return NewProductService(repo, cache, pub, ttl, newNoopLogger()), repo, cache, pub
}

func TestProductService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	svc, repo, cache, pub := newTestProductService()

	rec := models.ProductRecord{Name: "Suede Brush", Price: 12}
	created := &models.Product{ID: 1, Name: "Suede Brush", Price: 12}
	repo.On("CreateProduct", ctx, rec).Return(created, nil)
	pub.On("Publish", ctx, eventOfType(models.EventProductCreated, 1)).Return(nil)

	got, err := svc.Create(ctx, rec)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	upd := models.ProductRecord{Name: "Suede Brush Pro", Price: 18}
	updated := &models.Product{ID: 1, Name: "Suede Brush Pro", Price: 18}
	repo.On("UpdateProduct", ctx, 1, upd).Return(updated, nil)
	cache.On("Invalidate", ctx, "product:1").Return(nil)
	pub.On("Publish", ctx, eventOfType(models.EventProductUpdated, 1)).Return(nil)

	got, err = svc.Update(ctx, 1, upd)
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	repo.On("RemoveProduct", ctx, 1).Return(updated, nil)
	cache.On("Invalidate", ctx, "product:1").Return(nil)
	pub.On("Publish", ctx, eventOfType(models.EventProductDeleted, 1)).Return(nil)

	deleted, err := svc.Remove(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, updated, deleted)

	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	pub.AssertExpectations(t)
}

func TestProductService_Read(t *testing.T) {
	ctx := context.Background()
	svc, repo, cache, _ := newTestProductService()

	cache.On("Get", ctx, "product:7", mock.Anything).Return(false, nil)
	repo.On("ReadProduct", ctx, 7).Return(nil, apperr.NotFound("Product not found"))

	_, err := svc.Read(ctx, 7)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestProductService_List(t *testing.T) {
	ctx := context.Background()
	svc, repo, _, _ := newTestProductService()

	q := models.ListQuery{Page: 1, Limit: 10, SortBy: "id", SortOrder: "ASC"}
	repo.On("CountProducts", ctx, q).Return(int64(1), nil)
	repo.On("ListProducts", ctx, q).Return([]models.Product{{ID: 1}}, nil)

	page, err := svc.List(ctx, q)
	require.NoError(t, err)
	assert.Len(t, page.Products, 1)
	assert.Equal(t, int64(1), page.Pagination.TotalPages)
	assert.False(t, page.Pagination.HasNextPage)
	assert.False(t, page.Pagination.HasPrevPage)
}
