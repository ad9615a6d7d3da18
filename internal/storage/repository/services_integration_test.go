package repository

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jayden648/shoesclean/internal/lib/apperr"
	"github.com/jayden648/shoesclean/internal/models"
)

func TestStorage_ServiceRoundTrip(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()
	ctx := context.Background()

	created, err := storage.CreateService(ctx, models.ServiceRecord{
		Name:            "Deep Clean",
		Description:     ptr("Full restoration"),
		Price:           45.5,
		DurationMinutes: ptr(90),
	})
	require.NoError(t, err)
	assert.Positive(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := storage.ReadService(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Deep Clean", got.Name)
	require.NotNil(t, got.Description)
	assert.Equal(t, "Full restoration", *got.Description)
	assert.Equal(t, 45.5, got.Price)
	require.NotNil(t, got.DurationMinutes)
	assert.Equal(t, 90, *got.DurationMinutes)

	updated, err := storage.UpdateService(ctx, created.ID, models.ServiceRecord{Name: "Quick Clean", Price: 20})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Quick Clean", updated.Name)
	assert.Nil(t, updated.Description)
	assert.Nil(t, updated.DurationMinutes)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))

	deleted, err := storage.RemoveService(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Quick Clean", deleted.Name)
	_, err = storage.ReadService(ctx, created.ID)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestStorage_ServiceNotFound(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()
	ctx := context.Background()

	// 99999999999 больше максимума int4, id должен помещаться в BIGINT
	for _, id := range []int{999999, 99999999999} {
		t.Run(strconv.Itoa(id), func(t *testing.T) {
			_, err := storage.ReadService(ctx, id)
			assert.ErrorIs(t, err, apperr.ErrNotFound)
			assert.Equal(t, "Service not found", apperr.Message(err, ""))

			_, err = storage.UpdateService(ctx, id, models.ServiceRecord{Name: "X", Price: 1})
			assert.ErrorIs(t, err, ErrServiceNotFound)

			_, err = storage.RemoveService(ctx, id)
			assert.ErrorIs(t, err, ErrServiceNotFound)
		})
	}
}

func TestStorage_CreateServiceConstraintViolation(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	_, err := storage.CreateService(context.Background(), models.ServiceRecord{Name: "Bad", Price: -1})
	require.Error(t, err)
	assert.Equal(t, apperr.KindStorageFailure, apperr.KindOf(err))
}

func TestStorage_ListServices(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()
	ctx := context.Background()

	createService(t, storage, "Basic Clean", 15, ptr("Wipe and brush"))
	createService(t, storage, "Suede Care", 30, ptr("Gentle suede clean"))
	createService(t, storage, "Sole Whitening", 25, nil)

	tests := []struct {
		name      string
		query     models.ListQuery
		wantTotal int64
		wantNames []string
	}{
		{
			name:      "all by id",
			query:     models.ListQuery{Limit: 10, SortBy: "id", SortOrder: "ASC"},
			wantTotal: 3,
			wantNames: []string{"Basic Clean", "Suede Care", "Sole Whitening"},
		},
		{
			name:      "price desc",
			query:     models.ListQuery{Limit: 10, SortBy: "price", SortOrder: "DESC"},
			wantTotal: 3,
			wantNames: []string{"Suede Care", "Sole Whitening", "Basic Clean"},
		},
		{
			name:      "search matches description",
			query:     models.ListQuery{Limit: 10, Search: "suede", SortBy: "id", SortOrder: "ASC"},
			wantTotal: 1,
			wantNames: []string{"Suede Care"},
		},
		{
			name:      "second page",
			query:     models.ListQuery{Limit: 2, Offset: 2, SortBy: "id", SortOrder: "ASC"},
			wantTotal: 3,
			wantNames: []string{"Sole Whitening"},
		},
		{
			name:      "past the end",
			query:     models.ListQuery{Limit: 10, Offset: 30, SortBy: "id", SortOrder: "ASC"},
			wantTotal: 3,
			wantNames: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, err := storage.CountServices(ctx, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, total)

			list, err := storage.ListServices(ctx, tt.query)
			require.NoError(t, err)
			require.NotNil(t, list)

			names := make([]string, 0, len(list))
			for _, svc := range list {
				names = append(names, svc.Name)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestStorage_ServiceStats(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()
	ctx := context.Background()

	stats, err := storage.ServiceStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ServiceStats{}, stats)

	createService(t, storage, "A", 10, nil)
	createService(t, storage, "B", 20, nil)
	createService(t, storage, "C", 60, nil)

	stats, err = storage.ServiceStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalServices)
	assert.InDelta(t, 30.0, stats.AveragePrice, 1e-9)
	assert.Equal(t, 10.0, stats.PriceRange.Min)
	assert.Equal(t, 60.0, stats.PriceRange.Max)
}

func TestStorage_CanceledContext(t *testing.T) {
	s := &Storage{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.ReadService(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = s.ListProducts(ctx, models.ListQuery{})
	assert.ErrorIs(t, err, context.Canceled)
}
