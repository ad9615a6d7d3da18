package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jayden648/shoesclean/internal/lib/apperr"
	"github.com/jayden648/shoesclean/internal/lib/numeric"
	"github.com/jayden648/shoesclean/internal/models"
	"github.com/jayden648/shoesclean/internal/validation"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanService(row rowScanner) (*models.Service, error) {
	var svc models.Service
	if err := row.Scan(&svc.ID, &svc.Name, &svc.Description, &svc.Price,
		&svc.DurationMinutes, &svc.CreatedAt); err != nil {
		return nil, err
	}
	return &svc, nil
}

// CountServices возвращает число услуг, подходящих под поиск.
func (s *Storage) CountServices(ctx context.Context, q models.ListQuery) (total int64, err error) {
	const op = "storage.CountServices"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}
	defer func(start time.Time) { observe(op, start, err) }(time.Now())

	query, args := countStatement(servicesTable, q)
	var count numeric.Value
	if err = s.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, apperr.Storage(err))
	}
	return count.Int64(), nil
}

// ListServices возвращает страницу услуг. Пустая страница это пустой срез, а не nil.
func (s *Storage) ListServices(ctx context.Context, q models.ListQuery) (list []models.Service, err error) {
	const op = "storage.ListServices"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}
	defer func(start time.Time) { observe(op, start, err) }(time.Now())

	query, args, err := listStatement(servicesTable, serviceColumns, validation.ServiceSort, q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, apperr.Storage(err))
	}
	defer func() { _ = rows.Close() }()

	list = make([]models.Service, 0, q.Limit)
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, apperr.Storage(err))
		}
		list = append(list, *svc)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, apperr.Storage(err))
	}
	return list, nil
}

// ReadService возвращает услугу по ID.
func (s *Storage) ReadService(ctx context.Context, id int) (svc *models.Service, err error) {
	const op = "storage.ReadService"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}
	defer func(start time.Time) { observe(op, start, err) }(time.Now())

	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = $1`
	svc, err = scanService(s.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, apperr.Storage(err))
	}
	return svc, nil
}

// CreateService вставляет услугу и возвращает сохранённую строку.
func (s *Storage) CreateService(ctx context.Context, rec models.ServiceRecord) (svc *models.Service, err error) {
	const op = "storage.CreateService"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}
	defer func(start time.Time) { observe(op, start, err) }(time.Now())

	query := `INSERT INTO services (name, description, price, duration_minutes)
			  VALUES ($1, $2, $3, $4)
			  RETURNING ` + serviceColumns
	svc, err = scanService(s.DB.QueryRowContext(ctx, query,
		rec.Name, rec.Description, rec.Price, rec.DurationMinutes))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, apperr.Storage(err))
	}
	return svc, nil
}

// UpdateService перезаписывает все поля услуги одним условным UPDATE.
// Если строки нет, возвращается ErrServiceNotFound.
func (s *Storage) UpdateService(ctx context.Context, id int, rec models.ServiceRecord) (svc *models.Service, err error) {
	const op = "storage.UpdateService"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}
	defer func(start time.Time) { observe(op, start, err) }(time.Now())

	query := `UPDATE services
			  SET name = $1, description = $2, price = $3, duration_minutes = $4
			  WHERE id = $5
			  RETURNING ` + serviceColumns
	svc, err = scanService(s.DB.QueryRowContext(ctx, query,
		rec.Name, rec.Description, rec.Price, rec.DurationMinutes, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, apperr.Storage(err))
	}
	return svc, nil
}

// RemoveService удаляет услугу одним DELETE ... RETURNING и возвращает удалённую строку.
func (s *Storage) RemoveService(ctx context.Context, id int) (svc *models.Service, err error) {
	const op = "storage.RemoveService"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}
	defer func(start time.Time) { observe(op, start, err) }(time.Now())

	svc, err = scanService(s.DB.QueryRowContext(ctx,
		`DELETE FROM services WHERE id = $1 RETURNING `+serviceColumns, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, apperr.Storage(err))
	}
	return svc, nil
}

// ServiceStats считает количество, среднюю, минимальную и максимальную цену
// одним запросом. Для пустой таблицы все значения равны 0.
func (s *Storage) ServiceStats(ctx context.Context) (stats models.ServiceStats, err error) {
	const op = "storage.ServiceStats"
	select {
	case <-ctx.Done():
		return models.ServiceStats{}, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}
	defer func(start time.Time) { observe(op, start, err) }(time.Now())

	var total, avg, minPrice, maxPrice numeric.Value
	err = s.DB.QueryRowContext(ctx,
		`SELECT COUNT(*), AVG(price)::float8, MIN(price), MAX(price) FROM services`).
		Scan(&total, &avg, &minPrice, &maxPrice)
	if err != nil {
		return models.ServiceStats{}, fmt.Errorf("%s: %w", op, apperr.Storage(err))
	}

	return models.ServiceStats{
		TotalServices: total.Int64(),
		AveragePrice:  avg.Float64(),
		PriceRange: models.PriceRange{
			Min: minPrice.Float64(),
			Max: maxPrice.Float64(),
		},
	}, nil
}
