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

func scanProduct(row rowScanner) (*models.Product, error) {
	var p models.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

// CountProducts возвращает число товаров, подходящих под поиск.
func (s *Storage) CountProducts(ctx context.Context, q models.ListQuery) (total int64, err error) {
	const op = "storage.CountProducts"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}
	defer func(start time.Time) { observe(op, start, err) }(time.Now())

	query, args := countStatement(productsTable, q)
	var count numeric.Value
	if err = s.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, apperr.Storage(err))
	}
	return count.Int64(), nil
}

// ListProducts возвращает страницу товаров.
func (s *Storage) ListProducts(ctx context.Context, q models.ListQuery) (list []models.Product, err error) {
	const op = "storage.ListProducts"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}
	defer func(start time.Time) { observe(op, start, err) }(time.Now())

	query, args, err := listStatement(productsTable, productColumns, validation.ProductSort, q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, apperr.Storage(err))
	}
	defer func() { _ = rows.Close() }()

	list = make([]models.Product, 0, q.Limit)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, apperr.Storage(err))
		}
		list = append(list, *p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, apperr.Storage(err))
	}
	return list, nil
}

// ReadProduct возвращает товар по ID.
func (s *Storage) ReadProduct(ctx context.Context, id int) (p *models.Product, err error) {
	const op = "storage.ReadProduct"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}
	defer func(start time.Time) { observe(op, start, err) }(time.Now())

	p, err = scanProduct(s.DB.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, apperr.Storage(err))
	}
	return p, nil
}

// CreateProduct вставляет товар.
func (s *Storage) CreateProduct(ctx context.Context, rec models.ProductRecord) (p *models.Product, err error) {
	const op = "storage.CreateProduct"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}
	defer func(start time.Time) { observe(op, start, err) }(time.Now())

	query := `INSERT INTO products (name, description, price)
			  VALUES ($1, $2, $3)
			  RETURNING ` + productColumns
	p, err = scanProduct(s.DB.QueryRowContext(ctx, query, rec.Name, rec.Description, rec.Price))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, apperr.Storage(err))
	}
	return p, nil
}

// UpdateProduct перезаписывает товар и обновляет updated_at.
func (s *Storage) UpdateProduct(ctx context.Context, id int, rec models.ProductRecord) (p *models.Product, err error) {
	const op = "storage.UpdateProduct"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}
	defer func(start time.Time) { observe(op, start, err) }(time.Now())

	query := `UPDATE products
			  SET name = $1, description = $2, price = $3, updated_at = NOW()
			  WHERE id = $4
			  RETURNING ` + productColumns
	p, err = scanProduct(s.DB.QueryRowContext(ctx, query, rec.Name, rec.Description, rec.Price, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, apperr.Storage(err))
	}
	return p, nil
}

// RemoveProduct удаляет товар одним DELETE ... RETURNING и возвращает удалённую строку.
func (s *Storage) RemoveProduct(ctx context.Context, id int) (p *models.Product, err error) {
	const op = "storage.RemoveProduct"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}
	defer func(start time.Time) { observe(op, start, err) }(time.Now())

	p, err = scanProduct(s.DB.QueryRowContext(ctx,
		`DELETE FROM products WHERE id = $1 RETURNING `+productColumns, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, apperr.Storage(err))
	}
	return p, nil
}
