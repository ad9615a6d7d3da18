// Package repository реализует хранилище каталога на основе PostgreSQL.
// Все значения передаются связанными параметрами ($1, $2, ...), в текст
// запроса подставляются только имена столбцов из белого списка.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/jayden648/shoesclean/internal/lib/apperr"
	"github.com/jayden648/shoesclean/internal/lib/metrics"
)

var (
	ErrServiceNotFound = apperr.NotFound("Service not found")
	ErrProductNotFound = apperr.NotFound("Product not found")
)

// Storage инкапсулирует соединение с базой данных PostgreSQL.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL и проверяет его.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// Close закрывает пул соединений.
func (s *Storage) Close() error {
	return s.DB.Close()
}

// CheckDatabaseReady проверяет, что миграции создали нужные таблицы.
func (s *Storage) CheckDatabaseReady(ctx context.Context) error {
	for _, table := range []string{"services", "products"} {
		var exists bool
		err := s.DB.QueryRowContext(ctx, `SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_schema = 'public' AND table_name = $1
		)`, table).Scan(&exists)
		if err != nil {
			return fmt.Errorf("storage.CheckDatabaseReady: %w", err)
		}
		if !exists {
			return fmt.Errorf("storage.CheckDatabaseReady: required table %s missing", table)
		}
	}
	return nil
}

func observe(op string, start time.Time, err error) {
	metrics.ObserveDB(op, start, err)
}
