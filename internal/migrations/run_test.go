package migrations

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// startPostgres поднимает чистую базу в контейнере. Закрытие и остановка
// регистрируются через t.Cleanup.
func startPostgres(t *testing.T) *sql.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in -short mode")
	}
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("shoesclean_migrations"),
		postgres.WithUsername("shoesclean"),
		postgres.WithPassword("shoesclean"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	db, err := sql.Open("pgx", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func migrationsDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.Abs(filepath.Join("..", "..", "migrations"))
	require.NoError(t, err)
	return dir
}

func exists(t *testing.T, db *sql.DB, query string, args ...any) bool {
	t.Helper()
	var ok bool
	require.NoError(t, db.QueryRow(query, args...).Scan(&ok))
	return ok
}

func TestRun(t *testing.T) {
	db := startPostgres(t)
	dir := migrationsDir(t)

	require.NoError(t, Run(db, dir))

	t.Run("tables", func(t *testing.T) {
		for _, table := range []string{"services", "products"} {
			assert.True(t, exists(t, db, `SELECT EXISTS (
				SELECT 1 FROM information_schema.tables
				WHERE table_schema = 'public' AND table_name = $1)`, table), table)
		}
	})

	t.Run("bigint ids", func(t *testing.T) {
		for _, table := range []string{"services", "products"} {
			var dataType string
			require.NoError(t, db.QueryRow(`SELECT data_type FROM information_schema.columns
				WHERE table_schema = 'public' AND table_name = $1 AND column_name = 'id'`, table).Scan(&dataType))
			assert.Equal(t, "bigint", dataType, table)
		}
	})

	t.Run("indexes", func(t *testing.T) {
		for _, index := range []string{"idx_services_name", "idx_services_price", "idx_services_created_at", "idx_products_name"} {
			assert.True(t, exists(t, db, `SELECT EXISTS (
				SELECT 1 FROM pg_indexes WHERE schemaname = 'public' AND indexname = $1)`, index), index)
		}
	})

	t.Run("service constraints", func(t *testing.T) {
		rejected := map[string]string{
			"negative price":   `INSERT INTO services (name, price) VALUES ('Basic Clean', -1)`,
			"blank name":       `INSERT INTO services (name, price) VALUES ('   ', 10)`,
			"zero duration":    `INSERT INTO services (name, price, duration_minutes) VALUES ('Basic Clean', 10, 0)`,
			"missing price":    `INSERT INTO services (name) VALUES ('Basic Clean')`,
			"negative product": `INSERT INTO products (name, price) VALUES ('Sikat', -5)`,
		}
		for name, stmt := range rejected {
			_, err := db.Exec(stmt)
			assert.Error(t, err, name)
		}

		_, err := db.Exec(`INSERT INTO services (name, price) VALUES ('Basic Clean', 0)`)
		assert.NoError(t, err)
	})

	t.Run("product updated_at default", func(t *testing.T) {
		var updatedAt time.Time
		require.NoError(t, db.QueryRow(
			`INSERT INTO products (name, price) VALUES ('Sikat', 15000) RETURNING updated_at`,
		).Scan(&updatedAt))
		assert.WithinDuration(t, time.Now(), updatedAt, time.Minute)
	})

	t.Run("second run is a no-op", func(t *testing.T) {
		assert.NoError(t, Run(db, dir))
	})
}

func TestRun_BadPath(t *testing.T) {
	db := startPostgres(t)

	err := Run(db, filepath.Join(t.TempDir(), "missing"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "migrations.Run")
}
