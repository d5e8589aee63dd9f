package repo

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/rogerio-castellano/soda-stock/internal/config"
	"github.com/rogerio-castellano/soda-stock/internal/db"
	"github.com/rogerio-castellano/soda-stock/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getPostgresDB(t *testing.T) *sql.DB {
	t.Helper()
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set")
	}

	conn, err := db.Connect(context.Background(), config.DatabaseConfig{URL: url})
	if err != nil {
		t.Skipf("Postgres not available: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, db.Migrate(context.Background(), conn))
	return conn
}

func truncateSodas(t *testing.T, conn *sql.DB) {
	t.Helper()
	_, err := conn.Exec(`TRUNCATE sodas RESTART IDENTITY`)
	require.NoError(t, err)
}

func TestPostgresSodaRepository(t *testing.T) {
	conn := getPostgresDB(t)

	runSodaRepositoryContract(t, func(t *testing.T) SodaRepository {
		truncateSodas(t, conn)
		return NewPostgresSodaRepository(conn)
	})
}

func TestPostgresMetricsRepository(t *testing.T) {
	conn := getPostgresDB(t)
	truncateSodas(t, conn)
	ctx := context.Background()

	sodas := NewPostgresSodaRepository(conn)
	for _, s := range []models.Soda{
		{Name: "Mineiro", Max: 50, Quantity: 10, Size: models.SizeBig},
		{Name: "Guarana", Max: 20, Quantity: 20, Size: models.SizeSmall},
		{Name: "Tubaina", Max: 30, Quantity: 0, Size: models.SizeRegular},
	} {
		_, err := sodas.Save(ctx, s)
		require.NoError(t, err)
	}

	m, err := NewPostgresMetricsRepository(conn).GetDashboardMetrics(ctx)
	require.NoError(t, err)
	assert.Equal(t, Metrics{TotalSodas: 3, TotalUnits: 30, TotalCapacity: 100, FullCount: 1, EmptyCount: 1}, m)
}
