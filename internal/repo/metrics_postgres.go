package repo

import (
	"context"
	"database/sql"
	"fmt"
)

type PostgresMetricsRepository struct {
	db *sql.DB
}

func NewPostgresMetricsRepository(db *sql.DB) *PostgresMetricsRepository {
	return &PostgresMetricsRepository{db: db}
}

func (r *PostgresMetricsRepository) GetDashboardMetrics(ctx context.Context) (Metrics, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var m Metrics
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(quantity), 0),
		       COALESCE(SUM(max), 0),
		       COUNT(*) FILTER (WHERE quantity >= max),
		       COUNT(*) FILTER (WHERE quantity = 0)
		FROM sodas
	`).Scan(&m.TotalSodas, &m.TotalUnits, &m.TotalCapacity, &m.FullCount, &m.EmptyCount)
	if err != nil {
		return Metrics{}, fmt.Errorf("failed to aggregate metrics: %w", err)
	}
	return m, nil
}
