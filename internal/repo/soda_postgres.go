package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rogerio-castellano/soda-stock/internal/models"
)

const (
	queryTimeout      = 3 * time.Second
	pgUniqueViolation = "23505"
	sodaColumns       = `id, name, max, quantity, size`
)

type PostgresSodaRepository struct {
	db *sql.DB
}

func NewPostgresSodaRepository(db *sql.DB) *PostgresSodaRepository {
	return &PostgresSodaRepository{db: db}
}

func (r *PostgresSodaRepository) Save(ctx context.Context, s models.Soda) (models.Soda, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if s.ID == 0 {
		query := `INSERT INTO sodas (name, max, quantity, size) VALUES ($1, $2, $3, $4) RETURNING id`
		err := r.db.QueryRowContext(ctx, query, s.Name, s.Max, s.Quantity, string(s.Size)).Scan(&s.ID)
		if err != nil {
			return models.Soda{}, translatePgError(err)
		}
		return s, nil
	}

	query := `UPDATE sodas SET name = $1, max = $2, quantity = $3, size = $4 WHERE id = $5`
	res, err := r.db.ExecContext(ctx, query, s.Name, s.Max, s.Quantity, string(s.Size), s.ID)
	if err != nil {
		return models.Soda{}, translatePgError(err)
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Soda{}, ErrSodaNotFound
	}
	return s, nil
}

func (r *PostgresSodaRepository) FindByID(ctx context.Context, id int64) (models.Soda, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	row := r.db.QueryRowContext(ctx, `SELECT `+sodaColumns+` FROM sodas WHERE id = $1`, id)
	return scanSoda(row)
}

func (r *PostgresSodaRepository) FindByName(ctx context.Context, name string) (models.Soda, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	row := r.db.QueryRowContext(ctx, `SELECT `+sodaColumns+` FROM sodas WHERE name = $1`, name)
	return scanSoda(row)
}

func (r *PostgresSodaRepository) FindAll(ctx context.Context) ([]models.Soda, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT `+sodaColumns+` FROM sodas ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sodas: %w", err)
	}
	defer rows.Close()

	sodas := []models.Soda{}
	for rows.Next() {
		var s models.Soda
		var size string
		if err := rows.Scan(&s.ID, &s.Name, &s.Max, &s.Quantity, &size); err != nil {
			return nil, fmt.Errorf("failed to scan soda: %w", err)
		}
		s.Size = models.SodaSize(size)
		sodas = append(sodas, s)
	}
	return sodas, rows.Err()
}

func (r *PostgresSodaRepository) DeleteByID(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM sodas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete soda: %w", err)
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrSodaNotFound
	}
	return nil
}

func (r *PostgresSodaRepository) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return r.db.PingContext(ctx)
}

func scanSoda(row *sql.Row) (models.Soda, error) {
	var s models.Soda
	var size string
	err := row.Scan(&s.ID, &s.Name, &s.Max, &s.Quantity, &size)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Soda{}, ErrSodaNotFound
	}
	if err != nil {
		return models.Soda{}, fmt.Errorf("failed to fetch soda: %w", err)
	}
	s.Size = models.SodaSize(size)
	return s, nil
}

func translatePgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return ErrDuplicatedValueUnique
	}
	return fmt.Errorf("failed to save soda: %w", err)
}
