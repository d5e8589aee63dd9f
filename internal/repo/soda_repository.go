package repo

import (
	"context"
	"errors"

	"github.com/rogerio-castellano/soda-stock/internal/models"
)

// SodaRepository defines the persistence operations the inventory needs.
//
// Save inserts when the ID is zero and assigns one, otherwise it replaces the
// stored record with the same ID.
type SodaRepository interface {
	Save(ctx context.Context, soda models.Soda) (models.Soda, error)
	FindByID(ctx context.Context, id int64) (models.Soda, error)
	FindByName(ctx context.Context, name string) (models.Soda, error)
	FindAll(ctx context.Context) ([]models.Soda, error)
	DeleteByID(ctx context.Context, id int64) error
}

// Pinger exposes the readiness check of a store.
type Pinger interface {
	Ping(ctx context.Context) error
}

var (
	// ErrSodaNotFound is returned when no soda matches the lookup.
	ErrSodaNotFound = errors.New("soda not found")
	// ErrDuplicatedValueUnique is returned when a unique column would be duplicated.
	ErrDuplicatedValueUnique = errors.New("duplicated value for unique field")
)
