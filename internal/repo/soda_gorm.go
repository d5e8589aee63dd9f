package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rogerio-castellano/soda-stock/internal/models"
	"gorm.io/gorm"
)

// GormSodaRepository stores sodas through GORM. It backs the sqlite driver.
type GormSodaRepository struct {
	db *gorm.DB
}

// NewGormSodaRepository builds a repository tied to the provided GORM DB.
func NewGormSodaRepository(db *gorm.DB) *GormSodaRepository {
	return &GormSodaRepository{db: db}
}

// Save creates the soda when it has no ID yet, otherwise updates every column.
func (r *GormSodaRepository) Save(ctx context.Context, soda models.Soda) (models.Soda, error) {
	tx := r.db.WithContext(ctx)

	if soda.ID == 0 {
		if err := tx.Create(&soda).Error; err != nil {
			return models.Soda{}, translateGormError(err)
		}
		return soda, nil
	}

	res := tx.Model(&models.Soda{}).Where("id = ?", soda.ID).Updates(map[string]any{
		"name":     soda.Name,
		"max":      soda.Max,
		"quantity": soda.Quantity,
		"size":     soda.Size,
	})
	if res.Error != nil {
		return models.Soda{}, translateGormError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.Soda{}, ErrSodaNotFound
	}
	return soda, nil
}

// FindByID loads the soda with the given ID.
func (r *GormSodaRepository) FindByID(ctx context.Context, id int64) (models.Soda, error) {
	var soda models.Soda
	if err := r.db.WithContext(ctx).First(&soda, "id = ?", id).Error; err != nil {
		return models.Soda{}, translateGormError(err)
	}
	return soda, nil
}

// FindByName loads the soda with the given name.
func (r *GormSodaRepository) FindByName(ctx context.Context, name string) (models.Soda, error) {
	var soda models.Soda
	if err := r.db.WithContext(ctx).First(&soda, "name = ?", name).Error; err != nil {
		return models.Soda{}, translateGormError(err)
	}
	return soda, nil
}

// FindAll lists every soda ordered by ID.
func (r *GormSodaRepository) FindAll(ctx context.Context) ([]models.Soda, error) {
	sodas := []models.Soda{}
	if err := r.db.WithContext(ctx).Order("id").Find(&sodas).Error; err != nil {
		return nil, fmt.Errorf("failed to list sodas: %w", err)
	}
	return sodas, nil
}

// DeleteByID removes the soda with the given ID.
func (r *GormSodaRepository) DeleteByID(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.Soda{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete soda: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrSodaNotFound
	}
	return nil
}

// Ping verifies the datasource is reachable.
func (r *GormSodaRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func translateGormError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrSodaNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), isUniqueViolation(err):
		return ErrDuplicatedValueUnique
	}
	return fmt.Errorf("soda query failed: %w", err)
}

// isUniqueViolation matches driver messages when the dialector does not
// translate errors.
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "duplicate key value")
}
