package repo

import (
	"context"
	"testing"

	"github.com/rogerio-castellano/soda-stock/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemorySodaRepository(t *testing.T) {
	runSodaRepositoryContract(t, func(t *testing.T) SodaRepository {
		return NewInMemorySodaRepository()
	})
}

func TestInMemorySodaRepository_ClearKeepsSequence(t *testing.T) {
	ctx := context.Background()
	r := NewInMemorySodaRepository()

	first, err := r.Save(ctx, models.Soda{Name: "Mineiro", Max: 50, Quantity: 10, Size: models.SizeBig})
	require.NoError(t, err)

	r.Clear()

	second, err := r.Save(ctx, models.Soda{Name: "Mineiro", Max: 50, Quantity: 10, Size: models.SizeBig})
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}

func TestInMemorySodaRepository_FindAllReturnsCopy(t *testing.T) {
	ctx := context.Background()
	r := NewInMemorySodaRepository()
	_, err := r.Save(ctx, models.Soda{Name: "Mineiro", Max: 50, Quantity: 10, Size: models.SizeBig})
	require.NoError(t, err)

	all, err := r.FindAll(ctx)
	require.NoError(t, err)
	all[0].Quantity = 99

	stored, err := r.FindByName(ctx, "Mineiro")
	require.NoError(t, err)
	assert.Equal(t, 10, stored.Quantity)
}
