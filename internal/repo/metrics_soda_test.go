package repo

import (
	"context"
	"testing"

	"github.com/rogerio-castellano/soda-stock/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSodaMetricsRepository(t *testing.T) {
	ctx := context.Background()
	sodas := NewInMemorySodaRepository()
	for _, s := range []models.Soda{
		{Name: "Mineiro", Max: 50, Quantity: 10, Size: models.SizeBig},
		{Name: "Guarana", Max: 20, Quantity: 20, Size: models.SizeSmall},
		{Name: "Tubaina", Max: 30, Quantity: 0, Size: models.SizeRegular},
	} {
		_, err := sodas.Save(ctx, s)
		require.NoError(t, err)
	}

	m, err := NewSodaMetricsRepository(sodas).GetDashboardMetrics(ctx)
	require.NoError(t, err)

	assert.Equal(t, Metrics{TotalSodas: 3, TotalUnits: 30, TotalCapacity: 100, FullCount: 1, EmptyCount: 1}, m)
}

func TestSodaMetricsRepository_Empty(t *testing.T) {
	m, err := NewSodaMetricsRepository(NewInMemorySodaRepository()).GetDashboardMetrics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Metrics{}, m)
}
