package mapper

import (
	"testing"

	"github.com/rogerio-castellano/soda-stock/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToModelCopiesEveryField(t *testing.T) {
	id, max, qty := int64(7), 50, 10
	dto := models.SodaDTO{ID: &id, Name: "Mineiro", Max: &max, Quantity: &qty, Size: models.SizeBig}

	soda := ToModel(dto)

	assert.Equal(t, models.Soda{ID: 7, Name: "Mineiro", Max: 50, Quantity: 10, Size: models.SizeBig}, soda)
}

func TestToModelNilPointersBecomeZero(t *testing.T) {
	soda := ToModel(models.SodaDTO{Name: "Guarana", Size: models.SizeSmall})

	assert.Zero(t, soda.ID)
	assert.Zero(t, soda.Max)
	assert.Zero(t, soda.Quantity)
	assert.Equal(t, "Guarana", soda.Name)
}

func TestToDTORoundTrip(t *testing.T) {
	soda := models.Soda{ID: 3, Name: "Tubaina", Max: 20, Quantity: 4, Size: models.SizeRegular}

	dto := ToDTO(soda)
	require.NotNil(t, dto.ID)
	require.NotNil(t, dto.Max)
	require.NotNil(t, dto.Quantity)
	assert.Equal(t, int64(3), *dto.ID)
	assert.Equal(t, 20, *dto.Max)
	assert.Equal(t, 4, *dto.Quantity)
	assert.Equal(t, soda, ToModel(dto))
}

func TestToDTOsEmptyInput(t *testing.T) {
	out := ToDTOs(nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
