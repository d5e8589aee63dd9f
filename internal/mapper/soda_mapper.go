// Package mapper translates between the stored soda record and its external
// representation.
package mapper

import "github.com/rogerio-castellano/soda-stock/internal/models"

// ToModel copies an external soda into a record. Unset pointers map to zero.
func ToModel(dto models.SodaDTO) models.Soda {
	soda := models.Soda{
		Name: dto.Name,
		Size: dto.Size,
	}
	if dto.ID != nil {
		soda.ID = *dto.ID
	}
	if dto.Max != nil {
		soda.Max = *dto.Max
	}
	if dto.Quantity != nil {
		soda.Quantity = *dto.Quantity
	}
	return soda
}

// ToDTO copies a record into its external representation.
func ToDTO(soda models.Soda) models.SodaDTO {
	id, max, quantity := soda.ID, soda.Max, soda.Quantity
	return models.SodaDTO{
		ID:       &id,
		Name:     soda.Name,
		Max:      &max,
		Quantity: &quantity,
		Size:     soda.Size,
	}
}

// ToDTOs maps every record. The result is never nil.
func ToDTOs(sodas []models.Soda) []models.SodaDTO {
	out := make([]models.SodaDTO, len(sodas))
	for i, s := range sodas {
		out[i] = ToDTO(s)
	}
	return out
}
