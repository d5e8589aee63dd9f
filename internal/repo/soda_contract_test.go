package repo

import (
	"context"
	"testing"

	"github.com/rogerio-castellano/soda-stock/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runSodaRepositoryContract checks the behaviour every SodaRepository must share.
// newRepo must return an empty store.
func runSodaRepositoryContract(t *testing.T, newRepo func(t *testing.T) SodaRepository) {
	ctx := context.Background()

	t.Run("save assigns ids", func(t *testing.T) {
		r := newRepo(t)

		first, err := r.Save(ctx, models.Soda{Name: "Mineiro", Max: 50, Quantity: 10, Size: models.SizeBig})
		require.NoError(t, err)
		second, err := r.Save(ctx, models.Soda{Name: "Guarana", Max: 30, Quantity: 0, Size: models.SizeSmall})
		require.NoError(t, err)

		assert.NotZero(t, first.ID)
		assert.NotZero(t, second.ID)
		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("find by id and name", func(t *testing.T) {
		r := newRepo(t)
		saved, err := r.Save(ctx, models.Soda{Name: "Tubaina", Max: 20, Quantity: 5, Size: models.SizeRegular})
		require.NoError(t, err)

		byID, err := r.FindByID(ctx, saved.ID)
		require.NoError(t, err)
		assert.Equal(t, saved, byID)

		byName, err := r.FindByName(ctx, "Tubaina")
		require.NoError(t, err)
		assert.Equal(t, saved, byName)
	})

	t.Run("missing records", func(t *testing.T) {
		r := newRepo(t)

		_, err := r.FindByID(ctx, 999)
		assert.ErrorIs(t, err, ErrSodaNotFound)
		_, err = r.FindByName(ctx, "Nope")
		assert.ErrorIs(t, err, ErrSodaNotFound)
	})

	t.Run("duplicate name rejected", func(t *testing.T) {
		r := newRepo(t)
		_, err := r.Save(ctx, models.Soda{Name: "Mineiro", Max: 50, Quantity: 10, Size: models.SizeBig})
		require.NoError(t, err)

		_, err = r.Save(ctx, models.Soda{Name: "Mineiro", Max: 10, Quantity: 1, Size: models.SizeSmall})
		assert.ErrorIs(t, err, ErrDuplicatedValueUnique)

		all, err := r.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("update in place", func(t *testing.T) {
		r := newRepo(t)
		saved, err := r.Save(ctx, models.Soda{Name: "Mineiro", Max: 50, Quantity: 10, Size: models.SizeBig})
		require.NoError(t, err)

		saved.Quantity = 25
		updated, err := r.Save(ctx, saved)
		require.NoError(t, err)
		assert.Equal(t, 25, updated.Quantity)

		reloaded, err := r.FindByID(ctx, saved.ID)
		require.NoError(t, err)
		assert.Equal(t, 25, reloaded.Quantity)
		assert.Equal(t, saved.ID, reloaded.ID)
	})

	t.Run("update unknown id", func(t *testing.T) {
		r := newRepo(t)
		_, err := r.Save(ctx, models.Soda{ID: 404, Name: "Ghost", Max: 1, Quantity: 0, Size: models.SizeSmall})
		assert.ErrorIs(t, err, ErrSodaNotFound)
	})

	t.Run("find all ordered and empty", func(t *testing.T) {
		r := newRepo(t)

		all, err := r.FindAll(ctx)
		require.NoError(t, err)
		assert.NotNil(t, all)
		assert.Empty(t, all)

		for _, name := range []string{"A", "B", "C"} {
			_, err := r.Save(ctx, models.Soda{Name: name, Max: 10, Quantity: 1, Size: models.SizeSmall})
			require.NoError(t, err)
		}

		all, err = r.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "A", all[0].Name)
		assert.Equal(t, "C", all[2].Name)
	})

	t.Run("delete", func(t *testing.T) {
		r := newRepo(t)
		saved, err := r.Save(ctx, models.Soda{Name: "Mineiro", Max: 50, Quantity: 10, Size: models.SizeBig})
		require.NoError(t, err)

		require.NoError(t, r.DeleteByID(ctx, saved.ID))

		_, err = r.FindByID(ctx, saved.ID)
		assert.ErrorIs(t, err, ErrSodaNotFound)
		_, err = r.FindByName(ctx, "Mineiro")
		assert.ErrorIs(t, err, ErrSodaNotFound)

		// the name is free again
		_, err = r.Save(ctx, models.Soda{Name: "Mineiro", Max: 5, Quantity: 1, Size: models.SizeBig})
		assert.NoError(t, err)
	})
}
