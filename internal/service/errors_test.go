package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorsMatchSentinels(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", &StockExceededError{ID: 1, Quantity: 3})

	assert.ErrorIs(t, wrapped, ErrStockExceeded)
	assert.NotErrorIs(t, wrapped, ErrNotFound)
	assert.ErrorIs(t, &AlreadyExistsError{Name: "x"}, ErrAlreadyExists)
	assert.ErrorIs(t, &NotFoundError{ID: 2}, ErrNotFound)
	assert.False(t, errors.Is(&NotFoundError{ID: 2}, ErrAlreadyExists))
}

func TestErrorMessagesCarryKey(t *testing.T) {
	assert.Equal(t, `soda with name "Mineiro" already exists`, (&AlreadyExistsError{Name: "Mineiro"}).Error())
	assert.Equal(t, `soda with name "Mineiro" not found`, (&NotFoundError{Name: "Mineiro"}).Error())
	assert.Equal(t, "soda with id 7 not found", (&NotFoundError{ID: 7}).Error())
	assert.Contains(t, (&StockExceededError{ID: 7, Quantity: 100}).Error(), "soda 7 by 100")
}
