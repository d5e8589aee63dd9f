package service

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyExists = errors.New("soda already exists")
	ErrNotFound      = errors.New("soda not found")
	ErrStockExceeded = errors.New("stock exceeded")
)

// AlreadyExistsError reports a create for a name that is already registered.
type AlreadyExistsError struct {
	Name string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("soda with name %q already exists", e.Name)
}

func (e *AlreadyExistsError) Is(target error) bool { return target == ErrAlreadyExists }

// NotFoundError carries whichever key the lookup used.
type NotFoundError struct {
	Name string
	ID   int64
}

func (e *NotFoundError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("soda with name %q not found", e.Name)
	}
	return fmt.Sprintf("soda with id %d not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// StockExceededError reports an adjustment that would leave quantity outside [0, max].
type StockExceededError struct {
	ID       int64
	Quantity int
}

func (e *StockExceededError) Error() string {
	return fmt.Sprintf("adjusting soda %d by %d exceeds the stock bounds", e.ID, e.Quantity)
}

func (e *StockExceededError) Is(target error) bool { return target == ErrStockExceeded }
