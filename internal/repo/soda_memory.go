package repo

import (
	"context"
	"sync"

	"github.com/rogerio-castellano/soda-stock/internal/models"
)

// InMemorySodaRepository is an in-memory implementation of SodaRepository.
type InMemorySodaRepository struct {
	mu     sync.RWMutex
	sodas  []models.Soda
	nextID int64
}

// NewInMemorySodaRepository creates a new instance of InMemorySodaRepository.
func NewInMemorySodaRepository() *InMemorySodaRepository {
	return &InMemorySodaRepository{
		sodas:  []models.Soda{},
		nextID: 1,
	}
}

// Save adds a new soda or replaces an existing one.
func (r *InMemorySodaRepository) Save(_ context.Context, soda models.Soda) (models.Soda, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if soda.ID == 0 {
		if r.indexOfName(soda.Name) >= 0 {
			return models.Soda{}, ErrDuplicatedValueUnique
		}
		soda.ID = r.nextID
		r.nextID++
		r.sodas = append(r.sodas, soda)
		return soda, nil
	}

	i := r.indexOfID(soda.ID)
	if i < 0 {
		return models.Soda{}, ErrSodaNotFound
	}
	if j := r.indexOfName(soda.Name); j >= 0 && j != i {
		return models.Soda{}, ErrDuplicatedValueUnique
	}
	r.sodas[i] = soda
	return soda, nil
}

// FindByID retrieves a soda by its ID.
func (r *InMemorySodaRepository) FindByID(_ context.Context, id int64) (models.Soda, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOfID(id); i >= 0 {
		return r.sodas[i], nil
	}
	return models.Soda{}, ErrSodaNotFound
}

// FindByName retrieves a soda by its unique name.
func (r *InMemorySodaRepository) FindByName(_ context.Context, name string) (models.Soda, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOfName(name); i >= 0 {
		return r.sodas[i], nil
	}
	return models.Soda{}, ErrSodaNotFound
}

// FindAll retrieves all sodas in insertion order.
func (r *InMemorySodaRepository) FindAll(_ context.Context) ([]models.Soda, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Soda, len(r.sodas))
	copy(out, r.sodas)
	return out, nil
}

// DeleteByID removes a soda from the repository by its ID.
func (r *InMemorySodaRepository) DeleteByID(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOfID(id)
	if i < 0 {
		return ErrSodaNotFound
	}
	r.sodas = append(r.sodas[:i], r.sodas[i+1:]...)
	return nil
}

// Ping always succeeds for the in-memory store.
func (r *InMemorySodaRepository) Ping(context.Context) error {
	return nil
}

// Clear drops every stored soda. IDs keep increasing.
func (r *InMemorySodaRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sodas = []models.Soda{}
}

func (r *InMemorySodaRepository) indexOfID(id int64) int {
	for i, s := range r.sodas {
		if s.ID == id {
			return i
		}
	}
	return -1
}

func (r *InMemorySodaRepository) indexOfName(name string) int {
	for i, s := range r.sodas {
		if s.Name == name {
			return i
		}
	}
	return -1
}
