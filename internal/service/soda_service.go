package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rogerio-castellano/soda-stock/internal/logger"
	"github.com/rogerio-castellano/soda-stock/internal/mapper"
	"github.com/rogerio-castellano/soda-stock/internal/metrics"
	"github.com/rogerio-castellano/soda-stock/internal/models"
	"github.com/rogerio-castellano/soda-stock/internal/repo"
)

// SodaService owns the inventory rules: unique names on create, existence
// checks, and 0 <= quantity <= max on every adjustment.
type SodaService struct {
	repo    repo.SodaRepository
	log     *logger.Logger
	metrics *metrics.Recorder
	locks   *keyedMutex
}

type Option func(*SodaService)

func WithLogger(l *logger.Logger) Option {
	return func(s *SodaService) {
		if l != nil {
			s.log = l
		}
	}
}

func WithMetrics(r *metrics.Recorder) Option {
	return func(s *SodaService) {
		s.metrics = r
	}
}

func NewSodaService(r repo.SodaRepository, opts ...Option) *SodaService {
	s := &SodaService{
		repo:  r,
		log:   logger.Nop(),
		locks: newKeyedMutex(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func nameKey(name string) string { return "name:" + name }

func idKey(id int64) string { return "id:" + strconv.FormatInt(id, 10) }

func (s *SodaService) Create(ctx context.Context, dto models.SodaDTO) (models.SodaDTO, error) {
	unlock := s.locks.Lock(nameKey(dto.Name))
	defer unlock()

	_, err := s.repo.FindByName(ctx, dto.Name)
	switch {
	case err == nil:
		return models.SodaDTO{}, &AlreadyExistsError{Name: dto.Name}
	case !errors.Is(err, repo.ErrSodaNotFound):
		return models.SodaDTO{}, fmt.Errorf("looking up soda %q: %w", dto.Name, err)
	}

	soda := mapper.ToModel(dto)
	soda.ID = 0

	saved, err := s.repo.Save(ctx, soda)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			return models.SodaDTO{}, &AlreadyExistsError{Name: dto.Name}
		}
		return models.SodaDTO{}, fmt.Errorf("saving soda %q: %w", dto.Name, err)
	}

	s.metrics.SodaCreated()
	s.log.Info(s.log.WithFields(ctx, map[string]any{"soda_id": saved.ID, "name": saved.Name}), "soda.created")
	return mapper.ToDTO(saved), nil
}

func (s *SodaService) FindByName(ctx context.Context, name string) (models.SodaDTO, error) {
	soda, err := s.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, repo.ErrSodaNotFound) {
			return models.SodaDTO{}, &NotFoundError{Name: name}
		}
		return models.SodaDTO{}, fmt.Errorf("looking up soda %q: %w", name, err)
	}
	s.log.Debug(s.log.WithField(ctx, "name", name), "soda.found")
	return mapper.ToDTO(soda), nil
}

func (s *SodaService) ListAll(ctx context.Context) ([]models.SodaDTO, error) {
	sodas, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing sodas: %w", err)
	}
	return mapper.ToDTOs(sodas), nil
}

func (s *SodaService) DeleteByID(ctx context.Context, id int64) error {
	unlock := s.locks.Lock(idKey(id))
	defer unlock()

	if _, err := s.findByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("deleting soda %d: %w", id, err)
	}

	s.metrics.SodaDeleted()
	s.log.Info(s.log.WithField(ctx, "soda_id", id), "soda.deleted")
	return nil
}

// Increment adds amount to the stock. A result outside [0, max] is rejected
// and nothing is persisted.
func (s *SodaService) Increment(ctx context.Context, id int64, amount int) (models.SodaDTO, error) {
	return s.adjust(ctx, id, amount, metrics.DirectionIncrement, amount)
}

// Decrement removes amount from the stock. A result outside [0, max] is
// rejected and nothing is persisted.
func (s *SodaService) Decrement(ctx context.Context, id int64, amount int) (models.SodaDTO, error) {
	return s.adjust(ctx, id, amount, metrics.DirectionDecrement, -amount)
}

func (s *SodaService) adjust(ctx context.Context, id int64, amount int, direction string, delta int) (models.SodaDTO, error) {
	unlock := s.locks.Lock(idKey(id))
	defer unlock()

	ctx = s.log.WithFields(ctx, map[string]any{
		"soda_id":   id,
		"direction": direction,
		"amount":    amount,
	})

	soda, err := s.findByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.metrics.StockAdjusted(direction, metrics.OutcomeNotFound)
		} else {
			s.metrics.StockAdjusted(direction, metrics.OutcomeError)
		}
		return models.SodaDTO{}, err
	}

	// Records created above max may still be drawn down.
	newQuantity := soda.Quantity + delta
	if newQuantity < 0 || (newQuantity > soda.Max && newQuantity > soda.Quantity) {
		s.metrics.StockAdjusted(direction, metrics.OutcomeRejected)
		s.log.Warn(s.log.WithFields(ctx, map[string]any{"quantity": soda.Quantity, "max": soda.Max}), "stock.rejected")
		return models.SodaDTO{}, &StockExceededError{ID: id, Quantity: amount}
	}

	soda.Quantity = newQuantity
	saved, err := s.repo.Save(ctx, soda)
	if err != nil {
		s.metrics.StockAdjusted(direction, metrics.OutcomeError)
		if errors.Is(err, repo.ErrSodaNotFound) {
			return models.SodaDTO{}, &NotFoundError{ID: id}
		}
		return models.SodaDTO{}, fmt.Errorf("saving soda %d: %w", id, err)
	}

	s.metrics.StockAdjusted(direction, metrics.OutcomeApplied)
	s.log.Info(s.log.WithField(ctx, "quantity", saved.Quantity), "stock.adjusted")
	return mapper.ToDTO(saved), nil
}

func (s *SodaService) findByID(ctx context.Context, id int64) (models.Soda, error) {
	soda, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrSodaNotFound) {
			return models.Soda{}, &NotFoundError{ID: id}
		}
		return models.Soda{}, fmt.Errorf("looking up soda %d: %w", id, err)
	}
	return soda, nil
}
