package handlers

import (
	"context"

	"github.com/rogerio-castellano/soda-stock/internal/logger"
	"github.com/rogerio-castellano/soda-stock/internal/models"
	"github.com/rogerio-castellano/soda-stock/internal/repo"
)

// SodaService is the inventory behaviour the HTTP layer depends on.
type SodaService interface {
	Create(ctx context.Context, dto models.SodaDTO) (models.SodaDTO, error)
	FindByName(ctx context.Context, name string) (models.SodaDTO, error)
	ListAll(ctx context.Context) ([]models.SodaDTO, error)
	DeleteByID(ctx context.Context, id int64) error
	Increment(ctx context.Context, id int64, amount int) (models.SodaDTO, error)
	Decrement(ctx context.Context, id int64, amount int) (models.SodaDTO, error)
}

type SodaHandler struct {
	svc SodaService
	log *logger.Logger
}

func NewSodaHandler(svc SodaService, log *logger.Logger) *SodaHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &SodaHandler{svc: svc, log: log}
}

type MetricsHandler struct {
	metricsRepo repo.MetricsRepository
	log         *logger.Logger
}

func NewMetricsHandler(metricsRepo repo.MetricsRepository, log *logger.Logger) *MetricsHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &MetricsHandler{metricsRepo: metricsRepo, log: log}
}

type HealthHandler struct {
	store repo.Pinger
	log   *logger.Logger
}

func NewHealthHandler(store repo.Pinger, log *logger.Logger) *HealthHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &HealthHandler{store: store, log: log}
}
