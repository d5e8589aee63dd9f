package repo

import "context"

// SodaMetricsRepository computes the dashboard from any SodaRepository.
type SodaMetricsRepository struct {
	sodaRepo SodaRepository
}

func NewSodaMetricsRepository(sodaRepo SodaRepository) *SodaMetricsRepository {
	return &SodaMetricsRepository{sodaRepo: sodaRepo}
}

// GetDashboardMetrics implements MetricsRepository.
func (r *SodaMetricsRepository) GetDashboardMetrics(ctx context.Context) (Metrics, error) {
	m := Metrics{}

	sodas, err := r.sodaRepo.FindAll(ctx)
	if err != nil {
		return m, err
	}

	m.TotalSodas = len(sodas)
	for _, s := range sodas {
		m.TotalUnits += s.Quantity
		m.TotalCapacity += s.Max
		if s.Quantity == 0 {
			m.EmptyCount++
		}
		if s.Quantity >= s.Max {
			m.FullCount++
		}
	}
	return m, nil
}
