package repo

import "context"

type Metrics struct {
	TotalSodas    int `json:"total_sodas"`
	TotalUnits    int `json:"total_units"`
	TotalCapacity int `json:"total_capacity"`
	FullCount     int `json:"full_count"`
	EmptyCount    int `json:"empty_count"`
}

type MetricsRepository interface {
	GetDashboardMetrics(ctx context.Context) (Metrics, error)
}
