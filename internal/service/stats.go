package service

import (
	"OrderKeeper/internal/model"
	"OrderKeeper/internal/repo"
	"context"
)

// StatsService отдаёт готовые агрегаты хранилища без пересчёта.
type StatsService struct {
	stats repo.StatsRepository
}

// NewStatsService создаёт сервис статистики.
func NewStatsService(stats repo.StatsRepository) *StatsService {
	return &StatsService{stats: stats}
}

func (s *StatsService) Get(ctx context.Context) (model.Statistics, error) {
	return s.stats.GetStatistics(ctx)
}
