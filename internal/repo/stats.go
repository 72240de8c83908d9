package repo

import (
	"OrderKeeper/internal/model"
	"context"
)

// StatsRepository — доступ к готовым агрегатам хранилища.
type StatsRepository interface {
	GetStatistics(ctx context.Context) (model.Statistics, error)
}

type statsRepo struct {
	client *Client
}

// NewStatsRepository создаёт реализацию репозитория статистики поверх табличного API.
func NewStatsRepository(c *Client) StatsRepository {
	return &statsRepo{client: c}
}

func (r *statsRepo) GetStatistics(ctx context.Context) (model.Statistics, error) {
	data, _, err := r.client.call(ctx, "getStatistics", nil)
	if err != nil {
		return nil, err
	}
	return model.Statistics(data), nil
}
