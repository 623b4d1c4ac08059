package http

import (
	"context"

	"bizdash/internal/filter"
	"bizdash/internal/services"
	"bizdash/pkg/contracts/domain"
)

// DashboardServiceInterface defines the dashboard queries served over HTTP
type DashboardServiceInterface interface {
	State() filter.State
	Dispatch(ctx context.Context, a filter.Action) (filter.State, error)
	Reset(ctx context.Context) filter.State
	DefaultDataset() services.Dataset

	Facets(ds services.Dataset) (filter.Options, error)
	Records(ds services.Dataset) (any, int, error)
	Stats(ds services.Dataset) (any, error)
	Ranking(ds services.Dataset) ([]domain.ClientRanking, error)
	Trend(ds services.Dataset) ([]domain.MonthlyPoint, error)
	Rollup(ds services.Dataset, dimension string) ([]domain.CategoryRollup, error)
	Cohorts(ds services.Dataset) (any, error)
	Lifecycle(ds services.Dataset, q services.LifecycleQuery) (services.LifecycleResult, error)
	Evolution(ds services.Dataset) ([]domain.ClientEvolution, error)
	Highlights(ds services.Dataset) (domain.RevenueHighlights, error)
	Direct(ds services.Dataset) (domain.DirectSplit, error)
	Clients(q string) []domain.Client
}
