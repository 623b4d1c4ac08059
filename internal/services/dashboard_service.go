package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"bizdash/internal/analytics"
	apperrors "bizdash/internal/errors"
	"bizdash/internal/filter"
	"bizdash/internal/format"
	"bizdash/internal/infrastructure"
	"bizdash/internal/snapshot"
	"bizdash/pkg/contracts/domain"
)

// Dataset names a record collection of the snapshot.
type Dataset string

const (
	DatasetInvoices  Dataset = "invoices"
	DatasetContracts Dataset = "contracts"
	DatasetSales     Dataset = "sales"
)

// Datasets lists the datasets served by the dashboard.
var Datasets = []Dataset{DatasetInvoices, DatasetContracts, DatasetSales}

// ParseDataset validates a dataset name.
func ParseDataset(name string) (Dataset, error) {
	for _, ds := range Datasets {
		if string(ds) == name {
			return ds, nil
		}
	}
	return "", apperrors.NewAppError(apperrors.ErrTypeNotFound, fmt.Sprintf("dataset %q not found", name), ErrUnknownDataset)
}

// DashboardService answers dashboard queries from a loaded snapshot and
// the session's filter store.
type DashboardService struct {
	snap     *snapshot.Snapshot
	store    *filter.Store
	views    map[Dataset]view
	dataset  Dataset
	metrics  *infrastructure.Metrics
	logger   *slog.Logger
	loadedAt time.Time
}

// NewDashboardService wires a snapshot and a filter store. dataset is the
// collection whose facets the filter UI offers. metrics may be nil.
func NewDashboardService(snap *snapshot.Snapshot, store *filter.Store, dataset Dataset, metrics *infrastructure.Metrics, logger *slog.Logger) *DashboardService {
	if logger == nil {
		logger = slog.Default()
	}

	s := &DashboardService{
		snap:  snap,
		store: store,
		views: map[Dataset]view{
			DatasetInvoices:  newInvoiceView(snap.Invoices),
			DatasetContracts: newContractView(snap.Contracts),
			DatasetSales:     newSaleView(snap.Sales),
		},
		dataset:  dataset,
		metrics:  metrics,
		logger:   infrastructure.WithComponent(logger, "dashboard_service"),
		loadedAt: time.Now(),
	}

	if metrics != nil {
		metrics.SnapshotRecords.WithLabelValues("invoices").Set(float64(len(snap.Invoices)))
		metrics.SnapshotRecords.WithLabelValues("contracts").Set(float64(len(snap.Contracts)))
		metrics.SnapshotRecords.WithLabelValues("sales").Set(float64(len(snap.Sales)))
		metrics.SnapshotRecords.WithLabelValues("clients").Set(float64(len(snap.Clients)))
	}

	return s
}

// DefaultDataset returns the dataset whose facets drive the filter UI.
func (s *DashboardService) DefaultDataset() Dataset {
	return s.dataset
}

// Counts returns the size of every snapshot collection.
func (s *DashboardService) Counts() map[string]int {
	return map[string]int{
		"invoices":  len(s.snap.Invoices),
		"contracts": len(s.snap.Contracts),
		"sales":     len(s.snap.Sales),
		"clients":   len(s.snap.Clients),
	}
}

// LoadedAt reports when the snapshot was wired into the service.
func (s *DashboardService) LoadedAt() time.Time {
	return s.loadedAt
}

// State returns the current filter state.
func (s *DashboardService) State() filter.State {
	return s.store.State()
}

// Dispatch validates a and applies it to the filter store.
func (s *DashboardService) Dispatch(ctx context.Context, a filter.Action) (filter.State, error) {
	if err := a.Validate(); err != nil {
		return filter.State{}, apperrors.NewAppError(apperrors.ErrTypeValidation, err.Error(), ErrInvalidAction).
			WithContext("action", string(a.Type))
	}

	st := s.store.Dispatch(a)
	if s.metrics != nil {
		s.metrics.FilterDispatches.WithLabelValues(string(a.Type)).Inc()
	}

	s.logger.DebugContext(ctx, "Filter action dispatched",
		slog.String("action", string(a.Type)),
		slog.Int("years", len(st.Years)),
		slog.Bool("include_cancelled", st.IncludeCancelled))

	return st, nil
}

// Reset returns the filter to its initial state.
func (s *DashboardService) Reset(ctx context.Context) filter.State {
	st, _ := s.Dispatch(ctx, filter.Reset())
	return st
}

func (s *DashboardService) view(ds Dataset) (view, error) {
	v, ok := s.views[ds]
	if !ok {
		return nil, apperrors.NewAppError(apperrors.ErrTypeNotFound, fmt.Sprintf("dataset %q not found", ds), ErrUnknownDataset)
	}
	return v, nil
}

// observe records how long one aggregate took.
func (s *DashboardService) observe(ds Dataset, name string) func() {
	if s.metrics == nil {
		return func() {}
	}
	start := time.Now()
	return func() {
		s.metrics.AggregateDuration.WithLabelValues(string(ds), name).Observe(time.Since(start).Seconds())
	}
}

// Facets lists the years and facet values of the unfiltered dataset.
func (s *DashboardService) Facets(ds Dataset) (filter.Options, error) {
	v, err := s.view(ds)
	if err != nil {
		return filter.Options{}, err
	}
	return v.options(), nil
}

// Records returns the filtered records of ds and their count.
func (s *DashboardService) Records(ds Dataset) (any, int, error) {
	v, err := s.view(ds)
	if err != nil {
		return nil, 0, err
	}
	defer s.observe(ds, "records")()
	records, n := v.records(s.store.State())
	return records, n, nil
}

// Stats returns the summary block of the filtered records.
func (s *DashboardService) Stats(ds Dataset) (any, error) {
	v, err := s.view(ds)
	if err != nil {
		return nil, err
	}
	defer s.observe(ds, "stats")()
	return v.stats(s.store.State()), nil
}

// Ranking returns the client ranking of the filtered records.
func (s *DashboardService) Ranking(ds Dataset) ([]domain.ClientRanking, error) {
	v, err := s.view(ds)
	if err != nil {
		return nil, err
	}
	defer s.observe(ds, "ranking")()
	return v.ranking(s.store.State()), nil
}

// Trend returns the monthly series of the filtered active records.
func (s *DashboardService) Trend(ds Dataset) ([]domain.MonthlyPoint, error) {
	v, err := s.view(ds)
	if err != nil {
		return nil, err
	}
	defer s.observe(ds, "trend")()
	return v.trend(s.store.State()), nil
}

// Rollup groups the filtered records by a named dimension.
func (s *DashboardService) Rollup(ds Dataset, dimension string) ([]domain.CategoryRollup, error) {
	v, err := s.view(ds)
	if err != nil {
		return nil, err
	}
	defer s.observe(ds, "rollup")()
	rows, ok := v.rollup(s.store.State(), dimension)
	if !ok {
		return nil, apperrors.NewAppError(apperrors.ErrTypeNotFound, fmt.Sprintf("rollup %q not found", dimension), ErrUnknownDimension).
			WithContext("dataset", string(ds)).
			WithContext("available", v.dimensions())
	}
	return rows, nil
}

// Dimensions lists the rollup dimensions of ds.
func (s *DashboardService) Dimensions(ds Dataset) ([]string, error) {
	v, err := s.view(ds)
	if err != nil {
		return nil, err
	}
	return v.dimensions(), nil
}

// Cohorts lists, for every pair of consecutive years, the clients that did
// not come back.
func (s *DashboardService) Cohorts(ds Dataset) (any, error) {
	v, err := s.view(ds)
	if err != nil {
		return nil, err
	}
	defer s.observe(ds, "cohorts")()
	return v.cohorts(), nil
}

// LifecycleQuery narrows the lifecycle table.
type LifecycleQuery struct {
	// Search matches client names, ignoring case and accents, or keys.
	Search string
	// Status keeps clients with this status in the last year.
	Status domain.LifecycleStatus
}

// LifecycleResult is the lifecycle table with its last-year summary.
type LifecycleResult struct {
	Years   []int                       `json:"years"`
	Summary domain.LifecycleSummary     `json:"summary"`
	Rows    []domain.ClientLifecycleRow `json:"rows"`
}

// Lifecycle classifies every client per year. The summary always counts
// all clients; q only narrows the rows.
func (s *DashboardService) Lifecycle(ds Dataset, q LifecycleQuery) (LifecycleResult, error) {
	v, err := s.view(ds)
	if err != nil {
		return LifecycleResult{}, err
	}
	defer s.observe(ds, "lifecycle")()

	rows, years := v.lifecycle()
	res := LifecycleResult{Years: years, Rows: rows}
	if len(years) == 0 {
		return res, nil
	}

	last := years[len(years)-1]
	res.Summary = analytics.SummarizeLifecycle(rows, last)
	res.Rows = analytics.SearchLifecycle(res.Rows, q.Search)
	if q.Status != "" {
		res.Rows = analytics.LifecycleWithStatus(res.Rows, last, q.Status)
	}
	return res, nil
}

// Evolution returns new and lost clients per year.
func (s *DashboardService) Evolution(ds Dataset) ([]domain.ClientEvolution, error) {
	v, err := s.view(ds)
	if err != nil {
		return nil, err
	}
	defer s.observe(ds, "evolution")()
	return v.evolution(), nil
}

// Highlights returns the revenue headline numbers of the filtered records.
func (s *DashboardService) Highlights(ds Dataset) (domain.RevenueHighlights, error) {
	v, err := s.view(ds)
	if err != nil {
		return domain.RevenueHighlights{}, err
	}
	defer s.observe(ds, "highlights")()
	return v.highlights(s.store.State()), nil
}

// Direct compares direct and brokered filtered records.
func (s *DashboardService) Direct(ds Dataset) (domain.DirectSplit, error) {
	v, err := s.view(ds)
	if err != nil {
		return domain.DirectSplit{}, err
	}
	defer s.observe(ds, "direct")()
	split, ok := v.direct(s.store.State())
	if !ok {
		return domain.DirectSplit{}, apperrors.NewAppError(apperrors.ErrTypeNotFound, fmt.Sprintf("direct split for %s not found", ds), ErrNoDirectSplit)
	}
	return split, nil
}

// Clients returns registry entries whose name, description or CNPJ match
// q. An empty q returns the whole registry.
func (s *DashboardService) Clients(q string) []domain.Client {
	q = strings.TrimSpace(q)
	if q == "" {
		return s.snap.Clients
	}
	out := []domain.Client{}
	for _, c := range s.snap.Clients {
		if format.Contains(c.Razao, q) || format.Contains(c.Descricao, q) || strings.Contains(c.Cnpj, q) {
			out = append(out, c)
		}
	}
	return out
}
