package services

import (
	"sort"

	"bizdash/internal/analytics"
	"bizdash/internal/filter"
	"bizdash/pkg/contracts/domain"
)

// view is one dataset seen through the filter. recordView implements it
// for every record schema so the service never switches on types.
type view interface {
	records(st filter.State) (any, int)
	options() filter.Options
	stats(st filter.State) any
	ranking(st filter.State) []domain.ClientRanking
	trend(st filter.State) []domain.MonthlyPoint
	rollup(st filter.State, dim string) ([]domain.CategoryRollup, bool)
	dimensions() []string
	cohorts() any
	lifecycle() ([]domain.ClientLifecycleRow, []int)
	evolution() []domain.ClientEvolution
	highlights(st filter.State) domain.RevenueHighlights
	direct(st filter.State) (domain.DirectSplit, bool)
}

type recordView[R domain.Record] struct {
	all      []R
	statsFn  func([]R) any
	rollups  map[string]func([]R) []domain.CategoryRollup
	directFn func([]R) domain.DirectSplit
}

func (v recordView[R]) filtered(st filter.State) []R {
	return filter.Apply(v.all, st)
}

func (v recordView[R]) records(st filter.State) (any, int) {
	out := v.filtered(st)
	return out, len(out)
}

func (v recordView[R]) options() filter.Options {
	return filter.OptionsFor(v.all)
}

func (v recordView[R]) stats(st filter.State) any {
	return v.statsFn(v.filtered(st))
}

func (v recordView[R]) ranking(st filter.State) []domain.ClientRanking {
	return analytics.ClientRanking(v.filtered(st))
}

func (v recordView[R]) trend(st filter.State) []domain.MonthlyPoint {
	return analytics.MonthlyTrend(analytics.Active(v.filtered(st)))
}

func (v recordView[R]) rollup(st filter.State, dim string) ([]domain.CategoryRollup, bool) {
	fn, ok := v.rollups[dim]
	if !ok {
		return nil, false
	}
	return fn(v.filtered(st)), true
}

func (v recordView[R]) dimensions() []string {
	dims := make([]string, 0, len(v.rollups))
	for d := range v.rollups {
		dims = append(dims, d)
	}
	sort.Strings(dims)
	return dims
}

// Cohorts, lifecycle and evolution always look at the unfiltered
// collection: they compare years, so a year selection would hide the very
// movement they report.
func (v recordView[R]) cohorts() any {
	return analytics.CohortSections(v.all)
}

func (v recordView[R]) lifecycle() ([]domain.ClientLifecycleRow, []int) {
	years := filter.Years(v.all)
	return analytics.ClientLifecycle(v.all, years), years
}

func (v recordView[R]) evolution() []domain.ClientEvolution {
	return analytics.ClientEvolution(v.all)
}

func (v recordView[R]) highlights(st filter.State) domain.RevenueHighlights {
	return analytics.RevenueHighlights(v.filtered(st))
}

func (v recordView[R]) direct(st filter.State) (domain.DirectSplit, bool) {
	if v.directFn == nil {
		return domain.DirectSplit{}, false
	}
	return v.directFn(v.filtered(st)), true
}

func companyRollup[R domain.Record](records []R) []domain.CategoryRollup {
	return analytics.ByCompany(records)
}

func newInvoiceView(all []domain.Invoice) view {
	return recordView[domain.Invoice]{
		all:     all,
		statsFn: func(r []domain.Invoice) any { return analytics.InvoiceStats(r) },
		rollups: map[string]func([]domain.Invoice) []domain.CategoryRollup{
			"empresa":   companyRollup[domain.Invoice],
			"atividade": analytics.ByActivity,
		},
	}
}

func newContractView(all []domain.Contract) view {
	return recordView[domain.Contract]{
		all:     all,
		statsFn: func(r []domain.Contract) any { return analytics.ContractStats(r) },
		rollups: map[string]func([]domain.Contract) []domain.CategoryRollup{
			"empresa":        companyRollup[domain.Contract],
			"empreendimento": analytics.ByProject,
			"corretor":       analytics.ByBroker,
		},
		directFn: analytics.DirectSplit[domain.Contract],
	}
}

func newSaleView(all []domain.Sale) view {
	return recordView[domain.Sale]{
		all:     all,
		statsFn: func(r []domain.Sale) any { return analytics.SaleStats(r) },
		rollups: map[string]func([]domain.Sale) []domain.CategoryRollup{
			"empresa":   companyRollup[domain.Sale],
			"produto":   analytics.ByProduct,
			"categoria": analytics.ByCategory,
			"vendedor":  analytics.BySeller,
		},
		directFn: analytics.DirectSplit[domain.Sale],
	}
}
