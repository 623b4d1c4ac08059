package analytics

import (
	"sort"

	"bizdash/pkg/contracts/domain"
)

// MonthlyTrend buckets records by (year, month), ascending.
func MonthlyTrend[R domain.Record](records []R) []domain.MonthlyPoint {
	type key struct{ year, month int }

	index := make(map[key]int)
	var points []domain.MonthlyPoint
	var sums []amount
	for _, r := range records {
		k := key{r.RecordYear(), r.RecordMonth()}
		i, ok := index[k]
		if !ok {
			i = len(points)
			index[k] = i
			points = append(points, domain.MonthlyPoint{Year: k.year, Month: k.month})
			sums = append(sums, amount{})
		}
		points[i].Count++
		sums[i].add(r.Amount())
	}
	for i := range points {
		points[i].Value = sums[i].float()
	}

	sort.SliceStable(points, func(i, j int) bool {
		if points[i].Year != points[j].Year {
			return points[i].Year < points[j].Year
		}
		return points[i].Month < points[j].Month
	})
	if points == nil {
		points = []domain.MonthlyPoint{}
	}
	return points
}

// ValueByYear sums amounts per year.
func ValueByYear[R domain.Record](records []R) map[int]float64 {
	sums := make(map[int]*amount)
	for _, r := range records {
		if sums[r.RecordYear()] == nil {
			sums[r.RecordYear()] = &amount{}
		}
		sums[r.RecordYear()].add(r.Amount())
	}
	out := make(map[int]float64, len(sums))
	for y, s := range sums {
		out[y] = s.float()
	}
	return out
}

// CountByYear counts records per year.
func CountByYear[R domain.Record](records []R) map[int]int {
	out := make(map[int]int)
	for _, r := range records {
		out[r.RecordYear()]++
	}
	return out
}

// ClientEvolution reports, per year of active records, how many distinct
// clients bought, how many had not bought the year before and how many of
// the previous year's clients did not come back. All clients of the first
// year count as new.
func ClientEvolution[R domain.Record](records []R) []domain.ClientEvolution {
	active := Active(records)
	byYear := ClientsByYear(active)

	out := []domain.ClientEvolution{}
	var prev ClientSet
	for _, y := range distinctYears(active) {
		cur := byYear[y]
		e := domain.ClientEvolution{Year: y, Total: len(cur)}
		for k := range cur {
			if !prev.Has(k) {
				e.New++
			}
		}
		for k := range prev {
			if !cur.Has(k) {
				e.Lost++
			}
		}
		out = append(out, e)
		prev = cur
	}
	return out
}

// RevenueHighlights computes the headline numbers of the revenue view over
// active records. Growth compares the last two observed years and is left
// nil when there are fewer than two years or the earlier one sums to zero.
func RevenueHighlights[R domain.Record](records []R) domain.RevenueHighlights {
	active := Active(records)
	trend := MonthlyTrend(active)

	h := domain.RevenueHighlights{TotalValue: Total(active)}

	var sum amount
	for i, p := range trend {
		sum.add(p.Value)
		if h.BestMonth == nil || p.Value > h.BestMonth.Value {
			best := trend[i]
			h.BestMonth = &best
		}
	}
	h.AvgPerMonth = ratio(sum.float(), float64(len(trend)))

	years := distinctYears(active)
	if len(years) >= 2 {
		values := ValueByYear(active)
		from, to := years[len(years)-2], years[len(years)-1]
		if values[from] > 0 {
			g := (values[to] - values[from]) / values[from] * 100
			h.GrowthPercent = &g
			h.GrowthFromYear = from
			h.GrowthToYear = to
		}
	}
	return h
}
