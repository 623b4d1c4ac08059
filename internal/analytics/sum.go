package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"bizdash/pkg/contracts/domain"
)

// amount accumulates monetary values exactly.
type amount struct {
	d decimal.Decimal
}

func (a *amount) add(v float64) {
	a.d = a.d.Add(decimal.NewFromFloat(v))
}

func (a amount) float() float64 {
	return a.d.InexactFloat64()
}

// percent returns part/whole*100, or 0 when whole is not positive.
func percent(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return decimal.NewFromFloat(part).
		Div(decimal.NewFromFloat(whole)).
		Mul(decimal.NewFromInt(100)).
		InexactFloat64()
}

// ratio returns num/den, or 0 when den is zero.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// Active drops cancelled records, keeping order.
func Active[R domain.Record](records []R) []R {
	out := make([]R, 0, len(records))
	for _, r := range records {
		if !r.IsCancelled() {
			out = append(out, r)
		}
	}
	return out
}

// Total sums the amounts of records.
func Total[R domain.Record](records []R) float64 {
	var sum amount
	for _, r := range records {
		sum.add(r.Amount())
	}
	return sum.float()
}

// distinctYears lists the years of records in ascending order.
func distinctYears[R domain.Record](records []R) []int {
	seen := make(map[int]bool)
	var years []int
	for _, r := range records {
		if !seen[r.RecordYear()] {
			seen[r.RecordYear()] = true
			years = append(years, r.RecordYear())
		}
	}
	sort.Ints(years)
	return years
}
