package analytics

import (
	"sort"
	"strings"

	"bizdash/pkg/contracts/domain"
)

// Dimension describes a categorical rollup over records of type R.
type Dimension[R domain.Record] struct {
	// Key extracts the group key from a record.
	Key func(R) string
	// Label renders a key for display. Defaults to the key itself.
	Label func(string) string
	// Quantity, when set, is summed per group.
	Quantity func(R) float64
	// Skip, when set, leaves matching records out of the rollup.
	Skip func(R) bool
}

// RollupBy groups active records by d.Key and sums count, quantity and
// value per group. Percent is the group's share of the rolled up value.
// Groups are sorted descending by value.
func RollupBy[R domain.Record](records []R, d Dimension[R]) []domain.CategoryRollup {
	index := make(map[string]int)
	var rows []domain.CategoryRollup
	var values, quantities []amount
	var total amount

	for _, r := range records {
		if r.IsCancelled() || (d.Skip != nil && d.Skip(r)) {
			continue
		}
		key := d.Key(r)
		i, ok := index[key]
		if !ok {
			i = len(rows)
			index[key] = i
			label := key
			if d.Label != nil {
				label = d.Label(key)
			}
			rows = append(rows, domain.CategoryRollup{Key: key, Label: label})
			values = append(values, amount{})
			quantities = append(quantities, amount{})
		}
		rows[i].Count++
		values[i].add(r.Amount())
		total.add(r.Amount())
		if d.Quantity != nil {
			quantities[i].add(d.Quantity(r))
		}
	}

	sum := total.float()
	for i := range rows {
		rows[i].Value = values[i].float()
		rows[i].Quantity = quantities[i].float()
		rows[i].Percent = percent(rows[i].Value, sum)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Value > rows[j].Value
	})
	if rows == nil {
		rows = []domain.CategoryRollup{}
	}
	return rows
}

// ByCompany rolls records up by owning company.
func ByCompany[R domain.Record](records []R) []domain.CategoryRollup {
	return RollupBy(records, Dimension[R]{Key: func(r R) string { return r.Company() }})
}

// ByActivity rolls invoices up by service activity code.
func ByActivity(invoices []domain.Invoice) []domain.CategoryRollup {
	return RollupBy(invoices, Dimension[domain.Invoice]{
		Key:   func(i domain.Invoice) string { return strings.TrimSpace(i.Atividade) },
		Label: ActivityLabel,
	})
}

// ByProject rolls contracts up by development.
func ByProject(contracts []domain.Contract) []domain.CategoryRollup {
	return RollupBy(contracts, Dimension[domain.Contract]{
		Key: func(c domain.Contract) string { return c.Empreendimento },
	})
}

// ByBroker ranks brokers. Direct sales and contracts without a broker are
// left out.
func ByBroker(contracts []domain.Contract) []domain.CategoryRollup {
	return RollupBy(contracts, Dimension[domain.Contract]{
		Key:  func(c domain.Contract) string { return c.Broker },
		Skip: func(c domain.Contract) bool { return c.IsDirect || strings.TrimSpace(c.Broker) == "" },
	})
}

// ByProduct rolls sales up by product, summing quantities.
func ByProduct(sales []domain.Sale) []domain.CategoryRollup {
	return RollupBy(sales, Dimension[domain.Sale]{
		Key:      func(s domain.Sale) string { return s.ProductName },
		Quantity: func(s domain.Sale) float64 { return s.Quantity },
	})
}

// ByCategory rolls sales up by product category.
func ByCategory(sales []domain.Sale) []domain.CategoryRollup {
	return RollupBy(sales, Dimension[domain.Sale]{
		Key:      func(s domain.Sale) string { return s.Category },
		Quantity: func(s domain.Sale) float64 { return s.Quantity },
	})
}

// BySeller ranks sellers, leaving direct sales out.
func BySeller(sales []domain.Sale) []domain.CategoryRollup {
	return RollupBy(sales, Dimension[domain.Sale]{
		Key:  func(s domain.Sale) string { return s.Seller },
		Skip: func(s domain.Sale) bool { return s.IsDirect || strings.TrimSpace(s.Seller) == "" },
	})
}

var activityLabels = map[string]string{
	"7.01":  "Engenharia / Elaboração de projetos",
	"14.01": "Limpeza / Manutenção / Conservação",
	"14.06": "Instalação e montagem",
	"17.01": "Assessoria e consultoria",
	"17.09": "Perícias / Laudos / Exames técnicos",
	"8.02":  "Instrução / Treinamento",
}

// ActivityLabel describes a municipal service code. Unknown codes are
// returned unchanged; "Outros" stands in for an empty code.
func ActivityLabel(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return "Outros"
	}
	if label, ok := activityLabels[code]; ok {
		return code + " - " + label
	}
	// codes sometimes carry their description: "17.01 - Assessoria"
	if head, _, found := strings.Cut(code, " "); found {
		if label, ok := activityLabels[head]; ok {
			return head + " - " + label
		}
	}
	return code
}

// DirectRecord is a record that distinguishes direct sales.
type DirectRecord interface {
	domain.Record
	domain.DirectFlagger
}

// DirectSplit compares direct and brokered active records.
func DirectSplit[R DirectRecord](records []R) domain.DirectSplit {
	var total, direct amount
	var split domain.DirectSplit
	for _, r := range records {
		if r.IsCancelled() {
			continue
		}
		split.Total++
		total.add(r.Amount())
		if r.Direct() {
			split.DirectCount++
			direct.add(r.Amount())
		}
	}

	split.TotalValue = total.float()
	split.DirectValue = direct.float()
	split.BrokeredCount = split.Total - split.DirectCount
	split.BrokeredValue = total.d.Sub(direct.d).InexactFloat64()
	split.PercentCount = percent(float64(split.DirectCount), float64(split.Total))
	split.PercentValue = percent(split.DirectValue, split.TotalValue)
	split.DirectAvgTicket = ratio(split.DirectValue, float64(split.DirectCount))
	split.OverallAvgTicket = ratio(split.TotalValue, float64(split.Total))
	return split
}
