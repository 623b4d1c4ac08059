package analytics

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"bizdash/internal/format"
	"bizdash/pkg/contracts/domain"
)

// ClientLifecycle classifies every client with activity in years:
//
//   - novo: the client's first active year
//   - ativo: active this year and the previous calendar year
//   - reativado: active this year after a gap
//   - inativo: not active this year
//
// Clients without any active record in years get no row. Rows are sorted by
// client name.
func ClientLifecycle[R domain.Record](records []R, years []int) []domain.ClientLifecycleRow {
	type client struct {
		key    string
		name   string
		years  map[int]bool
		first  int
		last   int
		values map[int]*amount
		counts map[int]int
	}

	index := make(map[string]int)
	var clients []*client
	for _, r := range records {
		if r.IsCancelled() {
			continue
		}
		i, ok := index[r.ClientKey()]
		if !ok {
			i = len(clients)
			index[r.ClientKey()] = i
			clients = append(clients, &client{
				key:    r.ClientKey(),
				years:  make(map[int]bool),
				first:  r.RecordYear(),
				last:   r.RecordYear(),
				values: make(map[int]*amount),
				counts: make(map[int]int),
			})
		}
		c := clients[i]
		if c.name == "" {
			c.name = r.ClientLabel()
		}
		y := r.RecordYear()
		c.years[y] = true
		c.first = min(c.first, y)
		c.last = max(c.last, y)
		if c.values[y] == nil {
			c.values[y] = &amount{}
		}
		c.values[y].add(r.Amount())
		c.counts[y]++
	}

	rows := []domain.ClientLifecycleRow{}
	for _, c := range clients {
		row := domain.ClientLifecycleRow{
			ClientKey:  c.key,
			ClientName: c.name,
			FirstYear:  c.first,
			LastYear:   c.last,
			Statuses:   make(map[int]domain.LifecycleStatus),
			TotalValue: make(map[int]float64),
			Count:      make(map[int]int),
		}
		activeInRange := false
		for _, y := range years {
			if c.years[y] {
				activeInRange = true
			}
		}
		if !activeInRange {
			continue
		}
		for _, y := range years {
			row.Statuses[y] = classify(c.years, c.first, y)
			if c.years[y] {
				row.TotalValue[y] = c.values[y].float()
				row.Count[y] = c.counts[y]
			}
		}
		rows = append(rows, row)
	}

	col := collate.New(language.BrazilianPortuguese, collate.IgnoreCase)
	sort.SliceStable(rows, func(i, j int) bool {
		return col.CompareString(rows[i].ClientName, rows[j].ClientName) < 0
	})
	return rows
}

func classify(active map[int]bool, first, y int) domain.LifecycleStatus {
	switch {
	case !active[y]:
		return domain.StatusInativo
	case y == first:
		return domain.StatusNovo
	case active[y-1]:
		return domain.StatusAtivo
	default:
		return domain.StatusReativado
	}
}

// SummarizeLifecycle counts the statuses of year across rows.
func SummarizeLifecycle(rows []domain.ClientLifecycleRow, year int) domain.LifecycleSummary {
	summary := domain.LifecycleSummary{Year: year}
	for _, r := range rows {
		switch r.Statuses[year] {
		case domain.StatusNovo:
			summary.Novo++
		case domain.StatusAtivo:
			summary.Ativo++
		case domain.StatusReativado:
			summary.Reativado++
		case domain.StatusInativo:
			summary.Inativo++
		}
	}
	return summary
}

// SearchLifecycle keeps rows whose client name contains q, ignoring case
// and accents, or whose client key contains q. An empty query keeps all.
func SearchLifecycle(rows []domain.ClientLifecycleRow, q string) []domain.ClientLifecycleRow {
	q = strings.TrimSpace(q)
	if q == "" {
		return rows
	}
	out := []domain.ClientLifecycleRow{}
	for _, r := range rows {
		if format.Contains(r.ClientName, q) || strings.Contains(r.ClientKey, q) {
			out = append(out, r)
		}
	}
	return out
}

// LifecycleWithStatus keeps rows whose status in year is s.
func LifecycleWithStatus(rows []domain.ClientLifecycleRow, year int, s domain.LifecycleStatus) []domain.ClientLifecycleRow {
	out := []domain.ClientLifecycleRow{}
	for _, r := range rows {
		if r.Statuses[year] == s {
			out = append(out, r)
		}
	}
	return out
}
