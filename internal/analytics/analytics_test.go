package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizdash/pkg/contracts/domain"
)

func inv(year, month int, cnpj, name string, value float64) domain.Invoice {
	return domain.Invoice{
		Year: year, Month: month, ClientCnpj: cnpj, ClientName: name,
		TotalValue: value, Empresa: "A.M Segurança do Trabalho", Status: domain.StatusNormal,
	}
}

func cancelled(i domain.Invoice) domain.Invoice {
	i.Cancelled = true
	i.Status = "CANCELADA"
	return i
}

func TestClientRankingScenario(t *testing.T) {
	invoices := []domain.Invoice{
		inv(2023, 1, "1", "X", 100),
		inv(2023, 2, "1", "X", 200),
		inv(2023, 3, "1", "X", 300),
		cancelled(inv(2023, 4, "1", "X", 1000)),
	}

	ranking := ClientRanking(invoices)
	require.Len(t, ranking, 1)
	assert.Equal(t, domain.ClientRanking{
		Client: "X", ClientKey: "1", InvoiceCount: 3, TotalValue: 600, AvgValue: 200,
	}, ranking[0])
}

func TestClientRankingProperties(t *testing.T) {
	invoices := []domain.Invoice{
		inv(2023, 1, "10", "Alfa", 150.10),
		inv(2023, 5, "20", "Beta", 99.95),
		inv(2024, 2, "10", "Alfa", 49.90),
		inv(2024, 3, "30", "", 300),
		inv(2024, 3, "31", "", 20.05),
		cancelled(inv(2024, 6, "20", "Beta", 5000)),
		inv(2025, 1, "40", "Gama", 200),
	}

	ranking := ClientRanking(invoices)

	var rankingSum float64
	for _, r := range ranking {
		assert.GreaterOrEqual(t, r.InvoiceCount, 1)
		assert.Equal(t, r.TotalValue/float64(r.InvoiceCount), r.AvgValue)
		rankingSum += r.TotalValue
	}
	assert.InDelta(t, Total(Active(invoices)), rankingSum, 1e-9)

	require.Len(t, ranking, 4)
	assert.Equal(t, domain.UnknownClient, ranking[0].Client)
	assert.Equal(t, "30", ranking[0].ClientKey, "first seen key is kept")
	assert.Equal(t, 2, ranking[0].InvoiceCount)
	// Alfa and Gama tie at 200; Alfa was seen first.
	assert.Equal(t, "Alfa", ranking[1].Client)
	assert.Equal(t, "Gama", ranking[2].Client)
	assert.Equal(t, "Beta", ranking[3].Client)
}

func TestEmptyInput(t *testing.T) {
	var none []domain.Contract

	assert.Empty(t, ClientRanking(none))
	assert.Empty(t, GroupByYear(none))
	assert.Empty(t, CohortSections(none))
	assert.Empty(t, ClientLifecycle(none, []int{2024}))
	assert.NotNil(t, MonthlyTrend(none))
	assert.NotNil(t, ByBroker(none))
	assert.Empty(t, ClientEvolution(none))

	stats := ContractStats(none)
	assert.Zero(t, stats.TotalValue)
	assert.Zero(t, stats.AvgPricePerM2)
	assert.Zero(t, stats.Direct.PercentCount)
	assert.Zero(t, stats.Direct.PercentValue)

	h := RevenueHighlights(none)
	assert.Nil(t, h.BestMonth)
	assert.Nil(t, h.GrowthPercent)
	assert.Zero(t, h.AvgPerMonth)
}

func TestGroupByYear(t *testing.T) {
	invoices := []domain.Invoice{
		inv(2024, 1, "1", "A", 1),
		inv(2023, 1, "2", "B", 2),
		inv(2024, 2, "3", "C", 3),
	}
	buckets := GroupByYear(invoices)
	require.Len(t, buckets, 2)
	assert.Equal(t, 2023, buckets[0].Year)
	assert.Equal(t, 2024, buckets[1].Year)
	assert.Equal(t, []domain.Invoice{invoices[0], invoices[2]}, buckets[1].Records)
}

func TestCohortPartition(t *testing.T) {
	invoices := []domain.Invoice{
		inv(2023, 1, "1", "A", 10),
		inv(2023, 2, "2", "B", 10),
		inv(2023, 3, "3", "C", 10),
		inv(2023, 4, "1", "A", 10),
		inv(2024, 1, "1", "A", 10),
		cancelled(inv(2024, 2, "2", "B", 10)),
		inv(2024, 5, "4", "D", 10),
		inv(2025, 1, "4", "D", 10),
	}

	keys := func(recs []domain.Invoice) ClientSet {
		s := make(ClientSet)
		for _, r := range recs {
			s[r.ClientCnpj] = struct{}{}
		}
		return s
	}

	activeA := ClientsByYear(Active(invoices))[2023]
	returning := keys(ClientsReturning(invoices, 2023, 2024))
	lost := keys(ClientsNotReturning(invoices, 2023, 2024))

	assert.Equal(t, ClientSet{"1": {}}, returning)
	assert.Equal(t, ClientSet{"2": {}, "3": {}}, lost, "a cancelled record is not a return")
	for k := range returning {
		assert.False(t, lost.Has(k))
	}
	union := make(ClientSet)
	for k := range returning {
		union[k] = struct{}{}
	}
	for k := range lost {
		union[k] = struct{}{}
	}
	assert.Equal(t, activeA, union)

	sections := CohortSections(invoices)
	require.Len(t, sections, 2)
	assert.Equal(t, 2023, sections[0].YearA)
	assert.Equal(t, 2024, sections[0].YearB)
	assert.Equal(t, 2, sections[0].ClientCount)
	assert.Len(t, sections[0].Records, 2)
	assert.Equal(t, 1, sections[1].ClientCount, "client 1 did not return in 2025")
}

func TestClientLifecycleGap(t *testing.T) {
	invoices := []domain.Invoice{
		inv(2023, 3, "1", "X", 100),
		inv(2025, 7, "1", "X", 50),
		inv(2025, 8, "1", "X", 25),
	}

	rows := ClientLifecycle(invoices, []int{2023, 2024, 2025})
	require.Len(t, rows, 1)
	assert.Equal(t, map[int]domain.LifecycleStatus{
		2023: domain.StatusNovo,
		2024: domain.StatusInativo,
		2025: domain.StatusReativado,
	}, rows[0].Statuses)
	assert.Equal(t, 2023, rows[0].FirstYear)
	assert.Equal(t, 2025, rows[0].LastYear)
	assert.Equal(t, 75.0, rows[0].TotalValue[2025])
	assert.Equal(t, 2, rows[0].Count[2025])
}

func TestClientLifecycleRules(t *testing.T) {
	years := []int{2021, 2022, 2023, 2024}
	invoices := []domain.Invoice{
		inv(2021, 1, "a", "Ana", 1),
		inv(2022, 1, "a", "Ana", 1),
		inv(2024, 1, "a", "Ana", 1),
		inv(2022, 1, "b", "Bia", 1),
		inv(2023, 1, "b", "Bia", 1),
		cancelled(inv(2024, 1, "c", "Caio", 1)),
	}

	rows := ClientLifecycle(invoices, years)
	require.Len(t, rows, 2, "clients with only cancelled records get no row")

	byKey := map[string]domain.ClientLifecycleRow{}
	for _, r := range rows {
		byKey[r.ClientKey] = r
	}

	ana := byKey["a"].Statuses
	assert.Equal(t, domain.StatusNovo, ana[2021])
	assert.Equal(t, domain.StatusAtivo, ana[2022])
	assert.Equal(t, domain.StatusInativo, ana[2023])
	assert.Equal(t, domain.StatusReativado, ana[2024])

	bia := byKey["b"].Statuses
	assert.Equal(t, domain.StatusInativo, bia[2021])
	assert.Equal(t, domain.StatusNovo, bia[2022])
	assert.Equal(t, domain.StatusAtivo, bia[2023])
	assert.Equal(t, domain.StatusInativo, bia[2024])

	for _, r := range rows {
		assert.Equal(t, domain.StatusNovo, r.Statuses[r.FirstYear])
		novos := 0
		for _, s := range r.Statuses {
			if s == domain.StatusNovo {
				novos++
			}
		}
		assert.Equal(t, 1, novos)
	}

	summary := SummarizeLifecycle(rows, 2024)
	assert.Equal(t, domain.LifecycleSummary{Year: 2024, Reativado: 1, Inativo: 1}, summary)

	assert.Len(t, LifecycleWithStatus(rows, 2024, domain.StatusReativado), 1)
}

func TestSearchLifecycle(t *testing.T) {
	rows := []domain.ClientLifecycleRow{
		{ClientKey: "11222333000181", ClientName: "Construtora Ômega"},
		{ClientKey: "99888777000100", ClientName: "Alfa Engenharia"},
	}

	assert.Len(t, SearchLifecycle(rows, ""), 2)
	assert.Equal(t, "Construtora Ômega", SearchLifecycle(rows, "omega")[0].ClientName)
	assert.Equal(t, "Alfa Engenharia", SearchLifecycle(rows, "99888")[0].ClientName)
	assert.Empty(t, SearchLifecycle(rows, "beta"))
}

func TestMonthlyTrend(t *testing.T) {
	invoices := []domain.Invoice{
		inv(2024, 2, "3", "C", 5),
		inv(2024, 1, "1", "A", 10),
		inv(2024, 1, "2", "B", 20),
	}

	trend := MonthlyTrend(invoices)
	require.Len(t, trend, 2)
	assert.Equal(t, domain.MonthlyPoint{Year: 2024, Month: 1, Count: 2, Value: 30}, trend[0])
	assert.Equal(t, domain.MonthlyPoint{Year: 2024, Month: 2, Count: 1, Value: 5}, trend[1])
}

func TestYearMaps(t *testing.T) {
	invoices := []domain.Invoice{
		inv(2023, 1, "1", "A", 0.1),
		inv(2023, 2, "1", "A", 0.2),
		inv(2024, 1, "2", "B", 5),
	}
	assert.Equal(t, map[int]float64{2023: 0.3, 2024: 5}, ValueByYear(invoices))
	assert.Equal(t, map[int]int{2023: 2, 2024: 1}, CountByYear(invoices))
}

func TestRollups(t *testing.T) {
	invoices := []domain.Invoice{
		{Year: 2024, Empresa: "Seg", Atividade: "17.01", TotalValue: 100},
		{Year: 2024, Empresa: "Eng", Atividade: "7.01", TotalValue: 300},
		{Year: 2024, Empresa: "Seg", Atividade: "17.01", TotalValue: 100},
		{Year: 2024, Empresa: "Eng", Atividade: "99.99", TotalValue: 1000, Cancelled: true},
	}

	companies := ByCompany(invoices)
	require.Len(t, companies, 2)
	assert.Equal(t, "Eng", companies[0].Key)
	assert.Equal(t, 1, companies[0].Count)
	assert.Equal(t, 60.0, companies[0].Percent)
	assert.Equal(t, 40.0, companies[1].Percent)

	activities := ByActivity(invoices)
	require.Len(t, activities, 2)
	assert.Equal(t, "7.01 - Engenharia / Elaboração de projetos", activities[0].Label)
	assert.Equal(t, "17.01", activities[1].Key)
}

func TestActivityLabel(t *testing.T) {
	assert.Equal(t, "14.06 - Instalação e montagem", ActivityLabel(" 14.06 "))
	assert.Equal(t, "8.02 - Instrução / Treinamento", ActivityLabel("8.02 - Treinamento"))
	assert.Equal(t, "1.05", ActivityLabel("1.05"))
	assert.Equal(t, "Outros", ActivityLabel(""))
}

func TestSaleRollups(t *testing.T) {
	sales := []domain.Sale{
		{ProductName: "Capacete", Category: "EPI", Quantity: 10, TotalValue: 500, Seller: "Rui"},
		{ProductName: "Luva", Category: "EPI", Quantity: 50, TotalValue: 250, IsDirect: true},
		{ProductName: "Capacete", Category: "EPI", Quantity: 2, TotalValue: 100, Seller: "Rui"},
	}

	products := ByProduct(sales)
	require.Len(t, products, 2)
	assert.Equal(t, "Capacete", products[0].Key)
	assert.Equal(t, 12.0, products[0].Quantity)

	stats := SaleStats(sales)
	assert.Equal(t, 62.0, stats.TotalQuantity)
	assert.Len(t, stats.ByCategory, 1)
	assert.Equal(t, 1, stats.Direct.DirectCount)

	sellers := BySeller(sales)
	require.Len(t, sellers, 1)
	assert.Equal(t, "Rui", sellers[0].Key)
}

func TestContractStats(t *testing.T) {
	contracts := []domain.Contract{
		{Year: 2023, Month: 1, ClientID: "1", TotalValue: 300000, Area: 100, Broker: "Imob", Empreendimento: "Aurora"},
		{Year: 2023, Month: 2, ClientID: "2", TotalValue: 200000, Area: 0, IsDirect: true, Empreendimento: "Aurora"},
		{Year: 2024, Month: 1, ClientID: "3", TotalValue: 500000, Area: 150, Broker: "Casa", Empreendimento: "Jardins"},
		{Year: 2024, Month: 1, ClientID: "4", TotalValue: 900000, Area: 90, Broker: "Imob", Cancelled: true},
	}

	stats := ContractStats(contracts)
	assert.Equal(t, 3, stats.TotalCount)
	assert.Equal(t, 1, stats.CancelledCount)
	assert.Equal(t, 1000000.0, stats.TotalValue)
	assert.Equal(t, 250.0, stats.TotalArea)
	assert.Equal(t, 3200.0, stats.AvgPricePerM2)
	assert.Equal(t, map[int]int{2023: 2, 2024: 1}, stats.CountByYear)

	d := stats.Direct
	assert.Equal(t, 3, d.Total)
	assert.Equal(t, 1, d.DirectCount)
	assert.Equal(t, 2, d.BrokeredCount)
	assert.Equal(t, 800000.0, d.BrokeredValue)
	assert.Equal(t, 20.0, d.PercentValue)
	assert.InDelta(t, 33.333, d.PercentCount, 0.001)
	assert.Equal(t, 200000.0, d.DirectAvgTicket)

	require.Len(t, stats.ByBroker, 2)
	assert.Equal(t, "Casa", stats.ByBroker[0].Key)
	assert.Equal(t, "Imob", stats.ByBroker[1].Key)
	assert.Equal(t, "Aurora", stats.ByProject[0].Key)
}

func TestInvoiceStats(t *testing.T) {
	invoices := []domain.Invoice{
		{Year: 2024, Month: 1, TotalValue: 1000, ValorISS: 50, Empresa: "Seg"},
		{Year: 2024, Month: 2, TotalValue: 500, ValorISS: 25, Empresa: "Seg", Cancelled: true},
	}
	stats := InvoiceStats(invoices)
	assert.Equal(t, 50.0, stats.TotalISS)
	assert.Equal(t, 1, stats.CancelledCount)
	assert.Len(t, stats.MonthlyTrend, 1)
}

func TestClientEvolution(t *testing.T) {
	invoices := []domain.Invoice{
		inv(2022, 1, "a", "A", 1),
		inv(2022, 1, "b", "B", 1),
		inv(2023, 1, "b", "B", 1),
		inv(2023, 1, "c", "C", 1),
		inv(2023, 1, "d", "D", 1),
		cancelled(inv(2024, 1, "a", "A", 1)),
		inv(2024, 1, "d", "D", 1),
	}

	assert.Equal(t, []domain.ClientEvolution{
		{Year: 2022, Total: 2, New: 2, Lost: 0},
		{Year: 2023, Total: 3, New: 2, Lost: 1},
		{Year: 2024, Total: 1, New: 0, Lost: 2},
	}, ClientEvolution(invoices))
}

func TestRevenueHighlights(t *testing.T) {
	invoices := []domain.Invoice{
		inv(2023, 1, "a", "A", 100),
		inv(2023, 2, "a", "A", 300),
		inv(2024, 1, "a", "A", 300),
		inv(2024, 3, "a", "A", 300),
		cancelled(inv(2024, 4, "a", "A", 9000)),
	}

	h := RevenueHighlights(invoices)
	assert.Equal(t, 1000.0, h.TotalValue)
	assert.Equal(t, 250.0, h.AvgPerMonth)
	require.NotNil(t, h.BestMonth)
	assert.Equal(t, 2023, h.BestMonth.Year)
	assert.Equal(t, 2, h.BestMonth.Month, "first maximum wins")
	require.NotNil(t, h.GrowthPercent)
	assert.Equal(t, 50.0, *h.GrowthPercent)
	assert.Equal(t, 2023, h.GrowthFromYear)
	assert.Equal(t, 2024, h.GrowthToYear)

	single := RevenueHighlights(invoices[:2])
	assert.Nil(t, single.GrowthPercent)
}
