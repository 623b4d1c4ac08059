package analytics

import "bizdash/pkg/contracts/domain"

// Stats computes the summary block shared by every dataset. Totals, year
// maps, the company rollup and the trend cover active records; the
// cancelled count covers the given set.
func Stats[R domain.Record](records []R) domain.DashboardStats {
	active := Active(records)
	return domain.DashboardStats{
		TotalCount:     len(active),
		TotalValue:     Total(active),
		CancelledCount: len(records) - len(active),
		CountByYear:    CountByYear(active),
		ValueByYear:    ValueByYear(active),
		ByCompany:      ByCompany(active),
		MonthlyTrend:   MonthlyTrend(active),
	}
}

// InvoiceStats adds tax totals and the activity rollup.
func InvoiceStats(invoices []domain.Invoice) domain.InvoiceStats {
	var iss amount
	for _, i := range Active(invoices) {
		iss.add(i.ValorISS)
	}
	return domain.InvoiceStats{
		DashboardStats: Stats(invoices),
		TotalISS:       iss.float(),
		ByActivity:     ByActivity(invoices),
	}
}

// ContractStats adds area, price per square meter and broker figures. The
// average price per m² only considers contracts with a known area.
func ContractStats(contracts []domain.Contract) domain.ContractStats {
	var area, areaWithValue, valueWithArea amount
	for _, c := range Active(contracts) {
		area.add(c.Area)
		if c.Area > 0 {
			areaWithValue.add(c.Area)
			valueWithArea.add(c.TotalValue)
		}
	}
	return domain.ContractStats{
		DashboardStats: Stats(contracts),
		TotalArea:      area.float(),
		AvgPricePerM2:  ratio(valueWithArea.float(), areaWithValue.float()),
		Direct:         DirectSplit(contracts),
		ByProject:      ByProject(contracts),
		ByBroker:       ByBroker(contracts),
	}
}

// SaleStats adds quantities and the product and category rollups.
func SaleStats(sales []domain.Sale) domain.SaleStats {
	var qty amount
	for _, s := range Active(sales) {
		qty.add(s.Quantity)
	}
	return domain.SaleStats{
		DashboardStats: Stats(sales),
		TotalQuantity:  qty.float(),
		ByProduct:      ByProduct(sales),
		ByCategory:     ByCategory(sales),
		Direct:         DirectSplit(sales),
	}
}
