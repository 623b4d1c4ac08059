package extraction

import (
	"bizdash/internal/normalize"
	"bizdash/pkg/contracts/domain"
)

// withinRetention drops records dated before the retention cutoff,
// including rows whose date could not be parsed (year 0).
func withinRetention[R domain.Record](r R) bool {
	return r.RecordYear() >= domain.MinYear
}

// InvoiceSchema builds NFS-e records. The company comes from the source.
var InvoiceSchema = Schema[domain.Invoice]{
	Kind: KindInvoices,
	Build: func(f Fields, sec Section) domain.Invoice {
		d := f.Date(ColDate)
		status := normalize.StatusOrNormal(f.Text(ColStatus))
		return domain.Invoice{
			NfsNumber:         f.Text(ColNumber),
			Date:              d.ISO,
			Year:              d.Year,
			Month:             d.Month,
			Atividade:         f.Text(ColActivity),
			ClientCnpj:        f.Text(ColClientKey),
			ClientName:        f.Text(ColClient),
			TotalValue:        normalize.NonNegative(f.Number(ColValue)),
			ValorDeducao:      f.Number(ColDeduction),
			ValorBase:         f.Number(ColBase),
			Aliquota:          f.Number(ColRate),
			ValorISS:          f.Number(ColISS),
			Retido:            normalize.YesNo(f.Text(ColWithheld)),
			Status:            status,
			LocalRecolhimento: f.Text(ColPlace),
			Empresa:           sec.Company,
			Cancelled:         normalize.IsCancelled(status),
		}
	},
	Retain: withinRetention[domain.Invoice],
}

// ContractSchema builds sales contracts from the development report.
// Cancellation is read from the unit marker.
var ContractSchema = Schema[domain.Contract]{
	Kind: KindContracts,
	Build: func(f Fields, sec Section) domain.Contract {
		d := f.Date(ColDate)
		client := normalize.SplitComposite(f.Text(ColClient))
		broker := f.Text(ColBroker)
		unit := f.Text(ColUnit)
		status := normalize.StatusFromUnit(unit)
		return domain.Contract{
			ContractNumber:  f.Text(ColNumber),
			Date:            d.ISO,
			Year:            d.Year,
			Month:           d.Month,
			ClientID:        client.ID,
			ClientName:      client.Name,
			Broker:          normalize.BrokerName(broker),
			TotalValue:      normalize.NonNegative(f.Number(ColValue)),
			Area:            f.Number(ColArea),
			PricePerM2:      f.Number(ColPricePerM2),
			Unit:            normalize.CleanUnit(unit),
			SaleCategory:    f.Text(ColCategory),
			FinancingStatus: f.Text(ColFinancing),
			KeyDelivery:     f.Text(ColKeyDelivery),
			Status:          status,
			Empresa:         sec.Company,
			Empreendimento:  sec.Project,
			Cancelled:       normalize.IsCancelled(status),
			IsDirect:        normalize.IsDirectBroker(broker),
		}
	},
	Retain: withinRetention[domain.Contract],
}

// SaleSchema builds product sale lines. The product cell is a
// "code - name" composite.
var SaleSchema = Schema[domain.Sale]{
	Kind: KindSales,
	Build: func(f Fields, sec Section) domain.Sale {
		d := f.Date(ColDate)
		product := normalize.SplitComposite(f.Text(ColProduct))
		seller := f.Text(ColSeller)
		status := normalize.StatusOrNormal(f.Text(ColStatus))
		return domain.Sale{
			SaleNumber:  f.Text(ColNumber),
			Date:        d.ISO,
			Year:        d.Year,
			Month:       d.Month,
			ClientCnpj:  f.Text(ColClientKey),
			ClientName:  f.Text(ColClient),
			ProductCode: product.ID,
			ProductName: product.Name,
			Category:    f.Text(ColCategory),
			Quantity:    f.Number(ColQuantity),
			UnitPrice:   f.Number(ColUnitPrice),
			TotalValue:  normalize.NonNegative(f.Number(ColValue)),
			Seller:      normalize.BrokerName(seller),
			Status:      status,
			Empresa:     sec.Company,
			Cancelled:   normalize.IsCancelled(status),
			IsDirect:    normalize.IsDirectBroker(seller),
		}
	},
	Retain: withinRetention[domain.Sale],
}

// ClientSchema builds registry entries, repairing the known encoding
// damage of the registry export.
var ClientSchema = Schema[domain.Client]{
	Kind: KindClients,
	Build: func(f Fields, _ Section) domain.Client {
		return domain.Client{
			Razao:     normalize.RepairEncoding(f.Text(ColRazao)),
			Descricao: normalize.RepairEncoding(f.Text(ColDescricao)),
			Cnpj:      f.Text(ColCnpj),
		}
	},
}
