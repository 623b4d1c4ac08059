package config

import "bizdash/internal/extraction"

// Application constants
const (
	AppName = "bizdash"

	// Default source workbooks, relative to the source directory
	SecurityInvoicesSource   = "43487379000119 NFS-E EMITIDAS - 16_12_2025.xls"
	InspectionInvoicesSource = "55603277000109 NFS-E EMITIDAS - 16_12_2025.xls"
	ContractsSource          = "Vendas_Consolidado_Corrigido.xlsx"
	ClientsSource            = "clientes.xlsx"

	// Companies owning the NFS-e registers
	SecurityCompany   = "A.M Segurança do Trabalho"
	InspectionCompany = "A.M Engenharia Inspeções"

	// Ranking export
	RankingCSVPattern = "ranking_%s.csv"
)

// DefaultSources returns the workbooks extracted when the config file lists
// none. Order matters: it is the id assignment order of the snapshot.
func DefaultSources() []extraction.Source {
	return []extraction.Source{
		{Kind: extraction.KindInvoices, Path: SecurityInvoicesSource, Company: SecurityCompany},
		{Kind: extraction.KindInvoices, Path: InspectionInvoicesSource, Company: InspectionCompany},
		{Kind: extraction.KindContracts, Path: ContractsSource},
		{Kind: extraction.KindClients, Path: ClientsSource},
	}
}
