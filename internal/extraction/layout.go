package extraction

// Column names used in Layout.Columns.
const (
	ColNumber      = "number"
	ColDate        = "date"
	ColClientKey   = "client_key"
	ColClient      = "client"
	ColBroker      = "broker"
	ColValue       = "value"
	ColArea        = "area"
	ColPricePerM2  = "price_per_m2"
	ColUnit        = "unit"
	ColCategory    = "category"
	ColFinancing   = "financing"
	ColKeyDelivery = "key_delivery"
	ColActivity    = "activity"
	ColDeduction   = "deduction"
	ColBase        = "base"
	ColRate        = "rate"
	ColISS         = "iss"
	ColWithheld    = "withheld"
	ColStatus      = "status"
	ColPlace       = "place"
	ColProduct     = "product"
	ColQuantity    = "quantity"
	ColUnitPrice   = "unit_price"
	ColSeller      = "seller"
	ColRazao       = "razao"
	ColDescricao   = "descricao"
	ColCnpj        = "cnpj"
)

// Layout describes where things are in one kind of export.
type Layout struct {
	// Sheet is the sheet name; empty selects the first sheet.
	Sheet string `yaml:"sheet"`
	// FirstDataRow is the 0-based index of the first row considered.
	FirstDataRow int            `yaml:"first_data_row"`
	Columns      map[string]int `yaml:"columns"`

	CompanyMarker string `yaml:"company_marker"`
	ProjectMarker string `yaml:"project_marker"`

	HeaderLabels    []string `yaml:"header_labels"`
	SummaryLabels   []string `yaml:"summary_labels"`
	SummaryPrefixes []string `yaml:"summary_prefixes"`

	// NumericKey requires the first cell of a data row to be a number.
	NumericKey bool `yaml:"numeric_key"`
	// MinCells is the minimum row width of a data row.
	MinCells int `yaml:"min_cells"`
	// RequiredColumns must all be non-empty on a data row.
	RequiredColumns []string `yaml:"required_columns"`
}

// Column returns the index of a named column, or -1 when the layout does
// not carry it.
func (l Layout) Column(name string) int {
	idx, ok := l.Columns[name]
	if !ok {
		return -1
	}
	return idx
}

// LayoutOverride is a partial Layout read from configuration. Nil fields
// keep the base value, so an explicit zero or false still applies.
type LayoutOverride struct {
	Sheet        *string        `yaml:"sheet"`
	FirstDataRow *int           `yaml:"first_data_row"`
	Columns      map[string]int `yaml:"columns"`

	CompanyMarker *string `yaml:"company_marker"`
	ProjectMarker *string `yaml:"project_marker"`

	HeaderLabels    []string `yaml:"header_labels"`
	SummaryLabels   []string `yaml:"summary_labels"`
	SummaryPrefixes []string `yaml:"summary_prefixes"`

	NumericKey      *bool    `yaml:"numeric_key"`
	MinCells        *int     `yaml:"min_cells"`
	RequiredColumns []string `yaml:"required_columns"`
}

// Merge returns l with every field set in o applied over it. Columns are
// merged key by key; a list given as [] clears the base list.
func (l Layout) Merge(o LayoutOverride) Layout {
	out := l
	out.Columns = make(map[string]int, len(l.Columns)+len(o.Columns))
	for k, v := range l.Columns {
		out.Columns[k] = v
	}
	for k, v := range o.Columns {
		out.Columns[k] = v
	}

	if o.Sheet != nil {
		out.Sheet = *o.Sheet
	}
	if o.FirstDataRow != nil {
		out.FirstDataRow = *o.FirstDataRow
	}
	if o.CompanyMarker != nil {
		out.CompanyMarker = *o.CompanyMarker
	}
	if o.ProjectMarker != nil {
		out.ProjectMarker = *o.ProjectMarker
	}
	if o.HeaderLabels != nil {
		out.HeaderLabels = o.HeaderLabels
	}
	if o.SummaryLabels != nil {
		out.SummaryLabels = o.SummaryLabels
	}
	if o.SummaryPrefixes != nil {
		out.SummaryPrefixes = o.SummaryPrefixes
	}
	if o.NumericKey != nil {
		out.NumericKey = *o.NumericKey
	}
	if o.MinCells != nil {
		out.MinCells = *o.MinCells
	}
	if o.RequiredColumns != nil {
		out.RequiredColumns = o.RequiredColumns
	}
	return out
}

// InvoiceLayout matches the municipal NFS-e "emitidas" export: a long
// preamble, the header on row 18 and one invoice per row from row 19.
func InvoiceLayout() Layout {
	return Layout{
		FirstDataRow: 19,
		Columns: map[string]int{
			ColNumber:    0,
			ColDate:      3,
			ColActivity:  4,
			ColClientKey: 7,
			ColClient:    8,
			ColValue:     9,
			ColDeduction: 10,
			ColBase:      11,
			ColRate:      12,
			ColISS:       13,
			ColWithheld:  14,
			ColStatus:    15,
			ColPlace:     16,
		},
		SummaryPrefixes: []string{"Quantidade", "Total"},
		NumericKey:      true,
	}
}

// ContractLayout matches the "Vendas por Empreendimento" report, grouped by
// company and development sections.
func ContractLayout() Layout {
	return Layout{
		Sheet: "Vendas por Empreendimento",
		Columns: map[string]int{
			ColNumber:      0,
			ColDate:        1,
			ColClient:      2,
			ColBroker:      3,
			ColValue:       4,
			ColArea:        5,
			ColPricePerM2:  6,
			ColUnit:        7,
			ColCategory:    8,
			ColFinancing:   9,
			ColKeyDelivery: 10,
		},
		CompanyMarker: "Empresa ",
		ProjectMarker: "Empreendimento ",
		HeaderLabels:  []string{"N. do contrato"},
		SummaryLabels: []string{"Contratos", "Propostas", "Distratos", "Saldo", "Consolidado"},
		SummaryPrefixes: []string{
			"Total", "Área total", "Valor médio", "Estoque", "**Estoque",
			"Período", "Vendas por", "Total Geral", "Indexador",
		},
		MinCells:        5,
		RequiredColumns: []string{ColDate, ColClient, ColValue},
	}
}

// SaleLayout matches the product sale register: one header row, company
// sections and one sold item per row.
func SaleLayout() Layout {
	return Layout{
		FirstDataRow: 1,
		Columns: map[string]int{
			ColNumber:    0,
			ColDate:      1,
			ColClientKey: 2,
			ColClient:    3,
			ColProduct:   4,
			ColCategory:  5,
			ColQuantity:  6,
			ColUnitPrice: 7,
			ColValue:     8,
			ColSeller:    9,
			ColStatus:    10,
		},
		CompanyMarker:   "Empresa ",
		HeaderLabels:    []string{"N. da venda"},
		SummaryPrefixes: []string{"Quantidade", "Total"},
		NumericKey:      true,
		RequiredColumns: []string{ColDate, ColValue},
	}
}

// ClientLayout matches the client registry: header on row 0.
func ClientLayout() Layout {
	return Layout{
		FirstDataRow: 1,
		Columns: map[string]int{
			ColRazao:     0,
			ColDescricao: 1,
			ColCnpj:      2,
		},
		RequiredColumns: []string{ColRazao},
	}
}

// DefaultLayouts returns the built-in layouts keyed by source kind.
func DefaultLayouts() map[string]Layout {
	return map[string]Layout{
		KindInvoices:  InvoiceLayout(),
		KindContracts: ContractLayout(),
		KindSales:     SaleLayout(),
		KindClients:   ClientLayout(),
	}
}
