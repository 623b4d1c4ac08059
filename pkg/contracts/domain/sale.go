package domain

// Sale is one product sale line.
type Sale struct {
	ID          string  `json:"id"`
	SaleNumber  string  `json:"saleNumber"`
	Date        string  `json:"date"`
	Year        int     `json:"year"`
	Month       int     `json:"month"`
	ClientCnpj  string  `json:"clientCnpj"`
	ClientName  string  `json:"clientName"`
	ProductCode string  `json:"productCode"`
	ProductName string  `json:"productName"`
	Category    string  `json:"category"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	TotalValue  float64 `json:"totalValue"`
	Seller      string  `json:"seller"`
	Status      string  `json:"status"`
	Empresa     string  `json:"empresa"`
	Cancelled   bool    `json:"cancelled"`
	IsDirect    bool    `json:"isDirect"`
}

func (s *Sale) SetID(id string) { s.ID = id }

func (s Sale) RecordYear() int     { return s.Year }
func (s Sale) RecordMonth() int    { return s.Month }
func (s Sale) ClientKey() string   { return s.ClientCnpj }
func (s Sale) ClientLabel() string { return s.ClientName }
func (s Sale) Amount() float64     { return s.TotalValue }
func (s Sale) Company() string     { return s.Empresa }
func (s Sale) IsCancelled() bool   { return s.Cancelled }
func (s Sale) Direct() bool        { return s.IsDirect }

// FacetValue implements Record. The seller plays the broker role for sales.
func (s Sale) FacetValue(f Facet) (string, bool) {
	switch f {
	case FacetCompany:
		return s.Empresa, true
	case FacetClient:
		return s.ClientName, true
	case FacetProduct:
		return s.ProductName, true
	case FacetBroker:
		return s.Seller, true
	}
	return "", false
}
