package domain

// Contract is one real-estate sales contract.
type Contract struct {
	ID              string  `json:"id"`
	ContractNumber  string  `json:"contractNumber"`
	Date            string  `json:"date"`
	Year            int     `json:"year"`
	Month           int     `json:"month"`
	ClientID        string  `json:"clientId"`
	ClientName      string  `json:"clientName"`
	Broker          string  `json:"broker"`
	TotalValue      float64 `json:"totalValue"`
	Area            float64 `json:"area"`
	PricePerM2      float64 `json:"pricePerM2"`
	Unit            string  `json:"unit"`
	SaleCategory    string  `json:"saleCategory"`
	FinancingStatus string  `json:"financingStatus"`
	KeyDelivery     string  `json:"keyDelivery"`
	Status          string  `json:"status"`
	Empresa         string  `json:"empresa"`
	Empreendimento  string  `json:"empreendimento"`
	Cancelled       bool    `json:"cancelled"`
	IsDirect        bool    `json:"isDirect"`
}

func (c *Contract) SetID(id string) { c.ID = id }

func (c Contract) RecordYear() int     { return c.Year }
func (c Contract) RecordMonth() int    { return c.Month }
func (c Contract) ClientKey() string   { return c.ClientID }
func (c Contract) ClientLabel() string { return c.ClientName }
func (c Contract) Amount() float64     { return c.TotalValue }
func (c Contract) Company() string     { return c.Empresa }
func (c Contract) IsCancelled() bool   { return c.Cancelled }
func (c Contract) Direct() bool        { return c.IsDirect }

// FacetValue implements Record.
func (c Contract) FacetValue(f Facet) (string, bool) {
	switch f {
	case FacetCompany:
		return c.Empresa, true
	case FacetClient:
		return c.ClientName, true
	case FacetBroker:
		return c.Broker, true
	case FacetProject:
		return c.Empreendimento, true
	}
	return "", false
}
