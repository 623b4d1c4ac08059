package domain

// Invoice is one issued NFS-e.
type Invoice struct {
	ID                string  `json:"id"`
	NfsNumber         string  `json:"nfsNumber"`
	Date              string  `json:"date"`
	Year              int     `json:"year"`
	Month             int     `json:"month"`
	Atividade         string  `json:"atividade"`
	ClientCnpj        string  `json:"clientCnpj"`
	ClientName        string  `json:"clientName"`
	TotalValue        float64 `json:"totalValue"`
	ValorDeducao      float64 `json:"valorDeducao"`
	ValorBase         float64 `json:"valorBase"`
	Aliquota          float64 `json:"aliquota"`
	ValorISS          float64 `json:"valorISS"`
	Retido            bool    `json:"retido"`
	Status            string  `json:"status"`
	LocalRecolhimento string  `json:"localRecolhimento"`
	Empresa           string  `json:"empresa"`
	Cancelled         bool    `json:"cancelled"`
}

func (i *Invoice) SetID(id string) { i.ID = id }

func (i Invoice) RecordYear() int     { return i.Year }
func (i Invoice) RecordMonth() int    { return i.Month }
func (i Invoice) ClientKey() string   { return i.ClientCnpj }
func (i Invoice) ClientLabel() string { return i.ClientName }
func (i Invoice) Amount() float64     { return i.TotalValue }
func (i Invoice) Company() string     { return i.Empresa }
func (i Invoice) IsCancelled() bool   { return i.Cancelled }

// FacetValue implements Record. Invoices carry company and client facets.
func (i Invoice) FacetValue(f Facet) (string, bool) {
	switch f {
	case FacetCompany:
		return i.Empresa, true
	case FacetClient:
		return i.ClientName, true
	}
	return "", false
}
