package domain

// Facet identifies a categorical filter dimension.
type Facet string

const (
	FacetCompany Facet = "empresas"
	FacetClient  Facet = "clientes"
	FacetProduct Facet = "produtos"
	FacetBroker  Facet = "corretores"
	FacetProject Facet = "empreendimentos"
)

// Facets lists every facet in display order.
var Facets = []Facet{FacetCompany, FacetClient, FacetProduct, FacetBroker, FacetProject}

// Valid reports whether f is a known facet.
func (f Facet) Valid() bool {
	for _, known := range Facets {
		if f == known {
			return true
		}
	}
	return false
}

// StatusNormal is the status text of an active record. Any other status
// means the record was cancelled.
const StatusNormal = "NORMAL"

// StatusCancelled is the status assigned to contracts whose unit carries
// the cancellation marker.
const StatusCancelled = "CANCELADO"

// UnknownClient labels records without a client name in rankings.
const UnknownClient = "Desconhecido"

// MinYear is the retention cutoff: rows dated before it are never extracted.
const MinYear = 2020

// Record is the shape shared by every transaction schema. The filter and
// analytics packages are written against it so one pipeline serves
// invoices, contracts and sales.
type Record interface {
	RecordYear() int
	RecordMonth() int
	// ClientKey identifies the client for cohort and lifecycle analysis
	// (CNPJ or positional source id).
	ClientKey() string
	ClientLabel() string
	Amount() float64
	Company() string
	IsCancelled() bool
	// FacetValue returns the record's value for a facet and whether the
	// schema carries that facet at all.
	FacetValue(f Facet) (string, bool)
}

// DirectFlagger is implemented by schemas that distinguish direct sales
// from brokered ones.
type DirectFlagger interface {
	Direct() bool
}

// IDSetter lets the assembler stamp surface ids on freshly extracted records.
type IDSetter interface {
	SetID(id string)
}
