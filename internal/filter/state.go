package filter

import (
	"fmt"

	"bizdash/pkg/contracts/domain"
)

// State is one filter selection.
type State struct {
	Years            []int    `json:"years"`
	Empresas         []string `json:"empresas"`
	Clientes         []string `json:"clientes"`
	Produtos         []string `json:"produtos"`
	Corretores       []string `json:"corretores"`
	Empreendimentos  []string `json:"empreendimentos"`
	IncludeCancelled bool     `json:"includeCancelled"`
}

// Initial returns the canonical neutral state.
func Initial() State {
	return State{
		Years:           []int{},
		Empresas:        []string{},
		Clientes:        []string{},
		Produtos:        []string{},
		Corretores:      []string{},
		Empreendimentos: []string{},
	}
}

// Selection returns the selected values of a facet.
func (s State) Selection(f domain.Facet) []string {
	switch f {
	case domain.FacetCompany:
		return s.Empresas
	case domain.FacetClient:
		return s.Clientes
	case domain.FacetProduct:
		return s.Produtos
	case domain.FacetBroker:
		return s.Corretores
	case domain.FacetProject:
		return s.Empreendimentos
	}
	return nil
}

// withSelection returns a copy of s with the selection of f replaced.
func (s State) withSelection(f domain.Facet, values []string) State {
	switch f {
	case domain.FacetCompany:
		s.Empresas = values
	case domain.FacetClient:
		s.Clientes = values
	case domain.FacetProduct:
		s.Produtos = values
	case domain.FacetBroker:
		s.Corretores = values
	case domain.FacetProject:
		s.Empreendimentos = values
	}
	return s
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	return State{
		Years:            append([]int{}, s.Years...),
		Empresas:         append([]string{}, s.Empresas...),
		Clientes:         append([]string{}, s.Clientes...),
		Produtos:         append([]string{}, s.Produtos...),
		Corretores:       append([]string{}, s.Corretores...),
		Empreendimentos:  append([]string{}, s.Empreendimentos...),
		IncludeCancelled: s.IncludeCancelled,
	}
}

// IsNeutral reports whether s lets every record through.
func (s State) IsNeutral() bool {
	if !s.IncludeCancelled || len(s.Years) > 0 {
		return false
	}
	for _, f := range domain.Facets {
		if len(s.Selection(f)) > 0 {
			return false
		}
	}
	return true
}

// ActionType enumerates the filter actions.
type ActionType string

const (
	ActionToggleYear      ActionType = "toggle_year"
	ActionSetYears        ActionType = "set_years"
	ActionToggleFacet     ActionType = "toggle_facet"
	ActionSetFacet        ActionType = "set_facet"
	ActionToggleCancelled ActionType = "toggle_cancelled"
	ActionReset           ActionType = "reset"
)

// Action is one filter change, as emitted by the filter UI.
type Action struct {
	Type   ActionType   `json:"type" validate:"required,oneof=toggle_year set_years toggle_facet set_facet toggle_cancelled reset"`
	Year   int          `json:"year,omitempty" validate:"required_if=Type toggle_year"`
	Years  []int        `json:"years,omitempty"`
	Facet  domain.Facet `json:"facet,omitempty"`
	Value  string       `json:"value,omitempty" validate:"required_if=Type toggle_facet"`
	Values []string     `json:"values,omitempty"`
}

// Validate checks the parts of an action the struct tags cannot express.
func (a Action) Validate() error {
	switch a.Type {
	case ActionToggleFacet, ActionSetFacet:
		if !a.Facet.Valid() {
			return fmt.Errorf("unknown facet %q", a.Facet)
		}
	}
	return nil
}

// ToggleYear adds year to the selection, or removes it when present.
func ToggleYear(year int) Action { return Action{Type: ActionToggleYear, Year: year} }

// SetYears replaces the year selection.
func SetYears(years ...int) Action { return Action{Type: ActionSetYears, Years: years} }

// ToggleFacet adds value to a facet selection, or removes it when present.
func ToggleFacet(f domain.Facet, value string) Action {
	return Action{Type: ActionToggleFacet, Facet: f, Value: value}
}

// SetFacet replaces a facet selection.
func SetFacet(f domain.Facet, values ...string) Action {
	return Action{Type: ActionSetFacet, Facet: f, Values: values}
}

// ToggleCancelled flips whether cancelled records are included.
func ToggleCancelled() Action { return Action{Type: ActionToggleCancelled} }

// Reset returns to the initial state.
func Reset() Action { return Action{Type: ActionReset} }
