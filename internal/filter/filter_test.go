package filter

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizdash/pkg/contracts/domain"
)

func sampleContracts() []domain.Contract {
	return []domain.Contract{
		{ID: "1", Year: 2023, ClientName: "Ana", Empresa: "Alfa", Broker: "Imob Sul", Empreendimento: "Residencial Aurora"},
		{ID: "2", Year: 2024, ClientName: "Bruno", Empresa: "Beta", IsDirect: true, Empreendimento: "Jardins"},
		{ID: "3", Year: 2024, ClientName: "Ana", Empresa: "Alfa", Broker: "Casa Nova", Cancelled: true, Empreendimento: "Residencial Aurora"},
		{ID: "4", Year: 2025, ClientName: "Érica", Empresa: "Beta", Broker: "Imob Sul", Empreendimento: "Jardins"},
	}
}

func ids(cs []domain.Contract) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.ID
	}
	return out
}

func TestReduce(t *testing.T) {
	tests := []struct {
		name    string
		start   State
		actions []Action
		check   func(t *testing.T, s State)
	}{
		{
			name:    "toggle year adds then removes",
			start:   Initial(),
			actions: []Action{ToggleYear(2024), ToggleYear(2025), ToggleYear(2024)},
			check: func(t *testing.T, s State) {
				assert.Equal(t, []int{2025}, s.Years)
			},
		},
		{
			name:    "set years replaces and drops repeats",
			start:   Initial(),
			actions: []Action{ToggleYear(2020), SetYears(2023, 2024, 2023)},
			check: func(t *testing.T, s State) {
				assert.Equal(t, []int{2023, 2024}, s.Years)
			},
		},
		{
			name:    "toggle facet",
			start:   Initial(),
			actions: []Action{ToggleFacet(domain.FacetCompany, "Alfa"), ToggleFacet(domain.FacetClient, "Ana")},
			check: func(t *testing.T, s State) {
				assert.Equal(t, []string{"Alfa"}, s.Empresas)
				assert.Equal(t, []string{"Ana"}, s.Clientes)
			},
		},
		{
			name:    "set facet replaces selection",
			start:   Initial(),
			actions: []Action{ToggleFacet(domain.FacetBroker, "X"), SetFacet(domain.FacetBroker, "Imob Sul", "Casa Nova")},
			check: func(t *testing.T, s State) {
				assert.Equal(t, []string{"Imob Sul", "Casa Nova"}, s.Corretores)
			},
		},
		{
			name:    "unknown facet is ignored",
			start:   Initial(),
			actions: []Action{ToggleFacet(domain.Facet("cores"), "azul")},
			check: func(t *testing.T, s State) {
				assert.Equal(t, Initial(), s)
			},
		},
		{
			name:    "toggle cancelled flips",
			start:   Initial(),
			actions: []Action{ToggleCancelled()},
			check: func(t *testing.T, s State) {
				assert.True(t, s.IncludeCancelled)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.start
			for _, a := range tt.actions {
				s = Reduce(s, a)
			}
			tt.check(t, s)
		})
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	start := Reduce(Reduce(Initial(), ToggleYear(2023)), ToggleFacet(domain.FacetCompany, "Alfa"))
	before := start.Clone()

	_ = Reduce(start, ToggleYear(2023))
	_ = Reduce(start, ToggleYear(2024))
	_ = Reduce(start, ToggleFacet(domain.FacetCompany, "Beta"))
	_ = Reduce(start, SetFacet(domain.FacetCompany))
	_ = Reduce(start, Reset())

	assert.Equal(t, before, start)
}

func TestReduceResetIsIdempotent(t *testing.T) {
	states := []State{
		Initial(),
		Reduce(Initial(), ToggleCancelled()),
		Reduce(Reduce(Initial(), SetYears(2021, 2022)), SetFacet(domain.FacetProject, "Jardins")),
	}
	for _, s := range states {
		once := Reduce(s, Reset())
		assert.Equal(t, Initial(), once)
		assert.Equal(t, once, Reduce(once, Reset()))
		assert.False(t, once.IncludeCancelled)
	}
}

func TestApplyNeutralFilterReturnsEverything(t *testing.T) {
	records := sampleContracts()
	s := Reduce(Initial(), ToggleCancelled())
	require.True(t, s.IsNeutral())

	assert.Equal(t, records, Apply(records, s))
}

func TestApply(t *testing.T) {
	records := sampleContracts()

	tests := []struct {
		name  string
		state State
		want  []string
	}{
		{"initial excludes cancelled", Initial(), []string{"1", "2", "4"}},
		{"year selection", Reduce(Initial(), ToggleYear(2024)), []string{"2"}},
		{"company facet", Reduce(Initial(), ToggleFacet(domain.FacetCompany, "Beta")), []string{"2", "4"}},
		{
			"conjunction of facets",
			Reduce(Reduce(Initial(), ToggleFacet(domain.FacetCompany, "Beta")), ToggleFacet(domain.FacetBroker, "Imob Sul")),
			[]string{"4"},
		},
		{"facet not carried is ignored", Reduce(Initial(), ToggleFacet(domain.FacetProduct, "Lote")), []string{"1", "2", "4"}},
		{
			"cancelled included on demand",
			Reduce(Reduce(Initial(), ToggleCancelled()), ToggleFacet(domain.FacetClient, "Ana")),
			[]string{"1", "3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Apply(records, tt.state)))
		})
	}
}

func TestApplyEmptyInput(t *testing.T) {
	out := Apply([]domain.Invoice(nil), Initial())
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestFacetValues(t *testing.T) {
	records := sampleContracts()

	assert.Equal(t, []int{2023, 2024, 2025}, Years(records))
	assert.Equal(t, []string{"Ana", "Bruno", "Érica"}, FacetValues(records, domain.FacetClient))
	assert.Equal(t, []string{"Casa Nova", "Imob Sul"}, FacetValues(records, domain.FacetBroker))
	assert.Empty(t, FacetValues(records, domain.FacetProduct))
}

func TestOptionsFor(t *testing.T) {
	opts := OptionsFor([]domain.Invoice{
		{Year: 2024, Empresa: "Seg", ClientName: "Beta"},
		{Year: 2022, Empresa: "Eng", ClientName: "Alfa"},
	})

	assert.Equal(t, []int{2022, 2024}, opts.Years)
	assert.Len(t, opts.Facets, 2)
	assert.Equal(t, []string{"Eng", "Seg"}, opts.Facets[domain.FacetCompany])
	assert.Equal(t, []string{"Alfa", "Beta"}, opts.Facets[domain.FacetClient])
}

func TestActionValidate(t *testing.T) {
	assert.NoError(t, ToggleYear(2024).Validate())
	assert.NoError(t, SetFacet(domain.FacetProject, "Jardins").Validate())
	assert.Error(t, ToggleFacet(domain.Facet("x"), "y").Validate())
}

func TestStoreDispatch(t *testing.T) {
	store := NewStore()
	assert.Equal(t, Initial(), store.State())

	var wg sync.WaitGroup
	for y := 2020; y < 2030; y++ {
		wg.Add(1)
		go func(year int) {
			defer wg.Done()
			store.Dispatch(ToggleYear(year))
			_ = store.State()
		}(y)
	}
	wg.Wait()

	assert.Len(t, store.State().Years, 10)

	got := store.State()
	got.Years[0] = 1999
	assert.NotEqual(t, 1999, store.State().Years[0])

	assert.Equal(t, Initial(), store.Dispatch(Reset()))
}
