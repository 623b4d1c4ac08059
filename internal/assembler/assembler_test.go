package assembler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizdash/pkg/contracts/domain"
)

func TestAssemble(t *testing.T) {
	first := []domain.Invoice{
		{NfsNumber: "10", Empresa: "Segurança"},
		{NfsNumber: "11", Empresa: "Segurança"},
	}
	second := []domain.Invoice{
		{NfsNumber: "10", Empresa: "Inspeções"},
	}

	all := Assemble(first, second)

	require.Len(t, all, 3)
	assert.Equal(t, []string{"1", "2", "3"}, []string{all[0].ID, all[1].ID, all[2].ID})
	assert.Equal(t, "Inspeções", all[2].Empresa, "batches keep processing order")
	assert.Equal(t, "10", all[2].NfsNumber, "same document number in two files is not deduplicated")
	assert.Empty(t, first[0].ID, "input batches are not modified")
}

func TestAssembleEmpty(t *testing.T) {
	assert.Empty(t, Assemble[domain.Contract]())
	assert.Empty(t, Assemble([]domain.Sale{}, nil))
}

func TestSummarize(t *testing.T) {
	contracts := []domain.Contract{
		{Year: 2024, TotalValue: 100, Empresa: "A", Empreendimento: "Gran Tower", IsDirect: true},
		{Year: 2022, TotalValue: 50, Empresa: "B", Empreendimento: "Solar", Cancelled: true},
		{Year: 2024, TotalValue: 25, Empresa: "A", Empreendimento: "Gran Tower"},
	}

	s := Summarize(contracts, func(c domain.Contract) string { return c.Empreendimento })

	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 1, s.Cancelled)
	assert.Equal(t, 1, s.Direct)
	assert.Equal(t, 175.0, s.TotalValue)
	assert.Equal(t, []int{2022, 2024}, s.Years)
	assert.Equal(t, []string{"A", "B"}, s.Companies)
	assert.Equal(t, []string{"Gran Tower", "Solar"}, s.Categories)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize[domain.Invoice](nil, nil)

	assert.Zero(t, s.Total)
	assert.Empty(t, s.Years)
	assert.Nil(t, s.Categories)
}
