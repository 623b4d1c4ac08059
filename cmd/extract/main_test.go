package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"bizdash/internal/assembler"
	"bizdash/internal/extraction"
	"bizdash/internal/services"
)

func TestPrintSummary(t *testing.T) {
	result := &services.ExtractionResult{
		Files: []extraction.Stats{
			{Kind: extraction.KindInvoices, Path: "/data/sources/seg.xlsx", Rows: 1520, Records: 1234, Dropped: 12},
		},
		Invoices: assembler.Summary{
			Total:      1234,
			Cancelled:  3,
			TotalValue: 1234567.4,
			Years:      []int{2023, 2024},
			Companies:  []string{"Seg", "Eng"},
			Categories: []string{"7.01", "14.01"},
		},
		Contracts: assembler.Summary{
			Total:      3,
			Direct:     2,
			TotalValue: 900000,
			Years:      []int{2024},
			Companies:  []string{"Eng"},
			Categories: []string{"Residencial Aurora"},
		},
		Clients: 42,
	}

	var out bytes.Buffer
	printSummary(&out, result, []string{"/data/exports/ranking_invoices.csv"})

	s := out.String()
	assert.Contains(t, s, "seg.xlsx")
	assert.Contains(t, s, "1.234 registros")
	assert.Contains(t, s, "R$ 1.234.567")
	assert.Contains(t, s, "anos 2023, 2024")
	assert.Contains(t, s, "empresas: Seg; Eng")
	assert.Contains(t, s, "atividades (2): 7.01; 14.01")
	assert.Contains(t, s, "empreendimentos (1): Residencial Aurora")
	assert.Contains(t, s, "vendas diretas: 2")
	assert.NotContains(t, s, "produtos")
	assert.Contains(t, s, "Vendas:        0")
	assert.Contains(t, s, "Clientes:      42")
	assert.Contains(t, s, "ranking_invoices.csv")
}
