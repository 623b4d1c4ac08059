package snapshot

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizdash/internal/config"
	apperrors "bizdash/internal/errors"
	"bizdash/pkg/contracts/domain"
)

func testPaths(t *testing.T) *config.Paths {
	t.Helper()
	paths, err := config.GetPaths(config.PathsConfig{
		BaseDir:     t.TempDir(),
		SourceDir:   "sources",
		SnapshotDir: "snapshot",
		ExportsDir:  "exports",
		LogsDir:     "logs",
	})
	require.NoError(t, err)
	return paths
}

func TestWriteJSONFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "invoices.json")
	invoices := []domain.Invoice{{
		ID:         "1",
		NfsNumber:  "1532",
		Date:       "2024-03-05",
		Year:       2024,
		Month:      3,
		ClientName: "Construção & Cia",
		TotalValue: 1500.5,
		Status:     domain.StatusNormal,
	}}

	require.NoError(t, WriteJSON(path, invoices))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	text := string(data)
	assert.True(t, strings.HasPrefix(text, "[\n  {\n    \"id\": \"1\",\n    \"nfsNumber\": \"1532\""))
	assert.Contains(t, text, `"clientName": "Construção & Cia"`)
	assert.Contains(t, text, `"valorISS": 0`)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestWriteJSONEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.json")
	require.NoError(t, WriteJSON[domain.Sale](path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	paths := testPaths(t)
	in := &Snapshot{
		Invoices:  []domain.Invoice{{ID: "1", Year: 2024, Month: 1, ClientCnpj: "1", TotalValue: 10, Status: "NORMAL"}},
		Contracts: []domain.Contract{{ID: "1", Year: 2023, ClientID: "7", Broker: "Imob", Empreendimento: "Solar", IsDirect: false}},
		Sales:     []domain.Sale{{ID: "1", Year: 2025, ProductCode: "P1", Quantity: 2, UnitPrice: 5, TotalValue: 10}},
		Clients:   []domain.Client{{Razao: "Ação Ltda", Descricao: "Ação", Cnpj: "00"}},
	}

	require.NoError(t, Save(paths, in))

	out, err := Load(context.Background(), paths, slog.New(slog.NewJSONHandler(io.Discard, nil)))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLoadMissingAndCorrupt(t *testing.T) {
	paths := testPaths(t)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	s, err := Load(context.Background(), paths, logger)
	require.NoError(t, err)
	assert.Empty(t, s.Invoices)
	assert.NotNil(t, s.Contracts)

	require.NoError(t, os.MkdirAll(paths.SnapshotDir, 0755))
	require.NoError(t, os.WriteFile(paths.ContractsJSON, []byte("{not json"), 0644))

	_, err = Load(context.Background(), paths, logger)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeParsing))
}

func TestLoadJSONNotFound(t *testing.T) {
	_, err := LoadJSON[domain.Client](filepath.Join(t.TempDir(), "clients.json"))
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeNotFound))
}

func TestRankingCSV(t *testing.T) {
	ranking := []domain.ClientRanking{
		{Client: "Acme, Corp", ClientKey: "123", InvoiceCount: 3, TotalValue: 600, AvgValue: 200},
		{Client: "Beta", ClientKey: "456", InvoiceCount: 1, TotalValue: 99.999, AvgValue: 99.999},
	}

	var buf bytes.Buffer
	require.NoError(t, EncodeCSV(&buf, RankingOptions(ranking)))

	out := buf.Bytes()
	require.True(t, bytes.HasPrefix(out, utf8BOM))

	lines := strings.Split(strings.TrimSpace(string(out[len(utf8BOM):])), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "posicao,cliente,documento,quantidade,valor_total,valor_medio", lines[0])
	assert.Equal(t, `1,"Acme, Corp",123,3,600.00,200.00`, lines[1])
	assert.Equal(t, "2,Beta,456,1,100.00,100.00", lines[2])
}

func TestCSVWriter_WriteCSV(t *testing.T) {
	paths := testPaths(t)
	w := NewCSVWriter(paths)

	full, err := w.WriteCSV("ranking_invoices.csv", WriteOptions{
		Headers: []string{"a", "b"},
		Records: [][]string{{"1", "2"}},
		Comma:   ';',
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(paths.ExportsDir, "ranking_invoices.csv"), full)

	data, err := os.ReadFile(full)
	require.NoError(t, err)
	assert.Equal(t, "a;b\n1;2\n", string(data))
}
