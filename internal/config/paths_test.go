package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizdash/internal/extraction"
)

func TestGetPaths(t *testing.T) {
	base := t.TempDir()

	paths, err := GetPaths(PathsConfig{
		BaseDir:     base,
		SourceDir:   "planilhas",
		SnapshotDir: "out",
		ExportsDir:  "/tmp/exports",
		LogsDir:     "logs",
	})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(base, "planilhas"), paths.SourceDir)
	assert.Equal(t, filepath.Join(base, "out"), paths.SnapshotDir)
	assert.Equal(t, "/tmp/exports", paths.ExportsDir, "absolute directories are kept")
	assert.Equal(t, filepath.Join(base, "out", "invoices.json"), paths.InvoicesJSON)
	assert.Equal(t, filepath.Join(base, "out", "clients.json"), paths.ClientsJSON)
}

func TestSnapshotFile(t *testing.T) {
	paths, err := GetPaths(Default().Paths)
	require.NoError(t, err)

	tests := []struct {
		kind string
		want string
	}{
		{extraction.KindInvoices, paths.InvoicesJSON},
		{extraction.KindContracts, paths.ContractsJSON},
		{extraction.KindSales, paths.SalesJSON},
		{extraction.KindClients, paths.ClientsJSON},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			got, err := paths.SnapshotFile(tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err = paths.SnapshotFile("orders")
	assert.Error(t, err)
}

func TestSourcePath(t *testing.T) {
	paths := &Paths{SourceDir: "/srv/planilhas"}

	assert.Equal(t, "/srv/planilhas/clientes.xlsx", paths.SourcePath(extraction.Source{Path: "clientes.xlsx"}))
	assert.Equal(t, "/data/x.xls", paths.SourcePath(extraction.Source{Path: "/data/x.xls"}))
}

func TestEnsureDirectories(t *testing.T) {
	base := t.TempDir()
	paths, err := GetPaths(PathsConfig{BaseDir: base, SourceDir: "src", SnapshotDir: "snap", ExportsDir: "exp", LogsDir: "logs"})
	require.NoError(t, err)

	require.NoError(t, paths.EnsureDirectories())

	for _, dir := range []string{paths.SnapshotDir, paths.ExportsDir, paths.LogsDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
	assert.False(t, FileExists(paths.SourceDir), "source directory is never created")
}
