package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "bizdash/internal/errors"
)

func touch(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestIsWorkbook(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"vendas.xlsx", true},
		{"NFSE.XLS", true},
		{"ranking.csv", false},
		{"notas", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsWorkbook(tt.name))
		})
	}
}

func TestFindWorkbooks(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "b.xls", "x")
	touch(t, dir, "a.xlsx", "x")
	touch(t, dir, "notes.txt", "x")
	touch(t, dir, "~$a.xlsx", "x")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "old.xlsx"), 0755))

	found, err := NewDiscovery(dir).FindWorkbooks()
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "a.xlsx", found[0].Name)
	assert.Equal(t, "b.xls", found[1].Name)
	assert.Equal(t, int64(1), found[0].Size)
}

func TestFindWorkbooksMissingDir(t *testing.T) {
	_, err := NewDiscovery(filepath.Join(t.TempDir(), "nope")).FindWorkbooks()
	assert.Error(t, err)
}

func TestPreflight(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "seg.xlsx", "data")
	touch(t, dir, "empty.xlsx", "")
	touch(t, dir, "notes.txt", "data")
	d := NewDiscovery(dir)

	assert.NoError(t, d.Preflight([]string{"seg.xlsx", filepath.Join(dir, "seg.xlsx")}))
	assert.NoError(t, d.Preflight(nil))

	err := d.Preflight([]string{"seg.xlsx", "eng.xlsx", "vendas.xls"})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeNotFound))
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Len(t, appErr.Context["missing"], 2)

	err = d.Preflight([]string{"empty.xlsx", "notes.txt"})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeConfig))
}

func TestUnreferenced(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "seg.xlsx", "x")
	touch(t, dir, "novo.xlsx", "x")
	d := NewDiscovery(dir)

	extra, err := d.Unreferenced([]string{"seg.xlsx"})
	require.NoError(t, err)
	require.Len(t, extra, 1)
	assert.Equal(t, "novo.xlsx", extra[0].Name)

	extra, err = NewDiscovery(filepath.Join(dir, "missing")).Unreferenced(nil)
	require.NoError(t, err)
	assert.Empty(t, extra)
}
