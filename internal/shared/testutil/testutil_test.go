package testutil

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestBufferedSlogHandlerKeepsBoundAttrs(t *testing.T) {
	logger, logs := NewTestLogger(t)

	logger.With(slog.String("component", "extraction")).Warn("Workbook skipped", slog.Int("rows", 3))
	logger.Info("done")

	rec, ok := logs.Find("skipped")
	require.True(t, ok)
	assert.Equal(t, "extraction", rec.Attrs["component"])
	assert.Equal(t, int64(3), rec.Attrs["rows"])
	assert.Len(t, logs.Records(), 2, "derived loggers share one buffer")
	assert.Len(t, logs.RecordsByLevel(slog.LevelWarn), 1)

	AssertLogContains(t, logs, slog.LevelInfo, "done")
	AssertNoErrors(t, logs)
}

func TestWriteWorkbook(t *testing.T) {
	path := WriteWorkbook(t, t.TempDir(), "vendas.xlsx", "Vendas", [][]interface{}{
		{"Cliente", "Valor"},
		{"Ana", 10},
	})

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Vendas")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Cliente", "Valor"}, {"Ana", "10"}}, rows)
}
