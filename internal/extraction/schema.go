package extraction

import (
	"context"
	"fmt"
	"log/slog"

	"bizdash/internal/normalize"
)

// Source kinds.
const (
	KindInvoices  = "invoices"
	KindContracts = "contracts"
	KindSales     = "sales"
	KindClients   = "clients"
)

// Source is one workbook to extract.
type Source struct {
	Kind string `yaml:"kind"`
	Path string `yaml:"path"`
	// Company tags every record of the file; section markers override it.
	Company string `yaml:"company"`
	// Sheet overrides the layout sheet.
	Sheet string `yaml:"sheet"`
}

// Section is the section state folded over the rows of a sheet.
type Section struct {
	Company string
	Project string
}

// Fields gives a Schema named access to the cells of a data row.
type Fields struct {
	row    Row
	layout Layout
}

// Text returns the trimmed text of a named column.
func (f Fields) Text(col string) string {
	return f.row.Cell(f.layout.Column(col))
}

// Number returns a named column coerced to a number.
func (f Fields) Number(col string) float64 {
	return normalize.Money(f.Text(col))
}

// Date returns a named column parsed as a DD/MM/YYYY date.
func (f Fields) Date(col string) normalize.Date {
	return normalize.ParseDate(dateCell(f.Text(col)))
}

// Schema describes how to turn data rows into records of type R.
type Schema[R any] struct {
	Kind  string
	Build func(f Fields, sec Section) R
	// Retain reports whether a built record is kept; nil keeps everything.
	Retain func(R) bool
}

// Stats counts what happened to the rows of one file.
type Stats struct {
	Kind      string `json:"kind"`
	Path      string `json:"path"`
	Rows      int    `json:"rows"`
	Blank     int    `json:"blank"`
	Sections  int    `json:"sections"`
	Headers   int    `json:"headers"`
	Summaries int    `json:"summaries"`
	Malformed int    `json:"malformed"`
	Data      int    `json:"data"`
	Dropped   int    `json:"dropped"`
	Records   int    `json:"records"`
}

// Extract reads src with layout l and builds records with schema.
// Structural failures are returned as errors; row level problems are only
// counted.
func Extract[R any](ctx context.Context, src Source, l Layout, schema Schema[R]) ([]R, Stats, error) {
	sheet := l.Sheet
	if src.Sheet != "" {
		sheet = src.Sheet
	}

	rows, err := ReadRows(src.Path, sheet)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("extract %s: %w", schema.Kind, err)
	}

	records, stats := Fold(rows, src, l, schema)

	slog.InfoContext(ctx, "Extracted workbook",
		slog.String("component", "extraction"),
		slog.String("kind", stats.Kind),
		slog.String("path", stats.Path),
		slog.Int("rows", stats.Rows),
		slog.Int("data", stats.Data),
		slog.Int("skipped", stats.Malformed),
		slog.Int("dropped", stats.Dropped),
		slog.Int("records", stats.Records))

	return records, stats, nil
}

// Fold walks already loaded rows in a single pass.
func Fold[R any](rows []Row, src Source, l Layout, schema Schema[R]) ([]R, Stats) {
	stats := Stats{Kind: schema.Kind, Path: src.Path}
	sec := Section{Company: src.Company}
	var records []R

	for i := l.FirstDataRow; i < len(rows); i++ {
		row := rows[i]
		stats.Rows++

		switch Classify(l, row) {
		case RowBlank:
			stats.Blank++
		case RowCompany:
			stats.Sections++
			sec.Company = normalize.CleanCompanyLabel(row.Cell(0))
		case RowProject:
			stats.Sections++
			sec.Project = normalize.CleanProjectLabel(row.Cell(0))
		case RowHeader:
			stats.Headers++
		case RowSummary:
			stats.Summaries++
		case RowData:
			stats.Data++
			rec := schema.Build(Fields{row: row, layout: l}, sec)
			if schema.Retain != nil && !schema.Retain(rec) {
				stats.Dropped++
				continue
			}
			records = append(records, rec)
		default:
			stats.Malformed++
		}
	}

	stats.Records = len(records)
	return records, stats
}
