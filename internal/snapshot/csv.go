package snapshot

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"bizdash/internal/config"
	"bizdash/pkg/contracts/domain"
)

// utf8BOM helps Excel recognize UTF-8 exports.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVWriter provides CSV export functionality
type CSVWriter struct {
	paths *config.Paths
}

// NewCSVWriter creates a new CSV writer instance
func NewCSVWriter(paths *config.Paths) *CSVWriter {
	return &CSVWriter{paths: paths}
}

// WriteOptions configures CSV writing behavior
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	BOMPrefix bool
	// Comma overrides the field separator; zero keeps ','.
	Comma rune
}

// WriteCSV writes data to a CSV file in the exports directory. Relative
// paths are resolved against it.
func (w *CSVWriter) WriteCSV(filePath string, options WriteOptions) (string, error) {
	fullPath := w.resolvePath(filePath)

	slog.Info("Writing CSV file",
		slog.String("component", "snapshot"),
		slog.String("full_path", fullPath),
		slog.Int("record_count", len(options.Records)))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	if err := EncodeCSV(file, options); err != nil {
		return "", err
	}
	return fullPath, file.Close()
}

// EncodeCSV writes headers and records to out.
func EncodeCSV(out io.Writer, options WriteOptions) error {
	if options.BOMPrefix {
		if _, err := out.Write(utf8BOM); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(out)
	if options.Comma != 0 {
		writer.Comma = options.Comma
	}

	if len(options.Headers) > 0 {
		if err := writer.Write(options.Headers); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}

	for i, record := range options.Records {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// RankingOptions renders a client ranking as CSV rows. Values use a dot
// decimal separator and two decimals so spreadsheets parse them as numbers.
func RankingOptions(ranking []domain.ClientRanking) WriteOptions {
	records := make([][]string, 0, len(ranking))
	for i, r := range ranking {
		records = append(records, []string{
			strconv.Itoa(i + 1),
			r.Client,
			r.ClientKey,
			strconv.Itoa(r.InvoiceCount),
			formatFloat(r.TotalValue),
			formatFloat(r.AvgValue),
		})
	}

	return WriteOptions{
		Headers:   []string{"posicao", "cliente", "documento", "quantidade", "valor_total", "valor_medio"},
		Records:   records,
		BOMPrefix: true,
	}
}

// resolvePath resolves a path to the exports directory
func (w *CSVWriter) resolvePath(filePath string) string {
	if filepath.IsAbs(filePath) {
		return filePath
	}
	return w.paths.GetExportPath(filePath)
}

// formatFloat formats a float64 value for CSV output with exactly 2 decimal places
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}
