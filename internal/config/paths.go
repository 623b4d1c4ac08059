package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"bizdash/internal/extraction"
)

// Well-known snapshot file names
const (
	InvoicesFile  = "invoices.json"
	ContractsFile = "contracts.json"
	SalesFile     = "sales.json"
	ClientsFile   = "clients.json"
)

// Paths contains all the application paths.
// This is the single source of truth for every file the tools read or write.
type Paths struct {
	BaseDir     string
	SourceDir   string
	SnapshotDir string
	ExportsDir  string
	LogsDir     string

	// Well-known snapshot files
	InvoicesJSON  string
	ContractsJSON string
	SalesJSON     string
	ClientsJSON   string
}

// GetPaths resolves the configured directories. Relative directories are
// taken relative to BaseDir, which itself is relative to the working
// directory.
func GetPaths(cfg PathsConfig) (*Paths, error) {
	base, err := filepath.Abs(cfg.BaseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve base directory: %w", err)
	}

	resolve := func(dir string) string {
		if filepath.IsAbs(dir) {
			return dir
		}
		return filepath.Join(base, dir)
	}

	snapshotDir := resolve(cfg.SnapshotDir)

	return &Paths{
		BaseDir:     base,
		SourceDir:   resolve(cfg.SourceDir),
		SnapshotDir: snapshotDir,
		ExportsDir:  resolve(cfg.ExportsDir),
		LogsDir:     resolve(cfg.LogsDir),

		InvoicesJSON:  filepath.Join(snapshotDir, InvoicesFile),
		ContractsJSON: filepath.Join(snapshotDir, ContractsFile),
		SalesJSON:     filepath.Join(snapshotDir, SalesFile),
		ClientsJSON:   filepath.Join(snapshotDir, ClientsFile),
	}, nil
}

// EnsureDirectories creates the output directories if they don't exist.
// Source files are never created.
func (p *Paths) EnsureDirectories() error {
	directories := []string{
		p.SnapshotDir,
		p.ExportsDir,
		p.LogsDir,
	}

	logger := slog.Default()

	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %v", dir, err)
		}
		logger.Debug("Ensured directory exists", slog.String("directory", dir))
	}

	return nil
}

// SnapshotFile returns the snapshot path of a collection kind.
func (p *Paths) SnapshotFile(kind string) (string, error) {
	switch kind {
	case extraction.KindInvoices:
		return p.InvoicesJSON, nil
	case extraction.KindContracts:
		return p.ContractsJSON, nil
	case extraction.KindSales:
		return p.SalesJSON, nil
	case extraction.KindClients:
		return p.ClientsJSON, nil
	}
	return "", fmt.Errorf("unknown collection %q", kind)
}

// SourcePath resolves a source workbook path against SourceDir.
func (p *Paths) SourcePath(src extraction.Source) string {
	if filepath.IsAbs(src.Path) {
		return src.Path
	}
	return filepath.Join(p.SourceDir, src.Path)
}

// GetExportPath returns the path for an exported file
func (p *Paths) GetExportPath(filename string) string {
	return filepath.Join(p.ExportsDir, filename)
}

// GetLogPath returns the path for a log file
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// LogPathResolution logs the resolved paths for debugging
func (p *Paths) LogPathResolution() {
	slog.Default().Info("Path resolution summary",
		slog.Group("directories",
			slog.String("base", p.BaseDir),
			slog.String("sources", p.SourceDir),
			slog.String("snapshot", p.SnapshotDir),
			slog.String("exports", p.ExportsDir),
			slog.String("logs", p.LogsDir),
		),
		slog.Group("snapshot_files",
			slog.String("invoices", p.InvoicesJSON),
			slog.String("contracts", p.ContractsJSON),
			slog.String("sales", p.SalesJSON),
			slog.String("clients", p.ClientsJSON),
		))
}
