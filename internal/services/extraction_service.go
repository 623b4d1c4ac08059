package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"bizdash/internal/analytics"
	"bizdash/internal/assembler"
	"bizdash/internal/config"
	apperrors "bizdash/internal/errors"
	"bizdash/internal/extraction"
	"bizdash/internal/files"
	"bizdash/internal/infrastructure"
	"bizdash/internal/snapshot"
	"bizdash/pkg/contracts/domain"
)

// ExtractionResult describes one extraction run.
type ExtractionResult struct {
	Files     []extraction.Stats `json:"files"`
	Invoices  assembler.Summary  `json:"invoices"`
	Contracts assembler.Summary  `json:"contracts"`
	Sales     assembler.Summary  `json:"sales"`
	Clients   int                `json:"clients"`
	Duration  time.Duration      `json:"duration"`

	Snapshot *snapshot.Snapshot `json:"-"`
}

// ExtractionService turns the configured source workbooks into the JSON
// snapshot read by the dashboard.
type ExtractionService struct {
	cfg    *config.Config
	paths  *config.Paths
	logger *slog.Logger
}

// NewExtractionService creates an extraction service.
func NewExtractionService(cfg *config.Config, paths *config.Paths, logger *slog.Logger) *ExtractionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractionService{
		cfg:    cfg,
		paths:  paths,
		logger: infrastructure.WithComponent(logger, "extraction_service"),
	}
}

// batches collects the per-file outputs of one run, in source order.
type batches struct {
	invoices  [][]domain.Invoice
	contracts [][]domain.Contract
	sales     [][]domain.Sale
	clients   []domain.Client
	files     []extraction.Stats
}

// Run extracts every source, assembles one collection per schema and
// writes the snapshot. Any structural failure aborts the run before the
// snapshot is touched.
func (s *ExtractionService) Run(ctx context.Context) (*ExtractionResult, error) {
	ctx = infrastructure.EnsureTraceID(ctx)
	start := time.Now()

	s.logger.InfoContext(ctx, "Extraction started", slog.Int("sources", len(s.cfg.Sources)))

	if err := s.preflight(ctx); err != nil {
		return nil, err
	}

	var b batches
	for _, src := range s.cfg.Sources {
		if err := s.extractSource(ctx, src, &b); err != nil {
			infrastructure.WithError(s.logger, err).ErrorContext(ctx, "Extraction aborted",
				slog.String("kind", src.Kind),
				slog.String("path", src.Path))
			return nil, err
		}
	}

	snap := &snapshot.Snapshot{
		Invoices:  assembler.Assemble[domain.Invoice](b.invoices...),
		Contracts: assembler.Assemble[domain.Contract](b.contracts...),
		Sales:     assembler.Assemble[domain.Sale](b.sales...),
		Clients:   b.clients,
	}
	if snap.Clients == nil {
		snap.Clients = []domain.Client{}
	}

	if err := s.paths.EnsureDirectories(); err != nil {
		return nil, apperrors.NewStorageError("failed to create output directories", err)
	}
	if err := snapshot.Save(s.paths, snap); err != nil {
		return nil, err
	}

	result := &ExtractionResult{
		Files:     b.files,
		Invoices:  assembler.Summarize(snap.Invoices, func(i domain.Invoice) string { return i.Atividade }),
		Contracts: assembler.Summarize(snap.Contracts, func(c domain.Contract) string { return c.Empreendimento }),
		Sales:     assembler.Summarize(snap.Sales, func(s domain.Sale) string { return s.ProductName }),
		Clients:   len(snap.Clients),
		Duration:  time.Since(start),
		Snapshot:  snap,
	}

	s.logger.InfoContext(ctx, "Extraction completed",
		slog.Int("invoices", result.Invoices.Total),
		slog.Int("contracts", result.Contracts.Total),
		slog.Int("sales", result.Sales.Total),
		slog.Int("clients", result.Clients),
		slog.String("snapshot_dir", s.paths.SnapshotDir),
		slog.Duration("duration", result.Duration))

	return result, nil
}

// preflight checks every configured workbook before any is read and warns
// about workbooks in the source directory that no source entry names.
func (s *ExtractionService) preflight(ctx context.Context) error {
	sourcePaths := make([]string, len(s.cfg.Sources))
	for i, src := range s.cfg.Sources {
		sourcePaths[i] = s.paths.SourcePath(src)
	}

	discovery := files.NewDiscovery(s.paths.SourceDir)
	if err := discovery.Preflight(sourcePaths); err != nil {
		infrastructure.WithError(s.logger, err).ErrorContext(ctx, "Source preflight failed")
		return err
	}

	extra, err := discovery.Unreferenced(sourcePaths)
	if err != nil {
		infrastructure.WithError(s.logger, err).WarnContext(ctx, "Could not list source directory")
		return nil
	}
	for _, f := range extra {
		s.logger.WarnContext(ctx, "Workbook not referenced by any source",
			slog.String("path", f.Path),
			slog.Int64("size", f.Size))
	}
	return nil
}

func (s *ExtractionService) extractSource(ctx context.Context, src extraction.Source, b *batches) error {
	layout, ok := s.cfg.Layout(src.Kind)
	if !ok {
		return apperrors.NewConfigError(fmt.Sprintf("no layout for source kind %q", src.Kind), nil)
	}
	src.Path = s.paths.SourcePath(src)

	var (
		stats extraction.Stats
		err   error
	)
	switch src.Kind {
	case extraction.KindInvoices:
		b.invoices, stats, err = extractInto(ctx, src, layout, extraction.InvoiceSchema, b.invoices)
	case extraction.KindContracts:
		b.contracts, stats, err = extractInto(ctx, src, layout, extraction.ContractSchema, b.contracts)
	case extraction.KindSales:
		b.sales, stats, err = extractInto(ctx, src, layout, extraction.SaleSchema, b.sales)
	case extraction.KindClients:
		var records []domain.Client
		records, stats, err = extraction.Extract(ctx, src, layout, extraction.ClientSchema)
		b.clients = append(b.clients, records...)
	default:
		return apperrors.NewConfigError(fmt.Sprintf("unknown source kind %q", src.Kind), nil)
	}
	if err != nil {
		return err
	}

	b.files = append(b.files, stats)
	return nil
}

func extractInto[R any](ctx context.Context, src extraction.Source, l extraction.Layout, schema extraction.Schema[R], acc [][]R) ([][]R, extraction.Stats, error) {
	records, stats, err := extraction.Extract(ctx, src, l, schema)
	if err != nil {
		return acc, stats, err
	}
	return append(acc, records), stats, nil
}

// ExportRankings writes the client ranking of every non-empty collection of
// snap to the exports directory and returns the written paths.
func (s *ExtractionService) ExportRankings(ctx context.Context, snap *snapshot.Snapshot) ([]string, error) {
	writer := snapshot.NewCSVWriter(s.paths)

	rankings := []struct {
		dataset Dataset
		rows    []domain.ClientRanking
		size    int
	}{
		{DatasetInvoices, analytics.ClientRanking(snap.Invoices), len(snap.Invoices)},
		{DatasetContracts, analytics.ClientRanking(snap.Contracts), len(snap.Contracts)},
		{DatasetSales, analytics.ClientRanking(snap.Sales), len(snap.Sales)},
	}

	var written []string
	for _, r := range rankings {
		if r.size == 0 {
			continue
		}
		path, err := writer.WriteCSV(fmt.Sprintf(config.RankingCSVPattern, r.dataset), snapshot.RankingOptions(r.rows))
		if err != nil {
			return written, apperrors.NewStorageError("failed to export ranking", err).
				WithContext("dataset", string(r.dataset))
		}
		written = append(written, path)
	}

	s.logger.InfoContext(ctx, "Rankings exported", slog.Int("files", len(written)))
	return written, nil
}
