// Command extract reads the configured source workbooks and writes the JSON
// snapshot served by the dashboard, plus one ranking CSV per collection.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"bizdash/internal/assembler"
	"bizdash/internal/config"
	"bizdash/internal/format"
	"bizdash/internal/infrastructure"
	"bizdash/internal/services"
	"bizdash/pkg/contracts"
)

func main() {
	if err := run(context.Background(), os.Stdout); err != nil {
		slog.Error("Extraction failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer infrastructure.CloseLogFile()

	logger.InfoContext(ctx, "Extraction command starting", slog.String("version", contracts.GetFullVersionString()))

	paths, err := config.GetPaths(cfg.Paths)
	if err != nil {
		return fmt.Errorf("failed to get paths: %w", err)
	}

	svc := services.NewExtractionService(cfg, paths, logger)
	result, err := svc.Run(ctx)
	if err != nil {
		return err
	}

	exports, err := svc.ExportRankings(ctx, result.Snapshot)
	if err != nil {
		return err
	}

	printSummary(out, result, exports)
	return nil
}

func printSummary(out io.Writer, result *services.ExtractionResult, exports []string) {
	fmt.Fprintln(out, "Arquivos processados:")
	for _, f := range result.Files {
		fmt.Fprintf(out, "  %-10s %-40s %s registros (%s linhas, %s descartadas)\n",
			f.Kind, filepath.Base(f.Path),
			format.Integer(f.Records), format.Integer(f.Rows), format.Integer(f.Dropped))
	}

	fmt.Fprintln(out)
	printCollection(out, "Notas fiscais", "atividades", result.Invoices)
	printCollection(out, "Contratos", "empreendimentos", result.Contracts)
	printCollection(out, "Vendas", "produtos", result.Sales)
	fmt.Fprintf(out, "Clientes:      %s\n", format.Integer(result.Clients))

	if len(exports) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Rankings exportados:")
		for _, path := range exports {
			fmt.Fprintf(out, "  %s\n", path)
		}
	}
}

func printCollection(out io.Writer, label, categoryLabel string, s assembler.Summary) {
	if s.Total == 0 {
		fmt.Fprintf(out, "%-14s 0\n", label+":")
		return
	}

	years := make([]string, len(s.Years))
	for i, y := range s.Years {
		years[i] = fmt.Sprint(y)
	}

	fmt.Fprintf(out, "%-14s %s (%s canceladas) | total %s | anos %s\n",
		label+":",
		format.Integer(s.Total),
		format.Integer(s.Cancelled),
		format.Currency(s.TotalValue),
		strings.Join(years, ", "))
	if len(s.Companies) > 0 {
		fmt.Fprintf(out, "%-14s empresas: %s\n", "", strings.Join(s.Companies, "; "))
	}
	if len(s.Categories) > 0 {
		fmt.Fprintf(out, "%-14s %s (%s): %s\n", "", categoryLabel,
			format.Integer(len(s.Categories)), strings.Join(s.Categories, "; "))
	}
	if s.Direct > 0 {
		fmt.Fprintf(out, "%-14s vendas diretas: %s\n", "", format.Integer(s.Direct))
	}
}
