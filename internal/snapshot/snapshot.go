package snapshot

import (
	"context"
	"log/slog"

	"bizdash/internal/config"
	apperrors "bizdash/internal/errors"
	"bizdash/pkg/contracts/domain"
)

// Snapshot is the full set of collections loaded by the dashboard. It is
// never mutated after Load.
type Snapshot struct {
	Invoices  []domain.Invoice
	Contracts []domain.Contract
	Sales     []domain.Sale
	Clients   []domain.Client
}

// Save writes every collection to its well-known file.
func Save(paths *config.Paths, s *Snapshot) error {
	if err := WriteJSON(paths.InvoicesJSON, s.Invoices); err != nil {
		return err
	}
	if err := WriteJSON(paths.ContractsJSON, s.Contracts); err != nil {
		return err
	}
	if err := WriteJSON(paths.SalesJSON, s.Sales); err != nil {
		return err
	}
	return WriteJSON(paths.ClientsJSON, s.Clients)
}

// Load reads every collection. A missing file yields an empty collection,
// since a deployment may only export some of the schemas; an unreadable
// file is an error.
func Load(ctx context.Context, paths *config.Paths, logger *slog.Logger) (*Snapshot, error) {
	logger = logger.With(slog.String("component", "snapshot"))

	s := &Snapshot{}
	var err error

	if s.Invoices, err = loadOptional[domain.Invoice](ctx, logger, paths.InvoicesJSON); err != nil {
		return nil, err
	}
	if s.Contracts, err = loadOptional[domain.Contract](ctx, logger, paths.ContractsJSON); err != nil {
		return nil, err
	}
	if s.Sales, err = loadOptional[domain.Sale](ctx, logger, paths.SalesJSON); err != nil {
		return nil, err
	}
	if s.Clients, err = loadOptional[domain.Client](ctx, logger, paths.ClientsJSON); err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "Snapshot loaded",
		slog.Int("invoices", len(s.Invoices)),
		slog.Int("contracts", len(s.Contracts)),
		slog.Int("sales", len(s.Sales)),
		slog.Int("clients", len(s.Clients)))

	return s, nil
}

func loadOptional[T any](ctx context.Context, logger *slog.Logger, path string) ([]T, error) {
	records, err := LoadJSON[T](path)
	if apperrors.IsType(err, apperrors.ErrTypeNotFound) {
		logger.WarnContext(ctx, "Snapshot file missing, using empty collection", slog.String("path", path))
		return []T{}, nil
	}
	return records, err
}
