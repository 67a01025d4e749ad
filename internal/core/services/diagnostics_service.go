package services

import (
	"context"

	portsrepo "github.com/fintrackhq/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/fintrackhq/finance_tracker_app/internal/core/ports/services"
)

type diagnosticsService struct {
	store portsrepo.StoreDiagnostics
}

// NewDiagnosticsService creates the diagnostics service backing /test.
func NewDiagnosticsService(store portsrepo.StoreDiagnostics) portssvc.DiagnosticsSvc {
	return &diagnosticsService{store: store}
}

var _ portssvc.DiagnosticsSvc = (*diagnosticsService)(nil)

func (s *diagnosticsService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func (s *diagnosticsService) ListCollections(ctx context.Context) ([]string, error) {
	return s.store.ListCollections(ctx)
}
