package services

import (
	"context"

	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
)

// SummarySvc computes the monthly dashboard report.
type SummarySvc interface {
	// Summarize aggregates totals, lifetime account balances and budget
	// statuses. Month is optional; when empty, totals cover all
	// transactions and no budget statuses are produced.
	Summarize(ctx context.Context, month string) (*domain.Summary, error)
}

// DiagnosticsSvc exposes store reachability for the /test endpoint.
type DiagnosticsSvc interface {
	Ping(ctx context.Context) error
	ListCollections(ctx context.Context) ([]string, error)
}
