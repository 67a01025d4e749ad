package repositories

import (
	"context"

	"github.com/fintrackhq/finance_tracker_app/internal/models"
)

// DocumentStore is the generic gateway to named record collections.
// There is no filtering, sorting, or pagination at this layer; all
// filtering happens in services.
type DocumentStore interface {
	// Insert stores one record, stamps it with a creation timestamp and
	// returns the store-assigned identifier.
	Insert(ctx context.Context, collection models.Collection, payload any) (string, error)

	// FindAll returns every record of a collection.
	FindAll(ctx context.Context, collection models.Collection) ([]models.Document, error)

	// FindByID returns a single record, or apperrors.ErrNotFound.
	FindByID(ctx context.Context, collection models.Collection, id string) (*models.Document, error)
}

// StoreDiagnostics exposes reachability checks for the diagnostic endpoint.
type StoreDiagnostics interface {
	// Ping verifies store connectivity.
	Ping(ctx context.Context) error

	// ListCollections enumerates the collections currently holding records.
	ListCollections(ctx context.Context) ([]string, error)
}
