package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fintrackhq/finance_tracker_app/internal/apperrors"
	portsrepo "github.com/fintrackhq/finance_tracker_app/internal/core/ports/repositories"
	"github.com/fintrackhq/finance_tracker_app/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxDocumentStore is the generic gateway to named record collections,
// backed by a single jsonb documents table. Typed repositories wrap it
// and deserialize payloads at this boundary.
type PgxDocumentStore struct {
	pool *pgxpool.Pool
}

// NewPgxDocumentStore creates the document store gateway.
func NewPgxDocumentStore(pool *pgxpool.Pool) *PgxDocumentStore {
	return &PgxDocumentStore{pool: pool}
}

var _ portsrepo.DocumentStore = (*PgxDocumentStore)(nil)
var _ portsrepo.StoreDiagnostics = (*PgxDocumentStore)(nil)

// Insert stores one record, stamps created_at and returns the
// store-assigned identifier.
func (r *PgxDocumentStore) Insert(ctx context.Context, collection models.Collection, payload any) (string, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s payload: %w", collection, err)
	}

	docID := uuid.NewString()
	query := `
		INSERT INTO documents (doc_id, collection, payload, created_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err = r.pool.Exec(ctx, query, docID, collection, raw, time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("%w: failed to insert into %s: %v", apperrors.ErrDependencyUnavailable, collection, err)
	}
	return docID, nil
}

// FindAll returns every record of a collection, in store order.
func (r *PgxDocumentStore) FindAll(ctx context.Context, collection models.Collection) ([]models.Document, error) {
	query := `
		SELECT doc_id, collection, payload, created_at
		FROM documents
		WHERE collection = $1;
	`
	rows, err := r.pool.Query(ctx, query, collection)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query collection %s: %v", apperrors.ErrDependencyUnavailable, collection, err)
	}
	defer rows.Close()

	docs := []models.Document{}
	for rows.Next() {
		var doc models.Document
		if err := rows.Scan(&doc.DocID, &doc.Collection, &doc.Payload, &doc.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan %s document row: %w", collection, err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating %s documents: %v", apperrors.ErrDependencyUnavailable, collection, err)
	}
	return docs, nil
}

// FindByID returns a single record. A malformed or unknown id surfaces
// as apperrors.ErrNotFound.
func (r *PgxDocumentStore) FindByID(ctx context.Context, collection models.Collection, id string) (*models.Document, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %s %s", apperrors.ErrNotFound, collection, id)
	}

	query := `
		SELECT doc_id, collection, payload, created_at
		FROM documents
		WHERE collection = $1 AND doc_id = $2;
	`
	var doc models.Document
	err := r.pool.QueryRow(ctx, query, collection, id).Scan(&doc.DocID, &doc.Collection, &doc.Payload, &doc.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s %s", apperrors.ErrNotFound, collection, id)
		}
		return nil, fmt.Errorf("%w: failed to find %s %s: %v", apperrors.ErrDependencyUnavailable, collection, id, err)
	}
	return &doc, nil
}

// Ping verifies store connectivity.
func (r *PgxDocumentStore) Ping(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrDependencyUnavailable, err)
	}
	return nil
}

// ListCollections enumerates the collections currently holding records.
func (r *PgxDocumentStore) ListCollections(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT collection FROM documents ORDER BY collection;`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list collections: %v", apperrors.ErrDependencyUnavailable, err)
	}
	defer rows.Close()

	collections := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan collection name: %w", err)
		}
		collections = append(collections, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating collections: %v", apperrors.ErrDependencyUnavailable, err)
	}
	return collections, nil
}
