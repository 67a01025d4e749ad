package pgsql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/fintrackhq/finance_tracker_app/internal/core/ports/repositories"
	"github.com/fintrackhq/finance_tracker_app/internal/models"
)

// PgxCategoryRepository provides typed access to the category collection.
type PgxCategoryRepository struct {
	store *PgxDocumentStore
}

func newPgxCategoryRepository(store *PgxDocumentStore) portsrepo.CategoryRepository {
	return &PgxCategoryRepository{store: store}
}

var _ portsrepo.CategoryRepository = (*PgxCategoryRepository)(nil)

func toModelCategory(d domain.Category) models.Category {
	return models.Category{
		Name:  d.Name,
		Type:  string(d.Type),
		Color: d.Color,
	}
}

func toDomainCategory(doc models.Document) (domain.Category, error) {
	var m models.Category
	if err := json.Unmarshal(doc.Payload, &m); err != nil {
		return domain.Category{}, fmt.Errorf("failed to decode category %s: %w", doc.DocID, err)
	}
	return domain.Category{
		RecordMeta: domain.RecordMeta{
			ID:        doc.DocID,
			CreatedAt: doc.CreatedAt,
		},
		Name:  m.Name,
		Type:  domain.CategoryType(m.Type),
		Color: m.Color,
	}, nil
}

// SaveCategory inserts a new category and returns the store-assigned id.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) (string, error) {
	return r.store.Insert(ctx, models.CollectionCategory, toModelCategory(category))
}

// FindCategoryByID retrieves a category by its id.
func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	doc, err := r.store.FindByID(ctx, models.CollectionCategory, categoryID)
	if err != nil {
		return nil, err
	}
	category, err := toDomainCategory(*doc)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// ListCategories retrieves every category.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	docs, err := r.store.FindAll(ctx, models.CollectionCategory)
	if err != nil {
		return nil, err
	}
	categories := make([]domain.Category, 0, len(docs))
	for _, doc := range docs {
		category, err := toDomainCategory(doc)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, nil
}
