package pgsql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/fintrackhq/finance_tracker_app/internal/core/ports/repositories"
	"github.com/fintrackhq/finance_tracker_app/internal/models"
)

// PgxBudgetRepository provides typed access to the budget collection.
type PgxBudgetRepository struct {
	store *PgxDocumentStore
}

func newPgxBudgetRepository(store *PgxDocumentStore) portsrepo.BudgetRepository {
	return &PgxBudgetRepository{store: store}
}

var _ portsrepo.BudgetRepository = (*PgxBudgetRepository)(nil)

func toModelBudget(d domain.Budget) models.Budget {
	return models.Budget{
		CategoryID: d.CategoryID,
		Month:      d.Month,
		Amount:     d.Amount,
	}
}

func toDomainBudget(doc models.Document) (domain.Budget, error) {
	var m models.Budget
	if err := json.Unmarshal(doc.Payload, &m); err != nil {
		return domain.Budget{}, fmt.Errorf("failed to decode budget %s: %w", doc.DocID, err)
	}
	return domain.Budget{
		RecordMeta: domain.RecordMeta{
			ID:        doc.DocID,
			CreatedAt: doc.CreatedAt,
		},
		CategoryID: m.CategoryID,
		Month:      m.Month,
		Amount:     m.Amount,
	}, nil
}

// SaveBudget inserts a new budget and returns the store-assigned id.
func (r *PgxBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) (string, error) {
	return r.store.Insert(ctx, models.CollectionBudget, toModelBudget(budget))
}

// ListBudgets retrieves every budget.
func (r *PgxBudgetRepository) ListBudgets(ctx context.Context) ([]domain.Budget, error) {
	docs, err := r.store.FindAll(ctx, models.CollectionBudget)
	if err != nil {
		return nil, err
	}
	budgets := make([]domain.Budget, 0, len(docs))
	for _, doc := range docs {
		budget, err := toDomainBudget(doc)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, budget)
	}
	return budgets, nil
}
