package pgsql

import (
	portsrepo "github.com/fintrackhq/finance_tracker_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryContainer bundles all repositories built over one pool.
type RepositoryContainer struct {
	Account     portsrepo.AccountRepository
	Category    portsrepo.CategoryRepository
	Transaction portsrepo.TransactionRepository
	Budget      portsrepo.BudgetRepository
	Store       *PgxDocumentStore
}

// NewRepositoryContainer wires the document store gateway and the typed
// repositories on top of it.
func NewRepositoryContainer(pool *pgxpool.Pool) *RepositoryContainer {
	store := NewPgxDocumentStore(pool)
	return &RepositoryContainer{
		Account:     newPgxAccountRepository(store),
		Category:    newPgxCategoryRepository(store),
		Transaction: newPgxTransactionRepository(store),
		Budget:      newPgxBudgetRepository(store),
		Store:       store,
	}
}
