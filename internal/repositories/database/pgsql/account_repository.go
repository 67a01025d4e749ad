package pgsql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/fintrackhq/finance_tracker_app/internal/core/ports/repositories"
	"github.com/fintrackhq/finance_tracker_app/internal/models"
)

// PgxAccountRepository provides typed access to the account collection.
type PgxAccountRepository struct {
	store *PgxDocumentStore
}

func newPgxAccountRepository(store *PgxDocumentStore) portsrepo.AccountRepository {
	return &PgxAccountRepository{store: store}
}

var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

// Helper to convert domain.Account to models.Account for storage.
func toModelAccount(d domain.Account) models.Account {
	return models.Account{
		Name:           d.Name,
		Type:           string(d.Type),
		InitialBalance: d.InitialBalance,
		Color:          d.Color,
	}
}

// Helper to convert a stored document into a domain.Account.
func toDomainAccount(doc models.Document) (domain.Account, error) {
	var m models.Account
	if err := json.Unmarshal(doc.Payload, &m); err != nil {
		return domain.Account{}, fmt.Errorf("failed to decode account %s: %w", doc.DocID, err)
	}
	return domain.Account{
		RecordMeta: domain.RecordMeta{
			ID:        doc.DocID,
			CreatedAt: doc.CreatedAt,
		},
		Name:           m.Name,
		Type:           domain.AccountType(m.Type),
		InitialBalance: m.InitialBalance,
		Color:          m.Color,
	}, nil
}

// SaveAccount inserts a new account and returns the store-assigned id.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) (string, error) {
	return r.store.Insert(ctx, models.CollectionAccount, toModelAccount(account))
}

// FindAccountByID retrieves an account by its id.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	doc, err := r.store.FindByID(ctx, models.CollectionAccount, accountID)
	if err != nil {
		return nil, err
	}
	account, err := toDomainAccount(*doc)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// ListAccounts retrieves every account.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	docs, err := r.store.FindAll(ctx, models.CollectionAccount)
	if err != nil {
		return nil, err
	}
	accounts := make([]domain.Account, 0, len(docs))
	for _, doc := range docs {
		account, err := toDomainAccount(doc)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}
