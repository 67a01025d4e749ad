package pgsql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fintrackhq/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/fintrackhq/finance_tracker_app/internal/core/ports/repositories"
	"github.com/fintrackhq/finance_tracker_app/internal/models"
)

// PgxTransactionRepository provides typed access to the transaction collection.
type PgxTransactionRepository struct {
	store *PgxDocumentStore
}

func newPgxTransactionRepository(store *PgxDocumentStore) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{store: store}
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

func toModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		Date:       d.Date.Format(domain.DateLayout),
		Amount:     d.Amount,
		Type:       string(d.Type),
		CategoryID: d.CategoryID,
		AccountID:  d.AccountID,
		Note:       d.Note,
	}
}

func toDomainTransaction(doc models.Document) (domain.Transaction, error) {
	var m models.Transaction
	if err := json.Unmarshal(doc.Payload, &m); err != nil {
		return domain.Transaction{}, fmt.Errorf("failed to decode transaction %s: %w", doc.DocID, err)
	}
	date, err := time.Parse(domain.DateLayout, m.Date)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("failed to parse date of transaction %s: %w", doc.DocID, err)
	}
	return domain.Transaction{
		RecordMeta: domain.RecordMeta{
			ID:        doc.DocID,
			CreatedAt: doc.CreatedAt,
		},
		Date:       date,
		Amount:     m.Amount,
		Type:       domain.TransactionType(m.Type),
		CategoryID: m.CategoryID,
		AccountID:  m.AccountID,
		Note:       m.Note,
	}, nil
}

// SaveTransaction inserts a new transaction and returns the store-assigned id.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, transaction domain.Transaction) (string, error) {
	return r.store.Insert(ctx, models.CollectionTransaction, toModelTransaction(transaction))
}

// ListTransactions retrieves every transaction.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	docs, err := r.store.FindAll(ctx, models.CollectionTransaction)
	if err != nil {
		return nil, err
	}
	transactions := make([]domain.Transaction, 0, len(docs))
	for _, doc := range docs {
		transaction, err := toDomainTransaction(doc)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}
	return transactions, nil
}
