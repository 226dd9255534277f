package transaction

import (
	"context"
	"net/url"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jakpabi/churchbase/internal/domain"
	"github.com/jakpabi/churchbase/internal/repository"
)

// TransactionRepository defines the data access the transaction service needs.
type TransactionRepository interface {
	Create(ctx context.Context, data domain.Payload) (*domain.Transaction, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	GetByReference(ctx context.Context, reference string) (*domain.Transaction, error)
	Update(ctx context.Context, id uuid.UUID, data domain.Payload) (*domain.Transaction, error)
	Delete(ctx context.Context, id uuid.UUID, soft bool) error
	Reactivate(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	BulkHardDelete(ctx context.Context, ids []uuid.UUID) (int64, error)
	List(ctx context.Context, params url.Values, memberName string) (*domain.ListResult, error)
}

type transactionRepository struct {
	transactions *repository.Repository[domain.Transaction]
}

// NewRepository creates a TransactionRepository backed by the shared engine.
func NewRepository(db *gorm.DB) (TransactionRepository, error) {
	transactions, err := repository.New[domain.Transaction](db, nil)
	if err != nil {
		return nil, err
	}
	return &transactionRepository{transactions: transactions}, nil
}

func (r *transactionRepository) Create(ctx context.Context, data domain.Payload) (*domain.Transaction, error) {
	return r.transactions.Create(ctx, data, "reference")
}

func (r *transactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	return r.transactions.GetByID(ctx, id, false)
}

func (r *transactionRepository) GetByReference(ctx context.Context, reference string) (*domain.Transaction, error) {
	return r.transactions.GetByField(ctx, "reference", reference, false)
}

func (r *transactionRepository) Update(ctx context.Context, id uuid.UUID, data domain.Payload) (*domain.Transaction, error) {
	return r.transactions.Update(ctx, id, data, "reference")
}

func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID, soft bool) error {
	return r.transactions.Delete(ctx, id, soft)
}

func (r *transactionRepository) Reactivate(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	return r.transactions.Reactivate(ctx, id)
}

func (r *transactionRepository) BulkHardDelete(ctx context.Context, ids []uuid.UUID) (int64, error) {
	return r.transactions.BulkHardDelete(ctx, ids)
}

// List serves the transaction list. A non-empty memberName joins through the
// member relation and filters on the member's full name.
func (r *transactionRepository) List(ctx context.Context, params url.Values, memberName string) (*domain.ListResult, error) {
	opts := repository.SpecialReadOptions{}
	if memberName != "" {
		opts.Joins = &repository.JoinSpec{
			Relations: []repository.RelationJoin{
				{Name: "member", Filters: map[string]any{"full_name": memberName}},
			},
		}
	}
	return r.transactions.SpecialRead(ctx, params, opts)
}
