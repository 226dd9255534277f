package transaction

import (
	"context"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/jakpabi/churchbase/internal/domain"
)

// Service defines the transaction operations.
type Service interface {
	Create(ctx context.Context, req *CreateTransactionRequest) (*domain.Transaction, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	GetByReference(ctx context.Context, reference string) (*domain.Transaction, error)
	List(ctx context.Context, params url.Values, memberName string) (*domain.ListResult, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateTransactionRequest) (*domain.Transaction, error)
	Delete(ctx context.Context, id uuid.UUID, hard bool) error
	Reactivate(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	BulkDelete(ctx context.Context, ids []uuid.UUID) (int64, error)
}

type transactionService struct {
	repo TransactionRepository
}

// NewService creates a new transaction Service.
func NewService(repo TransactionRepository) Service {
	return &transactionService{repo: repo}
}

func (s *transactionService) Create(ctx context.Context, req *CreateTransactionRequest) (*domain.Transaction, error) {
	req.Reference = strings.TrimSpace(req.Reference)
	if req.Reference == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "reference is required", nil)
	}
	if req.MemberID == uuid.Nil {
		return nil, domain.NewAppError(domain.CodeValidation, "member_id is required", nil)
	}
	return s.repo.Create(ctx, req)
}

func (s *transactionService) Get(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *transactionService) GetByReference(ctx context.Context, reference string) (*domain.Transaction, error) {
	return s.repo.GetByReference(ctx, reference)
}

func (s *transactionService) List(ctx context.Context, params url.Values, memberName string) (*domain.ListResult, error) {
	return s.repo.List(ctx, params, memberName)
}

func (s *transactionService) Update(ctx context.Context, id uuid.UUID, req *UpdateTransactionRequest) (*domain.Transaction, error) {
	return s.repo.Update(ctx, id, req)
}

func (s *transactionService) Delete(ctx context.Context, id uuid.UUID, hard bool) error {
	return s.repo.Delete(ctx, id, !hard)
}

func (s *transactionService) Reactivate(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	return s.repo.Reactivate(ctx, id)
}

func (s *transactionService) BulkDelete(ctx context.Context, ids []uuid.UUID) (int64, error) {
	return s.repo.BulkHardDelete(ctx, ids)
}
