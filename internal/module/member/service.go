package member

import (
	"context"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/jakpabi/churchbase/internal/domain"
)

// Service defines the member operations.
type Service interface {
	Create(ctx context.Context, req *CreateMemberRequest) (*domain.Member, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Member, error)
	List(ctx context.Context, params url.Values) (*domain.ListResult, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateMemberRequest) (*domain.Member, error)
	Delete(ctx context.Context, id uuid.UUID, hard bool) error
	Reactivate(ctx context.Context, id uuid.UUID) (*domain.Member, error)
	BulkDelete(ctx context.Context, ids []uuid.UUID) (int64, error)
	Transactions(ctx context.Context, memberID uuid.UUID, params url.Values) (*domain.ListResult, error)
}

type memberService struct {
	repo MemberRepository
}

// NewService creates a new member Service.
func NewService(repo MemberRepository) Service {
	return &memberService{repo: repo}
}

func (s *memberService) Create(ctx context.Context, req *CreateMemberRequest) (*domain.Member, error) {
	req.FullName = strings.TrimSpace(req.FullName)
	if req.FullName == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "full_name is required", nil)
	}
	return s.repo.Create(ctx, req)
}

func (s *memberService) Get(ctx context.Context, id uuid.UUID) (*domain.Member, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *memberService) List(ctx context.Context, params url.Values) (*domain.ListResult, error) {
	return s.repo.List(ctx, params)
}

func (s *memberService) Update(ctx context.Context, id uuid.UUID, req *UpdateMemberRequest) (*domain.Member, error) {
	if req.FullName != nil {
		trimmed := strings.TrimSpace(*req.FullName)
		if trimmed == "" {
			return nil, domain.NewAppError(domain.CodeValidation, "full_name must not be blank", nil)
		}
		req.FullName = &trimmed
	}
	return s.repo.Update(ctx, id, req)
}

func (s *memberService) Delete(ctx context.Context, id uuid.UUID, hard bool) error {
	return s.repo.Delete(ctx, id, !hard)
}

func (s *memberService) Reactivate(ctx context.Context, id uuid.UUID) (*domain.Member, error) {
	return s.repo.Reactivate(ctx, id)
}

func (s *memberService) BulkDelete(ctx context.Context, ids []uuid.UUID) (int64, error) {
	return s.repo.BulkHardDelete(ctx, ids)
}

func (s *memberService) Transactions(ctx context.Context, memberID uuid.UUID, params url.Values) (*domain.ListResult, error) {
	return s.repo.ListTransactions(ctx, memberID, params)
}
