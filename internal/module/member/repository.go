package member

import (
	"context"
	"net/url"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jakpabi/churchbase/internal/domain"
	"github.com/jakpabi/churchbase/internal/repository"
)

// uniqueFields are probed before every member write.
var uniqueFields = []string{"phone_number", "email"}

// MemberRepository defines the data access the member service needs.
type MemberRepository interface {
	Create(ctx context.Context, data domain.Payload) (*domain.Member, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Member, error)
	Update(ctx context.Context, id uuid.UUID, data domain.Payload) (*domain.Member, error)
	Delete(ctx context.Context, id uuid.UUID, soft bool) error
	Reactivate(ctx context.Context, id uuid.UUID) (*domain.Member, error)
	BulkHardDelete(ctx context.Context, ids []uuid.UUID) (int64, error)
	List(ctx context.Context, params url.Values) (*domain.ListResult, error)
	ListTransactions(ctx context.Context, memberID uuid.UUID, params url.Values) (*domain.ListResult, error)
}

type memberRepository struct {
	members *repository.Repository[domain.Member]
}

// NewRepository creates a MemberRepository backed by the shared engine.
func NewRepository(db *gorm.DB) (MemberRepository, error) {
	members, err := repository.New[domain.Member](db, nil)
	if err != nil {
		return nil, err
	}
	return &memberRepository{members: members}, nil
}

func (r *memberRepository) Create(ctx context.Context, data domain.Payload) (*domain.Member, error) {
	return r.members.Create(ctx, data, uniqueFields...)
}

func (r *memberRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Member, error) {
	return r.members.GetByID(ctx, id, false)
}

func (r *memberRepository) Update(ctx context.Context, id uuid.UUID, data domain.Payload) (*domain.Member, error) {
	return r.members.Update(ctx, id, data, uniqueFields...)
}

func (r *memberRepository) Delete(ctx context.Context, id uuid.UUID, soft bool) error {
	return r.members.Delete(ctx, id, soft)
}

func (r *memberRepository) Reactivate(ctx context.Context, id uuid.UUID) (*domain.Member, error) {
	return r.members.Reactivate(ctx, id)
}

func (r *memberRepository) BulkHardDelete(ctx context.Context, ids []uuid.UUID) (int64, error) {
	return r.members.BulkHardDelete(ctx, ids)
}

func (r *memberRepository) List(ctx context.Context, params url.Values) (*domain.ListResult, error) {
	return r.members.SpecialRead(ctx, params, repository.SpecialReadOptions{})
}

func (r *memberRepository) ListTransactions(ctx context.Context, memberID uuid.UUID, params url.Values) (*domain.ListResult, error) {
	return r.members.SpecialRead(ctx, params, repository.SpecialReadOptions{
		RelatedName: "transactions",
		ResourceID:  memberID,
	})
}
