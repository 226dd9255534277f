package group

import (
	"context"
	"net/url"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jakpabi/churchbase/internal/domain"
	"github.com/jakpabi/churchbase/internal/repository"
)

// GroupRepository defines the data access the group service needs.
type GroupRepository interface {
	Create(ctx context.Context, data domain.Payload) (*domain.Group, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Group, error)
	Update(ctx context.Context, id uuid.UUID, data domain.Payload) (*domain.Group, error)
	Delete(ctx context.Context, id uuid.UUID, soft bool) error
	Reactivate(ctx context.Context, id uuid.UUID) (*domain.Group, error)
	BulkHardDelete(ctx context.Context, ids []uuid.UUID) (int64, error)
	List(ctx context.Context, params url.Values) (*domain.ListResult, error)
	ListMembers(ctx context.Context, groupID uuid.UUID, params url.Values) (*domain.ListResult, error)
	AddMembers(ctx context.Context, groupID uuid.UUID, memberIDs []string) ([]domain.Member, error)
}

type groupRepository struct {
	db      *gorm.DB
	groups  *repository.Repository[domain.Group]
	members *repository.Repository[domain.Member]
}

// NewRepository creates a GroupRepository backed by the shared engine.
func NewRepository(db *gorm.DB) (GroupRepository, error) {
	groups, err := repository.New[domain.Group](db, nil)
	if err != nil {
		return nil, err
	}
	members, err := repository.New[domain.Member](db, nil)
	if err != nil {
		return nil, err
	}
	return &groupRepository{db: db, groups: groups, members: members}, nil
}

func (r *groupRepository) Create(ctx context.Context, data domain.Payload) (*domain.Group, error) {
	return r.groups.Create(ctx, data, "name")
}

func (r *groupRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Group, error) {
	return r.groups.GetByID(ctx, id, false)
}

func (r *groupRepository) Update(ctx context.Context, id uuid.UUID, data domain.Payload) (*domain.Group, error) {
	return r.groups.Update(ctx, id, data, "name")
}

func (r *groupRepository) Delete(ctx context.Context, id uuid.UUID, soft bool) error {
	return r.groups.Delete(ctx, id, soft)
}

func (r *groupRepository) Reactivate(ctx context.Context, id uuid.UUID) (*domain.Group, error) {
	return r.groups.Reactivate(ctx, id)
}

func (r *groupRepository) BulkHardDelete(ctx context.Context, ids []uuid.UUID) (int64, error) {
	return r.groups.BulkHardDelete(ctx, ids)
}

func (r *groupRepository) List(ctx context.Context, params url.Values) (*domain.ListResult, error) {
	return r.groups.SpecialRead(ctx, params, repository.SpecialReadOptions{})
}

func (r *groupRepository) ListMembers(ctx context.Context, groupID uuid.UUID, params url.Values) (*domain.ListResult, error) {
	return r.groups.SpecialRead(ctx, params, repository.SpecialReadOptions{
		RelatedName: "members",
		ResourceID:  groupID,
	})
}

// AddMembers attaches the given members to the group. Every id must resolve
// to an existing member; re-attaching an existing member is a no-op.
func (r *groupRepository) AddMembers(ctx context.Context, groupID uuid.UUID, memberIDs []string) ([]domain.Member, error) {
	grp, err := r.groups.GetByID(ctx, groupID, false)
	if err != nil {
		return nil, err
	}
	if grp == nil {
		return nil, domain.NewAppError(domain.CodeNotFound, "group not found", nil)
	}
	members, err := r.members.GetManyByIDs(ctx, memberIDs, false)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(grp).Association("Members").Append(members); err != nil {
		return nil, domain.NewAppError(domain.CodeInternal, "failed to add members to group", err)
	}
	return members, nil
}
