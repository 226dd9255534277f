package group

import (
	"context"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/jakpabi/churchbase/internal/domain"
)

// Service defines the group operations.
type Service interface {
	Create(ctx context.Context, req *CreateGroupRequest) (*domain.Group, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Group, error)
	List(ctx context.Context, params url.Values) (*domain.ListResult, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateGroupRequest) (*domain.Group, error)
	Delete(ctx context.Context, id uuid.UUID, hard bool) error
	Reactivate(ctx context.Context, id uuid.UUID) (*domain.Group, error)
	BulkDelete(ctx context.Context, ids []uuid.UUID) (int64, error)
	Members(ctx context.Context, groupID uuid.UUID, params url.Values) (*domain.ListResult, error)
	AddMembers(ctx context.Context, groupID uuid.UUID, req *AddMembersRequest) ([]domain.Member, error)
}

type groupService struct {
	repo GroupRepository
}

// NewService creates a new group Service.
func NewService(repo GroupRepository) Service {
	return &groupService{repo: repo}
}

func (s *groupService) Create(ctx context.Context, req *CreateGroupRequest) (*domain.Group, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "name is required", nil)
	}
	return s.repo.Create(ctx, req)
}

func (s *groupService) Get(ctx context.Context, id uuid.UUID) (*domain.Group, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *groupService) List(ctx context.Context, params url.Values) (*domain.ListResult, error) {
	return s.repo.List(ctx, params)
}

func (s *groupService) Update(ctx context.Context, id uuid.UUID, req *UpdateGroupRequest) (*domain.Group, error) {
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		if trimmed == "" {
			return nil, domain.NewAppError(domain.CodeValidation, "name must not be blank", nil)
		}
		req.Name = &trimmed
	}
	return s.repo.Update(ctx, id, req)
}

func (s *groupService) Delete(ctx context.Context, id uuid.UUID, hard bool) error {
	return s.repo.Delete(ctx, id, !hard)
}

func (s *groupService) Reactivate(ctx context.Context, id uuid.UUID) (*domain.Group, error) {
	return s.repo.Reactivate(ctx, id)
}

func (s *groupService) BulkDelete(ctx context.Context, ids []uuid.UUID) (int64, error) {
	return s.repo.BulkHardDelete(ctx, ids)
}

func (s *groupService) Members(ctx context.Context, groupID uuid.UUID, params url.Values) (*domain.ListResult, error) {
	return s.repo.ListMembers(ctx, groupID, params)
}

func (s *groupService) AddMembers(ctx context.Context, groupID uuid.UUID, req *AddMembersRequest) ([]domain.Member, error) {
	return s.repo.AddMembers(ctx, groupID, req.MemberIDs)
}
