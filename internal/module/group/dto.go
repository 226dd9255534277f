package group

import (
	"github.com/google/uuid"

	"github.com/jakpabi/churchbase/internal/domain"
)

// CreateGroupRequest represents the input for creating a group.
type CreateGroupRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Description *string `json:"description" binding:"omitempty,max=1024"`
}

// Columns implements domain.Payload.
func (r *CreateGroupRequest) Columns() map[string]any {
	cols := map[string]any{"name": r.Name}
	if r.Description != nil {
		cols["description"] = *r.Description
	}
	return cols
}

// UpdateGroupRequest represents a partial update of a group.
type UpdateGroupRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=1024"`
}

// Columns implements domain.Payload.
func (r *UpdateGroupRequest) Columns() map[string]any {
	cols := map[string]any{}
	if r.Name != nil {
		cols["name"] = *r.Name
	}
	if r.Description != nil {
		cols["description"] = *r.Description
	}
	return cols
}

// AddMembersRequest carries the member ids to attach to a group.
type AddMembersRequest struct {
	MemberIDs []string `json:"member_ids" binding:"required,min=1"`
}

// BulkDeleteRequest carries the ids for a bulk hard delete.
type BulkDeleteRequest struct {
	IDs []uuid.UUID `json:"ids" binding:"required,min=1"`
}

// BulkDeleteResponse reports how many rows a bulk delete removed.
type BulkDeleteResponse struct {
	Deleted int64 `json:"deleted"`
}

var _ domain.Payload = (*CreateGroupRequest)(nil)
var _ domain.Payload = (*UpdateGroupRequest)(nil)
