package member

import (
	"time"

	"github.com/google/uuid"

	"github.com/jakpabi/churchbase/internal/domain"
)

// CreateMemberRequest represents the input for creating a member.
type CreateMemberRequest struct {
	FullName       string     `json:"full_name" binding:"required,max=255"`
	PhoneNumber    *string    `json:"phone_number" binding:"omitempty,min=3,max=32"`
	Email          *string    `json:"email" binding:"omitempty,email,max=255"`
	PictureURL     *string    `json:"picture_url" binding:"omitempty,url,max=512"`
	JoinedDate     *time.Time `json:"joined_date"`
	ApprovalStatus *string    `json:"approval_status" binding:"omitempty,oneof=pending approved rejected"`
}

// Columns implements domain.Payload. Only the columns the request actually
// carries are written.
func (r *CreateMemberRequest) Columns() map[string]any {
	cols := map[string]any{"full_name": r.FullName}
	putOptional(cols, "phone_number", r.PhoneNumber)
	putOptional(cols, "email", r.Email)
	putOptional(cols, "picture_url", r.PictureURL)
	if r.JoinedDate != nil {
		cols["joined_date"] = *r.JoinedDate
	}
	putOptional(cols, "approval_status", r.ApprovalStatus)
	return cols
}

// UpdateMemberRequest represents a partial update of a member. Absent fields
// are left untouched.
type UpdateMemberRequest struct {
	FullName       *string    `json:"full_name" binding:"omitempty,max=255"`
	PhoneNumber    *string    `json:"phone_number" binding:"omitempty,min=3,max=32"`
	Email          *string    `json:"email" binding:"omitempty,email,max=255"`
	PictureURL     *string    `json:"picture_url" binding:"omitempty,url,max=512"`
	JoinedDate     *time.Time `json:"joined_date"`
	ApprovalStatus *string    `json:"approval_status" binding:"omitempty,oneof=pending approved rejected"`
}

// Columns implements domain.Payload.
func (r *UpdateMemberRequest) Columns() map[string]any {
	cols := map[string]any{}
	putOptional(cols, "full_name", r.FullName)
	putOptional(cols, "phone_number", r.PhoneNumber)
	putOptional(cols, "email", r.Email)
	putOptional(cols, "picture_url", r.PictureURL)
	if r.JoinedDate != nil {
		cols["joined_date"] = *r.JoinedDate
	}
	putOptional(cols, "approval_status", r.ApprovalStatus)
	return cols
}

// BulkDeleteRequest carries the ids for a bulk hard delete.
type BulkDeleteRequest struct {
	IDs []uuid.UUID `json:"ids" binding:"required,min=1"`
}

// BulkDeleteResponse reports how many rows a bulk delete removed.
type BulkDeleteResponse struct {
	Deleted int64 `json:"deleted"`
}

func putOptional(cols map[string]any, key string, value *string) {
	if value != nil {
		cols[key] = *value
	}
}

var _ domain.Payload = (*CreateMemberRequest)(nil)
var _ domain.Payload = (*UpdateMemberRequest)(nil)
