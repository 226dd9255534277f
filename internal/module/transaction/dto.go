package transaction

import (
	"github.com/google/uuid"

	"github.com/jakpabi/churchbase/internal/domain"
)

// CreateTransactionRequest represents the input for recording a transaction.
type CreateTransactionRequest struct {
	Reference   string    `json:"reference" binding:"required,max=64"`
	Kind        string    `json:"kind" binding:"required,oneof=tithe offering pledge donation"`
	Currency    *string   `json:"currency" binding:"omitempty,len=3"`
	AmountCents int64     `json:"amount_cents" binding:"required,gt=0"`
	MemberID    uuid.UUID `json:"member_id" binding:"required"`
}

// Columns implements domain.Payload.
func (r *CreateTransactionRequest) Columns() map[string]any {
	cols := map[string]any{
		"reference":    r.Reference,
		"kind":         r.Kind,
		"amount_cents": r.AmountCents,
		"member_id":    r.MemberID,
	}
	if r.Currency != nil {
		cols["currency"] = *r.Currency
	}
	return cols
}

// UpdateTransactionRequest represents a partial update of a transaction.
// The reference and member attribution are fixed at creation.
type UpdateTransactionRequest struct {
	Kind        *string `json:"kind" binding:"omitempty,oneof=tithe offering pledge donation"`
	Currency    *string `json:"currency" binding:"omitempty,len=3"`
	AmountCents *int64  `json:"amount_cents" binding:"omitempty,gt=0"`
}

// Columns implements domain.Payload.
func (r *UpdateTransactionRequest) Columns() map[string]any {
	cols := map[string]any{}
	if r.Kind != nil {
		cols["kind"] = *r.Kind
	}
	if r.Currency != nil {
		cols["currency"] = *r.Currency
	}
	if r.AmountCents != nil {
		cols["amount_cents"] = *r.AmountCents
	}
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

var _ domain.Payload = (*CreateTransactionRequest)(nil)
var _ domain.Payload = (*UpdateTransactionRequest)(nil)
