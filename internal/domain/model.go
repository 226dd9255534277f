package domain

import (
	"time"

	"github.com/google/uuid"
)

// Model is the common base struct for all persisted entities. Every table the
// repository engine manages carries this shape: a UUID primary key generated
// by the engine at creation, creation/update timestamps, and the soft-delete
// triple. Invariant: IsDeleted implies DeletedAt != nil and IsActive == false;
// Reactivate restores the reverse.
type Model struct {
	ID          uuid.UUID  `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	CreatedDate time.Time  `gorm:"column:created_date;not null" json:"created_date"`
	UpdatedDate time.Time  `gorm:"column:updated_date;not null" json:"updated_date"`
	IsDeleted   bool       `gorm:"column:is_deleted;not null;default:false" json:"is_deleted"`
	IsActive    bool       `gorm:"column:is_active;not null;default:true" json:"is_active"`
	DeletedAt   *time.Time `gorm:"column:deleted_at" json:"deleted_at,omitempty"`
}

// PrimaryKey returns the entity identifier.
func (m Model) PrimaryKey() uuid.UUID { return m.ID }

// Entity is implemented by every record type the repository engine manages.
type Entity interface {
	PrimaryKey() uuid.UUID
}

// Payload converts a create/update request into a column/value map. Only the
// columns present in the map are written; the engine validates every key
// against the entity's field registry before it reaches a query.
type Payload interface {
	Columns() map[string]any
}

// Fields is a Payload backed by a plain column/value map, for callers that
// build payloads programmatically rather than from a request DTO.
type Fields map[string]any

// Columns implements Payload.
func (f Fields) Columns() map[string]any { return f }

// ListQuery holds the offset/limit/ordering parameters shared by all plain
// list reads.
type ListQuery struct {
	Skip           int
	Limit          int
	OrderBy        string
	OrderDirection string
}

// Window returns the effective offset and limit, applying the defaults of
// 0 and 100.
func (q ListQuery) Window() (int, int) {
	skip := q.Skip
	if skip < 0 {
		skip = 0
	}
	limit := q.Limit
	if limit <= 0 {
		limit = 100
	}
	return skip, limit
}

// ListResult is the envelope returned by dynamic list reads: the total number
// of matching rows (ignoring pagination), the number of rows in this page,
// and the rows themselves.
type ListResult struct {
	TotalCount int64            `json:"total_count"`
	PageCount  int              `json:"page_count"`
	Data       []map[string]any `json:"data"`
}
