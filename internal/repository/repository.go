// Package repository implements the shared generic data-access engine the
// domain modules are built on. A Repository[T] is bound at construction to
// the entity's field and relation registry (see Descriptor); every dynamic
// field name from callers is validated against the registry before it
// reaches a query, so identifiers in SQL only ever come from the registry
// and values only travel through bound placeholders.
package repository

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jakpabi/churchbase/internal/domain"
)

// Repository is the generic data-access engine for one entity type.
//
// Reads exclude soft-deleted rows by default; IncludeDeleted derives a view
// that includes them. Mutations run inside a transaction per call. The engine
// holds no state across calls and is safe for concurrent use.
type Repository[T domain.Entity] struct {
	db             *gorm.DB
	desc           *Descriptor
	log            *slog.Logger
	includeDeleted bool
}

// New builds a Repository for T, parsing the entity's registry on first use.
func New[T domain.Entity](db *gorm.DB, log *slog.Logger) (*Repository[T], error) {
	desc, err := descriptorFor[T]()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}
	return &Repository[T]{db: db, desc: desc, log: log}, nil
}

// MustNew is New for wiring paths where a registry failure is a programming
// error.
func MustNew[T domain.Entity](db *gorm.DB, log *slog.Logger) *Repository[T] {
	r, err := New[T](db, log)
	if err != nil {
		panic(err)
	}
	return r
}

// Descriptor exposes the entity's field and relation registry.
func (r *Repository[T]) Descriptor() *Descriptor {
	return r.desc
}

// IncludeDeleted returns a view of the repository whose reads include
// soft-deleted rows.
func (r *Repository[T]) IncludeDeleted() *Repository[T] {
	view := *r
	view.includeDeleted = true
	return &view
}

// scope starts a query against the entity's table with the default
// soft-delete filter applied.
func (r *Repository[T]) scope(ctx context.Context) *gorm.DB {
	tx := r.db.WithContext(ctx).Table(r.desc.Table)
	if !r.includeDeleted {
		tx = tx.Where(r.desc.Table+".is_deleted = ?", false)
	}
	return tx
}

// anyScope starts a query that always includes soft-deleted rows. Delete and
// Reactivate operate on them regardless of the repository view.
func (r *Repository[T]) anyScope(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table(r.desc.Table)
}

// requireColumn validates a caller-supplied field name against the registry.
func (r *Repository[T]) requireColumn(field string) error {
	if !r.desc.HasColumn(field) {
		return domain.NewAppError(domain.CodeInvalidField,
			fmt.Sprintf("unknown field %q for %s", field, r.desc.Name), nil)
	}
	return nil
}

// orderClause resolves the list ordering, defaulting to created_date
// descending. The order field is validated against the registry.
func (r *Repository[T]) orderClause(q domain.ListQuery) (clause.OrderByColumn, error) {
	col := q.OrderBy
	if col == "" {
		return clause.OrderByColumn{
			Column: clause.Column{Table: r.desc.Table, Name: "created_date"},
			Desc:   true,
		}, nil
	}
	if err := r.requireColumn(col); err != nil {
		return clause.OrderByColumn{}, err
	}
	return clause.OrderByColumn{
		Column: clause.Column{Table: r.desc.Table, Name: col},
		Desc:   q.OrderDirection == "desc",
	}, nil
}
