package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jakpabi/churchbase/internal/domain"
)

// GetByID fetches one entity by primary key. A zero id short-circuits to
// (nil, nil) without touching the database. With silent set, an absent row
// also yields (nil, nil) instead of NotFound.
func (r *Repository[T]) GetByID(ctx context.Context, id uuid.UUID, silent bool) (*T, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	return r.getOne(ctx, "id", id, silent)
}

// GetByField fetches one entity by an arbitrary registered column. A nil
// value short-circuits to (nil, nil).
func (r *Repository[T]) GetByField(ctx context.Context, field string, value any, silent bool) (*T, error) {
	if err := r.requireColumn(field); err != nil {
		return nil, err
	}
	if value == nil {
		return nil, nil
	}
	return r.getOne(ctx, field, value, silent)
}

func (r *Repository[T]) getOne(ctx context.Context, field string, value any, silent bool) (*T, error) {
	var entity T
	err := r.scope(ctx).Where(r.desc.Table+"."+field+" = ?", value).First(&entity).Error
	if err != nil {
		if silent && errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, mapError(r.desc.Name, err)
	}
	return &entity, nil
}

// GetManyByIDs fetches the entities for the given id strings. Malformed ids
// fail InvalidArgument. With silent unset, any id that resolved to no row
// fails InvalidArgument naming the missing ids; with silent set the found
// subset is returned.
func (r *Repository[T]) GetManyByIDs(ctx context.Context, ids []string, silent bool) ([]T, error) {
	if len(ids) == 0 {
		return []T{}, nil
	}
	parsed := make([]uuid.UUID, 0, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, domain.NewAppError(domain.CodeInvalidArgument,
				fmt.Sprintf("invalid %s id %q", r.desc.Name, raw), err)
		}
		parsed = append(parsed, id)
	}

	var entities []T
	if err := r.scope(ctx).Where(r.desc.Table+".id IN ?", parsed).Find(&entities).Error; err != nil {
		return nil, mapError(r.desc.Name, err)
	}
	if !silent && len(entities) < len(parsed) {
		found := make(map[uuid.UUID]struct{}, len(entities))
		for _, e := range entities {
			found[e.PrimaryKey()] = struct{}{}
		}
		var missing []string
		for _, id := range parsed {
			if _, ok := found[id]; !ok {
				missing = append(missing, id.String())
			}
		}
		return nil, domain.NewAppError(domain.CodeInvalidArgument,
			fmt.Sprintf("%s ids not found: %s", r.desc.Name, strings.Join(missing, ", ")), nil)
	}
	return entities, nil
}

// GetAll lists entities with the given pagination and ordering. Storage
// failures propagate as Internal.
func (r *Repository[T]) GetAll(ctx context.Context, q domain.ListQuery) ([]T, error) {
	return r.list(ctx, r.scope(ctx), q)
}

// GetByFilters lists entities matching all given column equalities. Nil
// filter values are skipped; unknown columns fail InvalidField.
func (r *Repository[T]) GetByFilters(ctx context.Context, filters map[string]any, q domain.ListQuery) ([]T, error) {
	tx := r.scope(ctx)
	for _, field := range sortedKeys(filters) {
		if err := r.requireColumn(field); err != nil {
			return nil, err
		}
		if filters[field] == nil {
			continue
		}
		tx = tx.Where(r.desc.Table+"."+field+" = ?", filters[field])
	}
	return r.list(ctx, tx, q)
}

// GetByPattern lists entities whose columns contain the given patterns,
// case-insensitively. A list of patterns for one column is OR-combined;
// empty patterns are skipped.
func (r *Repository[T]) GetByPattern(ctx context.Context, patterns map[string]any, q domain.ListQuery) ([]T, error) {
	tx := r.scope(ctx)
	for _, field := range sortedKeys(patterns) {
		if err := r.requireColumn(field); err != nil {
			return nil, err
		}
		terms := patternTerms(patterns[field])
		if len(terms) == 0 {
			continue
		}
		group := r.db.Session(&gorm.Session{NewDB: true})
		for i, term := range terms {
			cond := "LOWER(" + r.desc.Table + "." + field + ") LIKE ?"
			arg := "%" + strings.ToLower(term) + "%"
			if i == 0 {
				group = group.Where(cond, arg)
			} else {
				group = group.Or(cond, arg)
			}
		}
		tx = tx.Where(group)
	}
	return r.list(ctx, tx, q)
}

func (r *Repository[T]) list(ctx context.Context, tx *gorm.DB, q domain.ListQuery) ([]T, error) {
	order, err := r.orderClause(q)
	if err != nil {
		return nil, err
	}
	skip, limit := q.Window()
	var entities []T
	if err := tx.Order(order).Offset(skip).Limit(limit).Find(&entities).Error; err != nil {
		return nil, mapError(r.desc.Name, err)
	}
	return entities, nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// patternTerms normalizes a pattern value to its non-empty string terms.
func patternTerms(v any) []string {
	var raw []string
	switch val := v.(type) {
	case nil:
		return nil
	case string:
		raw = []string{val}
	case []string:
		raw = val
	case []any:
		for _, item := range val {
			raw = append(raw, fmt.Sprint(item))
		}
	default:
		raw = []string{fmt.Sprint(val)}
	}
	terms := make([]string, 0, len(raw))
	for _, s := range raw {
		if strings.TrimSpace(s) != "" {
			terms = append(terms, s)
		}
	}
	return terms
}
