package repository

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"

	"github.com/jakpabi/churchbase/internal/domain"
)

// Query params the dynamic read path interprets itself. Anything else is
// either a column equality filter or ignored.
var reservedParams = map[string]struct{}{
	"offset": {},
	"limit":  {},
	"fields": {},
	"q":      {},
	"sort":   {},
}

// RelationJoin names a declared relation to inner-join, with equality
// filters on the joined table.
type RelationJoin struct {
	Name    string
	Filters map[string]any
}

// JoinSpec carries static, handler-declared filtering for SpecialRead:
// equality filters on the base entity plus joins through named relations.
type JoinSpec struct {
	Filters   map[string]any
	Relations []RelationJoin
}

// SpecialReadOptions steers a SpecialRead beyond the raw query params.
// RelatedName/ResourceID retarget the read at a related collection and are
// mutually exclusive with Joins.
type SpecialReadOptions struct {
	RelatedName    string
	ResourceID     uuid.UUID
	Joins          *JoinSpec
	OrderBy        string
	OrderDirection string
}

// SpecialRead serves the dynamic list endpoints. It interprets the reserved
// params (offset, limit, fields, q, sort), turns any other param naming a
// real column of the target into an equality filter, and ignores unknown
// keys entirely so they can never reach SQL. Returns the matching page plus
// a total count that ignores ordering and pagination.
func (r *Repository[T]) SpecialRead(ctx context.Context, params url.Values, opts SpecialReadOptions) (*domain.ListResult, error) {
	if opts.RelatedName != "" && opts.Joins != nil {
		return nil, domain.NewAppError(domain.CodeInvalidArgument,
			"related reads cannot be combined with join filters", nil)
	}

	target := r.desc
	var conds []func(*gorm.DB) *gorm.DB
	joined := false

	if opts.RelatedName != "" {
		rel, ok := r.desc.Relation(opts.RelatedName)
		if !ok {
			return nil, domain.NewAppError(domain.CodeInvalidField,
				fmt.Sprintf("unknown relation %q for %s", opts.RelatedName, r.desc.Name), nil)
		}
		if opts.ResourceID == uuid.Nil {
			return nil, domain.NewAppError(domain.CodeInvalidArgument,
				"missing "+r.desc.Name+" id for related read", nil)
		}
		target = rel.Target
		cond, isJoin := r.relatedScope(rel, opts.ResourceID)
		conds = append(conds, cond)
		joined = joined || isJoin
	}

	if opts.Joins != nil {
		joinConds, err := r.joinScope(opts.Joins)
		if err != nil {
			return nil, err
		}
		conds = append(conds, joinConds...)
		joined = joined || len(opts.Joins.Relations) > 0
	}

	paramConds, err := paramFilters(target, params)
	if err != nil {
		return nil, err
	}
	conds = append(conds, paramConds...)

	if q := strings.TrimSpace(params.Get("q")); q != "" {
		conds = append(conds, r.searchConds(target, q)...)
	}

	selectCols, err := projection(target, params.Get("fields"))
	if err != nil {
		return nil, err
	}
	orders, err := ordering(target, params, opts)
	if err != nil {
		return nil, err
	}
	offset, limit, err := window(params)
	if err != nil {
		return nil, err
	}

	base := func() *gorm.DB {
		tx := r.db.WithContext(ctx).Table(target.Table)
		if !r.includeDeleted {
			tx = tx.Where(target.Table+".is_deleted = ?", false)
		}
		for _, cond := range conds {
			tx = cond(tx)
		}
		return tx
	}

	var total int64
	if err := base().Distinct(target.Table + ".id").Count(&total).Error; err != nil {
		return nil, mapError(target.Name, err)
	}

	tx := base()
	if joined {
		args := make([]any, len(selectCols))
		for i, col := range selectCols {
			args[i] = col
		}
		tx = tx.Distinct(args...)
	} else {
		tx = tx.Select(selectCols)
	}
	for _, order := range orders {
		tx = tx.Order(order)
	}
	rows := []map[string]any{}
	if err := tx.Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		return nil, mapError(target.Name, err)
	}

	return &domain.ListResult{
		TotalCount: total,
		PageCount:  len(rows),
		Data:       rows,
	}, nil
}

// relatedScope constrains the target table to the rows related to the owning
// resource, deriving the join from the registry's relationship metadata.
func (r *Repository[T]) relatedScope(rel Relation, resourceID uuid.UUID) (func(*gorm.DB) *gorm.DB, bool) {
	switch rel.Kind {
	case schema.BelongsTo:
		join := "JOIN " + r.desc.Table + " ON " + r.desc.Table + "." + rel.OwnKey +
			" = " + rel.Target.Table + "." + rel.TargetKey +
			" AND " + r.desc.Table + ".id = ?"
		return func(tx *gorm.DB) *gorm.DB {
			return tx.Joins(join, resourceID)
		}, true
	case schema.Many2Many:
		join := "JOIN " + rel.JoinTable + " ON " + rel.JoinTable + "." + rel.JoinTargetKey +
			" = " + rel.Target.Table + "." + rel.TargetKey
		where := rel.JoinTable + "." + rel.JoinOwnKey + " = ?"
		return func(tx *gorm.DB) *gorm.DB {
			return tx.Joins(join).Where(where, resourceID)
		}, true
	default: // has one, has many
		where := rel.Target.Table + "." + rel.TargetKey + " = ?"
		return func(tx *gorm.DB) *gorm.DB {
			return tx.Where(where, resourceID)
		}, false
	}
}

// joinScope validates and compiles a static JoinSpec against the registries.
func (r *Repository[T]) joinScope(spec *JoinSpec) ([]func(*gorm.DB) *gorm.DB, error) {
	var conds []func(*gorm.DB) *gorm.DB

	for _, field := range sortedKeys(spec.Filters) {
		if err := r.requireColumn(field); err != nil {
			return nil, err
		}
		if spec.Filters[field] == nil {
			continue
		}
		where := r.desc.Table + "." + field + " = ?"
		value := spec.Filters[field]
		conds = append(conds, func(tx *gorm.DB) *gorm.DB {
			return tx.Where(where, value)
		})
	}

	for _, rj := range spec.Relations {
		rel, ok := r.desc.Relation(rj.Name)
		if !ok {
			return nil, domain.NewAppError(domain.CodeInvalidField,
				fmt.Sprintf("unknown relation %q for %s", rj.Name, r.desc.Name), nil)
		}
		var joins []string
		switch rel.Kind {
		case schema.BelongsTo:
			joins = []string{"JOIN " + rel.Target.Table + " ON " + r.desc.Table + "." + rel.OwnKey +
				" = " + rel.Target.Table + "." + rel.TargetKey}
		case schema.Many2Many:
			joins = []string{
				"JOIN " + rel.JoinTable + " ON " + rel.JoinTable + "." + rel.JoinOwnKey +
					" = " + r.desc.Table + "." + rel.OwnKey,
				"JOIN " + rel.Target.Table + " ON " + rel.Target.Table + "." + rel.TargetKey +
					" = " + rel.JoinTable + "." + rel.JoinTargetKey,
			}
		default: // has one, has many
			joins = []string{"JOIN " + rel.Target.Table + " ON " + rel.Target.Table + "." + rel.TargetKey +
				" = " + r.desc.Table + "." + rel.OwnKey}
		}
		conds = append(conds, func(tx *gorm.DB) *gorm.DB {
			for _, j := range joins {
				tx = tx.Joins(j)
			}
			return tx
		})

		for _, field := range sortedKeys(rj.Filters) {
			if !rel.Target.HasColumn(field) {
				return nil, domain.NewAppError(domain.CodeInvalidField,
					fmt.Sprintf("unknown field %q for %s", field, rel.Target.Name), nil)
			}
			if rj.Filters[field] == nil {
				continue
			}
			where := rel.Target.Table + "." + field + " = ?"
			value := rj.Filters[field]
			conds = append(conds, func(tx *gorm.DB) *gorm.DB {
				return tx.Where(where, value)
			})
		}
	}
	return conds, nil
}

// paramFilters turns non-reserved query params naming real columns of the
// target into equality filters. Unknown keys are ignored.
func paramFilters(target *Descriptor, params url.Values) ([]func(*gorm.DB) *gorm.DB, error) {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var conds []func(*gorm.DB) *gorm.DB
	for _, key := range keys {
		if _, reserved := reservedParams[key]; reserved {
			continue
		}
		if !target.HasColumn(key) {
			continue
		}
		raw := params.Get(key)
		var value any = raw
		if key == "id" {
			id, err := uuid.Parse(raw)
			if err != nil {
				return nil, domain.NewAppError(domain.CodeInvalidArgument,
					fmt.Sprintf("invalid %s id %q", target.Name, raw), err)
			}
			value = id
		}
		where := target.Table + "." + key + " = ?"
		conds = append(conds, func(tx *gorm.DB) *gorm.DB {
			return tx.Where(where, value)
		})
	}
	return conds, nil
}

// searchConds compiles the free-text q param. key:value tokens naming a real
// column become equality filters; bare tokens match any text column,
// case-insensitively. Tokens naming unknown columns are ignored.
func (r *Repository[T]) searchConds(target *Descriptor, q string) []func(*gorm.DB) *gorm.DB {
	var conds []func(*gorm.DB) *gorm.DB
	for _, token := range strings.Fields(q) {
		if key, value, ok := strings.Cut(token, ":"); ok && key != "" {
			if !target.HasColumn(key) {
				continue
			}
			where := target.Table + "." + key + " = ?"
			conds = append(conds, func(tx *gorm.DB) *gorm.DB {
				return tx.Where(where, value)
			})
			continue
		}
		cols := target.StringColumns()
		if len(cols) == 0 {
			continue
		}
		arg := "%" + strings.ToLower(token) + "%"
		conds = append(conds, func(tx *gorm.DB) *gorm.DB {
			group := r.db.Session(&gorm.Session{NewDB: true})
			for i, col := range cols {
				cond := "LOWER(" + target.Table + "." + col + ") LIKE ?"
				if i == 0 {
					group = group.Where(cond, arg)
				} else {
					group = group.Or(cond, arg)
				}
			}
			return tx.Where(group)
		})
	}
	return conds
}

// projection resolves the fields param to table-qualified select columns.
func projection(target *Descriptor, fields string) ([]string, error) {
	if strings.TrimSpace(fields) == "" {
		return []string{target.Table + ".*"}, nil
	}
	var cols []string
	for _, field := range strings.Split(fields, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		if !target.HasColumn(field) {
			return nil, domain.NewAppError(domain.CodeInvalidField,
				fmt.Sprintf("unknown field %q for %s", field, target.Name), nil)
		}
		cols = append(cols, target.Table+"."+field)
	}
	if len(cols) == 0 {
		return []string{target.Table + ".*"}, nil
	}
	return cols, nil
}

// ordering resolves the sort param (comma or repeat separated, "-field" for
// descending), falling back to the handler-declared order, then to
// created_date descending. Unknown sort fields fail InvalidField.
func ordering(target *Descriptor, params url.Values, opts SpecialReadOptions) ([]clause.OrderByColumn, error) {
	var tokens []string
	for _, raw := range params["sort"] {
		for _, token := range strings.Split(raw, ",") {
			if token = strings.TrimSpace(token); token != "" {
				tokens = append(tokens, token)
			}
		}
	}
	if len(tokens) > 0 {
		orders := make([]clause.OrderByColumn, 0, len(tokens))
		for _, token := range tokens {
			desc := strings.HasPrefix(token, "-")
			field := strings.TrimPrefix(token, "-")
			if !target.HasColumn(field) {
				return nil, domain.NewAppError(domain.CodeInvalidField,
					fmt.Sprintf("unknown sort field %q for %s", field, target.Name), nil)
			}
			orders = append(orders, clause.OrderByColumn{
				Column: clause.Column{Table: target.Table, Name: field},
				Desc:   desc,
			})
		}
		return orders, nil
	}

	if opts.OrderBy != "" {
		if !target.HasColumn(opts.OrderBy) {
			return nil, domain.NewAppError(domain.CodeInvalidField,
				fmt.Sprintf("unknown sort field %q for %s", opts.OrderBy, target.Name), nil)
		}
		return []clause.OrderByColumn{{
			Column: clause.Column{Table: target.Table, Name: opts.OrderBy},
			Desc:   opts.OrderDirection == "desc",
		}}, nil
	}

	return []clause.OrderByColumn{{
		Column: clause.Column{Table: target.Table, Name: "created_date"},
		Desc:   true,
	}}, nil
}

// window parses offset and limit, defaulting to 0 and 100.
func window(params url.Values) (int, int, error) {
	offset, err := intParam(params, "offset", 0)
	if err != nil {
		return 0, 0, err
	}
	limit, err := intParam(params, "limit", 100)
	if err != nil {
		return 0, 0, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = 100
	}
	return offset, limit, nil
}

func intParam(params url.Values, key string, def int) (int, error) {
	raw := strings.TrimSpace(params.Get(key))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewAppError(domain.CodeInvalidArgument,
			fmt.Sprintf("invalid %s %q", key, raw), err)
	}
	return n, nil
}
