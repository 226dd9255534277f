package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jakpabi/churchbase/internal/domain"
)

// Columns the engine owns. Caller payloads never write these directly.
var immutableColumns = map[string]struct{}{
	"id":           {},
	"created_date": {},
	"updated_date": {},
	"is_deleted":   {},
	"is_active":    {},
	"deleted_at":   {},
}

// Create inserts a new entity from the payload. The id, timestamps and
// soft-delete columns are set by the engine. Candidate unique fields are
// probed inside the insert transaction before the write; a collision at
// commit time (lost race) is still translated from the store's constraint
// error. Returns the freshly read entity.
func (r *Repository[T]) Create(ctx context.Context, data domain.Payload, uniqueFields ...string) (*T, error) {
	row, err := r.writeRow(data)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	now := time.Now().UTC()
	row["id"] = id
	row["created_date"] = now
	row["updated_date"] = now
	row["is_deleted"] = false
	row["is_active"] = true

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.validateUniqueFields(tx, row, uniqueFields, uuid.Nil); err != nil {
			return err
		}
		return tx.Table(r.desc.Table).Create(row).Error
	})
	if err != nil {
		return nil, mapError(r.desc.Name, err)
	}
	return r.GetByID(ctx, id, false)
}

// Update applies the payload's present fields to the entity, refreshing
// updated_date. Unique candidates are re-validated excluding the entity's
// own row. Returns the refreshed entity.
func (r *Repository[T]) Update(ctx context.Context, id uuid.UUID, data domain.Payload, uniqueFields ...string) (*T, error) {
	if id == uuid.Nil {
		return nil, domain.NewAppError(domain.CodeInvalidArgument, "missing "+r.desc.Name+" id", nil)
	}
	row, err := r.writeRow(data)
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.requireExists(tx, id, r.includeDeleted); err != nil {
			return err
		}
		if err := r.validateUniqueFields(tx, row, uniqueFields, id); err != nil {
			return err
		}
		row["updated_date"] = time.Now().UTC()
		return tx.Table(r.desc.Table).Where("id = ?", id).Updates(row).Error
	})
	if err != nil {
		return nil, mapError(r.desc.Name, err)
	}
	return r.GetByID(ctx, id, false)
}

// Delete removes the entity. Soft deletion marks the row (is_deleted,
// is_active, deleted_at); hard deletion issues a real DELETE and surfaces
// foreign key violations as Conflict. Both operate on soft-deleted rows too.
func (r *Repository[T]) Delete(ctx context.Context, id uuid.UUID, soft bool) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.requireExists(tx, id, true); err != nil {
			return err
		}
		if soft {
			now := time.Now().UTC()
			return tx.Table(r.desc.Table).Where("id = ?", id).Updates(map[string]any{
				"is_deleted":   true,
				"is_active":    false,
				"deleted_at":   now,
				"updated_date": now,
			}).Error
		}
		return tx.Table(r.desc.Table).Where("id = ?", id).Delete(new(T)).Error
	})
	return mapError(r.desc.Name, err)
}

// BulkHardDelete removes all given rows in one DELETE and returns the number
// actually deleted. Fewer deletions than requested is logged as a warning,
// not an error. Foreign key violations fail the whole batch as Conflict.
func (r *Repository[T]) BulkHardDelete(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Table(r.desc.Table).Where("id IN ?", ids).Delete(new(T))
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, mapError(r.desc.Name, err)
	}
	if deleted < int64(len(ids)) {
		r.log.Warn("bulk delete removed fewer rows than requested",
			"entity", r.desc.Name,
			"requested", len(ids),
			"deleted", deleted)
	}
	return deleted, nil
}

// Reactivate restores a soft-deleted entity and returns it.
func (r *Repository[T]) Reactivate(ctx context.Context, id uuid.UUID) (*T, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.requireExists(tx, id, true); err != nil {
			return err
		}
		return tx.Table(r.desc.Table).Where("id = ?", id).Updates(map[string]any{
			"is_deleted":   false,
			"is_active":    true,
			"deleted_at":   nil,
			"updated_date": time.Now().UTC(),
		}).Error
	})
	if err != nil {
		return nil, mapError(r.desc.Name, err)
	}
	return r.GetByID(ctx, id, false)
}

// GetOrCreate returns the entity whose uniqueField matches the payload's
// value, creating it when absent. The lookup and insert are not atomic;
// callers rely on a real unique index on the field to close the race.
func (r *Repository[T]) GetOrCreate(ctx context.Context, data domain.Payload, uniqueField string) (*T, error) {
	if err := r.requireColumn(uniqueField); err != nil {
		return nil, err
	}
	value, ok := data.Columns()[uniqueField]
	if !ok || value == nil {
		return nil, domain.NewAppError(domain.CodeInvalidArgument,
			fmt.Sprintf("missing value for unique field %q", uniqueField), nil)
	}
	existing, err := r.GetByField(ctx, uniqueField, value, true)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	return r.Create(ctx, data, uniqueField)
}

// writeRow validates the payload against the registry and strips the
// engine-owned columns.
func (r *Repository[T]) writeRow(data domain.Payload) (map[string]any, error) {
	if data == nil {
		return nil, domain.NewAppError(domain.CodeInvalidArgument, "empty "+r.desc.Name+" payload", nil)
	}
	cols := data.Columns()
	row := make(map[string]any, len(cols))
	for field, value := range cols {
		if _, owned := immutableColumns[field]; owned {
			continue
		}
		if err := r.requireColumn(field); err != nil {
			return nil, err
		}
		row[field] = value
	}
	if len(row) == 0 {
		return nil, domain.NewAppError(domain.CodeInvalidArgument, "empty "+r.desc.Name+" payload", nil)
	}
	return row, nil
}

// validateUniqueFields probes each candidate field for an existing row with
// the same value, in the order given, excluding excludeID on updates. The
// first collision wins.
func (r *Repository[T]) validateUniqueFields(tx *gorm.DB, row map[string]any, uniqueFields []string, excludeID uuid.UUID) error {
	for _, field := range uniqueFields {
		if err := r.requireColumn(field); err != nil {
			return err
		}
		value, ok := row[field]
		if !ok || value == nil {
			continue
		}
		probe := tx.Table(r.desc.Table).Where(field+" = ?", value)
		if excludeID != uuid.Nil {
			probe = probe.Where("id <> ?", excludeID)
		}
		var n int64
		if err := probe.Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return domain.NewAppError(domain.CodeUniqueViolation,
				fmt.Sprintf("'%s' for %v already exists", field, value), nil)
		}
	}
	return nil
}

// requireExists checks the row exists, optionally counting soft-deleted rows.
func (r *Repository[T]) requireExists(tx *gorm.DB, id uuid.UUID, includeDeleted bool) error {
	probe := tx.Table(r.desc.Table).Where("id = ?", id)
	if !includeDeleted {
		probe = probe.Where("is_deleted = ?", false)
	}
	var n int64
	if err := probe.Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return domain.NewAppError(domain.CodeNotFound, r.desc.Name+" not found", nil)
	}
	return nil
}
