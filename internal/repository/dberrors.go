package repository

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/jakpabi/churchbase/internal/domain"
)

// Postgres reports the violated key as `Key (column)=(value) ...` in the
// error detail.
var pgKeyDetail = regexp.MustCompile(`Key \((.+?)\)=\((.+?)\)`)

// mapError converts storage-layer errors to domain errors. Unique constraint
// violations become UniqueViolation with the offending column and value when
// the driver reports them; foreign key violations become Conflict; anything
// unrecognized becomes Internal.
func mapError(entity string, err error) error {
	if err == nil {
		return nil
	}
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NewAppError(domain.CodeNotFound, entity+" not found", err)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.NewAppError(domain.CodeUniqueViolation, uniqueViolationMessage(err), err)
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return domain.NewAppError(domain.CodeConflict, entity+" is referenced by other records", err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return domain.NewAppError(domain.CodeUniqueViolation, uniqueViolationMessage(err), err)
		case "23503": // foreign_key_violation
			return domain.NewAppError(domain.CodeConflict, entity+" is referenced by other records", err)
		}
	}

	// The pure-Go SQLite driver does not translate constraint errors to the
	// gorm sentinels, so fall back to message matching.
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key") {
		return domain.NewAppError(domain.CodeUniqueViolation, uniqueViolationMessage(err), err)
	}
	if strings.Contains(msg, "foreign key constraint") {
		return domain.NewAppError(domain.CodeConflict, entity+" is referenced by other records", err)
	}

	return domain.NewAppError(domain.CodeInternal, "database error", err)
}

// uniqueViolationMessage extracts the violated column and value from the
// driver's native error text where possible.
func uniqueViolationMessage(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Detail != "" {
		if m := pgKeyDetail.FindStringSubmatch(pgErr.Detail); m != nil {
			return fmt.Sprintf("'%s' for %s already exists", m[1], m[2])
		}
	}
	// SQLite reports `UNIQUE constraint failed: table.column`.
	msg := err.Error()
	if i := strings.Index(msg, "UNIQUE constraint failed: "); i >= 0 {
		col := msg[i+len("UNIQUE constraint failed: "):]
		if j := strings.IndexAny(col, " (,"); j >= 0 {
			col = col[:j]
		}
		if j := strings.LastIndex(col, "."); j >= 0 {
			col = col[j+1:]
		}
		return fmt.Sprintf("'%s' already exists", col)
	}
	return "already exists"
}
