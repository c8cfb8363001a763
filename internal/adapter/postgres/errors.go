package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/partsdesk-backend/internal/domain"
)

// SQLSTATE codes the repositories can hit on orders and notes.
const (
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
	codeCheckViolation       = "23514"
	codeStringTruncation     = "22001"
	codeNumericOutOfRange    = "22003"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// MapError converts pgx/pgconn errors to domain errors, prefixed with the
// entity and its id. Context errors are wrapped but never mapped.
func MapError(err error, entity, id string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if mapped := sentinelFor(pgErr.Code); mapped != nil {
			if pgErr.ConstraintName != "" {
				return fmt.Errorf("%s %s: %w (%s)", entity, id, mapped, pgErr.ConstraintName)
			}
			return fmt.Errorf("%s %s: %w", entity, id, mapped)
		}
	}
	return fmt.Errorf("%s %s: %w", entity, id, err)
}

func sentinelFor(code string) error {
	switch code {
	case codeUniqueViolation:
		return domain.ErrAlreadyExists
	case codeForeignKeyViolation:
		return domain.ErrNotFound
	case codeCheckViolation, codeStringTruncation, codeNumericOutOfRange:
		return domain.ErrValidation
	case codeSerializationFailure, codeDeadlockDetected:
		return domain.ErrConflict
	}
	return nil
}
