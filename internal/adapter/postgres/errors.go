package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/trendplan-backend/internal/domain"
)

// sqlStates maps the integrity-violation SQLSTATEs raised by this schema to
// domain sentinels.
var sqlStates = map[string]error{
	"23505": domain.ErrAlreadyExists, // unique_violation
	"23503": domain.ErrNotFound,      // foreign_key_violation
	"23514": domain.ErrValidation,    // check_violation
}

// MapError prefixes err with the entity and its id and translates pgx errors
// into domain sentinels. Context errors and unknown failures keep their
// original cause. id is anything printable (uuid, topic id, user id).
func MapError(err error, entity string, id any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s %v: %w", entity, id, classify(err))
}

func classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return err
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	sentinel, ok := sqlStates[pgErr.Code]
	if !ok {
		return err
	}
	if pgErr.ConstraintName != "" {
		return fmt.Errorf("%s: %w", pgErr.ConstraintName, sentinel)
	}
	return sentinel
}
