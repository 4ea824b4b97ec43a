package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/Chikimuras/ezlife/internal/core/domain"
)

const (
	pqForeignKeyViolation = "23503"
	pqUniqueViolation     = "23505"

	runningTimerIndex = "uq_activities_running_timer"
)

// mapError turns driver errors into domain errors. notFound is returned for
// sql.ErrNoRows.
func mapError(err error, notFound error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) && notFound != nil {
		return notFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqForeignKeyViolation:
			return fmt.Errorf("%w: %s", domain.ErrDependencyViolation, pqErr.Constraint)
		case pqUniqueViolation:
			if pqErr.Constraint == runningTimerIndex {
				return domain.ErrTimerAlreadyRunning
			}
		}
	}
	return err
}

// expectAffected returns notFound when a write touched no row.
func expectAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
