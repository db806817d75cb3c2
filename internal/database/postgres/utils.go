package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/harwood/farmcore/internal/domain"
	"github.com/harwood/farmcore/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// parseFarmUUID parses a farm ID string to uuid.UUID with a consistent error.
// Malformed IDs can only come from callers holding stale references, so they
// map to not-found rather than a syntax error.
func parseFarmUUID(farmID string) (uuid.UUID, error) {
	u, err := uuid.Parse(farmID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid farm id %q", domain.ErrFarmNotFound, farmID)
	}
	return u, nil
}

// parseUUID parses an entity ID string, mapping malformed input to notFound.
func parseUUID(id string, notFound error) (uuid.UUID, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid id %q", notFound, id)
	}
	return u, nil
}
