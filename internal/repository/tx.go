package repository

import (
	"context"

	"github.com/harwood/farmcore/internal/domain"
)

// Tx defines the interface for transactional operations
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// LedgerTx bundles the farm balance and inventory mutations shared by every
// atomic operation. The ForUpdate reads take row locks for the duration of
// the transaction, serializing concurrent operations on the same farm.
type LedgerTx interface {
	Tx

	// GetFarmForUpdate locks the farm row and returns the farm including
	// its unlocked crop set.
	GetFarmForUpdate(ctx context.Context, farmID string) (*domain.Farm, error)

	// UpdateFarmBalance sets the farm's balance.
	UpdateFarmBalance(ctx context.Context, farmID string, balance int) error

	// GetInventoryForUpdate locks and returns the held quantity of one crop
	// type; missing rows read as zero.
	GetInventoryForUpdate(ctx context.Context, farmID string, cropTypeID int) (int, error)

	// UpsertInventory sets the held quantity of one crop type, creating the
	// row when absent. Quantity must not be negative.
	UpsertInventory(ctx context.Context, farmID string, cropTypeID, quantity int) error
}
