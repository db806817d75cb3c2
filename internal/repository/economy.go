package repository

import (
	"context"

	"github.com/harwood/farmcore/internal/domain"
)

// Economy defines the interface for ledger persistence
type Economy interface {
	// ListInventory returns a farm's inventory rows joined with crop names.
	ListInventory(ctx context.Context, farmID string) ([]domain.InventoryItem, error)

	BeginTx(ctx context.Context) (EconomyTx, error)
}

// EconomyTx defines the interface for ledger transactions
type EconomyTx interface {
	LedgerTx
}
