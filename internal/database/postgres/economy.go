package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harwood/farmcore/internal/domain"
	"github.com/harwood/farmcore/internal/repository"
)

// EconomyRepository implements the ledger repository for PostgreSQL
type EconomyRepository struct {
	db *pgxpool.Pool
}

// NewEconomyRepository creates a new EconomyRepository
func NewEconomyRepository(db *pgxpool.Pool) *EconomyRepository {
	return &EconomyRepository{db: db}
}

// EconomyTx implements repository.EconomyTx
type EconomyTx struct {
	ledgerTx
}

// BeginTx starts a new transaction
func (r *EconomyRepository) BeginTx(ctx context.Context) (repository.EconomyTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &EconomyTx{ledgerTx{tx: tx}}, nil
}

// ListInventory returns a farm's inventory joined with crop names, skipping
// zero rows.
func (r *EconomyRepository) ListInventory(ctx context.Context, farmID string) ([]domain.InventoryItem, error) {
	fid, err := parseFarmUUID(farmID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT i.crop_type_id, i.quantity, c.name
		 FROM inventory_items i
		 JOIN crop_types c ON c.crop_type_id = i.crop_type_id
		 WHERE i.farm_id = $1 AND i.quantity > 0
		 ORDER BY i.crop_type_id`,
		fid)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	defer rows.Close()

	var items []domain.InventoryItem
	for rows.Next() {
		var it domain.InventoryItem
		if err := rows.Scan(&it.CropTypeID, &it.Quantity, &it.CropName); err != nil {
			return nil, fmt.Errorf("failed to scan inventory item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
