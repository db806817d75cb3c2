package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/harwood/farmcore/internal/domain"
)

// ledgerTx implements repository.LedgerTx on top of a pgx transaction. The
// feature transaction types embed it so every atomic operation shares one
// implementation of the balance and inventory mutations.
type ledgerTx struct {
	tx pgx.Tx
}

// Commit commits the transaction
func (t *ledgerTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *ledgerTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// GetFarmForUpdate locks the farm row and returns the farm with its unlocked
// crop set.
func (t *ledgerTx) GetFarmForUpdate(ctx context.Context, farmID string) (*domain.Farm, error) {
	fid, err := parseFarmUUID(farmID)
	if err != nil {
		return nil, err
	}
	return getFarmForUpdate(ctx, t.tx, fid)
}

func getFarmForUpdate(ctx context.Context, tx pgx.Tx, farmID uuid.UUID) (*domain.Farm, error) {
	var (
		farm domain.Farm
		fid  uuid.UUID
	)
	err := tx.QueryRow(ctx,
		`SELECT farm_id, user_id, name, balance, created_at
		 FROM farms WHERE farm_id = $1 FOR UPDATE`,
		farmID,
	).Scan(&fid, &farm.UserID, &farm.Name, &farm.Balance, &farm.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFarmNotFound
		}
		return nil, fmt.Errorf("failed to get farm for update: %w", err)
	}
	farm.ID = fid.String()

	farm.UnlockedCrops, err = listUnlockedCrops(ctx, tx, farmID)
	if err != nil {
		return nil, err
	}
	return &farm, nil
}

// UpdateFarmBalance sets the farm's balance.
func (t *ledgerTx) UpdateFarmBalance(ctx context.Context, farmID string, balance int) error {
	fid, err := parseFarmUUID(farmID)
	if err != nil {
		return err
	}
	tag, err := t.tx.Exec(ctx,
		`UPDATE farms SET balance = $2 WHERE farm_id = $1`, fid, balance)
	if err != nil {
		return fmt.Errorf("failed to update farm balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrFarmNotFound
	}
	return nil
}

// GetInventoryForUpdate locks and returns the held quantity of one crop type.
func (t *ledgerTx) GetInventoryForUpdate(ctx context.Context, farmID string, cropTypeID int) (int, error) {
	fid, err := parseFarmUUID(farmID)
	if err != nil {
		return 0, err
	}
	var quantity int
	err = t.tx.QueryRow(ctx,
		`SELECT quantity FROM inventory_items
		 WHERE farm_id = $1 AND crop_type_id = $2 FOR UPDATE`,
		fid, cropTypeID,
	).Scan(&quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get inventory for update: %w", err)
	}
	return quantity, nil
}

// UpsertInventory sets the held quantity of one crop type.
func (t *ledgerTx) UpsertInventory(ctx context.Context, farmID string, cropTypeID, quantity int) error {
	fid, err := parseFarmUUID(farmID)
	if err != nil {
		return err
	}
	_, err = t.tx.Exec(ctx,
		`INSERT INTO inventory_items (farm_id, crop_type_id, quantity)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (farm_id, crop_type_id) DO UPDATE SET quantity = EXCLUDED.quantity`,
		fid, cropTypeID, quantity)
	if err != nil {
		return fmt.Errorf("failed to upsert inventory: %w", err)
	}
	return nil
}
