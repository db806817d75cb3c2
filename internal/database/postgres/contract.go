package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harwood/farmcore/internal/domain"
	"github.com/harwood/farmcore/internal/repository"
)

// ContractRepository implements the contract repository for PostgreSQL
type ContractRepository struct {
	db *pgxpool.Pool
}

// NewContractRepository creates a new ContractRepository
func NewContractRepository(db *pgxpool.Pool) *ContractRepository {
	return &ContractRepository{db: db}
}

// ContractTx implements repository.ContractTx
type ContractTx struct {
	ledgerTx
}

// BeginTx starts a new transaction
func (r *ContractRepository) BeginTx(ctx context.Context) (repository.ContractTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &ContractTx{ledgerTx{tx: tx}}, nil
}

// PurgeExpiredContracts removes expired contracts across all farms.
func (r *ContractRepository) PurgeExpiredContracts(ctx context.Context, now time.Time) (int, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM contracts WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired contracts: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

const contractColumns = `contract_id, farm_id, crop_type_id, quantity_required,
	reward_coins, created_at, expires_at, completed_at, unlocks_crop_type_id`

// DeleteExpiredContracts removes the farm's contracts with expires_at <= now.
func (t *ContractTx) DeleteExpiredContracts(ctx context.Context, farmID string, now time.Time) error {
	fid, err := parseFarmUUID(farmID)
	if err != nil {
		return err
	}
	_, err = t.tx.Exec(ctx,
		`DELETE FROM contracts WHERE farm_id = $1 AND expires_at <= $2`, fid, now)
	if err != nil {
		return fmt.Errorf("failed to delete expired contracts: %w", err)
	}
	return nil
}

// ListContracts returns the farm's contracts ordered by creation time.
func (t *ContractTx) ListContracts(ctx context.Context, farmID string) ([]domain.Contract, error) {
	fid, err := parseFarmUUID(farmID)
	if err != nil {
		return nil, err
	}

	rows, err := t.tx.Query(ctx,
		`SELECT `+contractColumns+` FROM contracts
		 WHERE farm_id = $1 ORDER BY created_at, contract_id`,
		fid)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}
	defer rows.Close()

	var contracts []domain.Contract
	for rows.Next() {
		var (
			c         domain.Contract
			cid, ffid uuid.UUID
		)
		err := rows.Scan(&cid, &ffid, &c.CropTypeID, &c.QuantityRequired, &c.RewardCoins,
			&c.CreatedAt, &c.ExpiresAt, &c.CompletedAt, &c.UnlocksCropTypeID)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contract: %w", err)
		}
		c.ID = cid.String()
		c.FarmID = ffid.String()
		contracts = append(contracts, c)
	}
	return contracts, rows.Err()
}

// GetContractForUpdate locks the contract row for completion.
func (t *ContractTx) GetContractForUpdate(ctx context.Context, farmID, contractID string) (*domain.Contract, error) {
	fid, err := parseFarmUUID(farmID)
	if err != nil {
		return nil, err
	}
	cid, err := parseUUID(contractID, domain.ErrContractNotFound)
	if err != nil {
		return nil, err
	}

	var (
		c          domain.Contract
		scid, sfid uuid.UUID
	)
	err = t.tx.QueryRow(ctx,
		`SELECT `+contractColumns+` FROM contracts
		 WHERE contract_id = $1 AND farm_id = $2 FOR UPDATE`,
		cid, fid,
	).Scan(&scid, &sfid, &c.CropTypeID, &c.QuantityRequired, &c.RewardCoins,
		&c.CreatedAt, &c.ExpiresAt, &c.CompletedAt, &c.UnlocksCropTypeID)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrContractNotFound
		}
		return nil, fmt.Errorf("failed to get contract for update: %w", err)
	}
	c.ID = scid.String()
	c.FarmID = sfid.String()
	return &c, nil
}

// CreateContract persists a newly generated contract.
func (t *ContractTx) CreateContract(ctx context.Context, contract *domain.Contract) error {
	fid, err := parseFarmUUID(contract.FarmID)
	if err != nil {
		return err
	}

	var cid uuid.UUID
	err = t.tx.QueryRow(ctx,
		`INSERT INTO contracts (farm_id, crop_type_id, quantity_required, reward_coins,
		                        created_at, expires_at, unlocks_crop_type_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING contract_id`,
		fid, contract.CropTypeID, contract.QuantityRequired, contract.RewardCoins,
		contract.CreatedAt, contract.ExpiresAt, contract.UnlocksCropTypeID,
	).Scan(&cid)
	if err != nil {
		return fmt.Errorf("failed to insert contract: %w", err)
	}
	contract.ID = cid.String()
	return nil
}

// SetContractCompleted stamps completed_at on a not-yet-completed contract.
func (t *ContractTx) SetContractCompleted(ctx context.Context, contractID string, completedAt time.Time) error {
	cid, err := parseUUID(contractID, domain.ErrContractNotFound)
	if err != nil {
		return err
	}
	tag, err := t.tx.Exec(ctx,
		`UPDATE contracts SET completed_at = $2
		 WHERE contract_id = $1 AND completed_at IS NULL`,
		cid, completedAt)
	if err != nil {
		return fmt.Errorf("failed to set contract completed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrContractCompleted
	}
	return nil
}

// AddUnlockedCrop adds a crop type to the farm's unlocked set (idempotent).
func (t *ContractTx) AddUnlockedCrop(ctx context.Context, farmID string, cropTypeID int) error {
	fid, err := parseFarmUUID(farmID)
	if err != nil {
		return err
	}
	_, err = t.tx.Exec(ctx,
		`INSERT INTO farm_unlocked_crops (farm_id, crop_type_id)
		 VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		fid, cropTypeID)
	if err != nil {
		return fmt.Errorf("failed to add unlocked crop: %w", err)
	}
	return nil
}
