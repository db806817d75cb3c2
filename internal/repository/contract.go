package repository

import (
	"context"
	"time"

	"github.com/harwood/farmcore/internal/domain"
)

// Contract defines the interface for contract persistence
type Contract interface {
	BeginTx(ctx context.Context) (ContractTx, error)

	// PurgeExpiredContracts removes expired contracts across all farms and
	// returns the number of rows deleted. Rotation already drops a farm's
	// expired rows lazily; this keeps the table small for farms nobody
	// visits anymore.
	PurgeExpiredContracts(ctx context.Context, now time.Time) (int, error)
}

// ContractTx defines the interface for contract rotation and completion
// transactions
type ContractTx interface {
	LedgerTx

	// DeleteExpiredContracts removes all of the farm's contracts with
	// expires_at <= now, regardless of completion state.
	DeleteExpiredContracts(ctx context.Context, farmID string, now time.Time) error

	// ListContracts returns the farm's contracts ordered by creation time.
	ListContracts(ctx context.Context, farmID string) ([]domain.Contract, error)

	// GetContractForUpdate locks the contract row; returns
	// domain.ErrContractNotFound when it does not belong to the farm.
	GetContractForUpdate(ctx context.Context, farmID, contractID string) (*domain.Contract, error)

	// CreateContract persists a newly generated contract.
	CreateContract(ctx context.Context, contract *domain.Contract) error

	// SetContractCompleted stamps completed_at. The column is set once.
	SetContractCompleted(ctx context.Context, contractID string, completedAt time.Time) error

	// AddUnlockedCrop adds a crop type to the farm's unlocked set.
	// Idempotent: adding an already unlocked crop is a no-op.
	AddUnlockedCrop(ctx context.Context, farmID string, cropTypeID int) error
}
