package contract

import (
	"context"
	"fmt"
	"time"

	"github.com/harwood/farmcore/internal/domain"
	"github.com/harwood/farmcore/internal/event"
	"github.com/harwood/farmcore/internal/logger"
	"github.com/harwood/farmcore/internal/repository"
)

// CompletionResult summarizes a fulfilled contract.
type CompletionResult struct {
	Contract     *domain.Contract `json:"contract"`
	RewardCoins  int              `json:"reward_coins"`
	NewBalance   int              `json:"new_balance"`
	UnlockedCrop string           `json:"unlocked_crop,omitempty"`
}

// Service defines the delivery contract business logic
type Service interface {
	// ListContracts rotates the farm's contract slate and returns it: expired
	// contracts are swept, consumed slots regenerated, and the result is the
	// farm's unexpired contracts ordered by creation time.
	ListContracts(ctx context.Context, farmID string) ([]domain.Contract, error)

	// CompleteContract delivers the required crops in exchange for coins and,
	// on unlock contracts, access to a new crop type.
	CompleteContract(ctx context.Context, farmID, contractID string) (*CompletionResult, error)
}

type service struct {
	contractRepo repository.Contract
	catalogRepo  repository.Catalog
	bus          event.Bus
	rnd          domain.Rand
	now          func() time.Time
	desiredCount int
}

// NewService creates a new contract service
func NewService(contractRepo repository.Contract, catalogRepo repository.Catalog, bus event.Bus, rnd domain.Rand) Service {
	return &service{
		contractRepo: contractRepo,
		catalogRepo:  catalogRepo,
		bus:          bus,
		rnd:          rnd,
		now:          time.Now,
		desiredCount: domain.DesiredContractCount,
	}
}

func (s *service) ListContracts(ctx context.Context, farmID string) ([]domain.Contract, error) {
	log := logger.FromContext(ctx)

	catalog, err := s.catalogRepo.ListCropTypes(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := s.contractRepo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	// The farm row lock serializes rotation per farm; two concurrent list
	// calls must not both generate a batch.
	farm, err := tx.GetFarmForUpdate(ctx, farmID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if err := tx.DeleteExpiredContracts(ctx, farmID, now); err != nil {
		return nil, err
	}

	existing, err := tx.ListContracts(ctx, farmID)
	if err != nil {
		return nil, err
	}

	if len(existing) < s.desiredCount && len(catalog) > 0 {
		generated, err := s.generateBatch(ctx, tx, farm, existing, catalog, now)
		if err != nil {
			return nil, err
		}
		existing = append(existing, generated...)
		log.Info("Contracts generated", "farmID", farmID, "count", len(generated))
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	if len(existing) > s.desiredCount {
		existing = existing[:s.desiredCount]
	}
	return existing, nil
}

// generateBatch fills the farm's remaining contract slots. All contracts made
// in one call share a single expiry so the slate refreshes as a batch.
func (s *service) generateBatch(ctx context.Context, tx repository.ContractTx, farm *domain.Farm, existing []domain.Contract, catalog []domain.CropType, now time.Time) ([]domain.Contract, error) {
	batchExpiresAt := now.Add(domain.ContractDuration)
	if len(existing) > 0 {
		batchExpiresAt = existing[0].ExpiresAt
		for _, c := range existing[1:] {
			if c.ExpiresAt.Before(batchExpiresAt) {
				batchExpiresAt = c.ExpiresAt
			}
		}
	}

	// At most one active unlock contract per farm, counting both survivors
	// and contracts made earlier in this batch.
	hasUnlock := false
	unlockTargets := make(map[int]bool)
	for _, c := range existing {
		if c.IsUnlock() {
			unlockTargets[*c.UnlocksCropTypeID] = true
			if c.Active(now) {
				hasUnlock = true
			}
		}
	}

	unlocked := make(map[int]bool, len(farm.UnlockedCrops))
	for _, id := range farm.UnlockedCrops {
		unlocked[id] = true
	}

	needed := s.desiredCount - len(existing)
	generated := make([]domain.Contract, 0, needed)
	for i := 0; i < needed; i++ {
		var unlockTarget *int
		if !hasUnlock && s.rnd.Float64() < domain.UnlockContractChance {
			var lockedCrops []domain.CropType
			for _, ct := range catalog {
				if !unlocked[ct.ID] && !unlockTargets[ct.ID] {
					lockedCrops = append(lockedCrops, ct)
				}
			}
			if len(lockedCrops) > 0 {
				target := lockedCrops[s.rnd.Intn(len(lockedCrops))]
				unlockTarget = &target.ID
				unlockTargets[target.ID] = true
				hasUnlock = true
			}
		}

		// The delivery crop is drawn from what the farm can grow; an
		// unlock target never influences what must be delivered.
		pool := catalog
		if len(farm.UnlockedCrops) > 0 {
			pool = make([]domain.CropType, 0, len(farm.UnlockedCrops))
			for _, ct := range catalog {
				if unlocked[ct.ID] {
					pool = append(pool, ct)
				}
			}
			if len(pool) == 0 {
				pool = catalog
			}
		}
		payment := pool[s.rnd.Intn(len(pool))]

		qty := domain.ContractMinQuantity +
			s.rnd.Intn(domain.ContractMaxQuantity-domain.ContractMinQuantity+1)

		c := domain.Contract{
			FarmID:            farm.ID,
			CropTypeID:        payment.ID,
			QuantityRequired:  qty,
			RewardCoins:       qty * payment.BasePrice,
			CreatedAt:         now,
			ExpiresAt:         batchExpiresAt,
			UnlocksCropTypeID: unlockTarget,
		}
		if err := tx.CreateContract(ctx, &c); err != nil {
			return nil, err
		}
		generated = append(generated, c)
	}
	return generated, nil
}

func (s *service) CompleteContract(ctx context.Context, farmID, contractID string) (*CompletionResult, error) {
	log := logger.FromContext(ctx)
	log.Info("CompleteContract called", "farmID", farmID, "contractID", contractID)

	tx, err := s.contractRepo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	farm, err := tx.GetFarmForUpdate(ctx, farmID)
	if err != nil {
		return nil, err
	}

	contract, err := tx.GetContractForUpdate(ctx, farmID, contractID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if contract.Completed() {
		return nil, fmt.Errorf("%w: contract %s", domain.ErrContractCompleted, contractID)
	}
	if contract.Expired(now) {
		return nil, fmt.Errorf("%w: contract %s", domain.ErrContractExpired, contractID)
	}

	held, err := tx.GetInventoryForUpdate(ctx, farmID, contract.CropTypeID)
	if err != nil {
		return nil, err
	}
	if held < contract.QuantityRequired {
		return nil, fmt.Errorf("%w: have %d, need %d", domain.ErrInsufficientInventory, held, contract.QuantityRequired)
	}

	if err := tx.UpsertInventory(ctx, farmID, contract.CropTypeID, held-contract.QuantityRequired); err != nil {
		return nil, err
	}
	if err := tx.UpdateFarmBalance(ctx, farmID, farm.Balance+contract.RewardCoins); err != nil {
		return nil, err
	}
	if contract.IsUnlock() {
		if err := tx.AddUnlockedCrop(ctx, farmID, *contract.UnlocksCropTypeID); err != nil {
			return nil, err
		}
	}
	if err := tx.SetContractCompleted(ctx, contract.ID, now); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	contract.CompletedAt = &now

	cropName := ""
	if crop, err := s.catalogRepo.GetCropType(ctx, contract.CropTypeID); err == nil {
		cropName = crop.Name
	}
	unlockedCrop := ""
	if contract.IsUnlock() {
		if crop, err := s.catalogRepo.GetCropType(ctx, *contract.UnlocksCropTypeID); err == nil {
			unlockedCrop = crop.Name
		}
	}
	if s.bus != nil {
		_ = s.bus.Publish(ctx, event.NewContractCompletedEvent(contract, cropName, unlockedCrop))
	}

	log.Info("Contract completed", "farmID", farmID, "contractID", contractID,
		"reward", contract.RewardCoins, "unlockedCrop", unlockedCrop)
	return &CompletionResult{
		Contract:     contract,
		RewardCoins:  contract.RewardCoins,
		NewBalance:   farm.Balance + contract.RewardCoins,
		UnlockedCrop: unlockedCrop,
	}, nil
}
