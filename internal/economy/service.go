package economy

import (
	"context"
	"fmt"
	"time"

	"github.com/harwood/farmcore/internal/domain"
	"github.com/harwood/farmcore/internal/event"
	"github.com/harwood/farmcore/internal/logger"
	"github.com/harwood/farmcore/internal/repository"
)

// SaleResult summarizes an NPC sale.
type SaleResult struct {
	CropName   string `json:"crop_name"`
	Quantity   int    `json:"quantity"`
	CoinsPaid  int    `json:"coins_paid"`
	NewBalance int    `json:"new_balance"`
}

// Service defines the coin economy business logic
type Service interface {
	// SellCrop sells quantity units of a crop to the NPC buyer at base price.
	SellCrop(ctx context.Context, farmID string, cropTypeID, quantity int) (*SaleResult, error)

	// ListInventory returns the farm's harvested crop holdings.
	ListInventory(ctx context.Context, farmID string) ([]domain.InventoryItem, error)
}

type service struct {
	economyRepo repository.Economy
	catalogRepo repository.Catalog
	bus         event.Bus
}

// NewService creates a new economy service
func NewService(economyRepo repository.Economy, catalogRepo repository.Catalog, bus event.Bus) Service {
	return &service{
		economyRepo: economyRepo,
		catalogRepo: catalogRepo,
		bus:         bus,
	}
}

func (s *service) ListInventory(ctx context.Context, farmID string) ([]domain.InventoryItem, error) {
	return s.economyRepo.ListInventory(ctx, farmID)
}

func (s *service) SellCrop(ctx context.Context, farmID string, cropTypeID, quantity int) (*SaleResult, error) {
	log := logger.FromContext(ctx)
	log.Info("SellCrop called", "farmID", farmID, "cropTypeID", cropTypeID, "quantity", quantity)

	if quantity <= 0 || quantity > domain.MaxTransactionQuantity {
		return nil, fmt.Errorf("%w: quantity must be between 1 and %d", domain.ErrInvalidInput, domain.MaxTransactionQuantity)
	}

	crop, err := s.catalogRepo.GetCropType(ctx, cropTypeID)
	if err != nil {
		return nil, err
	}

	tx, err := s.economyRepo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	farm, err := tx.GetFarmForUpdate(ctx, farmID)
	if err != nil {
		return nil, err
	}

	held, err := tx.GetInventoryForUpdate(ctx, farmID, cropTypeID)
	if err != nil {
		return nil, err
	}
	if held < quantity {
		return nil, fmt.Errorf("%w: have %d %s, need %d", domain.ErrInsufficientInventory, held, crop.Name, quantity)
	}

	payout := quantity * crop.BasePrice
	if err := tx.UpsertInventory(ctx, farmID, cropTypeID, held-quantity); err != nil {
		return nil, err
	}
	if err := tx.UpdateFarmBalance(ctx, farmID, farm.Balance+payout); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	if s.bus != nil {
		_ = s.bus.Publish(ctx, event.Event{
			Version: event.EventSchemaVersion,
			Type:    event.CropSold,
			Payload: domain.CropSoldPayload{
				FarmID:    farmID,
				CropName:  crop.Name,
				Quantity:  quantity,
				CoinsPaid: payout,
				Timestamp: time.Now().Unix(),
			},
		})
	}

	log.Info("Crop sold", "farmID", farmID, "crop", crop.Name, "quantity", quantity, "coinsPaid", payout)
	return &SaleResult{
		CropName:   crop.Name,
		Quantity:   quantity,
		CoinsPaid:  payout,
		NewBalance: farm.Balance + payout,
	}, nil
}
