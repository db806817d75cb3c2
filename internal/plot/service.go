package plot

import (
	"context"
	"fmt"
	"time"

	"github.com/harwood/farmcore/internal/domain"
	"github.com/harwood/farmcore/internal/event"
	"github.com/harwood/farmcore/internal/logger"
	"github.com/harwood/farmcore/internal/repository"
)

// Service defines the plot lifecycle business logic
type Service interface {
	// ListPlots returns the farm's plot grid.
	ListPlots(ctx context.Context, farmID string) ([]domain.Plot, error)

	// Plant sows a crop on an empty plot, debiting the seed price.
	Plant(ctx context.Context, farmID string, plotID, cropTypeID int) (*domain.Plot, error)

	// Harvest collects a ready crop, crediting one unit of inventory and
	// clearing the plot.
	Harvest(ctx context.Context, farmID string, plotID int) (*domain.Plot, error)
}

type service struct {
	plotRepo    repository.Plot
	catalogRepo repository.Catalog
	bus         event.Bus
	now         func() time.Time
}

// NewService creates a new plot service
func NewService(plotRepo repository.Plot, catalogRepo repository.Catalog, bus event.Bus) Service {
	return &service{
		plotRepo:    plotRepo,
		catalogRepo: catalogRepo,
		bus:         bus,
		now:         time.Now,
	}
}

func (s *service) ListPlots(ctx context.Context, farmID string) ([]domain.Plot, error) {
	return s.plotRepo.ListPlots(ctx, farmID)
}

func (s *service) Plant(ctx context.Context, farmID string, plotID, cropTypeID int) (*domain.Plot, error) {
	log := logger.FromContext(ctx)
	log.Info("Plant called", "farmID", farmID, "plotID", plotID, "cropTypeID", cropTypeID)

	crop, err := s.catalogRepo.GetCropType(ctx, cropTypeID)
	if err != nil {
		return nil, err
	}

	tx, err := s.plotRepo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	farm, err := tx.GetFarmForUpdate(ctx, farmID)
	if err != nil {
		return nil, err
	}

	plot, err := tx.GetPlotForUpdate(ctx, farmID, plotID)
	if err != nil {
		return nil, err
	}

	if plot.Planted() {
		return nil, fmt.Errorf("%w: plot %d", domain.ErrAlreadyPlanted, plotID)
	}
	if !farm.HasUnlocked(crop.ID) {
		return nil, fmt.Errorf("%w: %s", domain.ErrCropNotUnlocked, crop.Name)
	}
	if farm.Balance < crop.SeedPrice {
		return nil, fmt.Errorf("%w: need %d coins, have %d", domain.ErrInsufficientFunds, crop.SeedPrice, farm.Balance)
	}

	// All four mutations commit together: balance debit plus the three
	// plot fields stamped from a single clock reading.
	now := s.now()
	ready := now.Add(crop.GrowTime())
	plot.CropTypeID = &crop.ID
	plot.PlantedAt = &now
	plot.HarvestReadyAt = &ready

	if err := tx.UpdateFarmBalance(ctx, farmID, farm.Balance-crop.SeedPrice); err != nil {
		return nil, err
	}
	if err := tx.UpdatePlot(ctx, plot); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	if s.bus != nil {
		_ = s.bus.Publish(ctx, event.Event{
			Version: event.EventSchemaVersion,
			Type:    event.CropPlanted,
			Payload: domain.CropPlantedPayload{
				FarmID:    farmID,
				PlotID:    plotID,
				CropName:  crop.Name,
				SeedPrice: crop.SeedPrice,
				Timestamp: now.Unix(),
			},
		})
	}

	log.Info("Crop planted", "farmID", farmID, "plotID", plotID, "crop", crop.Name, "readyAt", ready)
	return plot, nil
}

func (s *service) Harvest(ctx context.Context, farmID string, plotID int) (*domain.Plot, error) {
	log := logger.FromContext(ctx)
	log.Info("Harvest called", "farmID", farmID, "plotID", plotID)

	tx, err := s.plotRepo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	// The farm row lock serializes harvests with every other ledger
	// operation on this farm. Without it, two harvests of the same crop can
	// both read the same held quantity (a missing inventory row locks
	// nothing) and the second write swallows the first credit.
	if _, err := tx.GetFarmForUpdate(ctx, farmID); err != nil {
		return nil, err
	}

	plot, err := tx.GetPlotForUpdate(ctx, farmID, plotID)
	if err != nil {
		return nil, err
	}

	if !plot.Ready(s.now()) {
		return nil, fmt.Errorf("%w: plot %d", domain.ErrNotReady, plotID)
	}

	// Capture the crop before clearing the plot; the inventory credit goes
	// to the crop that was growing, not whatever is planted next.
	cropTypeID := *plot.CropTypeID

	held, err := tx.GetInventoryForUpdate(ctx, farmID, cropTypeID)
	if err != nil {
		return nil, err
	}
	if err := tx.UpsertInventory(ctx, farmID, cropTypeID, held+1); err != nil {
		return nil, err
	}

	plot.Clear()
	if err := tx.UpdatePlot(ctx, plot); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	cropName := ""
	if crop, err := s.catalogRepo.GetCropType(ctx, cropTypeID); err == nil {
		cropName = crop.Name
	}
	if s.bus != nil {
		_ = s.bus.Publish(ctx, event.NewCropHarvestedEvent(farmID, plotID, cropName))
	}

	log.Info("Crop harvested", "farmID", farmID, "plotID", plotID, "cropTypeID", cropTypeID)
	return plot, nil
}
