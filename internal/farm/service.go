package farm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/harwood/farmcore/internal/domain"
	"github.com/harwood/farmcore/internal/logger"
	"github.com/harwood/farmcore/internal/repository"
)

const (
	cacheSize = 1024
	cacheTTL  = 10 * time.Minute
)

// Service defines the interface for farm provisioning and lookups
type Service interface {
	// GetFarm returns the user's farm, or domain.ErrFarmNotFound.
	GetFarm(ctx context.Context, userID string) (*domain.Farm, error)

	// CreateFarm provisions a farm with an empty plot grid, the starting
	// balance and the starter crop unlock. Fails with domain.ErrFarmExists
	// when the user already owns one.
	CreateFarm(ctx context.Context, userID, name string) (*domain.Farm, error)

	// GetOrCreateFarm returns the user's farm, provisioning it on first
	// access.
	GetOrCreateFarm(ctx context.Context, userID, name string) (*domain.Farm, error)

	// ResolveFarmID maps a user ID to their farm ID (cached).
	ResolveFarmID(ctx context.Context, userID string) (string, error)

	// ListInventory returns the farm's non-empty inventory rows.
	ListInventory(ctx context.Context, farmID string) ([]domain.InventoryItem, error)

	// ListCrops returns the crop catalog.
	ListCrops(ctx context.Context) ([]domain.CropType, error)
}

type service struct {
	farmRepo    repository.Farm
	catalogRepo repository.Catalog
	economyRepo repository.Economy
	cache       *farmIDCache
	gridSize    int
}

// NewService creates a new farm service
func NewService(farmRepo repository.Farm, catalogRepo repository.Catalog, economyRepo repository.Economy) Service {
	return &service{
		farmRepo:    farmRepo,
		catalogRepo: catalogRepo,
		economyRepo: economyRepo,
		cache:       newFarmIDCache(cacheSize, cacheTTL),
		gridSize:    domain.DefaultGridSize,
	}
}

func (s *service) GetFarm(ctx context.Context, userID string) (*domain.Farm, error) {
	farm, err := s.farmRepo.GetFarmByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.cache.Set(userID, farm.ID)
	return farm, nil
}

func (s *service) CreateFarm(ctx context.Context, userID, name string) (*domain.Farm, error) {
	log := logger.FromContext(ctx)

	if userID == "" || name == "" {
		return nil, fmt.Errorf("%w: user id and farm name are required", domain.ErrInvalidInput)
	}

	farm := &domain.Farm{
		UserID:  userID,
		Name:    name,
		Balance: domain.StartingBalance,
	}

	plots := make([]domain.Plot, 0, s.gridSize*s.gridSize)
	for y := 0; y < s.gridSize; y++ {
		for x := 0; x < s.gridSize; x++ {
			plots = append(plots, domain.Plot{X: x, Y: y})
		}
	}

	var unlocked []int
	starter, err := s.catalogRepo.GetCropTypeByName(ctx, domain.StarterCropName)
	if err != nil {
		if !errors.Is(err, domain.ErrCropNotFound) {
			return nil, fmt.Errorf("failed to look up starter crop: %w", err)
		}
		// No starter crop in the catalog: the farm starts with an empty
		// unlock set, which means everything is plantable.
	} else {
		unlocked = []int{starter.ID}
	}

	if err := s.farmRepo.CreateFarm(ctx, farm, plots, unlocked); err != nil {
		return nil, err
	}
	s.cache.Set(userID, farm.ID)

	log.Info("Farm created", "userID", userID, "farmID", farm.ID, "plots", len(plots))
	return farm, nil
}

func (s *service) GetOrCreateFarm(ctx context.Context, userID, name string) (*domain.Farm, error) {
	farm, err := s.GetFarm(ctx, userID)
	if err == nil {
		return farm, nil
	}
	if !errors.Is(err, domain.ErrFarmNotFound) {
		return nil, err
	}

	if name == "" {
		name = userID + "'s farm"
	}
	farm, err = s.CreateFarm(ctx, userID, name)
	if errors.Is(err, domain.ErrFarmExists) {
		// Lost a provisioning race; the winner's farm is the farm.
		return s.GetFarm(ctx, userID)
	}
	return farm, err
}

func (s *service) ResolveFarmID(ctx context.Context, userID string) (string, error) {
	if farmID, ok := s.cache.Get(userID); ok {
		return farmID, nil
	}
	farm, err := s.GetFarm(ctx, userID)
	if err != nil {
		return "", err
	}
	return farm.ID, nil
}

func (s *service) ListInventory(ctx context.Context, farmID string) ([]domain.InventoryItem, error) {
	return s.economyRepo.ListInventory(ctx, farmID)
}

func (s *service) ListCrops(ctx context.Context) ([]domain.CropType, error) {
	return s.catalogRepo.ListCropTypes(ctx)
}
