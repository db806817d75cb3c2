package repository

import (
	"context"

	"github.com/harwood/farmcore/internal/domain"
)

// Farm defines the interface for farm persistence
type Farm interface {
	// GetFarmByUserID returns a user's farm including its unlocked crop set,
	// or domain.ErrFarmNotFound.
	GetFarmByUserID(ctx context.Context, userID string) (*domain.Farm, error)

	// GetFarm returns a farm by ID including its unlocked crop set.
	GetFarm(ctx context.Context, farmID string) (*domain.Farm, error)

	// CreateFarm persists a new farm together with its plot grid and initial
	// unlocked crops in one transaction. Returns domain.ErrFarmExists when
	// the user already owns a farm.
	CreateFarm(ctx context.Context, farm *domain.Farm, plots []domain.Plot, unlockedCrops []int) error
}

// Catalog defines the interface for crop type reference data
type Catalog interface {
	ListCropTypes(ctx context.Context) ([]domain.CropType, error)
	GetCropType(ctx context.Context, cropTypeID int) (*domain.CropType, error)
	GetCropTypeByName(ctx context.Context, name string) (*domain.CropType, error)
}
