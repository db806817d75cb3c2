package farm

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/harwood/farmcore/internal/domain"
	"github.com/harwood/farmcore/internal/repository"
)

type MockFarmRepository struct {
	mock.Mock
}

func (m *MockFarmRepository) GetFarmByUserID(ctx context.Context, userID string) (*domain.Farm, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Farm), args.Error(1)
}

func (m *MockFarmRepository) GetFarm(ctx context.Context, farmID string) (*domain.Farm, error) {
	args := m.Called(ctx, farmID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Farm), args.Error(1)
}

func (m *MockFarmRepository) CreateFarm(ctx context.Context, farm *domain.Farm, plots []domain.Plot, unlockedCrops []int) error {
	args := m.Called(ctx, farm, plots, unlockedCrops)
	return args.Error(0)
}

type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) ListCropTypes(ctx context.Context) ([]domain.CropType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CropType), args.Error(1)
}

func (m *MockCatalog) GetCropType(ctx context.Context, cropTypeID int) (*domain.CropType, error) {
	args := m.Called(ctx, cropTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CropType), args.Error(1)
}

func (m *MockCatalog) GetCropTypeByName(ctx context.Context, name string) (*domain.CropType, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CropType), args.Error(1)
}

type MockEconomyRepository struct {
	mock.Mock
}

func (m *MockEconomyRepository) ListInventory(ctx context.Context, farmID string) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, farmID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

func (m *MockEconomyRepository) BeginTx(ctx context.Context) (repository.EconomyTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.EconomyTx), args.Error(1)
}
