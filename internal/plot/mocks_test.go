package plot

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/harwood/farmcore/internal/domain"
	"github.com/harwood/farmcore/internal/repository"
)

// MockRepository implements repository.Plot for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListPlots(ctx context.Context, farmID string) ([]domain.Plot, error) {
	args := m.Called(ctx, farmID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Plot), args.Error(1)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.PlotTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.PlotTx), args.Error(1)
}

// MockTx implements repository.PlotTx for testing
type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) GetFarmForUpdate(ctx context.Context, farmID string) (*domain.Farm, error) {
	args := m.Called(ctx, farmID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Farm), args.Error(1)
}

func (m *MockTx) UpdateFarmBalance(ctx context.Context, farmID string, balance int) error {
	args := m.Called(ctx, farmID, balance)
	return args.Error(0)
}

func (m *MockTx) GetInventoryForUpdate(ctx context.Context, farmID string, cropTypeID int) (int, error) {
	args := m.Called(ctx, farmID, cropTypeID)
	return args.Int(0), args.Error(1)
}

func (m *MockTx) UpsertInventory(ctx context.Context, farmID string, cropTypeID, quantity int) error {
	args := m.Called(ctx, farmID, cropTypeID, quantity)
	return args.Error(0)
}

func (m *MockTx) GetPlotForUpdate(ctx context.Context, farmID string, plotID int) (*domain.Plot, error) {
	args := m.Called(ctx, farmID, plotID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Plot), args.Error(1)
}

func (m *MockTx) UpdatePlot(ctx context.Context, plot *domain.Plot) error {
	args := m.Called(ctx, plot)
	return args.Error(0)
}

// MockCatalog implements repository.Catalog for testing
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
