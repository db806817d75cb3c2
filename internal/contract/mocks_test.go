package contract

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/harwood/farmcore/internal/domain"
	"github.com/harwood/farmcore/internal/repository"
)

// MockRepository implements repository.Contract for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.ContractTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.ContractTx), args.Error(1)
}

func (m *MockRepository) PurgeExpiredContracts(ctx context.Context, now time.Time) (int, error) {
	args := m.Called(ctx, now)
	return args.Int(0), args.Error(1)
}

// MockTx implements repository.ContractTx for testing
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

func (m *MockTx) DeleteExpiredContracts(ctx context.Context, farmID string, now time.Time) error {
	args := m.Called(ctx, farmID, now)
	return args.Error(0)
}

func (m *MockTx) ListContracts(ctx context.Context, farmID string) ([]domain.Contract, error) {
	args := m.Called(ctx, farmID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contract), args.Error(1)
}

func (m *MockTx) GetContractForUpdate(ctx context.Context, farmID, contractID string) (*domain.Contract, error) {
	args := m.Called(ctx, farmID, contractID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}

func (m *MockTx) CreateContract(ctx context.Context, contract *domain.Contract) error {
	args := m.Called(ctx, contract)
	return args.Error(0)
}

func (m *MockTx) SetContractCompleted(ctx context.Context, contractID string, completedAt time.Time) error {
	args := m.Called(ctx, contractID, completedAt)
	return args.Error(0)
}

func (m *MockTx) AddUnlockedCrop(ctx context.Context, farmID string, cropTypeID int) error {
	args := m.Called(ctx, farmID, cropTypeID)
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

// scriptedRand returns queued values so generation is deterministic.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (s *scriptedRand) Float64() float64 {
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptedRand) Intn(n int) int {
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}
