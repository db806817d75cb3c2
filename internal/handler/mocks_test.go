package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/harwood/farmcore/internal/domain"
	"github.com/harwood/farmcore/internal/market"
)

type MockPlotService struct {
	mock.Mock
}

func (m *MockPlotService) ListPlots(ctx context.Context, farmID string) ([]domain.Plot, error) {
	args := m.Called(ctx, farmID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Plot), args.Error(1)
}

func (m *MockPlotService) Plant(ctx context.Context, farmID string, plotID, cropTypeID int) (*domain.Plot, error) {
	args := m.Called(ctx, farmID, plotID, cropTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Plot), args.Error(1)
}

func (m *MockPlotService) Harvest(ctx context.Context, farmID string, plotID int) (*domain.Plot, error) {
	args := m.Called(ctx, farmID, plotID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Plot), args.Error(1)
}

type MockFarmService struct {
	mock.Mock
}

func (m *MockFarmService) GetFarm(ctx context.Context, userID string) (*domain.Farm, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Farm), args.Error(1)
}

func (m *MockFarmService) CreateFarm(ctx context.Context, userID, name string) (*domain.Farm, error) {
	args := m.Called(ctx, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Farm), args.Error(1)
}

func (m *MockFarmService) GetOrCreateFarm(ctx context.Context, userID, name string) (*domain.Farm, error) {
	args := m.Called(ctx, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Farm), args.Error(1)
}

func (m *MockFarmService) ResolveFarmID(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *MockFarmService) ListInventory(ctx context.Context, farmID string) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, farmID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

func (m *MockFarmService) ListCrops(ctx context.Context) ([]domain.CropType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CropType), args.Error(1)
}

type MockMarketService struct {
	mock.Mock
}

func (m *MockMarketService) ListOpenListings(ctx context.Context, visibleCropTypeIDs []int) ([]domain.MarketListing, error) {
	args := m.Called(ctx, visibleCropTypeIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MarketListing), args.Error(1)
}

func (m *MockMarketService) CreateListing(ctx context.Context, sellerFarmID string, cropTypeID, quantity, unitPrice int) (*domain.MarketListing, error) {
	args := m.Called(ctx, sellerFarmID, cropTypeID, quantity, unitPrice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MarketListing), args.Error(1)
}

func (m *MockMarketService) BuyListing(ctx context.Context, buyerFarmID, listingID string) (*market.PurchaseResult, error) {
	args := m.Called(ctx, buyerFarmID, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*market.PurchaseResult), args.Error(1)
}
