package farm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/harwood/farmcore/internal/domain"
)

const (
	testUserID = "user-42"
	testFarmID = "11111111-1111-1111-1111-111111111111"
)

func wheatCrop() *domain.CropType {
	return &domain.CropType{ID: 1, Name: "wheat", GrowTimeSeconds: 10, SeedPrice: 5, BasePrice: 2}
}

func TestCreateFarm_Success(t *testing.T) {
	// ARRANGE
	mockFarms := &MockFarmRepository{}
	mockCatalog := &MockCatalog{}
	mockEconomy := &MockEconomyRepository{}
	svc := NewService(mockFarms, mockCatalog, mockEconomy)
	ctx := context.Background()

	mockCatalog.On("GetCropTypeByName", ctx, domain.StarterCropName).Return(wheatCrop(), nil)

	var createdPlots []domain.Plot
	var createdUnlocks []int
	mockFarms.On("CreateFarm", ctx, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			farm := args.Get(1).(*domain.Farm)
			farm.ID = testFarmID
			createdPlots = args.Get(2).([]domain.Plot)
			createdUnlocks = args.Get(3).([]int)
		}).Return(nil)

	// ACT
	farm, err := svc.CreateFarm(ctx, testUserID, "Sunrise Acres")

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, testUserID, farm.UserID)
	assert.Equal(t, "Sunrise Acres", farm.Name)
	assert.Equal(t, domain.StartingBalance, farm.Balance)
	assert.Len(t, createdPlots, domain.DefaultGridSize*domain.DefaultGridSize)
	assert.False(t, createdPlots[0].Planted(), "new plots start unplanted")
	assert.Equal(t, []int{1}, createdUnlocks, "starter crop is unlocked from the start")
	mockFarms.AssertExpectations(t)
}

func TestCreateFarm_MissingStarterCropTolerated(t *testing.T) {
	// A catalog without the starter crop still provisions the farm; the
	// empty unlock set makes every crop plantable.
	mockFarms := &MockFarmRepository{}
	mockCatalog := &MockCatalog{}
	mockEconomy := &MockEconomyRepository{}
	svc := NewService(mockFarms, mockCatalog, mockEconomy)
	ctx := context.Background()

	mockCatalog.On("GetCropTypeByName", ctx, domain.StarterCropName).Return(nil, domain.ErrCropNotFound)
	mockFarms.On("CreateFarm", ctx, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			assert.Empty(t, args.Get(3).([]int))
		}).Return(nil)

	_, err := svc.CreateFarm(ctx, testUserID, "Sunrise Acres")

	require.NoError(t, err)
	mockFarms.AssertExpectations(t)
}

func TestCreateFarm_InvalidInput(t *testing.T) {
	mockFarms := &MockFarmRepository{}
	mockCatalog := &MockCatalog{}
	mockEconomy := &MockEconomyRepository{}
	svc := NewService(mockFarms, mockCatalog, mockEconomy)

	_, err := svc.CreateFarm(context.Background(), "", "Sunrise Acres")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.CreateFarm(context.Background(), testUserID, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	mockFarms.AssertNotCalled(t, "CreateFarm", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetOrCreateFarm_ExistingFarm(t *testing.T) {
	mockFarms := &MockFarmRepository{}
	mockCatalog := &MockCatalog{}
	mockEconomy := &MockEconomyRepository{}
	svc := NewService(mockFarms, mockCatalog, mockEconomy)
	ctx := context.Background()

	existing := &domain.Farm{ID: testFarmID, UserID: testUserID, Balance: 250}
	mockFarms.On("GetFarmByUserID", ctx, testUserID).Return(existing, nil)

	farm, err := svc.GetOrCreateFarm(ctx, testUserID, "")

	require.NoError(t, err)
	assert.Equal(t, existing, farm)
	mockFarms.AssertNotCalled(t, "CreateFarm", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetOrCreateFarm_ProvisionsOnFirstAccess(t *testing.T) {
	mockFarms := &MockFarmRepository{}
	mockCatalog := &MockCatalog{}
	mockEconomy := &MockEconomyRepository{}
	svc := NewService(mockFarms, mockCatalog, mockEconomy)
	ctx := context.Background()

	mockFarms.On("GetFarmByUserID", ctx, testUserID).Return(nil, domain.ErrFarmNotFound)
	mockCatalog.On("GetCropTypeByName", ctx, domain.StarterCropName).Return(wheatCrop(), nil)
	mockFarms.On("CreateFarm", ctx, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			farm := args.Get(1).(*domain.Farm)
			farm.ID = testFarmID
			// Empty names get a derived default.
			assert.Equal(t, testUserID+"'s farm", farm.Name)
		}).Return(nil)

	farm, err := svc.GetOrCreateFarm(ctx, testUserID, "")

	require.NoError(t, err)
	assert.Equal(t, testFarmID, farm.ID)
	assert.Equal(t, domain.StartingBalance, farm.Balance)
}

func TestGetOrCreateFarm_LosesProvisioningRace(t *testing.T) {
	// Two concurrent first requests both miss the lookup; the loser's
	// insert fails and falls back to reading the winner's farm.
	mockFarms := &MockFarmRepository{}
	mockCatalog := &MockCatalog{}
	mockEconomy := &MockEconomyRepository{}
	svc := NewService(mockFarms, mockCatalog, mockEconomy)
	ctx := context.Background()

	winner := &domain.Farm{ID: testFarmID, UserID: testUserID, Balance: domain.StartingBalance}
	mockFarms.On("GetFarmByUserID", ctx, testUserID).Return(nil, domain.ErrFarmNotFound).Once()
	mockCatalog.On("GetCropTypeByName", ctx, domain.StarterCropName).Return(wheatCrop(), nil)
	mockFarms.On("CreateFarm", ctx, mock.Anything, mock.Anything, mock.Anything).Return(domain.ErrFarmExists)
	mockFarms.On("GetFarmByUserID", ctx, testUserID).Return(winner, nil).Once()

	farm, err := svc.GetOrCreateFarm(ctx, testUserID, "Sunrise Acres")

	require.NoError(t, err)
	assert.Equal(t, winner, farm)
}

func TestResolveFarmID_CachesLookup(t *testing.T) {
	mockFarms := &MockFarmRepository{}
	mockCatalog := &MockCatalog{}
	mockEconomy := &MockEconomyRepository{}
	svc := NewService(mockFarms, mockCatalog, mockEconomy)
	ctx := context.Background()

	mockFarms.On("GetFarmByUserID", ctx, testUserID).
		Return(&domain.Farm{ID: testFarmID, UserID: testUserID}, nil).Once()

	first, err := svc.ResolveFarmID(ctx, testUserID)
	require.NoError(t, err)
	second, err := svc.ResolveFarmID(ctx, testUserID)
	require.NoError(t, err)

	assert.Equal(t, testFarmID, first)
	assert.Equal(t, testFarmID, second)
	mockFarms.AssertNumberOfCalls(t, "GetFarmByUserID", 1)
}

func TestResolveFarmID_UnknownUser(t *testing.T) {
	mockFarms := &MockFarmRepository{}
	mockCatalog := &MockCatalog{}
	mockEconomy := &MockEconomyRepository{}
	svc := NewService(mockFarms, mockCatalog, mockEconomy)
	ctx := context.Background()

	mockFarms.On("GetFarmByUserID", ctx, "nobody").Return(nil, domain.ErrFarmNotFound)

	_, err := svc.ResolveFarmID(ctx, "nobody")

	assert.ErrorIs(t, err, domain.ErrFarmNotFound)
}

func TestListInventory_PassesThrough(t *testing.T) {
	mockFarms := &MockFarmRepository{}
	mockCatalog := &MockCatalog{}
	mockEconomy := &MockEconomyRepository{}
	svc := NewService(mockFarms, mockCatalog, mockEconomy)
	ctx := context.Background()

	items := []domain.InventoryItem{{CropTypeID: 1, CropName: "wheat", Quantity: 12}}
	mockEconomy.On("ListInventory", ctx, testFarmID).Return(items, nil)

	got, err := svc.ListInventory(ctx, testFarmID)

	require.NoError(t, err)
	assert.Equal(t, items, got)
}
