package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPlot_Ready(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	readyAt := now.Add(30 * time.Second)
	cropID := 1

	tests := []struct {
		name string
		plot Plot
		at   time.Time
		want bool
	}{
		{"empty plot", Plot{}, now, false},
		{"still growing", Plot{CropTypeID: &cropID, HarvestReadyAt: &readyAt}, now, false},
		{"exactly at readiness", Plot{CropTypeID: &cropID, HarvestReadyAt: &readyAt}, readyAt, true},
		{"past readiness", Plot{CropTypeID: &cropID, HarvestReadyAt: &readyAt}, readyAt.Add(time.Hour), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.plot.Ready(tt.at))
		})
	}
}

func TestPlot_ClearResetsAllCropFields(t *testing.T) {
	now := time.Now()
	cropID := 2
	plot := Plot{ID: 7, X: 1, Y: 2, CropTypeID: &cropID, PlantedAt: &now, HarvestReadyAt: &now}

	plot.Clear()

	assert.False(t, plot.Planted())
	assert.Nil(t, plot.CropTypeID)
	assert.Nil(t, plot.PlantedAt)
	assert.Nil(t, plot.HarvestReadyAt)
	assert.Equal(t, 7, plot.ID, "identity fields survive a clear")
}

func TestContract_Lifecycle(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	expiresAt := now.Add(5 * time.Minute)
	completedAt := now.Add(time.Minute)

	open := Contract{ExpiresAt: expiresAt}
	assert.True(t, open.Active(now))
	assert.False(t, open.Expired(now))

	// Deadlines are exclusive: a contract expires the instant now reaches
	// ExpiresAt.
	assert.True(t, open.Expired(expiresAt))
	assert.False(t, open.Active(expiresAt))

	done := Contract{ExpiresAt: expiresAt, CompletedAt: &completedAt}
	assert.True(t, done.Completed())
	assert.False(t, done.Active(now))
}

func TestContract_IsUnlock(t *testing.T) {
	target := 4
	assert.True(t, (&Contract{UnlocksCropTypeID: &target}).IsUnlock())
	assert.False(t, (&Contract{}).IsUnlock())
}

func TestFarm_HasUnlocked(t *testing.T) {
	farm := Farm{UnlockedCrops: []int{1, 3}}
	assert.True(t, farm.HasUnlocked(1))
	assert.True(t, farm.HasUnlocked(3))
	assert.False(t, farm.HasUnlocked(2))
}

func TestFarm_EmptyUnlockSetAllowsEverything(t *testing.T) {
	farm := Farm{}
	assert.True(t, farm.HasUnlocked(1))
	assert.True(t, farm.HasUnlocked(99))
}

func TestPlantableCrops(t *testing.T) {
	catalog := []CropType{{ID: 1}, {ID: 2}, {ID: 3}}

	all := PlantableCrops(nil, catalog)
	assert.Len(t, all, 3, "no unlock rows means the whole catalog is plantable")

	some := PlantableCrops([]int{2}, catalog)
	assert.True(t, some[2])
	assert.False(t, some[1])
}

func TestMarketListing_Open(t *testing.T) {
	assert.True(t, (&MarketListing{Active: true, Quantity: 1}).Open())
	assert.False(t, (&MarketListing{Active: false, Quantity: 1}).Open())
	assert.False(t, (&MarketListing{Active: true, Quantity: 0}).Open())
}

func TestMarketListing_TotalPrice(t *testing.T) {
	listing := MarketListing{Quantity: 6, UnitPrice: 7}
	assert.Equal(t, 42, listing.TotalPrice())
}

func TestCropType_GrowTime(t *testing.T) {
	crop := CropType{GrowTimeSeconds: 90}
	assert.Equal(t, 90*time.Second, crop.GrowTime())
}

func TestNewRand_Deterministic(t *testing.T) {
	a := NewRand(42)
	b := NewRand(42)

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Intn(100), b.Intn(100))
	}
}
