package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harwood/farmcore/internal/domain"
)

func TestMemoryBus_PublishDeliversToSubscriber(t *testing.T) {
	// ARRANGE
	bus := NewMemoryBus()
	var received []Event
	bus.Subscribe(CropPlanted, func(ctx context.Context, evt Event) error {
		received = append(received, evt)
		return nil
	})

	evt := Event{
		Version: EventSchemaVersion,
		Type:    CropPlanted,
		Payload: domain.CropPlantedPayload{FarmID: "farm-1", PlotID: 3, CropName: "wheat"},
	}

	// ACT
	err := bus.Publish(context.Background(), evt)

	// ASSERT
	require.NoError(t, err)
	require.Len(t, received, 1)
	assert.Equal(t, evt, received[0])
}

func TestMemoryBus_PublishWithNoSubscribersIsNoOp(t *testing.T) {
	bus := NewMemoryBus()

	err := bus.Publish(context.Background(), Event{Type: CropSold})

	assert.NoError(t, err)
}

func TestMemoryBus_MultipleHandlersAllRun(t *testing.T) {
	bus := NewMemoryBus()
	calls := 0
	for i := 0; i < 3; i++ {
		bus.Subscribe(ListingSold, func(ctx context.Context, evt Event) error {
			calls++
			return nil
		})
	}

	err := bus.Publish(context.Background(), Event{Type: ListingSold})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestMemoryBus_HandlerErrorsAggregate(t *testing.T) {
	bus := NewMemoryBus()
	bus.Subscribe(ContractCompleted, func(ctx context.Context, evt Event) error {
		return errors.New("boom")
	})
	ran := false
	bus.Subscribe(ContractCompleted, func(ctx context.Context, evt Event) error {
		ran = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{Type: ContractCompleted})

	assert.Error(t, err)
	assert.True(t, ran, "a failing handler does not stop later handlers")
}

func TestMemoryBus_SubscriberOnlySeesItsType(t *testing.T) {
	bus := NewMemoryBus()
	var seen []Type
	bus.Subscribe(CropHarvested, func(ctx context.Context, evt Event) error {
		seen = append(seen, evt.Type)
		return nil
	})

	require.NoError(t, bus.Publish(context.Background(), Event{Type: CropPlanted}))
	require.NoError(t, bus.Publish(context.Background(), Event{Type: CropHarvested}))

	assert.Equal(t, []Type{CropHarvested}, seen)
}

func TestNewListingSoldEvent_PopulatesPayload(t *testing.T) {
	listing := &domain.MarketListing{ID: "l-1", SellerFarmID: "farm-1"}

	evt := NewListingSoldEvent(listing, "farm-2", "corn", 4, 28)

	assert.Equal(t, ListingSold, evt.Type)
	payload, ok := evt.Payload.(domain.ListingSoldPayload)
	require.True(t, ok)
	assert.Equal(t, "l-1", payload.ListingID)
	assert.Equal(t, "farm-2", payload.BuyerFarmID)
	assert.Equal(t, 28, payload.TotalPrice)
	assert.NotZero(t, payload.Timestamp)
}
