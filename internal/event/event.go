package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/harwood/farmcore/internal/domain"
)

// EventSchemaVersion is stamped on every event for forward compatibility.
const EventSchemaVersion = "1.0"

// Type represents the type of an event.
type Type string

// Event types emitted by the engine.
const (
	CropPlanted       Type = Type(domain.EventTypeCropPlanted)
	CropHarvested     Type = Type(domain.EventTypeCropHarvested)
	CropSold          Type = Type(domain.EventTypeCropSold)
	ContractCompleted Type = Type(domain.EventTypeContractCompleted)
	ListingCreated    Type = Type(domain.EventTypeListingCreated)
	ListingSold       Type = Type(domain.EventTypeListingSold)
)

// Event represents a generic event in the system.
type Event struct {
	Version string      `json:"version"`
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// NewCropHarvestedEvent creates an event for a successful harvest.
func NewCropHarvestedEvent(farmID string, plotID int, cropName string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CropHarvested,
		Payload: domain.CropHarvestedPayload{
			FarmID:    farmID,
			PlotID:    plotID,
			CropName:  cropName,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewContractCompletedEvent creates an event for a fulfilled contract.
// unlockedCrop is empty when the contract granted no unlock.
func NewContractCompletedEvent(c *domain.Contract, cropName, unlockedCrop string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ContractCompleted,
		Payload: domain.ContractCompletedPayload{
			FarmID:       c.FarmID,
			ContractID:   c.ID,
			CropName:     cropName,
			Quantity:     c.QuantityRequired,
			RewardCoins:  c.RewardCoins,
			UnlockedCrop: unlockedCrop,
			Timestamp:    time.Now().Unix(),
		},
	}
}

// NewListingSoldEvent creates an event for a bought-out market listing.
func NewListingSoldEvent(l *domain.MarketListing, buyerFarmID, cropName string, quantity, totalPrice int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ListingSold,
		Payload: domain.ListingSoldPayload{
			ListingID:    l.ID,
			SellerFarmID: l.SellerFarmID,
			BuyerFarmID:  buyerFarmID,
			CropName:     cropName,
			Quantity:     quantity,
			TotalPrice:   totalPrice,
			Timestamp:    time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event.
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus.
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the event Bus. Handlers run
// synchronously on the publishing goroutine.
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus.
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d handler(s) failed for event %s: %v", len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type.
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
