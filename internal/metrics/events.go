package metrics

import (
	"context"

	"github.com/harwood/farmcore/internal/domain"
	"github.com/harwood/farmcore/internal/event"
	"github.com/harwood/farmcore/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.CropPlanted,
		event.CropHarvested,
		event.CropSold,
		event.ContractCompleted,
		event.ListingCreated,
		event.ListingSold,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch payload := evt.Payload.(type) {
	case domain.CropPlantedPayload:
		CropsPlanted.WithLabelValues(payload.CropName).Inc()

	case domain.CropHarvestedPayload:
		CropsHarvested.WithLabelValues(payload.CropName).Inc()

	case domain.CropSoldPayload:
		CropsSold.WithLabelValues(payload.CropName).Add(float64(payload.Quantity))
		CoinsEarned.Add(float64(payload.CoinsPaid))

	case domain.ContractCompletedPayload:
		ContractsCompleted.WithLabelValues(payload.CropName).Inc()
		CoinsEarned.Add(float64(payload.RewardCoins))

	case domain.ListingCreatedPayload:
		ListingsCreated.WithLabelValues(payload.CropName).Inc()

	case domain.ListingSoldPayload:
		ListingsSold.WithLabelValues(payload.CropName).Inc()
		CoinsEarned.Add(float64(payload.TotalPrice))

	default:
		log.Debug(LogMsgUnexpectedPayload, "type", evt.Type)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
