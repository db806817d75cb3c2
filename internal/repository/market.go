package repository

import (
	"context"

	"github.com/harwood/farmcore/internal/domain"
)

// Market defines the interface for market listing persistence
type Market interface {
	// ListOpenListings returns active listings with quantity > 0, newest
	// first, joined with seller and crop names. A non-empty
	// visibleCropTypeIDs restricts the result to those crop types.
	ListOpenListings(ctx context.Context, visibleCropTypeIDs []int) ([]domain.MarketListing, error)

	BeginTx(ctx context.Context) (MarketTx, error)
}

// MarketTx defines the interface for market transactions
type MarketTx interface {
	LedgerTx

	// GetListingForUpdate locks the listing row; the lock is the
	// linearization point for concurrent buyers.
	GetListingForUpdate(ctx context.Context, listingID string) (*domain.MarketListing, error)

	// CreateListing persists a new listing holding escrowed inventory.
	CreateListing(ctx context.Context, listing *domain.MarketListing) error

	// CloseListing sets the listing's quantity to zero and deactivates it.
	CloseListing(ctx context.Context, listingID string) error
}
