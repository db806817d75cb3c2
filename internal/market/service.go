package market

import (
	"context"
	"fmt"
	"time"

	"github.com/harwood/farmcore/internal/domain"
	"github.com/harwood/farmcore/internal/event"
	"github.com/harwood/farmcore/internal/logger"
	"github.com/harwood/farmcore/internal/repository"
)

// PurchaseResult summarizes a bought-out listing.
type PurchaseResult struct {
	Listing    *domain.MarketListing `json:"listing"`
	Quantity   int                   `json:"quantity"`
	TotalPrice int                   `json:"total_price"`
	NewBalance int                   `json:"new_balance"`
}

// Service defines the player-to-player market business logic
type Service interface {
	// ListOpenListings returns open listings, newest first. A non-empty
	// visibleCropTypeIDs restricts the result to crop types the caller can
	// see; nil or empty returns every open listing.
	ListOpenListings(ctx context.Context, visibleCropTypeIDs []int) ([]domain.MarketListing, error)

	// CreateListing escrows inventory into a new listing. When the requested
	// quantity exceeds the held quantity it is clamped unless strict quantity
	// checking is enabled, in which case the call fails.
	CreateListing(ctx context.Context, sellerFarmID string, cropTypeID, quantity, unitPrice int) (*domain.MarketListing, error)

	// BuyListing purchases the listing's entire remaining quantity and
	// permanently closes it.
	BuyListing(ctx context.Context, buyerFarmID, listingID string) (*PurchaseResult, error)
}

type service struct {
	marketRepo  repository.Market
	catalogRepo repository.Catalog
	bus         event.Bus
	strictQty   bool
}

// NewService creates a new market service
func NewService(marketRepo repository.Market, catalogRepo repository.Catalog, bus event.Bus, strictQuantity bool) Service {
	return &service{
		marketRepo:  marketRepo,
		catalogRepo: catalogRepo,
		bus:         bus,
		strictQty:   strictQuantity,
	}
}

func (s *service) ListOpenListings(ctx context.Context, visibleCropTypeIDs []int) ([]domain.MarketListing, error) {
	return s.marketRepo.ListOpenListings(ctx, visibleCropTypeIDs)
}

func (s *service) CreateListing(ctx context.Context, sellerFarmID string, cropTypeID, quantity, unitPrice int) (*domain.MarketListing, error) {
	log := logger.FromContext(ctx)
	log.Info("CreateListing called", "farmID", sellerFarmID, "cropTypeID", cropTypeID,
		"quantity", quantity, "unitPrice", unitPrice)

	if quantity <= 0 || quantity > domain.MaxTransactionQuantity {
		return nil, fmt.Errorf("%w: quantity must be between 1 and %d", domain.ErrInvalidInput, domain.MaxTransactionQuantity)
	}
	if unitPrice <= 0 {
		return nil, fmt.Errorf("%w: unit price must be positive", domain.ErrInvalidInput)
	}

	crop, err := s.catalogRepo.GetCropType(ctx, cropTypeID)
	if err != nil {
		return nil, err
	}

	tx, err := s.marketRepo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	if _, err := tx.GetFarmForUpdate(ctx, sellerFarmID); err != nil {
		return nil, err
	}

	held, err := tx.GetInventoryForUpdate(ctx, sellerFarmID, cropTypeID)
	if err != nil {
		return nil, err
	}
	if held == 0 {
		return nil, fmt.Errorf("%w: no %s held", domain.ErrInsufficientInventory, crop.Name)
	}
	if quantity > held {
		if s.strictQty {
			return nil, fmt.Errorf("%w: have %d %s, requested %d", domain.ErrInsufficientInventory, held, crop.Name, quantity)
		}
		// Over-requests sell what is available instead of failing.
		quantity = held
	}

	// Escrow: the inventory leaves the seller the moment the listing is
	// posted, so the listed quantity can never be double-sold.
	if err := tx.UpsertInventory(ctx, sellerFarmID, cropTypeID, held-quantity); err != nil {
		return nil, err
	}

	listing := &domain.MarketListing{
		SellerFarmID: sellerFarmID,
		CropTypeID:   cropTypeID,
		Quantity:     quantity,
		UnitPrice:    unitPrice,
		Active:       true,
		CropName:     crop.Name,
	}
	if err := tx.CreateListing(ctx, listing); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	if s.bus != nil {
		_ = s.bus.Publish(ctx, event.Event{
			Version: event.EventSchemaVersion,
			Type:    event.ListingCreated,
			Payload: domain.ListingCreatedPayload{
				ListingID:    listing.ID,
				SellerFarmID: sellerFarmID,
				CropName:     crop.Name,
				Quantity:     quantity,
				UnitPrice:    unitPrice,
				Timestamp:    time.Now().Unix(),
			},
		})
	}

	log.Info("Listing created", "farmID", sellerFarmID, "listingID", listing.ID,
		"crop", crop.Name, "quantity", quantity)
	return listing, nil
}

func (s *service) BuyListing(ctx context.Context, buyerFarmID, listingID string) (*PurchaseResult, error) {
	log := logger.FromContext(ctx)
	log.Info("BuyListing called", "farmID", buyerFarmID, "listingID", listingID)

	tx, err := s.marketRepo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	// The listing row lock comes first: a second concurrent buyer blocks
	// here and then observes the closed listing.
	listing, err := tx.GetListingForUpdate(ctx, listingID)
	if err != nil {
		return nil, err
	}

	if listing.SellerFarmID == buyerFarmID {
		return nil, fmt.Errorf("%w: cannot buy own listing", domain.ErrSelfTrade)
	}
	if !listing.Open() {
		return nil, fmt.Errorf("%w: listing %s", domain.ErrListingClosed, listingID)
	}

	buyer, err := tx.GetFarmForUpdate(ctx, buyerFarmID)
	if err != nil {
		return nil, err
	}

	totalPrice := listing.TotalPrice()
	if buyer.Balance < totalPrice {
		return nil, fmt.Errorf("%w: need %d coins, have %d", domain.ErrInsufficientFunds, totalPrice, buyer.Balance)
	}

	seller, err := tx.GetFarmForUpdate(ctx, listing.SellerFarmID)
	if err != nil {
		return nil, err
	}

	quantity := listing.Quantity
	held, err := tx.GetInventoryForUpdate(ctx, buyerFarmID, listing.CropTypeID)
	if err != nil {
		return nil, err
	}

	if err := tx.UpdateFarmBalance(ctx, buyerFarmID, buyer.Balance-totalPrice); err != nil {
		return nil, err
	}
	if err := tx.UpdateFarmBalance(ctx, listing.SellerFarmID, seller.Balance+totalPrice); err != nil {
		return nil, err
	}
	if err := tx.UpsertInventory(ctx, buyerFarmID, listing.CropTypeID, held+quantity); err != nil {
		return nil, err
	}
	if err := tx.CloseListing(ctx, listingID); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	cropName := listing.CropName
	if cropName == "" {
		if crop, err := s.catalogRepo.GetCropType(ctx, listing.CropTypeID); err == nil {
			cropName = crop.Name
		}
	}
	if s.bus != nil {
		_ = s.bus.Publish(ctx, event.NewListingSoldEvent(listing, buyerFarmID, cropName, quantity, totalPrice))
	}

	listing.Quantity = 0
	listing.Active = false

	log.Info("Listing bought", "buyerFarmID", buyerFarmID, "listingID", listingID,
		"quantity", quantity, "totalPrice", totalPrice)
	return &PurchaseResult{
		Listing:    listing,
		Quantity:   quantity,
		TotalPrice: totalPrice,
		NewBalance: buyer.Balance - totalPrice,
	}, nil
}
