package handler

import (
	"net/http"
	"sort"

	"github.com/harwood/farmcore/internal/domain"
	"github.com/harwood/farmcore/internal/farm"
	"github.com/harwood/farmcore/internal/logger"
	"github.com/harwood/farmcore/internal/market"
)

// CreateListingRequest represents the request to post a market listing
type CreateListingRequest struct {
	UserID     string `json:"user_id" validate:"required,max=100"`
	CropTypeID int    `json:"crop_type_id" validate:"gt=0"`
	Quantity   int    `json:"quantity" validate:"gt=0"`
	UnitPrice  int    `json:"unit_price" validate:"gt=0"`
}

// BuyListingRequest represents the request to buy out a market listing
type BuyListingRequest struct {
	UserID    string `json:"user_id" validate:"required,max=100"`
	ListingID string `json:"listing_id" validate:"required,uuid"`
}

// MarketHandler handles market HTTP requests
type MarketHandler struct {
	marketSvc market.Service
	farmSvc   farm.Service
}

// NewMarketHandler creates a new market handler
func NewMarketHandler(marketSvc market.Service, farmSvc farm.Service) *MarketHandler {
	return &MarketHandler{
		marketSvc: marketSvc,
		farmSvc:   farmSvc,
	}
}

// ListOpenListings returns open market listings. With a user_id query
// parameter the result is restricted to crop types visible to that user's
// farm; without one every open listing is returned.
func (h *MarketHandler) ListOpenListings(w http.ResponseWriter, r *http.Request) {
	var visible []int
	if userID := r.URL.Query().Get("user_id"); userID != "" {
		ids, err := h.visibleCropTypeIDs(r, userID)
		if err != nil {
			respondServiceError(w, r, "List listings", err)
			return
		}
		visible = ids
	}

	listings, err := h.marketSvc.ListOpenListings(r.Context(), visible)
	if err != nil {
		respondServiceError(w, r, "List listings", err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: listings})
}

// visibleCropTypeIDs resolves the crop types the user's farm can see, from
// its unlocked set and the catalog.
func (h *MarketHandler) visibleCropTypeIDs(r *http.Request, userID string) ([]int, error) {
	userFarm, err := h.farmSvc.GetFarm(r.Context(), userID)
	if err != nil {
		return nil, err
	}
	catalog, err := h.farmSvc.ListCrops(r.Context())
	if err != nil {
		return nil, err
	}

	plantable := domain.PlantableCrops(userFarm.UnlockedCrops, catalog)
	ids := make([]int, 0, len(plantable))
	for id := range plantable {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids, nil
}

// CreateListing handles the listing creation endpoint
func (h *MarketHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req CreateListingRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create listing"); err != nil {
		return
	}

	farmID, err := h.farmSvc.ResolveFarmID(r.Context(), req.UserID)
	if err != nil {
		respondServiceError(w, r, "Create listing", err)
		return
	}

	listing, err := h.marketSvc.CreateListing(r.Context(), farmID, req.CropTypeID, req.Quantity, req.UnitPrice)
	if err != nil {
		respondServiceError(w, r, "Create listing", err)
		return
	}

	log.Info("Listing created", "userID", req.UserID, "listingID", listing.ID)
	respondJSON(w, http.StatusCreated, DataResponse{
		Message: MsgListingCreatedSuccess,
		Data:    listing,
	})
}

// BuyListing handles the listing purchase endpoint
func (h *MarketHandler) BuyListing(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req BuyListingRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Buy listing"); err != nil {
		return
	}

	farmID, err := h.farmSvc.ResolveFarmID(r.Context(), req.UserID)
	if err != nil {
		respondServiceError(w, r, "Buy listing", err)
		return
	}

	result, err := h.marketSvc.BuyListing(r.Context(), farmID, req.ListingID)
	if err != nil {
		respondServiceError(w, r, "Buy listing", err)
		return
	}

	log.Info("Listing purchased", "userID", req.UserID, "listingID", req.ListingID,
		"totalPrice", result.TotalPrice)
	respondJSON(w, http.StatusOK, DataResponse{
		Message: MsgListingBoughtSuccess,
		Data:    result,
	})
}
