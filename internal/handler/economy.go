package handler

import (
	"net/http"

	"github.com/harwood/farmcore/internal/economy"
	"github.com/harwood/farmcore/internal/farm"
	"github.com/harwood/farmcore/internal/logger"
)

// SellCropRequest represents the request to sell crops to the NPC buyer
type SellCropRequest struct {
	UserID     string `json:"user_id" validate:"required,max=100"`
	CropTypeID int    `json:"crop_type_id" validate:"gt=0"`
	Quantity   int    `json:"quantity" validate:"gt=0"`
}

// EconomyHandler handles inventory and NPC sale HTTP requests
type EconomyHandler struct {
	economySvc economy.Service
	farmSvc    farm.Service
}

// NewEconomyHandler creates a new economy handler
func NewEconomyHandler(economySvc economy.Service, farmSvc farm.Service) *EconomyHandler {
	return &EconomyHandler{
		economySvc: economySvc,
		farmSvc:    farmSvc,
	}
}

// ListInventory returns the caller's harvested crop holdings.
func (h *EconomyHandler) ListInventory(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	farmID, err := h.farmSvc.ResolveFarmID(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "List inventory", err)
		return
	}

	items, err := h.economySvc.ListInventory(r.Context(), farmID)
	if err != nil {
		respondServiceError(w, r, "List inventory", err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: items})
}

// SellCrop handles the NPC sale endpoint
func (h *EconomyHandler) SellCrop(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req SellCropRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Sell crop"); err != nil {
		return
	}

	farmID, err := h.farmSvc.ResolveFarmID(r.Context(), req.UserID)
	if err != nil {
		respondServiceError(w, r, "Sell crop", err)
		return
	}

	result, err := h.economySvc.SellCrop(r.Context(), farmID, req.CropTypeID, req.Quantity)
	if err != nil {
		respondServiceError(w, r, "Sell crop", err)
		return
	}

	log.Info("Sell successful", "userID", req.UserID, "crop", result.CropName,
		"quantity", result.Quantity, "coinsPaid", result.CoinsPaid)
	respondJSON(w, http.StatusOK, DataResponse{
		Message: MsgCropSoldSuccess,
		Data:    result,
	})
}
