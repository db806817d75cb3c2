package handler

import (
	"net/http"

	"github.com/harwood/farmcore/internal/farm"
	"github.com/harwood/farmcore/internal/logger"
)

// FarmHandler handles farm-related HTTP requests
type FarmHandler struct {
	farmSvc farm.Service
}

// NewFarmHandler creates a new farm handler
func NewFarmHandler(farmSvc farm.Service) *FarmHandler {
	return &FarmHandler{farmSvc: farmSvc}
}

// GetFarm returns the caller's farm, provisioning one on first contact.
func (h *FarmHandler) GetFarm(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}
	name := GetOptionalQueryParam(r, "name", userID)

	farmEntity, err := h.farmSvc.GetOrCreateFarm(r.Context(), userID, name)
	if err != nil {
		respondServiceError(w, r, "Get farm", err)
		return
	}

	log.Info("Farm resolved", "userID", userID, "farmID", farmEntity.ID)
	respondJSON(w, http.StatusOK, farmEntity)
}

// ListCrops returns the crop type catalog.
func (h *FarmHandler) ListCrops(w http.ResponseWriter, r *http.Request) {
	crops, err := h.farmSvc.ListCrops(r.Context())
	if err != nil {
		respondServiceError(w, r, "List crops", err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: crops})
}
