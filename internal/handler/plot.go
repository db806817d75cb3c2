package handler

import (
	"net/http"

	"github.com/harwood/farmcore/internal/farm"
	"github.com/harwood/farmcore/internal/logger"
	"github.com/harwood/farmcore/internal/plot"
)

// PlantRequest represents the request to plant a crop on a plot
type PlantRequest struct {
	UserID     string `json:"user_id" validate:"required,max=100"`
	PlotID     int    `json:"plot_id" validate:"gt=0"`
	CropTypeID int    `json:"crop_type_id" validate:"gt=0"`
}

// HarvestRequest represents the request to harvest a ready plot
type HarvestRequest struct {
	UserID string `json:"user_id" validate:"required,max=100"`
	PlotID int    `json:"plot_id" validate:"gt=0"`
}

// PlotHandler handles plot lifecycle HTTP requests
type PlotHandler struct {
	plotSvc plot.Service
	farmSvc farm.Service
}

// NewPlotHandler creates a new plot handler
func NewPlotHandler(plotSvc plot.Service, farmSvc farm.Service) *PlotHandler {
	return &PlotHandler{
		plotSvc: plotSvc,
		farmSvc: farmSvc,
	}
}

// ListPlots returns the caller's plot grid.
func (h *PlotHandler) ListPlots(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	farmID, err := h.farmSvc.ResolveFarmID(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "List plots", err)
		return
	}

	plots, err := h.plotSvc.ListPlots(r.Context(), farmID)
	if err != nil {
		respondServiceError(w, r, "List plots", err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: plots})
}

// Plant handles the plant endpoint
func (h *PlotHandler) Plant(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req PlantRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Plant"); err != nil {
		return
	}

	farmID, err := h.farmSvc.ResolveFarmID(r.Context(), req.UserID)
	if err != nil {
		respondServiceError(w, r, "Plant", err)
		return
	}

	planted, err := h.plotSvc.Plant(r.Context(), farmID, req.PlotID, req.CropTypeID)
	if err != nil {
		respondServiceError(w, r, "Plant", err)
		return
	}

	log.Info("Plant successful", "userID", req.UserID, "plotID", req.PlotID)
	respondJSON(w, http.StatusOK, DataResponse{
		Message: MsgCropPlantedSuccess,
		Data:    planted,
	})
}

// Harvest handles the harvest endpoint
func (h *PlotHandler) Harvest(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req HarvestRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Harvest"); err != nil {
		return
	}

	farmID, err := h.farmSvc.ResolveFarmID(r.Context(), req.UserID)
	if err != nil {
		respondServiceError(w, r, "Harvest", err)
		return
	}

	cleared, err := h.plotSvc.Harvest(r.Context(), farmID, req.PlotID)
	if err != nil {
		respondServiceError(w, r, "Harvest", err)
		return
	}

	log.Info("Harvest successful", "userID", req.UserID, "plotID", req.PlotID)
	respondJSON(w, http.StatusOK, DataResponse{
		Message: MsgCropHarvestedSuccess,
		Data:    cleared,
	})
}
