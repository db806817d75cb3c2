package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/harwood/farmcore/internal/domain"
	"github.com/harwood/farmcore/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Encode to a pooled buffer first so a marshal failure never produces a
	// half-written body.
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes a mapped error
// response.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())
	log.Error(opName+" failed", "error", err)

	status, userMsg := mapServiceErrorToUserMessage(err)
	respondError(w, status, userMsg)
}

// User-facing error messages for service errors. These are derived from
// domain errors and kept stable so clients can match on them.
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidInputError   = "Invalid request. Please check your inputs."
	ErrMsgFarmNotFoundError   = "Farm not found"
	ErrMsgCropNotFoundError   = "Crop type not found"
	ErrMsgPlotNotFoundError   = "Plot not found"
	ErrMsgContractNotFoundErr = "Contract not found"
	ErrMsgListingNotFoundErr  = "Listing not found"

	ErrMsgAlreadyPlantedError   = "That plot already has a crop growing"
	ErrMsgNotReadyError         = "That crop is not ready to harvest yet"
	ErrMsgContractCompletedErr  = "That contract is already completed"
	ErrMsgContractExpiredError  = "That contract has expired"
	ErrMsgListingClosedError    = "That listing is no longer available"
	ErrMsgSelfTradeError        = "You cannot buy your own listing"
	ErrMsgCropNotUnlockedError  = "You have not unlocked that crop yet"
	ErrMsgNotEnoughCoinsError   = "Not enough coins"
	ErrMsgNotEnoughCropsError   = "Not enough crops in your inventory"
	ErrMsgFarmAlreadyExistsErr  = "Farm already exists for that user"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses via errors.Is on the sentinel chain.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrFarmNotFound):
		return http.StatusNotFound, ErrMsgFarmNotFoundError
	case errors.Is(err, domain.ErrCropNotFound):
		return http.StatusNotFound, ErrMsgCropNotFoundError
	case errors.Is(err, domain.ErrPlotNotFound):
		return http.StatusNotFound, ErrMsgPlotNotFoundError
	case errors.Is(err, domain.ErrContractNotFound):
		return http.StatusNotFound, ErrMsgContractNotFoundErr
	case errors.Is(err, domain.ErrListingNotFound):
		return http.StatusNotFound, ErrMsgListingNotFoundErr
	case errors.Is(err, domain.ErrAlreadyPlanted):
		return http.StatusConflict, ErrMsgAlreadyPlantedError
	case errors.Is(err, domain.ErrNotReady):
		return http.StatusConflict, ErrMsgNotReadyError
	case errors.Is(err, domain.ErrContractCompleted):
		return http.StatusConflict, ErrMsgContractCompletedErr
	case errors.Is(err, domain.ErrContractExpired):
		return http.StatusConflict, ErrMsgContractExpiredError
	case errors.Is(err, domain.ErrListingClosed):
		return http.StatusConflict, ErrMsgListingClosedError
	case errors.Is(err, domain.ErrSelfTrade):
		return http.StatusConflict, ErrMsgSelfTradeError
	case errors.Is(err, domain.ErrCropNotUnlocked):
		return http.StatusForbidden, ErrMsgCropNotUnlockedError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughCoinsError
	case errors.Is(err, domain.ErrInsufficientInventory):
		return http.StatusBadRequest, ErrMsgNotEnoughCropsError
	case errors.Is(err, domain.ErrFarmExists):
		return http.StatusConflict, ErrMsgFarmAlreadyExistsErr
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
