package handler

import (
	"net/http"

	"github.com/harwood/farmcore/internal/contract"
	"github.com/harwood/farmcore/internal/farm"
	"github.com/harwood/farmcore/internal/logger"
)

// CompleteContractRequest represents the request to fulfil a delivery
// contract
type CompleteContractRequest struct {
	UserID     string `json:"user_id" validate:"required,max=100"`
	ContractID string `json:"contract_id" validate:"required,uuid"`
}

// ContractHandler handles contract HTTP requests
type ContractHandler struct {
	contractSvc contract.Service
	farmSvc     farm.Service
}

// NewContractHandler creates a new contract handler
func NewContractHandler(contractSvc contract.Service, farmSvc farm.Service) *ContractHandler {
	return &ContractHandler{
		contractSvc: contractSvc,
		farmSvc:     farmSvc,
	}
}

// ListContracts returns the caller's contract slate, rotating expired slots
// first.
func (h *ContractHandler) ListContracts(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	farmID, err := h.farmSvc.ResolveFarmID(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "List contracts", err)
		return
	}

	contracts, err := h.contractSvc.ListContracts(r.Context(), farmID)
	if err != nil {
		respondServiceError(w, r, "List contracts", err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: contracts})
}

// CompleteContract handles the contract completion endpoint
func (h *ContractHandler) CompleteContract(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req CompleteContractRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Complete contract"); err != nil {
		return
	}

	farmID, err := h.farmSvc.ResolveFarmID(r.Context(), req.UserID)
	if err != nil {
		respondServiceError(w, r, "Complete contract", err)
		return
	}

	result, err := h.contractSvc.CompleteContract(r.Context(), farmID, req.ContractID)
	if err != nil {
		respondServiceError(w, r, "Complete contract", err)
		return
	}

	log.Info("Contract completed", "userID", req.UserID, "contractID", req.ContractID,
		"reward", result.RewardCoins)
	respondJSON(w, http.StatusOK, DataResponse{
		Message: MsgContractCompletedSuccess,
		Data:    result,
	})
}
