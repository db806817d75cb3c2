package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages.
const (
	// Not-found errors
	ErrMsgFarmNotFound     = "farm not found"
	ErrMsgCropNotFound     = "crop type not found"
	ErrMsgPlotNotFound     = "plot not found"
	ErrMsgContractNotFound = "contract not found"
	ErrMsgListingNotFound  = "listing not found"

	// Validation errors
	ErrMsgInvalidInput = "invalid input"

	// Plot state errors
	ErrMsgAlreadyPlanted = "plot already has a crop"
	ErrMsgNotReady       = "crop is not ready to harvest"

	// Contract state errors
	ErrMsgContractCompleted = "contract already completed"
	ErrMsgContractExpired   = "contract has expired"

	// Market state errors
	ErrMsgListingClosed = "listing is closed"
	ErrMsgSelfTrade     = "cannot buy your own listing"

	// Resource errors
	ErrMsgCropNotUnlocked       = "crop type is not unlocked"
	ErrMsgInsufficientFunds     = "insufficient funds"
	ErrMsgInsufficientInventory = "insufficient inventory"

	// Farm provisioning errors
	ErrMsgFarmExists = "farm already exists"

	// Database/System errors
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors.
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Not-found errors
	ErrFarmNotFound     = errors.New(ErrMsgFarmNotFound)
	ErrCropNotFound     = errors.New(ErrMsgCropNotFound)
	ErrPlotNotFound     = errors.New(ErrMsgPlotNotFound)
	ErrContractNotFound = errors.New(ErrMsgContractNotFound)
	ErrListingNotFound  = errors.New(ErrMsgListingNotFound)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// Plot state errors
	ErrAlreadyPlanted = errors.New(ErrMsgAlreadyPlanted)
	ErrNotReady       = errors.New(ErrMsgNotReady)

	// Contract state errors
	ErrContractCompleted = errors.New(ErrMsgContractCompleted)
	ErrContractExpired   = errors.New(ErrMsgContractExpired)

	// Market state errors
	ErrListingClosed = errors.New(ErrMsgListingClosed)
	ErrSelfTrade     = errors.New(ErrMsgSelfTrade)

	// Resource errors
	ErrCropNotUnlocked       = errors.New(ErrMsgCropNotUnlocked)
	ErrInsufficientFunds     = errors.New(ErrMsgInsufficientFunds)
	ErrInsufficientInventory = errors.New(ErrMsgInsufficientInventory)

	// Farm provisioning errors
	ErrFarmExists = errors.New(ErrMsgFarmExists)
)
