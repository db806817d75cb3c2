package handler

// Generic HTTP error messages for client responses. These intentionally do
// not expose internal error details. Both handlers and tests reference these
// constants to stay consistent.
const (
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	ErrMsgMissingQueryParam = "Missing %s query parameter"

	ErrMsgGetFarmFailed       = "Failed to get farm"
	ErrMsgListCropsFailed     = "Failed to list crop types"
	ErrMsgListPlotsFailed     = "Failed to list plots"
	ErrMsgPlantFailed         = "Failed to plant crop"
	ErrMsgHarvestFailed       = "Failed to harvest crop"
	ErrMsgListInventoryFailed = "Failed to get inventory"
	ErrMsgSellCropFailed      = "Failed to sell crop"
	ErrMsgListContractsFailed = "Failed to list contracts"
	ErrMsgCompleteFailed      = "Failed to complete contract"
	ErrMsgListListingsFailed  = "Failed to list market listings"
	ErrMsgCreateListingFailed = "Failed to create listing"
	ErrMsgBuyListingFailed    = "Failed to buy listing"
)

// Success messages for API responses
const (
	MsgCropPlantedSuccess       = "Crop planted successfully"
	MsgCropHarvestedSuccess     = "Crop harvested successfully"
	MsgCropSoldSuccess          = "Crop sold successfully"
	MsgContractCompletedSuccess = "Contract completed successfully"
	MsgListingCreatedSuccess    = "Listing created successfully"
	MsgListingBoughtSuccess     = "Listing purchased successfully"
)
