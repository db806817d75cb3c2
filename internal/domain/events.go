package domain

// Event type names shared between publishers and subscribers.
const (
	EventTypeCropPlanted       = "crop.planted"
	EventTypeCropHarvested     = "crop.harvested"
	EventTypeCropSold          = "crop.sold"
	EventTypeContractCompleted = "contract.completed"
	EventTypeListingCreated    = "listing.created"
	EventTypeListingSold       = "listing.sold"
)

// CropPlantedPayload is published when a crop is planted on a plot.
type CropPlantedPayload struct {
	FarmID    string `json:"farm_id"`
	PlotID    int    `json:"plot_id"`
	CropName  string `json:"crop_name"`
	SeedPrice int    `json:"seed_price"`
	Timestamp int64  `json:"timestamp"`
}

// CropHarvestedPayload is published when a plot is harvested.
type CropHarvestedPayload struct {
	FarmID    string `json:"farm_id"`
	PlotID    int    `json:"plot_id"`
	CropName  string `json:"crop_name"`
	Timestamp int64  `json:"timestamp"`
}

// CropSoldPayload is published on an NPC sale.
type CropSoldPayload struct {
	FarmID    string `json:"farm_id"`
	CropName  string `json:"crop_name"`
	Quantity  int    `json:"quantity"`
	CoinsPaid int    `json:"coins_paid"`
	Timestamp int64  `json:"timestamp"`
}

// ContractCompletedPayload is published when a delivery contract is fulfilled.
type ContractCompletedPayload struct {
	FarmID       string `json:"farm_id"`
	ContractID   string `json:"contract_id"`
	CropName     string `json:"crop_name"`
	Quantity     int    `json:"quantity"`
	RewardCoins  int    `json:"reward_coins"`
	UnlockedCrop string `json:"unlocked_crop,omitempty"`
	Timestamp    int64  `json:"timestamp"`
}

// ListingCreatedPayload is published when a market listing is posted.
type ListingCreatedPayload struct {
	ListingID    string `json:"listing_id"`
	SellerFarmID string `json:"seller_farm_id"`
	CropName     string `json:"crop_name"`
	Quantity     int    `json:"quantity"`
	UnitPrice    int    `json:"unit_price"`
	Timestamp    int64  `json:"timestamp"`
}

// ListingSoldPayload is published when a market listing is bought out.
type ListingSoldPayload struct {
	ListingID    string `json:"listing_id"`
	SellerFarmID string `json:"seller_farm_id"`
	BuyerFarmID  string `json:"buyer_farm_id"`
	CropName     string `json:"crop_name"`
	Quantity     int    `json:"quantity"`
	TotalPrice   int    `json:"total_price"`
	Timestamp    int64  `json:"timestamp"`
}
