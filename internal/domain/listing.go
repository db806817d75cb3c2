package domain

import "time"

// MarketListing is an offer of escrowed inventory for sale to other farms.
// The seller's inventory is debited when the listing is created, so the
// listed quantity can never be sold twice. Once the quantity reaches zero
// the listing is deactivated and never reused.
type MarketListing struct {
	ID           string    `json:"listing_id"`
	SellerFarmID string    `json:"seller_farm_id"`
	CropTypeID   int       `json:"crop_type_id"`
	Quantity     int       `json:"quantity"`
	UnitPrice    int       `json:"unit_price"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`

	// SellerName and CropName are populated on reads that join farms and
	// the catalog for display purposes.
	SellerName string `json:"seller_name,omitempty"`
	CropName   string `json:"crop_name,omitempty"`
}

// Open reports whether the listing can still be bought.
func (l *MarketListing) Open() bool {
	return l.Active && l.Quantity > 0
}

// TotalPrice is the cost of buying the entire remaining quantity.
func (l *MarketListing) TotalPrice() int {
	return l.Quantity * l.UnitPrice
}
