package domain

// InventoryItem is a farm's held quantity of one crop type. A missing row
// means quantity zero; stored quantities are never negative.
type InventoryItem struct {
	CropTypeID int `json:"crop_type_id"`
	Quantity   int `json:"quantity"`

	// CropName is populated on reads that join the catalog; it is not part
	// of the stored row.
	CropName string `json:"crop_name,omitempty"`
}

// InventoryQuantity returns the held quantity of cropTypeID in items.
func InventoryQuantity(items []InventoryItem, cropTypeID int) int {
	for _, it := range items {
		if it.CropTypeID == cropTypeID {
			return it.Quantity
		}
	}
	return 0
}
