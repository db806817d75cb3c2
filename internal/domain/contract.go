package domain

import "time"

// Contract is a time-boxed delivery quest: deliver QuantityRequired units of
// the crop before ExpiresAt in exchange for RewardCoins and, rarely, a crop
// unlock.
type Contract struct {
	ID               string     `json:"contract_id"`
	FarmID           string     `json:"farm_id"`
	CropTypeID       int        `json:"crop_type_id"`
	QuantityRequired int        `json:"quantity_required"`
	RewardCoins      int        `json:"reward_coins"`
	CreatedAt        time.Time  `json:"created_at"`
	ExpiresAt        time.Time  `json:"expires_at"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`

	// UnlocksCropTypeID is set only on unlock contracts; completing one
	// grants the farm access to that crop type.
	UnlocksCropTypeID *int `json:"unlocks_crop_type_id,omitempty"`
}

// Completed reports whether the contract has been fulfilled.
func (c *Contract) Completed() bool {
	return c.CompletedAt != nil
}

// Expired reports whether the contract's deadline has passed at now.
func (c *Contract) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

// Active reports whether the contract can still be completed at now.
func (c *Contract) Active(now time.Time) bool {
	return !c.Completed() && !c.Expired(now)
}

// IsUnlock reports whether completing the contract grants a crop unlock.
func (c *Contract) IsUnlock() bool {
	return c.UnlocksCropTypeID != nil
}
