package domain

import "time"

// Plot is one grid cell of a farm, capable of holding a single growing crop.
// CropTypeID, PlantedAt and HarvestReadyAt are either all nil (empty plot)
// or all set (growing crop).
type Plot struct {
	ID             int        `json:"plot_id"`
	FarmID         string     `json:"farm_id"`
	X              int        `json:"x"`
	Y              int        `json:"y"`
	CropTypeID     *int       `json:"crop_type_id,omitempty"`
	PlantedAt      *time.Time `json:"planted_at,omitempty"`
	HarvestReadyAt *time.Time `json:"harvest_ready_at,omitempty"`
}

// Planted reports whether the plot currently holds a crop.
func (p *Plot) Planted() bool {
	return p.CropTypeID != nil
}

// Ready reports whether the plot holds a crop that can be harvested at now.
func (p *Plot) Ready(now time.Time) bool {
	return p.HarvestReadyAt != nil && !now.Before(*p.HarvestReadyAt)
}

// Clear resets the plot to its empty state after a harvest.
func (p *Plot) Clear() {
	p.CropTypeID = nil
	p.PlantedAt = nil
	p.HarvestReadyAt = nil
}
