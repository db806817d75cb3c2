package domain

import "time"

// CropType is immutable catalog reference data describing a plantable and
// sellable commodity.
type CropType struct {
	ID              int    `json:"crop_type_id"`
	Name            string `json:"name"`
	GrowTimeSeconds int    `json:"grow_time_seconds"`
	SeedPrice       int    `json:"seed_price"`
	BasePrice       int    `json:"base_price"`
}

// GrowTime returns the growth duration of the crop.
func (c CropType) GrowTime() time.Duration {
	return time.Duration(c.GrowTimeSeconds) * time.Second
}

// PlantableCrops returns the crop IDs the farm may plant given its unlocked
// set. An empty unlocked set means every crop in the catalog is plantable
// (see AllCropsWhenNoneUnlocked).
func PlantableCrops(unlocked []int, catalog []CropType) map[int]bool {
	plantable := make(map[int]bool, len(catalog))
	if len(unlocked) == 0 && AllCropsWhenNoneUnlocked {
		for _, c := range catalog {
			plantable[c.ID] = true
		}
		return plantable
	}
	for _, id := range unlocked {
		plantable[id] = true
	}
	return plantable
}
