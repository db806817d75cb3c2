package domain

import "time"

// Farm is a player's persistent game state: coin balance plus the plots,
// inventory, contracts and listings that hang off it.
type Farm struct {
	ID        string    `json:"farm_id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Balance   int       `json:"balance"`
	CreatedAt time.Time `json:"created_at"`

	// UnlockedCrops holds the crop type IDs the farm has unlocked. An empty
	// set means no unlock restriction applies (AllCropsWhenNoneUnlocked).
	UnlockedCrops []int `json:"unlocked_crops"`
}

// HasUnlocked reports whether the farm may plant the given crop type.
func (f *Farm) HasUnlocked(cropTypeID int) bool {
	if len(f.UnlockedCrops) == 0 {
		return AllCropsWhenNoneUnlocked
	}
	for _, id := range f.UnlockedCrops {
		if id == cropTypeID {
			return true
		}
	}
	return false
}
