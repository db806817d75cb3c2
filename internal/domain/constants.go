package domain

import "time"

// Contract generation tuning.
const (
	// DesiredContractCount is the number of unexpired contracts a farm
	// should have after rotation.
	DesiredContractCount = 3

	// ContractDuration is how long a generated contract batch stays open.
	ContractDuration = 5 * time.Minute

	// ContractMinQuantity and ContractMaxQuantity bound the uniform random
	// delivery quantity of a generated contract (inclusive).
	ContractMinQuantity = 5
	ContractMaxQuantity = 20

	// UnlockContractChance is the probability that an eligible generated
	// contract carries a crop unlock reward.
	UnlockContractChance = 1.0 / 3.0
)

// Farm provisioning defaults.
const (
	// DefaultGridSize is the side length of a new farm's plot grid.
	DefaultGridSize = 5

	// StartingBalance is the coin balance of a newly provisioned farm.
	StartingBalance = 100

	// StarterCropName is unlocked for new farms when present in the catalog.
	StarterCropName = "wheat"
)

// MaxTransactionQuantity caps quantities accepted by sell and listing
// operations to guard against accidental huge requests.
const MaxTransactionQuantity = 10000

// AllCropsWhenNoneUnlocked is a legacy compatibility rule: a farm whose
// unlocked-crop set is empty may plant every crop in the catalog. Farms
// created before crop unlocks existed have no unlock rows, and they must
// keep playing as before.
const AllCropsWhenNoneUnlocked = true
