package entity

// CropStatus is the growth stage label shown on a planted crop card.
type CropStatus string

const (
	// CropGrowing means the crop is in its active growth phase.
	CropGrowing CropStatus = "Growing"
	// CropHarvestReady means the crop has matured and awaits harvest.
	CropHarvestReady CropStatus = "Harvest Ready"
	// CropDormant means the field is planted but out of season.
	CropDormant CropStatus = "Dormant"
)

// IsValid checks if the CropStatus is a valid value.
func (s CropStatus) IsValid() bool {
	switch s {
	case CropGrowing, CropHarvestReady, CropDormant:
		return true
	default:
		return false
	}
}

// Crop is one planted field record shown on the home screen. It is
// seeded reference data: no action mutates it.
type Crop struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	Planted         string     `json:"planted"` // Planting date, formatted YYYY-MM-DD.
	Area            string     `json:"area"`    // Free-form area label (e.g., "10 acres").
	Status          CropStatus `json:"status"`
	Progress        int        `json:"progress"` // Growth progress, 0 to 100.
	Variety         string     `json:"variety,omitempty"`
	ExpectedHarvest string     `json:"expectedHarvest,omitempty"`
}
