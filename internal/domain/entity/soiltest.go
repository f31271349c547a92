// Package entity contains the core business objects of the project.
package entity

// SoilTestStatus is the lifecycle state of a soil test.
// The machine is monotonic: processing may move to completed or failed,
// and nothing leaves either terminal state.
type SoilTestStatus string

const (
	// SoilTestProcessing means the sample has been submitted and results are pending.
	SoilTestProcessing SoilTestStatus = "processing"
	// SoilTestCompleted means nutrient readings and recommendations are available.
	SoilTestCompleted SoilTestStatus = "completed"
	// SoilTestFailed means the analysis could not be completed.
	SoilTestFailed SoilTestStatus = "failed"
)

// IsValid checks if the SoilTestStatus is a valid value.
func (s SoilTestStatus) IsValid() bool {
	switch s {
	case SoilTestProcessing, SoilTestCompleted, SoilTestFailed:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the status machine permits moving to next.
func (s SoilTestStatus) CanTransitionTo(next SoilTestStatus) bool {
	return s == SoilTestProcessing && (next == SoilTestCompleted || next == SoilTestFailed)
}

// NutrientLevel is a coarse reading for a soil macronutrient.
type NutrientLevel string

const (
	// NutrientLow indicates a deficient reading.
	NutrientLow NutrientLevel = "Low"
	// NutrientMedium indicates an adequate reading.
	NutrientMedium NutrientLevel = "Medium"
	// NutrientHigh indicates an abundant reading.
	NutrientHigh NutrientLevel = "High"
)

// IsValid checks if the NutrientLevel is a valid value.
func (l NutrientLevel) IsValid() bool {
	switch l {
	case NutrientLow, NutrientMedium, NutrientHigh:
		return true
	default:
		return false
	}
}

// SoilTest tracks one submitted soil sample. Nutrient readings and
// recommendations are populated only once the test completes.
type SoilTest struct {
	ID              int64          `json:"id"`
	Date            string         `json:"date"` // Submission date, formatted YYYY-MM-DD.
	Status          SoilTestStatus `json:"status"`
	PH              *float64       `json:"ph,omitempty"` // Soil pH, present only on completion.
	Nitrogen        NutrientLevel  `json:"nitrogen,omitempty"`
	Phosphorus      NutrientLevel  `json:"phosphorus,omitempty"`
	Potassium       NutrientLevel  `json:"potassium,omitempty"`
	Recommendations []string       `json:"recommendations"` // Ordered advice list, empty until completion.
}

// SoilReport is the analysis result returned by a soil lab for one sample.
type SoilReport struct {
	PH              float64
	Nitrogen        NutrientLevel
	Phosphorus      NutrientLevel
	Potassium       NutrientLevel
	Recommendations []string
}
