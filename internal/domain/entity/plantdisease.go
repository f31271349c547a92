// Package entity contains the core business objects of the project.
package entity

// DiseaseStatus is the lifecycle state of a plant disease record.
//
// Legal transitions:
//
//	scanning   -> identified            (system, once detection returns)
//	identified -> treated | monitoring  (user decision)
//	monitoring -> treated               (user decision)
//
// treated is terminal.
type DiseaseStatus string

const (
	// DiseaseScanning means the photo has been submitted and detection is pending.
	DiseaseScanning DiseaseStatus = "scanning"
	// DiseaseIdentified means detection produced a diagnosis awaiting the farmer's action.
	DiseaseIdentified DiseaseStatus = "identified"
	// DiseaseTreated means the farmer has applied the treatment. Terminal.
	DiseaseTreated DiseaseStatus = "treated"
	// DiseaseMonitoring means the farmer is watching the crop before treating.
	DiseaseMonitoring DiseaseStatus = "monitoring"
)

// IsValid checks if the DiseaseStatus is a valid value.
func (s DiseaseStatus) IsValid() bool {
	switch s {
	case DiseaseScanning, DiseaseIdentified, DiseaseTreated, DiseaseMonitoring:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the status machine permits moving to next.
func (s DiseaseStatus) CanTransitionTo(next DiseaseStatus) bool {
	switch s {
	case DiseaseScanning:
		return next == DiseaseIdentified
	case DiseaseIdentified:
		return next == DiseaseTreated || next == DiseaseMonitoring
	case DiseaseMonitoring:
		return next == DiseaseTreated
	default:
		return false
	}
}

// DiseaseSeverity grades how far a detected disease has progressed.
type DiseaseSeverity string

const (
	// SeverityLow indicates early-stage or contained spread.
	SeverityLow DiseaseSeverity = "Low"
	// SeverityModerate indicates visible spread that should be treated soon.
	SeverityModerate DiseaseSeverity = "Moderate"
	// SeverityHigh indicates aggressive spread requiring immediate treatment.
	SeverityHigh DiseaseSeverity = "High"
)

// IsValid checks if the DiseaseSeverity is a valid value.
func (s DiseaseSeverity) IsValid() bool {
	switch s {
	case SeverityLow, SeverityModerate, SeverityHigh:
		return true
	default:
		return false
	}
}

// PlantDisease tracks one photo-based disease scan and its follow-up.
// Diagnosis fields (disease, severity, confidence, treatment) are filled in
// once the record reaches identified.
type PlantDisease struct {
	ID         int64           `json:"id"`
	Date       string          `json:"date"` // Scan date, formatted YYYY-MM-DD.
	Crop       string          `json:"crop"` // The crop the photo was taken of.
	Disease    string          `json:"disease,omitempty"`
	Severity   DiseaseSeverity `json:"severity,omitempty"`
	Confidence int             `json:"confidence"` // Detection confidence, 0-100.
	Treatment  string          `json:"treatment,omitempty"`
	Status     DiseaseStatus   `json:"status"`
}

// DiseaseResult is the diagnosis returned by a disease detector for one image.
type DiseaseResult struct {
	Disease    string
	Severity   DiseaseSeverity
	Confidence int
	Treatment  string
}
