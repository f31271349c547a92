package service

import (
	"context"
	"io"

	"agriproxy/internal/domain/entity"
)

// SoilSample describes one soil sample submitted for analysis.
type SoilSample struct {
	Location   string    // Field location label, optional.
	SampleType string    // e.g. "topsoil", optional.
	FileName   string    // Name of the sample photo file.
	Image      io.Reader // Photo of the collected sample.
}

// SoilLab analyzes submitted soil samples. The production implementation
// calls the backend's soil-test endpoints; nothing in the application layer
// depends on how the analysis is produced.
type SoilLab interface {
	Analyze(ctx context.Context, sample SoilSample) (*entity.SoilReport, error)
}

// DetectionInput describes one crop photo submitted for disease detection.
type DetectionInput struct {
	Crop     string    // The crop shown in the photo.
	FileName string    // Name of the photo file.
	Image    io.Reader // The photo itself.
}

// DiseaseDetector diagnoses plant diseases from crop photos. Implementations
// must return a definite result or an error; partial diagnoses are not part
// of the contract.
type DiseaseDetector interface {
	Detect(ctx context.Context, input DetectionInput) (*entity.DiseaseResult, error)
}
