package usecase

import (
	"context"
	"io"

	"agriproxy/internal/domain/entity"
)

// CropCareUsecase defines the interface for the soil-testing and
// plant-disease flows built on the analysis services.
type CropCareUsecase interface {
	// SubmitSoilSample records a processing soil test, runs the analysis,
	// and settles the record to completed or failed. The returned value
	// is the settled record.
	SubmitSoilSample(ctx context.Context, input *SubmitSoilSampleInput) (*entity.SoilTest, error)

	// ScanPlant records a scanning entry, runs the detector, and settles
	// the record to identified. When detection fails the record stays in
	// scanning and the error is surfaced to the caller.
	ScanPlant(ctx context.Context, input *ScanPlantInput) (*entity.PlantDisease, error)

	// MarkTreated transitions the disease record to treated.
	MarkTreated(ctx context.Context, id int64) error

	// MarkMonitoring transitions the disease record to monitoring.
	MarkMonitoring(ctx context.Context, id int64) error
}

// --- Input DTOs ---

// SubmitSoilSampleInput defines the data required to submit a soil sample.
type SubmitSoilSampleInput struct {
	Location   string    `json:"location"`
	SampleType string    `json:"sampleType"`
	FileName   string    `json:"fileName" validate:"required"`
	Image      io.Reader `json:"-" validate:"required"`
}

// ScanPlantInput defines the data required to scan a crop photo.
type ScanPlantInput struct {
	Crop     string    `json:"crop" validate:"required"`
	FileName string    `json:"fileName" validate:"required"`
	Image    io.Reader `json:"-" validate:"required"`
}
