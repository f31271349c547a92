package impl

import (
	"context"
	"log/slog"
	"time"

	"agriproxy/internal/domain/entity"
	domainerrors "agriproxy/internal/domain/errors"
	"agriproxy/internal/domain/service"
	"agriproxy/internal/domain/state"
	"agriproxy/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// cropCareService implements the CropCareUsecase interface on top of the
// soil lab and disease detector services.
type cropCareService struct {
	store    usecase.AppStateUsecase
	lab      service.SoilLab
	detector service.DiseaseDetector
	validate *validator.Validate
	logger   *slog.Logger

	// now and nextID are swappable for tests.
	now    func() time.Time
	nextID func() int64
}

// NewCropCareService is the constructor for cropCareService.
func NewCropCareService(
	store usecase.AppStateUsecase,
	lab service.SoilLab,
	detector service.DiseaseDetector,
	logger *slog.Logger,
) usecase.CropCareUsecase {
	return &cropCareService{
		store:    store,
		lab:      lab,
		detector: detector,
		validate: validator.New(),
		logger:   logger,
		now:      time.Now,
		nextID:   func() int64 { return time.Now().UnixMilli() },
	}
}

// SubmitSoilSample records a processing soil test, runs the analysis, and
// settles the record to completed with the readings or to failed. The
// settle is a single replace-by-id dispatch, so readers never see a
// half-filled report.
func (srv *cropCareService) SubmitSoilSample(ctx context.Context, input *usecase.SubmitSoilSampleInput) (*entity.SoilTest, error) {
	if err := srv.validate.Struct(input); err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	srv.logger.Info("Submitting soil sample", slog.String("location", input.Location))

	record := entity.SoilTest{
		ID:     srv.nextID(),
		Date:   srv.now().Format("2006-01-02"),
		Status: entity.SoilTestProcessing,
	}
	srv.store.Dispatch(state.AddSoilTest{Test: record})

	report, err := srv.lab.Analyze(ctx, service.SoilSample{
		Location:   input.Location,
		SampleType: input.SampleType,
		FileName:   input.FileName,
		Image:      input.Image,
	})
	if err != nil {
		record.Status = entity.SoilTestFailed
		srv.store.Dispatch(state.UpdateSoilTest{Test: record})
		srv.logger.Warn("Soil analysis failed", slog.Any("error", err))

		return nil, err
	}

	ph := report.PH
	record.Status = entity.SoilTestCompleted
	record.PH = &ph
	record.Nitrogen = report.Nitrogen
	record.Phosphorus = report.Phosphorus
	record.Potassium = report.Potassium
	record.Recommendations = report.Recommendations
	srv.store.Dispatch(state.UpdateSoilTest{Test: record})

	srv.logger.Info("Successfully analyzed soil sample", slog.Int64("testID", record.ID))

	return &record, nil
}

// ScanPlant records a scanning entry, runs the detector, and settles the
// record to identified with the diagnosis. On failure the record stays in
// scanning and the error is surfaced.
func (srv *cropCareService) ScanPlant(ctx context.Context, input *usecase.ScanPlantInput) (*entity.PlantDisease, error) {
	if err := srv.validate.Struct(input); err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	srv.logger.Info("Scanning crop photo", slog.String("crop", input.Crop))

	record := entity.PlantDisease{
		ID:     srv.nextID(),
		Date:   srv.now().Format("2006-01-02"),
		Crop:   input.Crop,
		Status: entity.DiseaseScanning,
	}
	srv.store.Dispatch(state.AddPlantDisease{Record: record})

	result, err := srv.detector.Detect(ctx, service.DetectionInput{
		Crop:     input.Crop,
		FileName: input.FileName,
		Image:    input.Image,
	})
	if err != nil {
		srv.logger.Warn("Disease detection failed", slog.Any("error", err))

		return nil, err
	}

	record.Status = entity.DiseaseIdentified
	record.Disease = result.Disease
	record.Severity = result.Severity
	record.Confidence = result.Confidence
	record.Treatment = result.Treatment
	srv.store.Dispatch(state.UpdatePlantDisease{Record: record})

	srv.logger.Info("Successfully identified disease",
		slog.Int64("recordID", record.ID),
		slog.String("disease", record.Disease),
	)

	return &record, nil
}

// MarkTreated transitions the disease record to treated.
func (srv *cropCareService) MarkTreated(ctx context.Context, id int64) error {
	return srv.transition(id, entity.DiseaseTreated)
}

// MarkMonitoring transitions the disease record to monitoring.
func (srv *cropCareService) MarkMonitoring(ctx context.Context, id int64) error {
	return srv.transition(id, entity.DiseaseMonitoring)
}

// transition enforces the legal status machine before any dispatch: an
// illegal move leaves the store untouched.
func (srv *cropCareService) transition(id int64, target entity.DiseaseStatus) error {
	var record *entity.PlantDisease
	for _, existing := range srv.store.Snapshot().PlantDiseases {
		if existing.ID == id {
			found := existing
			record = &found

			break
		}
	}
	if record == nil {
		return errors.Wrapf(domainerrors.ErrNotFound, "disease record %d", id)
	}

	if !record.Status.CanTransitionTo(target) {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "cannot move %s record to %s", record.Status, target)
	}

	record.Status = target
	srv.store.Dispatch(state.UpdatePlantDisease{Record: *record})

	srv.logger.Info("Disease record transitioned",
		slog.Int64("recordID", id),
		slog.String("status", string(target)),
	)

	return nil
}
