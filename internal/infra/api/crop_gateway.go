package api

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"agriproxy/internal/domain/entity"
	domainerrors "agriproxy/internal/domain/errors"
	"agriproxy/internal/domain/service"

	"github.com/pkg/errors"
)

// cropGateway implements the soil-lab and disease-detector contracts over
// the backend's analysis endpoints.
type cropGateway struct {
	client *Client
	logger *slog.Logger
}

// NewSoilLab returns the backend-backed soil lab.
func NewSoilLab(client *Client, logger *slog.Logger) service.SoilLab {
	return &cropGateway{client: client, logger: logger}
}

// NewDiseaseDetector returns the backend-backed disease detector.
func NewDiseaseDetector(client *Client, logger *slog.Logger) service.DiseaseDetector {
	return &cropGateway{client: client, logger: logger}
}

// soilReportPayload is the data section of the soil analysis response.
type soilReportPayload struct {
	PH              float64              `json:"ph"`
	Nitrogen        entity.NutrientLevel `json:"nitrogen"`
	Phosphorus      entity.NutrientLevel `json:"phosphorus"`
	Potassium       entity.NutrientLevel `json:"potassium"`
	Recommendations []string             `json:"recommendations"`
}

// diseaseResultPayload is the data section of the detection response.
type diseaseResultPayload struct {
	Disease    string                 `json:"disease"`
	Severity   entity.DiseaseSeverity `json:"severity"`
	Confidence int                    `json:"confidence"`
	Treatment  string                 `json:"treatment"`
}

// Analyze uploads the sample photo and returns the lab's report.
func (g *cropGateway) Analyze(ctx context.Context, sample service.SoilSample) (*entity.SoilReport, error) {
	body, contentType, err := buildSampleForm(sample)
	if err != nil {
		return nil, err
	}

	res, err := g.client.doMultipart(ctx, "/soil-tests/upload", body, contentType)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrNetworkUnavailable, "soil sample upload failed")
	}
	if err := checkAnalysisStatus(res); err != nil {
		return nil, err
	}

	var payload soilReportPayload
	if err := unmarshalData(res, &payload); err != nil {
		return nil, err
	}

	return &entity.SoilReport{
		PH:              payload.PH,
		Nitrogen:        payload.Nitrogen,
		Phosphorus:      payload.Phosphorus,
		Potassium:       payload.Potassium,
		Recommendations: payload.Recommendations,
	}, nil
}

// Detect uploads the crop photo and returns the diagnosis.
func (g *cropGateway) Detect(ctx context.Context, input service.DetectionInput) (*entity.DiseaseResult, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	if err := form.WriteField("crop", input.Crop); err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to build detection form")
	}
	part, err := form.CreateFormFile("image", input.FileName)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to build detection form")
	}
	if _, err := io.Copy(part, input.Image); err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to read crop photo")
	}
	if err := form.Close(); err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to finish detection form")
	}

	res, err := g.client.doMultipart(ctx, "/plant-diseases/detect", &buf, form.FormDataContentType())
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrNetworkUnavailable, "detection request failed")
	}
	if err := checkAnalysisStatus(res); err != nil {
		return nil, err
	}

	var payload diseaseResultPayload
	if err := unmarshalData(res, &payload); err != nil {
		return nil, err
	}
	if payload.Disease == "" {
		return nil, errors.Wrap(domainerrors.ErrServerError, "detection returned no diagnosis")
	}

	return &entity.DiseaseResult{
		Disease:    payload.Disease,
		Severity:   payload.Severity,
		Confidence: payload.Confidence,
		Treatment:  payload.Treatment,
	}, nil
}

func buildSampleForm(sample service.SoilSample) (io.Reader, string, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	if sample.Location != "" {
		if err := form.WriteField("location", sample.Location); err != nil {
			return nil, "", errors.Wrap(domainerrors.ErrInternalError, "failed to build sample form")
		}
	}
	if sample.SampleType != "" {
		if err := form.WriteField("sampleType", sample.SampleType); err != nil {
			return nil, "", errors.Wrap(domainerrors.ErrInternalError, "failed to build sample form")
		}
	}
	part, err := form.CreateFormFile("sample", sample.FileName)
	if err != nil {
		return nil, "", errors.Wrap(domainerrors.ErrInternalError, "failed to build sample form")
	}
	if _, err := io.Copy(part, sample.Image); err != nil {
		return nil, "", errors.Wrap(domainerrors.ErrInternalError, "failed to read sample photo")
	}
	if err := form.Close(); err != nil {
		return nil, "", errors.Wrap(domainerrors.ErrInternalError, "failed to finish sample form")
	}

	return &buf, form.FormDataContentType(), nil
}

func checkAnalysisStatus(res *response) error {
	switch res.Status {
	case http.StatusOK, http.StatusCreated:
		return nil
	case http.StatusUnauthorized:
		return failure(domainerrors.ErrSessionExpired, res)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return failure(domainerrors.ErrValidationFailed, res)
	default:
		return failure(domainerrors.ErrServerError, res)
	}
}
