package mockapi

import (
	"hash/fnv"
	"log/slog"
	"net/http"
	"strings"

	"agriproxy/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// CropHandler serves the analysis endpoints of the contract. Results are
// canned but deterministic: the same crop always yields the same
// diagnosis, which keeps integration tests stable.
type CropHandler struct {
	logger *slog.Logger
}

// NewCropHandler is the constructor for CropHandler.
func NewCropHandler(logger *slog.Logger) *CropHandler {
	return &CropHandler{logger: logger}
}

type soilReportData struct {
	PH              float64              `json:"ph"`
	Nitrogen        entity.NutrientLevel `json:"nitrogen"`
	Phosphorus      entity.NutrientLevel `json:"phosphorus"`
	Potassium       entity.NutrientLevel `json:"potassium"`
	Recommendations []string             `json:"recommendations"`
}

type diseaseResultData struct {
	Disease    string                 `json:"disease"`
	Severity   entity.DiseaseSeverity `json:"severity"`
	Confidence int                    `json:"confidence"`
	Treatment  string                 `json:"treatment"`
}

// cannedDiagnoses maps crops to fixed results; unlisted crops get the
// generic leaf spot diagnosis.
var cannedDiagnoses = map[string]diseaseResultData{
	"wheat": {Disease: "Leaf Rust", Severity: entity.SeverityModerate, Confidence: 88, Treatment: "Apply fungicide spray"},
	"rice":  {Disease: "Bacterial Blight", Severity: entity.SeverityHigh, Confidence: 92, Treatment: "Use copper-based bactericide"},
	"maize": {Disease: "Gray Leaf Spot", Severity: entity.SeverityLow, Confidence: 81, Treatment: "Rotate crops and remove debris"},
}

// AnalyzeSoil accepts the sample upload and returns a report.
func (h *CropHandler) AnalyzeSoil(c echo.Context) error {
	if _, err := c.FormFile("sample"); err != nil {
		return fail(c, http.StatusBadRequest, "Sample photo is required")
	}

	location := c.FormValue("location")
	h.logger.Info("Soil sample received", slog.String("location", location))

	levels := []entity.NutrientLevel{entity.NutrientLow, entity.NutrientMedium, entity.NutrientHigh}
	seed := hashString(location)

	return ok(c, http.StatusOK, soilReportData{
		PH:         6.0 + float64(seed%20)/10.0,
		Nitrogen:   levels[seed%3],
		Phosphorus: levels[(seed+1)%3],
		Potassium:  levels[(seed+2)%3],
		Recommendations: []string{
			"Add organic compost before the next sowing",
			"Re-test after the monsoon season",
		},
	}, "Analysis complete")
}

// DetectDisease accepts the crop photo and returns a diagnosis.
func (h *CropHandler) DetectDisease(c echo.Context) error {
	if _, err := c.FormFile("image"); err != nil {
		return fail(c, http.StatusBadRequest, "Crop photo is required")
	}

	crop := c.FormValue("crop")
	if crop == "" {
		return fail(c, http.StatusBadRequest, "Crop name is required")
	}

	h.logger.Info("Crop photo received", slog.String("crop", crop))

	result, found := cannedDiagnoses[strings.ToLower(crop)]
	if !found {
		result = diseaseResultData{
			Disease:    "Leaf Spot",
			Severity:   entity.SeverityModerate,
			Confidence: 78,
			Treatment:  "Apply a broad-spectrum fungicide",
		}
	}

	return ok(c, http.StatusOK, result, "Detection complete")
}

func hashString(s string) int {
	h := fnv.New32a()
	h.Write([]byte(s))

	return int(h.Sum32())
}
