package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"agriproxy/internal/domain/entity"
	domainerrors "agriproxy/internal/domain/errors"
	"agriproxy/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCropGatewayAnalyze(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/soil-tests/upload", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "North field", r.FormValue("location"))
		assert.Equal(t, "topsoil", r.FormValue("sampleType"))

		file, header, err := r.FormFile("sample")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "sample.jpg", header.Filename)

		_, _ = w.Write([]byte(`{
			"success": true,
			"data": {
				"ph": 6.8,
				"nitrogen": "Medium",
				"phosphorus": "High",
				"potassium": "Low",
				"recommendations": ["Add potash fertilizer", "Maintain current pH"]
			}
		}`))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server)
	lab := NewSoilLab(client, testLogger())

	report, err := lab.Analyze(context.Background(), service.SoilSample{
		Location:   "North field",
		SampleType: "topsoil",
		FileName:   "sample.jpg",
		Image:      strings.NewReader("jpeg-bytes"),
	})
	require.NoError(t, err)
	assert.InDelta(t, 6.8, report.PH, 0.001)
	assert.Equal(t, entity.NutrientMedium, report.Nitrogen)
	assert.Equal(t, entity.NutrientHigh, report.Phosphorus)
	assert.Equal(t, entity.NutrientLow, report.Potassium)
	assert.Len(t, report.Recommendations, 2)
}

func TestCropGatewayAnalyzeOmitsEmptyFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.NotContains(t, r.MultipartForm.Value, "location")
		assert.NotContains(t, r.MultipartForm.Value, "sampleType")

		_, _ = w.Write([]byte(`{"success": true, "data": {"ph": 7.0, "nitrogen": "Medium", "phosphorus": "Medium", "potassium": "Medium", "recommendations": []}}`))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server)
	lab := NewSoilLab(client, testLogger())

	_, err := lab.Analyze(context.Background(), service.SoilSample{
		FileName: "sample.jpg",
		Image:    strings.NewReader("jpeg-bytes"),
	})
	require.NoError(t, err)
}

func TestCropGatewayDetect(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/plant-diseases/detect", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Wheat", r.FormValue("crop"))

		file, _, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()

		_, _ = w.Write([]byte(`{
			"success": true,
			"data": {
				"disease": "Leaf Rust",
				"severity": "Moderate",
				"confidence": 92,
				"treatment": "Apply propiconazole spray"
			}
		}`))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server)
	detector := NewDiseaseDetector(client, testLogger())

	result, err := detector.Detect(context.Background(), service.DetectionInput{
		Crop:     "Wheat",
		FileName: "leaf.jpg",
		Image:    strings.NewReader("jpeg-bytes"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Leaf Rust", result.Disease)
	assert.Equal(t, entity.SeverityModerate, result.Severity)
	assert.Equal(t, 92, result.Confidence)
	assert.Equal(t, "Apply propiconazole spray", result.Treatment)
}

func TestCropGatewayDetectEmptyDiagnosis(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": true, "data": {}}`))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server)
	detector := NewDiseaseDetector(client, testLogger())

	_, err := detector.Detect(context.Background(), service.DetectionInput{
		Crop:     "Wheat",
		FileName: "leaf.jpg",
		Image:    strings.NewReader("jpeg-bytes"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrServerError)
}

func TestCropGatewayAnalyzeValidationFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"success": false, "message": "Sample image is required"}`))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server)
	lab := NewSoilLab(client, testLogger())

	_, err := lab.Analyze(context.Background(), service.SoilSample{
		FileName: "sample.jpg",
		Image:    strings.NewReader("jpeg-bytes"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "Sample image is required")
}
