package state

import "agriproxy/internal/domain/entity"

// Seed returns the initial application state: the demo catalog and sample
// records shown before any backend data has been fetched. In a deployed
// build the catalog would be fetched from the products endpoint; that fetch
// replaces these entries through the usual update actions.
func Seed() AppState {
	ph := 6.8

	return AppState{
		Crops: []entity.Crop{
			{ID: 1, Name: "Wheat", Planted: "2025-01-15", Area: "10 acres", Status: entity.CropGrowing, Progress: 60},
			{ID: 2, Name: "Rice", Planted: "2024-12-20", Area: "15 acres", Status: entity.CropHarvestReady, Progress: 95},
		},
		Products: []entity.Product{
			{ID: 1, Name: "Copper Fungicide", Category: "Fungicides", Price: 1850, Rating: 4.6, InStock: true},
			{ID: 2, Name: "Glyphosate 41%", Category: "Herbicides", Price: 950, Rating: 4.3, InStock: true},
			{ID: 3, Name: "Neem Oil", Category: "Biopesticides", Price: 1250, Rating: 4.8, InStock: true},
			{ID: 4, Name: "NPK 19:19:19", Category: "Fertilizers", Price: 2100, Rating: 4.5, InStock: false},
			{ID: 5, Name: "Mancozeb 75%", Category: "Fungicides", Price: 1450, Rating: 4.4, InStock: true},
			{ID: 6, Name: "2,4-D Amine", Category: "Herbicides", Price: 750, Rating: 4.2, InStock: true},
		},
		Favorites: make(map[int64]struct{}),
		Notifications: []entity.Notification{
			{ID: 1, Title: "Soil Test Ready", Message: "Your soil test results are now available", Time: "2 hours ago", Read: false, Type: entity.NotificationSuccess},
			{ID: 2, Title: "Weather Alert", Message: "Heavy rain expected in next 24 hours", Time: "1 day ago", Read: false, Type: entity.NotificationWarning},
			{ID: 3, Title: "Pest Alert", Message: "Aphid outbreak reported in your area", Time: "2 days ago", Read: true, Type: entity.NotificationError},
		},
		SoilTests: []entity.SoilTest{
			{
				ID:         1,
				Date:       "2025-01-20",
				Status:     entity.SoilTestCompleted,
				PH:         &ph,
				Nitrogen:   entity.NutrientMedium,
				Phosphorus: entity.NutrientHigh,
				Potassium:  entity.NutrientLow,
				Recommendations: []string{
					"Add potassium fertilizer",
					"Maintain current pH level",
					"Good nitrogen content",
				},
			},
			{
				ID:              2,
				Date:            "2025-01-15",
				Status:          entity.SoilTestProcessing,
				Recommendations: []string{},
			},
		},
		PlantDiseases: []entity.PlantDisease{
			{
				ID:         1,
				Date:       "2025-01-18",
				Crop:       "Wheat",
				Disease:    "Leaf Rust",
				Severity:   entity.SeverityModerate,
				Confidence: 85,
				Treatment:  "Apply fungicide spray",
				Status:     entity.DiseaseIdentified,
			},
			{
				ID:         2,
				Date:       "2025-01-16",
				Crop:       "Rice",
				Disease:    "Bacterial Blight",
				Severity:   entity.SeverityHigh,
				Confidence: 92,
				Treatment:  "Use copper-based bactericide",
				Status:     entity.DiseaseTreated,
			},
		},
	}
}
