package entities

import "time"

type Recommendation struct {
	RecommendationID    uint    `gorm:"primaryKey" json:"recommendation_id"`
	PlantName           string  `json:"plant_name"`
	DiseasePercentage   float64 `json:"disease_percentage"`
	PreviousFertilizers string  `json:"previous_fertilizers"`
	Acres               float64 `json:"acres"`
	Location            string  `json:"location"`
	PredictedClass      string  `json:"predicted_class"`
	Confidence          float64 `json:"confidence"`
	CreatedAt           time.Time
}
