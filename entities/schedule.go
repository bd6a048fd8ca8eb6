package entities

import "time"

type TreatmentTask struct {
	TaskID           uint      `gorm:"primaryKey" json:"task_id"`
	RecommendationID uint      `gorm:"index" json:"recommendation_id"`
	PesticideName    string    `json:"pesticide_name"`
	ScheduledDate    time.Time `json:"scheduled_date"`
	Timing           string    `json:"timing"`
	Notes            string    `json:"notes"`
	Completed        bool      `json:"completed"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
