package repository

import "pestplan/entities"

type ScheduleRepository interface {
	BulkInsert([]entities.TreatmentTask) error
	ListByRecommendation(recID uint) ([]entities.TreatmentTask, error)
	ListAll() ([]entities.TreatmentTask, error)
	PatchCompleted(taskID uint, completed bool) error
}
