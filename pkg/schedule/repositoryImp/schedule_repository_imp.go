package repositoryImp

import (
	"pestplan/entities"
	"pestplan/pkg/schedule/repository"

	"gorm.io/gorm"
)

type schedRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ScheduleRepository { return &schedRepo{db} }

func (r *schedRepo) BulkInsert(ts []entities.TreatmentTask) error { return r.db.Create(&ts).Error }

func (r *schedRepo) ListByRecommendation(recID uint) ([]entities.TreatmentTask, error) {
	var out []entities.TreatmentTask
	if err := r.db.Where("recommendation_id = ?", recID).Order("scheduled_date ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *schedRepo) ListAll() ([]entities.TreatmentTask, error) {
	var out []entities.TreatmentTask
	if err := r.db.Order("recommendation_id ASC, scheduled_date ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *schedRepo) PatchCompleted(taskID uint, completed bool) error {
	return r.db.Model(&entities.TreatmentTask{}).
		Where("task_id = ?", taskID).
		Update("completed", completed).Error
}
