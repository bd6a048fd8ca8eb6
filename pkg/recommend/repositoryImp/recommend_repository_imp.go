package repositoryImp

import (
	"pestplan/entities"
	"pestplan/pkg/recommend/repository"

	"gorm.io/gorm"
)

type recRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.RecommendRepository { return &recRepo{db} }

func (r *recRepo) Create(rec *entities.Recommendation) error { return r.db.Create(rec).Error }

func (r *recRepo) List(limit int) ([]entities.Recommendation, error) {
	var out []entities.Recommendation
	q := r.db.Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *recRepo) Get(id uint) (*entities.Recommendation, error) {
	var rec entities.Recommendation
	if err := r.db.First(&rec, "recommendation_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}
