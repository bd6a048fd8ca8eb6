package repository

import "pestplan/entities"

type RecommendRepository interface {
	Create(*entities.Recommendation) error
	// List returns recommendations newest first; limit <= 0 means all.
	List(limit int) ([]entities.Recommendation, error)
	Get(id uint) (*entities.Recommendation, error)
}
