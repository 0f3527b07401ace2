package repository

import (
	"context"

	"gorm.io/gorm"

	"bistroboss/internal/model"
)

// ReviewRepository defines review persistence operations. The API only
// reads reviews; Create exists for the seed tool.
type ReviewRepository interface {
	List(ctx context.Context) ([]model.Review, error)
	Create(ctx context.Context, review *model.Review) error
}

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository builds a GORM-backed repository.
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) List(ctx context.Context) ([]model.Review, error) {
	var reviews []model.Review
	if err := r.db.WithContext(ctx).Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) Create(ctx context.Context, review *model.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}
