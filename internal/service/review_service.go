package service

import (
	"context"

	"bistroboss/internal/model"
	"bistroboss/internal/repository"
)

// ReviewService exposes customer feedback, read-only.
type ReviewService interface {
	List(ctx context.Context) ([]model.Review, error)
}

type reviewService struct {
	repo repository.ReviewRepository
}

// NewReviewService creates a new review service.
func NewReviewService(repo repository.ReviewRepository) ReviewService {
	return &reviewService{repo: repo}
}

func (s *reviewService) List(ctx context.Context) ([]model.Review, error) {
	return s.repo.List(ctx)
}
