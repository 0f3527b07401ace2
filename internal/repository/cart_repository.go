package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bistroboss/internal/model"
)

// CartRepository defines cart persistence operations.
type CartRepository interface {
	ListByEmail(ctx context.Context, email string) ([]model.CartItem, error)
	Create(ctx context.Context, item *model.CartItem) error
	DeleteByID(ctx context.Context, id uuid.UUID) (int64, error)
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
}

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository builds a GORM-backed repository.
func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) ListByEmail(ctx context.Context, email string) ([]model.CartItem, error) {
	var items []model.CartItem
	if err := r.db.WithContext(ctx).Where("email = ?", email).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *cartRepository) Create(ctx context.Context, item *model.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// DeleteByID removes a single cart item; an absent id affects zero rows and
// is not an error. Concurrent deletes of the same id both resolve as no-ops.
func (r *cartRepository) DeleteByID(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CartItem{})
	return res.RowsAffected, res.Error
}

func (r *cartRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.CartItem{})
	return res.RowsAffected, res.Error
}
