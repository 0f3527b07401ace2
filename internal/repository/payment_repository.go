package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"bistroboss/internal/model"
)

// PaymentRepository defines payment persistence operations. Payments are
// insert-only; there is no update or delete.
type PaymentRepository interface {
	ListByEmail(ctx context.Context, email string) ([]model.Payment, error)
	Create(ctx context.Context, payment *model.Payment) error
	Count(ctx context.Context) (int64, error)
	SumPrice(ctx context.Context) (decimal.Decimal, error)
	Settle(ctx context.Context, payment *model.Payment, cartIDs []uuid.UUID) (int64, error)
}

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository builds a GORM-backed repository.
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) ListByEmail(ctx context.Context, email string) ([]model.Payment, error) {
	var payments []model.Payment
	if err := r.db.WithContext(ctx).Where("email = ?", email).Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) Create(ctx context.Context, payment *model.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Payment{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SumPrice returns the total of all payment prices, zero when none exist.
func (r *paymentRepository) SumPrice(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	row := r.db.WithContext(ctx).
		Model(&model.Payment{}).
		Select("COALESCE(SUM(price), 0)").
		Row()
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// Settle inserts the payment and deletes the referenced cart items in one
// transaction, so a crash cannot leave a payment without its cart cleanup.
// Ids already gone reduce the deleted count but do not fail the settlement.
func (r *paymentRepository) Settle(ctx context.Context, payment *model.Payment, cartIDs []uuid.UUID) (int64, error) {
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return err
		}
		res := tx.Where("id IN ?", cartIDs).Delete(&model.CartItem{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}
