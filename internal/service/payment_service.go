package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bistroboss/internal/cache"
	"bistroboss/internal/errors"
	"bistroboss/internal/model"
	"bistroboss/internal/repository"
)

// SettlementResult reports the two halves of a settlement separately: the
// recorded payment and how many cart rows its id set actually removed.
type SettlementResult struct {
	Payment      *model.Payment
	DeletedCount int64
}

// PaymentService records settlements and serves payment history.
type PaymentService interface {
	ListByEmail(ctx context.Context, email string) ([]model.Payment, error)
	// Settle records a payment for the cart id set and removes those cart
	// rows. Ids already gone reduce the deleted count but do not fail the
	// settlement.
	Settle(ctx context.Context, email string, price decimal.Decimal, transactionID string, cartIDs []uuid.UUID) (*SettlementResult, error)
}

type paymentService struct {
	repo  repository.PaymentRepository
	cache *cache.Client
}

// NewPaymentService creates a new payment service.
func NewPaymentService(repo repository.PaymentRepository, cache *cache.Client) PaymentService {
	return &paymentService{
		repo:  repo,
		cache: cache,
	}
}

func (s *paymentService) ListByEmail(ctx context.Context, email string) ([]model.Payment, error) {
	return s.repo.ListByEmail(ctx, email)
}

func (s *paymentService) Settle(ctx context.Context, email string, price decimal.Decimal, transactionID string, cartIDs []uuid.UUID) (*SettlementResult, error) {
	if len(cartIDs) == 0 {
		return nil, errors.ErrEmptyCartIDs
	}

	payment := &model.Payment{
		Email:         email,
		Price:         price,
		TransactionID: transactionID,
		CartItemIDs:   cartIDs,
		Status:        "succeeded",
	}

	deleted, err := s.repo.Settle(ctx, payment, cartIDs)
	if err != nil {
		return nil, fmt.Errorf("settle payment: %w", err)
	}

	_ = s.cache.Delete(ctx, adminStatsCacheKey)

	return &SettlementResult{
		Payment:      payment,
		DeletedCount: deleted,
	}, nil
}
