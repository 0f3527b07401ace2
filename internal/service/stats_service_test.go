package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestStatsService_AdminStats(t *testing.T) {
	t.Run("revenue is the sum of all payments", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		menuRepo := new(MockMenuRepository)
		paymentRepo := new(MockPaymentRepository)

		userRepo.On("Count", mock.Anything).Return(int64(7), nil)
		menuRepo.On("Count", mock.Anything).Return(int64(42), nil)
		paymentRepo.On("Count", mock.Anything).Return(int64(3), nil)
		paymentRepo.On("SumPrice", mock.Anything).Return(decimal.NewFromFloat(125.40), nil)

		svc := NewStatsService(userRepo, menuRepo, paymentRepo, nil)
		stats, err := svc.AdminStats(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, int64(7), stats.UserCount)
		assert.Equal(t, int64(42), stats.MenuItemCount)
		assert.Equal(t, int64(3), stats.OrderCount)
		assert.True(t, stats.Revenue.Equal(decimal.NewFromFloat(125.40)))
	})

	t.Run("revenue is zero when no payments exist", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		menuRepo := new(MockMenuRepository)
		paymentRepo := new(MockPaymentRepository)

		userRepo.On("Count", mock.Anything).Return(int64(0), nil)
		menuRepo.On("Count", mock.Anything).Return(int64(0), nil)
		paymentRepo.On("Count", mock.Anything).Return(int64(0), nil)
		paymentRepo.On("SumPrice", mock.Anything).Return(decimal.Zero, nil)

		svc := NewStatsService(userRepo, menuRepo, paymentRepo, nil)
		stats, err := svc.AdminStats(context.Background())

		assert.NoError(t, err)
		assert.True(t, stats.Revenue.IsZero())
	})

	t.Run("count failure propagates", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("Count", mock.Anything).Return(int64(0), assert.AnError)

		svc := NewStatsService(userRepo, new(MockMenuRepository), new(MockPaymentRepository), nil)
		_, err := svc.AdminStats(context.Background())

		assert.Error(t, err)
	})
}
