package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"bistroboss/internal/cache"
	"bistroboss/internal/repository"
)

const (
	adminStatsCacheKey = "stats:admin"
	adminStatsCacheTTL = time.Minute
)

// AdminStats is the dashboard summary. Counts are the store's fast counts,
// not transactional snapshots; revenue is the sum of all payment prices.
type AdminStats struct {
	UserCount     int64           `json:"userCount"`
	MenuItemCount int64           `json:"menuItemCount"`
	OrderCount    int64           `json:"orderCount"`
	Revenue       decimal.Decimal `json:"revenue"`
}

// StatsService aggregates counts and revenue for the admin dashboard.
type StatsService interface {
	AdminStats(ctx context.Context) (*AdminStats, error)
}

type statsService struct {
	userRepo    repository.UserRepository
	menuRepo    repository.MenuRepository
	paymentRepo repository.PaymentRepository
	cache       *cache.Client
}

// NewStatsService creates a new stats service.
func NewStatsService(
	userRepo repository.UserRepository,
	menuRepo repository.MenuRepository,
	paymentRepo repository.PaymentRepository,
	cache *cache.Client,
) StatsService {
	return &statsService{
		userRepo:    userRepo,
		menuRepo:    menuRepo,
		paymentRepo: paymentRepo,
		cache:       cache,
	}
}

func (s *statsService) AdminStats(ctx context.Context) (*AdminStats, error) {
	if data, _ := s.cache.Get(ctx, adminStatsCacheKey); data != nil {
		var cached AdminStats
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	userCount, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	menuItemCount, err := s.menuRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count menu items: %w", err)
	}
	orderCount, err := s.paymentRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count payments: %w", err)
	}
	revenue, err := s.paymentRepo.SumPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("sum payments: %w", err)
	}

	stats := &AdminStats{
		UserCount:     userCount,
		MenuItemCount: menuItemCount,
		OrderCount:    orderCount,
		Revenue:       revenue,
	}

	if payload, err := json.Marshal(stats); err == nil {
		_ = s.cache.Set(ctx, adminStatsCacheKey, payload, adminStatsCacheTTL)
	}

	return stats, nil
}
