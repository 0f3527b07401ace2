package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bistroboss/internal/errors"
	"bistroboss/internal/model"
	"bistroboss/internal/repository"
)

// CartService handles pending order lines.
type CartService interface {
	ListByEmail(ctx context.Context, email string) ([]model.CartItem, error)
	// Add snapshots the menu item's current name, image and price into a new
	// cart row owned by email.
	Add(ctx context.Context, email string, menuItemID uuid.UUID) (*model.CartItem, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type cartService struct {
	repo     repository.CartRepository
	menuRepo repository.MenuRepository
}

// NewCartService creates a new cart service.
func NewCartService(repo repository.CartRepository, menuRepo repository.MenuRepository) CartService {
	return &cartService{
		repo:     repo,
		menuRepo: menuRepo,
	}
}

func (s *cartService) ListByEmail(ctx context.Context, email string) ([]model.CartItem, error) {
	return s.repo.ListByEmail(ctx, email)
}

func (s *cartService) Add(ctx context.Context, email string, menuItemID uuid.UUID) (*model.CartItem, error) {
	menuItem, err := s.menuRepo.FindByID(ctx, menuItemID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrMenuItemNotFound
		}
		return nil, fmt.Errorf("find menu item: %w", err)
	}

	item := &model.CartItem{
		MenuItemID: menuItem.ID,
		Email:      email,
		Name:       menuItem.Name,
		Image:      menuItem.Image,
		Price:      menuItem.Price,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create cart item: %w", err)
	}
	return item, nil
}

func (s *cartService) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	return s.repo.DeleteByID(ctx, id)
}
