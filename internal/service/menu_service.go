package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"bistroboss/internal/cache"
	"bistroboss/internal/errors"
	"bistroboss/internal/model"
	"bistroboss/internal/repository"
)

const (
	menuListCacheKey = "menu:list"
	menuListCacheTTL = 5 * time.Minute
)

// MenuItemUpdate carries a partial menu item edit; nil fields are left
// untouched.
type MenuItemUpdate struct {
	Name     *string
	Category *string
	Price    *decimal.Decimal
	Recipe   *string
	Image    *string
}

// MenuService handles menu catalog operations.
type MenuService interface {
	List(ctx context.Context) ([]model.MenuItem, error)
	Get(ctx context.Context, id uuid.UUID) (*model.MenuItem, error)
	Create(ctx context.Context, item *model.MenuItem) error
	Update(ctx context.Context, id uuid.UUID, update MenuItemUpdate) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type menuService struct {
	repo  repository.MenuRepository
	cache *cache.Client
}

// NewMenuService creates a new menu service.
func NewMenuService(repo repository.MenuRepository, cache *cache.Client) MenuService {
	return &menuService{
		repo:  repo,
		cache: cache,
	}
}

// List returns the full catalog, serving from cache when possible. The menu
// is the hottest public read, so a short TTL takes most of the load off the
// store.
func (s *menuService) List(ctx context.Context) ([]model.MenuItem, error) {
	if data, _ := s.cache.Get(ctx, menuListCacheKey); data != nil {
		var cached []model.MenuItem
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(items); err == nil {
		_ = s.cache.Set(ctx, menuListCacheKey, payload, menuListCacheTTL)
	}

	return items, nil
}

func (s *menuService) Get(ctx context.Context, id uuid.UUID) (*model.MenuItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrMenuItemNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *menuService) Create(ctx context.Context, item *model.MenuItem) error {
	if err := s.repo.Create(ctx, item); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, menuListCacheKey)
	return nil
}

// Update applies a partial edit; an absent id affects zero rows.
func (s *menuService) Update(ctx context.Context, id uuid.UUID, update MenuItemUpdate) (int64, error) {
	fields := map[string]interface{}{}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Category != nil {
		fields["category"] = *update.Category
	}
	if update.Price != nil {
		fields["price"] = *update.Price
	}
	if update.Recipe != nil {
		fields["recipe"] = *update.Recipe
	}
	if update.Image != nil {
		fields["image"] = *update.Image
	}
	if len(fields) == 0 {
		return 0, nil
	}

	affected, err := s.repo.UpdateFields(ctx, id, fields)
	if err != nil {
		return 0, err
	}
	_ = s.cache.Delete(ctx, menuListCacheKey)
	return affected, nil
}

func (s *menuService) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	affected, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return 0, err
	}
	_ = s.cache.Delete(ctx, menuListCacheKey)
	return affected, nil
}
