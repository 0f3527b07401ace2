package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"bistroboss/internal/errors"
	"bistroboss/internal/model"
)

// MockMenuRepository is a mock implementation of MenuRepository.
type MockMenuRepository struct {
	mock.Mock
}

func (m *MockMenuRepository) List(ctx context.Context) ([]model.MenuItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) Create(ctx context.Context, item *model.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (int64, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMenuRepository) DeleteByID(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMenuRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestMenuService_Get(t *testing.T) {
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		repo := new(MockMenuRepository)
		repo.On("FindByID", mock.Anything, id).Return(&model.MenuItem{ID: id, Name: "Roast Duck"}, nil)

		svc := NewMenuService(repo, nil)
		item, err := svc.Get(context.Background(), id)

		assert.NoError(t, err)
		assert.Equal(t, "Roast Duck", item.Name)
	})

	t.Run("absent id maps to a domain error", func(t *testing.T) {
		repo := new(MockMenuRepository)
		repo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

		svc := NewMenuService(repo, nil)
		_, err := svc.Get(context.Background(), id)

		assert.ErrorIs(t, err, errors.ErrMenuItemNotFound)
	})
}

func TestMenuService_Update(t *testing.T) {
	id := uuid.New()

	t.Run("only set fields reach the store", func(t *testing.T) {
		repo := new(MockMenuRepository)
		price := decimal.NewFromFloat(12.95)
		repo.On("UpdateFields", mock.Anything, id, map[string]interface{}{
			"name":  "Tuna Tartare",
			"price": price,
		}).Return(int64(1), nil)

		svc := NewMenuService(repo, nil)
		name := "Tuna Tartare"
		affected, err := svc.Update(context.Background(), id, MenuItemUpdate{Name: &name, Price: &price})

		assert.NoError(t, err)
		assert.Equal(t, int64(1), affected)
		repo.AssertExpectations(t)
	})

	t.Run("empty update skips the store", func(t *testing.T) {
		repo := new(MockMenuRepository)

		svc := NewMenuService(repo, nil)
		affected, err := svc.Update(context.Background(), id, MenuItemUpdate{})

		assert.NoError(t, err)
		assert.Equal(t, int64(0), affected)
		repo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("absent id affects zero rows", func(t *testing.T) {
		repo := new(MockMenuRepository)
		name := "Gone"
		repo.On("UpdateFields", mock.Anything, id, mock.Anything).Return(int64(0), nil)

		svc := NewMenuService(repo, nil)
		affected, err := svc.Update(context.Background(), id, MenuItemUpdate{Name: &name})

		assert.NoError(t, err)
		assert.Equal(t, int64(0), affected)
	})
}

func TestMenuService_Delete_AbsentIDIsNoOp(t *testing.T) {
	repo := new(MockMenuRepository)
	id := uuid.New()
	repo.On("DeleteByID", mock.Anything, id).Return(int64(0), nil)

	svc := NewMenuService(repo, nil)
	deleted, err := svc.Delete(context.Background(), id)

	assert.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
}

func TestMenuService_List(t *testing.T) {
	repo := new(MockMenuRepository)
	repo.On("List", mock.Anything).Return([]model.MenuItem{{Name: "Escalope de Veau"}}, nil)

	svc := NewMenuService(repo, nil)
	items, err := svc.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, items, 1)
}
