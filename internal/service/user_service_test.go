package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"bistroboss/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (int64, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) DeleteByID(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestUserService_Register(t *testing.T) {
	tests := []struct {
		name         string
		email        string
		setupMock    func(*MockUserRepository)
		wantInserted bool
		wantErr      bool
	}{
		{
			name:  "new user is inserted",
			email: "new@example.com",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
					Run(func(args mock.Arguments) {
						args.Get(1).(*model.User).ID = uuid.New()
					}).
					Return(nil)
			},
			wantInserted: true,
		},
		{
			name:  "duplicate email never creates a second record",
			email: "existing@example.com",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "existing@example.com").
					Return(&model.User{Email: "existing@example.com"}, nil)
			},
			wantInserted: false,
		},
		{
			name:  "lookup failure propagates",
			email: "broken@example.com",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "broken@example.com").Return(nil, gorm.ErrInvalidDB)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)
			svc := NewUserService(repo)

			insertedID, err := svc.Register(context.Background(), &model.User{Email: tt.email})

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.wantInserted {
				assert.NotNil(t, insertedID)
				assert.NotEqual(t, uuid.Nil, *insertedID)
			} else {
				assert.Nil(t, insertedID)
				repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestUserService_IsAdmin(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		setupMock func(*MockUserRepository)
		want      bool
	}{
		{
			name:  "admin role",
			email: "admin@example.com",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "admin@example.com").
					Return(&model.User{Email: "admin@example.com", Role: model.RoleAdmin}, nil)
			},
			want: true,
		},
		{
			name:  "plain user",
			email: "user@example.com",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "user@example.com").
					Return(&model.User{Email: "user@example.com"}, nil)
			},
			want: false,
		},
		{
			name:  "unknown email is not an admin and not an error",
			email: "ghost@example.com",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)
			svc := NewUserService(repo)

			admin, err := svc.IsAdmin(context.Background(), tt.email)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, admin)
		})
	}
}

func TestUserService_PromoteToAdmin(t *testing.T) {
	repo := new(MockUserRepository)
	id := uuid.New()
	repo.On("UpdateFields", mock.Anything, id, map[string]interface{}{"role": model.RoleAdmin}).
		Return(int64(1), nil)

	svc := NewUserService(repo)
	affected, err := svc.PromoteToAdmin(context.Background(), id)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	repo.AssertExpectations(t)
}

func TestUserService_Delete_AbsentIDIsNoOp(t *testing.T) {
	repo := new(MockUserRepository)
	id := uuid.New()
	repo.On("DeleteByID", mock.Anything, id).Return(int64(0), nil)

	svc := NewUserService(repo)
	deleted, err := svc.Delete(context.Background(), id)

	assert.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
}
