package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bistroboss/internal/model"
	"bistroboss/internal/repository"
)

// UserService handles user lifecycle and the role lookup behind the
// authorization gate.
type UserService interface {
	List(ctx context.Context) ([]model.User, error)
	// Register inserts the user unless one with the same email already
	// exists. A nil inserted id means the user was already present.
	Register(ctx context.Context, user *model.User) (*uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	PromoteToAdmin(ctx context.Context, id uuid.UUID) (int64, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

// Register is insert-if-absent: a read-then-write that tolerates the race
// where two first sign-ins land at once, since the email unique index stops
// the second insert anyway.
func (s *userService) Register(ctx context.Context, user *model.User) (*uuid.UUID, error) {
	existing, err := s.repo.FindByEmail(ctx, user.Email)
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	if existing != nil {
		return nil, nil
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &user.ID, nil
}

func (s *userService) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	return s.repo.DeleteByID(ctx, id)
}

func (s *userService) PromoteToAdmin(ctx context.Context, id uuid.UUID) (int64, error) {
	return s.repo.UpdateFields(ctx, id, map[string]interface{}{"role": model.RoleAdmin})
}

// IsAdmin reports whether the email maps to a user holding the admin role.
// An unknown email is simply not an admin, not an error.
func (s *userService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, nil
		}
		return false, fmt.Errorf("find user by email: %w", err)
	}
	return user.IsAdmin(), nil
}
