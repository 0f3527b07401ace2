package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"bistroboss/internal/errors"
	"bistroboss/internal/model"
	"bistroboss/internal/service"
)

// UserHandler handles user endpoints.
type UserHandler struct {
	users service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(users service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// RegisterUserRequest is the first-sign-in user record.
type RegisterUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	PhotoURL string `json:"photoURL"`
}

// RegisterUserResponse reports the insert-if-absent outcome. A nil inserted
// id with a message means the user already existed.
type RegisterUserResponse struct {
	Message    string     `json:"message,omitempty"`
	InsertedID *uuid.UUID `json:"insertedId"`
}

// AdminStatusResponse reports whether an email holds the admin role.
type AdminStatusResponse struct {
	Admin bool `json:"admin"`
}

// List godoc
// @Summary List all users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// Register godoc
// @Summary Save a user on first sign-in, skipping duplicates
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterUserRequest true "User record"
// @Success 200 {object} RegisterUserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		PhotoURL: req.PhotoURL,
	}
	insertedID, err := h.users.Register(c.Request().Context(), user)
	if err != nil {
		return domainError(err)
	}
	if insertedID == nil {
		return c.JSON(http.StatusOK, RegisterUserResponse{Message: "User already exist", InsertedID: nil})
	}
	return c.JSON(http.StatusOK, RegisterUserResponse{InsertedID: insertedID})
}

// Delete godoc
// @Summary Delete a user by id
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User id"
// @Success 200 {object} DeleteResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	deleted, err := h.users.Delete(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, DeleteResult{DeletedCount: deleted})
}

// PromoteAdmin godoc
// @Summary Grant the admin role to a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User id"
// @Success 200 {object} UpdateResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /users/admin/{id} [patch]
func (h *UserHandler) PromoteAdmin(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	affected, err := h.users.PromoteToAdmin(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, UpdateResult{MatchedCount: affected, ModifiedCount: affected})
}

// AdminStatus godoc
// @Summary Report whether the caller's email holds the admin role
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param email path string true "Email, must match the caller"
// @Success 200 {object} AdminStatusResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /users/admin/{email} [get]
func (h *UserHandler) AdminStatus(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}

	email := c.Param("email")
	if email == "" {
		email = c.Param("id")
	}
	// A caller may only ask about itself.
	if email != claims.Email {
		return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{Message: "Forbidden"})
	}

	admin, err := h.users.IsAdmin(c.Request().Context(), email)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, AdminStatusResponse{Admin: admin})
}
