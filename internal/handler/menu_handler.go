package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"bistroboss/internal/errors"
	"bistroboss/internal/model"
	"bistroboss/internal/service"
)

// MenuHandler handles menu catalog endpoints. Reads are public, writes are
// admin-only at the router.
type MenuHandler struct {
	menu service.MenuService
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(menu service.MenuService) *MenuHandler {
	return &MenuHandler{menu: menu}
}

// CreateMenuItemRequest is a new catalog entry.
type CreateMenuItemRequest struct {
	Name     string          `json:"name" validate:"required"`
	Category string          `json:"category" validate:"required"`
	Price    decimal.Decimal `json:"price"`
	Recipe   string          `json:"recipe"`
	Image    string          `json:"image"`
}

// UpdateMenuItemRequest is a partial catalog edit; omitted fields are left
// untouched.
type UpdateMenuItemRequest struct {
	Name     *string          `json:"name"`
	Category *string          `json:"category"`
	Price    *decimal.Decimal `json:"price"`
	Recipe   *string          `json:"recipe"`
	Image    *string          `json:"image"`
}

// List godoc
// @Summary List the menu catalog
// @Tags menu
// @Produce json
// @Success 200 {array} model.MenuItem
// @Router /menu [get]
func (h *MenuHandler) List(c echo.Context) error {
	items, err := h.menu.List(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, items)
}

// Get godoc
// @Summary Get a single menu item
// @Tags menu
// @Produce json
// @Param id path string true "Menu item id"
// @Success 200 {object} model.MenuItem
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /menu/{id} [get]
func (h *MenuHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	item, err := h.menu.Get(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, item)
}

// Create godoc
// @Summary Add a menu item
// @Tags menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateMenuItemRequest true "Menu item"
// @Success 200 {object} InsertResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /menu [post]
func (h *MenuHandler) Create(c echo.Context) error {
	var req CreateMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if !req.Price.IsPositive() {
		return domainError(errors.ErrInvalidPrice)
	}

	item := &model.MenuItem{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Recipe:   req.Recipe,
		Image:    req.Image,
	}
	if err := h.menu.Create(c.Request().Context(), item); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, InsertResult{InsertedID: item.ID})
}

// Update godoc
// @Summary Edit fields of a menu item
// @Tags menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Menu item id"
// @Param request body UpdateMenuItemRequest true "Fields to change"
// @Success 200 {object} UpdateResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /menu/{id} [patch]
func (h *MenuHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req UpdateMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Price != nil && !req.Price.IsPositive() {
		return domainError(errors.ErrInvalidPrice)
	}

	affected, err := h.menu.Update(c.Request().Context(), id, service.MenuItemUpdate{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Recipe:   req.Recipe,
		Image:    req.Image,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, UpdateResult{MatchedCount: affected, ModifiedCount: affected})
}

// Delete godoc
// @Summary Remove a menu item
// @Tags menu
// @Produce json
// @Security BearerAuth
// @Param id path string true "Menu item id"
// @Success 200 {object} DeleteResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /menu/{id} [delete]
func (h *MenuHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	deleted, err := h.menu.Delete(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, DeleteResult{DeletedCount: deleted})
}
