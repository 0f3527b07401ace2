package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"bistroboss/internal/errors"
	"bistroboss/internal/service"
)

// CartHandler handles cart endpoints.
type CartHandler struct {
	carts service.CartService
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(carts service.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

// AddCartItemRequest adds a menu item to the caller's cart. Ownership and
// the price snapshot come from the server, not the body.
type AddCartItemRequest struct {
	MenuItemID string `json:"menuItemId" validate:"required"`
}

// List godoc
// @Summary List cart items for an email
// @Tags carts
// @Produce json
// @Security BearerAuth
// @Param email query string true "Owner email"
// @Success 200 {array} model.CartItem
// @Failure 401 {object} errors.ErrorResponse
// @Router /carts [get]
func (h *CartHandler) List(c echo.Context) error {
	items, err := h.carts.ListByEmail(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, items)
}

// Add godoc
// @Summary Add a menu item to the caller's cart
// @Tags carts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddCartItemRequest true "Menu item reference"
// @Success 200 {object} InsertResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /carts [post]
func (h *CartHandler) Add(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}

	var req AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	menuItemID, err := uuid.Parse(req.MenuItemID)
	if err != nil {
		return domainError(errors.ErrInvalidID)
	}

	item, err := h.carts.Add(c.Request().Context(), claims.Email, menuItemID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, InsertResult{InsertedID: item.ID})
}

// Delete godoc
// @Summary Remove a cart item
// @Tags carts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cart item id"
// @Success 200 {object} DeleteResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /carts/{id} [delete]
func (h *CartHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	deleted, err := h.carts.Delete(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, DeleteResult{DeletedCount: deleted})
}
