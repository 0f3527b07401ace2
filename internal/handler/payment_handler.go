package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"bistroboss/internal/errors"
	"bistroboss/internal/gateway"
	"bistroboss/internal/service"
)

// PaymentHandler handles payment intents, settlement and history.
type PaymentHandler struct {
	payments service.PaymentService
	stats    service.StatsService
	gateway  gateway.PaymentGateway
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(payments service.PaymentService, stats service.StatsService, gateway gateway.PaymentGateway) *PaymentHandler {
	return &PaymentHandler{
		payments: payments,
		stats:    stats,
		gateway:  gateway,
	}
}

// PaymentIntentRequest asks the gateway for a client secret covering price.
type PaymentIntentRequest struct {
	Price decimal.Decimal `json:"price"`
}

// PaymentIntentResponse carries the gateway client secret.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// SettleRequest records a checkout: the paid amount, the gateway transaction
// and the cart item ids being settled.
type SettleRequest struct {
	Price         decimal.Decimal `json:"price"`
	TransactionID string          `json:"transactionId"`
	CartIDs       []string        `json:"cartIds" validate:"required,min=1"`
}

// SettleResponse reports the payment insert and the cart deletion outcomes
// separately.
type SettleResponse struct {
	PaymentResult InsertResult `json:"paymentResult"`
	DeleteResult  DeleteResult `json:"deleteResult"`
}

// CreateIntent godoc
// @Summary Create a payment intent for an amount
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PaymentIntentRequest true "Amount"
// @Success 200 {object} PaymentIntentResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /create-payment-intent [post]
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var req PaymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if !req.Price.IsPositive() {
		return domainError(errors.ErrInvalidPrice)
	}

	secret, err := h.gateway.CreateIntent(c.Request().Context(), req.Price)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, PaymentIntentResponse{ClientSecret: secret})
}

// History godoc
// @Summary List the caller's payments
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param email path string true "Email, must match the caller"
// @Success 200 {array} model.Payment
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /payments/{email} [get]
func (h *PaymentHandler) History(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}

	email := c.Param("email")
	// A caller may only read its own history.
	if email != claims.Email {
		return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{Message: "Forbidden"})
	}

	payments, err := h.payments.ListByEmail(c.Request().Context(), email)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, payments)
}

// Settle godoc
// @Summary Record a payment and clear the settled cart items
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SettleRequest true "Settlement"
// @Success 200 {object} SettleResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /payments [post]
func (h *PaymentHandler) Settle(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}

	var req SettleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if !req.Price.IsPositive() {
		return domainError(errors.ErrInvalidPrice)
	}

	cartIDs := make([]uuid.UUID, 0, len(req.CartIDs))
	for _, raw := range req.CartIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return domainError(errors.ErrInvalidID)
		}
		cartIDs = append(cartIDs, id)
	}

	result, err := h.payments.Settle(c.Request().Context(), claims.Email, req.Price, req.TransactionID, cartIDs)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, SettleResponse{
		PaymentResult: InsertResult{InsertedID: result.Payment.ID},
		DeleteResult:  DeleteResult{DeletedCount: result.DeletedCount},
	})
}

// AdminStats godoc
// @Summary Dashboard counts and total revenue
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.AdminStats
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin-states [get]
func (h *PaymentHandler) AdminStats(c echo.Context) error {
	stats, err := h.stats.AdminStats(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, stats)
}
