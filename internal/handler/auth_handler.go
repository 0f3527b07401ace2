package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bistroboss/internal/auth"
)

// AuthHandler issues access tokens.
type AuthHandler struct {
	tokens *auth.TokenService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{tokens: tokens}
}

// TokenRequest is the identity payload a token is issued for. The identity
// is already authenticated upstream and trusted as supplied.
type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}

// TokenResponse carries the signed token.
type TokenResponse struct {
	Token string `json:"token"`
}

// IssueToken godoc
// @Summary Issue a signed access token for an authenticated identity
// @Tags auth
// @Accept json
// @Produce json
// @Param request body TokenRequest true "Identity payload"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /jwt [post]
func (h *AuthHandler) IssueToken(c echo.Context) error {
	var req TokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.tokens.GenerateToken(req.Email, req.Name)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, TokenResponse{Token: token})
}
