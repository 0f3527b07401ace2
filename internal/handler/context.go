package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"bistroboss/internal/auth"
	"bistroboss/internal/errors"
)

// claimsFrom returns the verified claims the token middleware attached to
// the request.
func claimsFrom(c echo.Context) (*auth.Claims, error) {
	claims, ok := c.Get("user").(*auth.Claims)
	if !ok || claims == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{Message: "Unauthorized"})
	}
	return claims, nil
}

// pathID parses the :id path parameter into a store id; failure is a client
// error.
func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Message: errors.ErrInvalidID.Error()})
	}
	return id, nil
}

// DeleteResult mirrors the store's delete outcome; zero deleted is success.
type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

// UpdateResult mirrors the store's partial-update outcome.
type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// InsertResult reports a successful insert.
type InsertResult struct {
	InsertedID uuid.UUID `json:"insertedId"`
}

func domainError(err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
