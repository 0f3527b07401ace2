package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"bistroboss/internal/auth"
	"bistroboss/internal/config"
	"bistroboss/internal/errors"
	"bistroboss/internal/handler"
	"bistroboss/internal/service"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	tokens *auth.TokenService,
	users service.UserService,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	menuHandler *handler.MenuHandler,
	reviewHandler *handler.ReviewHandler,
	cartHandler *handler.CartHandler,
	paymentHandler *handler.PaymentHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	// Bound every request context so a slow store call cannot pin the pool.
	e.Use(middleware.ContextTimeout(cfg.StoreTimeout))

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Server running")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/jwt", authHandler.IssueToken)
	e.POST("/users", userHandler.Register)
	e.GET("/menu", menuHandler.List)
	e.GET("/menu/:id", menuHandler.Get)
	e.GET("/reviews", reviewHandler.List)

	// Authenticated routes: the bearer token proves identity only.
	secured := e.Group("", VerifyToken(tokens))

	secured.GET("/users/admin/:email", userHandler.AdminStatus)
	secured.GET("/carts", cartHandler.List)
	secured.POST("/carts", cartHandler.Add)
	secured.DELETE("/carts/:id", cartHandler.Delete)
	secured.POST("/create-payment-intent", paymentHandler.CreateIntent)
	secured.GET("/payments/:email", paymentHandler.History)
	secured.POST("/payments", paymentHandler.Settle)

	// Admin routes: a second gate behind token verification, because a valid
	// token proves identity, not privilege.
	admin := secured.Group("", RequireAdmin(users))

	admin.GET("/users", userHandler.List)
	admin.DELETE("/users/:id", userHandler.Delete)
	admin.PATCH("/users/admin/:id", userHandler.PromoteAdmin)
	admin.POST("/menu", menuHandler.Create)
	admin.PATCH("/menu/:id", menuHandler.Update)
	admin.DELETE("/menu/:id", menuHandler.Delete)
	admin.GET("/admin-states", paymentHandler.AdminStats)
}

// VerifyToken validates the Authorization bearer token and attaches the
// decoded claims to the request. Missing, malformed and expired tokens all
// terminate the request with 401.
func VerifyToken(tokens *auth.TokenService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return tokens.ValidateToken(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{Message: "Unauthorized"})
		},
	})
}

// RequireAdmin allows the request only when the claimed email maps to a user
// holding the admin role.
func RequireAdmin(users service.UserService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get("user").(*auth.Claims)
			if !ok || claims == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{Message: "Unauthorized"})
			}

			admin, err := users.IsAdmin(c.Request().Context(), claims.Email)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{Message: "internal server error"})
			}
			if !admin {
				return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{Message: "Forbidden"})
			}
			return next(c)
		}
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
