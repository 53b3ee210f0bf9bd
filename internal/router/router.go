package router

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"spendtrack/internal/auth"
	"spendtrack/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	incomeHandler *handler.TransactionHandler,
	expenseHandler *handler.TransactionHandler,
	summaryHandler *handler.SummaryHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = HTTPErrorHandler

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)

	// Secured routes: bearer token validated statelessly, then the embedded
	// user id is structurally checked and placed in the request context.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.ValidateToken(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if errors.Is(err, echojwt.ErrJWTMissing) {
				return echo.NewHTTPError(http.StatusUnauthorized, "No token provided")
			}
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
		},
	}), auth.ExtractUser)

	secured.POST("/add-income", incomeHandler.Add)
	secured.GET("/get-income", incomeHandler.List)
	secured.PUT("/update-income/:id", incomeHandler.Update)
	secured.DELETE("/delete-income/:id", incomeHandler.Delete)

	secured.POST("/add-expense", expenseHandler.Add)
	secured.GET("/get-expense", expenseHandler.List)
	secured.PUT("/update-expense/:id", expenseHandler.Update)
	secured.DELETE("/delete-expense/:id", expenseHandler.Delete)

	secured.GET("/summary", summaryHandler.Get)
}

// HTTPErrorHandler renders every error in the uniform response envelope.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	}

	_ = c.JSON(code, handler.Response{Success: false, Message: message})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
