package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"hostelms/internal/auth"
	"hostelms/internal/config"
	apperrors "hostelms/internal/errors"
	"hostelms/internal/handler"
	"hostelms/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	hostelHandler *handler.HostelHandler,
	reportHandler *handler.ReportHandler,
	settingHandler *handler.SettingHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.AllowedOrigin},
		AllowCredentials: true,
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	// Single place mapping typed errors to status codes and the response
	// envelope.
	e.HTTPErrorHandler = httpErrorHandler

	e.GET("/api/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, handler.Envelope{
			Success: true,
			Message: "server is running",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return apperrors.Auth("invalid or expired token")
		},
	}))

	secured.GET("/auth/me", authHandler.Me)
	secured.POST("/auth/logout", authHandler.Logout)

	// Hostel routes: list/get open to any authenticated user, the creator
	// becomes the owner, update/delete are owner-or-admin (checked against
	// the stored record in the service).
	hostels := secured.Group("/hostel")
	hostels.POST("", hostelHandler.Create)
	hostels.GET("", hostelHandler.List)
	hostels.GET("/:id", hostelHandler.Get)
	hostels.PUT("/:id", hostelHandler.Update)
	hostels.DELETE("/:id", hostelHandler.Delete)

	// Report routes are admin-only, dashboard stats included.
	reports := secured.Group("/reports", requireRoles(model.RoleAdmin))
	reports.GET("/dashboard/stats", reportHandler.DashboardStats)
	reports.POST("", reportHandler.Create)
	reports.GET("", reportHandler.List)
	reports.GET("/:id", reportHandler.Get)
	reports.DELETE("/:id", reportHandler.Delete)

	// Setting routes: reads open to authenticated users, writes admin-only.
	settings := secured.Group("/settings")
	settings.GET("", settingHandler.List)
	settings.GET("/:key", settingHandler.Get)
	settings.PUT("/:key", settingHandler.Upsert, requireRoles(model.RoleAdmin))
	settings.DELETE("/:key", settingHandler.Delete, requireRoles(model.RoleAdmin))

	// User routes: list/delete admin-only, get/update self-or-admin (checked
	// in the service).
	users := secured.Group("/users")
	users.GET("", userHandler.List, requireRoles(model.RoleAdmin))
	users.GET("/profile/me", userHandler.Profile)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete, requireRoles(model.RoleAdmin))
}

// requireRoles denies callers whose role is outside the allowed set before
// the handler runs.
func requireRoles(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ident, err := handler.CurrentIdentity(c)
			if err != nil {
				return err
			}
			if err := auth.CheckRole(ident, roles...); err != nil {
				return err
			}
			return next(c)
		}
	}
}

// httpErrorHandler maps typed domain errors to HTTP status codes and the
// uniform response envelope. Anything unrecognised becomes a generic 500
// with the error detail attached.
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	env := handler.Envelope{Message: "internal server error"}

	if appErr, ok := apperrors.AsError(err); ok {
		status = appErr.StatusCode()
		env.Message = appErr.Message
		if appErr.Kind == apperrors.KindInternal && appErr.Err != nil {
			env.Error = appErr.Err.Error()
		}
	} else if verrs, ok := err.(validator.ValidationErrors); ok {
		status = http.StatusBadRequest
		env.Message = "invalid request"
		env.Error = verrs.Error()
	} else if echoErr, ok := err.(*echo.HTTPError); ok {
		status = echoErr.Code
		if msg, ok := echoErr.Message.(string); ok {
			env.Message = msg
		}
	} else {
		env.Error = err.Error()
	}

	var respErr error
	if c.Request().Method == http.MethodHead {
		respErr = c.NoContent(status)
	} else {
		respErr = c.JSON(status, env)
	}
	if respErr != nil {
		c.Logger().Error(respErr)
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
