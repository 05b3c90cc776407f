package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"mentoria/docs"
	"mentoria/internal/config"
	"mentoria/internal/flash"
	"mentoria/internal/handler"
	"mentoria/internal/middleware"
	"mentoria/internal/service"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	log *zap.Logger,
	authService service.AuthService,
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	contentHandler *handler.ContentHandler,
) {
	e.Use(echomw.RequestID())
	e.Use(middleware.RequestLogger(log))
	e.Use(echomw.Recover())
	e.Use(flash.Middleware(flash.NewStore(cfg.SecretKey, cfg.CookieSecure)))

	e.Validator = &CustomValidator{validator: validator.New()}

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public pages
	e.GET("/", contentHandler.Home)
	e.GET("/about", handler.Page("about"))
	e.GET("/login", authHandler.ShowLogin)
	e.POST("/login", authHandler.Login)
	e.GET("/register", authHandler.ShowRegister)
	e.POST("/register", authHandler.Register)

	api := e.Group("/api")
	api.GET("/testimonials", contentHandler.ListTestimonials)
	api.GET("/articles", contentHandler.ListArticles)
	api.POST("/contact", contentHandler.SubmitContact)

	// Secured routes (require a session cookie)
	secured := e.Group("", middleware.RequireSession(authService, cfg.SessionCookie))

	secured.GET("/logout", authHandler.Logout)
	secured.POST("/account/delete", authHandler.DeleteAccount)
	secured.GET("/profile", handler.Page("profile"))
	secured.GET("/mentor_area", handler.Page("mentor_area"))
	secured.GET("/modulo_01", handler.Page("modulo_01"))
	secured.GET("/tests", handler.Page("tests"))
	secured.GET("/test_01", handler.Page("test_01"))

	secured.POST("/api/mentores", profileHandler.Submit)
	secured.GET("/api/mentores/me", profileHandler.Me)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
