package middleware

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"mentoria/internal/flash"
	"mentoria/internal/handler"
	"mentoria/internal/service"
)

// RequireSession admits requests carrying a valid, non-revoked session cookie and stores
// the claims under handler.UserContextKey. Anyone else is sent to the login page.
func RequireSession(authService service.AuthService, cookieName string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "cookie:" + cookieName,
		ContextKey:  handler.UserContextKey,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return authService.Authenticate(c.Request().Context(), token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			flash.Add(c, flash.Error, "Please log in to access this area.")
			return c.Redirect(http.StatusFound, handler.LoginRedirect(c.Request().URL.RequestURI()))
		},
	})
}
