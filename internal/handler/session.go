package handler

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"mentoria/internal/auth"
)

const (
	// UserContextKey is where the session guard stores the caller's claims.
	UserContextKey = "user"

	defaultAfterLogin = "/mentor_area"
)

// SessionCookie describes the cookie carrying the session token.
type SessionCookie struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

func (s SessionCookie) set(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     s.Name,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.TTL.Seconds()),
	})
}

func (s SessionCookie) clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     s.Name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

func (s SessionCookie) token(c echo.Context) string {
	cookie, err := c.Cookie(s.Name)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// currentUser returns the claims set by the session guard, or nil on public routes.
func currentUser(c echo.Context) *auth.Claims {
	claims, _ := c.Get(UserContextKey).(*auth.Claims)
	return claims
}

// safeNext accepts only local absolute paths so login cannot redirect off-site.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, `\`) {
		return ""
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return ""
	}
	return next
}

// LoginRedirect builds the login URL that brings the visitor back to path afterwards.
func LoginRedirect(path string) string {
	if safeNext(path) == "" {
		return "/login"
	}
	return "/login?next=" + url.QueryEscape(path)
}
