package handler

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "mentoria/internal/errors"
	"mentoria/internal/flash"
	"mentoria/internal/service"
)

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	authService service.AuthService
	session     SessionCookie
	log         *zap.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, session SessionCookie, log *zap.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, session: session, log: log}
}

// RegisterRequest represents a registration form.
type RegisterRequest struct {
	Username        string `form:"username" validate:"required,max=150"`
	Email           string `form:"email" validate:"required,email,max=255"`
	Password        string `form:"password" validate:"required,min=6"`
	ConfirmPassword string `form:"confirm_password" validate:"required,eqfield=Password"`
}

// LoginRequest represents a login form.
type LoginRequest struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
	Next     string `form:"next"`
}

// DeleteAccountRequest confirms account removal with the current password.
type DeleteAccountRequest struct {
	Password string `form:"password" validate:"required"`
}

// authenticated reports whether the request already carries a live session.
func (h *AuthHandler) authenticated(c echo.Context) bool {
	token := h.session.token(c)
	if token == "" {
		return false
	}
	_, err := h.authService.Authenticate(c.Request().Context(), token)
	return err == nil
}

// ShowRegister godoc
// @Summary Registration page
// @Tags auth
// @Produce json
// @Success 200 {object} PageResponse
// @Success 302 "Already logged in, redirected to /mentor_area"
// @Router /register [get]
func (h *AuthHandler) ShowRegister(c echo.Context) error {
	if h.authenticated(c) {
		return c.Redirect(http.StatusFound, defaultAfterLogin)
	}
	return renderPage(c, "register")
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept x-www-form-urlencoded
// @Param username formData string true "Username"
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Param confirm_password formData string true "Password confirmation"
// @Success 302 "Redirect to /login on success, /register on failure"
// @Router /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	if h.authenticated(c) {
		return c.Redirect(http.StatusFound, defaultAfterLogin)
	}

	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		flash.Add(c, flash.Error, "Invalid registration form.")
		return c.Redirect(http.StatusFound, "/register")
	}
	if err := c.Validate(&req); err != nil {
		flash.Add(c, flash.Error, registrationMessage(err))
		return c.Redirect(http.StatusFound, "/register")
	}

	_, err := h.authService.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	switch {
	case err == nil:
		flash.Add(c, flash.Success, "Registration successful! Please log in.")
		return c.Redirect(http.StatusFound, "/login")
	case errors.Is(err, apperrors.ErrUsernameTaken):
		flash.Add(c, flash.Error, "Username already exists.")
	case errors.Is(err, apperrors.ErrEmailTaken):
		flash.Add(c, flash.Error, "Email already registered.")
	default:
		h.log.Error("registration failed", zap.Error(err))
		flash.Add(c, flash.Error, "Registration failed. Please try again.")
	}
	return c.Redirect(http.StatusFound, "/register")
}

func registrationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "Invalid registration form."
	}
	fe := fieldErrs[0]
	switch {
	case fe.Field() == "ConfirmPassword" && fe.Tag() == "eqfield":
		return "Passwords do not match."
	case fe.Field() == "Email":
		return "Please provide a valid email address."
	case fe.Field() == "Password" && fe.Tag() == "min":
		return "Password must be at least 6 characters."
	case fe.Tag() == "required":
		return "All fields are required."
	default:
		return "Invalid registration form."
	}
}

// ShowLogin godoc
// @Summary Login page
// @Tags auth
// @Produce json
// @Param next query string false "Local path to return to after login"
// @Success 200 {object} PageResponse
// @Success 302 "Already logged in, redirected to /mentor_area"
// @Router /login [get]
func (h *AuthHandler) ShowLogin(c echo.Context) error {
	if h.authenticated(c) {
		return c.Redirect(http.StatusFound, defaultAfterLogin)
	}
	return renderPage(c, "login")
}

// Login godoc
// @Summary Log in
// @Description Sets the HttpOnly session cookie and redirects to next (local paths only) or /mentor_area.
// @Tags auth
// @Accept x-www-form-urlencoded
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Param next query string false "Local path to return to after login"
// @Success 302 "Redirect after login"
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	if h.authenticated(c) {
		return c.Redirect(http.StatusFound, defaultAfterLogin)
	}

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		flash.Add(c, flash.Error, "Invalid login or password.")
		return c.Redirect(http.StatusFound, "/login")
	}
	next := safeNext(c.QueryParam("next"))
	if next == "" {
		next = safeNext(req.Next)
	}

	failed := func() error {
		flash.Add(c, flash.Error, "Invalid login or password.")
		if next != "" {
			return c.Redirect(http.StatusFound, LoginRedirect(next))
		}
		return c.Redirect(http.StatusFound, "/login")
	}

	if err := c.Validate(&req); err != nil {
		return failed()
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			h.log.Error("login failed", zap.Error(err))
		}
		return failed()
	}

	h.session.set(c, token)
	h.log.Info("user logged in", zap.Uint("user_id", user.ID))

	if next == "" {
		next = defaultAfterLogin
	}
	return c.Redirect(http.StatusFound, next)
}

// Logout godoc
// @Summary Log out
// @Description Revokes the current session and clears the cookie.
// @Tags auth
// @Success 302 "Redirect to /"
// @Router /logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	if token := h.session.token(c); token != "" {
		if err := h.authService.Logout(c.Request().Context(), token); err != nil {
			h.log.Warn("failed to revoke session", zap.Error(err))
		}
	}
	h.session.clear(c)
	flash.Add(c, flash.Success, "You have been logged out.")
	return c.Redirect(http.StatusFound, "/")
}

// DeleteAccount godoc
// @Summary Delete the current account
// @Description Removes the user and their profile, revokes the session and clears the cookie.
// @Tags auth
// @Accept x-www-form-urlencoded
// @Param password formData string true "Current password"
// @Success 302 "Redirect to / on success, /profile on failure"
// @Router /account/delete [post]
func (h *AuthHandler) DeleteAccount(c echo.Context) error {
	var req DeleteAccountRequest
	if err := c.Bind(&req); err != nil || c.Validate(&req) != nil {
		flash.Add(c, flash.Error, "Please confirm with your password.")
		return c.Redirect(http.StatusFound, "/profile")
	}

	err := h.authService.DeleteAccount(c.Request().Context(), h.session.token(c), req.Password)
	switch {
	case err == nil:
		h.session.clear(c)
		flash.Add(c, flash.Success, "Your account has been deleted.")
		return c.Redirect(http.StatusFound, "/")
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		flash.Add(c, flash.Error, "Incorrect password.")
	case errors.Is(err, service.ErrInvalidSession):
		h.session.clear(c)
		flash.Add(c, flash.Error, "Please log in to access this area.")
		return c.Redirect(http.StatusFound, "/login")
	default:
		h.log.Error("account deletion failed", zap.Error(err))
		flash.Add(c, flash.Error, "Could not delete account. Please try again.")
	}
	return c.Redirect(http.StatusFound, "/profile")
}
