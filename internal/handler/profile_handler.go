package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "mentoria/internal/errors"
	"mentoria/internal/flash"
	"mentoria/internal/model"
	"mentoria/internal/service"
	"mentoria/internal/textfmt"
)

// ProfileHandler serves the Carômetro questionnaire.
type ProfileHandler struct {
	profileService service.ProfileService
	log            *zap.Logger
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profileService service.ProfileService, log *zap.Logger) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, log: log}
}

// ProfileResponse is the caller's profile plus presentation helpers.
type ProfileResponse struct {
	*model.Profile
	DisplayNameTitle string `json:"display_name_title"`
}

// Submit godoc
// @Summary Submit the Carômetro questionnaire
// @Description Creates or overwrites the caller's profile from the posted form.
// @Description Repeated groups accept experiences[][description] (parallel) or experiences[0][description] (indexed).
// @Tags mentores
// @Accept x-www-form-urlencoded
// @Param display_name formData string true "Display name"
// @Param current_role formData string false "Current role"
// @Param company formData string false "Company"
// @Param start_year_company formData int false "Year joined the company"
// @Param city formData string false "City"
// @Param linkedin formData string false "LinkedIn URL"
// @Param marital_status formData string false "Single, Engaged or Married"
// @Param spouse_name formData string false "Spouse name"
// @Param children_number formData int false "Number of children"
// @Param pet_count formData int false "Number of pets"
// @Param pet_species_list formData string false "Comma separated species"
// @Param agree_terms formData string false "on to consent"
// @Success 302 "Redirect to /tests on success, /test_01 on failure"
// @Router /api/mentores [post]
func (h *ProfileHandler) Submit(c echo.Context) error {
	claims := currentUser(c)
	if claims == nil {
		return c.Redirect(http.StatusFound, LoginRedirect(c.Request().URL.Path))
	}

	form, err := c.FormParams()
	if err != nil {
		flash.Add(c, flash.Error, "Error saving profile: invalid form data")
		return c.Redirect(http.StatusFound, "/test_01")
	}

	if _, err := h.profileService.Submit(c.Request().Context(), claims.UserID, form); err != nil {
		flash.Add(c, flash.Error, "Error saving profile: "+submitMessage(err))
		return c.Redirect(http.StatusFound, "/test_01")
	}

	flash.Add(c, flash.Success, "Profile saved successfully!")
	return c.Redirect(http.StatusFound, "/tests")
}

func submitMessage(err error) string {
	var ve *apperrors.ValidationError
	switch {
	case errors.As(err, &ve):
		return ve.Error()
	case errors.Is(err, apperrors.ErrProfileConflict):
		return apperrors.ErrProfileConflict.Error()
	default:
		return apperrors.ErrProfileSave.Error()
	}
}

// Me godoc
// @Summary Get the caller's profile
// @Tags mentores
// @Produce json
// @Success 200 {object} ProfileResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/mentores/me [get]
func (h *ProfileHandler) Me(c echo.Context) error {
	claims := currentUser(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
			Error: "not logged in",
			Code:  "UNAUTHORIZED",
		})
	}

	profile, err := h.profileService.GetByUser(c.Request().Context(), claims.UserID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			h.log.Error("failed to load profile", zap.Uint("user_id", claims.UserID), zap.Error(err))
		}
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, ProfileResponse{
		Profile:          profile,
		DisplayNameTitle: textfmt.TitleExceptPrepositions(profile.DisplayName),
	})
}
