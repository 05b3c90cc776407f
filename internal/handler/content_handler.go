package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "mentoria/internal/errors"
	"mentoria/internal/model"
	"mentoria/internal/service"
)

// ContentHandler serves testimonials, articles and the contact form.
type ContentHandler struct {
	contentService service.ContentService
	log            *zap.Logger
}

// NewContentHandler creates a new content handler.
func NewContentHandler(contentService service.ContentService, log *zap.Logger) *ContentHandler {
	return &ContentHandler{contentService: contentService, log: log}
}

// ContactRequest represents a contact form submission.
type ContactRequest struct {
	Name    string `json:"name" form:"name" validate:"required,max=100"`
	Email   string `json:"email" form:"email" validate:"required,email,max=120"`
	Phone   string `json:"phone" form:"phone" validate:"omitempty,max=20"`
	Message string `json:"message" form:"message" validate:"required"`
}

// Home godoc
// @Summary Landing page
// @Tags pages
// @Produce json
// @Success 200 {object} PageResponse
// @Router / [get]
func (h *ContentHandler) Home(c echo.Context) error {
	return renderPage(c, "index")
}

// ListTestimonials godoc
// @Summary List testimonials
// @Tags content
// @Produce json
// @Param limit query int false "Maximum number of items (default 10, max 100)"
// @Success 200 {array} model.Testimonial
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/testimonials [get]
func (h *ContentHandler) ListTestimonials(c echo.Context) error {
	items, err := h.contentService.ListTestimonials(c.Request().Context(), limitParam(c))
	if err != nil {
		return h.internalError("failed to list testimonials", err)
	}
	if items == nil {
		items = []model.Testimonial{}
	}
	return c.JSON(http.StatusOK, items)
}

// ListArticles godoc
// @Summary List articles
// @Tags content
// @Produce json
// @Param limit query int false "Maximum number of items (default 10, max 100)"
// @Success 200 {array} model.Article
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/articles [get]
func (h *ContentHandler) ListArticles(c echo.Context) error {
	items, err := h.contentService.ListArticles(c.Request().Context(), limitParam(c))
	if err != nil {
		return h.internalError("failed to list articles", err)
	}
	if items == nil {
		items = []model.Article{}
	}
	return c.JSON(http.StatusOK, items)
}

// SubmitContact godoc
// @Summary Send a contact message
// @Tags content
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param request body ContactRequest true "Contact message"
// @Success 201 {object} model.Contact
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/contact [post]
func (h *ContentHandler) SubmitContact(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid request body",
			Code:  "VALIDATION_ERROR",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	contact := &model.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
	if req.Phone != "" {
		contact.Phone = &req.Phone
	}

	if err := h.contentService.SubmitContact(c.Request().Context(), contact); err != nil {
		return h.internalError("failed to save contact", err)
	}
	return c.JSON(http.StatusCreated, contact)
}

func (h *ContentHandler) internalError(msg string, err error) error {
	h.log.Error(msg, zap.Error(err))
	httpErr := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func limitParam(c echo.Context) int {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil {
		return 0
	}
	return limit
}
