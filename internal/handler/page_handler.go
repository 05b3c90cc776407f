package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mentoria/internal/flash"
)

// PageResponse describes the page a browser would render, with the flashes it consumes.
type PageResponse struct {
	Page     string          `json:"page"`
	UserID   *uint           `json:"user_id,omitempty"`
	Username string          `json:"username,omitempty"`
	Next     string          `json:"next,omitempty"`
	Flashes  []flash.Message `json:"flashes"`
}

func renderPage(c echo.Context, page string) error {
	resp := PageResponse{
		Page:    page,
		Next:    safeNext(c.QueryParam("next")),
		Flashes: flash.Pop(c),
	}
	if resp.Flashes == nil {
		resp.Flashes = []flash.Message{}
	}
	if claims := currentUser(c); claims != nil {
		id := claims.UserID
		resp.UserID = &id
		resp.Username = claims.Username
	}
	return c.JSON(http.StatusOK, resp)
}

// Page returns a handler describing a static page.
//
// @Summary Site page
// @Tags pages
// @Produce json
// @Success 200 {object} PageResponse
// @Router /about [get]
// @Router /profile [get]
// @Router /mentor_area [get]
// @Router /modulo_01 [get]
// @Router /tests [get]
// @Router /test_01 [get]
func Page(name string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return renderPage(c, name)
	}
}
