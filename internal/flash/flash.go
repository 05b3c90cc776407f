// Package flash carries one-shot user messages across a redirect in a signed session cookie.
package flash

import (
	"encoding/gob"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	sessionName = "mentoria_flash"
	flashKey    = "messages"

	// Categories used by the handlers.
	Success = "success"
	Error   = "error"
)

// Message is a single flash entry.
type Message struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

func init() {
	gob.Register(Message{})
}

// NewStore returns a cookie store whose values are HMAC-signed with secret.
func NewStore(secret string, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	// also bounds the signed timestamp the codec accepts
	store.MaxAge(300)
	return store
}

// Middleware makes store available to Add and Pop.
func Middleware(store sessions.Store) echo.MiddlewareFunc {
	return session.Middleware(store)
}

// Add queues a message for the next page view.
func Add(c echo.Context, category, text string) {
	sess, err := session.Get(sessionName, c)
	if sess == nil {
		c.Logger().Warnf("flash: %v", err)
		return
	}
	sess.AddFlash(Message{Category: category, Text: text}, flashKey)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		c.Logger().Warnf("flash: save: %v", err)
	}
}

// Pop returns the queued messages and clears them.
// Cookies that fail signature verification yield nothing.
func Pop(c echo.Context) []Message {
	sess, err := session.Get(sessionName, c)
	if err != nil || sess == nil || sess.IsNew {
		return nil
	}

	raw := sess.Flashes(flashKey)
	if len(raw) == 0 {
		return nil
	}
	msgs := make([]Message, 0, len(raw))
	for _, v := range raw {
		if m, ok := v.(Message); ok {
			msgs = append(msgs, m)
		}
	}

	if len(sess.Values) == 0 {
		sess.Options.MaxAge = -1
	}
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		c.Logger().Warnf("flash: save: %v", err)
	}
	return msgs
}
