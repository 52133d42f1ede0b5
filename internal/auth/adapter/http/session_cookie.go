package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// SessionCookieManager binds session tokens to an HTTP cookie. In production
// the cookie is Secure with SameSite=None; otherwise non-secure SameSite=Lax.
type SessionCookieManager struct {
	name       string
	path       string
	maxAge     time.Duration
	production bool
}

// NewSessionCookieManager creates a cookie manager for the session cookie.
func NewSessionCookieManager(name, path string, maxAge time.Duration, production bool) *SessionCookieManager {
	return &SessionCookieManager{
		name:       name,
		path:       path,
		maxAge:     maxAge,
		production: production,
	}
}

// Name returns the session cookie name.
func (m *SessionCookieManager) Name() string {
	return m.name
}

// Attach sets the session cookie carrying token on the response.
func (m *SessionCookieManager) Attach(c *fiber.Ctx, token string) {
	c.Cookie(m.cookie(token, int(m.maxAge.Seconds()), time.Now().Add(m.maxAge)))
}

// Clear expires the session cookie. Attributes must match Attach exactly or
// some clients will not drop the cookie.
func (m *SessionCookieManager) Clear(c *fiber.Ctx) {
	c.Cookie(m.cookie("", -1, time.Now().Add(-time.Hour)))
}

func (m *SessionCookieManager) cookie(value string, maxAge int, expires time.Time) *fiber.Cookie {
	sameSite := fiber.CookieSameSiteLaxMode
	if m.production {
		sameSite = fiber.CookieSameSiteNoneMode
	}
	return &fiber.Cookie{
		Name:     m.name,
		Value:    value,
		Path:     m.path,
		MaxAge:   maxAge,
		Expires:  expires,
		Secure:   m.production,
		HTTPOnly: true,
		SameSite: sameSite,
	}
}
