package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Decision is the gatekeeper's verdict for a single request.
type Decision int

const (
	// Allow lets the request through.
	Allow Decision = iota
	// RedirectLogin sends the request to the login page.
	RedirectLogin
	// RedirectDashboard sends the request to the dashboard.
	RedirectDashboard
)

// Decide applies the access rules, in order, to a request path given
// whether the session marker is valid. It is a pure function; the
// middleware owns the side effects.
//
// Rules:
//  1. Static assets and the login-submission endpoint are always allowed.
//  2. Authenticated requests to the login page or site root go to the dashboard.
//  3. Unauthenticated requests to the dashboard or listings API go to login.
//  4. Everything else is allowed.
func Decide(path string, authenticated bool) Decision {
	switch {
	case strings.HasPrefix(path, "/static/"),
		path == "/favicon.ico",
		path == "/api/auth/login":
		return Allow
	case authenticated && (path == "/login" || path == "/"):
		return RedirectDashboard
	case !authenticated && (strings.HasPrefix(path, "/dashboard") || strings.HasPrefix(path, "/api/listings")):
		return RedirectLogin
	default:
		return Allow
	}
}

// Gatekeeper validates the session cookie on every request and enforces
// the access rules. On a valid session it stores the operator username
// in the context under "admin".
func Gatekeeper() gin.HandlerFunc {
	return func(c *gin.Context) {
		authenticated := false
		if cookie, err := c.Cookie(CookieName); err == nil && cookie != "" {
			if username, err := ValidateSessionToken(cookie); err == nil {
				authenticated = true
				c.Set("admin", username)
			}
		}

		switch Decide(c.Request.URL.Path, authenticated) {
		case RedirectDashboard:
			c.Redirect(http.StatusSeeOther, "/dashboard")
			c.Abort()
		case RedirectLogin:
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
		default:
			c.Next()
		}
	}
}
