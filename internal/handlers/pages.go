package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageHandler serves the embedded admin pages. The pages are thin: they
// render static markup and drive everything through the JSON API.
type PageHandler struct{}

// NewPageHandler creates a new PageHandler
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Root redirects the site root to the login page. The gatekeeper sends
// authenticated requests to the dashboard before this handler runs.
func (h *PageHandler) Root(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/login")
}

// Login renders the login page.
func (h *PageHandler) Login(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"Title": "Sign in"})
}

// Dashboard renders the listings moderation dashboard.
func (h *PageHandler) Dashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "dashboard.html", gin.H{"Title": "Listings"})
}

// AuditLog renders the audit trail page.
func (h *PageHandler) AuditLog(c *gin.Context) {
	c.HTML(http.StatusOK, "audit_log.html", gin.H{"Title": "Audit log"})
}
