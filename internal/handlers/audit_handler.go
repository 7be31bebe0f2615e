package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentadmin/internal/models"
	"rentadmin/internal/services"
)

// AuditHandler handles audit trail requests
type AuditHandler struct {
	auditService services.AuditServicer
}

// NewAuditHandler creates a new AuditHandler
func NewAuditHandler(auditService services.AuditServicer) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// List handles the audit trail read
// @Summary     Get the audit trail
// @Description Get all audit entries, newest first
// @Tags        audit
// @Produce     json
// @Success     200 {object} map[string]interface{} "Audit entries"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /audit-log [get]
func (h *AuditHandler) List(c *gin.Context) {
	logs, err := h.auditService.List()
	if err != nil {
		respondWithError(c, err)
		return
	}
	if logs == nil {
		logs = []models.AuditLog{}
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs})
}
