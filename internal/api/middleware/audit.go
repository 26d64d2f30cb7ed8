package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/raihanmz/portfolio-backend/internal/models"
	"github.com/raihanmz/portfolio-backend/internal/services"
)

// AuditTrail records successful admin mutations after the handler ran.
// Reads and failed requests are skipped.
func AuditTrail(audit services.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		method := c.Request.Method
		if method == "GET" || method == "HEAD" || method == "OPTIONS" {
			return
		}
		status := c.Writer.Status()
		if status >= 400 {
			return
		}

		adminID, _ := c.Get("admin_id")
		reqID, _ := c.Get("request_id")
		path := c.FullPath()

		entity := path
		if i := strings.LastIndex(path, "/"); i >= 0 {
			entity = path[i+1:]
		}

		audit.Record(c.Request.Context(), &models.AuditEntry{
			AdminID:   asString(adminID),
			Method:    method,
			Path:      path,
			Entity:    entity,
			Status:    status,
			RequestID: asString(reqID),
		})
	}
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}
