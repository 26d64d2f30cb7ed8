package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/raihanmz/portfolio-backend/internal/services"
)

type DashboardHandler struct {
	svc   services.DashboardService
	audit services.AuditService
}

func NewDashboardHandler(svc services.DashboardService, audit services.AuditService) *DashboardHandler {
	return &DashboardHandler{svc: svc, audit: audit}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	st, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func (h *DashboardHandler) Load(c *gin.Context) {
	d, err := h.svc.Load(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *DashboardHandler) Audit(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "100"), 10, 64)

	rows, err := h.audit.ListRecent(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
