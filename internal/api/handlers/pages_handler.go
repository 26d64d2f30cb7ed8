package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/raihanmz/portfolio-backend/internal/services"
)

// PagesHandler serves the public site loaders. All reads go through the page
// cache; mutations elsewhere revalidate it.
type PagesHandler struct {
	svc     services.PageService
	profile services.ProfileService
}

func NewPagesHandler(svc services.PageService, profile services.ProfileService) *PagesHandler {
	return &PagesHandler{svc: svc, profile: profile}
}

func (h *PagesHandler) Home(c *gin.Context) {
	page, err := h.svc.Home(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *PagesHandler) Projects(c *gin.Context) {
	rows, err := h.svc.Projects(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *PagesHandler) Resume(c *gin.Context) {
	page, err := h.svc.Resume(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *PagesHandler) Profile(c *gin.Context) {
	p, err := h.profile.Get(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
