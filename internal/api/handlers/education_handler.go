package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/raihanmz/portfolio-backend/internal/services"
	"github.com/raihanmz/portfolio-backend/internal/utils"
)

type EducationHandler struct {
	svc services.EducationService
}

func NewEducationHandler(svc services.EducationService) *EducationHandler {
	return &EducationHandler{svc: svc}
}

type educationRequest struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
	LogoURL     string `json:"logoUrl"`
}

func (r educationRequest) input() services.EducationInput {
	return services.EducationInput{
		Institution: r.Institution,
		Degree:      r.Degree,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Description: r.Description,
		LogoURL:     r.LogoURL,
	}
}

func (h *EducationHandler) List(c *gin.Context) {
	rows, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *EducationHandler) Create(c *gin.Context) {
	var req educationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "EducationHandler.Create", "invalid request body", err))
		return
	}

	e, err := h.svc.Create(c.Request.Context(), req.input())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (h *EducationHandler) Update(c *gin.Context) {
	var req educationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "EducationHandler.Update", "invalid request body", err))
		return
	}
	if req.ID == "" {
		writeError(c, utils.E(utils.CodeInvalidArgument, "EducationHandler.Update", "id is required", nil))
		return
	}

	e, err := h.svc.Update(c.Request.Context(), req.ID, req.input())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *EducationHandler) Delete(c *gin.Context) {
	id, ok := requireQueryID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "education entry deleted"})
}
