package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/raihanmz/portfolio-backend/internal/services"
	"github.com/raihanmz/portfolio-backend/internal/utils"
)

type ExperienceHandler struct {
	svc services.ExperienceService
}

func NewExperienceHandler(svc services.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{svc: svc}
}

type experienceRequest struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Role        string `json:"role"`
	Description string `json:"description"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	LogoURL     string `json:"logoUrl"`
}

func (r experienceRequest) input() services.ExperienceInput {
	return services.ExperienceInput{
		Company:     r.Company,
		Role:        r.Role,
		Description: r.Description,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		LogoURL:     r.LogoURL,
	}
}

func (h *ExperienceHandler) List(c *gin.Context) {
	rows, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *ExperienceHandler) Create(c *gin.Context) {
	var req experienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ExperienceHandler.Create", "invalid request body", err))
		return
	}

	e, err := h.svc.Create(c.Request.Context(), req.input())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (h *ExperienceHandler) Update(c *gin.Context) {
	var req experienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ExperienceHandler.Update", "invalid request body", err))
		return
	}
	if req.ID == "" {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ExperienceHandler.Update", "id is required", nil))
		return
	}

	e, err := h.svc.Update(c.Request.Context(), req.ID, req.input())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *ExperienceHandler) Delete(c *gin.Context) {
	id, ok := requireQueryID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "experience entry deleted"})
}
