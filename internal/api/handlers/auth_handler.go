package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/raihanmz/portfolio-backend/internal/api/middleware"
	"github.com/raihanmz/portfolio-backend/internal/services"
	"github.com/raihanmz/portfolio-backend/internal/utils"
)

type AuthHandler struct {
	svc      services.AuthService
	sessions *middleware.SessionManager
}

func NewAuthHandler(svc services.AuthService, sessions *middleware.SessionManager) *AuthHandler {
	return &AuthHandler{svc: svc, sessions: sessions}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "AuthHandler.Login", "invalid request body", err))
		return
	}

	admin, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	token, err := h.sessions.Issue(admin.ID, admin.Email)
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, "AuthHandler.Login", "failed to issue session", err))
		return
	}

	h.sessions.SetCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"message": "logged in", "name": admin.Name})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.ClearCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
