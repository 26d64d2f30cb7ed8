package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/raihanmz/portfolio-backend/internal/api/handlers"
	"github.com/raihanmz/portfolio-backend/internal/api/middleware"
)

type Deps struct {
	Sessions *middleware.SessionManager

	Auth       *handlers.AuthHandler
	Pages      *handlers.PagesHandler
	Profile    *handlers.ProfileHandler
	Project    *handlers.ProjectHandler
	Skill      *handlers.SkillHandler
	Education  *handlers.EducationHandler
	Experience *handlers.ExperienceHandler
	Message    *handlers.MessageHandler
	Dashboard  *handlers.DashboardHandler

	Audit gin.HandlerFunc
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Public site
	r.GET("/api/home", d.Pages.Home)
	r.GET("/api/projects", d.Pages.Projects)
	r.GET("/api/resume", d.Pages.Resume)
	r.GET("/api/profile", d.Pages.Profile)
	r.POST("/api/contact", d.Message.Submit)

	// Session
	r.POST("/api/admin/auth", d.Auth.Login)
	r.DELETE("/api/admin/auth", d.Auth.Logout)

	// Admin panel (session cookie + audit trail)
	admin := r.Group("/api/admin")
	admin.Use(d.Sessions.Auth())
	if d.Audit != nil {
		admin.Use(d.Audit)
	}

	admin.GET("/profile", d.Profile.Get)
	admin.PUT("/profile", d.Profile.Upsert)

	admin.GET("/projects", d.Project.List)
	admin.POST("/projects", d.Project.Create)
	admin.PUT("/projects", d.Project.Update)
	admin.DELETE("/projects", d.Project.Delete)

	admin.GET("/skills", d.Skill.List)
	admin.POST("/skills", d.Skill.Create)
	admin.PUT("/skills", d.Skill.Update)
	admin.DELETE("/skills", d.Skill.Delete)

	admin.GET("/education", d.Education.List)
	admin.POST("/education", d.Education.Create)
	admin.PUT("/education", d.Education.Update)
	admin.DELETE("/education", d.Education.Delete)

	admin.GET("/experience", d.Experience.List)
	admin.POST("/experience", d.Experience.Create)
	admin.PUT("/experience", d.Experience.Update)
	admin.DELETE("/experience", d.Experience.Delete)

	admin.GET("/messages", d.Message.List)
	admin.DELETE("/messages", d.Message.Delete)

	admin.GET("/stats", d.Dashboard.Stats)
	admin.GET("/dashboard", d.Dashboard.Load)
	admin.GET("/audit", d.Dashboard.Audit)
}
