package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/raihanmz/portfolio-backend/internal/services"
	"github.com/raihanmz/portfolio-backend/internal/utils"
)

type ProjectHandler struct {
	svc     services.ProjectService
	uploads services.UploadService
}

func NewProjectHandler(svc services.ProjectService, uploads services.UploadService) *ProjectHandler {
	return &ProjectHandler{svc: svc, uploads: uploads}
}

type projectRequest struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	TechStack   json.RawMessage `json:"techStack"`
	ImageURL    string          `json:"imageUrl"`
	LiveURL     string          `json:"liveUrl"`
	GithubURL   string          `json:"githubUrl"`
	Featured    bool            `json:"featured"`
}

// decodeTags accepts either a JSON array or a JSON string that itself holds
// an encoded array; anything else degrades to nil.
func decodeTags(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var tags []string
	if err := json.Unmarshal(raw, &tags); err == nil {
		return tags
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if err := json.Unmarshal([]byte(s), &tags); err == nil {
			return tags
		}
	}
	return nil
}

func decodeTagsText(s string) []string {
	if s == "" {
		return nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(s), &tags); err != nil {
		return nil
	}
	return tags
}

// bind handles both JSON bodies and multipart forms (the latter used when an
// image rides along).
func (h *ProjectHandler) bind(c *gin.Context) (id string, in services.ProjectInput, err error) {
	const op = "ProjectHandler"

	if isMultipart(c) {
		id = c.PostForm("id")
		featured, _ := strconv.ParseBool(c.PostForm("featured"))
		in = services.ProjectInput{
			Title:       c.PostForm("title"),
			Description: c.PostForm("description"),
			TechStack:   decodeTagsText(c.PostForm("techStack")),
			ImageURL:    c.PostForm("imageUrl"),
			LiveURL:     c.PostForm("liveUrl"),
			GithubURL:   c.PostForm("githubUrl"),
			Featured:    featured,
		}

		imageURL, uerr := formImage(c, h.uploads)
		if uerr != nil {
			return "", services.ProjectInput{}, uerr
		}
		if imageURL != "" {
			in.ImageURL = imageURL
		}
		return id, in, nil
	}

	var req projectRequest
	if berr := c.ShouldBindJSON(&req); berr != nil {
		return "", services.ProjectInput{}, utils.E(utils.CodeInvalidArgument, op, "invalid request body", berr)
	}
	in = services.ProjectInput{
		Title:       req.Title,
		Description: req.Description,
		TechStack:   decodeTags(req.TechStack),
		ImageURL:    req.ImageURL,
		LiveURL:     req.LiveURL,
		GithubURL:   req.GithubURL,
		Featured:    req.Featured,
	}
	return req.ID, in, nil
}

func (h *ProjectHandler) List(c *gin.Context) {
	rows, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *ProjectHandler) Create(c *gin.Context) {
	_, in, err := h.bind(c)
	if err != nil {
		writeError(c, err)
		return
	}

	p, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	id, in, err := h.bind(c)
	if err != nil {
		writeError(c, err)
		return
	}
	if id == "" {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ProjectHandler.Update", "id is required", nil))
		return
	}

	p, err := h.svc.Update(c.Request.Context(), id, in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := requireQueryID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "project deleted"})
}
