package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/raihanmz/portfolio-backend/internal/services"
	"github.com/raihanmz/portfolio-backend/internal/utils"
)

type ProfileHandler struct {
	svc     services.ProfileService
	uploads services.UploadService
}

func NewProfileHandler(svc services.ProfileService, uploads services.UploadService) *ProfileHandler {
	return &ProfileHandler{svc: svc, uploads: uploads}
}

type profileRequest struct {
	FullName string `json:"fullName"`
	Title    string `json:"title"`
	Bio      string `json:"bio"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`

	GithubURL   string `json:"githubUrl"`
	LinkedinURL string `json:"linkedinUrl"`
	TwitterURL  string `json:"twitterUrl"`
	WebsiteURL  string `json:"websiteUrl"`

	ImageURL string `json:"imageUrl"`
}

func (h *ProfileHandler) bind(c *gin.Context) (services.ProfileInput, error) {
	const op = "ProfileHandler"

	if isMultipart(c) {
		in := services.ProfileInput{
			FullName:    c.PostForm("fullName"),
			Title:       c.PostForm("title"),
			Bio:         c.PostForm("bio"),
			Email:       c.PostForm("email"),
			Phone:       c.PostForm("phone"),
			Location:    c.PostForm("location"),
			GithubURL:   c.PostForm("githubUrl"),
			LinkedinURL: c.PostForm("linkedinUrl"),
			TwitterURL:  c.PostForm("twitterUrl"),
			WebsiteURL:  c.PostForm("websiteUrl"),
			ImageURL:    c.PostForm("imageUrl"),
		}

		imageURL, err := formImage(c, h.uploads)
		if err != nil {
			return services.ProfileInput{}, err
		}
		if imageURL != "" {
			in.ImageURL = imageURL
		}
		return in, nil
	}

	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return services.ProfileInput{}, utils.E(utils.CodeInvalidArgument, op, "invalid request body", err)
	}
	return services.ProfileInput{
		FullName:    req.FullName,
		Title:       req.Title,
		Bio:         req.Bio,
		Email:       req.Email,
		Phone:       req.Phone,
		Location:    req.Location,
		GithubURL:   req.GithubURL,
		LinkedinURL: req.LinkedinURL,
		TwitterURL:  req.TwitterURL,
		WebsiteURL:  req.WebsiteURL,
		ImageURL:    req.ImageURL,
	}, nil
}

func (h *ProfileHandler) Get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Upsert is the only write path: the profile is a singleton, created on first
// save and never deleted.
func (h *ProfileHandler) Upsert(c *gin.Context) {
	in, err := h.bind(c)
	if err != nil {
		writeError(c, err)
		return
	}

	p, err := h.svc.Upsert(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
