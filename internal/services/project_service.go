package services

import (
	"context"
	"encoding/json"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/raihanmz/portfolio-backend/internal/models"
	pgrepo "github.com/raihanmz/portfolio-backend/internal/repositories/postgres"
	"github.com/raihanmz/portfolio-backend/internal/revalidate"
	"github.com/raihanmz/portfolio-backend/internal/utils"
)

type ProjectInput struct {
	Title       string
	Description string
	TechStack   []string
	ImageURL    string
	LiveURL     string
	GithubURL   string
	Featured    bool
}

type ProjectService interface {
	List(ctx context.Context) ([]models.Project, error)
	Create(ctx context.Context, in ProjectInput) (*models.Project, error)
	Update(ctx context.Context, id string, in ProjectInput) (*models.Project, error)
	Delete(ctx context.Context, id string) error
}

type projectService struct {
	projects pgrepo.ProjectRepository
	reval    *revalidate.Revalidator
}

func NewProjectService(projects pgrepo.ProjectRepository, reval *revalidate.Revalidator) ProjectService {
	return &projectService{projects: projects, reval: reval}
}

func (s *projectService) List(ctx context.Context) ([]models.Project, error) {
	const op = "ProjectService.List"

	rows, err := s.projects.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list projects", err)
	}
	return rows, nil
}

func validateProjectInput(op string, in ProjectInput) error {
	// character limits count runes, not bytes
	if n := utf8.RuneCountInString(in.Title); n < 3 || n > 100 {
		return utils.E(utils.CodeInvalidArgument, op, "title must be 3-100 characters", nil)
	}
	if n := utf8.RuneCountInString(in.Description); n < 10 || n > 1000 {
		return utils.E(utils.CodeInvalidArgument, op, "description must be 10-1000 characters", nil)
	}
	if in.LiveURL != "" && !validURL(in.LiveURL) {
		return utils.E(utils.CodeInvalidArgument, op, "liveUrl is not a valid URL", nil)
	}
	if in.GithubURL != "" && !validURL(in.GithubURL) {
		return utils.E(utils.CodeInvalidArgument, op, "githubUrl is not a valid URL", nil)
	}
	return nil
}

// encodeTechStack keeps the column a valid JSON array even when no tags were
// submitted.
func encodeTechStack(tags []string) ([]byte, error) {
	if tags == nil {
		tags = []string{}
	}
	return json.Marshal(tags)
}

func (s *projectService) Create(ctx context.Context, in ProjectInput) (*models.Project, error) {
	const op = "ProjectService.Create"

	if err := validateProjectInput(op, in); err != nil {
		return nil, err
	}

	stack, err := encodeTechStack(in.TechStack)
	if err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "techStack is not encodable", err)
	}

	now := time.Now().UTC()
	p := &models.Project{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		TechStack:   stack,
		ImageURL:    in.ImageURL,
		LiveURL:     in.LiveURL,
		GithubURL:   in.GithubURL,
		Featured:    in.Featured,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.projects.Create(ctx, p); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create project", err)
	}

	s.reval.Invalidate(ctx, revalidate.PageHome, revalidate.PageProjects, revalidate.PageAdmin)
	return p, nil
}

func (s *projectService) Update(ctx context.Context, id string, in ProjectInput) (*models.Project, error) {
	const op = "ProjectService.Update"

	if id == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}
	if err := validateProjectInput(op, in); err != nil {
		return nil, err
	}

	existing, err := s.projects.GetByID(ctx, id)
	if err != nil {
		// missing row surfaces as a persistence failure, same as the rest of
		// the admin update paths
		return nil, utils.E(utils.CodeInternal, op, "failed to update project", err)
	}

	stack, err := encodeTechStack(in.TechStack)
	if err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "techStack is not encodable", err)
	}

	existing.Title = in.Title
	existing.Description = in.Description
	existing.TechStack = stack
	existing.LiveURL = in.LiveURL
	existing.GithubURL = in.GithubURL
	existing.Featured = in.Featured
	if in.ImageURL != "" {
		existing.ImageURL = in.ImageURL
	}
	existing.UpdatedAt = time.Now().UTC()

	if err := s.projects.Save(ctx, existing); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update project", err)
	}

	s.reval.Invalidate(ctx, revalidate.PageHome, revalidate.PageProjects, revalidate.PageAdmin)
	return existing, nil
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	const op = "ProjectService.Delete"

	if id == "" {
		return utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}

	if err := s.projects.Delete(ctx, id); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to delete project", err)
	}

	s.reval.Invalidate(ctx, revalidate.PageHome, revalidate.PageProjects, revalidate.PageAdmin)
	return nil
}
