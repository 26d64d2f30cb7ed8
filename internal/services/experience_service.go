package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/raihanmz/portfolio-backend/internal/models"
	pgrepo "github.com/raihanmz/portfolio-backend/internal/repositories/postgres"
	"github.com/raihanmz/portfolio-backend/internal/revalidate"
	"github.com/raihanmz/portfolio-backend/internal/utils"
)

type ExperienceInput struct {
	Company     string
	Role        string
	Description string
	StartDate   string
	EndDate     string
	LogoURL     string
}

type ExperienceService interface {
	List(ctx context.Context) ([]models.Experience, error)
	Create(ctx context.Context, in ExperienceInput) (*models.Experience, error)
	Update(ctx context.Context, id string, in ExperienceInput) (*models.Experience, error)
	Delete(ctx context.Context, id string) error
}

type experienceService struct {
	experience pgrepo.ExperienceRepository
	reval      *revalidate.Revalidator
}

func NewExperienceService(experience pgrepo.ExperienceRepository, reval *revalidate.Revalidator) ExperienceService {
	return &experienceService{experience: experience, reval: reval}
}

func (s *experienceService) List(ctx context.Context) ([]models.Experience, error) {
	const op = "ExperienceService.List"

	rows, err := s.experience.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list experience", err)
	}
	return rows, nil
}

func validateExperienceInput(op string, in ExperienceInput) error {
	if in.Company == "" {
		return utils.E(utils.CodeInvalidArgument, op, "company is required", nil)
	}
	if in.Role == "" {
		return utils.E(utils.CodeInvalidArgument, op, "role is required", nil)
	}
	if in.Description == "" {
		return utils.E(utils.CodeInvalidArgument, op, "description is required", nil)
	}
	return nil
}

func (s *experienceService) Create(ctx context.Context, in ExperienceInput) (*models.Experience, error) {
	const op = "ExperienceService.Create"

	if err := validateExperienceInput(op, in); err != nil {
		return nil, err
	}

	row := &models.Experience{
		ID:          uuid.NewString(),
		Company:     in.Company,
		Role:        in.Role,
		Description: in.Description,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		LogoURL:     in.LogoURL,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.experience.Create(ctx, row); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create experience", err)
	}

	s.reval.Invalidate(ctx, revalidate.PageHome, revalidate.PageResume, revalidate.PageAdmin)
	return row, nil
}

func (s *experienceService) Update(ctx context.Context, id string, in ExperienceInput) (*models.Experience, error) {
	const op = "ExperienceService.Update"

	if id == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}
	if err := validateExperienceInput(op, in); err != nil {
		return nil, err
	}

	existing, err := s.experience.GetByID(ctx, id)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update experience", err)
	}

	existing.Company = in.Company
	existing.Role = in.Role
	existing.Description = in.Description
	existing.StartDate = in.StartDate
	existing.EndDate = in.EndDate
	existing.LogoURL = in.LogoURL

	if err := s.experience.Save(ctx, existing); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update experience", err)
	}

	s.reval.Invalidate(ctx, revalidate.PageHome, revalidate.PageResume, revalidate.PageAdmin)
	return existing, nil
}

func (s *experienceService) Delete(ctx context.Context, id string) error {
	const op = "ExperienceService.Delete"

	if id == "" {
		return utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}

	if err := s.experience.Delete(ctx, id); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to delete experience", err)
	}

	s.reval.Invalidate(ctx, revalidate.PageHome, revalidate.PageResume, revalidate.PageAdmin)
	return nil
}
