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

type EducationInput struct {
	Institution string
	Degree      string
	StartDate   string
	EndDate     string
	Description string
	LogoURL     string
}

type EducationService interface {
	List(ctx context.Context) ([]models.Education, error)
	Create(ctx context.Context, in EducationInput) (*models.Education, error)
	Update(ctx context.Context, id string, in EducationInput) (*models.Education, error)
	Delete(ctx context.Context, id string) error
}

type educationService struct {
	education pgrepo.EducationRepository
	reval     *revalidate.Revalidator
}

func NewEducationService(education pgrepo.EducationRepository, reval *revalidate.Revalidator) EducationService {
	return &educationService{education: education, reval: reval}
}

func (s *educationService) List(ctx context.Context) ([]models.Education, error) {
	const op = "EducationService.List"

	rows, err := s.education.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list education", err)
	}
	return rows, nil
}

func validateEducationInput(op string, in EducationInput) error {
	if in.Institution == "" {
		return utils.E(utils.CodeInvalidArgument, op, "institution is required", nil)
	}
	if in.Degree == "" {
		return utils.E(utils.CodeInvalidArgument, op, "degree is required", nil)
	}
	return nil
}

func (s *educationService) Create(ctx context.Context, in EducationInput) (*models.Education, error) {
	const op = "EducationService.Create"

	if err := validateEducationInput(op, in); err != nil {
		return nil, err
	}

	row := &models.Education{
		ID:          uuid.NewString(),
		Institution: in.Institution,
		Degree:      in.Degree,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Description: in.Description,
		LogoURL:     in.LogoURL,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.education.Create(ctx, row); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create education", err)
	}

	s.reval.Invalidate(ctx, revalidate.PageHome, revalidate.PageResume, revalidate.PageAdmin)
	return row, nil
}

func (s *educationService) Update(ctx context.Context, id string, in EducationInput) (*models.Education, error) {
	const op = "EducationService.Update"

	if id == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}
	if err := validateEducationInput(op, in); err != nil {
		return nil, err
	}

	existing, err := s.education.GetByID(ctx, id)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update education", err)
	}

	existing.Institution = in.Institution
	existing.Degree = in.Degree
	existing.StartDate = in.StartDate
	existing.EndDate = in.EndDate
	existing.Description = in.Description
	existing.LogoURL = in.LogoURL

	if err := s.education.Save(ctx, existing); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update education", err)
	}

	s.reval.Invalidate(ctx, revalidate.PageHome, revalidate.PageResume, revalidate.PageAdmin)
	return existing, nil
}

func (s *educationService) Delete(ctx context.Context, id string) error {
	const op = "EducationService.Delete"

	if id == "" {
		return utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}

	if err := s.education.Delete(ctx, id); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to delete education", err)
	}

	s.reval.Invalidate(ctx, revalidate.PageHome, revalidate.PageResume, revalidate.PageAdmin)
	return nil
}
