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

type SkillInput struct {
	Name     string
	Category string
	Icon     string
	Level    int
}

type SkillService interface {
	List(ctx context.Context) ([]models.Skill, error)
	Create(ctx context.Context, in SkillInput) (*models.Skill, error)
	Update(ctx context.Context, id string, in SkillInput) (*models.Skill, error)
	Delete(ctx context.Context, id string) error
}

type skillService struct {
	skills pgrepo.SkillRepository
	reval  *revalidate.Revalidator
}

func NewSkillService(skills pgrepo.SkillRepository, reval *revalidate.Revalidator) SkillService {
	return &skillService{skills: skills, reval: reval}
}

func (s *skillService) List(ctx context.Context) ([]models.Skill, error) {
	const op = "SkillService.List"

	rows, err := s.skills.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list skills", err)
	}
	return rows, nil
}

func validateSkillInput(op string, in SkillInput) error {
	if in.Name == "" {
		return utils.E(utils.CodeInvalidArgument, op, "name is required", nil)
	}
	if in.Category == "" {
		return utils.E(utils.CodeInvalidArgument, op, "category is required", nil)
	}
	return nil
}

func (s *skillService) Create(ctx context.Context, in SkillInput) (*models.Skill, error) {
	const op = "SkillService.Create"

	if err := validateSkillInput(op, in); err != nil {
		return nil, err
	}

	row := &models.Skill{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Category:  in.Category,
		Icon:      in.Icon,
		Level:     in.Level,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.skills.Create(ctx, row); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create skill", err)
	}

	s.reval.Invalidate(ctx, revalidate.PageHome, revalidate.PageResume, revalidate.PageAdmin)
	return row, nil
}

func (s *skillService) Update(ctx context.Context, id string, in SkillInput) (*models.Skill, error) {
	const op = "SkillService.Update"

	if id == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}
	if err := validateSkillInput(op, in); err != nil {
		return nil, err
	}

	existing, err := s.skills.GetByID(ctx, id)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update skill", err)
	}

	existing.Name = in.Name
	existing.Category = in.Category
	existing.Icon = in.Icon
	existing.Level = in.Level

	if err := s.skills.Save(ctx, existing); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update skill", err)
	}

	s.reval.Invalidate(ctx, revalidate.PageHome, revalidate.PageResume, revalidate.PageAdmin)
	return existing, nil
}

func (s *skillService) Delete(ctx context.Context, id string) error {
	const op = "SkillService.Delete"

	if id == "" {
		return utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}

	if err := s.skills.Delete(ctx, id); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to delete skill", err)
	}

	s.reval.Invalidate(ctx, revalidate.PageHome, revalidate.PageResume, revalidate.PageAdmin)
	return nil
}
