package services

import (
	"context"
	"errors"
	"time"

	"github.com/raihanmz/portfolio-backend/internal/cache"
	"github.com/raihanmz/portfolio-backend/internal/models"
	pgrepo "github.com/raihanmz/portfolio-backend/internal/repositories/postgres"
	"github.com/raihanmz/portfolio-backend/internal/revalidate"
	"github.com/raihanmz/portfolio-backend/internal/utils"
	"github.com/sirupsen/logrus"
)

type SkillGroup struct {
	Category string         `json:"category"`
	Skills   []models.Skill `json:"skills"`
}

type HomePage struct {
	Profile          *models.Profile  `json:"profile"`
	FeaturedProjects []models.Project `json:"featuredProjects"`
	Skills           []SkillGroup     `json:"skills"`
}

type ResumePage struct {
	Education  []models.Education  `json:"education"`
	Experience []models.Experience `json:"experience"`
	Skills     []SkillGroup        `json:"skills"`
}

// PageService serves the public pages through the page cache. A cache failure
// degrades to a direct database read.
type PageService interface {
	Home(ctx context.Context) (*HomePage, error)
	Projects(ctx context.Context) ([]models.Project, error)
	Resume(ctx context.Context) (*ResumePage, error)
}

type pageService struct {
	profiles   pgrepo.ProfileRepository
	projects   pgrepo.ProjectRepository
	skills     pgrepo.SkillRepository
	education  pgrepo.EducationRepository
	experience pgrepo.ExperienceRepository

	cache cache.Cache
	ttl   time.Duration
	log   *logrus.Logger
}

func NewPageService(
	profiles pgrepo.ProfileRepository,
	projects pgrepo.ProjectRepository,
	skills pgrepo.SkillRepository,
	education pgrepo.EducationRepository,
	experience pgrepo.ExperienceRepository,
	c cache.Cache,
	ttl time.Duration,
	log *logrus.Logger,
) PageService {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &pageService{
		profiles:   profiles,
		projects:   projects,
		skills:     skills,
		education:  education,
		experience: experience,
		cache:      c,
		ttl:        ttl,
		log:        log,
	}
}

func groupSkills(rows []models.Skill) []SkillGroup {
	var groups []SkillGroup
	idx := map[string]int{}
	for _, s := range rows {
		i, ok := idx[s.Category]
		if !ok {
			i = len(groups)
			idx[s.Category] = i
			groups = append(groups, SkillGroup{Category: s.Category})
		}
		groups[i].Skills = append(groups[i].Skills, s)
	}
	return groups
}

func (s *pageService) cached(ctx context.Context, key string, dst any) bool {
	hit, err := s.cache.GetJSON(ctx, key, dst)
	if err != nil {
		s.log.WithError(err).WithField("key", key).Warn("page cache read failed")
		return false
	}
	return hit
}

func (s *pageService) store(ctx context.Context, key string, val any) {
	if err := s.cache.SetJSON(ctx, key, val, s.ttl); err != nil {
		s.log.WithError(err).WithField("key", key).Warn("page cache write failed")
	}
}

func (s *pageService) Home(ctx context.Context) (*HomePage, error) {
	const op = "PageService.Home"

	var page HomePage
	if s.cached(ctx, revalidate.PageHome, &page) {
		return &page, nil
	}

	profile, err := s.profiles.Get(ctx)
	if err != nil && !errors.Is(err, utils.ErrNotFound) {
		return nil, utils.E(utils.CodeInternal, op, "failed to load profile", err)
	}
	featured, err := s.projects.ListFeatured(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load featured projects", err)
	}
	skills, err := s.skills.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load skills", err)
	}

	page = HomePage{
		Profile:          profile,
		FeaturedProjects: featured,
		Skills:           groupSkills(skills),
	}
	s.store(ctx, revalidate.PageHome, &page)
	return &page, nil
}

func (s *pageService) Projects(ctx context.Context) ([]models.Project, error) {
	const op = "PageService.Projects"

	var rows []models.Project
	if s.cached(ctx, revalidate.PageProjects, &rows) {
		return rows, nil
	}

	rows, err := s.projects.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load projects", err)
	}

	s.store(ctx, revalidate.PageProjects, rows)
	return rows, nil
}

func (s *pageService) Resume(ctx context.Context) (*ResumePage, error) {
	const op = "PageService.Resume"

	var page ResumePage
	if s.cached(ctx, revalidate.PageResume, &page) {
		return &page, nil
	}

	education, err := s.education.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load education", err)
	}
	experience, err := s.experience.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load experience", err)
	}
	skills, err := s.skills.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load skills", err)
	}

	page = ResumePage{
		Education:  education,
		Experience: experience,
		Skills:     groupSkills(skills),
	}
	s.store(ctx, revalidate.PageResume, &page)
	return &page, nil
}
