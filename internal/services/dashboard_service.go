package services

import (
	"context"
	"sync"

	"github.com/raihanmz/portfolio-backend/internal/models"
	pgrepo "github.com/raihanmz/portfolio-backend/internal/repositories/postgres"
	"github.com/raihanmz/portfolio-backend/internal/utils"
	"github.com/sirupsen/logrus"
)

type Stats struct {
	Projects   int64 `json:"projects"`
	Skills     int64 `json:"skills"`
	Education  int64 `json:"education"`
	Experience int64 `json:"experience"`
	Messages   int64 `json:"messages"`
}

// Dashboard is the admin panel's initial load: every collection in one
// response. Members that fail to load come back empty, never failing the
// whole payload.
type Dashboard struct {
	Stats      Stats                   `json:"stats"`
	Profile    *models.Profile         `json:"profile"`
	Projects   []models.Project        `json:"projects"`
	Skills     []models.Skill          `json:"skills"`
	Education  []models.Education      `json:"education"`
	Experience []models.Experience     `json:"experience"`
	Messages   []models.ContactMessage `json:"messages"`
}

type DashboardService interface {
	Stats(ctx context.Context) (*Stats, error)
	Load(ctx context.Context) (*Dashboard, error)
}

type dashboardService struct {
	profiles   pgrepo.ProfileRepository
	projects   pgrepo.ProjectRepository
	skills     pgrepo.SkillRepository
	education  pgrepo.EducationRepository
	experience pgrepo.ExperienceRepository
	messages   pgrepo.MessageRepository

	log *logrus.Logger
}

func NewDashboardService(
	profiles pgrepo.ProfileRepository,
	projects pgrepo.ProjectRepository,
	skills pgrepo.SkillRepository,
	education pgrepo.EducationRepository,
	experience pgrepo.ExperienceRepository,
	messages pgrepo.MessageRepository,
	log *logrus.Logger,
) DashboardService {
	return &dashboardService{
		profiles:   profiles,
		projects:   projects,
		skills:     skills,
		education:  education,
		experience: experience,
		messages:   messages,
		log:        log,
	}
}

func (s *dashboardService) Stats(ctx context.Context) (*Stats, error) {
	const op = "DashboardService.Stats"

	var st Stats
	counts := []struct {
		dst   *int64
		count func(context.Context) (int64, error)
	}{
		{&st.Projects, s.projects.Count},
		{&st.Skills, s.skills.Count},
		{&st.Education, s.education.Count},
		{&st.Experience, s.experience.Count},
		{&st.Messages, s.messages.Count},
	}
	for _, c := range counts {
		n, err := c.count(ctx)
		if err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to count rows", err)
		}
		*c.dst = n
	}
	return &st, nil
}

// Load fans out one goroutine per collection and waits for all of them;
// individual failures are logged and leave that member empty.
func (s *dashboardService) Load(ctx context.Context) (*Dashboard, error) {
	d := &Dashboard{}

	var wg sync.WaitGroup
	run := func(name string, fetch func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fetch(); err != nil {
				s.log.WithError(err).WithField("member", name).Warn("dashboard fetch failed")
			}
		}()
	}

	run("stats", func() error {
		st, err := s.Stats(ctx)
		if err != nil {
			return err
		}
		d.Stats = *st
		return nil
	})
	run("profile", func() error {
		p, err := s.profiles.Get(ctx)
		if err != nil {
			return err
		}
		d.Profile = p
		return nil
	})
	run("projects", func() error {
		rows, err := s.projects.List(ctx)
		if err != nil {
			return err
		}
		d.Projects = rows
		return nil
	})
	run("skills", func() error {
		rows, err := s.skills.List(ctx)
		if err != nil {
			return err
		}
		d.Skills = rows
		return nil
	})
	run("education", func() error {
		rows, err := s.education.List(ctx)
		if err != nil {
			return err
		}
		d.Education = rows
		return nil
	})
	run("experience", func() error {
		rows, err := s.experience.List(ctx)
		if err != nil {
			return err
		}
		d.Experience = rows
		return nil
	})
	run("messages", func() error {
		rows, err := s.messages.List(ctx)
		if err != nil {
			return err
		}
		d.Messages = rows
		return nil
	})

	wg.Wait()
	return d, nil
}
