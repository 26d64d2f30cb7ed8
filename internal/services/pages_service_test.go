package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/raihanmz/portfolio-backend/internal/cache"
	"github.com/raihanmz/portfolio-backend/internal/logger"
	"github.com/raihanmz/portfolio-backend/internal/models"
	"github.com/raihanmz/portfolio-backend/internal/utils"
)

func newPageFixture() (*MockProfileRepository, *MockProjectRepository, *MockSkillRepository, *MockEducationRepository, *MockExperienceRepository, PageService) {
	profiles := new(MockProfileRepository)
	projects := new(MockProjectRepository)
	skills := new(MockSkillRepository)
	education := new(MockEducationRepository)
	experience := new(MockExperienceRepository)

	svc := NewPageService(profiles, projects, skills, education, experience,
		cache.NewMemoryCache(), time.Minute, logger.New())
	return profiles, projects, skills, education, experience, svc
}

func TestPageHome_GroupsSkillsByCategoryInListOrder(t *testing.T) {
	profiles, projects, skills, _, _, svc := newPageFixture()

	profiles.On("Get", mock.Anything).Return(&models.Profile{ID: models.DefaultProfileID, FullName: "Jane"}, nil)
	projects.On("ListFeatured", mock.Anything).Return([]models.Project{}, nil)
	skills.On("List", mock.Anything).Return([]models.Skill{
		{ID: "1", Name: "Go", Category: "Backend"},
		{ID: "2", Name: "Postgres", Category: "Backend"},
		{ID: "3", Name: "React", Category: "Frontend"},
	}, nil)

	page, err := svc.Home(context.Background())
	require.NoError(t, err)

	require.Len(t, page.Skills, 2)
	assert.Equal(t, "Backend", page.Skills[0].Category)
	assert.Len(t, page.Skills[0].Skills, 2)
	assert.Equal(t, "Frontend", page.Skills[1].Category)
}

func TestPageHome_MissingProfileIsNotFatal(t *testing.T) {
	profiles, projects, skills, _, _, svc := newPageFixture()

	profiles.On("Get", mock.Anything).Return(nil, utils.ErrNotFound)
	projects.On("ListFeatured", mock.Anything).Return([]models.Project{}, nil)
	skills.On("List", mock.Anything).Return([]models.Skill{}, nil)

	page, err := svc.Home(context.Background())
	require.NoError(t, err)
	assert.Nil(t, page.Profile)
}

func TestPageProjects_SecondCallServedFromCache(t *testing.T) {
	_, projects, _, _, _, svc := newPageFixture()

	projects.On("List", mock.Anything).Return([]models.Project{{ID: "p1", Title: "one"}}, nil).Once()

	first, err := svc.Projects(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)

	// repo was set up for a single call; the second read must hit the cache
	second, err := svc.Projects(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	projects.AssertExpectations(t)
}

func TestPageResume_LoadsAllSections(t *testing.T) {
	_, _, skills, education, experience, svc := newPageFixture()

	education.On("List", mock.Anything).Return([]models.Education{{ID: "e1", Institution: "MIT"}}, nil)
	experience.On("List", mock.Anything).Return([]models.Experience{{ID: "x1", Company: "Acme"}}, nil)
	skills.On("List", mock.Anything).Return([]models.Skill{{ID: "s1", Name: "Go", Category: "Backend"}}, nil)

	page, err := svc.Resume(context.Background())
	require.NoError(t, err)
	assert.Len(t, page.Education, 1)
	assert.Len(t, page.Experience, 1)
	assert.Len(t, page.Skills, 1)
}
