package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/raihanmz/portfolio-backend/internal/logger"
	"github.com/raihanmz/portfolio-backend/internal/models"
)

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Get(ctx context.Context) (*models.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) Upsert(ctx context.Context, p *models.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type MockSkillRepository struct {
	mock.Mock
}

func (m *MockSkillRepository) List(ctx context.Context) ([]models.Skill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Skill), args.Error(1)
}

func (m *MockSkillRepository) GetByID(ctx context.Context, id string) (*models.Skill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Skill), args.Error(1)
}

func (m *MockSkillRepository) Create(ctx context.Context, s *models.Skill) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSkillRepository) Save(ctx context.Context, s *models.Skill) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSkillRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSkillRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockEducationRepository struct {
	mock.Mock
}

func (m *MockEducationRepository) List(ctx context.Context) ([]models.Education, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Education), args.Error(1)
}

func (m *MockEducationRepository) GetByID(ctx context.Context, id string) (*models.Education, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Education), args.Error(1)
}

func (m *MockEducationRepository) Create(ctx context.Context, e *models.Education) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEducationRepository) Save(ctx context.Context, e *models.Education) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEducationRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEducationRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockExperienceRepository struct {
	mock.Mock
}

func (m *MockExperienceRepository) List(ctx context.Context) ([]models.Experience, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Experience), args.Error(1)
}

func (m *MockExperienceRepository) GetByID(ctx context.Context, id string) (*models.Experience, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Experience), args.Error(1)
}

func (m *MockExperienceRepository) Create(ctx context.Context, e *models.Experience) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockExperienceRepository) Save(ctx context.Context, e *models.Experience) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockExperienceRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockExperienceRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) List(ctx context.Context) ([]models.ContactMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ContactMessage), args.Error(1)
}

func (m *MockMessageRepository) Create(ctx context.Context, msg *models.ContactMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockMessageRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMessageRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestDashboardLoad_PartialFailureLeavesMemberEmpty(t *testing.T) {
	profiles := new(MockProfileRepository)
	projects := new(MockProjectRepository)
	skills := new(MockSkillRepository)
	education := new(MockEducationRepository)
	experience := new(MockExperienceRepository)
	messages := new(MockMessageRepository)

	profiles.On("Get", mock.Anything).Return(&models.Profile{ID: models.DefaultProfileID, FullName: "Jane"}, nil)
	projects.On("List", mock.Anything).Return([]models.Project{{ID: "p1", Title: "one"}}, nil)
	projects.On("Count", mock.Anything).Return(int64(1), nil)
	skills.On("List", mock.Anything).Return([]models.Skill{{ID: "s1", Name: "Go"}}, nil)
	skills.On("Count", mock.Anything).Return(int64(1), nil)
	education.On("List", mock.Anything).Return(nil, errors.New("db down"))
	education.On("Count", mock.Anything).Return(int64(0), nil)
	experience.On("List", mock.Anything).Return([]models.Experience{}, nil)
	experience.On("Count", mock.Anything).Return(int64(0), nil)
	messages.On("List", mock.Anything).Return([]models.ContactMessage{}, nil)
	messages.On("Count", mock.Anything).Return(int64(0), nil)

	svc := NewDashboardService(profiles, projects, skills, education, experience, messages, logger.New())

	d, err := svc.Load(context.Background())
	assert.NoError(t, err)

	// failed member is empty, the rest loaded
	assert.Nil(t, d.Education)
	assert.Equal(t, "Jane", d.Profile.FullName)
	assert.Len(t, d.Projects, 1)
	assert.Equal(t, int64(1), d.Stats.Projects)
}

func TestDashboardStats_CountErrorFails(t *testing.T) {
	profiles := new(MockProfileRepository)
	projects := new(MockProjectRepository)
	skills := new(MockSkillRepository)
	education := new(MockEducationRepository)
	experience := new(MockExperienceRepository)
	messages := new(MockMessageRepository)

	projects.On("Count", mock.Anything).Return(int64(0), errors.New("db down"))

	svc := NewDashboardService(profiles, projects, skills, education, experience, messages, logger.New())

	_, err := svc.Stats(context.Background())
	assert.Error(t, err)
}
