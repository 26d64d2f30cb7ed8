package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/raihanmz/portfolio-backend/internal/cache"
	"github.com/raihanmz/portfolio-backend/internal/logger"
	"github.com/raihanmz/portfolio-backend/internal/models"
	"github.com/raihanmz/portfolio-backend/internal/revalidate"
	"github.com/raihanmz/portfolio-backend/internal/utils"
)

// MockProjectRepository is a mock implementation of ProjectRepository.
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Project), args.Error(1)
}

func (m *MockProjectRepository) ListFeatured(ctx context.Context) ([]models.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Project), args.Error(1)
}

func (m *MockProjectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockProjectRepository) Create(ctx context.Context, p *models.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProjectRepository) Save(ctx context.Context, p *models.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProjectRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProjectRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func newTestRevalidator() *revalidate.Revalidator {
	return revalidate.New(cache.NewMemoryCache(), logger.New())
}

func validProjectInput() ProjectInput {
	return ProjectInput{
		Title:       "Portfolio site",
		Description: "A personal portfolio website built with Go.",
		TechStack:   []string{"Go", "Postgres"},
	}
}

func TestProjectCreate_TitleBoundary(t *testing.T) {
	repo := new(MockProjectRepository)
	svc := NewProjectService(repo, newTestRevalidator())

	in := validProjectInput()
	in.Title = "ab" // 2 chars: below the minimum
	_, err := svc.Create(context.Background(), in)
	assert.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))

	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Project")).Return(nil)

	in.Title = "abc" // 3 chars: accepted
	p, err := svc.Create(context.Background(), in)
	assert.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	repo.AssertExpectations(t)
}

func TestProjectCreate_TitleLimitCountsRunes(t *testing.T) {
	repo := new(MockProjectRepository)
	svc := NewProjectService(repo, newTestRevalidator())

	in := validProjectInput()
	in.Title = "éé" // 2 runes, 4 bytes: still below the minimum
	_, err := svc.Create(context.Background(), in)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))

	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Project")).Return(nil)

	in.Title = strings.Repeat("é", 100) // 100 runes, 200 bytes: accepted
	_, err = svc.Create(context.Background(), in)
	assert.NoError(t, err)
}

func TestProjectCreate_DescriptionBoundary(t *testing.T) {
	repo := new(MockProjectRepository)
	svc := NewProjectService(repo, newTestRevalidator())

	in := validProjectInput()
	in.Description = "too short"
	_, err := svc.Create(context.Background(), in)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}

func TestProjectCreate_URLValidation(t *testing.T) {
	repo := new(MockProjectRepository)
	svc := NewProjectService(repo, newTestRevalidator())

	in := validProjectInput()
	in.LiveURL = "not-a-url"
	_, err := svc.Create(context.Background(), in)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))

	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Project")).Return(nil)

	in.LiveURL = "https://example.com"
	_, err = svc.Create(context.Background(), in)
	assert.NoError(t, err)
}

func TestProjectCreate_TechStackRoundTrip(t *testing.T) {
	repo := new(MockProjectRepository)
	svc := NewProjectService(repo, newTestRevalidator())

	var stored *models.Project
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Project")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*models.Project)
		}).
		Return(nil)

	in := validProjectInput()
	in.TechStack = []string{"React", "Node"}
	_, err := svc.Create(context.Background(), in)
	assert.NoError(t, err)
	assert.Equal(t, []string{"React", "Node"}, stored.Tags())
}

func TestProjectCreate_EmptyTechStackStaysValidJSON(t *testing.T) {
	repo := new(MockProjectRepository)
	svc := NewProjectService(repo, newTestRevalidator())

	var stored *models.Project
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Project")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*models.Project)
		}).
		Return(nil)

	in := validProjectInput()
	in.TechStack = nil
	_, err := svc.Create(context.Background(), in)
	assert.NoError(t, err)
	assert.JSONEq(t, "[]", string(stored.TechStack))
}

func TestProjectUpdate_RequiresID(t *testing.T) {
	repo := new(MockProjectRepository)
	svc := NewProjectService(repo, newTestRevalidator())

	_, err := svc.Update(context.Background(), "", validProjectInput())
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}

func TestProjectUpdate_MissingRowIsInternal(t *testing.T) {
	repo := new(MockProjectRepository)
	svc := NewProjectService(repo, newTestRevalidator())

	repo.On("GetByID", mock.Anything, "gone").Return(nil, utils.ErrNotFound)

	_, err := svc.Update(context.Background(), "gone", validProjectInput())
	assert.True(t, utils.IsCode(err, utils.CodeInternal))
}

func TestProjectDelete_RequiresID(t *testing.T) {
	repo := new(MockProjectRepository)
	svc := NewProjectService(repo, newTestRevalidator())

	err := svc.Delete(context.Background(), "")
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}
