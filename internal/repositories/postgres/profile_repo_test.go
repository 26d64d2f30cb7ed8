package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raihanmz/portfolio-backend/internal/models"
	"github.com/raihanmz/portfolio-backend/internal/utils"
)

func TestProfileRepo_GetBeforeFirstSave(t *testing.T) {
	repo := NewProfileRepo(newTestDB(t))

	_, err := repo.Get(context.Background())
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestProfileRepo_UpsertKeepsSingleRow(t *testing.T) {
	repo := NewProfileRepo(newTestDB(t))
	ctx := context.Background()

	first := &models.Profile{
		ID:        models.DefaultProfileID,
		FullName:  "Jane Doe",
		Email:     "jane@example.com",
		UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.Upsert(ctx, first))

	second := &models.Profile{
		ID:        models.DefaultProfileID,
		FullName:  "Jane Q. Doe",
		Email:     "jane@example.com",
		Location:  "Jakarta",
		UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.Upsert(ctx, second))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Jane Q. Doe", got.FullName)
	assert.Equal(t, "Jakarta", got.Location)
}
