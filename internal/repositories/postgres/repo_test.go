package postgres

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/raihanmz/portfolio-backend/internal/models"
)

// newTestDB opens a per-test in-memory database. cache=shared keeps the same
// database visible across the pool's connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Profile{}, &models.Project{}, &models.Skill{},
		&models.Education{}, &models.Experience{}, &models.ContactMessage{},
		&models.Admin{},
	))
	return db
}
