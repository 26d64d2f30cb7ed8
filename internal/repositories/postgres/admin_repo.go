package postgres

import (
	"context"
	"errors"

	"github.com/raihanmz/portfolio-backend/internal/models"
	"github.com/raihanmz/portfolio-backend/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AdminRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.Admin, error)
	Upsert(ctx context.Context, a *models.Admin) error
}

type adminRepo struct {
	db *gorm.DB
}

func NewAdminRepo(db *gorm.DB) AdminRepository {
	return &adminRepo{db: db}
}

func (r *adminRepo) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var a models.Admin
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Take(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &a, err
}

// Upsert is used by the seed command only.
func (r *adminRepo) Upsert(ctx context.Context, a *models.Admin) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"password_hash", "name"}),
		}).
		Create(a).Error
}
