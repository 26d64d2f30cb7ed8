package postgres

import (
	"context"
	"errors"

	"github.com/raihanmz/portfolio-backend/internal/models"
	"github.com/raihanmz/portfolio-backend/internal/utils"
	"gorm.io/gorm"
)

type EducationRepository interface {
	List(ctx context.Context) ([]models.Education, error)
	GetByID(ctx context.Context, id string) (*models.Education, error)
	Create(ctx context.Context, e *models.Education) error
	Save(ctx context.Context, e *models.Education) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type educationRepo struct {
	db *gorm.DB
}

func NewEducationRepo(db *gorm.DB) EducationRepository {
	return &educationRepo{db: db}
}

func (r *educationRepo) List(ctx context.Context) ([]models.Education, error) {
	var rows []models.Education
	// lexicographic on purpose: dates are free-form strings
	err := r.db.WithContext(ctx).
		Order("start_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *educationRepo) GetByID(ctx context.Context, id string) (*models.Education, error) {
	var e models.Education
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &e, err
}

func (r *educationRepo) Create(ctx context.Context, e *models.Education) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *educationRepo) Save(ctx context.Context, e *models.Education) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *educationRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Education{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *educationRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Education{}).Count(&n).Error
	return n, err
}
