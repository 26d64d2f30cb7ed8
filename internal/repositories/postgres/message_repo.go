package postgres

import (
	"context"

	"github.com/raihanmz/portfolio-backend/internal/models"
	"github.com/raihanmz/portfolio-backend/internal/utils"
	"gorm.io/gorm"
)

type MessageRepository interface {
	List(ctx context.Context) ([]models.ContactMessage, error)
	Create(ctx context.Context, m *models.ContactMessage) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type messageRepo struct {
	db *gorm.DB
}

func NewMessageRepo(db *gorm.DB) MessageRepository {
	return &messageRepo{db: db}
}

func (r *messageRepo) List(ctx context.Context) ([]models.ContactMessage, error) {
	var rows []models.ContactMessage
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *messageRepo) Create(ctx context.Context, m *models.ContactMessage) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *messageRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.ContactMessage{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *messageRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.ContactMessage{}).Count(&n).Error
	return n, err
}
