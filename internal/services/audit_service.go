package services

import (
	"context"
	"time"

	"github.com/raihanmz/portfolio-backend/internal/models"
	mongorepo "github.com/raihanmz/portfolio-backend/internal/repositories/mongo"
	"github.com/raihanmz/portfolio-backend/internal/utils"
	"github.com/sirupsen/logrus"
)

type AuditService interface {
	// Record is best-effort: a broken audit store never fails the mutation.
	Record(ctx context.Context, e *models.AuditEntry)
	ListRecent(ctx context.Context, limit int64) ([]models.AuditEntry, error)
}

type auditService struct {
	repo mongorepo.AuditRepository
	ttl  time.Duration
	log  *logrus.Logger
}

func NewAuditService(repo mongorepo.AuditRepository, ttl time.Duration, log *logrus.Logger) AuditService {
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &auditService{repo: repo, ttl: ttl, log: log}
}

func (s *auditService) Record(ctx context.Context, e *models.AuditEntry) {
	if s.repo == nil || e == nil {
		return
	}

	now := time.Now().UTC()
	e.Timestamp = now
	e.ExpiresAt = now.Add(s.ttl)

	cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 3*time.Second)
	defer cancel()

	if err := s.repo.Insert(cctx, e); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"path":   e.Path,
			"method": e.Method,
		}).Warn("audit insert failed")
	}
}

func (s *auditService) ListRecent(ctx context.Context, limit int64) ([]models.AuditEntry, error) {
	const op = "AuditService.ListRecent"

	if s.repo == nil {
		return []models.AuditEntry{}, nil
	}

	rows, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list audit entries", err)
	}
	return rows, nil
}
