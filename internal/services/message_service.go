package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/raihanmz/portfolio-backend/internal/models"
	pgrepo "github.com/raihanmz/portfolio-backend/internal/repositories/postgres"
	"github.com/raihanmz/portfolio-backend/internal/revalidate"
	"github.com/raihanmz/portfolio-backend/internal/utils"
)

type MessageInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

type MessageService interface {
	List(ctx context.Context) ([]models.ContactMessage, error)
	Create(ctx context.Context, in MessageInput) (*models.ContactMessage, error)
	Delete(ctx context.Context, id string) error
}

type messageService struct {
	messages pgrepo.MessageRepository
	reval    *revalidate.Revalidator
}

func NewMessageService(messages pgrepo.MessageRepository, reval *revalidate.Revalidator) MessageService {
	return &messageService{messages: messages, reval: reval}
}

func (s *messageService) List(ctx context.Context) ([]models.ContactMessage, error) {
	const op = "MessageService.List"

	rows, err := s.messages.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list messages", err)
	}
	return rows, nil
}

func (s *messageService) Create(ctx context.Context, in MessageInput) (*models.ContactMessage, error) {
	const op = "MessageService.Create"

	if in.Name == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "name is required", nil)
	}
	if in.Email == "" || !strings.Contains(in.Email, "@") {
		return nil, utils.E(utils.CodeInvalidArgument, op, "email is required", nil)
	}
	if in.Message == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "message is required", nil)
	}

	row := &models.ContactMessage{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.messages.Create(ctx, row); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to save message", err)
	}

	// messages only show up in the admin panel
	s.reval.Invalidate(ctx, revalidate.PageAdmin)
	return row, nil
}

func (s *messageService) Delete(ctx context.Context, id string) error {
	const op = "MessageService.Delete"

	if id == "" {
		return utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}

	if err := s.messages.Delete(ctx, id); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to delete message", err)
	}

	s.reval.Invalidate(ctx, revalidate.PageAdmin)
	return nil
}
