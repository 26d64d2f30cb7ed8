package services

import (
	"context"
	"errors"

	"github.com/raihanmz/portfolio-backend/internal/models"
	pgrepo "github.com/raihanmz/portfolio-backend/internal/repositories/postgres"
	"github.com/raihanmz/portfolio-backend/internal/utils"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.Admin, error)
}

type authService struct {
	admins pgrepo.AdminRepository
}

func NewAuthService(admins pgrepo.AdminRepository) AuthService {
	return &authService{admins: admins}
}

// Login checks credentials against the admins table. Failures are
// deliberately indistinguishable: same code, same message.
func (s *authService) Login(ctx context.Context, email, password string) (*models.Admin, error) {
	const op = "AuthService.Login"

	if email == "" || password == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "email and password are required", nil)
	}

	admin, err := s.admins.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeUnauthorized, op, "login failed", nil)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to look up admin", err)
	}

	if err := utils.CheckPassword(admin.PasswordHash, password); err != nil {
		return nil, utils.E(utils.CodeUnauthorized, op, "login failed", nil)
	}

	return admin, nil
}
