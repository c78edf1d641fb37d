package services

import (
	"context"
	"net/http"

	"cornerstone_backend/internal/auth"
	"cornerstone_backend/internal/models"
	"cornerstone_backend/internal/repositories"
	"cornerstone_backend/internal/services/dto"
	"cornerstone_backend/pkg/apperrors"
)

var (
	errInvalidCredentials = apperrors.New(apperrors.CodeInvalidCredentials, "auth", "Invalid email or password", http.StatusUnauthorized)
	errAccountDisabled    = apperrors.New(apperrors.CodeForbidden, "auth", "Account is disabled", http.StatusForbidden)
)

type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type AuthServiceImpl struct {
	userRepo     repositories.UserRepository
	auditService AuditService
}

func NewAuthService(userRepo repositories.UserRepository, auditService AuditService) AuthService {
	return &AuthServiceImpl{
		userRepo:     userRepo,
		auditService: auditService,
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		// Same response for unknown email and wrong password.
		return nil, errInvalidCredentials
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, errInvalidCredentials
	}

	if user.Status != models.UserStatusActive {
		return nil, errAccountDisabled
	}

	token, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.auditService.RecordAsync(ctx, &user.ID, AuditActionUserLogin, "user", user.ID, nil)

	return &dto.LoginResponse{
		AccessToken: token,
		User: dto.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  string(user.Role),
		},
	}, nil
}
