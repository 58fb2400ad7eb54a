package services

import (
	"giglink_backend/internal/auth"
	"giglink_backend/internal/email"
	"giglink_backend/internal/logger"
	"giglink_backend/internal/models"
	"giglink_backend/internal/repositories"
	"giglink_backend/internal/services/dto"
	"giglink_backend/pkg/apperrors"
)

type AuthService struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	emailSender email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	emailSender email.Provider,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		emailSender: emailSender,
	}
}

// Register creates an account, seeds its profile and issues a first token.
// The email unique index arbitrates duplicate signups.
func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.LoginResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		Status:       models.UserStatusActive,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	profile := &models.Profile{
		UserID:      user.ID,
		DisplayName: req.DisplayName,
	}
	if err := s.profileRepo.Upsert(profile); err != nil {
		logger.WithError(err).Warn("failed to seed profile", "user_id", user.ID)
	}
	user.Profile = profile

	// Welcome mail is best-effort and must not delay the response.
	go func() {
		if err := s.emailSender.SendWelcome(user.Email, req.DisplayName); err != nil {
			logger.WithError(err).Warn("failed to send welcome email", "user_id", user.ID)
		}
	}()

	token, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("user registered", "user_id", user.ID, "role", user.Role)
	return &dto.LoginResponse{AccessToken: token, User: user}, nil
}

func (s *AuthService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if user.Status == models.UserStatusSuspended {
		return nil, apperrors.NewForbiddenError("Account is suspended")
	}

	token, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{AccessToken: token, User: user}, nil
}

// Me returns the authenticated account with its profile preloaded.
func (s *AuthService) Me(userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}
