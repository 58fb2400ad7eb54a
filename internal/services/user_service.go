package services

import (
	"giglink_backend/internal/models"
	"giglink_backend/internal/repositories"
	"giglink_backend/internal/services/dto"
	"giglink_backend/pkg/apperrors"
)

type UserService struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
}

func NewUserService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
) *UserService {
	return &UserService{userRepo: userRepo, profileRepo: profileRepo}
}

func (s *UserService) GetProfile(userID string) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

// UpdateProfile applies the non-nil fields of req over the caller's profile,
// creating it if the signup seed is missing.
func (s *UserService) UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if !apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.InternalError(err)
		}
		profile = &models.Profile{UserID: userID}
	}

	if req.DisplayName != nil {
		profile.DisplayName = *req.DisplayName
	}
	if req.Headline != nil {
		profile.Headline = *req.Headline
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.City != nil {
		profile.City = *req.City
	}
	if req.Skills != nil {
		profile.Skills = listJSON(req.Skills)
	}
	if req.Languages != nil {
		profile.Languages = listJSON(req.Languages)
	}

	if err := s.profileRepo.Upsert(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}
