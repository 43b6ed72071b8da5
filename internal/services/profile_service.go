package services

import (
	"context"
	"errors"
	"time"

	"freelancehub_backend/internal/logger"
	"freelancehub_backend/internal/models"
	"freelancehub_backend/internal/repositories"
	"freelancehub_backend/internal/services/dto"
	"freelancehub_backend/internal/skills"
	"freelancehub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const defaultExperienceLevel = "Entry-Level"

type ProfileService interface {
	CreateProfile(ctx context.Context, db *gorm.DB, req *dto.CreateProfileRequest) (*dto.ProfileResponse, error)
	GetProfile(ctx context.Context, db *gorm.DB, userID string) (*dto.ProfileResponse, []dto.PortfolioItemResponse, error)
	UpdateProfile(ctx context.Context, db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, []dto.PortfolioItemResponse, error)
}

type profileService struct {
	profileRepo   repositories.ProfileRepository
	userRepo      repositories.UserRepository
	portfolioRepo repositories.PortfolioRepository
}

func NewProfileService(
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserRepository,
	portfolioRepo repositories.PortfolioRepository,
) ProfileService {
	return &profileService{
		profileRepo:   profileRepo,
		userRepo:      userRepo,
		portfolioRepo: portfolioRepo,
	}
}

// CreateProfile runs its checks and the insert inside one transaction so
// a concurrent create cannot slip between the duplicate check and the
// write. Check order matches the API contract: duplicate profile first,
// then user existence, then user type.
func (s *profileService) CreateProfile(ctx context.Context, db *gorm.DB, req *dto.CreateProfileRequest) (*dto.ProfileResponse, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	if _, err := s.profileRepo.FindByUserID(tx, req.UserID); err == nil {
		return nil, apperrors.ErrAlreadyExists(repositories.ErrProfileAlreadyExists, "profile", "Profile already exists for this user")
	} else if !errors.Is(err, repositories.ErrProfileNotFound) {
		logger.CtxWithError(ctx, "failed to check for existing profile", err, "user_id", req.UserID)
		return nil, apperrors.InternalError(err)
	}

	user, err := s.userRepo.FindByID(tx, req.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "user", "User not found")
		}
		logger.CtxWithError(ctx, "failed to load user", err, "user_id", req.UserID)
		return nil, apperrors.InternalError(err)
	}
	if user.UserType != models.UserTypeFreelancer {
		return nil, apperrors.ErrInvalidOperation("profile", "Only freelancers can have profiles")
	}

	profile := &models.Profile{
		UserID:          req.UserID,
		Skills:          skills.Encode(req.Skills),
		Bio:             req.Bio,
		ExperienceLevel: req.ExperienceLevel,
		HourlyRate:      req.HourlyRate,
		Title:           req.Title,
		ProfileImage:    req.ProfileImage,
		IsPublic:        true,
	}
	if profile.ExperienceLevel == "" {
		profile.ExperienceLevel = defaultExperienceLevel
	}
	if req.IsPublic != nil {
		profile.IsPublic = *req.IsPublic
	}

	if err := s.profileRepo.Create(tx, profile); err != nil {
		if errors.Is(err, repositories.ErrProfileAlreadyExists) {
			return nil, apperrors.ErrAlreadyExists(err, "profile", "Profile already exists for this user")
		}
		logger.CtxWithError(ctx, "failed to create profile", err, "user_id", req.UserID)
		return nil, apperrors.InternalError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "profile created", "user_id", req.UserID, "profile_id", profile.ID)
	return profileToResponse(profile, ""), nil
}

func (s *profileService) GetProfile(ctx context.Context, db *gorm.DB, userID string) (*dto.ProfileResponse, []dto.PortfolioItemResponse, error) {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, nil, apperrors.ErrNotFound(err, "profile", "Profile not found")
		}
		logger.CtxWithError(ctx, "failed to load profile", err, "user_id", userID)
		return nil, nil, apperrors.InternalError(err)
	}

	// A profile whose user row is gone still renders, just without the
	// email. Any other fault during the owner lookup is a real error.
	email := ""
	user, err := s.userRepo.FindByID(db, profile.UserID)
	switch {
	case err == nil:
		email = user.Email
	case errors.Is(err, repositories.ErrUserNotFound):
	default:
		logger.CtxWithError(ctx, "failed to load profile owner", err, "user_id", profile.UserID)
		return nil, nil, apperrors.InternalError(err)
	}

	items, err := s.portfolioRepo.ListByProfileID(db, profile.ID)
	if err != nil {
		logger.CtxWithError(ctx, "failed to load portfolio items", err, "profile_id", profile.ID)
		return nil, nil, apperrors.InternalError(err)
	}

	return profileToResponse(profile, email), portfolioItemsToResponses(items), nil
}

// UpdateProfile re-validates profile existence under the same transaction
// as the column update; omitted request fields never reach the update map.
func (s *profileService) UpdateProfile(ctx context.Context, db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, []dto.PortfolioItemResponse, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	if _, err := s.profileRepo.FindByUserID(tx, userID); err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, nil, apperrors.ErrNotFound(err, "profile", "Profile not found")
		}
		logger.CtxWithError(ctx, "failed to load profile", err, "user_id", userID)
		return nil, nil, apperrors.InternalError(err)
	}

	if err := s.profileRepo.UpdateColumns(tx, userID, buildProfileUpdates(req)); err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, nil, apperrors.ErrNotFound(err, "profile", "Profile not found")
		}
		logger.CtxWithError(ctx, "failed to update profile", err, "user_id", userID)
		return nil, nil, apperrors.InternalError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "profile updated", "user_id", userID)
	return s.GetProfile(ctx, db, userID)
}

// buildProfileUpdates maps the set fields of a partial update onto their
// columns. updated_at is always refreshed, even for an empty request.
func buildProfileUpdates(req *dto.UpdateProfileRequest) map[string]interface{} {
	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}

	if req.Skills != nil {
		updates["skills"] = skills.Encode(req.Skills)
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.ExperienceLevel != nil {
		updates["experience_level"] = *req.ExperienceLevel
	}
	if req.HourlyRate != nil {
		updates["hourly_rate"] = *req.HourlyRate
	}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.ProfileImage != nil {
		updates["profile_image"] = *req.ProfileImage
	}
	if req.IsPublic != nil {
		updates["is_public"] = *req.IsPublic
	}

	return updates
}

func profileToResponse(p *models.Profile, email string) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		ID:              p.ID,
		UserID:          p.UserID,
		Email:           email,
		Skills:          skills.Decode(p.Skills),
		Bio:             p.Bio,
		ExperienceLevel: p.ExperienceLevel,
		HourlyRate:      p.HourlyRate,
		Title:           p.Title,
		ProfileImage:    p.ProfileImage,
		IsPublic:        p.IsPublic,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
