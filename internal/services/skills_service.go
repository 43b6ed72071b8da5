package services

import (
	"context"
	"errors"
	"time"

	"freelancehub_backend/internal/logger"
	"freelancehub_backend/internal/models"
	"freelancehub_backend/internal/repositories"
	"freelancehub_backend/internal/skills"
	"freelancehub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type SkillsService interface {
	// GetAllSkills unions every profile's skills: trimmed, deduplicated,
	// not case-folded.
	GetAllSkills(ctx context.Context, db *gorm.DB) ([]string, error)
	GetUserSkills(ctx context.Context, db *gorm.DB, userID string) ([]string, error)
	ReplaceSkills(ctx context.Context, db *gorm.DB, userID string, newSkills []string) ([]string, error)
	// AddSkill reports existed=true when a case-insensitive match was
	// already present; nothing is persisted in that case.
	AddSkill(ctx context.Context, db *gorm.DB, userID, skill string) (list []string, existed bool, err error)
	RemoveSkill(ctx context.Context, db *gorm.DB, userID, skill string) ([]string, error)
}

type skillsService struct {
	profileRepo repositories.ProfileRepository
}

func NewSkillsService(profileRepo repositories.ProfileRepository) SkillsService {
	return &skillsService{profileRepo: profileRepo}
}

func (s *skillsService) GetAllSkills(ctx context.Context, db *gorm.DB) ([]string, error) {
	raws, err := s.profileRepo.ListRawSkills(db)
	if err != nil {
		logger.CtxWithError(ctx, "failed to list skills columns", err)
		return nil, apperrors.InternalError(err)
	}

	return skills.Aggregate(raws), nil
}

func (s *skillsService) GetUserSkills(ctx context.Context, db *gorm.DB, userID string) ([]string, error) {
	profile, err := s.findProfile(ctx, db, userID)
	if err != nil {
		return nil, err
	}

	return skills.Decode(profile.Skills), nil
}

func (s *skillsService) ReplaceSkills(ctx context.Context, db *gorm.DB, userID string, newSkills []string) ([]string, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	if _, err := s.findProfile(ctx, tx, userID); err != nil {
		return nil, err
	}

	// Caller casing is preserved verbatim; replace applies no
	// normalization beyond re-encoding.
	raw := skills.Encode(newSkills)
	if err := s.persistSkills(ctx, tx, userID, raw); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "skills replaced", "user_id", userID, "count", len(newSkills))
	return skills.Decode(raw), nil
}

func (s *skillsService) AddSkill(ctx context.Context, db *gorm.DB, userID, skill string) ([]string, bool, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, false, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	profile, err := s.findProfile(ctx, tx, userID)
	if err != nil {
		return nil, false, err
	}

	newRaw, list, duplicate := skills.AddOne(profile.Skills, skill)
	if duplicate {
		return list, true, nil
	}

	if err := s.persistSkills(ctx, tx, userID, newRaw); err != nil {
		return nil, false, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, false, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "skill added", "user_id", userID, "skill", skill)
	return list, false, nil
}

// RemoveSkill persists the filtered value even when nothing matched; the
// write standardizes legacy comma-encoded rows as a side effect.
func (s *skillsService) RemoveSkill(ctx context.Context, db *gorm.DB, userID, skill string) ([]string, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	profile, err := s.findProfile(ctx, tx, userID)
	if err != nil {
		return nil, err
	}

	newRaw, list := skills.RemoveOne(profile.Skills, skill)
	if err := s.persistSkills(ctx, tx, userID, newRaw); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "skill removed", "user_id", userID, "skill", skill)
	return list, nil
}

func (s *skillsService) findProfile(ctx context.Context, db *gorm.DB, userID string) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err, "profile", "User profile not found")
		}
		logger.CtxWithError(ctx, "failed to load profile", err, "user_id", userID)
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *skillsService) persistSkills(ctx context.Context, db *gorm.DB, userID, raw string) error {
	updates := map[string]interface{}{
		"skills":     raw,
		"updated_at": time.Now(),
	}
	if err := s.profileRepo.UpdateColumns(db, userID, updates); err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return apperrors.ErrNotFound(err, "profile", "User profile not found")
		}
		logger.CtxWithError(ctx, "failed to persist skills", err, "user_id", userID)
		return apperrors.InternalError(err)
	}
	return nil
}
