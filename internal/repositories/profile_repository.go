package repositories

import (
	"errors"

	"freelancehub_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists for this user")
)

type ProfileRepository interface {
	Create(db *gorm.DB, profile *models.Profile) error
	FindByUserID(db *gorm.DB, userID string) (*models.Profile, error)
	// UpdateColumns applies a partial column update keyed by user id.
	// Callers include updated_at themselves when they want it refreshed.
	UpdateColumns(db *gorm.DB, userID string, updates map[string]interface{}) error
	// ListRawSkills returns the raw skills column of every profile that
	// has one; each value may use either legacy encoding.
	ListRawSkills(db *gorm.DB) ([]string, error)
}

type ProfileRepositoryImpl struct{}

func NewProfileRepository() ProfileRepository {
	return &ProfileRepositoryImpl{}
}

func (r *ProfileRepositoryImpl) Create(db *gorm.DB, profile *models.Profile) error {
	var existing models.Profile
	if err := db.Where("user_id = ?", profile.UserID).First(&existing).Error; err == nil {
		return ErrProfileAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindByUserID(db *gorm.DB, userID string) (*models.Profile, error) {
	var profile models.Profile
	err := db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdateColumns(db *gorm.DB, userID string, updates map[string]interface{}) error {
	result := db.Model(&models.Profile{}).Where("user_id = ?", userID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) ListRawSkills(db *gorm.DB) ([]string, error) {
	var raws []string
	err := db.Model(&models.Profile{}).
		Where("skills IS NOT NULL AND skills <> ''").
		Pluck("skills", &raws).Error
	if err != nil {
		return nil, err
	}
	return raws, nil
}
