package repositories

import (
	"errors"

	"freelancehub_backend/internal/models"

	"gorm.io/gorm"
)

// A lookup scoped to the wrong profile reports the same error as a missing
// row, so foreign items are indistinguishable from absent ones.
var ErrPortfolioItemNotFound = errors.New("portfolio item not found")

type PortfolioRepository interface {
	Create(db *gorm.DB, item *models.PortfolioItem) error
	ListByProfileID(db *gorm.DB, profileID string) ([]models.PortfolioItem, error)
	FindByIDAndProfileID(db *gorm.DB, itemID, profileID string) (*models.PortfolioItem, error)
	UpdateColumns(db *gorm.DB, itemID string, updates map[string]interface{}) error
	Delete(db *gorm.DB, itemID string) error
}

type PortfolioRepositoryImpl struct{}

func NewPortfolioRepository() PortfolioRepository {
	return &PortfolioRepositoryImpl{}
}

func (r *PortfolioRepositoryImpl) Create(db *gorm.DB, item *models.PortfolioItem) error {
	return db.Create(item).Error
}

func (r *PortfolioRepositoryImpl) ListByProfileID(db *gorm.DB, profileID string) ([]models.PortfolioItem, error) {
	var items []models.PortfolioItem
	err := db.Where("profile_id = ?", profileID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PortfolioRepositoryImpl) FindByIDAndProfileID(db *gorm.DB, itemID, profileID string) (*models.PortfolioItem, error) {
	var item models.PortfolioItem
	err := db.Where("id = ? AND profile_id = ?", itemID, profileID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPortfolioItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *PortfolioRepositoryImpl) UpdateColumns(db *gorm.DB, itemID string, updates map[string]interface{}) error {
	result := db.Model(&models.PortfolioItem{}).Where("id = ?", itemID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPortfolioItemNotFound
	}
	return nil
}

func (r *PortfolioRepositoryImpl) Delete(db *gorm.DB, itemID string) error {
	result := db.Where("id = ?", itemID).Delete(&models.PortfolioItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPortfolioItemNotFound
	}
	return nil
}
