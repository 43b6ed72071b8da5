package services

import (
	"context"
	"errors"
	"time"

	"freelancehub_backend/internal/logger"
	"freelancehub_backend/internal/models"
	"freelancehub_backend/internal/repositories"
	"freelancehub_backend/internal/services/dto"
	"freelancehub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type PortfolioService interface {
	AddItem(ctx context.Context, db *gorm.DB, userID string, req *dto.CreatePortfolioItemRequest) (*dto.PortfolioItemResponse, error)
	ListItems(ctx context.Context, db *gorm.DB, userID string) ([]dto.PortfolioItemResponse, error)
	UpdateItem(ctx context.Context, db *gorm.DB, userID, itemID string, req *dto.UpdatePortfolioItemRequest) (*dto.PortfolioItemResponse, error)
	DeleteItem(ctx context.Context, db *gorm.DB, userID, itemID string) error
}

type portfolioService struct {
	portfolioRepo repositories.PortfolioRepository
	profileRepo   repositories.ProfileRepository
}

func NewPortfolioService(
	portfolioRepo repositories.PortfolioRepository,
	profileRepo repositories.ProfileRepository,
) PortfolioService {
	return &portfolioService{
		portfolioRepo: portfolioRepo,
		profileRepo:   profileRepo,
	}
}

func (s *portfolioService) AddItem(ctx context.Context, db *gorm.DB, userID string, req *dto.CreatePortfolioItemRequest) (*dto.PortfolioItemResponse, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	profile, err := s.findProfile(ctx, tx, userID)
	if err != nil {
		return nil, err
	}

	item := &models.PortfolioItem{
		ProfileID:    profile.ID,
		ProjectTitle: req.ProjectTitle,
		Description:  req.Description,
	}
	item.SetMediaLinks(req.MediaLinks)

	if err := s.portfolioRepo.Create(tx, item); err != nil {
		logger.CtxWithError(ctx, "failed to create portfolio item", err, "profile_id", profile.ID)
		return nil, apperrors.InternalError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "portfolio item added", "profile_id", profile.ID, "item_id", item.ID)
	resp := portfolioItemToResponse(item)
	return &resp, nil
}

func (s *portfolioService) ListItems(ctx context.Context, db *gorm.DB, userID string) ([]dto.PortfolioItemResponse, error) {
	profile, err := s.findProfile(ctx, db, userID)
	if err != nil {
		return nil, err
	}

	items, err := s.portfolioRepo.ListByProfileID(db, profile.ID)
	if err != nil {
		logger.CtxWithError(ctx, "failed to list portfolio items", err, "profile_id", profile.ID)
		return nil, apperrors.InternalError(err)
	}

	return portfolioItemsToResponses(items), nil
}

// UpdateItem verifies ownership and applies the partial update inside one
// transaction, so the item cannot change hands or vanish in between.
func (s *portfolioService) UpdateItem(ctx context.Context, db *gorm.DB, userID, itemID string, req *dto.UpdatePortfolioItemRequest) (*dto.PortfolioItemResponse, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	profile, err := s.findProfile(ctx, tx, userID)
	if err != nil {
		return nil, err
	}

	if _, err := s.findOwnedItem(ctx, tx, itemID, profile.ID); err != nil {
		return nil, err
	}

	updates := buildPortfolioUpdates(req)
	if err := s.portfolioRepo.UpdateColumns(tx, itemID, updates); err != nil {
		if errors.Is(err, repositories.ErrPortfolioItemNotFound) {
			return nil, apperrors.ErrNotFound(err, "portfolio", "Portfolio item not found or unauthorized")
		}
		logger.CtxWithError(ctx, "failed to update portfolio item", err, "item_id", itemID)
		return nil, apperrors.InternalError(err)
	}

	updated, err := s.findOwnedItem(ctx, tx, itemID, profile.ID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := portfolioItemToResponse(updated)
	return &resp, nil
}

func (s *portfolioService) DeleteItem(ctx context.Context, db *gorm.DB, userID, itemID string) error {
	tx := db.Begin()
	if tx.Error != nil {
		return apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	profile, err := s.findProfile(ctx, tx, userID)
	if err != nil {
		return err
	}

	if _, err := s.findOwnedItem(ctx, tx, itemID, profile.ID); err != nil {
		return err
	}

	if err := s.portfolioRepo.Delete(tx, itemID); err != nil {
		if errors.Is(err, repositories.ErrPortfolioItemNotFound) {
			return apperrors.ErrNotFound(err, "portfolio", "Portfolio item not found or unauthorized")
		}
		logger.CtxWithError(ctx, "failed to delete portfolio item", err, "item_id", itemID)
		return apperrors.InternalError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "portfolio item deleted", "item_id", itemID)
	return nil
}

func (s *portfolioService) findProfile(ctx context.Context, db *gorm.DB, userID string) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err, "profile", "Profile not found")
		}
		logger.CtxWithError(ctx, "failed to load profile", err, "user_id", userID)
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

// findOwnedItem is the ownership check: a miss and a foreign item produce
// the same 404 so nothing about other profiles' items leaks out.
func (s *portfolioService) findOwnedItem(ctx context.Context, db *gorm.DB, itemID, profileID string) (*models.PortfolioItem, error) {
	item, err := s.portfolioRepo.FindByIDAndProfileID(db, itemID, profileID)
	if err != nil {
		if errors.Is(err, repositories.ErrPortfolioItemNotFound) {
			return nil, apperrors.ErrNotFound(err, "portfolio", "Portfolio item not found or unauthorized")
		}
		logger.CtxWithError(ctx, "failed to load portfolio item", err, "item_id", itemID)
		return nil, apperrors.InternalError(err)
	}
	return item, nil
}

func buildPortfolioUpdates(req *dto.UpdatePortfolioItemRequest) map[string]interface{} {
	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}

	if req.ProjectTitle != nil {
		updates["project_title"] = *req.ProjectTitle
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.MediaLinks != nil {
		item := &models.PortfolioItem{}
		item.SetMediaLinks(req.MediaLinks)
		updates["media_links"] = item.MediaLinks
	}

	return updates
}

func portfolioItemToResponse(item *models.PortfolioItem) dto.PortfolioItemResponse {
	return dto.PortfolioItemResponse{
		ID:           item.ID,
		ProfileID:    item.ProfileID,
		ProjectTitle: item.ProjectTitle,
		Description:  item.Description,
		MediaLinks:   item.GetMediaLinks(),
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}

func portfolioItemsToResponses(items []models.PortfolioItem) []dto.PortfolioItemResponse {
	out := make([]dto.PortfolioItemResponse, 0, len(items))
	for i := range items {
		out = append(out, portfolioItemToResponse(&items[i]))
	}
	return out
}
