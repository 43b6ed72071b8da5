package services

import (
	"context"
	"errors"

	"freelancehub_backend/internal/logger"
	"freelancehub_backend/internal/repositories"
	"freelancehub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService interface {
	// GetUserIDByEmail resolves a user id from an email address.
	GetUserIDByEmail(ctx context.Context, db *gorm.DB, email string) (string, error)
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetUserIDByEmail(ctx context.Context, db *gorm.DB, email string) (string, error) {
	user, err := s.userRepo.FindByEmail(db, email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return "", apperrors.ErrNotFound(err, "user", "User not found")
		}
		logger.CtxWithError(ctx, "failed to look up user by email", err)
		return "", apperrors.InternalError(err)
	}

	return user.ID, nil
}
