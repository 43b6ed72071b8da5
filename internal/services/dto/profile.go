package dto

import "time"

// Field names mirror the public API contract, which mixes camelCase and
// snake_case for historical reasons. Do not "fix" the tags.

type CreateProfileRequest struct {
	UserID          string   `json:"userId" validate:"required"`
	Skills          []string `json:"skills"`
	Bio             string   `json:"bio" validate:"omitempty,max=2000"`
	ExperienceLevel string   `json:"experienceLevel"`
	HourlyRate      float64  `json:"hourly_rate" validate:"omitempty,min=0"`
	Title           string   `json:"title"`
	ProfileImage    string   `json:"profile_image"`
	IsPublic        *bool    `json:"is_public"`
}

// UpdateProfileRequest uses pointers throughout: a nil field leaves the
// corresponding column untouched (COALESCE semantics).
type UpdateProfileRequest struct {
	Skills          []string `json:"skills"`
	Bio             *string  `json:"bio" validate:"omitempty,max=2000"`
	ExperienceLevel *string  `json:"experienceLevel"`
	HourlyRate      *float64 `json:"hourly_rate" validate:"omitempty,min=0"`
	Title           *string  `json:"title"`
	ProfileImage    *string  `json:"profile_image"`
	IsPublic        *bool    `json:"is_public"`
}

type ProfileResponse struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Email           string    `json:"email,omitempty"`
	Skills          []string  `json:"skills"`
	Bio             string    `json:"bio"`
	ExperienceLevel string    `json:"experience_level"`
	HourlyRate      float64   `json:"hourly_rate"`
	Title           string    `json:"title"`
	ProfileImage    string    `json:"profile_image"`
	IsPublic        bool      `json:"is_public"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
