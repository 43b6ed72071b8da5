package dto

import "time"

type CreatePortfolioItemRequest struct {
	ProjectTitle string   `json:"projectTitle"`
	Description  string   `json:"description"`
	MediaLinks   []string `json:"mediaLinks"`
}

type UpdatePortfolioItemRequest struct {
	ProjectTitle *string  `json:"projectTitle"`
	Description  *string  `json:"description"`
	MediaLinks   []string `json:"mediaLinks"`
}

type PortfolioItemResponse struct {
	ID           string    `json:"id"`
	ProfileID    string    `json:"profile_id"`
	ProjectTitle string    `json:"project_title"`
	Description  string    `json:"description"`
	MediaLinks   []string  `json:"media_links"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
