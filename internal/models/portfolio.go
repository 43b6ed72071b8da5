package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// PortfolioItem is a single showcased work sample owned by a profile.
type PortfolioItem struct {
	BaseModel
	ProfileID    string         `gorm:"not null;index" json:"profile_id"`
	ProjectTitle string         `json:"project_title"`
	Description  string         `json:"description"`
	MediaLinks   datatypes.JSON `gorm:"type:jsonb" json:"media_links"` // ["https://...", ...]
}

// TableName keeps the legacy table name; GORM would pluralize to
// portfolio_items otherwise.
func (PortfolioItem) TableName() string {
	return "portfolioitems"
}

// GetMediaLinks returns the media links as a string slice.
func (p *PortfolioItem) GetMediaLinks() []string {
	var links []string
	if len(p.MediaLinks) > 0 {
		_ = json.Unmarshal(p.MediaLinks, &links)
	}
	return links
}

// SetMediaLinks stores the media links as a JSON array.
func (p *PortfolioItem) SetMediaLinks(links []string) {
	data, _ := json.Marshal(links)
	p.MediaLinks = datatypes.JSON(data)
}
