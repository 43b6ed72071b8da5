package models

// Profile is a freelancer's public record, at most one per user.
//
// Skills is raw column text: new rows hold a JSON array literal, legacy
// rows a comma-separated string. Nothing above the skills package should
// touch this field directly.
type Profile struct {
	BaseModel
	UserID          string  `gorm:"uniqueIndex;not null" json:"user_id"`
	Skills          string  `gorm:"type:text" json:"-"`
	Bio             string  `json:"bio"`
	ExperienceLevel string  `gorm:"default:'Entry-Level'" json:"experience_level"`
	HourlyRate      float64 `json:"hourly_rate"`
	Title           string  `json:"title"`
	ProfileImage    string  `json:"profile_image"`
	IsPublic        bool    `gorm:"default:true" json:"is_public"`

	// Relations
	PortfolioItems []PortfolioItem `gorm:"foreignKey:ProfileID" json:"-"`
}
