package models

type UserType string

const (
	UserTypeFreelancer UserType = "freelancer"
	UserTypeClient     UserType = "client"
)

// User is owned by the account subsystem; this service only ever reads it
// (id lookup by email, freelancer check on profile creation).
type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	UserType     UserType `gorm:"type:varchar(20);not null" json:"user_type"`

	// Relations
	Profile *Profile `gorm:"foreignKey:UserID" json:"-"`
}
