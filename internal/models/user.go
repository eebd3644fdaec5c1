package models

import "time"

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an account: a regular visitor, an agent owning listings,
// or an admin managing the catalog.
type User struct {
	ID              string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username        string    `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Email           string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password        string    `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"`
	FirstName       string    `json:"firstName" validate:"omitempty,max=100"`
	LastName        string    `json:"lastName" validate:"omitempty,max=100"`
	ProfileImageURL string    `json:"profileImageUrl" validate:"omitempty,url"`
	Role            string    `json:"role" gorm:"default:user" validate:"omitempty,oneof=user admin"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
