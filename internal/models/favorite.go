package models

import "time"

// Favorite associates a user with a property they saved. The composite unique
// index keeps at most one row per (user, property) pair.
type Favorite struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID     string    `json:"userId" gorm:"type:varchar(36);uniqueIndex:idx_favorites_user_property" validate:"required,uuid"`
	PropertyID string    `json:"propertyId" gorm:"type:varchar(36);uniqueIndex:idx_favorites_user_property" validate:"required,uuid"`
	CreatedAt  time.Time `json:"createdAt"`
}
