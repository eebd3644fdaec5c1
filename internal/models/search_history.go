package models

import "time"

// SearchHistory records a past listing search for a user. Filters holds the
// structured search payload as the client sent it.
type SearchHistory struct {
	ID        string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string         `json:"userId" gorm:"type:varchar(36);index" validate:"required,uuid"`
	Query     string         `json:"query" validate:"required,max=500"`
	Filters   map[string]any `json:"filters" gorm:"serializer:json;type:text"`
	CreatedAt time.Time      `json:"createdAt"`
}
