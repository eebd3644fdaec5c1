package models

import "time"

// Inquiry types.
const (
	InquiryTypeGeneral  = "general"
	InquiryTypeViewing  = "viewing"
	InquiryTypeMoreInfo = "more-info"
)

// Inquiry statuses. Transitions are driven by the admin dashboard, never
// automatically.
const (
	InquiryStatusNew       = "new"
	InquiryStatusContacted = "contacted"
	InquiryStatusClosed    = "closed"
)

// Inquiry is a message from a visitor about a property. UserID is nil for
// anonymous visitors.
type Inquiry struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	PropertyID  string    `json:"propertyId" gorm:"type:varchar(36)" validate:"required,uuid"`
	UserID      *string   `json:"userId,omitempty" gorm:"type:varchar(36)" validate:"omitempty,uuid"`
	Name        string    `json:"name" validate:"required,max=200"`
	Email       string    `json:"email" validate:"required,email"`
	Phone       string    `json:"phone" validate:"omitempty,max=30"`
	Message     string    `json:"message" validate:"required,max=5000"`
	InquiryType string    `json:"inquiryType" gorm:"default:general" validate:"omitempty,oneof=general viewing more-info"`
	Status      string    `json:"status" gorm:"default:new" validate:"omitempty,oneof=new contacted closed"`
	CreatedAt   time.Time `json:"createdAt"`
}
