package models

import "time"

// Property types.
const (
	PropertyTypeHouse       = "house"
	PropertyTypeCondo       = "condo"
	PropertyTypeTownhome    = "townhome"
	PropertyTypeMultiFamily = "multi-family"
	PropertyTypeLand        = "land"
	PropertyTypeCommercial  = "commercial"
)

// Listing statuses.
const (
	StatusForSale   = "for-sale"
	StatusForRent   = "for-rent"
	StatusSold      = "sold"
	StatusRented    = "rented"
	StatusPending   = "pending"
	StatusOffMarket = "off-market"
)

// Property represents a real-estate listing.
type Property struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title        string    `json:"title" validate:"required,min=3,max=200"`
	Description  string    `json:"description" validate:"omitempty,max=5000"`
	Address      string    `json:"address" validate:"required,max=255"`
	City         string    `json:"city" validate:"required,max=100"`
	State        string    `json:"state" validate:"required,max=100"`
	ZipCode      string    `json:"zipCode" validate:"required,max=20"`
	Price        float64   `json:"price" validate:"required,gte=0"`
	Bedrooms     *int      `json:"bedrooms,omitempty" validate:"omitempty,gte=0"`
	Bathrooms    *float64  `json:"bathrooms,omitempty" validate:"omitempty,gte=0"`
	Sqft         *int      `json:"sqft,omitempty" validate:"omitempty,gt=0"`
	LotSize      *float64  `json:"lotSize,omitempty" validate:"omitempty,gt=0"`
	YearBuilt    *int      `json:"yearBuilt,omitempty" validate:"omitempty,gte=1800"`
	PropertyType string    `json:"propertyType" validate:"required,oneof=house condo townhome multi-family land commercial"`
	Status       string    `json:"status" gorm:"default:for-sale" validate:"omitempty,oneof=for-sale for-rent sold rented pending off-market"`
	Featured     bool      `json:"featured"`
	Images       []string  `json:"images" gorm:"serializer:json;type:text"`
	Features     []string  `json:"features" gorm:"serializer:json;type:text"`
	AgentID      *string   `json:"agentId,omitempty" gorm:"type:varchar(36)" validate:"omitempty,uuid"`
	Views        int       `json:"views"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// PropertyUpdate is a partial update of a Property. Nil fields are left untouched.
type PropertyUpdate struct {
	Title        *string   `json:"title" validate:"omitempty,min=3,max=200"`
	Description  *string   `json:"description" validate:"omitempty,max=5000"`
	Address      *string   `json:"address" validate:"omitempty,max=255"`
	City         *string   `json:"city" validate:"omitempty,max=100"`
	State        *string   `json:"state" validate:"omitempty,max=100"`
	ZipCode      *string   `json:"zipCode" validate:"omitempty,max=20"`
	Price        *float64  `json:"price" validate:"omitempty,gte=0"`
	Bedrooms     *int      `json:"bedrooms" validate:"omitempty,gte=0"`
	Bathrooms    *float64  `json:"bathrooms" validate:"omitempty,gte=0"`
	Sqft         *int      `json:"sqft" validate:"omitempty,gt=0"`
	LotSize      *float64  `json:"lotSize" validate:"omitempty,gt=0"`
	YearBuilt    *int      `json:"yearBuilt" validate:"omitempty,gte=1800"`
	PropertyType *string   `json:"propertyType" validate:"omitempty,oneof=house condo townhome multi-family land commercial"`
	Status       *string   `json:"status" validate:"omitempty,oneof=for-sale for-rent sold rented pending off-market"`
	Featured     *bool     `json:"featured"`
	Images       *[]string `json:"images"`
	Features     *[]string `json:"features"`
	AgentID      *string   `json:"agentId" validate:"omitempty,uuid"`
}

// Apply copies the set fields onto the property. The view counter and timestamps
// are never touched here; views change only through the increment operation.
func (u *PropertyUpdate) Apply(p *Property) {
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Address != nil {
		p.Address = *u.Address
	}
	if u.City != nil {
		p.City = *u.City
	}
	if u.State != nil {
		p.State = *u.State
	}
	if u.ZipCode != nil {
		p.ZipCode = *u.ZipCode
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.Bedrooms != nil {
		p.Bedrooms = u.Bedrooms
	}
	if u.Bathrooms != nil {
		p.Bathrooms = u.Bathrooms
	}
	if u.Sqft != nil {
		p.Sqft = u.Sqft
	}
	if u.LotSize != nil {
		p.LotSize = u.LotSize
	}
	if u.YearBuilt != nil {
		p.YearBuilt = u.YearBuilt
	}
	if u.PropertyType != nil {
		p.PropertyType = *u.PropertyType
	}
	if u.Status != nil {
		p.Status = *u.Status
	}
	if u.Featured != nil {
		p.Featured = *u.Featured
	}
	if u.Images != nil {
		p.Images = *u.Images
	}
	if u.Features != nil {
		p.Features = *u.Features
	}
	if u.AgentID != nil {
		p.AgentID = u.AgentID
	}
}

// Search defaults.
const (
	DefaultSearchLimit   = 12
	DefaultFeaturedLimit = 6
)

// PropertySearch is the filter/sort/page specification for a listing query.
// Every filter field is optional; an absent field puts no constraint on that
// dimension. Pointer fields distinguish "not supplied" from a zero value.
type PropertySearch struct {
	Query        string   `query:"query" json:"query"`
	City         string   `query:"city" json:"city"`
	State        string   `query:"state" json:"state"`
	ZipCode      string   `query:"zipCode" json:"zipCode"`
	PropertyType string   `query:"propertyType" json:"propertyType" validate:"omitempty,oneof=house condo townhome multi-family land commercial"`
	Status       string   `query:"status" json:"status" validate:"omitempty,oneof=for-sale for-rent sold rented pending off-market"`
	MinPrice     *float64 `query:"minPrice" json:"minPrice,omitempty" validate:"omitempty,gte=0"`
	MaxPrice     *float64 `query:"maxPrice" json:"maxPrice,omitempty" validate:"omitempty,gte=0"`
	MinBedrooms  *int     `query:"minBedrooms" json:"minBedrooms,omitempty" validate:"omitempty,gte=0"`
	MaxBedrooms  *int     `query:"maxBedrooms" json:"maxBedrooms,omitempty" validate:"omitempty,gte=0"`
	MinBathrooms *float64 `query:"minBathrooms" json:"minBathrooms,omitempty" validate:"omitempty,gte=0"`
	MaxBathrooms *float64 `query:"maxBathrooms" json:"maxBathrooms,omitempty" validate:"omitempty,gte=0"`
	MinSqft      *int     `query:"minSqft" json:"minSqft,omitempty" validate:"omitempty,gte=0"`
	MaxSqft      *int     `query:"maxSqft" json:"maxSqft,omitempty" validate:"omitempty,gte=0"`
	Featured     *bool    `query:"featured" json:"featured,omitempty"`
	Page         int      `query:"page" json:"page"`
	Limit        int      `query:"limit" json:"limit"`
	SortBy       string   `query:"sortBy" json:"sortBy"`
	SortOrder    string   `query:"sortOrder" json:"sortOrder"`
}

// Normalize fills in paging and sorting defaults: page 1, limit 12, newest
// first. An unrecognized sort order falls back to descending; unrecognized
// sort columns are handled by the repository, which falls back to createdAt.
func (s *PropertySearch) Normalize() {
	if s.Page < 1 {
		s.Page = 1
	}
	if s.Limit < 1 {
		s.Limit = DefaultSearchLimit
	}
	if s.SortBy == "" {
		s.SortBy = "createdAt"
	}
	if s.SortOrder != "asc" {
		s.SortOrder = "desc"
	}
}
