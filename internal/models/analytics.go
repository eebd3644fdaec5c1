package models

// Analytics holds the dashboard aggregates.
type Analytics struct {
	TotalProperties int64 `json:"totalProperties"`
	TotalUsers      int64 `json:"totalUsers"`
	TotalViews      int64 `json:"totalViews"`
	TotalInquiries  int64 `json:"totalInquiries"`
}
