package adminmodel

import "time"

type Policy struct {
	ID        string    `json:"_id,omitempty"`
	Name      string    `json:"name,omitempty"`
	Content   string    `json:"content,omitempty"`
	Version   string    `json:"version,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// DashboardStats is the aggregate snapshot rendered on the dashboard page.
type DashboardStats struct {
	TotalUsers     int `json:"totalUsers"`
	ActiveUsers    int `json:"activeUsers"`
	BannedUsers    int `json:"bannedUsers"`
	TotalMatches   int `json:"totalMatches"`
	TodayMatches   int `json:"todayMatches"`
	TotalPhotos    int `json:"totalPhotos"`
	TotalReports   int `json:"totalReports"`
	PendingReports int `json:"pendingReports"`
	ActiveConcepts int `json:"activeConcepts"`
}
