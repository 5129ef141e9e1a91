package adminmodel

import "time"

// Concept is a photo-concept prompt with an activation time and a bounded
// upload window.
type Concept struct {
	ID                  string     `json:"_id,omitempty"`
	Date                string     `json:"date,omitempty"`
	Concept             string     `json:"concept,omitempty"`
	Description         string     `json:"description,omitempty"`
	ImageURL            string     `json:"imageUrl,omitempty"`
	ActivateDateTime    time.Time  `json:"activateDateTime,omitempty"`
	UploadWindowMinutes int        `json:"uploadWindowMinutes,omitempty"`
	IsActive            bool       `json:"isActive"`
	NotificationSentAt  *time.Time `json:"notificationSentAt,omitempty"`
	CreatedAt           time.Time  `json:"createdAt,omitempty"`
	UpdatedAt           time.Time  `json:"updatedAt,omitempty"`
}

// ConceptStats is the per-concept usage summary shown on detail pages.
type ConceptStats struct {
	TotalPhotos     int     `json:"totalPhotos"`
	CompletedPhotos int     `json:"completedPhotos"`
	CompletionRate  float64 `json:"completionRate,omitempty"`
}

// DailyTime is a configured daily upload window.
type DailyTime struct {
	ID          string    `json:"_id,omitempty"`
	Type        TimeType  `json:"type,omitempty"`
	StartHour   int       `json:"startHour"`
	StartMinute int       `json:"startMinute"`
	EndHour     int       `json:"endHour"`
	EndMinute   int       `json:"endMinute"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}
