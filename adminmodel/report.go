package adminmodel

import "time"

type ReportCategory string

const (
	ReportChildSafety   ReportCategory = "child-safety"
	ReportInappropriate ReportCategory = "inappropriate"
	ReportSpam          ReportCategory = "spam"
	ReportHarassment    ReportCategory = "harassment"
	ReportFake          ReportCategory = "fake"
	ReportOther         ReportCategory = "other"
)

type ReportStatus string

const (
	ReportPending     ReportStatus = "pending"
	ReportUnderReview ReportStatus = "under-review"
	ReportApproved    ReportStatus = "approved"
	ReportRejected    ReportStatus = "rejected"
)

type Report struct {
	ID             string         `json:"_id,omitempty"`
	ReporterID     *User          `json:"reporterId,omitempty"`
	ReportedUserID *User          `json:"reportedUserId,omitempty"`
	ReportDate     time.Time      `json:"reportDate,omitempty"`
	MatchID        string         `json:"matchId,omitempty"`
	Category       ReportCategory `json:"category,omitempty"`
	CustomText     string         `json:"customText,omitempty"`
	Status         ReportStatus   `json:"status,omitempty"`
	ReviewedBy     *User          `json:"reviewedBy,omitempty"`
	ReviewedAt     *time.Time     `json:"reviewedAt,omitempty"`
	AdminNote      string         `json:"adminNote,omitempty"`
	DidBreakMatch  bool           `json:"didBreakMatch"`
	CreatedAt      time.Time      `json:"createdAt,omitempty"`
	UpdatedAt      time.Time      `json:"updatedAt,omitempty"`
}
