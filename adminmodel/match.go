package adminmodel

import "time"

type Match struct {
	ID                 string     `json:"_id,omitempty"`
	Date               time.Time  `json:"date,omitempty"`
	User1ID            *User      `json:"user1Id,omitempty"`
	User2ID            *User      `json:"user2Id,omitempty"`
	IsCompleted        bool       `json:"isCompleted"`
	CompletedAt        *time.Time `json:"completedAt,omitempty"`
	User1PhotosCount   int        `json:"user1PhotosCount,omitempty"`
	User2PhotosCount   int        `json:"user2PhotosCount,omitempty"`
	DidUser1SeePartner bool       `json:"didUser1SeePartner"`
	DidUser2SeePartner bool       `json:"didUser2SeePartner"`
	IsBrokenByReport   bool       `json:"isBrokenByReport"`
	ReportID           string     `json:"reportId,omitempty"`
	User1Photos        *Photo     `json:"user1Photos,omitempty"`
	User2Photos        *Photo     `json:"user2Photos,omitempty"`
	CreatedAt          time.Time  `json:"createdAt,omitempty"`
	UpdatedAt          time.Time  `json:"updatedAt,omitempty"`
}
