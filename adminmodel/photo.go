package adminmodel

import "time"

// ReactionType is the reaction a partner can leave on a photo.
type ReactionType string

const (
	ReactionLove  ReactionType = "love"
	ReactionFire  ReactionType = "fire"
	ReactionCool  ReactionType = "cool"
	ReactionFunny ReactionType = "funny"
	ReactionWow   ReactionType = "wow"
	ReactionMeh   ReactionType = "meh"
)

// TimeType is the daily upload window a photo belongs to.
type TimeType string

const (
	TimeMorning   TimeType = "morning"
	TimeAfternoon TimeType = "afternoon"
	TimeEvening   TimeType = "evening"
	TimeNight     TimeType = "night"
)

type Reaction struct {
	Type      ReactionType `json:"type"`
	ReactedAt time.Time    `json:"reactedAt"`
}

type DailyTimePhoto struct {
	URL               string    `json:"url"`
	UploadedAt        time.Time `json:"uploadedAt"`
	DailyTimeID       string    `json:"dailyTimeId"`
	TimeType          TimeType  `json:"timeType"`
	IsItSeenByPartner bool      `json:"isItSeenByPartner"`
	Reaction          *Reaction `json:"reaction,omitempty"`
}

type ConceptPhoto struct {
	URL               string    `json:"url"`
	UploadedAt        time.Time `json:"uploadedAt"`
	ConceptID         string    `json:"conceptId"`
	IsItSeenByPartner bool      `json:"isItSeenByPartner"`
	Reaction          *Reaction `json:"reaction,omitempty"`
}

type Photo struct {
	ID               string           `json:"_id,omitempty"`
	UserID           string           `json:"userId,omitempty"`
	Date             time.Time        `json:"date,omitempty"`
	ConceptPhoto     *ConceptPhoto    `json:"conceptPhoto,omitempty"`
	DailyTimesPhotos []DailyTimePhoto `json:"dailyTimesPhotos,omitempty"`
	IsComplete       bool             `json:"isComplete"`
	CompletedAt      *time.Time       `json:"completedAt,omitempty"`
	CreatedAt        time.Time        `json:"createdAt,omitempty"`
	UpdatedAt        time.Time        `json:"updatedAt,omitempty"`
}
