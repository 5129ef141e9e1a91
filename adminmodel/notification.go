package adminmodel

import "time"

type NotificationType string

const (
	NotificationPartnerNudge     NotificationType = "partner_nudge"
	NotificationAdmin            NotificationType = "admin_notification"
	NotificationSystem           NotificationType = "system"
	NotificationPhotoReaction    NotificationType = "photo_reaction"
	NotificationConceptActivated NotificationType = "concept_activated"
)

type Notification struct {
	ID          string           `json:"_id,omitempty"`
	RecipientID string           `json:"recipientId,omitempty"`
	SenderID    string           `json:"senderId,omitempty"`
	Type        NotificationType `json:"type,omitempty"`
	Title       string           `json:"title,omitempty"`
	Message     string           `json:"message,omitempty"`
	IsRead      bool             `json:"isRead"`
	ReadAt      *time.Time       `json:"readAt,omitempty"`
	Date        *time.Time       `json:"date,omitempty"`
	Metadata    map[string]any   `json:"metadata,omitempty"`
	CreatedAt   time.Time        `json:"createdAt,omitempty"`
	UpdatedAt   time.Time        `json:"updatedAt,omitempty"`
}
