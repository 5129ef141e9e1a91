package admin

import (
	"context"
	"net/http"

	"github.com/jrsteele09/go-admin-client/adminmodel"
	"github.com/jrsteele09/go-admin-client/resources"
)

// NotificationSend is an in-app notification addressed to one recipient, or
// to everyone when RecipientID is empty.
type NotificationSend struct {
	Title       string                      `json:"title"`
	Message     string                      `json:"message"`
	Type        adminmodel.NotificationType `json:"type"`
	RecipientID string                      `json:"recipientId,omitempty"`
}

// SendNotification delivers an in-app notification.
func (s *Service) SendNotification(ctx context.Context, send NotificationSend) error {
	_, err := s.provider.Custom(ctx, resources.CustomRequest{
		URL:    "/notifications/admin/send",
		Method: http.MethodPost,
		Body:   send,
	})
	return err
}

// PushBroadcast is a push notification delivered to every device.
type PushBroadcast struct {
	Title   string         `json:"title"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

// BroadcastPush sends a push notification to all users.
func (s *Service) BroadcastPush(ctx context.Context, broadcast PushBroadcast) error {
	_, err := s.provider.Custom(ctx, resources.CustomRequest{
		URL:    "/notifications/push/broadcast",
		Method: http.MethodPost,
		Body:   broadcast,
	})
	return err
}
