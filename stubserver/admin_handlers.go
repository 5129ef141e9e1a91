package stubserver

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

// DashboardHandler computes the aggregate stats snapshot from the live
// collections.
func (s *Server) DashboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]int{
			"totalUsers":     s.store.count("user", nil),
			"activeUsers":    s.store.count("user", map[string]string{"isActive": "true"}),
			"bannedUsers":    s.store.count("user", map[string]string{"isBanned": "true"}),
			"totalMatches":   s.store.count("matching", nil),
			"todayMatches":   s.store.count("matching", map[string]string{"date": time.Now().UTC().Format("2006-01-02")}),
			"totalPhotos":    s.store.count("photos", nil),
			"totalReports":   s.store.count("reports", nil),
			"pendingReports": s.store.count("reports", map[string]string{"status": "pending"}),
			"activeConcepts": s.store.count("concepts", map[string]string{"isActive": "true"}),
		})
	}
}

// BanHandler marks a user banned with a reason and optional end date.
func (s *Server) BanHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body := struct {
			Reason      string `json:"reason"`
			BannedUntil string `json:"bannedUntil"`
		}{}
		if err := decodeBody(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		fields := Record{
			"isBanned":  true,
			"banReason": body.Reason,
			"bannedBy":  requestUserID(r),
		}
		if body.BannedUntil != "" {
			fields["bannedUntil"] = body.BannedUntil
		}

		record, ok := s.store.update("user", r.PathValue("id"), fields)
		if !ok {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		writeJSON(w, http.StatusOK, record)
	}
}

// UnbanHandler lifts a ban.
func (s *Server) UnbanHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		record, ok := s.store.update("user", r.PathValue("id"), Record{
			"isBanned":  false,
			"banReason": "",
		})
		if !ok {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		writeJSON(w, http.StatusOK, record)
	}
}

// UserRecordsHandler serves every record of a collection referencing the
// user through any of the given fields, as a bare array.
func (s *Server) UserRecordsHandler(resource string, userFields ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.PathValue("id")
		matched := make([]Record, 0)
		for _, record := range s.store.all(resource) {
			for _, field := range userFields {
				if stringValue(record[field]) == userID {
					matched = append(matched, record)
					break
				}
			}
		}
		writeJSON(w, http.StatusOK, matched)
	}
}

// ConceptStatsHandler summarizes photo completion for one concept.
func (s *Server) ConceptStatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conceptID := r.PathValue("id")
		if _, ok := s.store.get("concepts", conceptID); !ok {
			writeError(w, http.StatusNotFound, "Concept not found")
			return
		}

		total := 0
		completed := 0
		for _, record := range s.store.all("photos") {
			conceptPhoto, _ := record["conceptPhoto"].(map[string]any)
			if conceptPhoto == nil || stringValue(conceptPhoto["conceptId"]) != conceptID {
				continue
			}
			total++
			if done, _ := record["isComplete"].(bool); done {
				completed++
			}
		}

		rate := 0.0
		if total > 0 {
			rate = float64(completed) / float64(total)
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"totalPhotos":     total,
			"completedPhotos": completed,
			"completionRate":  rate,
		})
	}
}

// SendNotificationHandler records an in-app notification.
func (s *Server) SendNotificationHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body := struct {
			Title       string `json:"title"`
			Message     string `json:"message"`
			Type        string `json:"type"`
			RecipientID string `json:"recipientId"`
		}{}
		if err := decodeBody(r, &body); err != nil || body.Title == "" || body.Message == "" {
			writeError(w, http.StatusBadRequest, "Title and message are required")
			return
		}

		created := s.store.insert("notifications", Record{
			"_id":         uuid.New().String(),
			"title":       body.Title,
			"message":     body.Message,
			"type":        body.Type,
			"recipientId": body.RecipientID,
			"senderId":    requestUserID(r),
			"isRead":      false,
		})
		writeJSON(w, http.StatusCreated, created)
	}
}

// BroadcastHandler acknowledges a push broadcast. Delivery is out of scope
// for the stub.
func (s *Server) BroadcastHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body := struct {
			Title   string         `json:"title"`
			Message string         `json:"message"`
			Data    map[string]any `json:"data"`
		}{}
		if err := decodeBody(r, &body); err != nil || body.Title == "" || body.Message == "" {
			writeError(w, http.StatusBadRequest, "Title and message are required")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	}
}
