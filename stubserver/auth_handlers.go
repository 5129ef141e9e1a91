package stubserver

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"
)

func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// LoginHandler authenticates an email/password pair and issues a token pair
// plus the user object, mirroring the real backend's login contract.
func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body := struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}{}
		if err := decodeBody(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if body.Email == "" || body.Password == "" {
			writeError(w, http.StatusBadRequest, "Email and password are required")
			return
		}

		user, ok := s.userByEmail(body.Email)
		if !ok || !checkPassword(s.passwords[body.Email], body.Password) {
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		role, _ := user["role"].(string)
		accessToken, err := s.tokens.issueAccessToken(user.ID(), body.Email, role)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to issue token")
			return
		}
		refreshToken, err := s.tokens.issueRefreshToken(user.ID())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to issue token")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"accessToken":  accessToken,
			"refreshToken": refreshToken,
			"user":         user,
		})
	}
}

// RefreshHandler exchanges a refresh token for a new, rotated token pair.
func (s *Server) RefreshHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body := struct {
			RefreshToken string `json:"refreshToken"`
		}{}
		if err := decodeBody(r, &body); err != nil || body.RefreshToken == "" {
			writeError(w, http.StatusBadRequest, "Refresh token is required")
			return
		}

		userID, err := s.tokens.redeemRefreshToken(body.RefreshToken)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Invalid refresh token")
			return
		}

		user, ok := s.store.get("user", userID)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unknown user")
			return
		}

		email, _ := user["email"].(string)
		role, _ := user["role"].(string)
		accessToken, err := s.tokens.issueAccessToken(userID, email, role)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to issue token")
			return
		}
		refreshToken, err := s.tokens.issueRefreshToken(userID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to issue token")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"accessToken":  accessToken,
			"refreshToken": refreshToken,
		})
	}
}

// MeHandler returns the authenticated user's record.
func (s *Server) MeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := s.store.get("user", requestUserID(r))
		if !ok {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}

func (s *Server) userByEmail(email string) (Record, bool) {
	for _, record := range s.store.all("user") {
		if value, _ := record["email"].(string); value == email {
			return record, true
		}
	}
	return nil, false
}
