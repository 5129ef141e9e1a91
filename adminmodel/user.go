package adminmodel

import "time"

// Role represents a user role on the platform.
type Role string

const (
	RoleSuperAdmin Role = "super_admin" // The only role allowed to hold an admin session
	RoleUser       Role = "user"
)

type User struct {
	ID                 string     `json:"_id,omitempty"`
	RandomName         string     `json:"randomName,omitempty"`
	Email              string     `json:"email,omitempty"`
	Role               Role       `json:"role,omitempty"`
	IsActive           bool       `json:"isActive"`
	TotalMatches       int        `json:"totalMatches,omitempty"`
	ActiveMatches      *int       `json:"activeMatches,omitempty"`
	TotalPhotos        *int       `json:"totalPhotos,omitempty"`
	CompletedPhotos    *int       `json:"completedPhotos,omitempty"`
	RecentMatchedUsers []string   `json:"recentMatchedUsers,omitempty"`
	Timezone           string     `json:"timezone,omitempty"`
	IsBanned           bool       `json:"isBanned"`
	BanReason          string     `json:"banReason,omitempty"`
	BannedUntil        *time.Time `json:"bannedUntil,omitempty"`
	BannedBy           string     `json:"bannedBy,omitempty"`
	CreatedAt          time.Time  `json:"createdAt,omitempty"`
	UpdatedAt          time.Time  `json:"updatedAt,omitempty"`
}

// IsSuperAdmin returns true if the user may hold an admin panel session.
func (u *User) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}
