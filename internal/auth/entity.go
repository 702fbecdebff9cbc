// AngelaMos | 2026
// entity.go

package auth

import (
	"time"
)

// Session is one row in user_sessions. Only the sha256 of the opaque token
// is stored; the raw token exists solely in the login response.
type Session struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	TokenHash string    `db:"token_hash"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
	UserAgent string    `db:"user_agent"`
	IPAddress string    `db:"ip_address"`
}

func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
