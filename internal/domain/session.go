package domain

import "time"

// Session is a bearer token issued at registration. The token itself is
// the credential; there is no password flow.
type Session struct {
	Token     string    `json:"token"`
	PlayerID  string    `json:"player_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// SessionTTL is how long an issued session token stays valid.
const SessionTTL = 30 * 24 * time.Hour
