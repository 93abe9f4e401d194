package domain

import "time"

// Session records one completed sign-in. Rows are append-only: the single
// mutation ever applied is setting LogoutAt at sign-out. Old sessions are
// kept for audit and never resurrected.
type Session struct {
	ID          int64
	UUID        string
	UserID      int64
	AccessToken string
	LoginAt     time.Time
	ExpiresAt   time.Time
	LogoutAt    *time.Time
}

// Active reports whether the session still authenticates its owner at the
// given instant: not signed out and not past its expiry.
func (s *Session) Active(now time.Time) bool {
	return s.LogoutAt == nil && now.Before(s.ExpiresAt)
}
