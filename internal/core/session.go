package core

import "time"

// Session pairs exactly two users for the duration of a chat. A user appears
// in at most one session at any time.
type Session struct {
	ID        string    `json:"id"`
	UserA     int64     `json:"user_a"`
	UserB     int64     `json:"user_b"`
	StartedAt time.Time `json:"started_at"`
}

// Has reports whether the given user participates in the session.
func (s *Session) Has(telegramID int64) bool {
	return s.UserA == telegramID || s.UserB == telegramID
}

// OtherOf returns the counterpart of the given participant.
func (s *Session) OtherOf(telegramID int64) int64 {
	if s.UserA == telegramID {
		return s.UserB
	}
	return s.UserA
}
