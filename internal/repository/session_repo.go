package repository

import (
	"fmt"
	"time"

	"anonpairbot/internal/core"
	"anonpairbot/pkg/database"

	"github.com/google/uuid"
)

type SessionRepository struct {
	DB *database.DB
}

func NewSessionRepository(db *database.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

// Create inserts one session row pairing the two users. A session is a
// single row, so creation either links both participants or neither.
func (r *SessionRepository) Create(userA, userB int64) (*core.Session, error) {
	if userA == userB {
		return nil, fmt.Errorf("session cannot pair a user with itself")
	}

	session := &core.Session{
		ID:        uuid.NewString(),
		UserA:     userA,
		UserB:     userB,
		StartedAt: time.Now().UTC(),
	}

	var results []core.Session
	err := r.DB.Client.DB.From("sessions").Insert(session).Execute(&results)
	if err != nil {
		return nil, fmt.Errorf("error inserting session: %w", err)
	}
	return session, nil
}

// FindByUser returns the session referencing the user in either slot, or nil.
func (r *SessionRepository) FindByUser(telegramID int64) (*core.Session, error) {
	idStr := fmt.Sprintf("%d", telegramID)

	var sessions []core.Session
	err := r.DB.Client.DB.From("sessions").Select("*").Eq("user_a", idStr).Execute(&sessions)
	if err != nil {
		return nil, fmt.Errorf("error fetching session: %w", err)
	}
	if len(sessions) > 0 {
		return &sessions[0], nil
	}

	err = r.DB.Client.DB.From("sessions").Select("*").Eq("user_b", idStr).Execute(&sessions)
	if err != nil {
		return nil, fmt.Errorf("error fetching session: %w", err)
	}
	if len(sessions) > 0 {
		return &sessions[0], nil
	}
	return nil, nil
}

func (r *SessionRepository) Delete(sessionID string) error {
	var results []core.Session
	err := r.DB.Client.DB.From("sessions").Delete().Eq("id", sessionID).Execute(&results)
	if err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}
	return nil
}

// ActiveUserIDs returns the set of users currently referenced by a session.
func (r *SessionRepository) ActiveUserIDs() (map[int64]bool, error) {
	var sessions []core.Session
	err := r.DB.Client.DB.From("sessions").Select("*").Execute(&sessions)
	if err != nil {
		return nil, fmt.Errorf("error listing sessions: %w", err)
	}

	busy := make(map[int64]bool, len(sessions)*2)
	for _, s := range sessions {
		busy[s.UserA] = true
		busy[s.UserB] = true
	}
	return busy, nil
}

func (r *SessionRepository) CountActive() (int, error) {
	var sessions []core.Session
	err := r.DB.Client.DB.From("sessions").Select("*").Execute(&sessions)
	if err != nil {
		return 0, fmt.Errorf("error listing sessions: %w", err)
	}
	return len(sessions), nil
}
