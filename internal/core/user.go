package core

import "time"

type User struct {
	ID           int64      `json:"id,omitempty"`
	TelegramID   int64      `json:"telegram_id"`
	Username     string     `json:"username"`
	FirstName    string     `json:"first_name"`
	Language     string     `json:"language"`
	Gender       string     `json:"gender"`
	Continent    string     `json:"continent"`
	Age          int        `json:"age"`
	IsVIP        bool       `json:"is_vip"`
	VipExpiresAt *time.Time `json:"vip_expires_at"`
	IsBanned     bool       `json:"is_banned"`
	CreatedAt    time.Time  `json:"created_at,omitempty"`
}

// ProfileComplete reports whether every onboarding field has been set.
func (u *User) ProfileComplete() bool {
	return u.Language != "" && u.Gender != "" && u.Continent != "" && u.Age > 0
}

// OnboardingStep returns the first onboarding state whose field is still
// unset, in the fixed language -> gender -> continent -> age order.
func (u *User) OnboardingStep() State {
	switch {
	case u.Language == "":
		return StateLanguage
	case u.Gender == "":
		return StateGender
	case u.Continent == "":
		return StateContinent
	case u.Age <= 0:
		return StateAge
	default:
		return StateProfileComplete
	}
}
