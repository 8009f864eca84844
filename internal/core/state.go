package core

// State is the onboarding/session cursor attached to one user. It is
// process-local and can always be rebuilt from the stored user and session
// records.
type State string

const (
	StateLanguage        State = "language"
	StateGender          State = "gender"
	StateContinent       State = "continent"
	StateAge             State = "age"
	StateProfileComplete State = "profile_complete"
	StateInSession       State = "in_session"
)

// Onboarding reports whether the state still collects a profile field.
func (s State) Onboarding() bool {
	switch s {
	case StateLanguage, StateGender, StateContinent, StateAge:
		return true
	}
	return false
}
