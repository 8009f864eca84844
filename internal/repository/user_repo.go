package repository

import (
	"fmt"

	"anonpairbot/internal/core"
	"anonpairbot/pkg/database"
)

type UserRepository struct {
	DB *database.DB
}

func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) GetByTelegramID(telegramID int64) (*core.User, error) {
	var users []core.User
	idStr := fmt.Sprintf("%d", telegramID)
	err := r.DB.Client.DB.From("users").Select("*").Eq("telegram_id", idStr).Execute(&users)
	if err != nil {
		return nil, fmt.Errorf("error fetching user: %w", err)
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

func (r *UserRepository) Create(user *core.User) error {
	var results []core.User
	err := r.DB.Client.DB.From("users").Insert(user).Execute(&results)
	if err != nil {
		return fmt.Errorf("error inserting user: %w", err)
	}
	return nil
}

func (r *UserRepository) Update(user *core.User) error {
	var results []core.User
	idStr := fmt.Sprintf("%d", user.TelegramID)
	err := r.DB.Client.DB.From("users").Update(user).Eq("telegram_id", idStr).Execute(&results)
	if err != nil {
		return fmt.Errorf("error updating user: %w", err)
	}
	return nil
}

// ListEligible returns every non-banned, profile-complete user except the
// requester. Session membership is filtered by the caller, which owns the
// current set of busy users.
func (r *UserRepository) ListEligible(excluding int64) ([]core.User, error) {
	var users []core.User
	err := r.DB.Client.DB.From("users").
		Select("*").
		Eq("is_banned", "false").
		Execute(&users)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	eligible := users[:0]
	for _, u := range users {
		if u.TelegramID == excluding || !u.ProfileComplete() {
			continue
		}
		eligible = append(eligible, u)
	}
	return eligible, nil
}

// Stats counts users for the admin /stats command.
func (r *UserRepository) Stats() (total, vips, banned int, err error) {
	var users []core.User
	if err = r.DB.Client.DB.From("users").Select("*").Execute(&users); err != nil {
		return 0, 0, 0, fmt.Errorf("error listing users: %w", err)
	}
	for _, u := range users {
		total++
		if u.IsVIP {
			vips++
		}
		if u.IsBanned {
			banned++
		}
	}
	return total, vips, banned, nil
}
