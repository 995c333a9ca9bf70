package model

import "time"

type Developer struct {
	UserID           string    `json:"userId" db:"user_id"`
	RegistrationDate time.Time `json:"registrationDate" db:"registration_date"`
	ReferralCode     string    `json:"referralCode" db:"referral_code"`
	StarsBalance     int64     `json:"telegramStarsBalance" db:"telegram_stars_balance"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time `json:"updatedAt" db:"updated_at"`
}

// DeveloperWithApps is the developer console profile: the developer record
// plus the apps owned by it, derived by query rather than a stored list.
type DeveloperWithApps struct {
	Developer
	Apps []App `json:"apps"`
}
