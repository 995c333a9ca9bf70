package model

import "time"

// AllowedDeveloper is an allow-list entry granting developer console access.
type AllowedDeveloper struct {
	TelegramID string    `json:"telegramId" db:"telegram_id"`
	AddedAt    time.Time `json:"addedAt" db:"added_at"`
}

// Admin is an allow-list entry granting admin console access.
type Admin struct {
	TelegramID string    `json:"telegramId" db:"telegram_id"`
	AddedAt    time.Time `json:"addedAt" db:"added_at"`
}
