package model

import "time"

type Inventory struct {
	UserID         string    `json:"userId" db:"user_id"`
	Coins          int64     `json:"coins" db:"coins"`
	Stars          int64     `json:"stars" db:"stars"`
	TelegramStars  int64     `json:"telegramStars" db:"telegram_stars"`
	LastCoinUpdate time.Time `json:"lastCoinUpdate" db:"last_coin_update"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

// InventoryPatch is a partial balance update; nil fields are left untouched.
type InventoryPatch struct {
	Coins         *int64 `json:"coins,omitempty"`
	Stars         *int64 `json:"stars,omitempty"`
	TelegramStars *int64 `json:"telegramStars,omitempty"`
}
