package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/lib/pq"
)

type OnlineStatus string

const (
	StatusOnline  OnlineStatus = "online"
	StatusOffline OnlineStatus = "offline"
)

type User struct {
	ID           string         `json:"id" db:"id"`
	Username     string         `json:"username" db:"username"`
	PhotoURL     string         `json:"photoUrl" db:"photo_url"`
	Referrals    ReferralList   `json:"referrals" db:"referrals"`
	FirstLogin   time.Time      `json:"firstLogin" db:"first_login"`
	LastLogin    time.Time      `json:"lastLogin" db:"last_login"`
	Platforms    pq.StringArray `json:"platforms" db:"platforms"`
	OnlineStatus OnlineStatus   `json:"onlineStatus" db:"online_status"`
	LoginCount   int64          `json:"loginCount" db:"login_count"`
	UpdatedAt    time.Time      `json:"updatedAt" db:"updated_at"`
}

type Referral struct {
	TelegramID string `json:"telegramId"`
	Username   string `json:"username"`
}

// ReferralList is stored as a jsonb column.
type ReferralList []Referral

func (l ReferralList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l)
}

func (l *ReferralList) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported type for ReferralList")
	}
}
