package model

import (
	"time"

	"github.com/google/uuid"
)

type TransactionKind string

const (
	// TransactionDonation is a Stars transfer from a user inventory to an app.
	TransactionDonation TransactionKind = "donation"
	// TransactionPayment is a donation paid through a Telegram Stars invoice.
	TransactionPayment TransactionKind = "payment"
	// TransactionPromotion is a promotion charge against a developer or app balance.
	TransactionPromotion TransactionKind = "promotion"
)

// StarTransaction is one row of the Stars movement ledger.
type StarTransaction struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	AppID     string          `json:"appId" db:"app_id"`
	UserID    *string         `json:"userId,omitempty" db:"user_id"`
	Amount    int64           `json:"amount" db:"amount"`
	Kind      TransactionKind `json:"kind" db:"kind"`
	CreatedAt time.Time       `json:"createdAt" db:"created_at"`
}
