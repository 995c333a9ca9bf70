package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pavelromci25/nebula-server/internal/config"
	"github.com/pavelromci25/nebula-server/internal/model"
)

type donationStore interface {
	GetApp(ctx context.Context, id string) (*model.App, error)
	DonateStars(ctx context.Context, userID, appID string, stars int64) error
	CreditExternalDonation(ctx context.Context, appID string, userID *string, stars int64) error
}

// InvoiceCreator builds a Telegram Stars invoice link; implemented by the bot.
type InvoiceCreator interface {
	CreateStarsInvoice(title, description, payload string, stars int64) (string, error)
}

// DonationPayload rides inside the invoice and comes back with the
// successful-payment event.
type DonationPayload struct {
	AppID  string `json:"app_id"`
	UserID string `json:"user_id"`
	Stars  int64  `json:"stars"`
}

type DonationService struct {
	store    donationStore
	invoices InvoiceCreator
}

func NewDonationService(store donationStore) *DonationService {
	return &DonationService{store: store}
}

// SetInvoiceCreator wires the bot in after construction (the bot itself
// depends on services).
func (s *DonationService) SetInvoiceCreator(ic InvoiceCreator) {
	s.invoices = ic
}

// Donate transfers stars from the user's inventory to the app and its
// developer. The cap and balance checks happen before any write.
func (s *DonationService) Donate(ctx context.Context, appID, userID string, stars int64) error {
	if stars <= 0 {
		return ErrInvalidStars
	}
	if stars > config.MaxDonationStars {
		return ErrDonationTooLarge
	}

	// Resolve the app first so a missing app reads as 404, not a failed transfer.
	if _, err := s.store.GetApp(ctx, appID); err != nil {
		return err
	}

	return s.store.DonateStars(ctx, userID, appID, stars)
}

// CreateInvoice builds a Stars invoice link for donating through Telegram's
// payment flow instead of the inventory balance.
func (s *DonationService) CreateInvoice(ctx context.Context, appID, userID string, stars int64) (string, error) {
	if stars <= 0 {
		return "", ErrInvalidStars
	}
	if stars > config.MaxDonationStars {
		return "", ErrDonationTooLarge
	}
	if s.invoices == nil {
		return "", fmt.Errorf("payment bot is not configured")
	}

	app, err := s.store.GetApp(ctx, appID)
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(DonationPayload{AppID: app.ID, UserID: userID, Stars: stars})
	if err != nil {
		return "", err
	}

	title := fmt.Sprintf("Донат для %s", app.Name)
	description := fmt.Sprintf("Поддержать приложение %s на %d Telegram Stars", app.Name, stars)
	return s.invoices.CreateStarsInvoice(title, description, string(payload), stars)
}

// CreditPayment applies a donation confirmed by a successful_payment event.
// Returns the credited app for the thank-you message.
func (s *DonationService) CreditPayment(ctx context.Context, payload DonationPayload) (*model.App, error) {
	app, err := s.store.GetApp(ctx, payload.AppID)
	if err != nil {
		return nil, err
	}

	var userID *string
	if payload.UserID != "" {
		userID = &payload.UserID
	}
	if err := s.store.CreditExternalDonation(ctx, app.ID, userID, payload.Stars); err != nil {
		return nil, err
	}
	return app, nil
}
