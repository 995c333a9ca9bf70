package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pavelromci25/nebula-server/internal/model"
)

var ErrInsufficientStars = errors.New("Недостаточно Telegram Stars")

// DonateStars moves stars from a user inventory to an app and its developer
// in a single transaction: the debit, both credits and the ledger row either
// all land or none do.
func (r *Repository) DonateStars(ctx context.Context, userID, appID string, stars int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var balance int64
	err = tx.GetContext(ctx, &balance,
		"SELECT telegram_stars FROM inventories WHERE user_id = $1 FOR UPDATE", userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrInventoryNotFound
		}
		return fmt.Errorf("failed to get inventory balance: %w", err)
	}

	if balance < stars {
		return ErrInsufficientStars
	}

	_, err = tx.ExecContext(ctx,
		"UPDATE inventories SET telegram_stars = telegram_stars - $2, updated_at = NOW() WHERE user_id = $1",
		userID, stars)
	if err != nil {
		return fmt.Errorf("failed to debit inventory: %w", err)
	}

	var developerID string
	err = tx.GetContext(ctx, &developerID, `
		UPDATE apps SET telegram_stars_donations = telegram_stars_donations + $2, updated_at = NOW()
		WHERE id = $1
		RETURNING developer_id`, appID, stars)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrAppNotFound
		}
		return fmt.Errorf("failed to credit app: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		"UPDATE developers SET telegram_stars_balance = telegram_stars_balance + $2, updated_at = NOW() WHERE user_id = $1",
		developerID, stars)
	if err != nil {
		return fmt.Errorf("failed to credit developer: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO star_transactions (app_id, user_id, amount, kind)
		VALUES ($1, $2, $3, $4)`,
		appID, userID, stars, model.TransactionDonation)
	if err != nil {
		return fmt.Errorf("failed to create transaction record: %w", err)
	}

	return tx.Commit()
}

// CreditExternalDonation credits a donation paid through a Telegram Stars
// invoice. No inventory debit: the stars arrived from Telegram itself.
func (r *Repository) CreditExternalDonation(ctx context.Context, appID string, userID *string, stars int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var developerID string
	err = tx.GetContext(ctx, &developerID, `
		UPDATE apps SET telegram_stars_donations = telegram_stars_donations + $2, updated_at = NOW()
		WHERE id = $1
		RETURNING developer_id`, appID, stars)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrAppNotFound
		}
		return fmt.Errorf("failed to credit app: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		"UPDATE developers SET telegram_stars_balance = telegram_stars_balance + $2, updated_at = NOW() WHERE user_id = $1",
		developerID, stars)
	if err != nil {
		return fmt.Errorf("failed to credit developer: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO star_transactions (app_id, user_id, amount, kind)
		VALUES ($1, $2, $3, $4)`,
		appID, userID, stars, model.TransactionPayment)
	if err != nil {
		return fmt.Errorf("failed to create transaction record: %w", err)
	}

	return tx.Commit()
}

// ListAppTransactions returns the Stars ledger for one app, newest first.
func (r *Repository) ListAppTransactions(ctx context.Context, appID string) ([]model.StarTransaction, error) {
	var txs []model.StarTransaction
	err := r.db.SelectContext(ctx, &txs,
		"SELECT * FROM star_transactions WHERE app_id = $1 ORDER BY created_at DESC", appID)
	return txs, err
}

// ChargePromotion debits the chosen balance and activates one boost axis in
// a single transaction, so a crash cannot leave stars spent without the
// promotion applied.
func (r *Repository) ChargePromotion(ctx context.Context, developerID, appID string, source model.PromotionSource, kind model.PromotionKind, cost int64, endsAt time.Time) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var balance int64
	switch source {
	case model.SourceDeveloper:
		err = tx.GetContext(ctx, &balance,
			"SELECT telegram_stars_balance FROM developers WHERE user_id = $1 FOR UPDATE", developerID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrDeveloperNotFound
		}
	case model.SourceApp:
		err = tx.GetContext(ctx, &balance,
			"SELECT telegram_stars_donations FROM apps WHERE id = $1 FOR UPDATE", appID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrAppNotFound
		}
	default:
		return fmt.Errorf("unknown promotion source: %s", source)
	}
	if err != nil {
		return fmt.Errorf("failed to get balance: %w", err)
	}

	if balance < cost {
		return ErrInsufficientStars
	}

	switch source {
	case model.SourceDeveloper:
		_, err = tx.ExecContext(ctx,
			"UPDATE developers SET telegram_stars_balance = telegram_stars_balance - $2, updated_at = NOW() WHERE user_id = $1",
			developerID, cost)
	case model.SourceApp:
		_, err = tx.ExecContext(ctx,
			"UPDATE apps SET telegram_stars_donations = telegram_stars_donations - $2, updated_at = NOW() WHERE id = $1",
			appID, cost)
	}
	if err != nil {
		return fmt.Errorf("failed to debit balance: %w", err)
	}

	switch kind {
	case model.PromotionCatalog:
		_, err = tx.ExecContext(ctx, `
			UPDATE apps SET promoted_in_catalog = true, catalog_promo_ends_at = $2, updated_at = NOW()
			WHERE id = $1`, appID, endsAt)
	case model.PromotionCategory:
		_, err = tx.ExecContext(ctx, `
			UPDATE apps SET promoted_in_category = true, category_promo_ends_at = $2, updated_at = NOW()
			WHERE id = $1`, appID, endsAt)
	default:
		return fmt.Errorf("unknown promotion kind: %s", kind)
	}
	if err != nil {
		return fmt.Errorf("failed to activate promotion: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO star_transactions (app_id, user_id, amount, kind)
		VALUES ($1, $2, $3, $4)`,
		appID, developerID, -cost, model.TransactionPromotion)
	if err != nil {
		return fmt.Errorf("failed to create transaction record: %w", err)
	}

	return tx.Commit()
}
