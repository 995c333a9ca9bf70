package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/pavelromci25/nebula-server/internal/model"
)

var ErrDeveloperNotFound = errors.New("developer not found")

func (r *Repository) GetDeveloper(ctx context.Context, userID string) (*model.Developer, error) {
	var dev model.Developer
	err := r.db.GetContext(ctx, &dev, "SELECT * FROM developers WHERE user_id = $1", userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDeveloperNotFound
		}
		return nil, err
	}
	return &dev, nil
}

func (r *Repository) CreateDeveloper(ctx context.Context, dev *model.Developer) error {
	query := `
		INSERT INTO developers (user_id, registration_date, referral_code)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO NOTHING`

	_, err := r.db.ExecContext(ctx, query, dev.UserID, dev.RegistrationDate, dev.ReferralCode)
	return err
}

func (r *Repository) GetDeveloperBalance(ctx context.Context, userID string) (int64, error) {
	var balance int64
	err := r.db.GetContext(ctx, &balance,
		"SELECT telegram_stars_balance FROM developers WHERE user_id = $1", userID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrDeveloperNotFound
	}
	return balance, err
}
