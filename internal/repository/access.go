package repository

import (
	"context"

	"github.com/pavelromci25/nebula-server/internal/model"
)

// IsAllowedDeveloper checks allow-list membership for the developer console.
func (r *Repository) IsAllowedDeveloper(ctx context.Context, telegramID string) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM allowed_developers WHERE telegram_id = $1", telegramID)
	return count > 0, err
}

// IsAdmin checks allow-list membership for the admin console.
func (r *Repository) IsAdmin(ctx context.Context, telegramID string) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM admins WHERE telegram_id = $1", telegramID)
	return count > 0, err
}

func (r *Repository) AddAllowedDeveloper(ctx context.Context, telegramID string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO allowed_developers (telegram_id)
		VALUES ($1)
		ON CONFLICT (telegram_id) DO NOTHING`, telegramID)
	return err
}

func (r *Repository) ListAllowedDevelopers(ctx context.Context) ([]model.AllowedDeveloper, error) {
	var devs []model.AllowedDeveloper
	err := r.db.SelectContext(ctx, &devs,
		"SELECT * FROM allowed_developers ORDER BY added_at DESC")
	return devs, err
}

func (r *Repository) ListAdmins(ctx context.Context) ([]model.Admin, error) {
	var admins []model.Admin
	err := r.db.SelectContext(ctx, &admins,
		"SELECT * FROM admins ORDER BY added_at DESC")
	return admins, err
}
