package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/pavelromci25/nebula-server/internal/model"
)

var ErrInventoryNotFound = errors.New("inventory not found")

func (r *Repository) GetInventory(ctx context.Context, userID string) (*model.Inventory, error) {
	var inv model.Inventory
	err := r.db.GetContext(ctx, &inv, "SELECT * FROM inventories WHERE user_id = $1", userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInventoryNotFound
		}
		return nil, err
	}
	return &inv, nil
}

func (r *Repository) CreateInventory(ctx context.Context, inv *model.Inventory) error {
	query := `
		INSERT INTO inventories (user_id, coins, stars, telegram_stars, last_coin_update)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING last_coin_update, updated_at`

	return r.db.QueryRowContext(ctx, query,
		inv.UserID, inv.Coins, inv.Stars, inv.TelegramStars,
	).Scan(&inv.LastCoinUpdate, &inv.UpdatedAt)
}

func (r *Repository) PatchInventory(ctx context.Context, userID string, patch model.InventoryPatch) (*model.Inventory, error) {
	query := `
		UPDATE inventories SET
			coins = COALESCE($2, coins),
			stars = COALESCE($3, stars),
			telegram_stars = COALESCE($4, telegram_stars),
			last_coin_update = CASE WHEN $2 IS NOT NULL THEN NOW() ELSE last_coin_update END,
			updated_at = NOW()
		WHERE user_id = $1
		RETURNING *`

	var inv model.Inventory
	err := r.db.GetContext(ctx, &inv, query, userID, patch.Coins, patch.Stars, patch.TelegramStars)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInventoryNotFound
		}
		return nil, err
	}
	return &inv, nil
}
