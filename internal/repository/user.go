package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/pavelromci25/nebula-server/internal/model"
)

var ErrUserNotFound = errors.New("user not found")

func (r *Repository) GetUser(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.db.GetContext(ctx, &user, "SELECT * FROM users WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpsertLogin creates the user on first login; afterwards it bumps the login
// counter, refreshes last_login, merges the seen-platform set and flips the
// user online.
func (r *Repository) UpsertLogin(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (id, username, photo_url, referrals, first_login, last_login, platforms, online_status, login_count)
		VALUES ($1, $2, $3, $4, NOW(), NOW(), $5, 'online', 1)
		ON CONFLICT (id) DO UPDATE SET
			username = EXCLUDED.username,
			photo_url = EXCLUDED.photo_url,
			last_login = NOW(),
			login_count = users.login_count + 1,
			platforms = ARRAY(SELECT DISTINCT unnest(users.platforms || EXCLUDED.platforms)),
			online_status = 'online',
			updated_at = NOW()
		RETURNING first_login, last_login, platforms, online_status, login_count, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		user.ID, user.Username, user.PhotoURL, user.Referrals, user.Platforms,
	).Scan(&user.FirstLogin, &user.LastLogin, &user.Platforms, &user.OnlineStatus, &user.LoginCount, &user.UpdatedAt)
}

// MarkStaleUsersOffline flips every online user whose last login is older
// than the cutoff; returns how many rows changed.
func (r *Repository) MarkStaleUsersOffline(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users SET online_status = 'offline', updated_at = NOW()
		WHERE online_status = 'online' AND last_login < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
