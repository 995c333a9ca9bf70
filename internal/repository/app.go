package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/pavelromci25/nebula-server/internal/model"
)

var ErrAppNotFound = errors.New("app not found")

func (r *Repository) GetApp(ctx context.Context, id string) (*model.App, error) {
	var app model.App
	err := r.db.GetContext(ctx, &app, "SELECT * FROM apps WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAppNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *Repository) ListApps(ctx context.Context) ([]model.App, error) {
	var apps []model.App
	err := r.db.SelectContext(ctx, &apps, "SELECT * FROM apps ORDER BY date_added DESC")
	return apps, err
}

func (r *Repository) ListAppsByStatus(ctx context.Context, status model.AppStatus) ([]model.App, error) {
	var apps []model.App
	err := r.db.SelectContext(ctx, &apps, "SELECT * FROM apps WHERE status = $1 ORDER BY date_added DESC", status)
	return apps, err
}

func (r *Repository) ListAppsByDeveloper(ctx context.Context, developerID string) ([]model.App, error) {
	var apps []model.App
	err := r.db.SelectContext(ctx, &apps, "SELECT * FROM apps WHERE developer_id = $1 ORDER BY date_added DESC", developerID)
	return apps, err
}

// AppNameTaken reports whether the developer already has an app of this name.
func (r *Repository) AppNameTaken(ctx context.Context, developerID, name string) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM apps WHERE developer_id = $1 AND name = $2", developerID, name)
	return count > 0, err
}

func (r *Repository) CreateApp(ctx context.Context, app *model.App) error {
	query := `
		INSERT INTO apps (
			id, type, name, short_description, long_description,
			category, additional_categories, icon, banner, gallery, video,
			developer_id, platforms, age_rating, in_app_purchases,
			supports_ton, supports_telegram_stars, contact_info, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
			$12, $13, $14, $15, $16, $17, $18, $19
		)
		RETURNING date_added, updated_at`

	return r.db.QueryRowContext(ctx, query,
		app.ID, app.Type, app.Name, app.ShortDescription, app.LongDescription,
		app.Category, app.AdditionalCategories, app.Icon, app.Banner, app.Gallery, app.Video,
		app.DeveloperID, app.Platforms, app.AgeRating, app.InAppPurchases,
		app.SupportsTON, app.SupportsStars, app.ContactInfo, app.Status,
	).Scan(&app.DateAdded, &app.UpdatedAt)
}

// AppUpdate is a partial update of the editable display fields; nil fields
// keep their stored value.
type AppUpdate struct {
	Name                 *string         `json:"name"`
	ShortDescription     *string         `json:"shortDescription"`
	LongDescription      *string         `json:"longDescription"`
	Category             *string         `json:"category"`
	AdditionalCategories *pq.StringArray `json:"additionalCategories"`
	Icon                 *string         `json:"icon"`
	Banner               *string         `json:"banner"`
	Gallery              *pq.StringArray `json:"gallery"`
	Video                *string         `json:"video"`
	Platforms            *pq.StringArray `json:"platforms"`
	AgeRating            *string         `json:"ageRating"`
	InAppPurchases       *bool           `json:"inAppPurchases"`
	SupportsTON          *bool           `json:"supportsTON"`
	SupportsStars        *bool           `json:"supportsTelegramStars"`
	ContactInfo          *string         `json:"contactInfo"`
}

func (r *Repository) UpdateApp(ctx context.Context, id string, upd AppUpdate) (*model.App, error) {
	query := `
		UPDATE apps SET
			name = COALESCE($2, name),
			short_description = COALESCE($3, short_description),
			long_description = COALESCE($4, long_description),
			category = COALESCE($5, category),
			additional_categories = COALESCE($6, additional_categories),
			icon = COALESCE($7, icon),
			banner = COALESCE($8, banner),
			gallery = COALESCE($9, gallery),
			video = COALESCE($10, video),
			platforms = COALESCE($11, platforms),
			age_rating = COALESCE($12, age_rating),
			in_app_purchases = COALESCE($13, in_app_purchases),
			supports_ton = COALESCE($14, supports_ton),
			supports_telegram_stars = COALESCE($15, supports_telegram_stars),
			contact_info = COALESCE($16, contact_info),
			updated_at = NOW()
		WHERE id = $1
		RETURNING *`

	var app model.App
	err := r.db.GetContext(ctx, &app, query, id,
		upd.Name, upd.ShortDescription, upd.LongDescription,
		upd.Category, upd.AdditionalCategories, upd.Icon, upd.Banner,
		upd.Gallery, upd.Video, upd.Platforms, upd.AgeRating,
		upd.InAppPurchases, upd.SupportsTON, upd.SupportsStars, upd.ContactInfo)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAppNotFound
		}
		return nil, err
	}
	return &app, nil
}

// SaveVote persists the recomputed running mean together with the counter.
func (r *Repository) SaveVote(ctx context.Context, id string, votes int64, rating float64) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE apps SET votes = $2, user_rating = $3, updated_at = NOW() WHERE id = $1",
		id, votes, rating)
	return err
}

// SaveComplaints persists the complaint counter and status in one write so a
// threshold-triggered re-moderation cannot be torn from the count.
func (r *Repository) SaveComplaints(ctx context.Context, id string, complaints int64, status model.AppStatus) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE apps SET complaints = $2, status = $3, updated_at = NOW() WHERE id = $1",
		id, complaints, status)
	return err
}

func (r *Repository) IncrementClicks(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE apps SET clicks = clicks + 1, updated_at = NOW() WHERE id = $1", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrAppNotFound
	}
	return nil
}

func (r *Repository) SetAppStatus(ctx context.Context, id string, status model.AppStatus, rejectionReason *string) (*model.App, error) {
	var app model.App
	err := r.db.GetContext(ctx, &app, `
		UPDATE apps SET status = $2, rejection_reason = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING *`, id, status, rejectionReason)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAppNotFound
		}
		return nil, err
	}
	return &app, nil
}

// SavePromotionState persists the promotion flags and end dates, used by the
// lazy expiry pass on catalog reads.
func (r *Repository) SavePromotionState(ctx context.Context, app *model.App) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE apps SET
			promoted_in_catalog = $2,
			catalog_promo_ends_at = $3,
			promoted_in_category = $4,
			category_promo_ends_at = $5,
			updated_at = NOW()
		WHERE id = $1`,
		app.ID, app.PromotedInCatalog, app.CatalogPromoEnds,
		app.PromotedInCategory, app.CategoryPromoEnds)
	return err
}

// CatalogTotals is the admin dashboard aggregate.
type CatalogTotals struct {
	TotalApps       int64 `json:"totalApps" db:"total_apps"`
	TotalClicks     int64 `json:"totalClicks" db:"total_clicks"`
	TotalStars      int64 `json:"totalStars" db:"total_stars"`
	TotalComplaints int64 `json:"totalComplaints" db:"total_complaints"`
}

func (r *Repository) GetCatalogTotals(ctx context.Context) (*CatalogTotals, error) {
	var totals CatalogTotals
	err := r.db.GetContext(ctx, &totals, `
		SELECT
			COUNT(*) AS total_apps,
			COALESCE(SUM(clicks), 0) AS total_clicks,
			COALESCE(SUM(telegram_stars_donations), 0) AS total_stars,
			COALESCE(SUM(complaints), 0) AS total_complaints
		FROM apps`)
	return &totals, err
}
