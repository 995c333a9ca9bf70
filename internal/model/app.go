package model

import (
	"time"

	"github.com/lib/pq"
)

type AppType string

const (
	AppTypeGame AppType = "game"
	AppTypeApp  AppType = "app"
)

type AppStatus string

const (
	StatusOnModeration AppStatus = "onModeration"
	StatusAdded        AppStatus = "added"
	StatusRejected     AppStatus = "rejected"
)

// ComplaintModerationThreshold is the complaint count at which an app is
// forced back to moderation regardless of its current status.
const ComplaintModerationThreshold = 10

type App struct {
	ID                   string         `json:"id" db:"id"`
	Type                 AppType        `json:"type" db:"type"`
	Name                 string         `json:"name" db:"name"`
	ShortDescription     string         `json:"shortDescription" db:"short_description"`
	LongDescription      *string        `json:"longDescription,omitempty" db:"long_description"`
	Category             string         `json:"category" db:"category"`
	AdditionalCategories pq.StringArray `json:"additionalCategories" db:"additional_categories"`
	Icon                 string         `json:"icon" db:"icon"`
	Banner               *string        `json:"banner,omitempty" db:"banner"`
	Gallery              pq.StringArray `json:"gallery" db:"gallery"`
	Video                *string        `json:"video,omitempty" db:"video"`
	DeveloperID          string         `json:"developerId" db:"developer_id"`
	Platforms            pq.StringArray `json:"platforms" db:"platforms"`
	AgeRating            string         `json:"ageRating" db:"age_rating"`
	InAppPurchases       bool           `json:"inAppPurchases" db:"in_app_purchases"`
	SupportsTON          bool           `json:"supportsTON" db:"supports_ton"`
	SupportsStars        bool           `json:"supportsTelegramStars" db:"supports_telegram_stars"`
	ContactInfo          string         `json:"contactInfo" db:"contact_info"`
	Status               AppStatus      `json:"status" db:"status"`
	RejectionReason      *string        `json:"rejectionReason,omitempty" db:"rejection_reason"`

	Clicks         int64   `json:"clicks" db:"clicks"`
	Votes          int64   `json:"votes" db:"votes"`
	UserRating     float64 `json:"userRating" db:"user_rating"`
	CatalogRating  float64 `json:"catalogRating" db:"catalog_rating"`
	StarsDonations int64   `json:"telegramStarsDonations" db:"telegram_stars_donations"`
	Complaints     int64   `json:"complaints" db:"complaints"`

	PromotedInCatalog  bool       `json:"isPromotedInCatalog" db:"promoted_in_catalog"`
	PromotedInCategory bool       `json:"isPromotedInCategory" db:"promoted_in_category"`
	CatalogPromoEnds   *time.Time `json:"catalogPromotionEndsAt,omitempty" db:"catalog_promo_ends_at"`
	CategoryPromoEnds  *time.Time `json:"categoryPromotionEndsAt,omitempty" db:"category_promo_ends_at"`

	DateAdded time.Time `json:"dateAdded" db:"date_added"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Categories returns the primary category followed by the additional ones,
// the combined field the catalog frontend renders.
func (a *App) Categories() []string {
	cats := make([]string, 0, 1+len(a.AdditionalCategories))
	cats = append(cats, a.Category)
	cats = append(cats, a.AdditionalCategories...)
	return cats
}

// ApplyVote increments the vote counter and folds the new rating into the
// running mean. The counter must move first: the mean divides by it.
func (a *App) ApplyVote(rating float64) {
	a.Votes++
	a.UserRating = (a.UserRating*float64(a.Votes-1) + rating) / float64(a.Votes)
}

// RegisterComplaint increments the complaint counter and forces the app back
// to moderation once the threshold is reached. Returns true if the status
// changed.
func (a *App) RegisterComplaint() bool {
	a.Complaints++
	if a.Complaints >= ComplaintModerationThreshold && a.Status != StatusOnModeration {
		a.Status = StatusOnModeration
		return true
	}
	return false
}

// PromotionKind is one of the two independent boost axes.
type PromotionKind string

const (
	PromotionCatalog  PromotionKind = "catalog"
	PromotionCategory PromotionKind = "category"
)

// PromotionSource selects which balance pays for a promotion.
type PromotionSource string

const (
	SourceDeveloper PromotionSource = "developer"
	SourceApp       PromotionSource = "app"
)

// ActivatePromotion turns on one boost axis until endsAt.
func (a *App) ActivatePromotion(kind PromotionKind, endsAt time.Time) {
	switch kind {
	case PromotionCatalog:
		a.PromotedInCatalog = true
		a.CatalogPromoEnds = &endsAt
	case PromotionCategory:
		a.PromotedInCategory = true
		a.CategoryPromoEnds = &endsAt
	}
}

// ExpirePromotions clears any boost whose end date has passed. Expiry is
// pull-based: this runs on catalog reads, so storage may hold a stale active
// flag until the next read. Returns true if anything was cleared.
func (a *App) ExpirePromotions(now time.Time) bool {
	changed := false
	if a.PromotedInCatalog && a.CatalogPromoEnds != nil && now.After(*a.CatalogPromoEnds) {
		a.PromotedInCatalog = false
		a.CatalogPromoEnds = nil
		changed = true
	}
	if a.PromotedInCategory && a.CategoryPromoEnds != nil && now.After(*a.CategoryPromoEnds) {
		a.PromotedInCategory = false
		a.CategoryPromoEnds = nil
		changed = true
	}
	return changed
}
