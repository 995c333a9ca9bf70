package service

import (
	"context"
	"log"
	"time"

	"github.com/pavelromci25/nebula-server/internal/model"
)

type catalogStore interface {
	ListAppsByStatus(ctx context.Context, status model.AppStatus) ([]model.App, error)
	GetApp(ctx context.Context, id string) (*model.App, error)
	SaveVote(ctx context.Context, id string, votes int64, rating float64) error
	SaveComplaints(ctx context.Context, id string, complaints int64, status model.AppStatus) error
	IncrementClicks(ctx context.Context, id string) error
	SavePromotionState(ctx context.Context, app *model.App) error
}

// CatalogEntry is an approved app decorated with the derived fields the
// catalog frontend renders.
type CatalogEntry struct {
	model.App
	AllCategories []string `json:"categories"`
	Rating        float64  `json:"rating"`
	TelegramStars int64    `json:"telegramStars"`
	Opens         int64    `json:"opens"`
}

type CatalogService struct {
	store catalogStore
	now   func() time.Time
}

func NewCatalogService(store catalogStore) *CatalogService {
	return &CatalogService{store: store, now: time.Now}
}

// ListCatalog returns approved apps. Promotion expiry is pull-based: every
// app's end dates are checked against the current time here, and cleared
// state is persisted before the response is shaped.
func (s *CatalogService) ListCatalog(ctx context.Context) ([]CatalogEntry, error) {
	apps, err := s.store.ListAppsByStatus(ctx, model.StatusAdded)
	if err != nil {
		return nil, err
	}

	now := s.now()
	entries := make([]CatalogEntry, 0, len(apps))
	for i := range apps {
		app := &apps[i]
		if app.ExpirePromotions(now) {
			if err := s.store.SavePromotionState(ctx, app); err != nil {
				log.Printf("[Catalog] Failed to persist expired promotion for app %s: %v", app.ID, err)
			}
		}
		entries = append(entries, CatalogEntry{
			App:           *app,
			AllCategories: app.Categories(),
			Rating:        app.UserRating,
			TelegramStars: app.StarsDonations,
			Opens:         app.Clicks,
		})
	}
	return entries, nil
}

// Rate folds a new vote into the app's running mean.
func (s *CatalogService) Rate(ctx context.Context, appID string, rating float64) (*model.App, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	app, err := s.store.GetApp(ctx, appID)
	if err != nil {
		return nil, err
	}

	app.ApplyVote(rating)
	if err := s.store.SaveVote(ctx, app.ID, app.Votes, app.UserRating); err != nil {
		return nil, err
	}
	return app, nil
}

// Complain increments the complaint counter; at the threshold the app goes
// back to moderation and disappears from the catalog.
func (s *CatalogService) Complain(ctx context.Context, appID string) (*model.App, error) {
	app, err := s.store.GetApp(ctx, appID)
	if err != nil {
		return nil, err
	}

	if app.RegisterComplaint() {
		log.Printf("[Catalog] App %s re-moderated after %d complaints", app.ID, app.Complaints)
	}
	if err := s.store.SaveComplaints(ctx, app.ID, app.Complaints, app.Status); err != nil {
		return nil, err
	}
	return app, nil
}

// Click bumps the open counter.
func (s *CatalogService) Click(ctx context.Context, appID string) error {
	return s.store.IncrementClicks(ctx, appID)
}
