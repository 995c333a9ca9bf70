package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavelromci25/nebula-server/internal/model"
	"github.com/pavelromci25/nebula-server/internal/repository"
	"github.com/pavelromci25/nebula-server/internal/service"
)

type fakeCatalogStore struct {
	apps map[string]*model.App
}

func (s *fakeCatalogStore) ListAppsByStatus(ctx context.Context, status model.AppStatus) ([]model.App, error) {
	var out []model.App
	for _, app := range s.apps {
		if app.Status == status {
			out = append(out, *app)
		}
	}
	return out, nil
}

func (s *fakeCatalogStore) GetApp(ctx context.Context, id string) (*model.App, error) {
	app, ok := s.apps[id]
	if !ok {
		return nil, repository.ErrAppNotFound
	}
	cp := *app
	return &cp, nil
}

func (s *fakeCatalogStore) SaveVote(ctx context.Context, id string, votes int64, rating float64) error {
	return nil
}

func (s *fakeCatalogStore) SaveComplaints(ctx context.Context, id string, complaints int64, status model.AppStatus) error {
	return nil
}

func (s *fakeCatalogStore) IncrementClicks(ctx context.Context, id string) error {
	if _, ok := s.apps[id]; !ok {
		return repository.ErrAppNotFound
	}
	return nil
}

func (s *fakeCatalogStore) SavePromotionState(ctx context.Context, app *model.App) error {
	return nil
}

func (s *fakeCatalogStore) DonateStars(ctx context.Context, userID, appID string, stars int64) error {
	return nil
}

func (s *fakeCatalogStore) CreditExternalDonation(ctx context.Context, appID string, userID *string, stars int64) error {
	return nil
}

func newTestApp(store *fakeCatalogStore) *fiber.App {
	h := New(
		service.NewCatalogService(store),
		service.NewDonationService(store),
		nil,
		nil,
	)

	app := fiber.New()
	app.Get("/api/apps", h.GetApps)
	app.Post("/api/apps/:id/rate", h.RateApp)
	app.Post("/api/apps/:id/complain", h.ComplainApp)
	app.Post("/api/apps/:id/donate", h.DonateApp)
	app.Post("/api/apps/:id/click", h.ClickApp)
	return app
}

func TestGetApps(t *testing.T) {
	store := &fakeCatalogStore{apps: map[string]*model.App{
		"1": {ID: "1", Name: "Тетрис", Status: model.StatusAdded, Category: "Пазлы", UserRating: 4.5, Clicks: 1200},
		"2": {ID: "2", Name: "На модерации", Status: model.StatusOnModeration},
	}}
	app := newTestApp(store)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/apps", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var entries []map[string]any
	require.NoError(t, json.Unmarshal(body, &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "Тетрис", entries[0]["name"])
	assert.Equal(t, []any{"Пазлы"}, entries[0]["categories"])
	assert.Equal(t, 4.5, entries[0]["rating"])
	assert.Equal(t, float64(1200), entries[0]["opens"])
}

func TestRateApp(t *testing.T) {
	store := &fakeCatalogStore{apps: map[string]*model.App{
		"1": {ID: "1", Status: model.StatusAdded},
	}}
	app := newTestApp(store)

	req := httptest.NewRequest("POST", "/api/apps/1/rate", strings.NewReader(`{"rating": 4}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRateAppRejections(t *testing.T) {
	store := &fakeCatalogStore{apps: map[string]*model.App{
		"1": {ID: "1"},
	}}
	app := newTestApp(store)

	tests := []struct {
		name       string
		target     string
		body       string
		wantStatus int
	}{
		{"rating out of range", "/api/apps/1/rate", `{"rating": 6}`, fiber.StatusBadRequest},
		{"unknown app", "/api/apps/missing/rate", `{"rating": 4}`, fiber.StatusNotFound},
		{"malformed body", "/api/apps/1/rate", `{`, fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", tt.target, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestDonateApp(t *testing.T) {
	store := &fakeCatalogStore{apps: map[string]*model.App{
		"1": {ID: "1", Name: "Тетрис"},
	}}
	app := newTestApp(store)

	tests := []struct {
		name       string
		target     string
		body       string
		wantStatus int
	}{
		{"ok", "/api/apps/1/donate", `{"userId": "user-1", "stars": 5}`, fiber.StatusOK},
		{"missing userId", "/api/apps/1/donate", `{"stars": 5}`, fiber.StatusBadRequest},
		{"above the cap", "/api/apps/1/donate", `{"userId": "user-1", "stars": 11}`, fiber.StatusBadRequest},
		{"unknown app", "/api/apps/missing/donate", `{"userId": "user-1", "stars": 5}`, fiber.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", tt.target, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestClickApp(t *testing.T) {
	store := &fakeCatalogStore{apps: map[string]*model.App{
		"1": {ID: "1"},
	}}
	app := newTestApp(store)

	resp, err := app.Test(httptest.NewRequest("POST", "/api/apps/1/click", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("POST", "/api/apps/missing/click", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
