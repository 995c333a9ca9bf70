package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavelromci25/nebula-server/internal/model"
	"github.com/pavelromci25/nebula-server/internal/repository"
)

type fakeDeveloperStore struct {
	developers   map[string]*model.Developer
	apps         map[string]*model.App
	created      []*model.App
	transactions map[string][]model.StarTransaction
}

func newFakeDeveloperStore() *fakeDeveloperStore {
	return &fakeDeveloperStore{
		developers: make(map[string]*model.Developer),
		apps:       make(map[string]*model.App),
	}
}

func (s *fakeDeveloperStore) GetDeveloper(ctx context.Context, userID string) (*model.Developer, error) {
	dev, ok := s.developers[userID]
	if !ok {
		return nil, repository.ErrDeveloperNotFound
	}
	cp := *dev
	return &cp, nil
}

func (s *fakeDeveloperStore) CreateDeveloper(ctx context.Context, dev *model.Developer) error {
	cp := *dev
	s.developers[dev.UserID] = &cp
	return nil
}

func (s *fakeDeveloperStore) GetDeveloperBalance(ctx context.Context, userID string) (int64, error) {
	dev, ok := s.developers[userID]
	if !ok {
		return 0, repository.ErrDeveloperNotFound
	}
	return dev.StarsBalance, nil
}

func (s *fakeDeveloperStore) ListAppTransactions(ctx context.Context, appID string) ([]model.StarTransaction, error) {
	return s.transactions[appID], nil
}

func (s *fakeDeveloperStore) ListAppsByDeveloper(ctx context.Context, developerID string) ([]model.App, error) {
	var out []model.App
	for _, app := range s.apps {
		if app.DeveloperID == developerID {
			out = append(out, *app)
		}
	}
	return out, nil
}

func (s *fakeDeveloperStore) ListApps(ctx context.Context) ([]model.App, error) {
	var out []model.App
	for _, app := range s.apps {
		out = append(out, *app)
	}
	return out, nil
}

func (s *fakeDeveloperStore) AppNameTaken(ctx context.Context, developerID, name string) (bool, error) {
	for _, app := range s.apps {
		if app.DeveloperID == developerID && app.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeDeveloperStore) CreateApp(ctx context.Context, app *model.App) error {
	cp := *app
	s.apps[app.ID] = &cp
	s.created = append(s.created, &cp)
	return nil
}

func (s *fakeDeveloperStore) GetApp(ctx context.Context, id string) (*model.App, error) {
	app, ok := s.apps[id]
	if !ok {
		return nil, repository.ErrAppNotFound
	}
	cp := *app
	return &cp, nil
}

func (s *fakeDeveloperStore) UpdateApp(ctx context.Context, id string, upd repository.AppUpdate) (*model.App, error) {
	app, ok := s.apps[id]
	if !ok {
		return nil, repository.ErrAppNotFound
	}
	if upd.Name != nil {
		app.Name = *upd.Name
	}
	if upd.ShortDescription != nil {
		app.ShortDescription = *upd.ShortDescription
	}
	cp := *app
	return &cp, nil
}

type fakeNotifier struct {
	notified []*model.App
}

func (f *fakeNotifier) NotifyAppSubmitted(app *model.App) error {
	f.notified = append(f.notified, app)
	return nil
}

func validSubmitRequest() SubmitAppRequest {
	return SubmitAppRequest{
		Type:                 model.AppTypeGame,
		Name:                 "Тетрис",
		ShortDescription:     "Классическая игра-головоломка.",
		Category:             "Пазлы",
		AdditionalCategories: []string{"Классика"},
		Icon:                 "https://example.com/icon.png",
		Platforms:            []string{"Web"},
		AgeRating:            "3+",
		ContactInfo:          "dev@example.com",
	}
}

func TestGetOrCreateProvisionsProfile(t *testing.T) {
	store := newFakeDeveloperStore()
	svc := NewDeveloperService(store)

	res, err := svc.GetOrCreate(context.Background(), "dev-1")
	require.NoError(t, err)

	assert.Equal(t, "dev-1", res.UserID)
	assert.Len(t, res.ReferralCode, 8)
	assert.Empty(t, res.Apps)

	// Second visit reuses the stored profile.
	again, err := svc.GetOrCreate(context.Background(), "dev-1")
	require.NoError(t, err)
	assert.Equal(t, res.ReferralCode, again.ReferralCode)
}

func TestSubmitApp(t *testing.T) {
	store := newFakeDeveloperStore()
	store.developers["dev-1"] = &model.Developer{UserID: "dev-1"}
	notifier := &fakeNotifier{}
	svc := NewDeveloperService(store)
	svc.SetNotifier(notifier)

	app, err := svc.SubmitApp(context.Background(), "dev-1", validSubmitRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, app.ID)
	assert.Equal(t, "dev-1", app.DeveloperID)
	assert.Equal(t, model.StatusOnModeration, app.Status)
	assert.Equal(t, "Тетрис", app.Name)

	require.Len(t, notifier.notified, 1)
	assert.Equal(t, app.ID, notifier.notified[0].ID)
}

func TestSubmitAppDuplicateName(t *testing.T) {
	store := newFakeDeveloperStore()
	store.developers["dev-1"] = &model.Developer{UserID: "dev-1"}
	svc := NewDeveloperService(store)

	_, err := svc.SubmitApp(context.Background(), "dev-1", validSubmitRequest())
	require.NoError(t, err)

	_, err = svc.SubmitApp(context.Background(), "dev-1", validSubmitRequest())
	assert.ErrorIs(t, err, ErrDuplicateAppName)
}

func TestSubmitAppValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SubmitAppRequest)
		wantErr error
	}{
		{"bad type", func(r *SubmitAppRequest) { r.Type = "bot" }, ErrInvalidAppType},
		{"empty name", func(r *SubmitAppRequest) { r.Name = "  " }, ErrNameRequired},
		{"empty short description", func(r *SubmitAppRequest) { r.ShortDescription = "" }, ErrShortDescRequired},
		{"short description too long", func(r *SubmitAppRequest) { r.ShortDescription = strings.Repeat("ж", 101) }, ErrShortDescTooLong},
		{"empty category", func(r *SubmitAppRequest) { r.Category = "" }, ErrCategoryRequired},
		{"category of the wrong type", func(r *SubmitAppRequest) { r.Category = "Финансы" }, ErrCategoryUnknown},
		{"too many additional categories", func(r *SubmitAppRequest) {
			r.AdditionalCategories = []string{"Классика", "Логические", "Аркады"}
		}, ErrTooManyCategories},
		{"unknown additional category", func(r *SubmitAppRequest) {
			r.AdditionalCategories = []string{"Выдуманная"}
		}, ErrCategoryUnknown},
		{"empty icon", func(r *SubmitAppRequest) { r.Icon = "" }, ErrIconRequired},
		{"empty age rating", func(r *SubmitAppRequest) { r.AgeRating = "" }, ErrAgeRatingRequired},
		{"empty contacts", func(r *SubmitAppRequest) { r.ContactInfo = "" }, ErrContactInfoRequired},
	}

	store := newFakeDeveloperStore()
	store.developers["dev-1"] = &model.Developer{UserID: "dev-1"}
	svc := NewDeveloperService(store)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSubmitRequest()
			tt.mutate(&req)
			_, err := svc.SubmitApp(context.Background(), "dev-1", req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
	assert.Empty(t, store.created)
}

func TestSubmitAppAtHundredRunes(t *testing.T) {
	store := newFakeDeveloperStore()
	store.developers["dev-1"] = &model.Developer{UserID: "dev-1"}
	svc := NewDeveloperService(store)

	req := validSubmitRequest()
	req.ShortDescription = strings.Repeat("ж", 100)

	_, err := svc.SubmitApp(context.Background(), "dev-1", req)
	require.NoError(t, err)
}

func TestUpdateApp(t *testing.T) {
	store := newFakeDeveloperStore()
	store.apps["app-1"] = &model.App{ID: "app-1", DeveloperID: "dev-1", Name: "Тетрис"}
	svc := NewDeveloperService(store)

	newName := "Тетрис 2"
	app, err := svc.UpdateApp(context.Background(), "dev-1", "app-1", repository.AppUpdate{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Тетрис 2", app.Name)

	_, err = svc.UpdateApp(context.Background(), "dev-2", "app-1", repository.AppUpdate{Name: &newName})
	assert.ErrorIs(t, err, ErrNotAppOwner)

	_, err = svc.UpdateApp(context.Background(), "dev-1", "missing", repository.AppUpdate{})
	assert.ErrorIs(t, err, repository.ErrAppNotFound)
}

func TestBalance(t *testing.T) {
	store := newFakeDeveloperStore()
	store.developers["dev-1"] = &model.Developer{UserID: "dev-1", StarsBalance: 230}
	svc := NewDeveloperService(store)

	balance, err := svc.Balance(context.Background(), "dev-1")
	require.NoError(t, err)
	assert.Equal(t, int64(230), balance)

	_, err = svc.Balance(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrDeveloperNotFound)
}

func TestTransactions(t *testing.T) {
	store := newFakeDeveloperStore()
	store.apps["app-1"] = &model.App{ID: "app-1", DeveloperID: "dev-1"}
	store.transactions = map[string][]model.StarTransaction{
		"app-1": {
			{AppID: "app-1", Amount: 5, Kind: model.TransactionDonation},
			{AppID: "app-1", Amount: -50, Kind: model.TransactionPromotion},
		},
	}
	svc := NewDeveloperService(store)

	txs, err := svc.Transactions(context.Background(), "dev-1", "app-1")
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, model.TransactionDonation, txs[0].Kind)
	assert.Equal(t, int64(-50), txs[1].Amount)

	_, err = svc.Transactions(context.Background(), "dev-2", "app-1")
	assert.ErrorIs(t, err, ErrNotAppOwner)

	_, err = svc.Transactions(context.Background(), "dev-1", "missing")
	assert.ErrorIs(t, err, repository.ErrAppNotFound)
}

func TestStats(t *testing.T) {
	store := newFakeDeveloperStore()
	store.apps["app-1"] = &model.App{ID: "app-1", DeveloperID: "dev-1", Name: "Тетрис", StarsDonations: 150}
	store.apps["app-2"] = &model.App{ID: "app-2", DeveloperID: "dev-2", Name: "Пазлы 2048", StarsDonations: 200}
	svc := NewDeveloperService(store)

	stats, err := svc.Stats(context.Background(), "dev-1")
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, "app-1", stats[0].AppID)
	assert.Equal(t, 2, stats[0].CatalogRank)
}
