package service

import (
	"context"
	"crypto/rand"
	"errors"
	"log"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/pavelromci25/nebula-server/internal/model"
	"github.com/pavelromci25/nebula-server/internal/ranking"
	"github.com/pavelromci25/nebula-server/internal/repository"
)

type developerStore interface {
	GetDeveloper(ctx context.Context, userID string) (*model.Developer, error)
	CreateDeveloper(ctx context.Context, dev *model.Developer) error
	GetDeveloperBalance(ctx context.Context, userID string) (int64, error)
	ListAppTransactions(ctx context.Context, appID string) ([]model.StarTransaction, error)
	ListAppsByDeveloper(ctx context.Context, developerID string) ([]model.App, error)
	ListApps(ctx context.Context) ([]model.App, error)
	AppNameTaken(ctx context.Context, developerID, name string) (bool, error)
	CreateApp(ctx context.Context, app *model.App) error
	GetApp(ctx context.Context, id string) (*model.App, error)
	UpdateApp(ctx context.Context, id string, upd repository.AppUpdate) (*model.App, error)
}

// ModerationNotifier tells the admin chat about a new submission; implemented
// by the bot, optional.
type ModerationNotifier interface {
	NotifyAppSubmitted(app *model.App) error
}

type DeveloperService struct {
	store    developerStore
	notifier ModerationNotifier
}

func NewDeveloperService(store developerStore) *DeveloperService {
	return &DeveloperService{store: store}
}

func (s *DeveloperService) SetNotifier(n ModerationNotifier) {
	s.notifier = n
}

// GetOrCreate auto-provisions the developer profile on first console visit
// and returns it together with the owned apps.
func (s *DeveloperService) GetOrCreate(ctx context.Context, userID string) (*model.DeveloperWithApps, error) {
	dev, err := s.store.GetDeveloper(ctx, userID)
	if errors.Is(err, repository.ErrDeveloperNotFound) {
		dev = &model.Developer{
			UserID:           userID,
			RegistrationDate: time.Now().UTC(),
			ReferralCode:     generateReferralCode(),
		}
		if err := s.store.CreateDeveloper(ctx, dev); err != nil {
			return nil, err
		}
		// Re-read to survive a concurrent first visit.
		dev, err = s.store.GetDeveloper(ctx, userID)
		if err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	apps, err := s.store.ListAppsByDeveloper(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &model.DeveloperWithApps{Developer: *dev, Apps: apps}, nil
}

// SubmitAppRequest carries a new app submission.
type SubmitAppRequest struct {
	Type                 model.AppType `json:"type"`
	Name                 string        `json:"name"`
	ShortDescription     string        `json:"shortDescription"`
	LongDescription      *string       `json:"longDescription"`
	Category             string        `json:"category"`
	AdditionalCategories []string      `json:"additionalCategories"`
	Icon                 string        `json:"icon"`
	Banner               *string       `json:"banner"`
	Gallery              []string      `json:"gallery"`
	Video                *string       `json:"video"`
	Platforms            []string      `json:"platforms"`
	AgeRating            string        `json:"ageRating"`
	InAppPurchases       bool          `json:"inAppPurchases"`
	SupportsTON          bool          `json:"supportsTON"`
	SupportsStars        bool          `json:"supportsTelegramStars"`
	ContactInfo          string        `json:"contactInfo"`
}

// Validation errors mirror the console's field-by-field messages.
var (
	ErrInvalidAppType      = errors.New("Тип приложения должен быть \"game\" или \"app\"")
	ErrNameRequired        = errors.New("Название приложения обязательно")
	ErrShortDescRequired   = errors.New("Короткое описание обязательно")
	ErrShortDescTooLong    = errors.New("Короткое описание не должно превышать 100 символов")
	ErrCategoryRequired    = errors.New("Основная категория обязательна")
	ErrCategoryUnknown     = errors.New("Недопустимая категория для этого типа приложения")
	ErrTooManyCategories   = errors.New("Не более 2 дополнительных категорий")
	ErrIconRequired        = errors.New("URL аватарки обязателен")
	ErrAgeRatingRequired   = errors.New("Возрастной рейтинг обязателен")
	ErrContactInfoRequired = errors.New("Контакты для связи обязательны")
)

func (r *SubmitAppRequest) validate() error {
	if r.Type != model.AppTypeGame && r.Type != model.AppTypeApp {
		return ErrInvalidAppType
	}
	if strings.TrimSpace(r.Name) == "" {
		return ErrNameRequired
	}
	if strings.TrimSpace(r.ShortDescription) == "" {
		return ErrShortDescRequired
	}
	if len([]rune(r.ShortDescription)) > 100 {
		return ErrShortDescTooLong
	}
	if strings.TrimSpace(r.Category) == "" {
		return ErrCategoryRequired
	}
	if !model.ValidCategory(r.Type, r.Category) {
		return ErrCategoryUnknown
	}
	if len(r.AdditionalCategories) > model.MaxAdditionalCategories {
		return ErrTooManyCategories
	}
	for _, c := range r.AdditionalCategories {
		if !model.ValidCategory(r.Type, c) {
			return ErrCategoryUnknown
		}
	}
	if strings.TrimSpace(r.Icon) == "" {
		return ErrIconRequired
	}
	if strings.TrimSpace(r.AgeRating) == "" {
		return ErrAgeRatingRequired
	}
	if strings.TrimSpace(r.ContactInfo) == "" {
		return ErrContactInfoRequired
	}
	return nil
}

// SubmitApp validates and stores a new app in onModeration status, then
// notifies the admin chat.
func (s *DeveloperService) SubmitApp(ctx context.Context, userID string, req SubmitAppRequest) (*model.App, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	if _, err := s.store.GetDeveloper(ctx, userID); err != nil {
		return nil, err
	}

	taken, err := s.store.AppNameTaken(ctx, userID, req.Name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateAppName
	}

	app := &model.App{
		ID:                   uuid.NewString(),
		Type:                 req.Type,
		Name:                 req.Name,
		ShortDescription:     req.ShortDescription,
		LongDescription:      req.LongDescription,
		Category:             req.Category,
		AdditionalCategories: pq.StringArray(req.AdditionalCategories),
		Icon:                 req.Icon,
		Banner:               req.Banner,
		Gallery:              pq.StringArray(req.Gallery),
		Video:                req.Video,
		DeveloperID:          userID,
		Platforms:            pq.StringArray(req.Platforms),
		AgeRating:            req.AgeRating,
		InAppPurchases:       req.InAppPurchases,
		SupportsTON:          req.SupportsTON,
		SupportsStars:        req.SupportsStars,
		ContactInfo:          req.ContactInfo,
		Status:               model.StatusOnModeration,
	}

	if err := s.store.CreateApp(ctx, app); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyAppSubmitted(app); err != nil {
			log.Printf("[Developer] Failed to notify admin about app %s: %v", app.ID, err)
		}
	}
	return app, nil
}

// UpdateApp applies a partial update to an app the developer owns.
func (s *DeveloperService) UpdateApp(ctx context.Context, userID, appID string, upd repository.AppUpdate) (*model.App, error) {
	app, err := s.store.GetApp(ctx, appID)
	if err != nil {
		return nil, err
	}
	if app.DeveloperID != userID {
		return nil, ErrNotAppOwner
	}
	return s.store.UpdateApp(ctx, appID, upd)
}

// Balance returns the developer's current Telegram Stars balance.
func (s *DeveloperService) Balance(ctx context.Context, userID string) (int64, error) {
	return s.store.GetDeveloperBalance(ctx, userID)
}

// Transactions returns the Stars ledger for an app the developer owns.
func (s *DeveloperService) Transactions(ctx context.Context, userID, appID string) ([]model.StarTransaction, error) {
	app, err := s.store.GetApp(ctx, appID)
	if err != nil {
		return nil, err
	}
	if app.DeveloperID != userID {
		return nil, ErrNotAppOwner
	}
	return s.store.ListAppTransactions(ctx, appID)
}

// Stats ranks every owned app against the full catalog. Recomputed on each
// call; nothing is cached.
func (s *DeveloperService) Stats(ctx context.Context, userID string) ([]ranking.AppStats, error) {
	owned, err := s.store.ListAppsByDeveloper(ctx, userID)
	if err != nil {
		return nil, err
	}
	all, err := s.store.ListApps(ctx)
	if err != nil {
		return nil, err
	}
	return ranking.BuildStats(owned, all), nil
}

const referralCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func generateReferralCode() string {
	code := make([]byte, 8)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(referralCodeCharset))))
		if err != nil {
			code[i] = referralCodeCharset[0]
			continue
		}
		code[i] = referralCodeCharset[n.Int64()]
	}
	return string(code)
}
