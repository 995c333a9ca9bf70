package service

import (
	"context"
	"time"

	"github.com/pavelromci25/nebula-server/internal/config"
	"github.com/pavelromci25/nebula-server/internal/model"
)

type promotionStore interface {
	GetApp(ctx context.Context, id string) (*model.App, error)
	ChargePromotion(ctx context.Context, developerID, appID string, source model.PromotionSource, kind model.PromotionKind, cost int64, endsAt time.Time) error
}

// PromotionService sells time-boxed visibility boosts. Activation debits the
// chosen balance and flips the axis in one transaction; expiry is handled
// lazily by the catalog read path.
type PromotionService struct {
	store promotionStore
	cfg   config.PromotionConfig
	now   func() time.Time
}

func NewPromotionService(store promotionStore, cfg config.PromotionConfig) *PromotionService {
	return &PromotionService{store: store, cfg: cfg, now: time.Now}
}

// PlanFor returns the configured cost and duration for a boost axis.
func (s *PromotionService) PlanFor(kind model.PromotionKind) (cost int64, duration time.Duration, err error) {
	switch kind {
	case model.PromotionCatalog:
		return s.cfg.CatalogCost, s.cfg.CatalogDuration, nil
	case model.PromotionCategory:
		return s.cfg.CategoryCost, s.cfg.CategoryDuration, nil
	default:
		return 0, 0, ErrUnknownKind
	}
}

// PromotionReceipt is returned on successful activation.
type PromotionReceipt struct {
	AppID  string              `json:"appId"`
	Kind   model.PromotionKind `json:"kind"`
	Cost   int64               `json:"cost"`
	EndsAt time.Time           `json:"endsAt"`
}

// Promote activates a boost on an app the developer owns, paid from the
// developer wallet or from the app's own donation balance.
func (s *PromotionService) Promote(ctx context.Context, developerID, appID string, kind model.PromotionKind, source model.PromotionSource) (*PromotionReceipt, error) {
	cost, duration, err := s.PlanFor(kind)
	if err != nil {
		return nil, err
	}
	if source != model.SourceDeveloper && source != model.SourceApp {
		return nil, ErrUnknownSource
	}

	app, err := s.store.GetApp(ctx, appID)
	if err != nil {
		return nil, err
	}
	if app.DeveloperID != developerID {
		return nil, ErrNotAppOwner
	}

	endsAt := s.now().Add(duration)
	if err := s.store.ChargePromotion(ctx, developerID, appID, source, kind, cost, endsAt); err != nil {
		return nil, err
	}

	return &PromotionReceipt{AppID: appID, Kind: kind, Cost: cost, EndsAt: endsAt}, nil
}
