package service

import (
	"context"
	"strings"

	"github.com/pavelromci25/nebula-server/internal/model"
	"github.com/pavelromci25/nebula-server/internal/repository"
)

type adminStore interface {
	ListApps(ctx context.Context) ([]model.App, error)
	GetCatalogTotals(ctx context.Context) (*repository.CatalogTotals, error)
	SetAppStatus(ctx context.Context, id string, status model.AppStatus, rejectionReason *string) (*model.App, error)
}

// AdminService backs the moderation console.
type AdminService struct {
	store  adminStore
	access *AccessService
}

func NewAdminService(store adminStore, access *AccessService) *AdminService {
	return &AdminService{store: store, access: access}
}

// ListApps returns the full catalog regardless of status.
func (s *AdminService) ListApps(ctx context.Context) ([]model.App, error) {
	return s.store.ListApps(ctx)
}

// Stats returns catalog-wide totals for the dashboard.
func (s *AdminService) Stats(ctx context.Context) (*repository.CatalogTotals, error) {
	return s.store.GetCatalogTotals(ctx)
}

// Approve publishes an app and clears any previous rejection reason.
func (s *AdminService) Approve(ctx context.Context, appID string) (*model.App, error) {
	return s.store.SetAppStatus(ctx, appID, model.StatusAdded, nil)
}

// Reject declines an app with a reason shown to the developer.
func (s *AdminService) Reject(ctx context.Context, appID, reason string) (*model.App, error) {
	var r *string
	if strings.TrimSpace(reason) != "" {
		r = &reason
	}
	return s.store.SetAppStatus(ctx, appID, model.StatusRejected, r)
}

// AddDeveloper puts a Telegram id on the developer allow-list.
func (s *AdminService) AddDeveloper(ctx context.Context, telegramID string) error {
	return s.access.AddDeveloper(ctx, telegramID)
}

// ListDevelopers returns the developer allow-list.
func (s *AdminService) ListDevelopers(ctx context.Context) ([]model.AllowedDeveloper, error) {
	return s.access.ListDevelopers(ctx)
}

// ListAdmins returns the admin allow-list.
func (s *AdminService) ListAdmins(ctx context.Context) ([]model.Admin, error) {
	return s.access.ListAdmins(ctx)
}
