package service

import (
	"context"
	"strings"

	"github.com/pavelromci25/nebula-server/internal/model"
)

type accessStore interface {
	IsAllowedDeveloper(ctx context.Context, telegramID string) (bool, error)
	IsAdmin(ctx context.Context, telegramID string) (bool, error)
	AddAllowedDeveloper(ctx context.Context, telegramID string) error
	ListAllowedDevelopers(ctx context.Context) ([]model.AllowedDeveloper, error)
	ListAdmins(ctx context.Context) ([]model.Admin, error)
}

// AccessService answers flat allow-list membership questions for the two
// gated roles. No rate limiting, no audit trail.
type AccessService struct {
	store accessStore
}

func NewAccessService(store accessStore) *AccessService {
	return &AccessService{store: store}
}

// IsDeveloper reports whether the id is on the developer allow-list. Blank
// ids are rejected before touching the store.
func (s *AccessService) IsDeveloper(ctx context.Context, userID string) (bool, error) {
	if strings.TrimSpace(userID) == "" {
		return false, nil
	}
	return s.store.IsAllowedDeveloper(ctx, userID)
}

// IsAdmin reports whether the id is on the admin allow-list, with the same
// blank-input guard.
func (s *AccessService) IsAdmin(ctx context.Context, userID string) (bool, error) {
	if strings.TrimSpace(userID) == "" {
		return false, nil
	}
	return s.store.IsAdmin(ctx, userID)
}

// AddDeveloper grants developer console access.
func (s *AccessService) AddDeveloper(ctx context.Context, telegramID string) error {
	if strings.TrimSpace(telegramID) == "" {
		return ErrEmptyTelegramID
	}
	return s.store.AddAllowedDeveloper(ctx, telegramID)
}

// ListDevelopers returns the current developer allow-list.
func (s *AccessService) ListDevelopers(ctx context.Context) ([]model.AllowedDeveloper, error) {
	return s.store.ListAllowedDevelopers(ctx)
}

// ListAdmins returns the current admin allow-list.
func (s *AccessService) ListAdmins(ctx context.Context) ([]model.Admin, error) {
	return s.store.ListAdmins(ctx)
}
