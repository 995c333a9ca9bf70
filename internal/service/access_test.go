package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavelromci25/nebula-server/internal/model"
)

type fakeAccessStore struct {
	developers map[string]bool
	admins     map[string]bool
	lookups    int
}

func (s *fakeAccessStore) IsAllowedDeveloper(ctx context.Context, telegramID string) (bool, error) {
	s.lookups++
	return s.developers[telegramID], nil
}

func (s *fakeAccessStore) IsAdmin(ctx context.Context, telegramID string) (bool, error) {
	s.lookups++
	return s.admins[telegramID], nil
}

func (s *fakeAccessStore) AddAllowedDeveloper(ctx context.Context, telegramID string) error {
	if s.developers == nil {
		s.developers = make(map[string]bool)
	}
	s.developers[telegramID] = true
	return nil
}

func (s *fakeAccessStore) ListAllowedDevelopers(ctx context.Context) ([]model.AllowedDeveloper, error) {
	var out []model.AllowedDeveloper
	for id := range s.developers {
		out = append(out, model.AllowedDeveloper{TelegramID: id})
	}
	return out, nil
}

func (s *fakeAccessStore) ListAdmins(ctx context.Context) ([]model.Admin, error) {
	var out []model.Admin
	for id := range s.admins {
		out = append(out, model.Admin{TelegramID: id})
	}
	return out, nil
}

func TestIsDeveloper(t *testing.T) {
	store := &fakeAccessStore{developers: map[string]bool{"12345": true}}
	svc := NewAccessService(store)

	tests := []struct {
		name   string
		userID string
		want   bool
	}{
		{"listed id", "12345", true},
		{"unknown id", "99999", false},
		{"empty id", "", false},
		{"whitespace id", "   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := svc.IsDeveloper(context.Background(), tt.userID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestIsDeveloperBlankSkipsStore(t *testing.T) {
	store := &fakeAccessStore{}
	svc := NewAccessService(store)

	ok, err := svc.IsDeveloper(context.Background(), "  ")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, store.lookups)
}

func TestIsAdmin(t *testing.T) {
	store := &fakeAccessStore{admins: map[string]bool{"777": true}}
	svc := NewAccessService(store)

	ok, err := svc.IsAdmin(context.Background(), "777")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.IsAdmin(context.Background(), "12345")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.IsAdmin(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, ok)
	// The blank id never reached the store.
	assert.Equal(t, 2, store.lookups)
}

func TestAddDeveloper(t *testing.T) {
	store := &fakeAccessStore{}
	svc := NewAccessService(store)

	require.NoError(t, svc.AddDeveloper(context.Background(), "555"))

	ok, err := svc.IsDeveloper(context.Background(), "555")
	require.NoError(t, err)
	assert.True(t, ok)

	assert.ErrorIs(t, svc.AddDeveloper(context.Background(), ""), ErrEmptyTelegramID)
	assert.ErrorIs(t, svc.AddDeveloper(context.Background(), "  "), ErrEmptyTelegramID)
}
