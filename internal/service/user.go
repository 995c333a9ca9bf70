package service

import (
	"context"

	"github.com/pavelromci25/nebula-server/internal/model"
)

type userStore interface {
	GetUser(ctx context.Context, id string) (*model.User, error)
	UpsertLogin(ctx context.Context, user *model.User) error
}

type UserService struct {
	store userStore
}

func NewUserService(store userStore) *UserService {
	return &UserService{store: store}
}

func (s *UserService) Get(ctx context.Context, id string) (*model.User, error) {
	return s.store.GetUser(ctx, id)
}

// Login registers a catalog visit: first call creates the profile, later
// calls bump the counter, merge platforms and mark the user online.
func (s *UserService) Login(ctx context.Context, user *model.User) (*model.User, error) {
	if err := s.store.UpsertLogin(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
