package service

import (
	"context"

	"github.com/pavelromci25/nebula-server/internal/model"
)

type inventoryStore interface {
	GetInventory(ctx context.Context, userID string) (*model.Inventory, error)
	CreateInventory(ctx context.Context, inv *model.Inventory) error
	PatchInventory(ctx context.Context, userID string, patch model.InventoryPatch) (*model.Inventory, error)
}

type InventoryService struct {
	store inventoryStore
}

func NewInventoryService(store inventoryStore) *InventoryService {
	return &InventoryService{store: store}
}

func (s *InventoryService) Get(ctx context.Context, userID string) (*model.Inventory, error) {
	return s.store.GetInventory(ctx, userID)
}

func (s *InventoryService) Create(ctx context.Context, inv *model.Inventory) (*model.Inventory, error) {
	if err := s.store.CreateInventory(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *InventoryService) Patch(ctx context.Context, userID string, patch model.InventoryPatch) (*model.Inventory, error) {
	return s.store.PatchInventory(ctx, userID, patch)
}
