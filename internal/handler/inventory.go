package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pavelromci25/nebula-server/internal/model"
)

func (h *Handler) GetInventory(c *fiber.Ctx) error {
	inv, err := h.inventorySvc.Get(c.Context(), c.Params("userId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(inv)
}

func (h *Handler) CreateInventory(c *fiber.Ctx) error {
	var inv model.Inventory
	if err := c.BodyParser(&inv); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Неверный формат запроса",
		})
	}
	if inv.UserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Не указан userId",
		})
	}

	created, err := h.inventorySvc.Create(c.Context(), &inv)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) PatchInventory(c *fiber.Ctx) error {
	var patch model.InventoryPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Неверный формат запроса",
		})
	}

	inv, err := h.inventorySvc.Patch(c.Context(), c.Params("userId"), patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(inv)
}
