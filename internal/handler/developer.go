package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pavelromci25/nebula-server/internal/model"
	"github.com/pavelromci25/nebula-server/internal/repository"
	"github.com/pavelromci25/nebula-server/internal/service"
)

// DeveloperHandler serves the developer console, behind the developer
// allow-list middleware.
type DeveloperHandler struct {
	developerSvc *service.DeveloperService
	promotionSvc *service.PromotionService
}

func NewDeveloperHandler(developerSvc *service.DeveloperService, promotionSvc *service.PromotionService) *DeveloperHandler {
	return &DeveloperHandler{
		developerSvc: developerSvc,
		promotionSvc: promotionSvc,
	}
}

// GetDeveloper returns the profile, creating it on the first visit.
func (h *DeveloperHandler) GetDeveloper(c *fiber.Ctx) error {
	dev, err := h.developerSvc.GetOrCreate(c.Context(), c.Params("userId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dev)
}

// SubmitApp accepts a new app for moderation.
func (h *DeveloperHandler) SubmitApp(c *fiber.Ctx) error {
	var req service.SubmitAppRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Неверный формат запроса",
		})
	}

	app, err := h.developerSvc.SubmitApp(c.Context(), c.Params("userId"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(app)
}

// UpdateApp applies a partial update to an owned app.
func (h *DeveloperHandler) UpdateApp(c *fiber.Ctx) error {
	var upd repository.AppUpdate
	if err := c.BodyParser(&upd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Неверный формат запроса",
		})
	}

	app, err := h.developerSvc.UpdateApp(c.Context(), c.Params("userId"), c.Params("appId"), upd)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(app)
}

// GetBalance returns the developer's Telegram Stars balance.
func (h *DeveloperHandler) GetBalance(c *fiber.Ctx) error {
	balance, err := h.developerSvc.Balance(c.Context(), c.Params("userId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"telegramStarsBalance": balance,
	})
}

// GetTransactions returns the Stars ledger for an owned app.
func (h *DeveloperHandler) GetTransactions(c *fiber.Ctx) error {
	txs, err := h.developerSvc.Transactions(c.Context(), c.Params("userId"), c.Params("appId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(txs)
}

// GetStats returns catalog and category rank positions for every owned app.
func (h *DeveloperHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.developerSvc.Stats(c.Context(), c.Params("userId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}

type PromoteRequest struct {
	AppID  string `json:"appId"`
	Kind   string `json:"kind"`
	Source string `json:"source"`
}

// Promote activates a time-boxed boost paid with Telegram Stars.
func (h *DeveloperHandler) Promote(c *fiber.Ctx) error {
	var req PromoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Неверный формат запроса",
		})
	}

	source := model.PromotionSource(req.Source)
	if req.Source == "" {
		source = model.SourceDeveloper
	}

	receipt, err := h.promotionSvc.Promote(
		c.Context(),
		c.Params("userId"),
		req.AppID,
		model.PromotionKind(req.Kind),
		source,
	)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(receipt)
}
