package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pavelromci25/nebula-server/internal/service"
)

// AdminHandler serves the moderation console, behind the admin allow-list
// middleware.
type AdminHandler struct {
	adminSvc *service.AdminService
}

func NewAdminHandler(adminSvc *service.AdminService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc}
}

// ListApps returns every app regardless of moderation status.
func (h *AdminHandler) ListApps(c *fiber.Ctx) error {
	apps, err := h.adminSvc.ListApps(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(apps)
}

// GetStats returns catalog-wide totals.
func (h *AdminHandler) GetStats(c *fiber.Ctx) error {
	totals, err := h.adminSvc.Stats(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(totals)
}

// ApproveApp publishes an app to the catalog.
func (h *AdminHandler) ApproveApp(c *fiber.Ctx) error {
	app, err := h.adminSvc.Approve(c.Context(), c.Params("appId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(app)
}

type RejectRequest struct {
	RejectionReason string `json:"rejectionReason"`
}

// RejectApp declines an app with a reason for the developer.
func (h *AdminHandler) RejectApp(c *fiber.Ctx) error {
	var req RejectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Неверный формат запроса",
		})
	}

	app, err := h.adminSvc.Reject(c.Context(), c.Params("appId"), req.RejectionReason)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(app)
}

type AddDeveloperRequest struct {
	TelegramID string `json:"telegramId"`
}

// AddDeveloper grants developer console access to a Telegram id.
func (h *AdminHandler) AddDeveloper(c *fiber.Ctx) error {
	var req AddDeveloperRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Неверный формат запроса",
		})
	}

	if err := h.adminSvc.AddDeveloper(c.Context(), req.TelegramID); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Разработчик добавлен",
	})
}

// ListDevelopers returns the developer allow-list.
func (h *AdminHandler) ListDevelopers(c *fiber.Ctx) error {
	devs, err := h.adminSvc.ListDevelopers(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(devs)
}

// ListAdmins returns the admin allow-list.
func (h *AdminHandler) ListAdmins(c *fiber.Ctx) error {
	admins, err := h.adminSvc.ListAdmins(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(admins)
}
