package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// GetApps lists approved apps with derived catalog fields. Expired
// promotions are cleared as part of this read.
func (h *Handler) GetApps(c *fiber.Ctx) error {
	entries, err := h.catalogSvc.ListCatalog(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(entries)
}

type RateRequest struct {
	Rating float64 `json:"rating"`
}

// RateApp folds a vote into the app's running mean rating.
func (h *Handler) RateApp(c *fiber.Ctx) error {
	var req RateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Неверный формат запроса",
		})
	}

	app, err := h.catalogSvc.Rate(c.Context(), c.Params("id"), req.Rating)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(app)
}

// ComplainApp registers a complaint; ten complaints re-moderate the app.
func (h *Handler) ComplainApp(c *fiber.Ctx) error {
	app, err := h.catalogSvc.Complain(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(app)
}

// ClickApp bumps the open counter.
func (h *Handler) ClickApp(c *fiber.Ctx) error {
	if err := h.catalogSvc.Click(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Счётчик кликов увеличен",
	})
}

type DonateRequest struct {
	UserID string `json:"userId"`
	Stars  int64  `json:"stars"`
}

// DonateApp transfers stars from the user's inventory to the app.
func (h *Handler) DonateApp(c *fiber.Ctx) error {
	var req DonateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Неверный формат запроса",
		})
	}
	if req.UserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Не указан userId",
		})
	}

	if err := h.donationSvc.Donate(c.Context(), c.Params("id"), req.UserID, req.Stars); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Донат %d Stars успешно отправлен!", req.Stars),
	})
}

// DonateInvoice creates a Telegram Stars invoice link for donating through
// the Telegram payment flow instead of the inventory balance.
func (h *Handler) DonateInvoice(c *fiber.Ctx) error {
	var req DonateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Неверный формат запроса",
		})
	}

	link, err := h.donationSvc.CreateInvoice(c.Context(), c.Params("id"), req.UserID, req.Stars)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"invoice_link": link,
		"stars":        req.Stars,
	})
}
