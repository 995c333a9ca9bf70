package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/pavelromci25/nebula-server/internal/repository"
	"github.com/pavelromci25/nebula-server/internal/service"
)

type Handler struct {
	catalogSvc   *service.CatalogService
	donationSvc  *service.DonationService
	userSvc      *service.UserService
	inventorySvc *service.InventoryService
}

func New(
	catalogSvc *service.CatalogService,
	donationSvc *service.DonationService,
	userSvc *service.UserService,
	inventorySvc *service.InventoryService,
) *Handler {
	return &Handler{
		catalogSvc:   catalogSvc,
		donationSvc:  donationSvc,
		userSvc:      userSvc,
		inventorySvc: inventorySvc,
	}
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// respondError maps business errors onto the flat {"error": ...} contract:
// 404 for missing entities, 400 for validation and balance failures, 500
// otherwise.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError

	switch {
	case errors.Is(err, repository.ErrAppNotFound),
		errors.Is(err, repository.ErrDeveloperNotFound),
		errors.Is(err, repository.ErrInventoryNotFound),
		errors.Is(err, repository.ErrUserNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, repository.ErrInsufficientStars),
		errors.Is(err, service.ErrInvalidRating),
		errors.Is(err, service.ErrInvalidStars),
		errors.Is(err, service.ErrDonationTooLarge),
		errors.Is(err, service.ErrUnknownKind),
		errors.Is(err, service.ErrUnknownSource),
		errors.Is(err, service.ErrDuplicateAppName),
		errors.Is(err, service.ErrEmptyTelegramID),
		errors.Is(err, service.ErrInvalidAppType),
		errors.Is(err, service.ErrNameRequired),
		errors.Is(err, service.ErrShortDescRequired),
		errors.Is(err, service.ErrShortDescTooLong),
		errors.Is(err, service.ErrCategoryRequired),
		errors.Is(err, service.ErrCategoryUnknown),
		errors.Is(err, service.ErrTooManyCategories),
		errors.Is(err, service.ErrIconRequired),
		errors.Is(err, service.ErrAgeRatingRequired),
		errors.Is(err, service.ErrContactInfoRequired):
		status = fiber.StatusBadRequest
	case errors.Is(err, service.ErrNotAppOwner):
		status = fiber.StatusForbidden
	}

	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
