package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"

	"github.com/pavelromci25/nebula-server/internal/model"
)

func (h *Handler) GetUser(c *fiber.Ctx) error {
	user, err := h.userSvc.Get(c.Context(), c.Params("userId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

type LoginRequest struct {
	UserID    string           `json:"userId"`
	Username  string           `json:"username"`
	PhotoURL  string           `json:"photoUrl"`
	Platform  string           `json:"platform"`
	Referrals []model.Referral `json:"referrals"`
}

// CreateUser registers a catalog visit: creates the profile on the first
// call, afterwards bumps login stats and marks the user online.
func (h *Handler) CreateUser(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Неверный формат запроса",
		})
	}
	if req.UserID == "" || req.Username == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Не указаны userId или username",
		})
	}

	user := &model.User{
		ID:        req.UserID,
		Username:  req.Username,
		PhotoURL:  req.PhotoURL,
		Referrals: req.Referrals,
	}
	if req.Platform != "" {
		user.Platforms = pq.StringArray{req.Platform}
	}

	user, err := h.userSvc.Login(c.Context(), user)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}
