package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/creatordash/internal/service"
	"github.com/maheshrc27/creatordash/internal/transfer"
)

type ProfileHandler struct {
	s service.ProfileService
}

func NewProfileHandler(service service.ProfileService) *ProfileHandler {
	return &ProfileHandler{s: service}
}

func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID := GetUserID(c)

	profile, err := h.s.GetUserProfile(c.Context(), userID)
	if err != nil {
		return c.Status(ErrorStatus(err)).JSON(fiber.Map{
			"error": "Unable to get profile",
		})
	}

	return c.JSON(profile)
}

func (h *ProfileHandler) UpdateTimezone(c *fiber.Ctx) error {
	userID := GetUserID(c)

	var tu transfer.TimezoneUpdate
	err := c.BodyParser(&tu)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	err = h.s.UpdateTimezone(c.Context(), userID, tu.Timezone)
	if err != nil {
		return c.Status(ErrorStatus(err)).JSON(fiber.Map{
			"error": "Unable to update timezone",
		})
	}

	return c.SendStatus(fiber.StatusOK)
}
