package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/creatordash/internal/service"
)

type ActivityHandler struct {
	s service.ActivityService
}

func NewActivityHandler(service service.ActivityService) *ActivityHandler {
	return &ActivityHandler{s: service}
}

func (h *ActivityHandler) ListActivity(c *fiber.Ctx) error {
	userID := GetUserID(c)

	activities, err := h.s.List(c.Context(), userID)
	if err != nil {
		return c.Status(ErrorStatus(err)).JSON(fiber.Map{
			"error": "Unable to list activity",
		})
	}

	return c.Status(fiber.StatusOK).JSON(activities)
}
