package handlers

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/maheshrc27/creatordash/internal/models"
	"github.com/maheshrc27/creatordash/internal/queue"
	"github.com/maheshrc27/creatordash/internal/service"
	"github.com/maheshrc27/creatordash/internal/transfer"
)

type ContentHandler struct {
	s           service.ContentService
	storage     *service.StorageService
	AsynqClient *asynq.Client
}

func NewContentHandler(service service.ContentService, storage *service.StorageService, asynqClient *asynq.Client) *ContentHandler {
	return &ContentHandler{s: service, storage: storage, AsynqClient: asynqClient}
}

func (h *ContentHandler) CreateContent(c *fiber.Ctx) error {
	userID := GetUserID(c)

	cc := &transfer.ContentCreation{
		Title:         c.FormValue("title"),
		Description:   c.FormValue("description"),
		Type:          c.FormValue("type"),
		Platform:      c.FormValue("platform"),
		ScheduledDate: c.FormValue("scheduled_date"),
	}

	// Image is optional; when present it is uploaded before the row is
	// written, same as the dashboard flow.
	if file, err := c.FormFile("image"); err == nil && file != nil {
		imageURL, err := h.storage.UploadImage(c.Context(), userID, file)
		if err != nil {
			slog.Error(err.Error())
			return c.Status(ErrorStatus(err)).JSON(fiber.Map{
				"error": "Unable to upload image",
			})
		}
		cc.ImageURL = imageURL
	}

	content, err := h.s.Create(c.Context(), userID, cc)
	if err != nil {
		return c.Status(ErrorStatus(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if content.Status == models.ContentStatusScheduled && content.ScheduledAt != nil {
		delay := time.Until(*content.ScheduledAt)
		if delay < 0 {
			delay = 0
		}
		err = queue.EnqueueReminder(h.AsynqClient, queue.ContentReminderPayload{ContentID: content.ID}, delay)
		if err != nil {
			slog.Error("Unable to enqueue reminder", "content_id", content.ID, "error", err)
		}
	}

	return c.Status(fiber.StatusOK).JSON(content)
}

func (h *ContentHandler) ListContent(c *fiber.Ctx) error {
	userID := GetUserID(c)
	contentID := c.QueryInt("id", 0)

	if contentID != 0 {
		content, err := h.s.Info(c.Context(), int64(contentID), userID)
		if err != nil {
			return c.Status(ErrorStatus(err)).JSON(fiber.Map{
				"error": "Unable to get content",
			})
		}

		return c.Status(fiber.StatusOK).JSON(content)
	}

	contents, err := h.s.List(c.Context(), userID)
	if err != nil {
		return c.Status(ErrorStatus(err)).JSON(fiber.Map{
			"error": "Unable to list content",
		})
	}

	return c.Status(fiber.StatusOK).JSON(contents)
}

func (h *ContentHandler) UpdateContent(c *fiber.Ctx) error {
	userID := GetUserID(c)
	contentID := c.QueryInt("id", 0)

	var cu transfer.ContentUpdate
	err := c.BodyParser(&cu)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	err = h.s.Update(c.Context(), userID, int64(contentID), &cu)
	if err != nil {
		return c.Status(ErrorStatus(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.SendStatus(fiber.StatusOK)
}

func (h *ContentHandler) UpdateContentStatus(c *fiber.Ctx) error {
	userID := GetUserID(c)
	contentID := c.QueryInt("id", 0)

	var su transfer.StatusUpdate
	err := c.BodyParser(&su)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	err = h.s.UpdateStatus(c.Context(), userID, int64(contentID), su.Status)
	if err != nil {
		return c.Status(ErrorStatus(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.SendStatus(fiber.StatusOK)
}

func (h *ContentHandler) RemoveContent(c *fiber.Ctx) error {
	userID := GetUserID(c)
	contentID := c.QueryInt("id", 0)

	err := h.s.Remove(c.Context(), userID, int64(contentID))
	if err != nil {
		return c.Status(ErrorStatus(err)).JSON(fiber.Map{
			"error": "Unable to remove content",
		})
	}

	return c.SendStatus(fiber.StatusOK)
}
