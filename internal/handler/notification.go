package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/sagarvizla/indus-creator-portal/internal/middleware"
	"github.com/sagarvizla/indus-creator-portal/internal/service"
)

type NotificationHandler struct {
	sessions *service.SessionService
}

func NewNotificationHandler(sessions *service.SessionService) *NotificationHandler {
	return &NotificationHandler{sessions: sessions}
}

// Get handles GET /api/notification — the creator's single modal slot.
func (h *NotificationHandler) Get(c fiber.Ctx) error {
	return c.JSON(h.sessions.Notification(middleware.UserKey(c)))
}

// Dismiss handles DELETE /api/notification. Dismissing an already
// closed slot succeeds; dismissal is strictly user-initiated, there are
// no timers.
func (h *NotificationHandler) Dismiss(c fiber.Ctx) error {
	h.sessions.Dismiss(middleware.UserKey(c))
	return c.SendStatus(fiber.StatusNoContent)
}
