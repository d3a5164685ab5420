package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/sagarvizla/indus-creator-portal/internal/middleware"
	"github.com/sagarvizla/indus-creator-portal/internal/model"
	"github.com/sagarvizla/indus-creator-portal/internal/repository"
	"github.com/sagarvizla/indus-creator-portal/internal/service"
)

type BindingHandler struct {
	svc      *service.BindingService
	sessions *service.SessionService
}

func NewBindingHandler(svc *service.BindingService, sessions *service.SessionService) *BindingHandler {
	return &BindingHandler{svc: svc, sessions: sessions}
}

// Status handles GET /api/channel
func (h *BindingHandler) Status(c fiber.Ctx) error {
	resp, err := h.svc.Status(c.Context(), middleware.UserKey(c))
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load channel binding")
	}
	return c.JSON(resp)
}

// Bind handles POST /api/channel
func (h *BindingHandler) Bind(c fiber.Ctx) error {
	userKey := middleware.UserKey(c)

	var req model.BindRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	input, errMsg := middleware.ValidateChannelInput(req.Input)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	binding, err := h.svc.Bind(c.Context(), userKey, input)
	if err != nil {
		return h.bindFailure(c, userKey, err)
	}

	resp, err := h.svc.Status(c.Context(), userKey)
	if err != nil {
		// Binding is stored; fall back to the bare record.
		resp = &model.BindingResponse{
			Bound:       true,
			ChannelID:   binding.ChannelID,
			ChangeCount: binding.ChangeCount,
			ChangesLeft: binding.ChangesLeft(),
		}
	}
	return c.JSON(resp)
}

// bindFailure converts each resolver/store failure into one notification
// plus the matching API error.
func (h *BindingHandler) bindFailure(c fiber.Ctx, userKey string, err error) error {
	switch {
	case errors.Is(err, repository.ErrChangeLimitExceeded):
		msg := "You've already set your channel twice. Further changes are disabled."
		h.sessions.Notify(userKey, model.NotifyError, msg)
		return middleware.ErrorResponse(c, fiber.StatusConflict, "CHANGE_LIMIT_EXCEEDED", msg)
	case errors.Is(err, service.ErrNoPattern):
		msg := "Could not resolve channel ID. Please check the link or try again."
		h.sessions.Notify(userKey, model.NotifyError, msg)
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "UNRESOLVABLE", msg)
	case errors.Is(err, service.ErrHandleNotFound):
		msg := "No channel found for that handle."
		h.sessions.Notify(userKey, model.NotifyError, msg)
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", msg)
	case errors.Is(err, service.ErrMissingCredential):
		msg := "The catalog service is not configured. Contact an administrator."
		h.sessions.Notify(userKey, model.NotifyError, msg)
		return middleware.ErrorResponse(c, fiber.StatusServiceUnavailable, "MISSING_CREDENTIAL", msg)
	case errors.Is(err, service.ErrLookupFailed):
		msg := "Channel lookup failed. Please try again."
		h.sessions.Notify(userKey, model.NotifyError, msg)
		return middleware.ErrorResponse(c, fiber.StatusBadGateway, "LOOKUP_FAILED", msg)
	default:
		msg := "Failed to save channel."
		h.sessions.Notify(userKey, model.NotifyError, msg)
		middleware.Logger.Error().Err(err).Msg("bind failed")
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", msg)
	}
}
