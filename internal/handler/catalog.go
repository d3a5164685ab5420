package handler

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/sagarvizla/indus-creator-portal/internal/middleware"
	"github.com/sagarvizla/indus-creator-portal/internal/model"
	"github.com/sagarvizla/indus-creator-portal/internal/service"
)

type CatalogHandler struct {
	binding  *service.BindingService
	catalog  *service.CatalogService
	sessions *service.SessionService
}

func NewCatalogHandler(binding *service.BindingService, catalog *service.CatalogService, sessions *service.SessionService) *CatalogHandler {
	return &CatalogHandler{binding: binding, catalog: catalog, sessions: sessions}
}

// List handles GET /api/videos?month=&year=
// Fetching a month replaces the creator's entire working set.
func (h *CatalogHandler) List(c fiber.Ctx) error {
	userKey := middleware.UserKey(c)

	month, errMsg := middleware.ValidateMonth(c.Query("month"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	year, errMsg := middleware.ValidateYear(c.Query("year", fmt.Sprint(time.Now().Year())))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	status, err := h.binding.Status(c.Context(), userKey)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load channel binding")
	}
	if !status.Bound {
		msg := "Link your channel before fetching videos."
		h.sessions.Notify(userKey, model.NotifyInfo, msg)
		return middleware.ErrorResponse(c, fiber.StatusConflict, "NOT_BOUND", msg)
	}

	videos, err := h.catalog.FetchMonth(c.Context(), userKey, status.ChannelID, month, year)
	if err != nil {
		Metrics.CatalogFetchesTotal.WithLabelValues("error").Inc()
		return h.fetchFailure(c, userKey, month, err)
	}

	Metrics.CatalogFetchesTotal.WithLabelValues("ok").Inc()
	return c.JSON(model.VideoListResponse{Month: month, Year: year, Videos: videos})
}

// Toggle handles POST /api/videos/:videoId/toggle
func (h *CatalogHandler) Toggle(c fiber.Ctx) error {
	videoID, errMsg := middleware.ValidateVideoID(c.Params("videoId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	userKey := middleware.UserKey(c)
	h.sessions.Toggle(userKey, videoID)
	return c.JSON(fiber.Map{"videos": h.sessions.Videos(userKey)})
}

// SetFormat handles PUT /api/videos/:videoId/format
func (h *CatalogHandler) SetFormat(c fiber.Ctx) error {
	videoID, errMsg := middleware.ValidateVideoID(c.Params("videoId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	var req model.FormatRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	format, errMsg := middleware.ValidateFormat(string(req.Format))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	userKey := middleware.UserKey(c)
	h.sessions.SetFormat(userKey, videoID, format)
	return c.JSON(fiber.Map{"videos": h.sessions.Videos(userKey)})
}

func (h *CatalogHandler) fetchFailure(c fiber.Ctx, userKey string, month int, err error) error {
	if errors.Is(err, service.ErrMissingCredential) {
		msg := "The catalog service is not configured. Contact an administrator."
		h.sessions.Notify(userKey, model.NotifyError, msg)
		return middleware.ErrorResponse(c, fiber.StatusServiceUnavailable, "MISSING_CREDENTIAL", msg)
	}

	msg := fmt.Sprintf("Failed to fetch videos for %s.", time.Month(month+1))
	h.sessions.Notify(userKey, model.NotifyError, msg)
	middleware.Logger.Error().Err(err).Int("month", month).Msg("catalog fetch failed")
	return middleware.ErrorResponse(c, fiber.StatusBadGateway, "FETCH_FAILED", msg)
}
