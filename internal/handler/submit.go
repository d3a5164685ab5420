package handler

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/sagarvizla/indus-creator-portal/internal/middleware"
	"github.com/sagarvizla/indus-creator-portal/internal/model"
	"github.com/sagarvizla/indus-creator-portal/internal/service"
	"github.com/sagarvizla/indus-creator-portal/internal/sink"
)

type SubmitHandler struct {
	binding    *service.BindingService
	submission *service.SubmissionService
	sessions   *service.SessionService
}

func NewSubmitHandler(binding *service.BindingService, submission *service.SubmissionService, sessions *service.SessionService) *SubmitHandler {
	return &SubmitHandler{binding: binding, submission: submission, sessions: sessions}
}

// Submit handles POST /api/submit — one dispatch per call, selection
// flags cleared only when the sink confirms.
func (h *SubmitHandler) Submit(c fiber.Ctx) error {
	userKey := middleware.UserKey(c)

	status, err := h.binding.Status(c.Context(), userKey)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load channel binding")
	}
	if !status.Bound {
		msg := "Link your channel before submitting."
		h.sessions.Notify(userKey, model.NotifyInfo, msg)
		return middleware.ErrorResponse(c, fiber.StatusConflict, "NOT_BOUND", msg)
	}

	resp, err := h.submission.Submit(c.Context(), userKey, status.ChannelTitle)
	if err != nil {
		Metrics.SubmissionsTotal.WithLabelValues("error").Inc()
		return h.submitFailure(c, userKey, err)
	}

	Metrics.SubmissionsTotal.WithLabelValues("ok").Inc()
	Metrics.SubmittedVideosTotal.Add(float64(resp.SubmittedCount))

	h.sessions.Notify(userKey, model.NotifySuccess,
		fmt.Sprintf("Videos submitted to %q sheet!", resp.SheetName))
	return c.JSON(resp)
}

func (h *SubmitHandler) submitFailure(c fiber.Ctx, userKey string, err error) error {
	var sinkErr *sink.Error

	switch {
	case errors.Is(err, service.ErrChannelNotReady):
		msg := "Still loading channel info. Please wait a moment."
		h.sessions.Notify(userKey, model.NotifyInfo, msg)
		return middleware.ErrorResponse(c, fiber.StatusConflict, "CHANNEL_NOT_READY", msg)
	case errors.Is(err, service.ErrEmptySelection):
		msg := "Please select at least one video."
		h.sessions.Notify(userKey, model.NotifyInfo, msg)
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "EMPTY_SELECTION", msg)
	case errors.Is(err, service.ErrSubmitInFlight):
		msg := "A submission is already in progress."
		h.sessions.Notify(userKey, model.NotifyInfo, msg)
		return middleware.ErrorResponse(c, fiber.StatusConflict, "SUBMIT_IN_FLIGHT", msg)
	case errors.Is(err, sink.ErrNotConfigured):
		msg := "The submission service is not configured. Contact an administrator."
		h.sessions.Notify(userKey, model.NotifyError, msg)
		return middleware.ErrorResponse(c, fiber.StatusServiceUnavailable, "SINK_NOT_CONFIGURED", msg)
	case errors.As(err, &sinkErr):
		msg := "Submission failed: " + sinkErr.Message
		h.sessions.Notify(userKey, model.NotifyError, msg)
		return middleware.ErrorResponse(c, fiber.StatusBadGateway, "SUBMISSION_ERROR", msg)
	default:
		msg := "Submission failed. Please try again."
		h.sessions.Notify(userKey, model.NotifyError, msg)
		middleware.Logger.Error().Err(err).Msg("submission failed")
		return middleware.ErrorResponse(c, fiber.StatusBadGateway, "SUBMISSION_ERROR", msg)
	}
}
