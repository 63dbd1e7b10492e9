package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskhive/backend/api/transport"
	"github.com/taskhive/backend/domain"
	"github.com/taskhive/backend/pkg/httpcontext"
	reminderUC "github.com/taskhive/backend/usecase/reminder"
)

type ReminderHandler struct {
	baseHandler
	uc *reminderUC.UseCase
}

func NewReminderHandler(uc *reminderUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *ReminderHandler {
	return &ReminderHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Set a task reminder
// @Tags reminders
// @Router /api/v1/reminders [post]
func (h *ReminderHandler) SetReminder(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.ReminderRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}

	var remindAt time.Time
	if req.RemindAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.RemindAt)
		if err != nil {
			h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid reminder time format", nil))
			return
		}
		remindAt = parsed
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.SetReminder(stdCtx, &domain.Reminder{
		UserID:   userID,
		TaskID:   req.TaskID,
		RemindAt: remindAt,
		Type:     domain.ReminderType(req.Type),
		Repeat:   domain.RepeatInterval(req.Repeat),
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Get a reminder with its task
// @Tags reminders
// @Router /api/v1/reminders/{id} [get]
func (h *ReminderHandler) GetReminder(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "missing reminder id", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	view, err := h.uc.GetReminder(stdCtx, id, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, view)
}

// @Summary Edit a reminder
// @Tags reminders
// @Router /api/v1/reminders/{id} [put]
func (h *ReminderHandler) EditReminder(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	id, _ := ctx.UserValue("id").(string)
	var req transport.ReminderUpdateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil || id == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}

	params := reminderUC.UpdateParams{IsActive: req.IsActive}
	if req.RemindAt != nil {
		parsed, err := time.Parse(time.RFC3339, *req.RemindAt)
		if err != nil {
			h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid reminder time format", nil))
			return
		}
		params.RemindAt = &parsed
	}
	if req.Type != nil {
		value := domain.ReminderType(*req.Type)
		params.Type = &value
	}
	if req.Repeat != nil {
		value := domain.RepeatInterval(*req.Repeat)
		params.Repeat = &value
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.UpdateReminder(stdCtx, id, userID, params)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Delete a reminder
// @Tags reminders
// @Router /api/v1/reminders/{id} [delete]
func (h *ReminderHandler) DeleteReminder(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "missing reminder id", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.DeleteReminder(stdCtx, id, userID); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}
