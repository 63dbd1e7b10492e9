package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskhive/backend/api/transport"
	"github.com/taskhive/backend/domain"
	"github.com/taskhive/backend/pkg/httpcontext"
	catalogUC "github.com/taskhive/backend/usecase/catalog"
)

type LabelHandler struct {
	baseHandler
	uc *catalogUC.UseCase
}

func NewLabelHandler(uc *catalogUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *LabelHandler {
	return &LabelHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List labels
// @Tags labels
// @Router /api/v1/labels [get]
func (h *LabelHandler) GetLabels(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	labels, err := h.uc.ListLabels(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, labels)
}

// @Summary Create label
// @Tags labels
// @Router /api/v1/labels [post]
func (h *LabelHandler) CreateLabel(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.LabelRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.CreateLabel(stdCtx, &domain.Label{UserID: userID, Name: req.Name})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Update label
// @Tags labels
// @Router /api/v1/labels/{id} [put]
func (h *LabelHandler) UpdateLabel(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	id, _ := ctx.UserValue("id").(string)
	var req transport.LabelRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil || id == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.UpdateLabel(stdCtx, &domain.Label{ID: id, UserID: userID, Name: req.Name})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Delete label
// @Tags labels
// @Router /api/v1/labels/{id} [delete]
func (h *LabelHandler) DeleteLabel(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "missing label id", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.DeleteLabel(stdCtx, id, userID); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}
