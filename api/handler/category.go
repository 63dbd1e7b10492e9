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

type CategoryHandler struct {
	baseHandler
	uc *catalogUC.UseCase
}

func NewCategoryHandler(uc *catalogUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List categories
// @Tags categories
// @Router /api/v1/categories [get]
func (h *CategoryHandler) GetCategories(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	categories, err := h.uc.ListCategories(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, categories)
}

// @Summary Create category
// @Tags categories
// @Router /api/v1/categories [post]
func (h *CategoryHandler) CreateCategory(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.CategoryRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.CreateCategory(stdCtx, &domain.Category{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Update category
// @Tags categories
// @Router /api/v1/categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	id, _ := ctx.UserValue("id").(string)
	var req transport.CategoryRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil || id == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.UpdateCategory(stdCtx, &domain.Category{
		ID:          id,
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Delete category
// @Tags categories
// @Router /api/v1/categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "missing category id", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.DeleteCategory(stdCtx, id, userID); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}
