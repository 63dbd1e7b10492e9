package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskhive/backend/pkg/httpcontext"
	reportUC "github.com/taskhive/backend/usecase/report"
)

type ReportHandler struct {
	baseHandler
	uc *reportUC.UseCase
}

func NewReportHandler(uc *reportUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Task summary for a period
// @Tags reports
// @Router /api/v1/tasks/summary [get]
func (h *ReportHandler) GetSummary(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	period := string(ctx.QueryArgs().Peek("period"))
	if period == "" {
		period = "day"
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	summary, err := h.uc.Summary(stdCtx, userID, period)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, summary)
}

// @Summary Task statistics
// @Tags reports
// @Router /api/v1/tasks/statistics [get]
func (h *ReportHandler) GetStatistics(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	statistics, err := h.uc.Statistics(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, statistics)
}

// @Summary Daily or weekly task digest
// @Tags reports
// @Router /api/v1/tasks/digest [get]
func (h *ReportHandler) GetDigest(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	period := string(ctx.QueryArgs().Peek("period"))
	if period == "" {
		period = "daily"
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	digest, err := h.uc.Digest(stdCtx, userID, period)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, digest)
}
