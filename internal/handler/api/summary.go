package api

import (
	"net/http"

	resdto "adslot-panel/internal/handler/dto/response"
	"adslot-panel/internal/handler/httperr"
	"adslot-panel/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// SummaryHandler serves the dashboard counters and the revenue summaries
// the old panels rendered as metric boxes and tables.
type SummaryHandler struct {
	bookingQueries queries.BookingQueries
}

func NewSummaryHandler(bookingQueries queries.BookingQueries) *SummaryHandler {
	return &SummaryHandler{bookingQueries: bookingQueries}
}

// @Summary Dashboard counters
// @Description Active/expired/total counts and total revenue
// @Tags summaries
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DashboardResponse
// @Router /dashboard [get]
func (h *SummaryHandler) Dashboard(c *gin.Context) {
	view, err := h.bookingQueries.Dashboard(c.Request.Context())
	if err != nil {
		h.writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDashboardView(view))
}

// @Summary Monthly revenue
// @Description Revenue grouped by calendar month, newest first
// @Tags summaries
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PeriodSummaryResponse
// @Router /summaries/monthly [get]
func (h *SummaryHandler) MonthlySummary(c *gin.Context) {
	views, err := h.bookingQueries.MonthlySummary(c.Request.Context())
	if err != nil {
		h.writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPeriodSummaries(views))
}

// @Summary Yearly revenue
// @Description Revenue grouped by calendar year, newest first
// @Tags summaries
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PeriodSummaryResponse
// @Router /summaries/yearly [get]
func (h *SummaryHandler) YearlySummary(c *gin.Context) {
	views, err := h.bookingQueries.YearlySummary(c.Request.Context())
	if err != nil {
		h.writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPeriodSummaries(views))
}

// @Summary Spend per client
// @Description Lifetime spend per client handle, biggest first
// @Tags summaries
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ClientSummaryResponse
// @Router /summaries/clients [get]
func (h *SummaryHandler) ClientSummary(c *gin.Context) {
	views, err := h.bookingQueries.ClientSummary(c.Request.Context())
	if err != nil {
		h.writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromClientSummaries(views))
}

func (h *SummaryHandler) writeStoreError(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadGateway, err, "Record store unavailable", nil)
}
