package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-api/internal/httperr"
	"github.com/BruksfildServices01/agenda-api/internal/httpresp"
	"github.com/BruksfildServices01/agenda-api/internal/logger"
	ucDashboard "github.com/BruksfildServices01/agenda-api/internal/usecase/dashboard"
)

type DashboardHandler struct {
	dashboard *ucDashboard.Dashboard
	log       *logger.Logger
}

func NewDashboardHandler(dashboard *ucDashboard.Dashboard, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, log: log}
}

type PeriodQuery struct {
	StartDate string `form:"start_date" binding:"required,datestring"`
	EndDate   string `form:"end_date" binding:"required,datestring"`
}

func (h *DashboardHandler) TotalMonth(c *gin.Context) {
	out, err := h.dashboard.TotalMonth(c.Request.Context())
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *DashboardHandler) AppointmentsMonth(c *gin.Context) {
	out, err := h.dashboard.AppointmentsMonth(c.Request.Context())
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *DashboardHandler) AppointmentsDay(c *gin.Context) {
	out, err := h.dashboard.AppointmentsDay(c.Request.Context())
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *DashboardHandler) AppointmentsCanceled(c *gin.Context) {
	out, err := h.dashboard.AppointmentsCanceled(c.Request.Context())
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *DashboardHandler) AppointmentsInterval(c *gin.Context) {
	var q PeriodQuery
	if !bindQuery(c, &q) {
		return
	}

	out, err := h.dashboard.RevenueByMonth(c.Request.Context(), q.StartDate, q.EndDate)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *DashboardHandler) ServicesInterval(c *gin.Context) {
	var q PeriodQuery
	if !bindQuery(c, &q) {
		return
	}

	out, err := h.dashboard.ServicesCount(c.Request.Context(), q.StartDate, q.EndDate)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}
	httpresp.OK(c, out)
}
